// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-fruitopian-defender/internal/config"
	"go-fruitopian-defender/internal/ui"
)

// MenuState — стартовый экран
type MenuState struct {
	sm    *StateMachine
	faces *ui.Faces
}

func NewMenuState(sm *StateMachine, faces *ui.Faces) *MenuState {
	return &MenuState{sm: sm, faces: faces}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.faces))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "Fruitopian Defender", m.faces.Title,
		config.ScreenWidth/2-90, config.ScreenHeight/2-20, config.TextLightColor)
	text.Draw(screen, "press SPACE to start", m.faces.Regular,
		config.ScreenWidth/2-70, config.ScreenHeight/2+10, config.TextLightColor)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
