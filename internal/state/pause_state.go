// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-fruitopian-defender/internal/config"
)

// Затемнение для паузы и экрана конца игры
var fadeColor = color.RGBA{0, 0, 0, 128}

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует предыдущее состояние под затемнением и ждёт отжатия.
// Игровое время стоит: Update паузы не передаёт delta дальше.
type PauseState struct {
	sm            *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{sm: sm, previousState: prevState}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, fadeColor, false)
	text.Draw(screen, "PAUSED", s.previousState.faces.Title,
		config.ScreenWidth/2-40, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
