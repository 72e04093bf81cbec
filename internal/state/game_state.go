// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-fruitopian-defender/internal/app"
	"go-fruitopian-defender/internal/component"
	"go-fruitopian-defender/internal/config"
	"go-fruitopian-defender/internal/ui"
)

// GameState — состояние идущей партии. Владеет ядром (app.Game), раз в кадр
// передаёт ему delta, собирает клики с панелей и применяет их как команды.
type GameState struct {
	sm         *StateMachine
	game       *app.Game
	faces      *ui.Faces
	unitPanel  *ui.UnitPanel
	enemyPanel *ui.EnemyPanel
	indicator  *ui.ParkingIndicator
}

func NewGameState(sm *StateMachine, faces *ui.Faces) *GameState {
	gameLogic := app.NewGame(0)

	indicator := ui.NewParkingIndicator(
		float32(config.ScreenWidth-config.IndicatorOffsetX),
		float32(config.IndicatorOffsetX),
		float32(config.IndicatorRadius),
		faces,
	)

	return &GameState{
		sm:         sm,
		game:       gameLogic,
		faces:      faces,
		unitPanel:  ui.NewUnitPanel(faces),
		enemyPanel: ui.NewEnemyPanel(faces),
		indicator:  indicator,
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	if g.game.Status() == component.StatusGameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.sm.SetState(NewGameState(g.sm, g.faces))
		}
		return
	}

	g.game.Update(deltaTime)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.handleClick(x, y)
	}
}

func (g *GameState) handleClick(x, y int) {
	cmd, ok := g.unitPanel.HandleClick(g.game.UnitSnapshots(), g.game.CanBringOut(), x, y)
	if !ok {
		return
	}

	var err error
	switch cmd.Kind {
	case ui.CmdBringOut:
		err = g.game.BringOut(cmd.UnitID)
	case ui.CmdPrepare:
		err = g.game.Prepare(cmd.UnitID, cmd.Type)
	case ui.CmdTakeOff:
		err = g.game.TakeOff(cmd.UnitID)
	case ui.CmdStore:
		err = g.game.Store(cmd.UnitID)
	}
	if err != nil && !errors.Is(err, app.ErrNoParkingSpace) {
		// Кнопки строятся из фазы юнита, поэтому сюда попадает разве что
		// клик наперегонки с тиком этого же кадра.
		log.Printf("command rejected: %v", err)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	mouseX, mouseY := ebiten.CursorPosition()
	g.unitPanel.Draw(screen, g.game.UnitSnapshots(), g.game.CanBringOut(), mouseX, mouseY)
	g.enemyPanel.Draw(screen, g.game.EnemySnapshots())
	g.indicator.Draw(screen, g.game.ParkingUsed(), g.game.ParkingCapacity())

	stats := g.game.Stats
	header := fmt.Sprintf("time %.0fs   spawned %d   intercepted %d   lost %d",
		g.game.GameTime(), stats.Spawned, stats.Intercepted, stats.UnitsLost)
	text.Draw(screen, header, g.faces.Regular, config.PanelMargin+6, 24, config.TextLightColor)

	if g.game.Status() == component.StatusGameOver {
		g.drawGameOver(screen)
	}
}

func (g *GameState) drawGameOver(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight,
		fadeColor, false)
	text.Draw(screen, "GAME OVER", g.faces.Title,
		config.ScreenWidth/2-60, config.ScreenHeight/2-10, config.GameOverColor)
	text.Draw(screen, "press R to restart", g.faces.Regular,
		config.ScreenWidth/2-60, config.ScreenHeight/2+20, config.TextLightColor)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
