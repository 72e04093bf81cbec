// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/hajimehoshi/ebiten/v2"

	"go-fruitopian-defender/internal/config"
	"go-fruitopian-defender/internal/state"
	"go-fruitopian-defender/internal/ui"
	"go-fruitopian-defender/pkg/timer"
)

const startFromGame = false // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine *state.StateMachine
	clock        *timer.Clock
}

func (a *AppGame) Update() error {
	deltaTime := a.clock.Tick().Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	faces := ui.MustLoadFaces()
	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm, faces))
	} else {
		sm.SetState(state.NewMenuState(sm, faces))
	}

	app := &AppGame{
		stateMachine: sm,
		clock:        timer.NewClock(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Fruitopian Defender")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
