// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-mine-digger/internal/config"
	"go-mine-digger/internal/defs"
	"go-mine-digger/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
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
	skipMenu := flag.Bool("skip-menu", false, "start in the hub instead of the title screen")
	flag.Parse()

	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	table, err := defs.LoadOreTable(settings.OreTablePath)
	if err != nil {
		log.Fatal(err)
	}

	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	world := state.NewWorld(settings, table)
	defer world.Close()

	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewHubState(sm, world))
	} else {
		sm.SetState(state.NewMenuState(sm, world))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Go Mine Digger")
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
