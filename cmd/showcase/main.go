// cmd/showcase/main.go
package main

import (
	"errors"
	"io/fs"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"go-showcase/internal/app"
	"go-showcase/internal/assets"
	"go-showcase/internal/config"
	"go-showcase/internal/defs"
	"go-showcase/internal/state"
)

const startFromShow = true // true — сразу сцена, false — меню

const showPath = "data/showcase.yaml"

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
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	def, err := defs.Load(showPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("no show file at %s, using built-in show", showPath)
			def = defs.DefaultShow()
		} else {
			log.Fatalf("failed to load show definition: %v", err)
		}
	}

	gdataManager, err := gdata.Open(gdata.Config{AppName: "go-showcase"})
	if err != nil {
		// Без хранилища работаем, просто ничего не переживёт перезапуск.
		log.Printf("gdata unavailable: %v (session will not persist)", err)
		gdataManager = nil
	}
	session := app.NewSession(gdataManager)

	faces := assets.NewFaceManager()

	sm := state.NewStateMachine()
	if startFromShow {
		sm.SetState(state.NewShowState(sm, def, faces, session))
	} else {
		sm.SetState(state.NewMenuState(sm, def, faces, session))
	}

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Showcase")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
