// cmd/game/main.go
package main

import (
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-coin-rush/internal/app"
	"go-coin-rush/internal/config"
	"go-coin-rush/internal/defs"
	"go-coin-rush/internal/event"
	"go-coin-rush/internal/state"
	"go-coin-rush/internal/system"
	"go-coin-rush/internal/utils"
	"go-coin-rush/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"
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
	settings, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load settings")
	}
	logger.Init(settings.LogLevel, settings.LogFormat)

	if settings.PprofAddr != "" {
		go func() {
			logger.Log.WithField("addr", settings.PprofAddr).Info("Starting pprof server")
			if err := http.ListenAndServe(settings.PprofAddr, nil); err != nil {
				logger.Log.WithError(err).Warn("pprof server stopped")
			}
		}()
	}

	level, err := defs.LoadLevel(settings.LevelFile)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load level")
	}

	rng := utils.NewPRNGService(settings.Seed)
	logger.Log.WithFields(logrus.Fields{
		"seed":  rng.Seed(),
		"level": level.Name,
	}).Info("Starting Coin Rush")

	dispatcher := event.NewDispatcher()
	stats := app.NewRunStats(dispatcher)
	game := app.NewGame(level, system.NewSpawner(rng), dispatcher)

	fontFace := basicfont.Face7x13
	sm := state.NewStateMachine()
	newPlay := func() state.State {
		return state.NewPlayState(sm, game, stats, fontFace)
	}
	if settings.StartInMenu {
		sm.SetState(state.NewMenuState(sm, fontFace, newPlay))
	} else {
		sm.SetState(newPlay())
	}

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth*settings.WindowScale, config.ScreenHeight*settings.WindowScale)
	ebiten.SetWindowTitle("Coin Rush")
	if err := ebiten.RunGame(a); err != nil {
		logger.Log.WithError(err).Fatal("Game loop exited")
	}
}
