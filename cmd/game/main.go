// cmd/game/main.go
package main

import (
	"errors"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"node-zero/internal/app"
	"node-zero/internal/component"
	"node-zero/internal/config"
	"node-zero/internal/defs"
	"node-zero/internal/effect"
	"node-zero/internal/event"
	"node-zero/internal/state"
	"node-zero/internal/storage"
	"node-zero/internal/ui"
	"node-zero/internal/utils"
	"node-zero/pkg/render"
)

const (
	textSize  = 18
	titleSize = 48
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	if a.stateMachine.ShouldQuit() {
		return ebiten.Termination
	}
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
	return a.width, a.height
}

func main() {
	if err := run(); err != nil {
		slog.Error("node zero stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.LoadSettings(".env")
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.SlogLevel()}))
	slog.SetDefault(logger)

	if settings.PprofAddr != "" {
		go func() {
			logger.Info("pprof listening", "addr", settings.PprofAddr)
			if err := http.ListenAndServe(settings.PprofAddr, nil); err != nil {
				logger.Error("pprof stopped", "error", err)
			}
		}()
	}

	if err := defs.LoadUpgrades(settings.UpgradesFile); err != nil {
		return err
	}

	store, err := storage.Open(settings.SaveBackend, settings.SaveDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close save store", "error", err)
		}
	}()

	game := app.NewGame(app.Options{Store: store, Logger: logger, Seed: settings.Seed})
	game.Initialize(settings.Width, settings.Height)
	game.Attach(event.NewLogger(logger))

	face, titleFace := ui.DefaultFace, ui.DefaultFace
	if f, err := render.LoadFace(textSize); err == nil {
		face = f
	} else {
		logger.Warn("falling back to bitmap font", "error", err)
	}
	if f, err := render.LoadFace(titleSize); err == nil {
		titleFace = f
	}
	ui.DefaultFace = face

	showCursor := func(visible bool) {
		if visible {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeHidden)
		}
	}
	sm := state.NewStateMachine(state.Deps{
		Game:       game,
		Input:      ui.EbitenInput{},
		Effects:    effect.New(utils.NewPRNG(0)),
		World:      render.NewWorldRenderer(face),
		Face:       face,
		TitleFace:  titleFace,
		Logger:     logger,
		ShowCursor: showCursor,
	})
	if settings.StartScreen == "game" {
		sm.Change(component.Playing)
	} else {
		sm.Change(component.MainMenu)
	}

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          settings.Width,
		height:         settings.Height,
	}
	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle("NodeZero")

	err = ebiten.RunGame(appGame)
	game.SaveProgress()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
