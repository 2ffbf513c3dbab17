// cmd/wheel/main.go
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"quadrant-wheel/internal/app"
	"quadrant-wheel/internal/config"
	"quadrant-wheel/internal/state"
	"quadrant-wheel/pkg/surface"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	chrome         *state.Chrome
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
	return a.chrome.Size()
}

func main() {
	configPath := flag.String("config", "", "TOML-файл конфигурации")
	pngPath := flag.String("png", "", "нарисовать один кадр в PNG и выйти")
	debug := flag.Bool("debug", false, "подробный лог")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	file := config.Default()
	if *configPath != "" {
		f, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		file = f
	}

	side := int(file.Radius * 2)
	raster, err := surface.NewRaster(side, side)
	if err != nil {
		log.Fatal(err)
	}
	defer raster.Close()

	sess, err := app.NewSession(file, raster, app.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	if *pngPath != "" {
		if err := raster.SavePNG(*pngPath); err != nil {
			log.Fatal(err)
		}
		logger.Info("frame saved", "path", *pngPath, "frame", sess.Frame())
		return
	}

	chrome, err := state.NewChrome(sess, raster.Image)
	if err != nil {
		log.Fatal(err)
	}
	sm := state.NewStateMachine()
	if sess.Editing() {
		sm.SetState(state.NewEditState(sm, chrome))
	} else {
		sm.SetState(state.NewViewState(sm, chrome))
	}

	a := &AppGame{
		stateMachine:   sm,
		chrome:         chrome,
		lastUpdateTime: time.Now(),
	}
	w, h := chrome.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Quadrant Wheel")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
