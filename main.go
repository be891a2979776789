package main

import (
	"flag"
	"os"

	"frameinput/internal/config"
	"frameinput/internal/game"
	"frameinput/internal/script"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kataras/golog"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	replayPath := flag.String("replay", "", "replay a frame script headless and check its expectations")
	recordPath := flag.String("record", "", "record every frame to this script file on exit")
	flag.Parse()

	// Load configuration
	cfg := config.MustLoadConfig(*configPath)
	golog.SetLevel(cfg.Log.Level)

	if *replayPath == "" {
		*replayPath = cfg.Replay.Script
	}
	if *replayPath != "" {
		os.Exit(replay(*replayPath))
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.Display.TPS)
	ebiten.SetWindowClosingHandled(true)
	if cfg.Input.CaptureCursor {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}

	g := game.NewDemo(cfg, *recordPath)
	runErr := ebiten.RunGame(g)
	if err := g.Close(); err != nil {
		golog.Error(err)
	}
	if runErr != nil {
		golog.Fatal(runErr)
	}
}

func replay(path string) int {
	s, err := script.Load(path)
	if err != nil {
		golog.Error(err)
		return 1
	}
	if err := script.Run(s.NewHelper(), s); err != nil {
		golog.Errorf("replay %s failed:\n%v", path, err)
		return 1
	}
	golog.Infof("replay %s: %d frames passed", path, len(s.Frames))
	return 0
}
