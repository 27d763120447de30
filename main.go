package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"goblinescape/config"
	"goblinescape/render"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file (or set GOBLIN_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	app, err := render.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
