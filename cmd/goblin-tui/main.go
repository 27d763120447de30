package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"goblinescape/config"
	"goblinescape/game"
	"goblinescape/tui"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file (or set GOBLIN_CONFIG)")
	logPath := flag.String("log", "", "Write the game log to this file (the terminal is in use)")
	flag.Parse()

	// Anything printed to the terminal would tear the screen
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := run(cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.SetOutput(os.Stderr)
		log.Fatalf("Goblin Escape: %v", err)
	}
}

func run(cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseDragEvents)
	screen.HideCursor()

	app, err := tui.New(screen, cfg, game.SystemClock{})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("starting terminal game")
	return app.Run(ctx)
}
