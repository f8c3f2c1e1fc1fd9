package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	lifecycle := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		lifecycle = log.Default()
	}

	log.Printf("particle network: %dx%d window, seed %d", cfg.Width, cfg.Height, cfg.Seed)
	game := newGame(cfg, rand.New(rand.NewSource(cfg.Seed)), lifecycle)

	// Set up Ebitengine game
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(cfg.TPS)

	// Run the game loop
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
