package main

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// Config holds the host settings. The network constants are fixed.
type Config struct {
	// Window settings
	Width      int
	Height     int
	Fullscreen bool
	Title      string
	TPS        int

	// Overlay card
	Headline string
	Tagline  string

	// Misc
	Seed    int64 // 0 picks a time-based seed
	Verbose bool
}

// parseFlags reads the configuration from args (without the program name)
func parseFlags(args []string, stderr io.Writer) (*Config, error) {
	config := &Config{}
	fs := flag.NewFlagSet("particle-network", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.IntVar(&config.Width, "width", 1280, "initial window width")
	fs.IntVar(&config.Height, "height", 720, "initial window height")
	fs.BoolVar(&config.Fullscreen, "fullscreen", false, "start fullscreen")
	fs.StringVar(&config.Title, "title", "Particle Network", "window title")
	fs.IntVar(&config.TPS, "tps", 60, "input ticks per second")

	fs.StringVar(&config.Headline, "headline", "Particle Network", "overlay headline")
	fs.StringVar(&config.Tagline, "tagline", "Move the pointer to pull the field.", "overlay tagline")

	fs.Int64Var(&config.Seed, "seed", 0, "random seed (0 = time-based)")
	fs.BoolVar(&config.Verbose, "verbose", false, "log view lifecycle events")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "particle-network - animated particle network backdrop\n\n")
		fmt.Fprintf(stderr, "Usage: particle-network [OPTIONS]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nKeys: R remount, O replay card, Esc/Q quit\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Width < 1 || config.Height < 1 {
		return fmt.Errorf("window size must be positive, got %dx%d", config.Width, config.Height)
	}
	if config.TPS < 1 || config.TPS > 240 {
		return fmt.Errorf("tps must be between 1 and 240")
	}
	return nil
}
