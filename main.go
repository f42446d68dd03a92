package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/galaxy-go/internal/app"
	"github.com/olivierh59500/galaxy-go/internal/config"
	"github.com/olivierh59500/galaxy-go/internal/motion"
)

var (
	configPath = flag.String("config", "", "JSON file overriding the default tunables")
	saveConfig = flag.String("save-config", "", "write the effective config to this file and exit")
	width      = flag.Int("width", 800, "initial window width")
	height     = flag.Int("height", 600, "initial window height")
	reduced    = flag.Bool("reduced", false, "start with reduced motion (also "+motion.EnvVar+")")
	seed       = flag.Int64("seed", 0, "random seed, 0 for time-based")
	nebula     = flag.Bool("nebula", false, "paint the perlin nebula haze")
	debug      = flag.Bool("debug", false, "log to stderr")
)

// setupLogging routes the standard logger to stderr in debug mode and
// discards it otherwise.
func setupLogging(debug bool) {
	log.SetPrefix("galaxy: ")
	if debug {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *nebula {
		cfg.Nebula = true
	}
	return cfg, cfg.Validate()
}

func main() {
	flag.Parse()
	setupLogging(*debug)

	cfg, err := loadConfig()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	if *saveConfig != "" {
		if err := config.Save(*saveConfig, cfg); err != nil {
			log.SetOutput(os.Stderr)
			log.Fatal(err)
		}
		return
	}

	pref := motion.NewPreference(*reduced || motion.FromEnv())
	game := app.New(cfg, pref, log.Default())

	// Set up Ebitengine window
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Spiral Galaxy")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	// Run the game loop
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
