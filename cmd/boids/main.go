package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-boids-torus/pkg/simulation"
	golog "github.com/tochemey/goakt/v3/log"
)

var (
	configFile = flag.String("config", "", "JSON or TOML configuration file (defaults are used when empty)")
	debug      = flag.Bool("debug", false, "Log actor messages at debug level")
	dumpConfig = flag.Bool("dump-config", false, "Print the effective configuration as TOML and exit")
)

func main() {
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configFile); err != nil {
			log.Fatal(err)
		}
	}
	if *dumpConfig {
		if err := cfg.WriteTOML(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	var logger golog.Logger = golog.DefaultLogger
	if *debug {
		logger = golog.New(golog.DebugLevel, os.Stderr)
	}

	ctx := context.Background()
	system, err := simulation.StartSystem(ctx, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer system.Stop(ctx)

	game, err := simulation.GetNewGame(ctx, cfg, system)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Boids on a torus")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TicksPerSecond)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
