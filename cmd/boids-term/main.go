package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/lao-tseu-is-alive/go-boids-torus/pb"
	"github.com/lao-tseu-is-alive/go-boids-torus/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-boids-torus/pkg/term"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/proto"
)

var (
	configFile = flag.String("config", "", "JSON or TOML configuration file (defaults are used when empty)")
	logFile    = flag.String("logfile", "", "Write actor logs to this file (the terminal is busy drawing)")
	debug      = flag.Bool("debug", false, "Log actor messages at debug level")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configFile); err != nil {
			return err
		}
	}

	var logger golog.Logger = golog.DiscardLogger
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		level := golog.InfoLevel
		if *debug {
			level = golog.DebugLevel
		}
		logger = golog.New(level, f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	system, err := simulation.StartSystem(ctx, logger)
	if err != nil {
		return err
	}
	defer system.Stop(context.Background())

	snapshotCh := make(chan *pb.WorldSnapshot, 10)
	pid, err := simulation.SpawnFlock(ctx, system, cfg, snapshotCh)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	send := func(msg proto.Message) error {
		return actor.Tell(ctx, pid, msg)
	}
	app := term.NewApp(screen, send, snapshotCh, term.Settings{
		Population:     cfg.Population,
		Parameters:     simulation.TickParametersToProto(cfg.TickParameters()),
		Highlight:      cfg.Highlight,
		TicksPerSecond: cfg.TicksPerSecond,
	})
	return app.Run(ctx)
}
