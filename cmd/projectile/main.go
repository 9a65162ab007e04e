package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/trace"
	"syscall"

	"github.com/pkg/profile"

	"github.com/contexD/ray-tracer-challenge/config"
	"github.com/contexD/ray-tracer-challenge/projectile"
)

var (
	configPath string
	doSweep    bool
	quiet      bool

	logLevel string
	logJSON  bool
	doTrace  bool
	doProf   bool
)

func newLogger() (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("bad log level %q: %w", logLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	if logJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}

func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.LoadConfig(configPath)
}

func main() {
	flag.StringVar(&configPath, "config", "", "Path to HJSON or YAML scenario (default scenario if empty)")
	flag.BoolVar(&doSweep, "sweep", false, "Simulate every sweep speed instead of a single launch")
	flag.BoolVar(&quiet, "quiet", false, "Do not print per-tick positions")

	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&logJSON, "log-json", false, "Log as JSON")
	flag.BoolVar(&doTrace, "trace", false, "Enable tracing (debug)")
	flag.BoolVar(&doProf, "prof", false, "Enable CPU profiling (debug)")
	flag.Parse()

	log, err := newLogger()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if doTrace {
		trace.Start(os.Stderr)
		defer trace.Stop()
	}

	if doProf {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	conf, err := loadConfig()
	if err != nil {
		log.Error("failed to load config", "path", configPath, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if doSweep {
		err = runSweep(ctx, log, conf)
	} else {
		err = runSingle(log, conf)
	}
	if err != nil {
		log.Error("simulation failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func runSingle(log *slog.Logger, conf config.Config) error {
	p := conf.Projectile()
	log.Info("launching",
		"position", p.Position,
		"velocity", p.Velocity,
		"gravity", conf.Gravity,
		"wind", conf.Wind,
	)

	visit := func(tick int, p projectile.Projectile) {
		if !quiet {
			fmt.Printf("%d %v\n", tick, p.Position)
		}
	}

	f, err := projectile.Simulate(p, conf.Environment(), conf.MaxTicks, visit)
	if err != nil {
		return err
	}
	logFlight(log, conf.Speed, f)
	return nil
}

func runSweep(ctx context.Context, log *slog.Logger, conf config.Config) error {
	speeds := conf.Sweep.Speeds
	if len(speeds) == 0 {
		speeds = []float64{conf.Speed}
	}
	log.Info("sweeping", "speeds", speeds, "workers", conf.Sweep.Workers)

	flights, err := projectile.Sweep(ctx, conf.Environment(), conf.Position, conf.Velocity, speeds,
		projectile.SweepOptions{Workers: conf.Sweep.Workers, MaxTicks: conf.MaxTicks})
	if err != nil {
		return err
	}

	for i, f := range flights {
		if !quiet {
			fmt.Printf("%v %d %v %.4f\n", speeds[i], f.Ticks, f.Landing.Position, f.Distance())
		}
		logFlight(log, speeds[i], f)
	}
	return nil
}

func logFlight(log *slog.Logger, speed float64, f projectile.Flight) {
	log.Info("landed",
		"speed", speed,
		"ticks", f.Ticks,
		"landing", f.Landing.Position,
		"apex", f.Apex,
		"distance", f.Distance(),
	)
}
