package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newswire/pkg/broadcast"
	"github.com/umputun/newswire/pkg/config"
	"github.com/umputun/newswire/pkg/domain"
	"github.com/umputun/newswire/pkg/feed"
	"github.com/umputun/newswire/pkg/repository"
	"github.com/umputun/newswire/pkg/scheduler"
	"github.com/umputun/newswire/pkg/scoring"
	"github.com/umputun/newswire/pkg/service"
	"github.com/umputun/newswire/server"
)

// Opts with all CLI options
type Opts struct {
	Config   string        `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen   string        `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	Interval time.Duration `short:"i" long:"interval" env:"INTERVAL" description:"poll interval, overrides config"`
	DBPath   string        `long:"db" env:"DB" description:"database dsn, overrides config"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	SetupLog(opts.Debug)

	log.Printf("[INFO] starting newswire version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the pipeline and blocks until ctx is canceled or the server fails
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.DBPath != "" {
		cfg.Database.DSN = opts.DBPath
	}
	interval := cfg.PollInterval()
	if opts.Interval > 0 {
		interval = opts.Interval
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	if err := seedSources(ctx, repos, cfg.Sources, interval); err != nil {
		return err
	}

	svc := service.NewPipelineService(repos)
	hub := broadcast.NewHub()
	sched := scheduler.NewScheduler(scheduler.Params{
		SourceManager: svc,
		ItemManager:   svc,
		Parser:        feed.NewParser(cfg.Fetch.Timeout, cfg.Fetch.UserAgent),
		Scorer: scoring.New(scoring.Keywords{Critical: cfg.Scoring.CriticalKeywords, Medium: cfg.Scoring.MediumKeywords},
			scoring.WithRecencyWindow(cfg.Scoring.RecencyWindow)),
		Broadcaster:     hub,
		StatsProvider:   svc,
		SourceDelay:     cfg.Schedule.SourceDelay,
		ShutdownTimeout: cfg.Schedule.ShutdownTimeout,
		ShutdownStep:    cfg.Schedule.ShutdownStep,
	})

	srv := server.New(cfg, svc, sched, hub, revision, opts.Debug)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Run(gctx); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		sched.Start(gctx, interval)
		<-gctx.Done()
		hub.Close() // releases event streams so the server can drain
		sched.Shutdown()
		return nil
	})

	return g.Wait()
}

// seedSources registers configured sources missing from the database
func seedSources(ctx context.Context, repos *repository.Repositories, sources []config.SourceConfig, interval time.Duration) error {
	if len(sources) == 0 {
		return nil
	}
	seed := make([]domain.Source, 0, len(sources))
	for _, s := range sources {
		seed = append(seed, domain.Source{URL: s.URL, Title: s.Title, Active: s.IsActive(), PollInterval: interval})
	}
	inserted, err := repos.Source.SeedSources(ctx, seed)
	if err != nil {
		return fmt.Errorf("failed to seed sources: %w", err)
	}
	lgr.Printf("[INFO] registered %d new of %d configured sources", inserted, len(sources))
	return nil
}

// SetupLog configures lgr and the standard logger, secrets are masked in the output
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug, lgr.CallerFile, lgr.CallerFunc)
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
