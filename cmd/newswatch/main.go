package main

import (
	"context"
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

	"github.com/askeland/newswatch/pkg/config"
	"github.com/askeland/newswatch/pkg/content"
	"github.com/askeland/newswatch/pkg/db"
	"github.com/askeland/newswatch/pkg/fetcher"
	"github.com/askeland/newswatch/pkg/llm"
	"github.com/askeland/newswatch/pkg/pipeline"
	"github.com/askeland/newswatch/pkg/processor"
	"github.com/askeland/newswatch/pkg/scheduler"
	"github.com/askeland/newswatch/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"config file (yaml), defaults apply if omitted"`
	Once   bool   `long:"once" description:"run a single batch and exit"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	setupLog(opts.Debug, cfg.LLM.APIKey)

	log.Printf("[INFO] starting newswatch version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// loadConfig reads the config file, or uses defaults when no file is given
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		log.Print("[INFO] no config file given, using defaults")
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// run wires all subsystems together and blocks until the context is done
func run(ctx context.Context, cfg *config.Config, opts Opts) error {
	database, err := db.New(db.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Printf("[WARN] can't close database: %v", err)
		}
	}()

	if err := database.InitSchema(ctx); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	pl := makePipeline(cfg, database)

	if opts.Once {
		log.Print("[INFO] single batch mode")
		stats := pl.Run(ctx)
		log.Printf("[INFO] batch finished, stored %d of %d fetched", stats.Stored, stats.Fetched)
		return nil
	}

	sched := scheduler.NewScheduler(pl, database, scheduler.Config{
		Interval:      cfg.Schedule.Interval,
		RetentionDays: cfg.Schedule.RetentionDays,
	})

	srv := server.New(cfg, database, sched, revision, opts.Debug)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error {
		sched.Start(gctx)
		<-gctx.Done()
		sched.Stop()
		return nil
	})

	return g.Wait()
}

// makePipeline builds the batch pipeline from configuration
func makePipeline(cfg *config.Config, database *db.DB) *pipeline.Pipeline {
	extractor := content.NewHTTPExtractor(cfg.Extraction.Timeout, cfg.Extraction.UserAgent, cfg.Extraction.MinTextLength)

	var index fetcher.NewsIndex
	switch cfg.Fetch.Source {
	case "rss":
		index = fetcher.NewRSSIndex(nil)
		log.Print("[INFO] using rss news index")
	default:
		index = fetcher.NewGDELTIndex(cfg.Fetch.Timeout, cfg.Extraction.UserAgent)
		log.Print("[INFO] using gdelt news index")
	}

	ftch := fetcher.New(index, extractor, cfg.GetFetchConfig())
	proc := processor.New(cfg.Fetch.MinArticleLength)
	fallback := llm.NewFallbackClassifier()

	var classifier pipeline.Classifier
	if cfg.LLMEnabled() {
		classifier = llm.NewClassifier(cfg.GetLLMConfig())
		log.Printf("[INFO] llm classifier enabled, model %s", cfg.LLM.Model)
	} else {
		log.Print("[INFO] no llm api key, keyword fallback classifier only")
	}

	return pipeline.New(database, ftch, classifier, fallback, proc, cfg.Fetch.StorageDir)
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(os.Stdout), lgr.Err(os.Stderr)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
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

	// keep secrets like the api key out of the logs
	secrets := make([]string, 0, len(secs))
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
