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

	"github.com/umputun/iotd/pkg/feed"
	"github.com/umputun/iotd/pkg/fetch"
	"github.com/umputun/iotd/pkg/image"
	"github.com/umputun/iotd/pkg/scheduler"
	"github.com/umputun/iotd/pkg/update"
	"github.com/umputun/iotd/pkg/wallpaper"
	"github.com/umputun/iotd/server"
)

// Opts with all CLI options
type Opts struct {
	FeedURL   string `long:"feed" env:"FEED_URL" default:"https://www.nasa.gov/rss/dyn/lg_image_of_the_day.rss" description:"image of the day feed url"`
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"NASA IOTD Wallpaper" description:"client identifier sent with every request"`
	ImageDir  string `long:"image-dir" env:"IMAGE_DIR" description:"directory for the downloaded image, system temp dir if empty"`
	ImageName string `long:"image-name" env:"IMAGE_NAME" default:"nasa-iotd.jpg" description:"file name of the downloaded image"`

	RetryDelay time.Duration `long:"retry-delay" env:"RETRY_DELAY" default:"3s" description:"delay between failed attempts, must be positive"`
	Interval   time.Duration `long:"interval" env:"INTERVAL" default:"12h" description:"delay after a successful update, must be positive"`
	Timeout    time.Duration `long:"timeout" env:"TIMEOUT" default:"0s" description:"http request timeout, 0 waits forever"`

	Dry    bool   `long:"dry" env:"DRY" description:"download the image without changing the wallpaper"`
	Once   bool   `long:"once" description:"update once, retrying until success, and exit"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"status server listen address, disabled if empty"`

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

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)

	log.Printf("[INFO] starting iotd version %s", revision)

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

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires all components and blocks until ctx is canceled, or until the first success with --once
func run(ctx context.Context, opts Opts) error {
	if err := validate(opts); err != nil {
		return err
	}
	if opts.Timeout == 0 {
		log.Print("[DEBUG] no http timeout set, a stuck request blocks updates")
	}
	client := fetch.New(opts.Timeout, opts.UserAgent)

	var wp update.Wallpaper = wallpaper.New()
	if opts.Dry {
		wp = wallpaper.Noop{}
	}

	store := image.NewStore(opts.ImageDir, opts.ImageName)
	log.Printf("[DEBUG] feed %s, image file %s", opts.FeedURL, store.Path())

	cycle := update.NewCycle(update.Params{
		FeedURL:    opts.FeedURL,
		Parser:     feed.NewParser(client),
		Downloader: image.NewDownloader(client),
		Store:      store,
		Wallpaper:  wp,
	})

	supervisor := scheduler.NewSupervisor(scheduler.Params{
		Cycle:      cycle,
		RetryDelay: opts.RetryDelay,
		Interval:   opts.Interval,
	})

	if opts.Once {
		if err := supervisor.RunOnce(ctx); err != nil {
			return fmt.Errorf("update: %w", err)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return supervisor.Run(gctx)
	})

	if opts.Listen != "" {
		srv := server.New(supervisor, server.Config{Listen: opts.Listen, Version: revision, Debug: opts.Debug})
		g.Go(func() error {
			if err := srv.Run(gctx); err != nil {
				return fmt.Errorf("status server: %w", err)
			}
			return nil
		})
	}

	return g.Wait()
}

// validate rejects durations the supervisor can't use
func validate(opts Opts) error {
	if opts.RetryDelay <= 0 {
		return fmt.Errorf("retry delay must be positive, got %v", opts.RetryDelay)
	}
	if opts.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", opts.Interval)
	}
	if opts.Timeout < 0 {
		return fmt.Errorf("timeout can't be negative, got %v", opts.Timeout)
	}
	return nil
}

func setupLog(dbg bool) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
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
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
