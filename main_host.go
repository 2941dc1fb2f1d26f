//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"qoiview/app"
	"qoiview/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var imagePath string
	var pan int
	flag.StringVar(&imagePath, "image", "", "QOI image to show (default: built-in test card).")
	flag.IntVar(&pan, "pan", 16, "Pixels to pan per arrow key press.")
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&cfg.Snapshot, "snapshot", "", "Write the final frame as PNG to this path (headless only).")
	flag.Parse()

	viewCfg := app.Config{Name: "sample", Data: app.Sample, Pan: pan}
	if imagePath != "" {
		data, err := os.ReadFile(imagePath)
		if err != nil {
			fatal(err)
		}
		viewCfg.Name = filepath.Base(imagePath)
		viewCfg.Data = data
	}

	newApp := func(h hal.HAL) func() error {
		return app.NewStep(h, viewCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fatal(err)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
