// Command mkqoi prepares QOI assets for qoiview and previews them the way the
// panel will show them.
package main

import (
	"log/slog"
	"os"

	"qoiview/internal/buildinfo"

	"github.com/alecthomas/kong"
)

type cli struct {
	Verbose bool             `help:"Log debug details." short:"v"`
	Version kong.VersionFlag `help:"Print version and exit."`

	Encode  EncodeCmd  `cmd:"" help:"Convert an image to QOI, optionally resizing it."`
	Preview PreviewCmd `cmd:"" help:"Render a QOI image as the RGB565 panel would show it and save it as PNG."`
	Info    InfoCmd    `cmd:"" help:"Print QOI header fields."`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("mkqoi"),
		kong.Description("QOI asset tool for qoiview."),
		kong.UsageOnError(),
		kong.Vars{"version": buildinfo.String()},
	)

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := kctx.Run(logger); err != nil {
		logger.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
