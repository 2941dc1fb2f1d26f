//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	// Snapshot, if set, is a PNG path the framebuffer is written to when the
	// runner stops.
	Snapshot string
}

// RunHeadless runs the viewer without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	h := newHost(os.Stdout)
	err := runHeadless(ctx, h, newApp(h), cfg)
	if cfg.Snapshot != "" {
		if serr := writeSnapshot(h.fb, cfg.Snapshot); serr != nil && err == nil {
			err = serr
		}
	}
	return err
}

func runHeadless(ctx context.Context, h *hostHAL, step func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.kbd.poll()
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func writeSnapshot(fb Framebuffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := SnapshotPNG(fb, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	return f.Close()
}
