package hal

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Host   HostConfig
	Hz     int
	Frames uint64 // stop after this many frames; 0 runs until ctx ends

	// Snapshot, if set, receives the last frame before the app is closed.
	// Apps implementing Snapshotter supply it themselves, otherwise it is
	// read back from the presented framebuffer.
	Snapshot func(*image.RGBA)
}

// RunHeadless runs the app on a ticker without opening a window. Each frame
// advances by exactly 1/Hz, so runs are reproducible.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newApp NewAppFunc) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(cfg.Host)
	app, err := newApp(h)
	if err != nil {
		return err
	}
	defer app.Close()

	t := time.NewTicker(d)
	defer t.Stop()

	var frame uint64
	err = func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-t.C:
				if err := app.Step(d); err != nil {
					return err
				}
				frame++
				if cfg.Frames > 0 && frame >= cfg.Frames {
					return nil
				}
			}
		}
	}()
	if errors.Is(err, ErrQuit) {
		err = nil
	}
	if cfg.Snapshot != nil {
		var img *image.RGBA
		if s, ok := app.(Snapshotter); ok {
			img = s.Snapshot()
		}
		if img == nil {
			img = image.NewRGBA(image.Rect(0, 0, h.fb.width, h.fb.height))
			h.fb.snapshotRGBA(img)
		}
		cfg.Snapshot(img)
	}
	return err
}
