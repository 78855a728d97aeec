package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"helixview/app"
	"helixview/hal"
)

func newHeadlessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run the viewer without a window",
		Long: `Steps the viewer on a fixed-rate ticker without opening a window. With
--snapshot the last frame is written as a PNG.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			hz, _ := cmd.Flags().GetInt("hz")
			frames, _ := cmd.Flags().GetUint64("frames")
			snapshot, _ := cmd.Flags().GetString("snapshot")

			hc := hal.HeadlessConfig{Host: hostConfig(cfg), Hz: hz, Frames: frames}
			var snapErr error
			if snapshot != "" {
				hc.Snapshot = func(img *image.RGBA) { snapErr = writePNG(snapshot, img) }
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			err = hal.RunHeadless(ctx, hc, func(h hal.HAL) (hal.App, error) {
				return app.New(h, cfg)
			})
			if errors.Is(err, context.Canceled) {
				err = nil
			}
			return errors.Join(err, snapErr)
		},
	}
	cmd.Flags().Int("hz", 60, "frame rate")
	cmd.Flags().Uint64("frames", 0, "stop after N frames (0 = run until interrupted)")
	cmd.Flags().String("snapshot", "", "write the last frame to this PNG file")
	return cmd
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	return f.Close()
}
