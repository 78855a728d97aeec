package main

import (
	"github.com/spf13/cobra"

	"helixview/app"
	"helixview/hal"
	"helixview/internal/buildinfo"
	"helixview/internal/config"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window and spin the helix",
		Long: `Opens a desktop window. Keys: arrows orbit, +/- zoom, w wireframe,
t/T fewer/more turns, q or Esc quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if wf, _ := cmd.Flags().GetBool("wireframe"); wf {
				cfg.Display.Wireframe = true
			}
			return hal.RunWindow(hostConfig(cfg), func(h hal.HAL) (hal.App, error) {
				return app.New(h, cfg)
			})
		},
	}
	cmd.Flags().Bool("wireframe", false, "start in wireframe mode")
	return cmd
}

func hostConfig(cfg config.Config) hal.HostConfig {
	return hal.HostConfig{
		Width:  cfg.Display.Width,
		Height: cfg.Display.Height,
		Scale:  cfg.Display.Scale,
		TPS:    cfg.Display.TPS,
		Title:  "helix (" + buildinfo.Short() + ")",
	}
}
