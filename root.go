package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"helixview/internal/config"
)

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "helix",
		Short: "Spinning double-helix viewer",
		Long: `helix renders a rotating double helix: two phase-opposed strands joined by
rungs, drawn by a software renderer into a window or offscreen.`,
		SilenceUsage: true,
	}

	// Persistent flags (available to all commands)
	pf := root.PersistentFlags()
	pf.String("config", "", "YAML configuration file")
	pf.String("env", ".env", "dotenv file with HELIX_* overrides (missing file is ignored)")
	pf.Float64("turns", 0, "number of full turns")
	pf.Float64("radius", 0, "strand distance from the axis")
	pf.Float64("height", 0, "extent along the axis")
	pf.String("log-level", "", "debug, info, warn or error")

	root.AddCommand(newRunCmd(), newHeadlessCmd(), newVersionCmd())
	return root
}

// loadConfig layers defaults, the YAML file, the dotenv file, the process
// environment and finally the flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	envPath, _ := flags.GetString("env")
	if err := config.LoadDotEnv(envPath); err != nil {
		return config.Config{}, err
	}
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	for name, dst := range map[string]*float64{
		"turns":  &cfg.Helix.Turns,
		"radius": &cfg.Helix.Radius,
		"height": &cfg.Helix.Height,
	} {
		if flags.Changed(name) {
			*dst, _ = flags.GetFloat64(name)
		}
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	return cfg, cfg.Validate()
}
