package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"helixview/helix"
	"helixview/scene"
)

func main() {
	var outPath string
	cfg := helix.DefaultConfig()
	tilt := scene.DefaultTilt
	flag.StringVar(&outPath, "out", "helix.obj", "Output OBJ path (- for stdout).")
	flag.Float64Var(&cfg.Turns, "turns", cfg.Turns, "Number of full turns.")
	flag.Float64Var(&cfg.Radius, "radius", cfg.Radius, "Strand distance from the axis.")
	flag.Float64Var(&cfg.Height, "height", cfg.Height, "Extent along the axis.")
	flag.IntVar(&cfg.PointsPerTurn, "ppt", cfg.PointsPerTurn, "Samples per turn.")
	flag.IntVar(&cfg.RungStride, "stride", cfg.RungStride, "Emit a rung every n samples.")
	flag.Float64Var(&tilt, "tilt", tilt, "Tilt of the helix axis in radians.")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}
	if err := run(outPath, cfg, tilt); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(outPath string, cfg helix.Config, tilt float64) error {
	g, err := helix.Build(cfg)
	if err != nil {
		return err
	}
	a, err := helix.Assemble(g, helix.DefaultStyle())
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %q: %w", outPath, err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}
	parent := scene.NewSpinner(0, tilt).Transform()
	if err := helix.WriteOBJ(w, a, parent); err != nil {
		return fmt.Errorf("write %q: %w", outPath, err)
	}
	if f, ok := w.(*os.File); ok && f != os.Stdout {
		if err := f.Sync(); err != nil {
			return err
		}
	}
	fmt.Fprintf(os.Stderr, "wrote %d nodes (%d vertices) to %s\n", len(a.Nodes)-a.Degenerate, a.Vertices(), outPath)
	return nil
}
