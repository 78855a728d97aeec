package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"helixview/helix"
	"helixview/internal/logging"
	"helixview/quarkgl"
	"helixview/scene"
)

// Environment variables read by ApplyEnv.
const (
	EnvTurns    = "HELIX_TURNS"
	EnvRadius   = "HELIX_RADIUS"
	EnvHeight   = "HELIX_HEIGHT"
	EnvLogLevel = "HELIX_LOG_LEVEL"
)

type Helix struct {
	Turns         float64 `yaml:"turns"`
	Radius        float64 `yaml:"radius"`
	Height        float64 `yaml:"height"`
	PointsPerTurn int     `yaml:"points_per_turn"`
	RungStride    int     `yaml:"rung_stride"`
}

type Style struct {
	StrandRadius    float64   `yaml:"strand_radius"`
	RungRadius      float64   `yaml:"rung_radius"`
	RadialSegments  int       `yaml:"radial_segments"`
	TubularSegments int       `yaml:"tubular_segments"`
	StrandColors    [2]string `yaml:"strand_colors"`
	RungColor       string    `yaml:"rung_color"`
}

type Motion struct {
	AngularVelocity float64 `yaml:"angular_velocity"`
	Tilt            float64 `yaml:"tilt"`
}

type Display struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Scale      int    `yaml:"scale"`
	TPS        int    `yaml:"tps"`
	Wireframe  bool   `yaml:"wireframe"`
	Background string `yaml:"background"`
}

type Camera struct {
	Distance float32 `yaml:"distance"`
	FOV      float32 `yaml:"fov"`
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
}

type Log struct {
	Level string `yaml:"level"`
}

// Config is the application configuration as read from YAML.
type Config struct {
	Helix   Helix   `yaml:"helix"`
	Style   Style   `yaml:"style"`
	Motion  Motion  `yaml:"motion"`
	Display Display `yaml:"display"`
	Camera  Camera  `yaml:"camera"`
	Log     Log     `yaml:"log"`
}

// Default returns the viewer defaults: a radius 3, height 35 helix.
func Default() Config {
	st := helix.DefaultStyle()
	sc := scene.DefaultStageConfig()
	return Config{
		Helix: Helix{
			Turns:         3,
			Radius:        3,
			Height:        35,
			PointsPerTurn: helix.DefaultPointsPerTurn,
			RungStride:    helix.DefaultRungStride,
		},
		Style: Style{
			StrandRadius:    st.StrandRadius,
			RungRadius:      st.RungRadius,
			RadialSegments:  st.StrandRadial,
			TubularSegments: st.StrandTubular,
			StrandColors:    [2]string{st.StrandColors[0].Hex(), st.StrandColors[1].Hex()},
			RungColor:       st.RungColor.Hex(),
		},
		Motion: Motion{
			AngularVelocity: scene.DefaultAngularVelocity,
			Tilt:            scene.DefaultTilt,
		},
		Display: Display{
			Width:      sc.Width,
			Height:     sc.Height,
			Scale:      2,
			TPS:        60,
			Background: sc.Background.Hex(),
		},
		Camera: Camera{
			Distance: sc.CameraDistance,
			FOV:      sc.FOVYRad,
			Near:     sc.Near,
			Far:      sc.Far,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads a YAML file over the defaults. Unknown keys are an error. An
// empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := cfg.decode(data); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not an
// error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from HELIX_* variables. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{EnvTurns, &c.Helix.Turns},
		{EnvRadius, &c.Helix.Radius},
		{EnvHeight, &c.Helix.Height},
	} {
		s, ok := lookup(f.name)
		if !ok || s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", f.name, err)
		}
		*f.dst = v
	}
	if s, ok := lookup(EnvLogLevel); ok && s != "" {
		c.Log.Level = s
	}
	return nil
}

// HelixConfig returns the geometry parameters.
func (c Config) HelixConfig() helix.Config {
	return helix.Config{
		Turns:         c.Helix.Turns,
		Radius:        c.Helix.Radius,
		Height:        c.Helix.Height,
		PointsPerTurn: c.Helix.PointsPerTurn,
		RungStride:    c.Helix.RungStride,
	}
}

// HelixStyle returns the mesh dressing.
func (c Config) HelixStyle() (helix.Style, error) {
	st := helix.Style{
		StrandRadius:  c.Style.StrandRadius,
		StrandRadial:  c.Style.RadialSegments,
		StrandTubular: c.Style.TubularSegments,
		RungRadius:    c.Style.RungRadius,
		RungRadial:    c.Style.RadialSegments,
	}
	var err error
	for i, s := range c.Style.StrandColors {
		if st.StrandColors[i], err = parseColor("style.strand_colors", s); err != nil {
			return st, err
		}
	}
	if st.RungColor, err = parseColor("style.rung_color", c.Style.RungColor); err != nil {
		return st, err
	}
	return st, nil
}

// Options returns the mount options.
func (c Config) Options() (scene.Options, error) {
	st, err := c.HelixStyle()
	if err != nil {
		return scene.Options{}, err
	}
	return scene.Options{
		Helix:           c.HelixConfig(),
		Style:           st,
		AngularVelocity: c.Motion.AngularVelocity,
		Tilt:            c.Motion.Tilt,
	}, nil
}

// Stage returns the stage configuration.
func (c Config) Stage() (scene.StageConfig, error) {
	sc := scene.DefaultStageConfig()
	bg, err := parseColor("display.background", c.Display.Background)
	if err != nil {
		return sc, err
	}
	sc.Width = c.Display.Width
	sc.Height = c.Display.Height
	sc.Background = bg
	if c.Display.Wireframe {
		sc.Mode = quarkgl.RenderWireframe
	}
	sc.CameraDistance = c.Camera.Distance
	sc.FOVYRad = c.Camera.FOV
	sc.Near = c.Camera.Near
	sc.Far = c.Camera.Far
	return sc, nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (slog.Level, error) {
	return logging.ParseLevel(c.Log.Level)
}

// Validate checks everything the viewer needs before it opens a window.
func (c Config) Validate() error {
	if err := c.HelixConfig().Validate(); err != nil {
		return err
	}
	st, err := c.HelixStyle()
	if err != nil {
		return err
	}
	if err := st.Validate(); err != nil {
		return err
	}
	if _, err := c.Stage(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch {
	case c.Display.Width <= 0 || c.Display.Height <= 0:
		return fmt.Errorf("config: display %dx%d must be positive", c.Display.Width, c.Display.Height)
	case c.Display.Scale <= 0:
		return fmt.Errorf("config: display.scale %d must be positive", c.Display.Scale)
	case c.Display.TPS <= 0:
		return fmt.Errorf("config: display.tps %d must be positive", c.Display.TPS)
	}
	return nil
}

func parseColor(field, s string) (quarkgl.Color, error) {
	col, err := quarkgl.ParseHexColor(s)
	if err != nil {
		return col, fmt.Errorf("config: %s: %w", field, err)
	}
	return col, nil
}
