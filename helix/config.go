package helix

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultPointsPerTurn is the sampling density of each strand.
	DefaultPointsPerTurn = 40
	// DefaultRungStride emits a rung on every n-th sample.
	DefaultRungStride = 4
)

// ErrInvalidConfiguration is returned (wrapped in a *ConfigError) for any
// configuration that cannot produce a well-formed helix.
var ErrInvalidConfiguration = errors.New("invalid helix configuration")

// ConfigError reports which field made a Config invalid.
type ConfigError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("helix: %s=%v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfiguration }

// Config parameterizes a double helix.
//
// Zero PointsPerTurn and RungStride select the defaults.
type Config struct {
	Turns  float64 // full rotations along the axis
	Radius float64 // distance of each strand from the axis
	Height float64 // total extent along the axis

	PointsPerTurn int
	RungStride    int
}

// DefaultConfig returns the library defaults: 3 turns, radius 2, height 15.
func DefaultConfig() Config {
	return Config{
		Turns:         3,
		Radius:        2,
		Height:        15,
		PointsPerTurn: DefaultPointsPerTurn,
		RungStride:    DefaultRungStride,
	}
}

// Normalize fills zero tunables with their defaults. Two configs describing
// the same helix normalize to equal values.
func (c Config) Normalize() Config {
	if c.PointsPerTurn == 0 {
		c.PointsPerTurn = DefaultPointsPerTurn
	}
	if c.RungStride == 0 {
		c.RungStride = DefaultRungStride
	}
	return c
}

// Validate reports the first problem with c, or nil.
func (c Config) Validate() error {
	c = c.Normalize()
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"turns", c.Turns},
		{"radius", c.Radius},
		{"height", c.Height},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &ConfigError{Field: f.name, Value: f.v, Reason: "must be finite"}
		}
		if f.v <= 0 {
			return &ConfigError{Field: f.name, Value: f.v, Reason: "must be positive"}
		}
	}
	if c.PointsPerTurn < 0 {
		return &ConfigError{Field: "points_per_turn", Value: float64(c.PointsPerTurn), Reason: "must be positive"}
	}
	if c.RungStride < 0 {
		return &ConfigError{Field: "rung_stride", Value: float64(c.RungStride), Reason: "must be positive"}
	}
	if c.Segments() < 1 {
		return &ConfigError{Field: "turns", Value: c.Turns, Reason: "yields fewer than two samples per strand"}
	}
	return nil
}

// Segments returns floor(turns * pointsPerTurn); each strand has Segments()+1
// points.
func (c Config) Segments() int {
	c = c.Normalize()
	total := c.Turns * float64(c.PointsPerTurn)
	if math.IsNaN(total) || total < 0 {
		return 0
	}
	if total > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(total))
}

// RungCount returns the number of rungs Build emits for c.
func (c Config) RungCount() int {
	c = c.Normalize()
	n := c.Segments()
	if n < 1 || c.RungStride < 1 {
		return 0
	}
	return n/c.RungStride + 1
}
