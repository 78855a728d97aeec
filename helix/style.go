package helix

import (
	"errors"
	"fmt"

	"helixview/quarkgl"
)

// ErrMeshTooLarge is returned when a style needs more vertices than a
// quarkgl mesh can index.
var ErrMeshTooLarge = errors.New("helix: mesh exceeds 16-bit index range")

// Style controls how Assemble dresses the geometry.
type Style struct {
	StrandRadius  float64 // tube cross-section radius
	StrandRadial  int     // tube radial segments
	StrandTubular int     // tube longitudinal segments
	RungRadius    float64 // cylinder radius
	RungRadial    int     // cylinder radial segments
	StrandColors  [2]quarkgl.Color
	RungColor     quarkgl.Color
}

// DefaultStyle returns the reference dressing: 0.15 tubes with 8x100
// segments, 0.08 rungs with 8 segments.
func DefaultStyle() Style {
	return Style{
		StrandRadius:  0.15,
		StrandRadial:  8,
		StrandTubular: 100,
		RungRadius:    0.08,
		RungRadial:    8,
		StrandColors: [2]quarkgl.Color{
			quarkgl.RGB(0x5b, 0x8c, 0xff),
			quarkgl.RGB(0xff, 0x5b, 0xae),
		},
		RungColor: quarkgl.RGB(0xc8, 0xd2, 0xe6),
	}
}

// Validate reports a style that cannot be meshed.
func (s Style) Validate() error {
	switch {
	case s.StrandRadius <= 0:
		return fmt.Errorf("helix: strand radius %v must be positive", s.StrandRadius)
	case s.RungRadius <= 0:
		return fmt.Errorf("helix: rung radius %v must be positive", s.RungRadius)
	case s.StrandRadial < 3:
		return fmt.Errorf("helix: strand radial segments %d must be at least 3", s.StrandRadial)
	case s.RungRadial < 3:
		return fmt.Errorf("helix: rung radial segments %d must be at least 3", s.RungRadial)
	case s.StrandTubular < 1:
		return fmt.Errorf("helix: strand tubular segments %d must be at least 1", s.StrandTubular)
	}
	if tubeVertexCount(s.StrandTubular, s.StrandRadial) > 1<<16 {
		return fmt.Errorf("%w: tube %dx%d", ErrMeshTooLarge, s.StrandTubular, s.StrandRadial)
	}
	if cylinderVertexCount(s.RungRadial) > 1<<16 {
		return fmt.Errorf("%w: rung radial %d", ErrMeshTooLarge, s.RungRadial)
	}
	return nil
}
