package scene

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"helixview/quarkgl"
)

const (
	// DefaultAngularVelocity is the spin rate in radians per second.
	DefaultAngularVelocity = 0.5
	// DefaultTilt leans the spin axis by 30 degrees about the view axis.
	DefaultTilt = math.Pi / 6
)

// Spinner is the rotation driver: a spin angle advanced by elapsed time,
// nested inside a fixed tilt.
type Spinner struct {
	angle    float64
	velocity float64
	tilt     mgl32.Mat4
}

// NewSpinner returns a spinner at angle 0.
func NewSpinner(velocity, tilt float64) *Spinner {
	return &Spinner{
		velocity: velocity,
		tilt:     mgl32.HomogRotate3DZ(float32(tilt)),
	}
}

// reset puts the spinner at angle, wrapped like Advance wraps it.
func (s *Spinner) reset(angle float64) { s.angle = math.Mod(angle, 2*math.Pi) }

// Advance moves the angle by -delta*velocity. Negative deltas are ignored.
func (s *Spinner) Advance(delta time.Duration) {
	if delta <= 0 {
		return
	}
	s.angle = math.Mod(s.angle-delta.Seconds()*s.velocity, 2*math.Pi)
}

// Angle returns the current spin angle in (-2π, 2π).
func (s *Spinner) Angle() float64 { return s.angle }

// Transform returns tilt * spin: the spin turns about the helix axis, and the
// tilt leans that axis as seen by the viewer.
func (s *Spinner) Transform() quarkgl.Mat4 {
	return quarkgl.Mat4(s.tilt.Mul4(mgl32.HomogRotate3DY(float32(s.angle))))
}
