package helix

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point3 is an immutable point in helix space. Y is the helix axis.
type Point3 = r3.Vec

// Strand is the ordered sample sequence of one backbone.
type Strand []Point3

// Rung joins the two strands at one sample index.
type Rung struct {
	Index      int // sample index on both strands
	Start, End Point3
}

// Length returns |End - Start|.
func (r Rung) Length() float64 { return r3.Norm(r3.Sub(r.End, r.Start)) }

// Midpoint returns (Start + End) / 2.
func (r Rung) Midpoint() Point3 { return r3.Scale(0.5, r3.Add(r.Start, r.End)) }

// Geometry is the immutable output of Build.
type Geometry struct {
	Config  Config // normalized
	Strand1 Strand
	Strand2 Strand
	Curve1  *Curve
	Curve2  *Curve
	Rungs   []Rung
}

// Build samples a double helix. Strand 2 is strand 1 shifted by half a turn,
// so both strands are diametrically opposite at every sample; the helix is
// centered on the origin along Y.
//
// Build is deterministic and fails with ErrInvalidConfiguration before doing
// any work if cfg is invalid.
func Build(cfg Config) (*Geometry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Normalize()

	n := cfg.Segments()
	total := cfg.Turns * float64(cfg.PointsPerTurn)
	angleStep := 2 * math.Pi / float64(cfg.PointsPerTurn)
	heightStep := cfg.Height / total
	half := cfg.Height / 2

	g := &Geometry{
		Config:  cfg,
		Strand1: make(Strand, 0, n+1),
		Strand2: make(Strand, 0, n+1),
		Rungs:   make([]Rung, 0, cfg.RungCount()),
	}
	for i := 0; i <= n; i++ {
		angle := float64(i) * angleStep
		y := float64(i)*heightStep - half

		s1, c1 := math.Sincos(angle)
		s2, c2 := math.Sincos(angle + math.Pi)
		p1 := Point3{X: c1 * cfg.Radius, Y: y, Z: s1 * cfg.Radius}
		p2 := Point3{X: c2 * cfg.Radius, Y: y, Z: s2 * cfg.Radius}

		g.Strand1 = append(g.Strand1, p1)
		g.Strand2 = append(g.Strand2, p2)
		if i%cfg.RungStride == 0 {
			g.Rungs = append(g.Rungs, Rung{Index: i, Start: p1, End: p2})
		}
	}
	g.Curve1 = NewCurve(g.Strand1)
	g.Curve2 = NewCurve(g.Strand2)
	return g, nil
}
