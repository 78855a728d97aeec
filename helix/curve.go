package helix

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// arcDivisions is the resolution of the arc length table.
const arcDivisions = 200

// Curve is an open centripetal Catmull-Rom spline through a point sequence.
//
// The end tangents are formed by reflecting the second and second-to-last
// points, so the curve passes through every control point including the ends.
type Curve struct {
	points  []r3.Vec
	lengths []float64 // cumulative arc length at t = i/arcDivisions
}

// NewCurve fits a curve through points. It needs at least two points; with
// fewer it returns nil.
func NewCurve(points []r3.Vec) *Curve {
	if len(points) < 2 {
		return nil
	}
	c := &Curve{points: points}
	c.lengths = make([]float64, arcDivisions+1)
	prev := c.Point(0)
	for i := 1; i <= arcDivisions; i++ {
		p := c.Point(float64(i) / arcDivisions)
		c.lengths[i] = c.lengths[i-1] + r3.Norm(r3.Sub(p, prev))
		prev = p
	}
	return c
}

// Points returns the control points.
func (c *Curve) Points() []r3.Vec { return c.points }

// Length returns the approximate arc length.
func (c *Curve) Length() float64 { return c.lengths[len(c.lengths)-1] }

// Point evaluates the curve at parameter t in [0,1], where control point i
// sits at t = i/(n-1).
func (c *Curve) Point(t float64) r3.Vec {
	n := len(c.points)
	t = clamp(t, 0, 1)
	p := float64(n-1) * t
	seg := int(math.Floor(p))
	w := p - float64(seg)
	if seg >= n-1 {
		seg, w = n-2, 1
	}

	p1, p2 := c.points[seg], c.points[seg+1]
	var p0, p3 r3.Vec
	if seg > 0 {
		p0 = c.points[seg-1]
	} else {
		p0 = r3.Sub(r3.Scale(2, p1), p2)
	}
	if seg+2 < n {
		p3 = c.points[seg+2]
	} else {
		p3 = r3.Sub(r3.Scale(2, p2), p1)
	}

	// Centripetal knot spacing: |p_i+1 - p_i|^0.5.
	dt0 := math.Pow(r3.Norm2(r3.Sub(p1, p0)), 0.25)
	dt1 := math.Pow(r3.Norm2(r3.Sub(p2, p1)), 0.25)
	dt2 := math.Pow(r3.Norm2(r3.Sub(p3, p2)), 0.25)
	if dt1 < 1e-4 {
		dt1 = 1
	}
	if dt0 < 1e-4 {
		dt0 = dt1
	}
	if dt2 < 1e-4 {
		dt2 = dt1
	}

	return r3.Vec{
		X: cubic(p0.X, p1.X, p2.X, p3.X, dt0, dt1, dt2, w),
		Y: cubic(p0.Y, p1.Y, p2.Y, p3.Y, dt0, dt1, dt2, w),
		Z: cubic(p0.Z, p1.Z, p2.Z, p3.Z, dt0, dt1, dt2, w),
	}
}

// PointAt evaluates the curve at arc length fraction u in [0,1].
func (c *Curve) PointAt(u float64) r3.Vec { return c.Point(c.arcToT(u)) }

// TangentAt returns the unit tangent at arc length fraction u.
func (c *Curve) TangentAt(u float64) r3.Vec {
	const delta = 1e-4
	t := c.arcToT(u)
	d := r3.Sub(c.Point(clamp(t+delta, 0, 1)), c.Point(clamp(t-delta, 0, 1)))
	if r3.Norm2(d) == 0 {
		return r3.Vec{Y: 1}
	}
	return r3.Unit(d)
}

func (c *Curve) arcToT(u float64) float64 {
	u = clamp(u, 0, 1)
	total := c.Length()
	if total == 0 {
		return u
	}
	target := u * total
	last := len(c.lengths) - 1
	i := sort.SearchFloat64s(c.lengths, target)
	if i > last {
		return 1
	}
	if c.lengths[i] == target {
		return float64(i) / float64(last)
	}
	i--
	seg := c.lengths[i+1] - c.lengths[i]
	if seg == 0 {
		return float64(i) / float64(last)
	}
	return (float64(i) + (target-c.lengths[i])/seg) / float64(last)
}

// cubic evaluates one coordinate of a non-uniform Catmull-Rom segment between
// x1 and x2 at local parameter w.
func cubic(x0, x1, x2, x3, dt0, dt1, dt2, w float64) float64 {
	t1 := (x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1
	t2 := (x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2
	t1 *= dt1
	t2 *= dt1

	c0 := x1
	c1 := t1
	c2 := -3*x1 + 3*x2 - 2*t1 - t2
	c3 := 2*x1 - 2*x2 + t1 + t2
	return c0 + c1*w + c2*w*w + c3*w*w*w
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
