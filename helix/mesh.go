package helix

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"helixview/quarkgl"
)

func tubeVertexCount(tubular, radial int) int { return (tubular + 1) * (radial + 1) }

// cylinderVertexCount covers both side rings and both capped fans.
func cylinderVertexCount(radial int) int { return 4*(radial+1) + 2 }

// frames holds parallel-transported cross-section axes along a curve.
type frames struct {
	tangents, normals, binormals []r3.Vec
}

// transportFrames computes frames at segments+1 evenly spaced arc positions.
// The first normal is perpendicular to the tangent along its smallest
// component; each following normal is the previous one rotated by the turn
// between consecutive tangents, which keeps the tube from twisting.
func transportFrames(c *Curve, segments int) frames {
	f := frames{
		tangents:  make([]r3.Vec, segments+1),
		normals:   make([]r3.Vec, segments+1),
		binormals: make([]r3.Vec, segments+1),
	}
	for i := range f.tangents {
		f.tangents[i] = c.TangentAt(float64(i) / float64(segments))
	}

	t0 := f.tangents[0]
	axis := r3.Vec{X: 1}
	least := math.Abs(t0.X)
	if math.Abs(t0.Y) <= least {
		least = math.Abs(t0.Y)
		axis = r3.Vec{Y: 1}
	}
	if math.Abs(t0.Z) <= least {
		axis = r3.Vec{Z: 1}
	}
	side := r3.Unit(r3.Cross(t0, axis))
	f.normals[0] = r3.Cross(t0, side)
	f.binormals[0] = r3.Cross(t0, f.normals[0])

	for i := 1; i <= segments; i++ {
		n := f.normals[i-1]
		turn := r3.Cross(f.tangents[i-1], f.tangents[i])
		if r3.Norm(turn) > 1e-12 {
			theta := math.Acos(clamp(r3.Dot(f.tangents[i-1], f.tangents[i]), -1, 1))
			n = r3.Rotate(n, theta, r3.Unit(turn))
		}
		// Drop whatever drift rounding left along the tangent.
		n = r3.Unit(r3.Sub(n, r3.Scale(r3.Dot(n, f.tangents[i]), f.tangents[i])))
		f.normals[i] = n
		f.binormals[i] = r3.Cross(f.tangents[i], n)
	}
	return f
}

// tubeMesh sweeps a circle of the given radius along c. The tube is open at
// both ends.
func tubeMesh(c *Curve, radius float64, tubular, radial int) quarkgl.Mesh {
	fr := transportFrames(c, tubular)
	verts := make([]quarkgl.Vertex, 0, tubeVertexCount(tubular, radial))
	for i := 0; i <= tubular; i++ {
		p := c.PointAt(float64(i) / float64(tubular))
		n, b := fr.normals[i], fr.binormals[i]
		for j := 0; j <= radial; j++ {
			sin, cos := math.Sincos(float64(j) / float64(radial) * 2 * math.Pi)
			dir := r3.Unit(r3.Add(r3.Scale(-cos, n), r3.Scale(sin, b)))
			verts = append(verts, quarkgl.Vertex{
				Pos:    vec32(r3.Add(p, r3.Scale(radius, dir))),
				Normal: vec32(dir),
			})
		}
	}

	ring := radial + 1
	indices := make([]uint16, 0, tubular*radial*6)
	for j := 1; j <= tubular; j++ {
		for i := 1; i <= radial; i++ {
			a := uint16(ring*(j-1) + (i - 1))
			b := uint16(ring*j + (i - 1))
			c := uint16(ring*j + i)
			d := uint16(ring*(j-1) + i)
			indices = append(indices, a, b, d, b, c, d)
		}
	}
	return quarkgl.Mesh{Vertices: verts, Indices: indices}
}

// cylinderMesh builds a capped cylinder centered on the origin along +Y.
func cylinderMesh(radius, length float64, radial int) quarkgl.Mesh {
	half := length / 2
	verts := make([]quarkgl.Vertex, 0, cylinderVertexCount(radial))
	indices := make([]uint16, 0, radial*12)

	ring := func(y float64, normal func(sin, cos float64) r3.Vec) uint16 {
		start := uint16(len(verts))
		for j := 0; j <= radial; j++ {
			sin, cos := math.Sincos(float64(j) / float64(radial) * 2 * math.Pi)
			verts = append(verts, quarkgl.Vertex{
				Pos:    vec32(r3.Vec{X: radius * sin, Y: y, Z: radius * cos}),
				Normal: vec32(normal(sin, cos)),
			})
		}
		return start
	}

	side := func(sin, cos float64) r3.Vec { return r3.Vec{X: sin, Z: cos} }
	top := ring(half, side)
	bottom := ring(-half, side)
	for j := uint16(0); j < uint16(radial); j++ {
		a, b := top+j, bottom+j
		c, d := bottom+j+1, top+j+1
		indices = append(indices, a, b, d, b, c, d)
	}

	addCap := func(y, ny float64) {
		center := uint16(len(verts))
		verts = append(verts, quarkgl.Vertex{Pos: vec32(r3.Vec{Y: y}), Normal: vec32(r3.Vec{Y: ny})})
		rim := ring(y, func(_, _ float64) r3.Vec { return r3.Vec{Y: ny} })
		for j := uint16(0); j < uint16(radial); j++ {
			if ny > 0 {
				indices = append(indices, center, rim+j, rim+j+1)
			} else {
				indices = append(indices, center, rim+j+1, rim+j)
			}
		}
	}
	addCap(half, 1)
	addCap(-half, -1)

	return quarkgl.Mesh{Vertices: verts, Indices: indices}
}

func vec32(v r3.Vec) quarkgl.Vec3 {
	return quarkgl.V3(float32(v.X), float32(v.Y), float32(v.Z))
}
