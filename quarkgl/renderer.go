package quarkgl

// Stats describes the work done by the last Render call.
type Stats struct {
	Meshes    int
	Triangles int
	Culled    int
}

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	ClearColor Color

	depthBuf []float32
	stats    Stats
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderSolidFlat,
		ClearColor: RGB(0, 0, 0),
	}
	r.EnableDepth(enableDepth, w, h)
	return r
}

func (r *Renderer) SetRenderMode(m RenderMode) { r.Mode = m }

// Stats returns counters from the most recent Render.
func (r *Renderer) Stats() Stats { return r.stats }

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on || w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Render renders a scene into the target.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	r.stats = Stats{}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)

	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}

	aspect := Scalar(w) / Scalar(h)
	viewProj := Mat4Mul(s.Camera.Projection(aspect), s.Camera.View())

	s.eachMesh(func(m *Mesh) {
		if !m.Enabled {
			return
		}
		r.renderMesh(t, w, h, viewProj, m, s.Light)
	})
}

func (r *Renderer) renderMesh(t Target, w, h int, viewProj Mat4, m *Mesh, light Light) {
	if len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}
	model := m.Transform
	if model == (Mat4{}) {
		model = Mat4Identity()
	}
	mvp := Mat4Mul(viewProj, model)
	r.stats.Meshes++

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i+0])
		i1 := int(m.Indices[i+1])
		i2 := int(m.Indices[i+2])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
			continue
		}

		v0 := &m.Vertices[i0]
		v1 := &m.Vertices[i1]
		v2 := &m.Vertices[i2]

		ndc0, ok0 := clipToNDC(Mat4MulV4(mvp, Vec4{X: v0.Pos.X, Y: v0.Pos.Y, Z: v0.Pos.Z, W: 1}))
		ndc1, ok1 := clipToNDC(Mat4MulV4(mvp, Vec4{X: v1.Pos.X, Y: v1.Pos.Y, Z: v1.Pos.Z, W: 1}))
		ndc2, ok2 := clipToNDC(Mat4MulV4(mvp, Vec4{X: v2.Pos.X, Y: v2.Pos.Y, Z: v2.Pos.Z, W: 1}))
		if !ok0 || !ok1 || !ok2 {
			r.stats.Culled++
			continue
		}
		r.stats.Triangles++

		x0, y0 := ndcToScreen(ndc0, w, h)
		x1, y1 := ndcToScreen(ndc1, w, h)
		x2, y2 := ndcToScreen(ndc2, w, h)

		base := m.Material.BaseColor

		switch r.Mode {
		case RenderWireframe:
			r.drawLine(t, x0, y0, x1, y1, base)
			r.drawLine(t, x1, y1, x2, y2, base)
			r.drawLine(t, x2, y2, x0, y0, base)
		case RenderSolidVertexColor:
			r.fillTriangle(t, w, h, x0, y0, ndc0.Z, v0.Color, x1, y1, ndc1.Z, v1.Color, x2, y2, ndc2.Z, v2.Color)
		case RenderSolidSmooth:
			c0 := shade(base, light, model, v0.Normal)
			c1 := shade(base, light, model, v1.Normal)
			c2 := shade(base, light, model, v2.Normal)
			r.fillTriangle(t, w, h, x0, y0, ndc0.Z, c0, x1, y1, ndc1.Z, c1, x2, y2, ndc2.Z, c2)
		default:
			n := triangleNormal(v0.Pos, v1.Pos, v2.Pos)
			c := shade(base, light, model, n)
			r.fillTriangleFlat(t, w, h, x0, y0, ndc0.Z, x1, y1, ndc1.Z, x2, y2, ndc2.Z, c)
		}
	}
}

// shade lights an object-space normal in world space.
func shade(base Color, light Light, model Mat4, n Vec3) Color {
	if light.Mode != LightAmbientDirectional {
		return base
	}
	return base.MulScalar(lightIntensity(light, Normalize(TransformDir(model, n))))
}

type ndcPoint struct {
	X, Y, Z float32
}

// clipToNDC rejects points behind the eye (w <= 0).
func clipToNDC(p Vec4) (ndcPoint, bool) {
	if p.W <= 0 {
		return ndcPoint{}, false
	}
	invW := 1 / p.W
	return ndcPoint{X: p.X * invW, Y: p.Y * invW, Z: p.Z * invW}, true
}

func ndcToScreen(p ndcPoint, w, h int) (x, y int) {
	sx := (p.X*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
}

func triangleNormal(a, b, c Vec3) Vec3 {
	return Normalize(Cross(b.Sub(a), c.Sub(a)))
}

func lightIntensity(l Light, n Vec3) Scalar {
	amb := Clamp01(l.Ambient)
	dir := Clamp01(l.DirAmount)
	ld := Normalize(l.Dir)
	if ld == (Vec3{}) {
		return amb
	}
	d := Dot(n, ld.Mul(-1))
	if d < 0 {
		d = 0
	}
	return Clamp01(amb + d*dir)
}

func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	idx := y*w + x
	if x < 0 || x >= w || idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]. Map to [0,1].
	d := Clamp01(z*0.5 + 0.5)
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

func (r *Renderer) drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// bounds clips a triangle's bounding box to the target.
func bounds(w, h, x0, y0, x1, y1, x2, y2 int) (minX, minY, maxX, maxY int, ok bool) {
	minX, maxX = max(min(x0, x1, x2), 0), min(max(x0, x1, x2), w-1)
	minY, maxY = max(min(y0, y1, y2), 0), min(max(y0, y1, y2), h-1)
	return minX, minY, maxX, maxY, minX <= maxX && minY <= maxY
}

func (r *Renderer) fillTriangleFlat(t Target, w, h int, x0, y0 int, z0 float32, x1, y1 int, z1 float32, x2, y2 int, z2 float32, c Color) {
	minX, minY, maxX, maxY, ok := bounds(w, h, x0, y0, x1, y1, x2, y2)
	if !ok {
		return
	}
	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	invArea := 1 / float32(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			a0, a1, a2, in := barycentric(x0, y0, x1, y1, x2, y2, x, y, area, invArea)
			if !in {
				continue
			}
			if !r.depthTest(w, x, y, a0*z0+a1*z1+a2*z2) {
				continue
			}
			t.SetPixel(x, y, c)
		}
	}
}

func (r *Renderer) fillTriangle(t Target, w, h int, x0, y0 int, z0 float32, c0 Color, x1, y1 int, z1 float32, c1 Color, x2, y2 int, z2 float32, c2 Color) {
	minX, minY, maxX, maxY, ok := bounds(w, h, x0, y0, x1, y1, x2, y2)
	if !ok {
		return
	}
	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	invArea := 1 / float32(area)

	r0, g0, b0 := float32(c0.R), float32(c0.G), float32(c0.B)
	r1, g1, b1 := float32(c1.R), float32(c1.G), float32(c1.B)
	r2, g2, b2 := float32(c2.R), float32(c2.G), float32(c2.B)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			a0, a1, a2, in := barycentric(x0, y0, x1, y1, x2, y2, x, y, area, invArea)
			if !in {
				continue
			}
			if !r.depthTest(w, x, y, a0*z0+a1*z1+a2*z2) {
				continue
			}
			rr := uint8(clampF32(a0*r0+a1*r1+a2*r2, 0, 255))
			gg := uint8(clampF32(a0*g0+a1*g1+a2*g2, 0, 255))
			bb := uint8(clampF32(a0*b0+a1*b1+a2*b2, 0, 255))
			t.SetPixel(x, y, Color{R: rr, G: gg, B: bb, A: 0xFF})
		}
	}
}

// barycentric accepts both windings so that two-sided tubes stay closed.
func barycentric(x0, y0, x1, y1, x2, y2, x, y, area int, invArea float32) (a0, a1, a2 float32, in bool) {
	w0 := edgeFn(x1, y1, x2, y2, x, y)
	w1 := edgeFn(x2, y2, x0, y0, x, y)
	w2 := edgeFn(x0, y0, x1, y1, x, y)
	if area > 0 {
		if (w0 | w1 | w2) < 0 {
			return 0, 0, 0, false
		}
	} else if w0 > 0 || w1 > 0 || w2 > 0 {
		return 0, 0, 0, false
	}
	return float32(w0) * invArea, float32(w1) * invArea, float32(w2) * invArea, true
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
