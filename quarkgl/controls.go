package quarkgl

// OrbitController orbits a camera around a target point.
//
// It does not read input itself; the host feeds it yaw/pitch/zoom deltas.
type OrbitController struct {
	Target Vec3
	Yaw    Scalar
	Pitch  Scalar
	Radius Scalar

	MinRadius Scalar
	MaxRadius Scalar
}

// maxPitch keeps the camera off the poles where the up vector degenerates.
const maxPitch Scalar = 1.5

func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	r := c.clampRadius(c.Radius)
	if r == 0 {
		r = 3
	}

	m := Mat4Mul(Mat4RotateY(c.Yaw), Mat4RotateX(c.Pitch))
	p := TransformPoint(m, V3(0, 0, r))

	cam.Position = c.Target.Add(p)
	cam.Target = c.Target
	if cam.Up == (Vec3{}) {
		cam.Up = V3(0, 1, 0)
	}
}

func (c *OrbitController) Rotate(deltaYaw, deltaPitch Scalar) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

func (c *OrbitController) Zoom(delta Scalar) {
	c.Radius = c.clampRadius(c.Radius + delta)
}

func (c *OrbitController) clampRadius(r Scalar) Scalar {
	if c.MinRadius != 0 && r < c.MinRadius {
		r = c.MinRadius
	}
	if c.MaxRadius != 0 && r > c.MaxRadius {
		r = c.MaxRadius
	}
	return r
}
