package quarkgl

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Scalar is the numeric type used by QuarkGL math operations.
type Scalar = float32

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z Scalar
}

// Vec4 is a 4D vector.
type Vec4 struct {
	X, Y, Z, W Scalar
}

// Mat4 is a column-major 4x4 matrix.
//
// It matches the conventional OpenGL layout, m[col*4+row], and converts
// directly to and from mgl32.Mat4.
type Mat4 [16]Scalar

func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3   { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3   { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s Scalar) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func Dot(a, b Vec3) Scalar { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func Len(v Vec3) Scalar { return math32.Sqrt(Dot(v, v)) }

func Normalize(v Vec3) Vec3 {
	l := Len(v)
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

func Clamp01(v Scalar) Scalar {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func Mat4Identity() Mat4 { return Mat4(mgl32.Ident4()) }

// Mat4Mul returns a*b: b is applied first.
func Mat4Mul(a, b Mat4) Mat4 { return Mat4(mgl32.Mat4(a).Mul4(mgl32.Mat4(b))) }

func Mat4MulV4(m Mat4, v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// TransformPoint applies m to p with w=1 and drops the w component.
func TransformPoint(m Mat4, p Vec3) Vec3 {
	r := Mat4MulV4(m, Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1})
	return Vec3{X: r.X, Y: r.Y, Z: r.Z}
}

// TransformDir applies the linear part of m to d.
func TransformDir(m Mat4, d Vec3) Vec3 {
	r := Mat4MulV4(m, Vec4{X: d.X, Y: d.Y, Z: d.Z})
	return Vec3{X: r.X, Y: r.Y, Z: r.Z}
}

func Mat4Translate(v Vec3) Mat4 { return Mat4(mgl32.Translate3D(v.X, v.Y, v.Z)) }

func Mat4RotateX(rad Scalar) Mat4 { return Mat4(mgl32.HomogRotate3DX(rad)) }

func Mat4RotateY(rad Scalar) Mat4 { return Mat4(mgl32.HomogRotate3DY(rad)) }

func Mat4RotateZ(rad Scalar) Mat4 { return Mat4(mgl32.HomogRotate3DZ(rad)) }

func Mat4LookAt(eye, target, up Vec3) Mat4 {
	return Mat4(mgl32.LookAtV(glVec(eye), glVec(target), glVec(up)))
}

func Mat4Perspective(fovYRad Scalar, aspect Scalar, zNear, zFar Scalar) Mat4 {
	if aspect == 0 {
		aspect = 1
	}
	return Mat4(mgl32.Perspective(fovYRad, aspect, zNear, zFar))
}

func glVec(v Vec3) mgl32.Vec3 { return mgl32.Vec3{v.X, v.Y, v.Z} }
