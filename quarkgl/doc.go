// Package quarkgl is a small, predictable software 3D engine.
//
// It is meant for decorative visualization: a handful of meshes, one camera,
// one light, and an orbit controller. It is not a game engine and does not
// provide a GPU abstraction.
//
// Pipeline (fixed):
//
//	Scene → Transform → Projection → Clipping → Rasterization → Target.
//
// The renderer draws into a caller-provided Target and avoids allocations in
// the render hot path. All math is float32; Mat4 shares its column-major
// layout with mathgl's mgl32.Mat4 so the two convert directly.
package quarkgl
