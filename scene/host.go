package scene

import (
	"errors"
	"time"

	"helixview/quarkgl"
)

var (
	// ErrSceneFull means the host has no free mesh slot.
	ErrSceneFull = errors.New("scene: no free mesh slot")
	// ErrDisposed means the host has been torn down.
	ErrDisposed = errors.New("scene: host disposed")
)

// FrameFunc receives the time elapsed since the previous frame.
type FrameFunc func(delta time.Duration)

// Host is the rendering backend a visualization mounts onto.
//
// Frame callbacks run in subscription order, once per frame, on the host's
// frame loop. Cancel functions are idempotent and may be called from inside a
// callback.
type Host interface {
	AddMesh(m quarkgl.Mesh) (int, error)
	RemoveMesh(id int)
	UpdateMeshTransform(id int, m quarkgl.Mat4)
	OnFrame(fn FrameFunc) (cancel func())
	OnDispose(fn func()) (cancel func())
}
