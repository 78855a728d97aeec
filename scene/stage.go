package scene

import (
	"fmt"
	"log/slog"
	"time"

	"helixview/internal/logging"
	"helixview/quarkgl"
)

// StageConfig sizes and dresses a Stage.
type StageConfig struct {
	Width, Height int
	MaxMeshes     int
	Background    quarkgl.Color
	Mode          quarkgl.RenderMode

	CameraDistance float32
	FOVYRad        float32
	Near, Far      float32
}

// DefaultStageConfig frames a helix about 35 units tall.
func DefaultStageConfig() StageConfig {
	return StageConfig{
		Width:          320,
		Height:         320,
		MaxMeshes:      256,
		Background:     quarkgl.RGB(0x05, 0x08, 0x0f),
		Mode:           quarkgl.RenderSolidSmooth,
		CameraDistance: 45,
		FOVYRad:        0.9,
		Near:           0.1,
		Far:            200,
	}
}

type subscription[F any] struct {
	fn   F
	dead bool
}

// subscriptions is an ordered callback list that tolerates cancellation
// while it is being walked.
type subscriptions[F any] struct {
	subs []*subscription[F]
}

func (l *subscriptions[F]) add(fn F) func() {
	s := &subscription[F]{fn: fn}
	l.subs = append(l.subs, s)
	return func() { s.dead = true }
}

func (l *subscriptions[F]) each(call func(F)) {
	n := len(l.subs)
	for i := 0; i < n && i < len(l.subs); i++ {
		if s := l.subs[i]; !s.dead {
			call(s.fn)
		}
	}
	l.compact()
}

func (l *subscriptions[F]) compact() {
	live := l.subs[:0]
	for _, s := range l.subs {
		if !s.dead {
			live = append(live, s)
		}
	}
	for i := len(live); i < len(l.subs); i++ {
		l.subs[i] = nil
	}
	l.subs = live
}

func (l *subscriptions[F]) len() int {
	n := 0
	for _, s := range l.subs {
		if !s.dead {
			n++
		}
	}
	return n
}

func (l *subscriptions[F]) clear() {
	for _, s := range l.subs {
		s.dead = true
	}
	l.subs = nil
}

// Stage is a Host backed by a quarkgl scene and renderer. It owns the camera,
// light and orbit controls.
type Stage struct {
	scene    *quarkgl.Scene
	renderer *quarkgl.Renderer
	orbit    quarkgl.OrbitController
	log      *slog.Logger

	frames   subscriptions[FrameFunc]
	disposes subscriptions[func()]
	frameNo  uint64
	disposed bool
}

// NewStage creates a stage. A nil logger discards output.
func NewStage(cfg StageConfig, log *slog.Logger) *Stage {
	if log == nil {
		log = logging.NewNop()
	}
	def := DefaultStageConfig()
	if cfg.MaxMeshes <= 0 {
		cfg.MaxMeshes = def.MaxMeshes
	}
	if cfg.CameraDistance <= 0 {
		cfg.CameraDistance = def.CameraDistance
	}
	if cfg.FOVYRad <= 0 {
		cfg.FOVYRad = def.FOVYRad
	}
	if cfg.Near <= 0 {
		cfg.Near = def.Near
	}
	if cfg.Far <= cfg.Near {
		cfg.Far = cfg.Near + def.Far
	}

	s := &Stage{
		scene:    quarkgl.CreateScene(cfg.MaxMeshes),
		renderer: quarkgl.NewRenderer(cfg.Width, cfg.Height, true),
		log:      log,
		orbit: quarkgl.OrbitController{
			Radius:    cfg.CameraDistance,
			MinRadius: cfg.CameraDistance / 4,
			MaxRadius: cfg.CameraDistance * 4,
		},
	}
	s.renderer.ClearColor = cfg.Background
	s.renderer.Mode = cfg.Mode

	cam := &s.scene.Camera
	cam.FOVYRad = cfg.FOVYRad
	cam.Near = cfg.Near
	cam.Far = cfg.Far
	cam.Up = quarkgl.V3(0, 1, 0)
	s.orbit.Apply(cam)

	s.scene.Light.Mode = quarkgl.LightAmbientDirectional
	s.scene.Light.Ambient = 0.22
	s.scene.Light.Dir = quarkgl.Normalize(quarkgl.V3(-0.4, -0.6, -0.7))
	s.scene.Light.DirAmount = 0.85
	return s
}

func (s *Stage) AddMesh(m quarkgl.Mesh) (int, error) {
	if s.disposed {
		return -1, ErrDisposed
	}
	id := s.scene.AddMesh(m)
	if id < 0 {
		return -1, fmt.Errorf("%w (capacity %d)", ErrSceneFull, s.scene.Cap())
	}
	return id, nil
}

func (s *Stage) RemoveMesh(id int) { s.scene.RemoveMesh(id) }

func (s *Stage) UpdateMeshTransform(id int, m quarkgl.Mat4) { s.scene.UpdateMeshTransform(id, m) }

func (s *Stage) OnFrame(fn FrameFunc) func() {
	if s.disposed || fn == nil {
		return func() {}
	}
	return s.frames.add(fn)
}

func (s *Stage) OnDispose(fn func()) func() {
	if s.disposed || fn == nil {
		return func() {}
	}
	return s.disposes.add(fn)
}

// Tick runs one frame's callbacks. It does nothing once the stage is
// disposed.
func (s *Stage) Tick(delta time.Duration) {
	if s.disposed {
		return
	}
	s.frameNo++
	s.frames.each(func(fn FrameFunc) { fn(delta) })
}

// Render draws the current scene into t.
func (s *Stage) Render(t quarkgl.Target) {
	if s.disposed {
		return
	}
	s.orbit.Apply(&s.scene.Camera)
	s.renderer.Render(t, s.scene)
}

// Dispose runs the dispose callbacks and drops every subscription, so no
// frame callback runs afterwards. It is idempotent.
func (s *Stage) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.frames.clear()
	s.disposes.each(func(fn func()) { fn() })
	s.disposes.clear()
	s.log.Debug("stage disposed", "frames", s.frameNo, "meshes_left", s.scene.Len())
}

// Disposed reports whether Dispose has run.
func (s *Stage) Disposed() bool { return s.disposed }

// Orbit returns the camera controller.
func (s *Stage) Orbit() *quarkgl.OrbitController { return &s.orbit }

// Renderer returns the renderer, e.g. to switch modes.
func (s *Stage) Renderer() *quarkgl.Renderer { return s.renderer }

// Meshes returns the number of live meshes.
func (s *Stage) Meshes() int { return s.scene.Len() }

// Subscribers returns the number of live frame callbacks.
func (s *Stage) Subscribers() int { return s.frames.len() }

// Frames returns the number of ticks processed.
func (s *Stage) Frames() uint64 { return s.frameNo }

// MeshTransform returns the current transform of a mesh.
func (s *Stage) MeshTransform(id int) (quarkgl.Mat4, bool) { return s.scene.MeshTransform(id) }
