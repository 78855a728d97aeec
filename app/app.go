package app

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"helixview/hal"
	"helixview/helix"
	"helixview/internal/config"
	"helixview/internal/logging"
	"helixview/quarkgl"
	"helixview/scene"
)

// ErrQuit is returned from Step when the user asks to leave.
var ErrQuit = hal.ErrQuit

const (
	orbitSpeed = 1.2 // radians per second while an arrow key is held
	zoomStep   = 3
	turnsStep  = 0.5
	minTurns   = 0.5
)

// App is the helix viewer: it mounts a helix on a stage, advances it once per
// frame and draws it into the host framebuffer.
type App struct {
	cfg  config.Config
	opts scene.Options
	log  *slog.Logger

	fb     hal.Framebuffer
	keys   <-chan hal.KeyEvent
	held   map[hal.KeyCode]bool
	target *quarkgl.RGB565Target

	stage    *scene.Stage
	vis      *scene.Visualization
	pipeline helix.Pipeline
	solid    quarkgl.RenderMode

	fps    float64
	frames uint64
	closed bool
}

// New builds the viewer on h. Log records go to h's logger at the configured
// level.
func New(h hal.HAL, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, _ := cfg.LogLevel()
	log := logging.New(logging.NewLineWriter(h.Logger()), level)

	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, errors.New("app: host has no display")
	}
	fb := disp.Framebuffer()
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("app: unsupported pixel format %d", fb.Format())
	}

	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	sc, err := cfg.Stage()
	if err != nil {
		return nil, err
	}
	sc.Width, sc.Height = fb.Width(), fb.Height()

	a := &App{
		cfg:  cfg,
		opts: opts,
		log:  log,
		fb:   fb,
		held: make(map[hal.KeyCode]bool),
		target: &quarkgl.RGB565Target{
			Buf:    fb.Buffer(),
			Stride: fb.StrideBytes(),
			W:      fb.Width(),
			H:      fb.Height(),
		},
		stage: scene.NewStage(sc, log),
		solid: quarkgl.RenderSolidSmooth,
	}
	if sc.Mode != quarkgl.RenderWireframe {
		a.solid = sc.Mode
	}
	if in := h.Input(); in != nil && in.Keyboard() != nil {
		a.keys = in.Keyboard().Events()
	}

	if err := a.mount(opts); err != nil {
		a.stage.Dispose()
		return nil, err
	}
	return a, nil
}

func (a *App) mount(opts scene.Options) error {
	v, err := scene.Mount(a.stage, opts, &a.pipeline)
	if err != nil {
		return err
	}
	asm := v.Assembly()
	a.log.Info("helix mounted",
		"turns", opts.Helix.Turns,
		"radius", opts.Helix.Radius,
		"height", opts.Helix.Height,
		"rungs", len(asm.Rungs()),
		"degenerate", asm.Degenerate,
		"vertices", asm.Vertices(),
	)
	a.vis, a.opts = v, opts
	return nil
}

// remount swaps the helix for one built from opts, keeping the current spin
// angle. On failure the current helix stays up.
func (a *App) remount(opts scene.Options) {
	if err := opts.Helix.Validate(); err != nil {
		a.log.Warn("helix not changed", "error", err)
		return
	}
	old := a.vis
	old.Unmount()
	opts.StartAngle = old.Angle()
	if err := a.mount(opts); err != nil {
		a.log.Warn("helix not changed", "error", err)
		restore := a.opts
		restore.StartAngle = opts.StartAngle
		if err := a.mount(restore); err != nil {
			a.log.Error("restore helix", "error", err)
		}
	}
}

// Step advances one frame: input, animation, render, overlay, present.
func (a *App) Step(delta time.Duration) (err error) {
	if a.closed {
		return ErrQuit
	}
	defer func() {
		if r := recover(); r != nil {
			err = a.crash(r)
		}
	}()

	if a.drainInput(delta) {
		return ErrQuit
	}
	a.stage.Tick(delta)
	a.stage.Render(a.target)
	a.trackFPS(delta)
	a.drawOverlay()
	a.frames++
	return a.fb.Present()
}

func (a *App) trackFPS(delta time.Duration) {
	if delta <= 0 {
		return
	}
	inst := float64(time.Second) / float64(delta)
	if a.fps == 0 {
		a.fps = inst
		return
	}
	a.fps += (inst - a.fps) * 0.1
}

// Close tears down the stage. It is idempotent.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.stage.Dispose()
	a.log.Info("viewer closed", "frames", a.frames)
}

// Snapshot renders the stage at full color, without the overlay. Once the
// app is closed it falls back to the last presented framebuffer.
func (a *App) Snapshot() *image.RGBA {
	if a.closed {
		return hal.FramebufferImage(a.fb)
	}
	t := &quarkgl.RGBATarget{Img: image.NewRGBA(image.Rect(0, 0, a.fb.Width(), a.fb.Height()))}
	a.stage.Render(t)
	return t.Img
}

// Visualization returns the mounted helix.
func (a *App) Visualization() *scene.Visualization { return a.vis }

// Stage returns the scene host.
func (a *App) Stage() *scene.Stage { return a.stage }
