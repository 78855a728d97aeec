package app

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helixview/hal"
	"helixview/internal/config"
	"helixview/quarkgl"
)

// testHAL wraps the host HAL with a keyboard the test can type on.
type testHAL struct {
	hal.HAL
	keys chan hal.KeyEvent
}

func (h *testHAL) Input() hal.Input { return h }

func (h *testHAL) Keyboard() hal.Keyboard { return h }

func (h *testHAL) Events() <-chan hal.KeyEvent { return h.keys }

func newTestApp(t *testing.T) (*App, *testHAL, *bytes.Buffer) {
	t.Helper()
	var log bytes.Buffer
	h := &testHAL{
		HAL:  hal.New(hal.HostConfig{Width: 96, Height: 96, Log: &log}),
		keys: make(chan hal.KeyEvent, 16),
	}
	cfg := config.Default()
	cfg.Helix.Height = 20
	a, err := New(h, cfg)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a, h, &log
}

func typeRune(h *testHAL, r rune) { h.keys <- hal.KeyEvent{Press: true, Rune: r} }

func TestStepRendersAndSpins(t *testing.T) {
	a, _, log := newTestApp(t)
	assert.Contains(t, log.String(), "helix mounted")

	for i := 0; i < 10; i++ {
		require.NoError(t, a.Step(time.Second/60))
	}
	assert.Less(t, a.Visualization().Angle(), 0.0)
	assert.Equal(t, uint64(10), a.Stage().Frames())
	assert.Positive(t, a.Stage().Renderer().Stats().Triangles)

	img := a.Snapshot()
	assert.Equal(t, 96, img.Bounds().Dx())
	assert.Equal(t, uint8(0xFF), img.Pix[3])
}

func TestSnapshotKeepsFullColor(t *testing.T) {
	a, _, _ := newTestApp(t)
	require.NoError(t, a.Step(time.Second/60))

	img := a.Snapshot()
	require.Equal(t, 96, img.Bounds().Dx())
	assert.Equal(t, []uint8{0x05, 0x08, 0x0f, 0xff}, img.Pix[:4])

	fb := hal.FramebufferImage(a.fb)
	assert.NotEqual(t, img.Pix[:4], fb.Pix[:4])

	a.Close()
	assert.Equal(t, fb.Pix, a.Snapshot().Pix)
}

func TestQuitKeys(t *testing.T) {
	a, h, _ := newTestApp(t)
	typeRune(h, 'q')
	assert.ErrorIs(t, a.Step(time.Millisecond), ErrQuit)

	b, h2, _ := newTestApp(t)
	h2.keys <- hal.KeyEvent{Code: hal.KeyEscape, Press: true}
	assert.ErrorIs(t, b.Step(time.Millisecond), ErrQuit)
}

func TestWireframeToggle(t *testing.T) {
	a, h, _ := newTestApp(t)
	typeRune(h, 'w')
	require.NoError(t, a.Step(time.Millisecond))
	assert.Equal(t, quarkgl.RenderWireframe, a.Stage().Renderer().Mode)
	typeRune(h, 'w')
	require.NoError(t, a.Step(time.Millisecond))
	assert.Equal(t, quarkgl.RenderSolidSmooth, a.Stage().Renderer().Mode)
}

func TestTurnsKeysRemount(t *testing.T) {
	a, h, _ := newTestApp(t)
	before := len(a.Visualization().Assembly().Rungs())

	typeRune(h, 'T')
	require.NoError(t, a.Step(time.Millisecond))
	assert.Equal(t, 3.5, a.Visualization().Options().Helix.Turns)
	assert.Greater(t, len(a.Visualization().Assembly().Rungs()), before)
	assert.Equal(t, 1, a.Stage().Subscribers())

	for i := 0; i < 10; i++ {
		typeRune(h, 't')
	}
	require.NoError(t, a.Step(time.Millisecond))
	assert.Equal(t, minTurns, a.Visualization().Options().Helix.Turns)
}

func TestRemountKeepsSpinAngle(t *testing.T) {
	a, h, _ := newTestApp(t)
	for i := 0; i < 30; i++ {
		require.NoError(t, a.Step(time.Second/30))
	}
	before := a.Visualization().Angle()
	require.InDelta(t, -0.5, before, 1e-6)

	typeRune(h, 'T')
	require.NoError(t, a.Step(time.Millisecond))
	assert.Equal(t, 3.5, a.Visualization().Options().Helix.Turns)
	assert.InDelta(t, before-0.001*0.5, a.Visualization().Angle(), 1e-6)
}

func TestArrowKeysOrbit(t *testing.T) {
	a, h, _ := newTestApp(t)
	h.keys <- hal.KeyEvent{Code: hal.KeyRight, Press: true}
	require.NoError(t, a.Step(time.Second))
	yaw := a.Stage().Orbit().Yaw
	assert.InDelta(t, orbitSpeed, yaw, 1e-5)

	h.keys <- hal.KeyEvent{Code: hal.KeyRight, Press: false}
	require.NoError(t, a.Step(time.Second))
	assert.Equal(t, yaw, a.Stage().Orbit().Yaw)
}

func TestZoomKeys(t *testing.T) {
	a, h, _ := newTestApp(t)
	r := a.Stage().Orbit().Radius
	typeRune(h, '+')
	require.NoError(t, a.Step(time.Millisecond))
	assert.Less(t, a.Stage().Orbit().Radius, r)
}

func TestCloseDisposesStage(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.Close()
	a.Close()
	assert.True(t, a.Stage().Disposed())
	assert.False(t, a.Visualization().Mounted())
	assert.ErrorIs(t, a.Step(time.Millisecond), ErrQuit)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Helix.Radius = -1
	_, err := New(hal.New(hal.HostConfig{Width: 8, Height: 8, Log: &bytes.Buffer{}}), cfg)
	assert.Error(t, err)
}

func TestTakeRunes(t *testing.T) {
	head, rest := takeRunes("héllo", 2)
	assert.Equal(t, "hé", head)
	assert.Equal(t, "llo", rest)
}
