package scene

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helixview/quarkgl"
)

func TestStageFrameOrderAndCancel(t *testing.T) {
	s := NewStage(StageConfig{Width: 8, Height: 8}, nil)
	var calls []string
	cancelA := s.OnFrame(func(time.Duration) { calls = append(calls, "a") })
	s.OnFrame(func(time.Duration) { calls = append(calls, "b") })

	s.Tick(time.Millisecond)
	cancelA()
	cancelA()
	s.Tick(time.Millisecond)

	assert.Equal(t, []string{"a", "b", "b"}, calls)
	assert.Equal(t, 1, s.Subscribers())
	assert.Equal(t, uint64(2), s.Frames())
}

func TestStageCancelInsideCallback(t *testing.T) {
	s := NewStage(StageConfig{Width: 8, Height: 8}, nil)
	n := 0
	var cancel func()
	cancel = s.OnFrame(func(time.Duration) {
		n++
		cancel()
	})
	s.Tick(time.Millisecond)
	s.Tick(time.Millisecond)
	assert.Equal(t, 1, n)
	assert.Zero(t, s.Subscribers())
}

func TestStageDeltaPassedThrough(t *testing.T) {
	s := NewStage(StageConfig{Width: 8, Height: 8}, nil)
	var got []time.Duration
	s.OnFrame(func(d time.Duration) { got = append(got, d) })
	s.Tick(16 * time.Millisecond)
	s.Tick(33 * time.Millisecond)
	assert.Equal(t, []time.Duration{16 * time.Millisecond, 33 * time.Millisecond}, got)
}

func TestStageDisposeStopsFrames(t *testing.T) {
	s := NewStage(StageConfig{Width: 8, Height: 8}, nil)
	frames, disposed := 0, 0
	s.OnFrame(func(time.Duration) { frames++ })
	s.OnDispose(func() { disposed++ })

	s.Tick(time.Millisecond)
	s.Dispose()
	s.Dispose()
	s.Tick(time.Millisecond)

	assert.Equal(t, 1, frames)
	assert.Equal(t, 1, disposed)
	assert.True(t, s.Disposed())

	_, err := s.AddMesh(quarkgl.Mesh{})
	assert.ErrorIs(t, err, ErrDisposed)

	// Late subscriptions never fire.
	s.OnFrame(func(time.Duration) { frames++ })
	s.Tick(time.Millisecond)
	assert.Equal(t, 1, frames)
}

func TestStageFull(t *testing.T) {
	s := NewStage(StageConfig{Width: 8, Height: 8, MaxMeshes: 1}, nil)
	_, err := s.AddMesh(quarkgl.Mesh{})
	require.NoError(t, err)
	_, err = s.AddMesh(quarkgl.Mesh{})
	assert.ErrorIs(t, err, ErrSceneFull)
}

func TestStageRendersHelix(t *testing.T) {
	cfg := DefaultStageConfig()
	cfg.Width, cfg.Height = 64, 64
	s := NewStage(cfg, nil)
	opts := DefaultOptions()
	opts.Helix.Height = 10
	_, err := Mount(s, opts, nil)
	require.NoError(t, err)

	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	s.Render(&quarkgl.RGBATarget{Img: img})
	assert.Equal(t, s.Meshes(), s.Renderer().Stats().Meshes)
	assert.Positive(t, s.Renderer().Stats().Triangles)

	bg := cfg.Background
	lit := 0
	for i := 0; i+3 < len(img.Pix); i += 4 {
		if img.Pix[i] != bg.R || img.Pix[i+1] != bg.G || img.Pix[i+2] != bg.B {
			lit++
		}
	}
	assert.Positive(t, lit)
}
