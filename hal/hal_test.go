package hal

import (
	"bytes"
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGB565RoundTrip(t *testing.T) {
	for _, c := range [][3]uint8{{0, 0, 0}, {255, 255, 255}, {255, 0, 0}, {0, 255, 0}, {0, 0, 255}} {
		r, g, b := rgb888From565(rgb565(c[0], c[1], c[2]))
		assert.Equal(t, c, [3]uint8{r, g, b})
	}
}

func TestFramebufferImage(t *testing.T) {
	fb := newHostFramebuffer(3, 2)
	fb.ClearRGB(0, 0, 255)
	img := FramebufferImage(fb)
	require.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	assert.Equal(t, []uint8{0, 0, 255, 255}, img.Pix[len(img.Pix)-4:])
}

func TestPresentPublishesFrame(t *testing.T) {
	fb := newHostFramebuffer(1, 1)
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))

	fb.ClearRGB(255, 255, 255)
	fb.snapshotRGBA(img)
	assert.Equal(t, uint8(0), img.Pix[0])

	require.NoError(t, fb.Present())
	fb.snapshotRGBA(img)
	assert.Equal(t, uint8(255), img.Pix[0])
}

func TestClockStep(t *testing.T) {
	base := time.Unix(100, 0)
	now := base
	c := &hostClock{now: func() time.Time { return now }}

	assert.Zero(t, c.step())
	now = now.Add(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, c.step())
	now = now.Add(5 * time.Second)
	assert.Equal(t, maxFrameDelta, c.step())
	now = base
	assert.Zero(t, c.step())
}

func TestLoggerWritesLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	l.WriteLineString("a")
	l.WriteLineBytes([]byte("b"))
	assert.Equal(t, "a\nb\n", buf.String())
}

type countingApp struct {
	h      HAL
	deltas []time.Duration
	quitAt int
	closed int
}

func (a *countingApp) Step(d time.Duration) error {
	a.deltas = append(a.deltas, d)
	fb := a.h.Display().Framebuffer()
	fb.ClearRGB(255, 0, 0)
	_ = fb.Present()
	if a.quitAt > 0 && len(a.deltas) >= a.quitAt {
		return ErrQuit
	}
	return nil
}

func (a *countingApp) Close() { a.closed++ }

func TestRunHeadlessFrames(t *testing.T) {
	app := &countingApp{}
	var snap *image.RGBA
	err := RunHeadless(context.Background(), HeadlessConfig{
		Host:     HostConfig{Width: 4, Height: 4, Log: &bytes.Buffer{}},
		Hz:       1000,
		Frames:   5,
		Snapshot: func(img *image.RGBA) { snap = img },
	}, func(h HAL) (App, error) {
		app.h = h
		return app, nil
	})
	require.NoError(t, err)
	assert.Len(t, app.deltas, 5)
	assert.Equal(t, time.Millisecond, app.deltas[0])
	assert.Equal(t, 1, app.closed)
	require.NotNil(t, snap)
	assert.Equal(t, []uint8{255, 0, 0, 255}, snap.Pix[:4])
}

type snapshotApp struct {
	countingApp
	img *image.RGBA
}

func (a *snapshotApp) Snapshot() *image.RGBA { return a.img }

func TestRunHeadlessPrefersAppSnapshot(t *testing.T) {
	app := &snapshotApp{img: image.NewRGBA(image.Rect(0, 0, 2, 2))}
	var snap *image.RGBA
	err := RunHeadless(context.Background(), HeadlessConfig{
		Host:     HostConfig{Width: 4, Height: 4, Log: &bytes.Buffer{}},
		Hz:       1000,
		Frames:   2,
		Snapshot: func(img *image.RGBA) { snap = img },
	}, func(h HAL) (App, error) {
		app.h = h
		return app, nil
	})
	require.NoError(t, err)
	assert.Same(t, app.img, snap)
	assert.Equal(t, 1, app.closed)

	app.img = nil
	err = RunHeadless(context.Background(), HeadlessConfig{
		Host:     HostConfig{Width: 4, Height: 4, Log: &bytes.Buffer{}},
		Hz:       1000,
		Frames:   1,
		Snapshot: func(img *image.RGBA) { snap = img },
	}, func(h HAL) (App, error) {
		app.h = h
		return app, nil
	})
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 4, 4), snap.Bounds())
	assert.Equal(t, []uint8{255, 0, 0, 255}, snap.Pix[:4])
}

func TestRunHeadlessQuit(t *testing.T) {
	app := &countingApp{quitAt: 3}
	err := RunHeadless(context.Background(), HeadlessConfig{Hz: 1000}, func(h HAL) (App, error) {
		app.h = h
		return app, nil
	})
	require.NoError(t, err)
	assert.Len(t, app.deltas, 3)
	assert.Equal(t, 1, app.closed)
}

func TestRunHeadlessContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	app := &countingApp{}
	err := RunHeadless(ctx, HeadlessConfig{Hz: 200}, func(h HAL) (App, error) {
		app.h = h
		return app, nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, app.closed)
}

func TestRunHeadlessAppError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), HeadlessConfig{}, func(HAL) (App, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestNewDefaults(t *testing.T) {
	h := New(HostConfig{})
	fb := h.Display().Framebuffer()
	assert.Equal(t, 320, fb.Width())
	assert.Equal(t, 640, fb.StrideBytes())
	assert.NotNil(t, h.Input().Keyboard().Events())
}
