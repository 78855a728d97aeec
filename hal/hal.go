package hal

import (
	"errors"
	"image"
	"time"
)

// ErrQuit is returned from App.Step to end the run loop cleanly.
var ErrQuit = errors.New("hal: quit requested")

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier. Printable keys arrive as runes with
// KeyUnknown.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL is the only contact point between the viewer and the host platform.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}

// App is driven by a runner: Step once per frame with the time elapsed since
// the previous frame, Close once when the loop ends.
type App interface {
	Step(delta time.Duration) error
	Close()
}

// Snapshotter is implemented by apps that can render their current frame at
// full color. RunHeadless prefers it over the RGB565 framebuffer.
type Snapshotter interface {
	Snapshot() *image.RGBA
}

// NewAppFunc builds the app once the host is ready.
type NewAppFunc func(HAL) (App, error)
