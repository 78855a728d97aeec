package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// HostConfig sizes the host framebuffer and window.
type HostConfig struct {
	Width, Height int
	Scale         int    // window pixels per framebuffer pixel
	TPS           int    // window frame rate
	Title         string // window title
	Log           io.Writer
}

func (c HostConfig) withDefaults() HostConfig {
	if c.Width <= 0 {
		c.Width = 320
	}
	if c.Height <= 0 {
		c.Height = 320
	}
	if c.Scale <= 0 {
		c.Scale = 2
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.Title == "" {
		c.Title = "helix"
	}
	if c.Log == nil {
		c.Log = os.Stderr
	}
	return c
}

type hostHAL struct {
	cfg    HostConfig
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	clock  *hostClock
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHost(cfg)
}

func newHost(cfg HostConfig) *hostHAL {
	cfg = cfg.withDefaults()
	return &hostHAL{
		cfg:    cfg,
		logger: NewLogger(cfg.Log).(*hostLogger),
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		kbd:    newHostKeyboard(),
		clock:  newHostClock(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

// NewLogger returns a Logger writing one line per call to w.
func NewLogger(w io.Writer) Logger {
	return &hostLogger{w: w}
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
