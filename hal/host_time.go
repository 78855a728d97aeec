package hal

import "time"

// hostClock measures wall time between frames.
type hostClock struct {
	now  func() time.Time
	last time.Time
}

func newHostClock() *hostClock {
	return &hostClock{now: time.Now}
}

// step returns the time since the previous step; the first step returns 0.
// Deltas are capped so a stalled window does not jump the animation.
func (c *hostClock) step() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		return 0
	}
	if d > maxFrameDelta {
		d = maxFrameDelta
	}
	return d
}

const maxFrameDelta = 250 * time.Millisecond
