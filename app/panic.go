package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"
)

// crash reports a panic raised during a frame: the stack goes to the log and
// a summary is painted over the framebuffer. The app is closed afterwards.
func (a *App) crash(v any) error {
	stack := debug.Stack()
	a.log.Error("frame panic", "panic", fmt.Sprint(v), "frame", a.frames)
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			a.log.Debug(line)
		}
	}

	a.fb.ClearRGB(255, 255, 255)
	fg := color.RGBA{A: 255}
	maxCols := int16(a.fb.Width()/4) - 1

	lines := []string{
		"helix panic:",
		fmt.Sprintf("frame: %d", a.frames),
		fmt.Sprintf("panic: %v", v),
	}
	y := 2
	for _, line := range lines {
		for line != "" && y+lineHeight <= a.fb.Height() {
			var head string
			head, line = takeRunes(line, maxCols)
			a.drawText(2, y, head, fg)
			y += lineHeight
		}
	}
	_ = a.fb.Present()

	a.Close()
	return fmt.Errorf("app: panic in frame %d: %v", a.frames, v)
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return s, ""
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
