package app

import (
	"time"

	"helixview/hal"
	"helixview/quarkgl"
)

// drainInput applies pending key events and held arrow keys. It reports
// whether the user asked to quit.
func (a *App) drainInput(delta time.Duration) bool {
	if a.keys != nil {
	drain:
		for {
			select {
			case ev := <-a.keys:
				if a.handleKey(ev) {
					return true
				}
			default:
				break drain
			}
		}
	}

	step := float32(orbitSpeed * delta.Seconds())
	orbit := a.stage.Orbit()
	if a.held[hal.KeyLeft] {
		orbit.Rotate(-step, 0)
	}
	if a.held[hal.KeyRight] {
		orbit.Rotate(step, 0)
	}
	if a.held[hal.KeyUp] {
		orbit.Rotate(0, step)
	}
	if a.held[hal.KeyDown] {
		orbit.Rotate(0, -step)
	}
	return false
}

func (a *App) handleKey(ev hal.KeyEvent) (quit bool) {
	if ev.Code != hal.KeyUnknown {
		switch ev.Code {
		case hal.KeyEscape:
			return ev.Press
		case hal.KeyUp, hal.KeyDown, hal.KeyLeft, hal.KeyRight:
			a.held[ev.Code] = ev.Press
		}
		return false
	}
	if !ev.Press {
		return false
	}

	switch ev.Rune {
	case 'q':
		return true
	case 'w':
		r := a.stage.Renderer()
		if r.Mode == quarkgl.RenderWireframe {
			r.SetRenderMode(a.solid)
		} else {
			r.SetRenderMode(quarkgl.RenderWireframe)
		}
	case '+', '=':
		a.stage.Orbit().Zoom(-zoomStep)
	case '-', '_':
		a.stage.Orbit().Zoom(zoomStep)
	case 't', 'T':
		opts := a.opts
		if ev.Rune == 'T' {
			opts.Helix.Turns += turnsStep
		} else {
			opts.Helix.Turns -= turnsStep
		}
		if opts.Helix.Turns < minTurns {
			return false
		}
		a.remount(opts)
	}
	return false
}
