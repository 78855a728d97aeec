package quarkgl

import "testing"

func TestOrbitApplyDefaultLooksDownZ(t *testing.T) {
	c := OrbitController{Radius: 10}
	var cam Camera
	c.Apply(&cam)
	if !near(cam.Position.X, 0) || !near(cam.Position.Y, 0) || !near(cam.Position.Z, 10) {
		t.Fatalf("Position = %+v, want (0,0,10)", cam.Position)
	}
	if cam.Up != V3(0, 1, 0) {
		t.Fatalf("Up = %+v", cam.Up)
	}
}

func TestOrbitZoomClamps(t *testing.T) {
	c := OrbitController{Radius: 10, MinRadius: 5, MaxRadius: 20}
	c.Zoom(-100)
	if c.Radius != 5 {
		t.Fatalf("Radius = %v, want 5", c.Radius)
	}
	c.Zoom(100)
	if c.Radius != 20 {
		t.Fatalf("Radius = %v, want 20", c.Radius)
	}
}

func TestOrbitPitchClamps(t *testing.T) {
	var c OrbitController
	c.Rotate(0, 10)
	if c.Pitch != maxPitch {
		t.Fatalf("Pitch = %v, want %v", c.Pitch, maxPitch)
	}
}
