package quarkgl

import (
	"image"
	"testing"
)

func quadScene() *Scene {
	s := CreateScene(1)
	s.Light.Mode = LightOff
	s.AddMesh(Mesh{
		Vertices: []Vertex{
			{Pos: V3(-1, -1, 0), Normal: V3(0, 0, 1)},
			{Pos: V3(1, -1, 0), Normal: V3(0, 0, 1)},
			{Pos: V3(1, 1, 0), Normal: V3(0, 0, 1)},
			{Pos: V3(-1, 1, 0), Normal: V3(0, 0, 1)},
		},
		Indices:  []uint16{0, 1, 2, 0, 2, 3},
		Material: Material{BaseColor: RGB(0xFF, 0x00, 0x00)},
	})
	return s
}

func TestRenderFillsCenter(t *testing.T) {
	for _, mode := range []RenderMode{RenderSolidFlat, RenderSolidSmooth} {
		img := image.NewRGBA(image.Rect(0, 0, 32, 32))
		r := NewRenderer(32, 32, true)
		r.Mode = mode
		r.Render(&RGBATarget{Img: img}, quadScene())

		if got := img.RGBAAt(16, 16); got.R != 0xFF || got.G != 0 {
			t.Fatalf("%s: center pixel = %+v, want red", mode, got)
		}
		if got := img.RGBAAt(0, 0); got.R != 0 {
			t.Fatalf("%s: corner pixel = %+v, want clear color", mode, got)
		}
		st := r.Stats()
		if st.Meshes != 1 || st.Triangles != 2 {
			t.Fatalf("%s: stats = %+v", mode, st)
		}
	}
}

func TestRenderBothWindings(t *testing.T) {
	s := quadScene()
	// Flip the winding of both triangles.
	s.meshes[0].Indices = []uint16{0, 2, 1, 0, 3, 2}
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	NewRenderer(32, 32, true).Render(&RGBATarget{Img: img}, s)
	if got := img.RGBAAt(16, 16); got.R != 0xFF {
		t.Fatalf("center pixel = %+v, want red", got)
	}
}

func TestRenderCullsBehindCamera(t *testing.T) {
	s := quadScene()
	s.Camera.Position = V3(0, 0, -3)
	s.Camera.Target = V3(0, 0, -6)
	r := NewRenderer(16, 16, false)
	r.Render(&RGBATarget{Img: image.NewRGBA(image.Rect(0, 0, 16, 16))}, s)
	if st := r.Stats(); st.Triangles != 0 || st.Culled != 2 {
		t.Fatalf("stats = %+v, want all culled", st)
	}
}

func TestRenderDisabledMeshSkipped(t *testing.T) {
	s := quadScene()
	s.meshes[0].Enabled = false
	r := NewRenderer(16, 16, false)
	r.Render(&RGBATarget{Img: image.NewRGBA(image.Rect(0, 0, 16, 16))}, s)
	if st := r.Stats(); st.Meshes != 0 {
		t.Fatalf("stats = %+v, want no meshes", st)
	}
}
