package quarkgl

import "testing"

func TestSceneAddRemoveReusesSlots(t *testing.T) {
	s := CreateScene(2)
	a := s.AddMesh(Mesh{})
	b := s.AddMesh(Mesh{})
	if a != 0 || b != 1 {
		t.Fatalf("AddMesh ids = %d,%d, want 0,1", a, b)
	}
	if id := s.AddMesh(Mesh{}); id != -1 {
		t.Fatalf("AddMesh on full scene = %d, want -1", id)
	}
	s.RemoveMesh(a)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if id := s.AddMesh(Mesh{}); id != a {
		t.Fatalf("AddMesh after remove = %d, want %d", id, a)
	}
	s.RemoveMesh(-1)
	s.RemoveMesh(99)
	if s.Len() != 2 || s.Cap() != 2 {
		t.Fatalf("Len/Cap = %d/%d, want 2/2", s.Len(), s.Cap())
	}
}

func TestSceneAddMeshDefaults(t *testing.T) {
	s := CreateScene(1)
	id := s.AddMesh(Mesh{})
	m, ok := s.MeshTransform(id)
	if !ok || m != Mat4Identity() {
		t.Fatalf("default transform = %v, %v; want identity", m, ok)
	}
	s.UpdateMeshTransform(id, Mat4Translate(V3(1, 0, 0)))
	m, _ = s.MeshTransform(id)
	if m[12] != 1 {
		t.Fatalf("transform not updated: %v", m)
	}
	s.RemoveMesh(id)
	if _, ok := s.MeshTransform(id); ok {
		t.Fatalf("MeshTransform of removed mesh ok = true")
	}
}
