package helix

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/spatial/r3"

	"helixview/quarkgl"
)

// ErrNilGeometry is returned by Assemble when given no geometry.
var ErrNilGeometry = errors.New("helix: nil geometry")

// degenerateEpsilon is the rung length below which no orientation exists.
const degenerateEpsilon = 1e-9

// NodeKind tells strand tubes from rung cylinders.
type NodeKind uint8

const (
	NodeStrand NodeKind = iota
	NodeRung
)

func (k NodeKind) String() string {
	if k == NodeStrand {
		return "strand"
	}
	return "rung"
}

// Node is one drawable primitive. Mesh vertices are in node-local space;
// Local places them in helix space.
type Node struct {
	Kind  NodeKind
	Index int // strand number (0, 1) or rung number

	Position    mgl32.Vec3
	Orientation mgl32.Quat
	Length      float32 // rung length; 0 for strands
	Radius      float32 // cross-section radius; 0 for degenerate rungs

	// Degenerate marks a zero-length rung: a point with no orientation and
	// an empty mesh.
	Degenerate bool

	Mesh quarkgl.Mesh
}

// Local returns translate(Position) * rotate(Orientation).
func (n *Node) Local() quarkgl.Mat4 {
	m := mgl32.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z()).Mul4(n.Orientation.Mat4())
	return quarkgl.Mat4(m)
}

// Assembly is the renderable form of a Geometry.
type Assembly struct {
	Geometry *Geometry
	Style    Style

	// Nodes holds the two strands followed by one node per rung, in rung
	// order.
	Nodes      []Node
	Degenerate int // number of degenerate rungs
}

// Strands returns the two strand nodes.
func (a *Assembly) Strands() []Node { return a.Nodes[:2] }

// Rungs returns the rung nodes.
func (a *Assembly) Rungs() []Node { return a.Nodes[2:] }

// Vertices returns the total vertex count across all nodes.
func (a *Assembly) Vertices() int {
	n := 0
	for i := range a.Nodes {
		n += len(a.Nodes[i].Mesh.Vertices)
	}
	return n
}

// Assemble dresses g with st. It always yields both strand tubes, then one
// node per rung.
func Assemble(g *Geometry, st Style) (*Assembly, error) {
	if g == nil {
		return nil, ErrNilGeometry
	}
	if err := st.Validate(); err != nil {
		return nil, err
	}

	a := &Assembly{
		Geometry: g,
		Style:    st,
		Nodes:    make([]Node, 0, 2+len(g.Rungs)),
	}
	for i, c := range []*Curve{g.Curve1, g.Curve2} {
		mesh := tubeMesh(c, st.StrandRadius, st.StrandTubular, st.StrandRadial)
		mesh.Material.BaseColor = st.StrandColors[i]
		a.Nodes = append(a.Nodes, Node{
			Kind:        NodeStrand,
			Index:       i,
			Orientation: mgl32.QuatIdent(),
			Radius:      float32(st.StrandRadius),
			Mesh:        mesh,
		})
	}

	up := mgl32.Vec3{0, 1, 0}
	for i, r := range g.Rungs {
		mid := r.Midpoint()
		n := Node{
			Kind:        NodeRung,
			Index:       i,
			Position:    mgl32.Vec3{float32(mid.X), float32(mid.Y), float32(mid.Z)},
			Orientation: mgl32.QuatIdent(),
		}
		length := r.Length()
		if length < degenerateEpsilon {
			n.Degenerate = true
			a.Degenerate++
			a.Nodes = append(a.Nodes, n)
			continue
		}
		d := r3.Sub(r.End, r.Start)
		dir := mgl32.Vec3{float32(d.X), float32(d.Y), float32(d.Z)}.Normalize()
		n.Orientation = mgl32.QuatBetweenVectors(up, dir)
		n.Length = float32(length)
		n.Radius = float32(st.RungRadius)
		n.Mesh = cylinderMesh(st.RungRadius, length, st.RungRadial)
		n.Mesh.Material.BaseColor = st.RungColor
		a.Nodes = append(a.Nodes, n)
	}
	return a, nil
}
