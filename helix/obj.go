package helix

import (
	"bufio"
	"fmt"
	"io"

	"helixview/quarkgl"
)

// WriteOBJ writes every non-degenerate node of a as a Wavefront OBJ object,
// with vertices transformed by parent * node.Local().
func WriteOBJ(w io.Writer, a *Assembly, parent quarkgl.Mat4) error {
	if a == nil {
		return ErrNilGeometry
	}
	if parent == (quarkgl.Mat4{}) {
		parent = quarkgl.Mat4Identity()
	}
	bw := bufio.NewWriter(w)
	cfg := a.Geometry.Config
	fmt.Fprintf(bw, "# double helix turns=%g radius=%g height=%g\n", cfg.Turns, cfg.Radius, cfg.Height)

	base := 1
	for i := range a.Nodes {
		n := &a.Nodes[i]
		if n.Degenerate || len(n.Mesh.Vertices) == 0 {
			continue
		}
		m := quarkgl.Mat4Mul(parent, n.Local())
		fmt.Fprintf(bw, "o %s_%d\n", n.Kind, n.Index)
		for _, v := range n.Mesh.Vertices {
			p := quarkgl.TransformPoint(m, v.Pos)
			fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", p.X, p.Y, p.Z)
		}
		for _, v := range n.Mesh.Vertices {
			d := quarkgl.Normalize(quarkgl.TransformDir(m, v.Normal))
			fmt.Fprintf(bw, "vn %.6f %.6f %.6f\n", d.X, d.Y, d.Z)
		}
		idx := n.Mesh.Indices
		for j := 0; j+2 < len(idx); j += 3 {
			i0, i1, i2 := base+int(idx[j]), base+int(idx[j+1]), base+int(idx[j+2])
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", i0, i0, i1, i1, i2, i2)
		}
		base += len(n.Mesh.Vertices)
	}
	return bw.Flush()
}
