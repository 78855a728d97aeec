package scene

import (
	"errors"
	"fmt"
	"time"

	"helixview/helix"
	"helixview/quarkgl"
)

// Options configure a mounted helix.
type Options struct {
	Helix           helix.Config
	Style           helix.Style
	AngularVelocity float64 // radians per second
	Tilt            float64 // radians about the view axis
	StartAngle      float64 // initial spin angle in radians
}

// DefaultOptions returns the library defaults with the reference spin and tilt.
func DefaultOptions() Options {
	return Options{
		Helix:           helix.DefaultConfig(),
		Style:           helix.DefaultStyle(),
		AngularVelocity: DefaultAngularVelocity,
		Tilt:            DefaultTilt,
	}
}

type placedNode struct {
	id    int
	local quarkgl.Mat4
}

// Visualization is a helix mounted on a Host.
type Visualization struct {
	host     Host
	opts     Options
	assembly *helix.Assembly
	spinner  *Spinner
	nodes    []placedNode

	cancelFrame   func()
	cancelDispose func()
	mounted       bool
}

// Mount validates opts, assembles the helix through p (which may be nil) and
// places it on host. Nothing is added to the host unless every step succeeds.
func Mount(host Host, opts Options, p *helix.Pipeline) (*Visualization, error) {
	if host == nil {
		return nil, errors.New("scene: nil host")
	}
	if err := opts.Helix.Validate(); err != nil {
		return nil, fmt.Errorf("mount helix: %w", err)
	}
	if p == nil {
		p = &helix.Pipeline{}
	}
	asm, err := p.Assemble(opts.Helix, opts.Style)
	if err != nil {
		return nil, fmt.Errorf("mount helix: %w", err)
	}

	v := &Visualization{
		host:     host,
		opts:     opts,
		assembly: asm,
		spinner:  NewSpinner(opts.AngularVelocity, opts.Tilt),
		nodes:    make([]placedNode, 0, len(asm.Nodes)),
	}
	v.spinner.reset(opts.StartAngle)
	parent := v.spinner.Transform()
	for i := range asm.Nodes {
		n := &asm.Nodes[i]
		if n.Degenerate {
			continue
		}
		mesh := n.Mesh
		local := n.Local()
		mesh.Transform = quarkgl.Mat4Mul(parent, local)
		id, err := host.AddMesh(mesh)
		if err != nil {
			v.removeMeshes()
			return nil, fmt.Errorf("mount helix: %s %d: %w", n.Kind, n.Index, err)
		}
		v.nodes = append(v.nodes, placedNode{id: id, local: local})
	}

	v.cancelFrame = host.OnFrame(v.frame)
	v.cancelDispose = host.OnDispose(v.Unmount)
	v.mounted = true
	return v, nil
}

func (v *Visualization) frame(delta time.Duration) {
	if !v.mounted {
		return
	}
	v.spinner.Advance(delta)
	parent := v.spinner.Transform()
	for _, n := range v.nodes {
		v.host.UpdateMeshTransform(n.id, quarkgl.Mat4Mul(parent, n.local))
	}
}

// Unmount releases the frame subscription and removes the meshes. It is
// idempotent and runs automatically when the host is disposed.
func (v *Visualization) Unmount() {
	if !v.mounted {
		return
	}
	v.mounted = false
	v.cancelFrame()
	v.cancelDispose()
	v.removeMeshes()
}

func (v *Visualization) removeMeshes() {
	for _, n := range v.nodes {
		v.host.RemoveMesh(n.id)
	}
	v.nodes = nil
}

// Mounted reports whether the helix is still on its host.
func (v *Visualization) Mounted() bool { return v.mounted }

// Options returns the options the helix was mounted with.
func (v *Visualization) Options() Options { return v.opts }

// Assembly returns the mounted assembly.
func (v *Visualization) Assembly() *helix.Assembly { return v.assembly }

// Angle returns the current spin angle.
func (v *Visualization) Angle() float64 { return v.spinner.Angle() }

// MeshIDs returns the host ids of the placed meshes, strands first.
func (v *Visualization) MeshIDs() []int {
	ids := make([]int, len(v.nodes))
	for i, n := range v.nodes {
		ids[i] = n.id
	}
	return ids
}
