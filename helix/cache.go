package helix

// GeometryCache remembers the last built geometry and rebuilds only when the
// configuration changes by value. It is meant to be owned by a single frame
// loop and is not safe for concurrent use.
type GeometryCache struct {
	cfg    Config
	geom   *Geometry
	builds int
}

// Get returns the geometry for cfg, building it on a miss. An invalid cfg
// fails without evicting the cached entry.
func (c *GeometryCache) Get(cfg Config) (*Geometry, error) {
	cfg = cfg.Normalize()
	if c.geom != nil && c.cfg == cfg {
		return c.geom, nil
	}
	g, err := Build(cfg)
	if err != nil {
		return nil, err
	}
	c.cfg, c.geom = cfg, g
	c.builds++
	return g, nil
}

// Builds returns how many times Get had to call Build.
func (c *GeometryCache) Builds() int { return c.builds }

// MeshCache remembers the last assembly, keyed by geometry identity and style.
type MeshCache struct {
	geom       *Geometry
	style      Style
	asm        *Assembly
	assemblies int
}

// Get returns the assembly of g with st, assembling on a miss.
func (c *MeshCache) Get(g *Geometry, st Style) (*Assembly, error) {
	if c.asm != nil && c.geom == g && c.style == st {
		return c.asm, nil
	}
	a, err := Assemble(g, st)
	if err != nil {
		return nil, err
	}
	c.geom, c.style, c.asm = g, st, a
	c.assemblies++
	return a, nil
}

// Assemblies returns how many times Get had to call Assemble.
func (c *MeshCache) Assemblies() int { return c.assemblies }

// Pipeline chains Build and Assemble through their caches.
type Pipeline struct {
	Geometry GeometryCache
	Meshes   MeshCache
}

// Assemble returns the (possibly cached) assembly for cfg and st.
func (p *Pipeline) Assemble(cfg Config, st Style) (*Assembly, error) {
	g, err := p.Geometry.Get(cfg)
	if err != nil {
		return nil, err
	}
	return p.Meshes.Get(g, st)
}
