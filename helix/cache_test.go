package helix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometryCacheByValue(t *testing.T) {
	var c GeometryCache
	a, err := c.Get(Config{Turns: 3, Radius: 3, Height: 35})
	require.NoError(t, err)
	b, err := c.Get(Config{Turns: 3, Radius: 3, Height: 35, PointsPerTurn: DefaultPointsPerTurn})
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 1, c.Builds())

	d, err := c.Get(Config{Turns: 4, Radius: 3, Height: 35})
	require.NoError(t, err)
	assert.NotSame(t, a, d)
	assert.Equal(t, 2, c.Builds())
}

func TestGeometryCacheKeepsEntryOnError(t *testing.T) {
	var c GeometryCache
	a, err := c.Get(DefaultConfig())
	require.NoError(t, err)
	_, err = c.Get(Config{Turns: 0, Radius: 1, Height: 1})
	require.ErrorIs(t, err, ErrInvalidConfiguration)

	b, err := c.Get(DefaultConfig())
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 1, c.Builds())
}

func TestPipelineMemoizes(t *testing.T) {
	var p Pipeline
	cfg := DefaultConfig()
	a, err := p.Assemble(cfg, DefaultStyle())
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		b, err := p.Assemble(cfg, DefaultStyle())
		require.NoError(t, err)
		assert.Same(t, a, b)
	}
	assert.Equal(t, 1, p.Geometry.Builds())
	assert.Equal(t, 1, p.Meshes.Assemblies())

	st := DefaultStyle()
	st.RungRadius = 0.1
	c, err := p.Assemble(cfg, st)
	require.NoError(t, err)
	assert.NotSame(t, a, c)
	assert.Equal(t, 1, p.Geometry.Builds())
	assert.Equal(t, 2, p.Meshes.Assemblies())
}
