package helix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestCurveInterpolatesControlPoints(t *testing.T) {
	g, err := Build(Config{Turns: 1, Radius: 2, Height: 4, PointsPerTurn: 8})
	require.NoError(t, err)
	c := g.Curve1
	n := len(g.Strand1)
	for i, p := range g.Strand1 {
		assertVecDelta(t, p, c.Point(float64(i)/float64(n-1)), 1e-9)
	}
}

func TestCurveStraightLine(t *testing.T) {
	c := NewCurve([]r3.Vec{{X: 0}, {X: 1}, {X: 2}, {X: 3}})
	require.NotNil(t, c)
	assert.InDelta(t, 3, c.Length(), 1e-6)
	assertVecDelta(t, r3.Vec{X: 1.5}, c.PointAt(0.5), 1e-6)
	assertVecDelta(t, r3.Vec{X: 1}, c.TangentAt(0.3), 1e-6)
	assertVecDelta(t, r3.Vec{X: 0}, c.PointAt(0), 0)
	assertVecDelta(t, r3.Vec{X: 3}, c.PointAt(1), 1e-12)
}

func TestCurveTwoPoints(t *testing.T) {
	c := NewCurve([]r3.Vec{{Y: -1}, {Y: 1}})
	require.NotNil(t, c)
	assertVecDelta(t, r3.Vec{}, c.PointAt(0.5), 1e-9)
	assert.Nil(t, NewCurve([]r3.Vec{{}}))
}

func TestCurveStaysNearHelix(t *testing.T) {
	cfg := Config{Turns: 3, Radius: 3, Height: 35}
	g, err := Build(cfg)
	require.NoError(t, err)
	// 40 samples per turn keep the spline within a hundredth or so of the
	// cylinder the samples lie on.
	for i := 0; i <= 100; i++ {
		p := g.Curve1.PointAt(float64(i) / 100)
		assert.InDelta(t, cfg.Radius, math.Hypot(p.X, p.Z), 0.02)
		assert.LessOrEqual(t, math.Abs(p.Y), cfg.Height/2+1e-9)
	}
}

func assertVecDelta(t *testing.T, want, got r3.Vec, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta)
	assert.InDelta(t, want.Y, got.Y, delta)
	assert.InDelta(t, want.Z, got.Z, delta)
}
