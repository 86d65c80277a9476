// SPDX-License-Identifier: MIT
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/builder"
	"github.com/katalvlaran/socialgraph/components"
	"github.com/katalvlaran/socialgraph/core"
)

func build(t *testing.T, bopts []builder.BuilderOption, c builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, bopts, c)
	require.NoError(t, err)

	return g
}

func TestDeterministicShapes(t *testing.T) {
	cases := []struct {
		name  string
		c     builder.Constructor
		nodes int
		edges int
	}{
		{"path", builder.Path(5), 5, 4},
		{"cycle", builder.Cycle(5), 5, 5},
		{"star", builder.Star(6), 6, 5},
		{"wheel", builder.Wheel(6), 6, 10},
		{"complete", builder.Complete(5), 5, 10},
		{"complete1", builder.Complete(1), 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, nil, tc.c)
			assert.Equal(t, tc.nodes, g.NodeCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestDefaultIDsAndNames(t *testing.T) {
	g := build(t, nil, builder.Path(3))
	assert.Equal(t, []int{1, 2, 3}, g.NodeIDs())

	n, ok := g.Node(1)
	require.True(t, ok)
	assert.Equal(t, builder.DefaultNamePool[0], n.Name)
	assert.Equal(t, 0.5, n.Aktiflik)
	assert.Equal(t, 1.0, n.Etkilesim)
}

func TestStarHubIsFirstIndex(t *testing.T) {
	g := build(t, nil, builder.Star(5))
	assert.Equal(t, 4, g.Degree(1))
	for id := 2; id <= 5; id++ {
		assert.Equal(t, 1, g.Degree(id))
	}
}

func TestWheelDegrees(t *testing.T) {
	g := build(t, nil, builder.Wheel(5))
	assert.Equal(t, 4, g.Degree(1))
	for id := 2; id <= 5; id++ {
		assert.Equal(t, 3, g.Degree(id), "rim node %d", id)
	}
}

func TestNamePoolWrapsWithSuffix(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithNamePool([]string{"A", "B"})}, builder.Path(5))
	var names []string
	for _, n := range g.Nodes() {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"A", "B", "A2", "B2", "A3"}, names)
}

func TestCustomIDScheme(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithIDScheme(func(i int) int { return 100 + 10*i })}, builder.Cycle(3))
	assert.Equal(t, []int{100, 110, 120}, g.NodeIDs())
	assert.True(t, g.HasEdge(120, 100))
}

func TestIDCollisionFails(t *testing.T) {
	_, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(func(int) int { return 7 })},
		builder.Path(2))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.ErrorIs(t, err, core.ErrNodeExists)
}

func TestTooFewVertices(t *testing.T) {
	for _, c := range []builder.Constructor{
		builder.Path(1), builder.Cycle(2), builder.Star(1), builder.Wheel(3),
		builder.Complete(0), builder.RandomSparse(0, 0.5), builder.RandomSocial(0, 0.5),
	} {
		_, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, c)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	}
}

func TestProbabilityValidation(t *testing.T) {
	_, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(4, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSocial(4, -0.1))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSocial(4, 0.3))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomExtremesNeedNoRNG(t *testing.T) {
	g := build(t, nil, builder.RandomSparse(6, 0))
	assert.Equal(t, 0, g.EdgeCount())

	g = build(t, nil, builder.RandomSparse(6, 1))
	assert.Equal(t, 15, g.EdgeCount())

	g = build(t, nil, builder.RandomSocial(6, 0))
	assert.Equal(t, 5, g.EdgeCount())

	g = build(t, nil, builder.RandomSocial(6, 1))
	assert.Equal(t, 15, g.EdgeCount())
}

func TestRandomSocialIsConnected(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSocial(40, 0.05))
	comps, err := components.Connected(g)
	require.NoError(t, err)
	assert.Len(t, comps, 1)
	assert.GreaterOrEqual(t, g.EdgeCount(), 39)
}

func TestSeededBuildsAreReproducible(t *testing.T) {
	a := build(t, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSocial(25, 0.2))
	b := build(t, []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(7)))}, builder.RandomSocial(25, 0.2))

	assert.Equal(t, a.Nodes(), b.Nodes())
	assert.Equal(t, a.Edges(), b.Edges())
}

func TestSeededAttributesInRange(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(50, 0.1))
	for _, n := range g.Nodes() {
		assert.GreaterOrEqual(t, n.Aktiflik, 0.1)
		assert.LessOrEqual(t, n.Aktiflik, 1.0)
		assert.GreaterOrEqual(t, n.Etkilesim, 1.0)
		assert.LessOrEqual(t, n.Etkilesim, 50.0)
	}
}

func TestCustomAttributeFn(t *testing.T) {
	attr := func(_ *rand.Rand, idx int) (float64, float64) { return float64(idx) / 10, float64(idx) }
	g := build(t, []builder.BuilderOption{builder.WithAttributeFn(attr)}, builder.Path(3))

	n, _ := g.Node(3)
	assert.Equal(t, 0.2, n.Aktiflik)
	assert.Equal(t, 2.0, n.Etkilesim)
}

func TestNilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(2), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithNamePool(nil) })
	assert.Panics(t, func() { builder.WithNamePool([]string{"ok", ""}) })
	assert.Panics(t, func() { builder.WithAttributeFn(nil) })
}
