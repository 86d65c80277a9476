// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/core"
)

const eps = 1e-9

// chain builds 1–2–3 plus an isolated node 4.
func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.Equal(t, core.OutcomeApplied, g.AddNode(core.Node{ID: 1, Name: "Ali", Aktiflik: 0.5, Etkilesim: 10}))
	require.Equal(t, core.OutcomeApplied, g.AddNode(core.Node{ID: 2, Name: "Ayse", Aktiflik: 0.6, Etkilesim: 12}))
	require.Equal(t, core.OutcomeApplied, g.AddNode(core.Node{ID: 3, Name: "Mehmet", Aktiflik: 0.9, Etkilesim: 20}))
	require.Equal(t, core.OutcomeApplied, g.AddNode(core.Node{ID: 4, Name: "Zeynep", Aktiflik: 0.1, Etkilesim: 1}))
	require.Equal(t, core.OutcomeApplied, g.AddEdge(1, 2))
	require.Equal(t, core.OutcomeApplied, g.AddEdge(2, 3))

	return g
}

// assertSymmetric checks that adjacency mirrors the edge list exactly: every
// edge is unique, joins two live nodes and appears once in each endpoint's
// adjacency, and nothing else does.
func assertSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()
	total := 0
	for _, id := range g.NodeIDs() {
		for _, nb := range g.Neighbors(id) {
			assert.Contains(t, g.Neighbors(nb), id, "adjacency %d→%d not mirrored", id, nb)
			assert.True(t, g.HasEdge(id, nb))
			total++
		}
	}
	assert.Equal(t, 2*g.EdgeCount(), total)

	seen := make(map[[2]int]bool)
	for _, e := range g.Edges() {
		k := [2]int{min(e.Source, e.Target), max(e.Source, e.Target)}
		assert.False(t, seen[k], "duplicate edge %v", k)
		seen[k] = true
		assert.True(t, g.HasNode(e.Source), "edge %v references removed node %d", k, e.Source)
		assert.True(t, g.HasNode(e.Target), "edge %v references removed node %d", k, e.Target)
		assert.NotEqual(t, e.Source, e.Target)
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.False(t, math.IsInf(e.Weight, 0) || math.IsNaN(e.Weight))
	}
}

func TestAddNode_Outcomes(t *testing.T) {
	g := core.NewGraph()

	assert.Equal(t, core.OutcomeApplied, g.AddNode(core.Node{ID: 7, Name: "A"}))
	assert.Equal(t, core.OutcomeExists, g.AddNode(core.Node{ID: 7, Name: "B"}))
	assert.Equal(t, core.OutcomeInvalid, g.AddNode(core.Node{ID: -1, Name: "C"}))
	assert.Equal(t, core.OutcomeInvalid, g.AddNode(core.Node{ID: 8}))

	n, ok := g.Node(7)
	require.True(t, ok)
	assert.Equal(t, "A", n.Name, "duplicate insert must not overwrite")
	assert.Equal(t, 1, g.NodeCount())
	assert.Empty(t, g.Neighbors(7))
	assert.Equal(t, 0, g.Degree(7))
}

func TestAddEdge_WeightFormula(t *testing.T) {
	g := chain(t)

	w12 := 1 + math.Sqrt(0.1*0.1+2*2)
	assert.InDelta(t, w12, g.EdgeWeight(1, 2), eps)
	assert.InDelta(t, w12, g.EdgeWeight(2, 1), eps)

	// node 2 already had one neighbor when 2–3 was inserted
	w23 := 1 + math.Sqrt(0.3*0.3+8*8+1)
	assert.InDelta(t, w23, g.EdgeWeight(2, 3), eps)

	e, ok := g.Edge(3, 2)
	require.True(t, ok)
	assert.Equal(t, 2, e.Source)
	assert.Equal(t, 3, e.Target)
	assert.Equal(t, 1.0, e.DegreeDelta())
	assert.Equal(t, 3, e.Other(2))
}

func TestAddEdge_Rejections(t *testing.T) {
	g := chain(t)

	assert.Equal(t, core.OutcomeSelfLoop, g.AddEdge(1, 1))
	assert.Equal(t, core.OutcomeExists, g.AddEdge(2, 1))
	assert.Equal(t, core.OutcomeNotFound, g.AddEdge(1, 99))
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, math.IsInf(g.EdgeWeight(1, 3), 1))
	assert.True(t, math.IsInf(g.EdgeWeight(1, 99), 1))
	assertSymmetric(t, g)
}

func TestAddEdge_FrozenDegreeTerm(t *testing.T) {
	g := chain(t)
	before := g.EdgeWeight(1, 2)

	// raising node 1's degree must not refresh the existing 1–2 weight
	require.Equal(t, core.OutcomeApplied, g.AddEdge(1, 4))
	assert.Equal(t, before, g.EdgeWeight(1, 2))

	require.Equal(t, core.OutcomeApplied, g.RemoveEdge(1, 4))
	assert.Equal(t, before, g.EdgeWeight(1, 2))
}

func TestNeighbors_InsertionOrder(t *testing.T) {
	g := chain(t)
	require.Equal(t, core.OutcomeApplied, g.AddEdge(2, 4))

	assert.Equal(t, []int{1, 3, 4}, g.Neighbors(2))
	assert.Equal(t, 3, g.Degree(2))
	assert.Equal(t, []int{1, 2, 3, 4}, g.NodeIDs())

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, [2]int{1, 2}, [2]int{edges[0].Source, edges[0].Target})
	assert.Equal(t, [2]int{2, 4}, [2]int{edges[2].Source, edges[2].Target})
}

func TestRemoveNode_Cascades(t *testing.T) {
	g := chain(t)

	require.Equal(t, core.OutcomeApplied, g.RemoveNode(2))
	assert.False(t, g.HasNode(2))
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Neighbors(1))
	assert.Empty(t, g.Neighbors(3))
	assert.Equal(t, []int{1, 3, 4}, g.NodeIDs())
	assert.Equal(t, core.OutcomeNotFound, g.RemoveNode(2))
	assertSymmetric(t, g)

	// the id can be reused afterwards
	assert.Equal(t, core.OutcomeApplied, g.AddNode(core.Node{ID: 2, Name: "Yeni"}))
	assert.Equal(t, []int{1, 3, 4, 2}, g.NodeIDs())
}

func TestRemoveEdge_EitherOrientation(t *testing.T) {
	g := chain(t)

	assert.Equal(t, core.OutcomeApplied, g.RemoveEdge(3, 2))
	assert.Equal(t, core.OutcomeNotFound, g.RemoveEdge(2, 3))
	assert.Equal(t, core.OutcomeNotFound, g.RemoveEdge(1, 3))
	assert.Equal(t, core.OutcomeNotFound, g.RemoveEdge(50, 51))
	assert.Equal(t, []int{1}, g.Neighbors(2))
	assertSymmetric(t, g)
}

func TestUpdateNode_RecomputesIncidentWeights(t *testing.T) {
	g := chain(t)
	frozen, _ := g.Edge(2, 3)

	require.Equal(t, core.OutcomeApplied, g.UpdateNode(2, "Ayse K.", 0.9, core.WithEtkilesim(20)))

	n, _ := g.Node(2)
	assert.Equal(t, core.Node{ID: 2, Name: "Ayse K.", Aktiflik: 0.9, Etkilesim: 20}, n)

	// 2–3 attributes now equal; only the frozen degree term survives
	assert.InDelta(t, 1+math.Abs(frozen.DegreeDelta()), g.EdgeWeight(2, 3), eps)
	assert.InDelta(t, 1+math.Sqrt(0.4*0.4+10*10), g.EdgeWeight(1, 2), eps)

	assert.Equal(t, core.OutcomeNotFound, g.UpdateNode(42, "x", 0))
	assert.Equal(t, core.OutcomeInvalid, g.UpdateNode(2, "", 0))
	n, _ = g.Node(2)
	assert.Equal(t, "Ayse K.", n.Name)
}

func TestNonFiniteAttributesRejected(t *testing.T) {
	g := chain(t)
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.Equal(t, core.OutcomeInvalid, g.AddNode(core.Node{ID: 9, Name: "x", Aktiflik: v}))
		assert.Equal(t, core.OutcomeInvalid, g.AddNode(core.Node{ID: 9, Name: "x", Etkilesim: v}))
		assert.Equal(t, core.OutcomeInvalid, g.UpdateNode(2, "Ayse", v))
		assert.Equal(t, core.OutcomeInvalid, g.UpdateNode(2, "Ayse", 0.1, core.WithEtkilesim(v)))
	}
	assert.False(t, g.HasNode(9))

	n, _ := g.Node(2)
	assert.Equal(t, core.Node{ID: 2, Name: "Ayse", Aktiflik: 0.6, Etkilesim: 12}, n, "rejected update must not leak")
	assertSymmetric(t, g)
}

// TestRandomMutations_KeepAdjacencyConsistent drives seeded random mixes of
// every mutation and checks the adjacency/edge projection after each step.
func TestRandomMutations_KeepAdjacencyConsistent(t *testing.T) {
	const (
		trials = 50
		steps  = 120
		idSpan = 12
	)
	for trial := 0; trial < trials; trial++ {
		r := rand.New(rand.NewSource(int64(trial)))
		g := core.NewGraph()
		for step := 0; step < steps; step++ {
			a, b := r.Intn(idSpan), r.Intn(idSpan)
			switch r.Intn(5) {
			case 0:
				g.AddNode(core.Node{ID: a, Name: "u", Aktiflik: r.Float64(), Etkilesim: float64(r.Intn(50) + 1)})
			case 1, 2:
				o := g.AddEdge(a, b)
				if a == b {
					assert.Equal(t, core.OutcomeSelfLoop, o)
				}
			case 3:
				if r.Intn(2) == 0 {
					g.RemoveNode(a)
				} else {
					g.RemoveEdge(a, b)
				}
			case 4:
				g.UpdateNode(a, "v", r.Float64(), core.WithEtkilesim(float64(r.Intn(50)+1)))
			}
			assertSymmetric(t, g)
			if t.Failed() {
				t.Fatalf("trial %d step %d broke adjacency", trial, step)
			}
		}
	}
}

func TestUpdateNode_KeepsEtkilesimByDefault(t *testing.T) {
	g := chain(t)
	require.True(t, g.UpdateNode(3, "Mehmet", 0.2).Applied())

	n, _ := g.Node(3)
	assert.Equal(t, 20.0, n.Etkilesim)
	assert.Equal(t, 0.2, n.Aktiflik)
}

func TestClone_Independent(t *testing.T) {
	g := chain(t)
	c := g.Clone()

	require.Equal(t, g.Edges(), c.Edges())
	require.Equal(t, g.Nodes(), c.Nodes())

	require.Equal(t, core.OutcomeApplied, c.RemoveNode(2))
	require.Equal(t, core.OutcomeApplied, c.AddEdge(1, 3))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []int{1, 3}, g.Neighbors(2))
	assert.False(t, g.HasEdge(1, 3))
}

func TestStats(t *testing.T) {
	g := chain(t)
	s := g.Stats()

	assert.Equal(t, 4, s.Nodes)
	assert.Equal(t, 2, s.Edges)
	assert.InDelta(t, 2.0/6.0, s.Density, eps)
	assert.Equal(t, 1, s.Isolated)
	assert.InDelta(t, (g.EdgeWeight(1, 2)+g.EdgeWeight(2, 3))/2, s.MeanWeight, eps)

	assert.Equal(t, core.Stats{}, core.NewGraph().Stats())
}

func TestComputeWeight_AtLeastOne(t *testing.T) {
	a := core.Node{ID: 1, Name: "a", Aktiflik: 0.3, Etkilesim: 5}

	assert.Equal(t, 1.0, core.ComputeWeight(a, a, 0))
	assert.InDelta(t, 1+5.0, core.ComputeWeight(a, a, -5), eps)
}
