package dfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/bfs"
	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/dfs"
)

// build adds nodes ids and connects the listed pairs in order.
func build(t testing.TB, ids []int, pairs [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		require.True(t, g.AddNode(core.Node{ID: id, Name: "u" + strconv.Itoa(id)}).Applied())
	}
	for _, p := range pairs {
		require.True(t, g.AddEdge(p[0], p[1]).Applied())
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, 1)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := build(t, []int{1}, nil)
	res, err := dfs.DFS(g, 9)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartNodeNotFound)
}

func TestDFS_SingleNode(t *testing.T) {
	g := build(t, []int{5}, nil)

	res, err := dfs.DFS(g, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, res.Order)
	assert.Equal(t, 0, res.Depth[5])
	assert.Empty(t, res.Parent)
	assert.Equal(t, []int{5}, res.Roots)
}

func TestDFS_AscendingIDsFirst(t *testing.T) {
	// insertion order of 1's edges is 4, 2, 3; DFS still goes to 2 first
	g := build(t, []int{1, 2, 3, 4, 5}, [][2]int{{1, 4}, {1, 2}, {1, 3}, {2, 5}})

	res, err := dfs.DFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 5, 3, 4}, res.Order)
	assert.Equal(t, 2, res.Depth[5])
	assert.Equal(t, 2, res.Parent[5])
}

func TestDFS_PopTimeVisitedCheck(t *testing.T) {
	// triangle 1-2-3: 3 is pushed by both 1 and 2 but visited once, from 2
	g := build(t, []int{1, 2, 3}, [][2]int{{1, 2}, {1, 3}, {2, 3}})

	res, err := dfs.DFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, res.Order)
	assert.Equal(t, 2, res.Parent[3])
	assert.Equal(t, 2, res.Depth[3])
}

func TestDFS_ReachesSameSetAsBFS(t *testing.T) {
	g := build(t, []int{0, 1, 2, 3, 4, 5, 6, 7},
		[][2]int{{0, 3}, {3, 1}, {1, 4}, {4, 0}, {2, 5}, {6, 7}, {5, 0}})

	for _, start := range g.NodeIDs() {
		d, err := dfs.DFS(g, start)
		require.NoError(t, err)
		b, err := bfs.BFS(g, start)
		require.NoError(t, err)
		assert.ElementsMatch(t, b.Order, d.Order, "start %d", start)
	}
}

func TestDFS_FullTraversal(t *testing.T) {
	g := build(t, []int{3, 1, 2, 4}, [][2]int{{1, 2}})

	res, err := dfs.DFS(g, -1, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2, 4}, res.Order)
	assert.Equal(t, []int{3, 1, 4}, res.Roots)
}

func TestDFS_MaxDepthAndFilter(t *testing.T) {
	g := build(t, []int{1, 2, 3, 4}, [][2]int{{1, 2}, {2, 3}, {1, 4}})

	res, err := dfs.DFS(g, 1, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4}, res.Order)

	res, err = dfs.DFS(g, 1, dfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr != 2 }))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4}, res.Order)
}

func TestDFS_OnVisitError(t *testing.T) {
	g := build(t, []int{1, 2, 3}, [][2]int{{1, 2}, {2, 3}})
	boom := errors.New("boom")

	_, err := dfs.DFS(g, 1, dfs.WithOnVisit(func(id, _ int) error {
		if id == 2 {
			return boom
		}

		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

func TestDFS_ContextCancel(t *testing.T) {
	g := build(t, []int{1, 2}, [][2]int{{1, 2}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(g, 1, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
