// Package components partitions a social graph into connected components
// ("communities").
//
// Seeds are taken in node insertion order; each component is harvested with
// bfs.BFS, so members appear in BFS discovery order from their seed and
// components appear in seed order. Every node belongs to exactly one
// component; an isolated node is a singleton.
//
// Time:   O(V + E).
// Memory: O(V).
package components

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/socialgraph/bfs"
	"github.com/katalvlaran/socialgraph/core"
)

// ErrGraphNil is returned when a nil graph is passed.
var ErrGraphNil = errors.New("components: graph is nil")

// Connected returns the connected components of g.
func Connected(g core.Reader) ([][]int, error) {
	if core.IsNil(g) {
		return nil, ErrGraphNil
	}

	seen := make(map[int]bool)
	var comps [][]int
	for _, seed := range g.NodeIDs() {
		if seen[seed] {
			continue
		}
		res, err := bfs.BFS(g, seed)
		if err != nil {
			return nil, fmt.Errorf("components: harvest from %d: %w", seed, err)
		}
		for _, id := range res.Order {
			seen[id] = true
		}
		comps = append(comps, res.Order)
	}

	return comps, nil
}

// Labels maps every node id to the index of its component in comps.
func Labels(comps [][]int) map[int]int {
	out := make(map[int]int)
	for i, comp := range comps {
		for _, id := range comp {
			out[id] = i
		}
	}

	return out
}

// Sizes returns the size of each component, in component order.
func Sizes(comps [][]int) []int {
	out := make([]int, len(comps))
	for i, comp := range comps {
		out[i] = len(comp)
	}

	return out
}

// Largest returns the index of the biggest component (the first on ties),
// or -1 when comps is empty.
func Largest(comps [][]int) int {
	best := -1
	for i, comp := range comps {
		if best < 0 || len(comp) > len(comps[best]) {
			best = i
		}
	}

	return best
}
