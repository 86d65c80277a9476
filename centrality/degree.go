package centrality

import (
	"sort"

	"github.com/katalvlaran/socialgraph/core"
)

// Degree ranks nodes by degree, descending, ties in insertion order.
// A nil graph yields nil.
func Degree(g core.Reader, opts ...Option) []Ranked {
	if core.IsNil(g) {
		return nil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	ids := g.NodeIDs()
	out := make([]Ranked, 0, len(ids))
	for _, id := range ids {
		n, _ := g.Node(id)
		out = append(out, Ranked{Node: n, Degree: g.Degree(id)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Degree > out[j].Degree })

	return truncate(out, cfg.TopK)
}
