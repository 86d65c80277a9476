package centrality

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/dijkstra"
)

// Betweenness runs dijkstra.ShortestPath for every unordered pair (i < j in
// insertion order) and adds one to each interior node of the returned path.
// Endpoints are never credited. Nodes that never appear inside a path score 0
// and still take part in the ranking.
func Betweenness(ctx context.Context, g core.Reader, opts ...Option) ([]Scored, error) {
	if core.IsNil(g) {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	ids := g.NodeIDs()
	counts := make(map[int]int, len(ids))
	var mu sync.Mutex

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for i := range ids {
		eg.Go(func() error {
			local := make(map[int]int)
			for _, t := range ids[i+1:] {
				if err := ctx.Err(); err != nil {
					return err
				}
				res, err := dijkstra.ShortestPath(g, ids[i], t)
				if err != nil {
					return fmt.Errorf("centrality: pair %d–%d: %w", ids[i], t, err)
				}
				if len(res.Path) > 2 {
					for _, n := range res.Path[1 : len(res.Path)-1] {
						local[n]++
					}
				}
			}
			mu.Lock()
			for n, c := range local {
				counts[n] += c
			}
			mu.Unlock()

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make([]Scored, 0, len(ids))
	for _, id := range ids {
		n, _ := g.Node(id)
		out = append(out, Scored{Node: n, Score: counts[id]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	return truncate(out, cfg.TopK), nil
}
