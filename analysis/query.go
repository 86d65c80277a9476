package analysis

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/socialgraph/astar"
	"github.com/katalvlaran/socialgraph/backbone"
	"github.com/katalvlaran/socialgraph/bfs"
	"github.com/katalvlaran/socialgraph/centrality"
	"github.com/katalvlaran/socialgraph/coloring"
	"github.com/katalvlaran/socialgraph/components"
	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/dfs"
	"github.com/katalvlaran/socialgraph/dijkstra"
)

// begin opens a span and takes the shared lock. The returned function
// releases both and records the run.
func (s *Service) begin(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, *core.Graph, func(error)) {
	ctx, span := s.tracer.Start(ctx, "analysis."+name, trace.WithAttributes(attrs...))
	start := time.Now()
	s.mu.RLock()

	return ctx, s.g, func(err error) {
		s.mu.RUnlock()
		s.finish(span, name, start, err)
	}
}

// BFS traverses breadth-first from start.
func (s *Service) BFS(ctx context.Context, start int) (res *bfs.BFSResult, err error) {
	ctx, g, done := s.begin(ctx, "bfs", attribute.Int("start", start))
	defer func() { done(err) }()

	return bfs.BFS(g, start, bfs.WithContext(ctx))
}

// DFS traverses depth-first from start.
func (s *Service) DFS(ctx context.Context, start int) (res *dfs.DFSResult, err error) {
	ctx, g, done := s.begin(ctx, "dfs", attribute.Int("start", start))
	defer func() { done(err) }()

	return dfs.DFS(g, start, dfs.WithContext(ctx))
}

// ShortestPath runs the chosen algorithm between from and to.
func (s *Service) ShortestPath(ctx context.Context, algo PathAlgorithm, from, to int) (res dijkstra.Result, err error) {
	_, g, done := s.begin(ctx, "path_"+string(algo),
		attribute.String("algorithm", string(algo)), attribute.Int("from", from), attribute.Int("to", to))
	defer func() { done(err) }()

	switch algo {
	case Dijkstra, "":
		return dijkstra.ShortestPath(g, from, to)
	case AStar:
		return astar.ShortestPath(g, from, to)
	default:
		return dijkstra.NoPath(), ErrUnknownAlgorithm
	}
}

// DegreeCentrality ranks users by friend count. k == 0 uses the configured
// default; k < 0 returns everyone.
func (s *Service) DegreeCentrality(ctx context.Context, k int) []centrality.Ranked {
	_, g, done := s.begin(ctx, "degree_centrality", attribute.Int("top_k", k))
	defer done(nil)

	return centrality.Degree(g, centrality.WithTopK(s.resolveTopK(k)))
}

// Betweenness ranks users by how many shortest paths pass through them.
// k follows DegreeCentrality.
func (s *Service) Betweenness(ctx context.Context, k int) (res []centrality.Scored, err error) {
	ctx, g, done := s.begin(ctx, "betweenness", attribute.Int("top_k", k))
	defer func() { done(err) }()

	return centrality.Betweenness(ctx, g, centrality.WithTopK(s.resolveTopK(k)), centrality.WithWorkers(s.workers))
}

func (s *Service) resolveTopK(k int) int {
	switch {
	case k == 0:
		return s.topK
	case k < 0:
		return 0
	default:
		return k
	}
}

// Color runs Welsh–Powell with the configured palette.
func (s *Service) Color(ctx context.Context) coloring.Result {
	_, g, done := s.begin(ctx, "coloring")
	defer done(nil)

	return coloring.WelshPowell(g, coloring.WithPalette(s.palette))
}

// Components lists the connected components.
func (s *Service) Components(ctx context.Context) (comps [][]int, err error) {
	_, g, done := s.begin(ctx, "components")
	defer func() { done(err) }()

	return components.Connected(g)
}

// Backbone returns the minimum spanning forest computed by m.
func (s *Service) Backbone(ctx context.Context, m backbone.Method) (res backbone.Result, err error) {
	_, g, done := s.begin(ctx, "backbone", attribute.String("method", string(m)))
	defer func() { done(err) }()

	return backbone.Compute(g, m)
}

// Stats summarizes the graph.
func (s *Service) Stats(ctx context.Context) core.Stats {
	_, g, done := s.begin(ctx, "stats")
	defer done(nil)

	return g.Stats()
}

// Node returns one user.
func (s *Service) Node(id int) (core.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Node(id)
}

// Nodes returns every user in insertion order.
func (s *Service) Nodes() []core.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Nodes()
}

// Edges returns every friendship in creation order.
func (s *Service) Edges() []core.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Edges()
}

// Neighbors returns the friends of id.
func (s *Service) Neighbors(id int) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Neighbors(id)
}
