package analysis

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/socialgraph/core"
)

// mutate runs fn under the exclusive lock inside a span and records the outcome.
func (s *Service) mutate(ctx context.Context, op string, attrs []attribute.KeyValue, fn func(g *core.Graph) core.Outcome) core.Outcome {
	_, span := s.tracer.Start(ctx, "analysis."+op, trace.WithAttributes(attrs...))
	defer span.End()

	s.mu.Lock()
	o := fn(s.g)
	nodes, edges := s.g.NodeCount(), s.g.EdgeCount()
	s.mu.Unlock()

	span.SetAttributes(attribute.String("outcome", o.String()))
	s.metrics.ObserveMutation(op, o.String())
	s.metrics.SetGraphSize(nodes, edges)
	s.log.Debug("mutation", zap.String("op", op), zap.Stringer("outcome", o))

	return o
}

// AddNode inserts n.
func (s *Service) AddNode(ctx context.Context, n core.Node) core.Outcome {
	return s.mutate(ctx, "add_node", []attribute.KeyValue{attribute.Int("id", n.ID)},
		func(g *core.Graph) core.Outcome { return g.AddNode(n) })
}

// UpdateNode edits name and aktiflik, and etkilesim when non-nil.
func (s *Service) UpdateNode(ctx context.Context, id int, name string, aktiflik float64, etkilesim *float64) core.Outcome {
	var opts []core.UpdateOption
	if etkilesim != nil {
		opts = append(opts, core.WithEtkilesim(*etkilesim))
	}

	return s.mutate(ctx, "update_node", []attribute.KeyValue{attribute.Int("id", id)},
		func(g *core.Graph) core.Outcome { return g.UpdateNode(id, name, aktiflik, opts...) })
}

// RemoveNode deletes id and its friendships.
func (s *Service) RemoveNode(ctx context.Context, id int) core.Outcome {
	return s.mutate(ctx, "remove_node", []attribute.KeyValue{attribute.Int("id", id)},
		func(g *core.Graph) core.Outcome { return g.RemoveNode(id) })
}

// AddEdge connects a and b.
func (s *Service) AddEdge(ctx context.Context, a, b int) core.Outcome {
	return s.mutate(ctx, "add_edge", []attribute.KeyValue{attribute.Int("source", a), attribute.Int("target", b)},
		func(g *core.Graph) core.Outcome { return g.AddEdge(a, b) })
}

// RemoveEdge disconnects a and b.
func (s *Service) RemoveEdge(ctx context.Context, a, b int) core.Outcome {
	return s.mutate(ctx, "remove_edge", []attribute.KeyValue{attribute.Int("source", a), attribute.Int("target", b)},
		func(g *core.Graph) core.Outcome { return g.RemoveEdge(a, b) })
}
