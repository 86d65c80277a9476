package analysis

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/socialgraph/centrality"
	"github.com/katalvlaran/socialgraph/coloring"
	"github.com/katalvlaran/socialgraph/config"
	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/metrics"
)

// TracerName is the instrumentation scope of every span.
const TracerName = "socialgraph.analysis"

// ErrUnknownAlgorithm is returned for a path algorithm name other than
// dijkstra or astar.
var ErrUnknownAlgorithm = errors.New("analysis: unknown algorithm")

// PathAlgorithm names a shortest-path strategy.
type PathAlgorithm string

const (
	Dijkstra PathAlgorithm = "dijkstra"
	AStar    PathAlgorithm = "astar"
)

// ParsePathAlgorithm accepts "dijkstra", "astar" or "a*" in any case; ""
// means Dijkstra.
func ParsePathAlgorithm(s string) (PathAlgorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dijkstra":
		return Dijkstra, nil
	case "astar", "a*":
		return AStar, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Service is safe for concurrent use.
type Service struct {
	mu sync.RWMutex
	g  *core.Graph

	// tuning, guarded by mu
	palette []string
	topK    int
	workers int

	log     *zap.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("analysis: WithLogger(nil)")
	}

	return func(s *Service) { s.log = l }
}

// WithMetrics sets the collectors. Panics on nil.
func WithMetrics(m *metrics.Metrics) Option {
	if m == nil {
		panic("analysis: WithMetrics(nil)")
	}

	return func(s *Service) { s.metrics = m }
}

// WithTracerProvider takes spans from tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic("analysis: WithTracerProvider(nil)")
	}

	return func(s *Service) { s.tracer = tp.Tracer(TracerName) }
}

// WithGraph starts the service on g instead of an empty graph.
func WithGraph(g *core.Graph) Option {
	return func(s *Service) {
		if g != nil {
			s.g = g
		}
	}
}

// WithConfig applies the coloring and centrality sections of cfg.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) { s.applyConfig(cfg) }
}

// New builds a Service. Without options it has an empty graph, a no-op
// logger, isolated metrics and the global tracer provider.
func New(opts ...Option) *Service {
	s := &Service{
		g:       core.NewGraph(),
		palette: coloring.DefaultPalette,
		topK:    centrality.DefaultTopK,
		workers: 1,
		log:     zap.NewNop(),
		tracer:  otel.Tracer(TracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metrics.NewIsolated()
	}
	s.metrics.SetGraphSize(s.g.NodeCount(), s.g.EdgeCount())

	return s
}

// Configure applies a reloaded configuration.
func (s *Service) Configure(cfg *config.Config) {
	s.mu.Lock()
	s.applyConfig(cfg)
	s.mu.Unlock()
	s.log.Info("analysis settings updated",
		zap.Int("top_k", cfg.Centrality.TopK),
		zap.Int("workers", cfg.Centrality.Workers),
		zap.Int("palette", len(cfg.Coloring.Palette)))
}

func (s *Service) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if len(cfg.Coloring.Palette) > 0 {
		s.palette = append([]string(nil), cfg.Coloring.Palette...)
	} else {
		s.palette = coloring.DefaultPalette
	}
	if cfg.Centrality.TopK > 0 {
		s.topK = cfg.Centrality.TopK
	}
	s.workers = max(cfg.Centrality.Workers, 1)
}

// Metrics returns the collectors the service records into.
func (s *Service) Metrics() *metrics.Metrics { return s.metrics }

// finish closes out an instrumented call.
func (s *Service) finish(span trace.Span, name string, start time.Time, err error) {
	s.metrics.ObserveAlgorithm(name, start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log.Debug("analysis failed", zap.String("op", name), zap.Duration("took", time.Since(start)), zap.Error(err))
	} else {
		s.log.Debug("analysis done", zap.String("op", name), zap.Duration("took", time.Since(start)))
	}
	span.End()
}
