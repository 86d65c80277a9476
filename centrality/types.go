package centrality

import (
	"errors"

	"github.com/katalvlaran/socialgraph/core"
)

// DefaultTopK is the number of entries returned when WithTopK is not given.
const DefaultTopK = 5

// ErrGraphNil is returned when a nil graph is passed.
var ErrGraphNil = errors.New("centrality: graph is nil")

// Ranked is one (node, degree) entry of a degree ranking. The node is a
// copy; its fields are flattened in JSON.
type Ranked struct {
	core.Node
	Degree int `json:"degree"`
}

// Scored is one entry of a betweenness ranking: Score is the number of
// pairwise shortest paths the node lies strictly inside.
type Scored struct {
	core.Node
	Score int `json:"score"`
}

// Options configures a ranking.
type Options struct {
	TopK    int
	Workers int
}

// Option customises a ranking.
type Option func(*Options)

// DefaultOptions returns TopK 5 and a single worker.
func DefaultOptions() Options {
	return Options{TopK: DefaultTopK, Workers: 1}
}

// WithTopK limits the result to k entries; k ≤ 0 returns all.
func WithTopK(k int) Option {
	return func(o *Options) { o.TopK = k }
}

// WithWorkers bounds the Betweenness fan-out; values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
	}
}

func truncate[T any](s []T, k int) []T {
	if k > 0 && len(s) > k {
		return s[:k]
	}

	return s
}
