package coloring

import (
	"sort"

	"github.com/katalvlaran/socialgraph/core"
)

// DefaultPalette is the ten-colour palette used when WithPalette is not given.
var DefaultPalette = []string{
	"#3498db", "#e74c3c", "#2ecc71", "#f39c12", "#9b59b6",
	"#1abc9c", "#e67e22", "#34495e", "#16a085", "#c0392b",
}

// Result is a complete colouring.
type Result struct {
	// Colors maps node id → palette token.
	Colors map[int]string `json:"colors"`

	// Classes maps node id → colour class index (0-based, opening order).
	Classes map[int]int `json:"classes"`

	// ClassCount is the number of classes opened.
	ClassCount int `json:"class_count"`
}

// TokensUsed returns the number of distinct tokens in Colors.
func (r Result) TokensUsed() int {
	seen := make(map[string]struct{}, r.ClassCount)
	for _, tok := range r.Colors {
		seen[tok] = struct{}{}
	}

	return len(seen)
}

// Options configures a colouring.
type Options struct {
	Palette []string
}

// Option customises a colouring.
type Option func(*Options)

// WithPalette replaces the palette. Panics on an empty palette.
func WithPalette(p []string) Option {
	if len(p) == 0 {
		panic("coloring: WithPalette requires at least one token")
	}
	cp := append([]string(nil), p...)

	return func(o *Options) { o.Palette = cp }
}

// WelshPowell colours every node of g. A nil graph yields an empty Result.
func WelshPowell(g core.Reader, opts ...Option) Result {
	cfg := Options{Palette: DefaultPalette}
	for _, opt := range opts {
		opt(&cfg)
	}
	res := Result{Colors: map[int]string{}, Classes: map[int]int{}}
	if core.IsNil(g) {
		return res
	}

	order := g.NodeIDs()
	deg := make(map[int]int, len(order))
	for _, id := range order {
		deg[id] = g.Degree(id)
	}
	sort.SliceStable(order, func(i, j int) bool { return deg[order[i]] > deg[order[j]] })

	clashes := func(id int, token string) bool {
		for _, nb := range g.Neighbors(id) {
			if res.Colors[nb] == token {
				return true
			}
		}

		return false
	}

	class := 0
	for _, seed := range order {
		if _, done := res.Colors[seed]; done {
			continue
		}
		token := cfg.Palette[class%len(cfg.Palette)]
		for _, id := range order {
			if _, done := res.Colors[id]; done {
				continue
			}
			// the seed is always coloured, even when a wrapped token clashes
			if id != seed && clashes(id, token) {
				continue
			}
			res.Colors[id] = token
			res.Classes[id] = class
		}
		class++
	}
	res.ClassCount = class

	return res
}

// Conflicts returns every edge whose endpoints share a token, as (a, b)
// pairs with a < b, sorted.
func Conflicts(g core.Reader, r Result) [][2]int {
	if core.IsNil(g) {
		return nil
	}
	var out [][2]int
	for _, a := range g.NodeIDs() {
		for _, b := range g.Neighbors(a) {
			if a < b && r.Colors[a] != "" && r.Colors[a] == r.Colors[b] {
				out = append(out, [2]int{a, b})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}

		return out[i][1] < out[j][1]
	})

	return out
}
