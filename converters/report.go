// SPDX-License-Identifier: MIT
//
// File: report.go
// Role: plain-text summary export.

package converters

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/socialgraph/core"
)

// WriteReport writes a human-readable summary of g: totals, density and one
// line per node in insertion order.
func WriteReport(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("WriteReport: nil graph: %w", ErrMalformedRecord)
	}
	s := g.Stats()
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "=== Social Network Report ===")
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Nodes: %d\n", s.Nodes)
	fmt.Fprintf(bw, "Edges: %d\n", s.Edges)
	fmt.Fprintf(bw, "Density: %.4f\n", s.Density)
	fmt.Fprintf(bw, "Isolated: %d\n", s.Isolated)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Users:")
	for _, n := range g.Nodes() {
		fmt.Fprintf(bw, "- %s (id: %d, aktiflik: %s, etkilesim: %s, degree: %d)\n",
			n.Name, n.ID, formatFloat(n.Aktiflik), formatFloat(n.Etkilesim), g.Degree(n.ID))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteReport: %w", err)
	}

	return nil
}
