// SPDX-License-Identifier: MIT
//
// File: json.go
// Role: JSON codec.

package converters

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/socialgraph/core"
)

// Document is the JSON shape of a graph.
type Document struct {
	Nodes []NodeRecord `json:"nodes"`
	Edges []EdgeRecord `json:"edges"`
}

// NodeRecord is one node in a Document.
type NodeRecord struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Aktiflik  float64 `json:"aktiflik"`
	Etkilesim float64 `json:"etkilesim"`
}

// EdgeRecord is one edge in a Document. Weight is written for readers of the
// file; loaders recompute it.
type EdgeRecord struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Weight float64 `json:"weight,omitempty"`
}

// NewDocument snapshots g: nodes in insertion order, edges in creation order.
func NewDocument(g *core.Graph) Document {
	nodes := g.Nodes()
	edges := g.Edges()
	doc := Document{
		Nodes: make([]NodeRecord, 0, len(nodes)),
		Edges: make([]EdgeRecord, 0, len(edges)),
	}
	for _, n := range nodes {
		doc.Nodes = append(doc.Nodes, NodeRecord{ID: n.ID, Name: n.Name, Aktiflik: n.Aktiflik, Etkilesim: n.Etkilesim})
	}
	for _, e := range edges {
		doc.Edges = append(doc.Edges, EdgeRecord{Source: e.Source, Target: e.Target, Weight: e.Weight})
	}

	return doc
}

// Graph replays the document into a new graph.
func (d Document) Graph() (*core.Graph, LoadReport, error) {
	var rep LoadReport
	g := core.NewGraph(core.WithCapacity(len(d.Nodes)))
	for i, n := range d.Nodes {
		switch o := g.AddNode(core.Node{ID: n.ID, Name: n.Name, Aktiflik: n.Aktiflik, Etkilesim: n.Etkilesim}); o {
		case core.OutcomeApplied:
			rep.Nodes++
		case core.OutcomeExists:
			rep.DuplicateNodes++
		default:
			return nil, rep, fmt.Errorf("nodes[%d] (id %d): %s: %w", i, n.ID, o, ErrMalformedRecord)
		}
	}
	for _, e := range d.Edges {
		switch g.AddEdge(e.Source, e.Target) {
		case core.OutcomeApplied:
			rep.Edges++
		case core.OutcomeNotFound, core.OutcomeSelfLoop:
			rep.SkippedEdges++
		}
	}

	return g, rep, nil
}

// ReadJSON decodes a Document from r and rebuilds the graph from it.
func ReadJSON(r io.Reader) (*core.Graph, LoadReport, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, LoadReport{}, fmt.Errorf("ReadJSON: %w: %w", ErrMalformedRecord, err)
	}
	g, rep, err := doc.Graph()
	if err != nil {
		return nil, rep, fmt.Errorf("ReadJSON: %w", err)
	}

	return g, rep, nil
}

// WriteJSON encodes g as an indented Document.
func WriteJSON(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("WriteJSON: nil graph: %w", ErrMalformedRecord)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(g)); err != nil {
		return fmt.Errorf("WriteJSON: %w", err)
	}

	return nil
}
