// SPDX-License-Identifier: MIT
//
// File: csv.go
// Role: CSV codec.
//
// Load stages:
//   - Stage 1: read the header and locate the required columns by name.
//   - Stage 2: decode every row into a node, add nodes in row order.
//   - Stage 3: replay the neighbour lists with AddEdge in row order.

package converters

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/socialgraph/core"
)

type csvRow struct {
	line      int
	node      core.Node
	neighbors []int
}

// ReadCSV decodes a graph from CSV. BaglantiSayisi is optional and ignored
// on load since degrees follow from the neighbour lists.
//
// Complexity: O(R + L) for R rows and L listed neighbours.
func ReadCSV(r io.Reader) (*core.Graph, LoadReport, error) {
	var rep LoadReport

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, rep, fmt.Errorf("ReadCSV: empty input: %w", ErrMalformedRecord)
	}
	if err != nil {
		return nil, rep, fmt.Errorf("ReadCSV: header: %w: %w", ErrMalformedRecord, err)
	}
	cols, err := locateColumns(header)
	if err != nil {
		return nil, rep, fmt.Errorf("ReadCSV: %w", err)
	}

	var rows []csvRow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, rep, fmt.Errorf("ReadCSV: %w: %w", ErrMalformedRecord, err)
		}
		line, _ := cr.FieldPos(0)
		if isBlank(rec) {
			continue
		}
		row, err := decodeRow(rec, cols, line)
		if err != nil {
			return nil, rep, fmt.Errorf("ReadCSV: %w", err)
		}
		rows = append(rows, row)
	}

	g := core.NewGraph(core.WithCapacity(len(rows)))
	for _, row := range rows {
		switch o := g.AddNode(row.node); o {
		case core.OutcomeApplied:
			rep.Nodes++
		case core.OutcomeExists:
			rep.DuplicateNodes++
		default:
			return nil, rep, fmt.Errorf("ReadCSV: line %d: node %d: %s: %w", row.line, row.node.ID, o, ErrMalformedRecord)
		}
	}
	for _, row := range rows {
		for _, nb := range row.neighbors {
			switch g.AddEdge(row.node.ID, nb) {
			case core.OutcomeApplied:
				rep.Edges++
			case core.OutcomeNotFound, core.OutcomeSelfLoop:
				rep.SkippedEdges++
			}
		}
	}

	return g, rep, nil
}

type columns struct {
	id, name, aktiflik, etkilesim, neighbors int
}

func locateColumns(header []string) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")
		pos[h] = i
	}
	var c columns
	for _, want := range []struct {
		name string
		dst  *int
	}{
		{ColID, &c.id},
		{ColName, &c.name},
		{ColAktiflik, &c.aktiflik},
		{ColEtkilesim, &c.etkilesim},
		{ColNeighbors, &c.neighbors},
	} {
		i, ok := pos[want.name]
		if !ok {
			return c, fmt.Errorf("missing column %q: %w", want.name, ErrMalformedRecord)
		}
		*want.dst = i
	}

	return c, nil
}

func decodeRow(rec []string, c columns, line int) (csvRow, error) {
	field := func(i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}

		return ""
	}
	bad := func(col string, err error) error {
		return fmt.Errorf("line %d column %s: %w: %w", line, col, ErrMalformedRecord, err)
	}

	row := csvRow{line: line}
	id, err := strconv.Atoi(field(c.id))
	if err != nil {
		return row, bad(ColID, err)
	}
	akt, err := parseScore(field(c.aktiflik))
	if err != nil {
		return row, bad(ColAktiflik, err)
	}
	etk, err := parseScore(field(c.etkilesim))
	if err != nil {
		return row, bad(ColEtkilesim, err)
	}
	row.node = core.Node{ID: id, Name: field(c.name), Aktiflik: akt, Etkilesim: etk}

	list := strings.Trim(field(c.neighbors), `"' `)
	if list == "" {
		return row, nil
	}
	for _, tok := range strings.Split(list, ",") {
		tok = strings.Trim(strings.TrimSpace(tok), `"'`)
		if tok == "" {
			continue
		}
		nb, err := strconv.Atoi(tok)
		if err != nil {
			return row, bad(ColNeighbors, err)
		}
		row.neighbors = append(row.neighbors, nb)
	}

	return row, nil
}

// parseScore parses an attribute, rejecting NaN and infinities that
// strconv.ParseFloat accepts.
func parseScore(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}

	return v, nil
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}

	return true
}

// WriteCSV encodes g as CSV: one row per node in insertion order, with the
// live degree and the neighbours in adjacency order.
//
// Complexity: O(V + E).
func WriteCSV(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("WriteCSV: nil graph: %w", ErrMalformedRecord)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	for _, n := range g.Nodes() {
		nbs := g.Neighbors(n.ID)
		ids := make([]string, len(nbs))
		for i, nb := range nbs {
			ids[i] = strconv.Itoa(nb)
		}
		rec := []string{
			strconv.Itoa(n.ID),
			n.Name,
			formatFloat(n.Aktiflik),
			formatFloat(n.Etkilesim),
			strconv.Itoa(len(nbs)),
			strings.Join(ids, ","),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteCSV: node %d: %w", n.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
