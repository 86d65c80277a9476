// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinels, formats and the load report.

package converters

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrMalformedRecord indicates input that cannot be decoded into nodes and edges.
	ErrMalformedRecord = errors.New("converters: malformed record")

	// ErrUnknownFormat indicates a format name or file extension with no codec.
	ErrUnknownFormat = errors.New("converters: unknown format")
)

// CSV column names, in the order WriteCSV emits them.
const (
	ColID        = "DugumId"
	ColName      = "Ad"
	ColAktiflik  = "Aktiflik"
	ColEtkilesim = "Etkilesim"
	ColDegree    = "BaglantiSayisi"
	ColNeighbors = "Komsular"
)

// Header is the CSV header row.
var Header = []string{ColID, ColName, ColAktiflik, ColEtkilesim, ColDegree, ColNeighbors}

// Format selects a codec.
type Format string

const (
	FormatAuto Format = "auto"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat maps "", "auto", "csv" and "json" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// resolve turns FormatAuto into a concrete format using the path extension.
func (f Format) resolve(path string) (Format, error) {
	if f != FormatAuto && f != "" {
		return f, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("extension of %q: %w", path, ErrUnknownFormat)
	}
}

// LoadReport summarizes what a loader did with its input.
type LoadReport struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`

	// SkippedEdges counts references that could not become edges: unknown
	// neighbour ids and self-references.
	SkippedEdges int `json:"skipped_edges"`

	// DuplicateNodes counts rows whose id was already loaded; the first row wins.
	DuplicateNodes int `json:"duplicate_nodes"`
}
