// SPDX-License-Identifier: MIT
//
// File: file.go
// Role: path-based load/save with codec selection.

package converters

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/socialgraph/core"
)

// LoadFile reads path with the given format; FormatAuto picks the codec from
// the extension (.csv or .json).
func LoadFile(path string, format Format) (*core.Graph, LoadReport, error) {
	f, err := format.resolve(path)
	if err != nil {
		return nil, LoadReport{}, fmt.Errorf("LoadFile: %w", err)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, LoadReport{}, fmt.Errorf("LoadFile: %w", err)
	}
	defer fh.Close()

	switch f {
	case FormatCSV:
		return ReadCSV(fh)
	case FormatJSON:
		return ReadJSON(fh)
	default:
		return nil, LoadReport{}, fmt.Errorf("LoadFile: %q: %w", f, ErrUnknownFormat)
	}
}

// SaveFile encodes g into path. The content is written to a temporary file
// in the same directory and renamed over path.
func SaveFile(path string, format Format, g *core.Graph) error {
	f, err := format.resolve(path)
	if err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}

	var buf bytes.Buffer
	switch f {
	case FormatCSV:
		err = WriteCSV(&buf, g)
	case FormatJSON:
		err = WriteJSON(&buf, g)
	default:
		err = fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err = tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("SaveFile: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}

	return nil
}
