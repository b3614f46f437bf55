package voxel

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// An edit stream is a sequence of (uvarint linear index, material byte)
// pairs. Material 0 clears the cell. Indices use the grid's scan order.

// Edit is a single cell update.
type Edit struct {
	Index    uint32
	Material uint8
}

// EncodeEdits encodes entries exactly as given, deletions included.
func EncodeEdits(entries []Edit) []byte {
	if len(entries) == 0 {
		return nil
	}
	out := make([]byte, 0, len(entries)*3)
	for _, e := range entries {
		out = binary.AppendUvarint(out, uint64(e.Index))
		out = append(out, e.Material)
	}
	return out
}

// EncodeGridEdits encodes every solid cell of g, i.e. the diff that builds
// g from an empty grid of the same size. NewGrid caps grids at MaxCells, so
// every linear index fits the uint32 Edit.Index.
func EncodeGridEdits(g *Grid) []byte {
	var entries []Edit
	for i, c := range g.cells {
		if c != 0 {
			entries = append(entries, Edit{Index: uint32(i), Material: c})
		}
	}
	return EncodeEdits(entries)
}

// DecodeEdits parses an edit stream.
func DecodeEdits(data []byte) ([]Edit, error) {
	var entries []Edit
	pos := 0
	for pos < len(data) {
		idx, n := binary.Uvarint(data[pos:])
		if n <= 0 || idx > math.MaxUint32 {
			return nil, errors.Errorf("edit %d: malformed index", len(entries))
		}
		pos += n
		if pos >= len(data) {
			return nil, errors.Errorf("edit %d: missing material", len(entries))
		}
		entries = append(entries, Edit{Index: uint32(idx), Material: data[pos]})
		pos++
	}
	return entries, nil
}

// ApplyEdits decodes data and applies it to g in order. The grid is left
// untouched when the stream is malformed or addresses a cell outside g.
func ApplyEdits(g *Grid, data []byte) error {
	entries, err := DecodeEdits(data)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if int64(e.Index) >= int64(g.Len()) {
			return errors.Wrapf(ErrOutOfBounds, "edit index %d in %d cells", e.Index, g.Len())
		}
	}
	for _, e := range entries {
		x, y, z := g.Coords(int(e.Index))
		if err := g.Set(x, y, z, e.Material); err != nil {
			return err
		}
	}
	return nil
}
