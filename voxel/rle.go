package voxel

import "github.com/pkg/errors"

// ExpandRLE builds a w×h×d grid from count/value pairs laid out in scan
// order. The runs must cover the grid exactly.
func ExpandRLE(w, h, d int, rle []int) (*Grid, error) {
	if len(rle)%2 != 0 {
		return nil, errors.New("rle must be count/value pairs")
	}
	g, err := NewGrid(w, h, d)
	if err != nil {
		return nil, err
	}
	idx := 0
	for i := 0; i < len(rle); i += 2 {
		count, value := rle[i], rle[i+1]
		if count < 0 {
			return nil, errors.Errorf("negative run length %d", count)
		}
		if value < 0 || value > 255 {
			return nil, errors.Errorf("invalid material %d (0-255)", value)
		}
		if count > g.Len()-idx {
			return nil, errors.Errorf("rle exceeds grid size %d", g.Len())
		}
		for j := 0; j < count; j++ {
			g.cells[idx] = uint8(value)
			idx++
		}
	}
	if idx != g.Len() {
		return nil, errors.Errorf("rle does not fill the grid (%d/%d)", idx, g.Len())
	}
	return g, nil
}

// EncodeRLE is the inverse of ExpandRLE.
func EncodeRLE(g *Grid) []int {
	var out []int
	for i := 0; i < len(g.cells); {
		j := i + 1
		for j < len(g.cells) && g.cells[j] == g.cells[i] {
			j++
		}
		out = append(out, j-i, int(g.cells[i]))
		i = j
	}
	return out
}
