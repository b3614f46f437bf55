package voxel

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a grid is built with a non-positive size.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfBounds is returned when a mutation addresses a cell outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// Occupancy answers whether a cell is solid. Coordinates outside the
// queried volume must report false.
type Occupancy interface {
	IsOccupied(x, y, z int) bool
}

// Source is the read-only view the mesher needs: bounds plus per-cell
// material ids, where 0 is air.
type Source interface {
	Occupancy
	Dims() (w, h, d int)
	Material(x, y, z int) uint8
}

// Grid is a dense W×H×D block of material ids. Cells are stored in scan
// order: x outermost, then y, then z.
type Grid struct {
	w, h, d int
	cells   []uint8
}

// MaxCells caps the cell count of a grid, so linear indices always fit a
// uint32 and decoding a hostile header cannot allocate without limit.
const MaxCells = 1 << 26

// NewGrid allocates an empty grid of at most MaxCells cells.
func NewGrid(w, h, d int) (*Grid, error) {
	if w <= 0 || h <= 0 || d <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%dx%d", w, h, d)
	}
	if w > MaxCells || h > MaxCells || d > MaxCells || w*h > MaxCells || w*h*d > MaxCells {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%dx%d exceeds %d cells", w, h, d, MaxCells)
	}
	return &Grid{w: w, h: h, d: d, cells: make([]uint8, w*h*d)}, nil
}

// Dims returns the grid size along x, y and z.
func (g *Grid) Dims() (w, h, d int) { return g.w, g.h, g.d }

// Len is the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x,y,z) lies inside the grid.
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h && z >= 0 && z < g.d
}

// Index returns the linear scan-order index of an in-bounds cell.
func (g *Grid) Index(x, y, z int) int {
	return (x*g.h+y)*g.d + z
}

// Coords is the inverse of Index.
func (g *Grid) Coords(i int) (x, y, z int) {
	z = i % g.d
	y = (i / g.d) % g.h
	x = i / (g.d * g.h)
	return
}

// Material returns the material id at (x,y,z), or 0 outside the grid.
func (g *Grid) Material(x, y, z int) uint8 {
	if !g.InBounds(x, y, z) {
		return 0
	}
	return g.cells[g.Index(x, y, z)]
}

// IsOccupied reports whether (x,y,z) holds a non-air material.
func (g *Grid) IsOccupied(x, y, z int) bool {
	return g.Material(x, y, z) != 0
}

// Set stores m at (x,y,z). A zero material clears the cell.
func (g *Grid) Set(x, y, z int, m uint8) error {
	if !g.InBounds(x, y, z) {
		return errors.Wrapf(ErrOutOfBounds, "(%d,%d,%d) in %dx%dx%d", x, y, z, g.w, g.h, g.d)
	}
	g.cells[g.Index(x, y, z)] = m
	return nil
}

// Fill sets every cell to m.
func (g *Grid) Fill(m uint8) {
	for i := range g.cells {
		g.cells[i] = m
	}
}

// FillBox sets the half-open box [min, max) to m. The box must lie inside the grid.
func (g *Grid) FillBox(min, max [3]int, m uint8) error {
	if !g.InBounds(min[0], min[1], min[2]) || !g.InBounds(max[0]-1, max[1]-1, max[2]-1) {
		return errors.Wrapf(ErrOutOfBounds, "box %v-%v in %dx%dx%d", min, max, g.w, g.h, g.d)
	}
	for x := min[0]; x < max[0]; x++ {
		for y := min[1]; y < max[1]; y++ {
			for z := min[2]; z < max[2]; z++ {
				g.cells[g.Index(x, y, z)] = m
			}
		}
	}
	return nil
}

// Occupied counts the non-air cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, c := range g.cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = append([]uint8(nil), g.cells...)
	return &c
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.w != o.w || g.h != o.h || g.d != o.d {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

const (
	demoWidth  = 8
	demoHeight = 2
)

// NewDemoChunk returns the 8×2×8 solid block the viewer demo renders.
func NewDemoChunk() *Grid {
	g, _ := NewGrid(demoWidth, demoHeight, demoWidth)
	g.Fill(1)
	return g
}
