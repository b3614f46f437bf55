package voxel

import (
	"math/bits"
	"slices"
)

func part1By2(x uint64) uint64 {
	x &= 0x1fffff
	x = (x | (x << 32)) & 0x1f00000000ffff
	x = (x | (x << 16)) & 0x1f0000ff0000ff
	x = (x | (x << 8)) & 0x100f00f00f00f00f
	x = (x | (x << 4)) & 0x10c30c30c30c30c3
	x = (x | (x << 2)) & 0x1249249249249249
	return x
}

func compact1By2(x uint64) uint64 {
	x &= 0x1249249249249249
	x = (x ^ (x >> 2)) & 0x10c30c30c30c30c3
	x = (x ^ (x >> 4)) & 0x100f00f00f00f00f
	x = (x ^ (x >> 8)) & 0x1f0000ff0000ff
	x = (x ^ (x >> 16)) & 0x1f00000000ffff
	x = (x ^ (x >> 32)) & 0x1fffff
	return x
}

// Morton3D interleaves the low 21 bits of x, y and z.
func Morton3D(x, y, z uint32) uint64 {
	return part1By2(uint64(x)) |
		(part1By2(uint64(y)) << 1) |
		(part1By2(uint64(z)) << 2)
}

func MortonDecode3D(index uint64) (x, y, z uint32) {
	x = uint32(compact1By2(index))
	y = uint32(compact1By2(index >> 1))
	z = uint32(compact1By2(index >> 2))
	return
}

// MortonBits is the key width needed to address a w×h×d volume.
func MortonBits(w, h, d int) int {
	return bits.Len(uint(max(w, h, d)-1)) * 3
}

// mortonOrder lists the grid's linear indices sorted by Morton key, so
// spatially close cells end up close in the encoded stream.
func mortonOrder(g *Grid) []int {
	type kv struct {
		key uint64
		i   int
	}
	idx := make([]kv, 0, g.Len())
	for i := 0; i < g.Len(); i++ {
		x, y, z := g.Coords(i)
		idx = append(idx, kv{Morton3D(uint32(x), uint32(y), uint32(z)), i})
	}
	slices.SortFunc(idx, func(a, b kv) int {
		switch {
		case a.key < b.key:
			return -1
		case a.key > b.key:
			return 1
		}
		return 0
	})
	order := make([]int, len(idx))
	for i := range idx {
		order[i] = idx[i].i
	}
	return order
}

func flatten(g *Grid) []uint8 {
	stream := make([]uint8, 0, g.Len())
	for _, i := range mortonOrder(g) {
		stream = append(stream, g.cells[i])
	}
	return stream
}

func applyOrder(g *Grid, stream []uint8) {
	for rank, i := range mortonOrder(g) {
		g.cells[i] = stream[rank]
	}
}
