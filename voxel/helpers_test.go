package voxel_test

import (
	"math/rand"
	"testing"

	"github.com/voxelsplace/cubemesh/voxel"
)

func mustGrid(t testing.TB, w, h, d int) *voxel.Grid {
	t.Helper()
	g, err := voxel.NewGrid(w, h, d)
	if err != nil {
		t.Fatalf("NewGrid(%d,%d,%d): %v", w, h, d, err)
	}
	return g
}

func solidGrid(t testing.TB, w, h, d int) *voxel.Grid {
	g := mustGrid(t, w, h, d)
	g.Fill(1)
	return g
}

// noiseGrid fills roughly pct percent of the cells with materials 1..maxMat.
func noiseGrid(t testing.TB, w, h, d int, seed int64, pct float64, maxMat int) *voxel.Grid {
	g := mustGrid(t, w, h, d)
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < g.Len(); i++ {
		if r.Float64()*100 < pct {
			x, y, z := g.Coords(i)
			if err := g.Set(x, y, z, uint8(1+r.Intn(maxMat))); err != nil {
				t.Fatalf("Set: %v", err)
			}
		}
	}
	return g
}

func encodeGrid(t testing.TB, g *voxel.Grid) []byte {
	t.Helper()
	data, err := voxel.EncodeGrid(g)
	if err != nil {
		t.Fatalf("EncodeGrid: %v", err)
	}
	return data
}

func meshesEqual(a, b *voxel.Mesh) bool {
	if a.VertexCount() != b.VertexCount() || len(a.Indices) != len(b.Indices) {
		return false
	}
	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] || a.Normals[i] != b.Normals[i] ||
			a.UVs[i] != b.UVs[i] || a.Materials[i] != b.Materials[i] {
			return false
		}
	}
	for i := range a.Indices {
		if a.Indices[i] != b.Indices[i] {
			return false
		}
	}
	return true
}
