package voxel_test

import (
	"testing"

	"github.com/voxelsplace/cubemesh/voxel"
)

func TestGenerateParallel_MatchesSequential(t *testing.T) {
	b := voxel.NewBuilder(voxel.Options{Scale: 1.5})
	for _, dims := range [][3]int{{1, 1, 1}, {2, 1, 1}, {7, 3, 5}, {16, 8, 16}} {
		g := noiseGrid(t, dims[0], dims[1], dims[2], 11, 60, 6)
		want := b.Generate(g)
		for _, workers := range []int{0, 1, 2, 3, 7, 64} {
			got, err := b.GenerateParallel(g, workers)
			if err != nil {
				t.Fatalf("%v workers=%d: %v", dims, workers, err)
			}
			if !meshesEqual(got, want) || got.Checksum() != want.Checksum() {
				t.Fatalf("%v workers=%d: parallel mesh differs from sequential", dims, workers)
			}
		}
	}
}

func TestGenerateParallel_Empty(t *testing.T) {
	got, err := voxel.NewBuilder(voxel.Options{}).GenerateParallel(mustGrid(t, 8, 8, 8), 4)
	if err != nil {
		t.Fatal(err)
	}
	if got.VertexCount() != 0 || len(got.Indices) != 0 {
		t.Fatalf("empty grid: %d vertices", got.VertexCount())
	}
}

func BenchmarkGenerateParallel_Noise32(b *testing.B) {
	g := noiseGrid(b, 32, 32, 32, 1, 50, 8)
	builder := voxel.NewBuilder(voxel.Options{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := builder.GenerateParallel(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
