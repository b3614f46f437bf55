package voxel_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/voxelsplace/cubemesh/voxel"
)

// quadArea sums the areas of all quads in cell units.
func quadArea(m *voxel.Mesh) float32 {
	var area float32
	for i := 0; i < len(m.Indices); i += 6 {
		p0 := mgl32.Vec3(m.Positions[m.Indices[i]])
		p1 := mgl32.Vec3(m.Positions[m.Indices[i+1]])
		p3 := mgl32.Vec3(m.Positions[m.Indices[i+5]])
		area += p1.Sub(p0).Cross(p3.Sub(p0)).Len()
	}
	return area
}

func TestGenerateGreedy_SolidBox(t *testing.T) {
	b := voxel.NewBuilder(voxel.Options{})
	m := b.GenerateGreedy(solidGrid(t, 4, 3, 5))
	if m.FaceCount() != 6 {
		t.Fatalf("solid box should merge into 6 quads, got %d", m.FaceCount())
	}
	if area := quadArea(m); area != 2*(4*3+4*5+3*5) {
		t.Fatalf("surface area = %v", area)
	}
}

func TestGenerateGreedy_MaterialsDoNotMerge(t *testing.T) {
	g := mustGrid(t, 2, 1, 1)
	_ = g.Set(0, 0, 0, 1)
	_ = g.Set(1, 0, 0, 2)
	m := voxel.NewBuilder(voxel.Options{}).GenerateGreedy(g)
	if m.FaceCount() != 10 {
		t.Fatalf("two materials: %d quads, want 10", m.FaceCount())
	}
	_ = g.Set(1, 0, 0, 1)
	m = voxel.NewBuilder(voxel.Options{}).GenerateGreedy(g)
	if m.FaceCount() != 6 {
		t.Fatalf("one material: %d quads, want 6", m.FaceCount())
	}
}

func TestGenerateGreedy_CoversCulledSurface(t *testing.T) {
	b := voxel.NewBuilder(voxel.Options{})
	for seed := int64(1); seed <= 4; seed++ {
		g := noiseGrid(t, 8, 6, 7, seed, 50, 2)
		m := b.GenerateGreedy(g)
		if err := m.Validate(); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if got, want := quadArea(m), float32(voxel.VisibleFaceCount(g)); got != want {
			t.Fatalf("seed %d: greedy area %v, culled faces %v", seed, got, want)
		}
		if m.FaceCount() > b.Generate(g).FaceCount() {
			t.Fatalf("seed %d: greedy emitted more quads than per-face meshing", seed)
		}
	}
}

func TestGenerateGreedy_WindingMatchesNormals(t *testing.T) {
	m := voxel.NewBuilder(voxel.Options{}).GenerateGreedy(noiseGrid(t, 6, 6, 6, 9, 60, 1))
	for i := 0; i < len(m.Indices); i += 3 {
		p0 := mgl32.Vec3(m.Positions[m.Indices[i]])
		p1 := mgl32.Vec3(m.Positions[m.Indices[i+1]])
		p2 := mgl32.Vec3(m.Positions[m.Indices[i+2]])
		n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
		if !n.ApproxEqual(mgl32.Vec3(m.Normals[m.Indices[i]])) {
			t.Fatalf("triangle %d faces %v, normal %v", i/3, n, m.Normals[m.Indices[i]])
		}
	}
}
