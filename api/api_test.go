package api_test

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/voxelsplace/cubemesh/api"
	"github.com/voxelsplace/cubemesh/voxel"
)

func decodeGLB(t *testing.T, glb []byte) *gltf.Document {
	t.Helper()
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(bytes.NewReader(glb)).Decode(doc); err != nil {
		t.Fatalf("decode glb: %v", err)
	}
	return doc
}

func encodeGrid(t *testing.T, g *voxel.Grid) []byte {
	t.Helper()
	data, err := voxel.EncodeGrid(g)
	if err != nil {
		t.Fatalf("EncodeGrid: %v", err)
	}
	return data
}

func TestRLEToGridBytes_RejectsBadInput(t *testing.T) {
	if _, err := api.RLEToGridBytes(2, 1, 1, "1,1,9223372036854775807,1"); err == nil {
		t.Fatalf("expected error for oversized run")
	}
	if _, err := api.RLEToGridBytes(70000, 1, 1, "70000,1"); !errors.Is(err, voxel.ErrInvalidDimensions) {
		t.Fatalf("want ErrInvalidDimensions for a side above 65535, got %v", err)
	}
}

func TestMeshToGLB_Attributes(t *testing.T) {
	mesh := voxel.GenerateMesh(voxel.NewDemoChunk())
	glb, err := api.MeshToGLB(mesh, api.GLBOptions{Translation: [3]float64{0, 1.5, -2}})
	if err != nil {
		t.Fatalf("MeshToGLB: %v", err)
	}
	doc := decodeGLB(t, glb)
	if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
		t.Fatalf("expected one mesh with one primitive")
	}
	prim := doc.Meshes[0].Primitives[0]
	for _, attr := range []string{gltf.POSITION, gltf.NORMAL, gltf.TEXCOORD_0, gltf.COLOR_0} {
		if _, ok := prim.Attributes[attr]; !ok {
			t.Fatalf("missing attribute %s", attr)
		}
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[prim.Attributes[gltf.POSITION]], nil)
	if err != nil {
		t.Fatalf("read positions: %v", err)
	}
	if len(positions) != mesh.VertexCount() {
		t.Fatalf("positions: got %d, want %d", len(positions), mesh.VertexCount())
	}
	for i := range positions {
		if positions[i] != mesh.Positions[i] {
			t.Fatalf("position %d: got %v, want %v", i, positions[i], mesh.Positions[i])
		}
	}
	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		t.Fatalf("read indices: %v", err)
	}
	if len(indices) != len(mesh.Indices) {
		t.Fatalf("indices: got %d, want %d", len(indices), len(mesh.Indices))
	}
	for i := range indices {
		if indices[i] != mesh.Indices[i] {
			t.Fatalf("index %d: got %d, want %d", i, indices[i], mesh.Indices[i])
		}
	}
	if got := doc.Nodes[0].Translation; got != [3]float64{0, 1.5, -2} {
		t.Fatalf("translation = %v", got)
	}
}

func TestMeshToGLB_Texture(t *testing.T) {
	mesh := voxel.GenerateMesh(voxel.NewDemoChunk())
	glb, err := api.MeshToGLB(mesh, api.GLBOptions{Name: "demo", TextureURI: "array_texture.png"})
	if err != nil {
		t.Fatalf("MeshToGLB: %v", err)
	}
	doc := decodeGLB(t, glb)
	if len(doc.Images) != 1 || doc.Images[0].URI != "array_texture.png" {
		t.Fatalf("texture image not referenced")
	}
	pbr := doc.Materials[0].PBRMetallicRoughness
	if pbr == nil || pbr.BaseColorTexture == nil {
		t.Fatalf("material has no base colour texture")
	}
	if doc.Meshes[0].Name != "demo" {
		t.Fatalf("mesh name = %q", doc.Meshes[0].Name)
	}
}

func TestMeshToGLB_Empty(t *testing.T) {
	g, _ := voxel.NewGrid(4, 4, 4)
	glb, err := api.MeshToGLB(voxel.GenerateMesh(g), api.GLBOptions{})
	if err != nil {
		t.Fatalf("MeshToGLB: %v", err)
	}
	doc := decodeGLB(t, glb)
	if len(doc.Meshes) != 0 || len(doc.Nodes) != 1 || doc.Nodes[0].Mesh != nil {
		t.Fatalf("empty mesh should produce a bare node")
	}
}

func TestMeshToGLB_InvalidMesh(t *testing.T) {
	mesh := voxel.GenerateMesh(voxel.NewDemoChunk())
	mesh.Indices[0] = uint32(mesh.VertexCount())
	if _, err := api.MeshToGLB(mesh, api.GLBOptions{}); err == nil {
		t.Fatalf("expected error for out-of-range index")
	}
}

func TestRLEToGridBytes_ThenGLB(t *testing.T) {
	gridBytes, err := api.RLEToGridBytes(2, 1, 1, "[2,1]")
	if err != nil {
		t.Fatalf("RLEToGridBytes: %v", err)
	}
	stats, err := api.GridStats(gridBytes)
	if err != nil {
		t.Fatalf("GridStats: %v", err)
	}
	if stats.VisibleFaces != 10 || stats.Vertices != 40 || stats.Indices != 60 || stats.NaiveFaces != 12 || stats.GreedyQuads != 6 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	for _, opts := range []api.MeshOptions{{}, {Greedy: true}, {Workers: 2}} {
		glb, err := api.GridToGLB(gridBytes, opts, api.GLBOptions{})
		if err != nil {
			t.Fatalf("GridToGLB %+v: %v", opts, err)
		}
		if len(decodeGLB(t, glb).Meshes) != 1 {
			t.Fatalf("GridToGLB %+v: expected a mesh", opts)
		}
	}
}

func TestParseRLE_Invalid(t *testing.T) {
	if _, err := api.ParseRLE("34,7,abc,0"); err == nil {
		t.Fatalf("expected error for invalid RLE input")
	}
	if _, err := api.ParseRLE(""); err == nil {
		t.Fatalf("expected error for empty RLE input")
	}
	if _, err := api.RLEToGridBytes(2, 2, 2, "3,1"); err == nil {
		t.Fatalf("expected error for short RLE")
	}
}

func TestApplyEditsToGridBytes(t *testing.T) {
	base := encodeGrid(t, voxel.NewDemoChunk())
	edits := voxel.EncodeEdits([]voxel.Edit{{Index: 0, Material: 0}, {Index: 5, Material: 4}})
	out, err := api.ApplyEditsToGridBytes(base, edits)
	if err != nil {
		t.Fatalf("ApplyEditsToGridBytes: %v", err)
	}
	g, err := voxel.DecodeGrid(out)
	if err != nil {
		t.Fatalf("DecodeGrid: %v", err)
	}
	if g.IsOccupied(0, 0, 0) || g.Material(g.Coords(5)) != 4 {
		t.Fatalf("edits not applied")
	}

	bad := voxel.EncodeEdits([]voxel.Edit{{Index: 128, Material: 1}})
	if _, err := api.ApplyEditsToGridBytes(base, bad); !errors.Is(err, voxel.ErrOutOfBounds) {
		t.Fatalf("want ErrOutOfBounds, got %v", err)
	}
}

func TestGridToEdits(t *testing.T) {
	want := voxel.NewDemoChunk()
	edits, err := api.GridToEdits(encodeGrid(t, want))
	if err != nil {
		t.Fatalf("GridToEdits: %v", err)
	}
	got, _ := voxel.NewGrid(want.Dims())
	if err := voxel.ApplyEdits(got, edits); err != nil {
		t.Fatalf("ApplyEdits: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("grid mismatch")
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := api.ParseHexColor("#ff000080")
	if err != nil {
		t.Fatalf("ParseHexColor: %v", err)
	}
	if c[0] != 1 || c[1] != 0 || c[2] != 0 || c[3] != float32(0x80)/255 {
		t.Fatalf("got %v", c)
	}
	for _, bad := range []string{"", "ff0000", "#ff00", "#gg0000"} {
		if _, err := api.ParseHexColor(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
	for m := 0; m < 256; m++ {
		if _, err := api.MaterialColor(uint8(m)); err != nil {
			t.Fatalf("material %d: %v", m, err)
		}
	}
}
