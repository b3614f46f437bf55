package api

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/voxelsplace/cubemesh/voxel"
)

// ParseRLE parses a comma separated list such as "10,0,4,1". Surrounding
// brackets and blanks are ignored.
func ParseRLE(s string) ([]int, error) {
	s = strings.Trim(s, "[] ")
	var rle []int
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		i, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse RLE %q", p)
		}
		rle = append(rle, i)
	}
	if len(rle) == 0 {
		return nil, errors.New("empty RLE input")
	}
	return rle, nil
}

// RLEToGridBytes expands an RLE string into a w×h×d grid and returns it as
// .vxg bytes.
func RLEToGridBytes(w, h, d int, rleArg string) ([]byte, error) {
	rle, err := ParseRLE(rleArg)
	if err != nil {
		return nil, err
	}
	grid, err := voxel.ExpandRLE(w, h, d, rle)
	if err != nil {
		return nil, errors.Wrap(err, "failed to expand RLE")
	}
	return voxel.EncodeGrid(grid)
}

// MeshOptions selects how GridToGLB meshes the grid.
type MeshOptions struct {
	voxel.Options
	// Greedy merges coplanar faces of equal material.
	Greedy bool
	// Workers > 1 meshes x-slabs concurrently. Ignored when Greedy is set.
	Workers int
}

// BuildMesh meshes g according to opts.
func BuildMesh(g *voxel.Grid, opts MeshOptions) (*voxel.Mesh, error) {
	b := voxel.NewBuilder(opts.Options)
	switch {
	case opts.Greedy:
		return b.GenerateGreedy(g), nil
	case opts.Workers > 1:
		return b.GenerateParallel(g, opts.Workers)
	}
	return b.Generate(g), nil
}

// GridToGLB takes .vxg bytes and returns .glb bytes of the culled mesh.
func GridToGLB(gridBytes []byte, mopts MeshOptions, gopts GLBOptions) ([]byte, error) {
	grid, err := voxel.DecodeGrid(gridBytes)
	if err != nil {
		return nil, err
	}
	mesh, err := BuildMesh(grid, mopts)
	if err != nil {
		return nil, err
	}
	return MeshToGLB(mesh, gopts)
}

// ApplyEditsToGridBytes applies an edit stream to .vxg bytes and returns the
// re-encoded grid.
func ApplyEditsToGridBytes(gridBytes, edits []byte) ([]byte, error) {
	grid, err := voxel.DecodeGrid(gridBytes)
	if err != nil {
		return nil, err
	}
	if err := voxel.ApplyEdits(grid, edits); err != nil {
		return nil, errors.Wrap(err, "apply edits")
	}
	return voxel.EncodeGrid(grid)
}

// GridToEdits returns the edit stream that builds the grid from empty.
func GridToEdits(gridBytes []byte) ([]byte, error) {
	grid, err := voxel.DecodeGrid(gridBytes)
	if err != nil {
		return nil, err
	}
	return voxel.EncodeGridEdits(grid), nil
}

// Stats summarises a grid and its meshes.
type Stats struct {
	W, H, D       int
	Occupied      int
	NaiveFaces    int
	VisibleFaces  int
	GreedyQuads   int
	Vertices      int
	Indices       int
	MeshChecksum  uint64
	Encoding      int
	Compression   string
	EncodedLength int
}

// GridStats meshes the grid both ways and reports the sizes.
func GridStats(gridBytes []byte) (Stats, error) {
	hdr, _, err := voxel.ParseHeader(gridBytes)
	if err != nil {
		return Stats{}, err
	}
	grid, err := voxel.DecodeGrid(gridBytes)
	if err != nil {
		return Stats{}, err
	}
	mesh := voxel.GenerateMesh(grid)
	w, h, d := grid.Dims()
	return Stats{
		W: w, H: h, D: d,
		Occupied:      grid.Occupied(),
		NaiveFaces:    voxel.NaiveFaceCount(grid),
		VisibleFaces:  mesh.FaceCount(),
		GreedyQuads:   voxel.NewBuilder(voxel.Options{}).GenerateGreedy(grid).FaceCount(),
		Vertices:      mesh.VertexCount(),
		Indices:       len(mesh.Indices),
		MeshChecksum:  mesh.Checksum(),
		Encoding:      hdr.Encoding(),
		Compression:   hdr.Compression(),
		EncodedLength: len(gridBytes),
	}, nil
}
