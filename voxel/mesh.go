package voxel

import (
	"encoding/binary"
	"math"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// Mesh holds indexed triangle-list buffers. Positions, Normals, UVs and
// Materials are parallel; every face contributes 4 vertices and 6 indices.
type Mesh struct {
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32
	// Materials carries the material id of the cell each vertex came from.
	Materials []uint8
	Indices   []uint32
}

func (m *Mesh) VertexCount() int { return len(m.Positions) }

// FaceCount is the number of quads in the mesh.
func (m *Mesh) FaceCount() int { return len(m.Indices) / 6 }

func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

func (m *Mesh) grow(faces int) {
	v := len(m.Positions) + faces*4
	if cap(m.Positions) >= v {
		return
	}
	m.Positions = append(make([][3]float32, 0, v), m.Positions...)
	m.Normals = append(make([][3]float32, 0, v), m.Normals...)
	m.UVs = append(make([][2]float32, 0, v), m.UVs...)
	m.Materials = append(make([]uint8, 0, v), m.Materials...)
	m.Indices = append(make([]uint32, 0, len(m.Indices)+faces*6), m.Indices...)
}

// Append concatenates o onto m, rebasing its indices.
func (m *Mesh) Append(o *Mesh) {
	base := uint32(len(m.Positions))
	m.Positions = append(m.Positions, o.Positions...)
	m.Normals = append(m.Normals, o.Normals...)
	m.UVs = append(m.UVs, o.UVs...)
	m.Materials = append(m.Materials, o.Materials...)
	for _, i := range o.Indices {
		m.Indices = append(m.Indices, base+i)
	}
}

// Validate checks the buffer shape contract.
func (m *Mesh) Validate() error {
	n := len(m.Positions)
	if len(m.Normals) != n || len(m.UVs) != n || len(m.Materials) != n {
		return errors.Errorf("attribute length mismatch: %d positions, %d normals, %d uvs, %d materials",
			n, len(m.Normals), len(m.UVs), len(m.Materials))
	}
	if len(m.Indices)%6 != 0 {
		return errors.Errorf("index count %d is not a multiple of 6", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return errors.Errorf("index %d at %d out of range (%d vertices)", idx, i, n)
		}
	}
	return nil
}

// Checksum hashes every buffer; equal meshes hash equal.
func (m *Mesh) Checksum() uint64 {
	h := xxhash.New()
	var b [4]byte
	f := func(v float32) {
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
		_, _ = h.Write(b[:])
	}
	for _, p := range m.Positions {
		f(p[0])
		f(p[1])
		f(p[2])
	}
	for _, n := range m.Normals {
		f(n[0])
		f(n[1])
		f(n[2])
	}
	for _, uv := range m.UVs {
		f(uv[0])
		f(uv[1])
	}
	_, _ = h.Write(m.Materials)
	for _, i := range m.Indices {
		binary.LittleEndian.PutUint32(b[:], i)
		_, _ = h.Write(b[:])
	}
	return h.Sum64()
}
