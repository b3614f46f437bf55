package voxel

import "github.com/go-gl/mathgl/mgl32"

// UVFunc remaps a canonical face UV (one of the unit square corners) for a
// given face and material, e.g. into a texture atlas tile.
type UVFunc func(f Face, material uint8, uv mgl32.Vec2) mgl32.Vec2

// Options configures mesh generation.
type Options struct {
	// Scale is the world size of one cell. Zero means 1.
	Scale float32
	// UV overrides texture coordinates. Nil keeps the canonical [0,1] square.
	UV UVFunc
}

// Builder turns visible faces into mesh buffers. It holds no per-mesh
// state and is safe for concurrent use.
type Builder struct {
	scale float32
	uv    UVFunc
}

// NewBuilder returns a Builder for opts.
func NewBuilder(opts Options) *Builder {
	b := &Builder{scale: opts.Scale, uv: opts.UV}
	if b.scale == 0 {
		b.scale = 1
	}
	return b
}

// GenerateMesh meshes src with default options.
func GenerateMesh(src Source) *Mesh {
	return NewBuilder(Options{}).Generate(src)
}

// Generate emits every visible face of src, scanning x, then y, then z.
func (b *Builder) Generate(src Source) *Mesh {
	w, _, _ := src.Dims()
	return b.generateSlab(src, 0, w)
}

func (b *Builder) generateSlab(src Source, x0, x1 int) *Mesh {
	_, h, d := src.Dims()
	m := &Mesh{}
	for x := x0; x < x1; x++ {
		for y := 0; y < h; y++ {
			for z := 0; z < d; z++ {
				mat := src.Material(x, y, z)
				if mat == 0 {
					continue
				}
				visible := VisibleFaces(src, x, y, z)
				for _, f := range Faces {
					if visible.Has(f) {
						b.EmitFace(m, [3]int{x, y, z}, f, mat)
					}
				}
			}
		}
	}
	return m
}

// EmitFace appends the unit quad for face f of cell: 4 vertices wound
// counter-clockwise seen from outside and 6 indices.
func (b *Builder) EmitFace(m *Mesh, cell [3]int, f Face, material uint8) {
	b.emitQuad(m, cell, [3]int{1, 1, 1}, f, material)
}

// emitQuad appends face f of the box at cell spanning size cells. size
// along f's axis must be 1.
func (b *Builder) emitQuad(m *Mesh, cell, size [3]int, f Face, material uint8) {
	spec := &faceSpecs[f]
	origin := mgl32.Vec3{float32(cell[0]), float32(cell[1]), float32(cell[2])}
	normal := [3]float32(f.Normal())
	base := uint32(len(m.Positions))

	for i, c := range spec.corners {
		p := origin.Add(mgl32.Vec3{
			c[0] * float32(size[0]),
			c[1] * float32(size[1]),
			c[2] * float32(size[2]),
		}).Mul(b.scale)
		uv := spec.uvs[i]
		if b.uv != nil {
			uv = b.uv(f, material, uv)
		}
		m.Positions = append(m.Positions, [3]float32(p))
		m.Normals = append(m.Normals, normal)
		m.UVs = append(m.UVs, [2]float32(uv))
		m.Materials = append(m.Materials, material)
	}
	m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
}

// AtlasUV maps each face into one tile of a cols×rows texture atlas. tile
// picks the tile number (row-major) for a face and material.
func AtlasUV(cols, rows int, tile func(f Face, material uint8) int) UVFunc {
	return func(f Face, material uint8, uv mgl32.Vec2) mgl32.Vec2 {
		t := tile(f, material)
		tx, ty := t%cols, t/cols
		return mgl32.Vec2{
			(float32(tx) + uv[0]) / float32(cols),
			(float32(ty) + uv[1]) / float32(rows),
		}
	}
}
