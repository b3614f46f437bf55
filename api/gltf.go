package api

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/voxelsplace/cubemesh/voxel"
)

// GLBOptions controls how a mesh is packaged into a glTF scene.
type GLBOptions struct {
	// Name of the mesh and node. Empty means "ChunkMesh".
	Name string
	// TextureURI, when set, is referenced as the base colour texture.
	TextureURI string
	// Translation places the node in the scene.
	Translation [3]float64
}

// BuildDocument wraps m in a single-node glTF document with positions,
// normals, texture coordinates, per-vertex palette colours and indices.
func BuildDocument(m *voxel.Mesh, opts GLBOptions) (*gltf.Document, error) {
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid mesh")
	}
	name := opts.Name
	if name == "" {
		name = "ChunkMesh"
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "cubemesh"
	node := &gltf.Node{
		Name:        name,
		Translation: opts.Translation,
		Rotation:    [4]float64{0, 0, 0, 1},
		Scale:       [3]float64{1, 1, 1},
	}
	doc.Nodes = []*gltf.Node{node}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	// glTF accessors cannot be empty; an empty chunk is a bare node.
	if m.VertexCount() == 0 {
		return doc, nil
	}

	colors := make([][4]float32, m.VertexCount())
	hasAlpha := false
	for i, mat := range m.Materials {
		rgba, err := MaterialColor(mat)
		if err != nil {
			return nil, err
		}
		colors[i] = rgba
		if rgba[3] < 1 {
			hasAlpha = true
		}
	}

	posAccessor := modeler.WritePosition(doc, m.Positions)
	normalAccessor := modeler.WriteNormal(doc, m.Normals)
	uvAccessor := modeler.WriteTextureCoord(doc, m.UVs)
	colorAccessor := modeler.WriteColor(doc, colors)
	indicesAccessor := modeler.WriteIndices(doc, m.Indices)

	prim := &gltf.Primitive{
		Attributes: map[string]int{
			gltf.POSITION:   posAccessor,
			gltf.NORMAL:     normalAccessor,
			gltf.TEXCOORD_0: uvAccessor,
			gltf.COLOR_0:    colorAccessor,
		},
		Indices:  gltf.Index(indicesAccessor),
		Material: gltf.Index(0),
	}

	pbr := &gltf.PBRMetallicRoughness{MetallicFactor: gltf.Float(0), RoughnessFactor: gltf.Float(1)}
	if opts.TextureURI != "" {
		doc.Images = []*gltf.Image{{URI: opts.TextureURI}}
		doc.Textures = []*gltf.Texture{{Source: gltf.Index(0)}}
		pbr.BaseColorTexture = &gltf.TextureInfo{Index: 0}
	}
	material := &gltf.Material{Name: name, PBRMetallicRoughness: pbr, AlphaMode: gltf.AlphaOpaque}
	if hasAlpha {
		material.AlphaMode = gltf.AlphaBlend
	}
	doc.Materials = []*gltf.Material{material}
	doc.Meshes = []*gltf.Mesh{{Name: name, Primitives: []*gltf.Primitive{prim}}}
	node.Mesh = gltf.Index(0)
	return doc, nil
}

// MeshToGLB encodes m as a binary glTF.
func MeshToGLB(m *voxel.Mesh, opts GLBOptions) ([]byte, error) {
	doc, err := BuildDocument(m, opts)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	enc := gltf.NewEncoder(&out)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(err, "encode glb")
	}
	return out.Bytes(), nil
}
