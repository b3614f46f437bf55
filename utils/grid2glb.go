package utils

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/voxelsplace/cubemesh/api"
	"github.com/voxelsplace/cubemesh/voxel"
)

// RunGrid2GLB meshes a .vxg file and writes it as .glb.
func RunGrid2GLB(inPath, outPath string, mopts api.MeshOptions, gopts api.GLBOptions) error {
	grid, err := voxel.LoadGrid(inPath)
	if err != nil {
		return err
	}
	mesh, err := api.BuildMesh(grid, mopts)
	if err != nil {
		return err
	}
	doc, err := api.BuildDocument(mesh, gopts)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, outPath); err != nil {
		return errors.Wrapf(err, "save %s", outPath)
	}
	fmt.Printf(".glb saved (%d faces, %d vertices, %d indices)\n", mesh.FaceCount(), mesh.VertexCount(), len(mesh.Indices))
	return nil
}
