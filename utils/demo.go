package utils

import (
	"fmt"

	"github.com/voxelsplace/cubemesh/api"
	"github.com/voxelsplace/cubemesh/voxel"
)

// RunDemo writes the 8×2×8 demo chunk as a grid and, if glbPath is set, as
// a textured .glb placed where the viewer expects it.
func RunDemo(gridPath, glbPath string) error {
	grid := voxel.NewDemoChunk()
	if err := voxel.SaveGrid(grid, gridPath); err != nil {
		return err
	}
	w, h, d := grid.Dims()
	fmt.Printf("demo chunk %dx%dx%d saved to %s\n", w, h, d, gridPath)

	if glbPath != "" {
		gopts := api.GLBOptions{Name: "DemoChunk", TextureURI: "array_texture.png", Translation: [3]float64{0, 1.5, -2}}
		if err := RunGrid2GLB(gridPath, glbPath, api.MeshOptions{}, gopts); err != nil {
			return err
		}
	}
	return RunStats(gridPath)
}
