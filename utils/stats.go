package utils

import (
	"fmt"
	"os"

	"github.com/voxelsplace/cubemesh/api"
)

// RunStats prints grid and mesh sizes for a .vxg file.
func RunStats(inPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	s, err := api.GridStats(data)
	if err != nil {
		return err
	}
	fmt.Printf("grid:     %dx%dx%d, %d solid cells\n", s.W, s.H, s.D, s.Occupied)
	fmt.Printf("file:     %d bytes, encoding %d, compression %s\n", s.EncodedLength, s.Encoding, s.Compression)
	fmt.Printf("faces:    %d naive, %d visible, %d greedy quads\n", s.NaiveFaces, s.VisibleFaces, s.GreedyQuads)
	fmt.Printf("mesh:     %d vertices, %d indices, checksum %016x\n", s.Vertices, s.Indices, s.MeshChecksum)
	return nil
}
