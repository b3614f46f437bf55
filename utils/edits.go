package utils

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/voxelsplace/cubemesh/voxel"
)

// RunApplyEdits applies an edit stream to an existing grid file and writes
// the result to outputPath.
func RunApplyEdits(edits []byte, inputPath, outputPath string) error {
	grid, err := voxel.LoadGrid(inputPath)
	if err != nil {
		return errors.Wrap(err, "failed to load input grid")
	}
	if err := voxel.ApplyEdits(grid, edits); err != nil {
		return err
	}
	if err := voxel.SaveGrid(grid, outputPath); err != nil {
		return errors.Wrap(err, "failed to save grid")
	}
	if fi, err := os.Stat(outputPath); err == nil {
		fmt.Printf(".vxg updated (%d bytes)\n", fi.Size())
	} else {
		fmt.Println(".vxg updated.")
	}
	return nil
}

// RunEdits2Grid builds a w×h×d grid from an edit stream file.
func RunEdits2Grid(w, h, d int, inPath, outPath string) error {
	edits, err := os.ReadFile(inPath)
	if err != nil {
		return errors.Wrap(err, "read edits")
	}
	grid, err := voxel.NewGrid(w, h, d)
	if err != nil {
		return err
	}
	if err := voxel.ApplyEdits(grid, edits); err != nil {
		return errors.Wrap(err, "decode edits")
	}
	return voxel.SaveGrid(grid, outPath)
}

// RunGrid2Edits writes the edit stream that rebuilds a grid from empty.
func RunGrid2Edits(inPath, outPath string) error {
	grid, err := voxel.LoadGrid(inPath)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, voxel.EncodeGridEdits(grid), 0o644)
}
