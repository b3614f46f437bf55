package utils

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/voxelsplace/cubemesh/api"
)

// RunRLE2Grid expands an RLE string into a w×h×d grid file.
func RunRLE2Grid(w, h, d int, rleArg, outPath string) error {
	data, err := api.RLEToGridBytes(w, h, d, rleArg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to save grid")
	}
	fmt.Printf(".vxg saved (%d bytes)\n", len(data))
	return nil
}
