package utils

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/voxelsplace/cubemesh/voxel"
)

// noiseMaterials is the number of distinct materials scattered by the generator.
const noiseMaterials = 16

// generateNoiseGrid fills the given percentage of a w×h×d grid with random
// materials in [1..noiseMaterials]. The remaining cells stay air.
func generateNoiseGrid(w, h, d int, percentage float64, r *rand.Rand) (*voxel.Grid, error) {
	grid, err := voxel.NewGrid(w, h, d)
	if err != nil {
		return nil, err
	}
	percentage = min(max(percentage, 0), 100)
	total := grid.Len()
	want := min(int(float64(total)*(percentage/100.0)+0.5), total)

	idx := make([]int, total)
	for i := range idx {
		idx[i] = i
	}
	// Fisher-Yates over the first 'want' slots only
	for i := 0; i < want; i++ {
		j := i + r.Intn(total-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	for _, i := range idx[:want] {
		x, y, z := grid.Coords(i)
		if err := grid.Set(x, y, z, uint8(1+r.Intn(noiseMaterials))); err != nil {
			return nil, err
		}
	}
	return grid, nil
}

// RunGenerateNoise creates 'amount' grid files named 0.vxg..(amount-1).vxg
// in outDir, each filled to the given percentage.
func RunGenerateNoise(w, h, d int, percentage float64, amount int, outDir string) error {
	return RunGenerateNoiseRange(w, h, d, percentage, percentage, amount, outDir)
}

// RunGenerateNoiseRange samples each file's fill percentage uniformly from
// [percentageMin, percentageMax].
func RunGenerateNoiseRange(w, h, d int, percentageMin, percentageMax float64, amount int, outDir string) error {
	if amount < 0 {
		amount = 0
	}
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	percentageMin = max(percentageMin, 0)
	percentageMax = min(percentageMax, 100)
	if percentageMax < percentageMin {
		percentageMin, percentageMax = percentageMax, percentageMin
	}

	baseSeed := uint64(time.Now().UnixNano())
	for i := 0; i < amount; i++ {
		const weyl = uint64(0x9e3779b97f4a7c15)
		seed := baseSeed ^ (uint64(i)+1)*weyl
		r := rand.New(rand.NewSource(int64(seed & 0x7fffffffffffffff)))

		perc := percentageMin
		if percentageMax > percentageMin {
			perc = percentageMin + r.Float64()*(percentageMax-percentageMin)
		}

		grid, err := generateNoiseGrid(w, h, d, perc, r)
		if err != nil {
			return err
		}
		path := filepath.Join(outDir, fmt.Sprintf("%d.vxg", i))
		if err := voxel.SaveGrid(grid, path); err != nil {
			return errors.Wrapf(err, "failed to save %s", path)
		}
	}
	return nil
}
