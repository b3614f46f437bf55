package voxel

import (
	"runtime"

	"github.com/alitto/pond/v2"
	"github.com/pkg/errors"
)

// GenerateParallel meshes src on up to workers goroutines by splitting it
// into x-slabs and concatenating the slab meshes in scan order. The result
// is identical to Generate. src must not be mutated until it returns.
func (b *Builder) GenerateParallel(src Source, workers int) (*Mesh, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	w, _, _ := src.Dims()
	if workers > w {
		workers = w
	}
	if workers <= 1 {
		return b.Generate(src), nil
	}

	pool := pond.NewPool(workers)
	defer pool.StopAndWait()

	step := (w + workers - 1) / workers
	slabs := make([]*Mesh, 0, workers)
	tasks := make([]pond.Task, 0, workers)
	for x0 := 0; x0 < w; x0 += step {
		x0 := x0 // per-iteration copy (go 1.21 loop-variable semantics)
		x1 := min(x0+step, w)
		i := len(slabs)
		slabs = append(slabs, nil)
		tasks = append(tasks, pool.Submit(func() {
			slabs[i] = b.generateSlab(src, x0, x1)
		}))
	}
	for i, t := range tasks {
		if err := t.Wait(); err != nil {
			return nil, errors.Wrapf(err, "mesh slab %d", i)
		}
	}

	faces := 0
	for _, s := range slabs {
		faces += s.FaceCount()
	}
	m := &Mesh{}
	m.grow(faces)
	for _, s := range slabs {
		m.Append(s)
	}
	return m, nil
}
