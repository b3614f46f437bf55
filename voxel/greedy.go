package voxel

// tangents returns the two in-plane axes of f, lowest first.
func tangents(f Face) (u, v int) {
	switch f.Axis() {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

// GenerateGreedy emits the same visible surface as Generate, but merges
// coplanar visible faces of equal material into maximal rectangles. UVs
// span the whole merged quad.
func (b *Builder) GenerateGreedy(src Source) *Mesh {
	m := &Mesh{}
	w, h, d := src.Dims()
	dims := [3]int{w, h, d}

	for _, f := range Faces {
		perp := f.Axis()
		du, dv := tangents(f)
		off := f.Offset()

		mask := make([][]uint8, dims[du])
		visited := make([][]bool, dims[du])
		for i := range mask {
			mask[i] = make([]uint8, dims[dv])
			visited[i] = make([]bool, dims[dv])
		}

		for p := 0; p < dims[perp]; p++ {
			for u := 0; u < dims[du]; u++ {
				for v := 0; v < dims[dv]; v++ {
					pos := [3]int{}
					pos[perp], pos[du], pos[dv] = p, u, v
					mask[u][v] = 0
					visited[u][v] = false

					mat := src.Material(pos[0], pos[1], pos[2])
					if mat == 0 {
						continue
					}
					if !src.IsOccupied(pos[0]+off[0], pos[1]+off[1], pos[2]+off[2]) {
						mask[u][v] = mat
					}
				}
			}

			for u := 0; u < dims[du]; u++ {
				for v := 0; v < dims[dv]; {
					if mask[u][v] == 0 || visited[u][v] {
						v++
						continue
					}
					mat := mask[u][v]
					width := 1
					for k := v + 1; k < dims[dv] && mask[u][k] == mat && !visited[u][k]; k++ {
						width++
					}
					height := 1
					for k := u + 1; k < dims[du]; k++ {
						row := true
						for j := v; j < v+width; j++ {
							if mask[k][j] != mat || visited[k][j] {
								row = false
								break
							}
						}
						if !row {
							break
						}
						height++
					}
					for k := u; k < u+height; k++ {
						for j := v; j < v+width; j++ {
							visited[k][j] = true
						}
					}

					cell := [3]int{}
					cell[perp], cell[du], cell[dv] = p, u, v
					size := [3]int{1, 1, 1}
					size[du], size[dv] = height, width
					b.emitQuad(m, cell, size, f, mat)
					v += width
				}
			}
		}
	}
	return m
}
