package voxel

// VisibleFaces returns the faces of (x,y,z) that border air. An empty cell
// has no visible faces. Neighbours outside the volume are air, so boundary
// cells expose their outward sides without special handling.
func VisibleFaces(o Occupancy, x, y, z int) FaceSet {
	if !o.IsOccupied(x, y, z) {
		return 0
	}
	var set FaceSet
	for _, f := range Faces {
		off := f.Offset()
		if !o.IsOccupied(x+off[0], y+off[1], z+off[2]) {
			set = set.With(f)
		}
	}
	return set
}

// VisibleFaceCount totals the visible faces over the whole source.
func VisibleFaceCount(src Source) int {
	w, h, d := src.Dims()
	n := 0
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			for z := 0; z < d; z++ {
				n += VisibleFaces(src, x, y, z).Len()
			}
		}
	}
	return n
}

// NaiveFaceCount is the face count without culling: six per solid cell.
func NaiveFaceCount(src Source) int {
	w, h, d := src.Dims()
	n := 0
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			for z := 0; z < d; z++ {
				if src.IsOccupied(x, y, z) {
					n += 6
				}
			}
		}
	}
	return n
}
