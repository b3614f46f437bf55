package voxel

import "github.com/go-gl/mathgl/mgl32"

// Face is one of the six axis-aligned sides of a cell.
type Face uint8

const (
	Top    Face = iota // +Y
	Bottom             // -Y
	Right              // +X
	Left               // -X
	Back               // +Z
	Front              // -Z
)

// Faces lists every direction in emission order.
var Faces = [6]Face{Top, Bottom, Right, Left, Back, Front}

type faceSpec struct {
	name   string
	offset [3]int
	axis   int
	// corners of the unit quad, counter-clockwise seen from outside
	corners [4]mgl32.Vec3
	uvs     [4]mgl32.Vec2
}

var faceSpecs = [6]faceSpec{
	Top: {
		name: "top", offset: [3]int{0, 1, 0}, axis: 1,
		corners: [4]mgl32.Vec3{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}},
		uvs:     [4]mgl32.Vec2{{0, 1}, {0, 0}, {1, 0}, {1, 1}},
	},
	Bottom: {
		name: "bottom", offset: [3]int{0, -1, 0}, axis: 1,
		corners: [4]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
		uvs:     [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	},
	Right: {
		name: "right", offset: [3]int{1, 0, 0}, axis: 0,
		corners: [4]mgl32.Vec3{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}},
		uvs:     [4]mgl32.Vec2{{1, 0}, {1, 1}, {0, 1}, {0, 0}},
	},
	Left: {
		name: "left", offset: [3]int{-1, 0, 0}, axis: 0,
		corners: [4]mgl32.Vec3{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
		uvs:     [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	},
	Back: {
		name: "back", offset: [3]int{0, 0, 1}, axis: 2,
		corners: [4]mgl32.Vec3{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
		uvs:     [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	},
	Front: {
		name: "front", offset: [3]int{0, 0, -1}, axis: 2,
		corners: [4]mgl32.Vec3{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}},
		uvs:     [4]mgl32.Vec2{{1, 0}, {1, 1}, {0, 1}, {0, 0}},
	},
}

func (f Face) String() string {
	if int(f) >= len(faceSpecs) {
		return "invalid"
	}
	return faceSpecs[f].name
}

// Offset is the unit step from a cell to its neighbour across f.
func (f Face) Offset() [3]int { return faceSpecs[f].offset }

// Normal is the outward unit vector of f.
func (f Face) Normal() mgl32.Vec3 {
	o := faceSpecs[f].offset
	return mgl32.Vec3{float32(o[0]), float32(o[1]), float32(o[2])}
}

// Axis is the index (0=x, 1=y, 2=z) of the axis f is perpendicular to.
func (f Face) Axis() int { return faceSpecs[f].axis }

// Positive reports whether f points along the positive direction of its axis.
func (f Face) Positive() bool { return faceSpecs[f].offset[f.Axis()] > 0 }

// Corners returns the unit-cube corners of f in winding order.
func (f Face) Corners() [4]mgl32.Vec3 { return faceSpecs[f].corners }

// FaceSet is a bitmask of faces.
type FaceSet uint8

// AllFaces has every bit set.
const AllFaces FaceSet = 1<<6 - 1

func (s FaceSet) Has(f Face) bool { return s&(1<<f) != 0 }

func (s FaceSet) With(f Face) FaceSet { return s | 1<<f }

func (s FaceSet) Len() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Faces expands the set in emission order.
func (s FaceSet) Faces() []Face {
	out := make([]Face, 0, 6)
	for _, f := range Faces {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}
