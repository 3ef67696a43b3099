package geometry

// cubeFaces lists each face as its outward normal plus two triangles in
// counter-clockwise winding when viewed from outside. Corners are indices
// into cubeCorners.
var cubeFaces = [6]struct {
	normal  [3]float32
	corners [6]int
}{
	{normal: [3]float32{0, 0, 1}, corners: [6]int{4, 5, 6, 4, 6, 7}},   // +Z
	{normal: [3]float32{0, 0, -1}, corners: [6]int{1, 0, 3, 1, 3, 2}},  // -Z
	{normal: [3]float32{1, 0, 0}, corners: [6]int{5, 1, 2, 5, 2, 6}},   // +X
	{normal: [3]float32{-1, 0, 0}, corners: [6]int{0, 4, 7, 0, 7, 3}},  // -X
	{normal: [3]float32{0, 1, 0}, corners: [6]int{7, 6, 2, 7, 2, 3}},   // +Y
	{normal: [3]float32{0, -1, 0}, corners: [6]int{0, 1, 5, 0, 5, 4}},  // -Y
}

var cubeCorners = [8][3]float32{
	{-1, -1, -1}, // 0
	{1, -1, -1},  // 1
	{1, 1, -1},   // 2
	{-1, 1, -1},  // 3
	{-1, -1, 1},  // 4
	{1, -1, 1},   // 5
	{1, 1, 1},    // 6
	{-1, 1, 1},   // 7
}

// NewCube builds the built-in cube primitive spanning [-1, 1] on every axis
// as a 36-vertex non-indexed triangle list with per-face normals.
//
// Returns:
//   - Geometry: the cube geometry
func NewCube() Geometry {
	vertices := make([]Vertex, 0, 36)
	for _, face := range cubeFaces {
		for _, ci := range face.corners {
			vertices = append(vertices, Vertex{
				Position: cubeCorners[ci],
				Normal:   face.normal,
			})
		}
	}
	return NewGeometry("Cube", vertices)
}
