package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadMesh reads the first triangle primitive from a .glb or .gltf file and
// returns it as a non-indexed Geometry. Indexed primitives are expanded,
// missing normals are reconstructed as flat face normals, and the result is
// recentered and scaled to fit the same [-1, 1] extents as the cube primitive
// so meshes slot into the swarm without per-mesh tuning.
//
// Parameters:
//   - path: the glTF file to load
//
// Returns:
//   - Geometry: the loaded geometry
//   - error: any error opening or decoding the file
func LoadMesh(path string) (Geometry, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	prim, name, err := firstPrimitive(doc)
	if err != nil {
		return nil, fmt.Errorf("gltf %q: %w", path, err)
	}

	positions, err := modeler.ReadPosition(doc, doc.Accessors[prim.Attributes["POSITION"]], nil)
	if err != nil {
		return nil, fmt.Errorf("gltf %q: positions: %w", path, err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("gltf %q: indices: %w", path, err)
		}
	}

	vertices := expandPrimitive(positions, normals, indices)
	normalizeExtents(vertices)

	if name == "" {
		name = "Mesh"
	}
	return NewGeometry(name, vertices), nil
}

// firstPrimitive finds the first primitive carrying a POSITION attribute, in
// document order.
func firstPrimitive(doc *gltf.Document) (*gltf.Primitive, string, error) {
	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			if _, ok := prim.Attributes["POSITION"]; ok {
				return prim, mesh.Name, nil
			}
		}
	}
	return nil, "", fmt.Errorf("no primitive with positions found")
}

// expandPrimitive flattens an optionally indexed position/normal stream into
// draw order. When the source has no normals, each triangle gets a flat
// normal computed from its winding.
//
// Parameters:
//   - positions: the unique vertex positions
//   - normals: the matching normals, or nil
//   - indices: the triangle indices, or nil for an already flat stream
//
// Returns:
//   - []Vertex: the non-indexed vertex stream
func expandPrimitive(positions, normals [][3]float32, indices []uint32) []Vertex {
	var vertices []Vertex
	if len(indices) > 0 {
		vertices = make([]Vertex, 0, len(indices))
		for _, idx := range indices {
			v := Vertex{Position: positions[idx]}
			if int(idx) < len(normals) {
				v.Normal = normals[idx]
			}
			vertices = append(vertices, v)
		}
	} else {
		vertices = make([]Vertex, 0, len(positions))
		for i, p := range positions {
			v := Vertex{Position: p}
			if i < len(normals) {
				v.Normal = normals[i]
			}
			vertices = append(vertices, v)
		}
	}

	if len(normals) == 0 {
		computeFlatNormals(vertices)
	}
	return vertices
}

// computeFlatNormals assigns each full triangle the normalized cross product
// of its edges. Trailing vertices of a malformed stream keep a zero normal.
func computeFlatNormals(vertices []Vertex) {
	for i := 0; i+2 < len(vertices); i += 3 {
		a, b, c := vertices[i].Position, vertices[i+1].Position, vertices[i+2].Position

		e1 := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
		e2 := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
		n := [3]float32{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		}

		length := math32.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
		if length > 0 {
			n[0] /= length
			n[1] /= length
			n[2] /= length
		}

		vertices[i].Normal = n
		vertices[i+1].Normal = n
		vertices[i+2].Normal = n
	}
}

// normalizeExtents recenters the vertex stream on the origin and uniformly
// scales it so the largest axis spans [-1, 1], matching the cube primitive.
func normalizeExtents(vertices []Vertex) {
	if len(vertices) == 0 {
		return
	}

	minP := vertices[0].Position
	maxP := vertices[0].Position
	for _, v := range vertices[1:] {
		for a := 0; a < 3; a++ {
			if v.Position[a] < minP[a] {
				minP[a] = v.Position[a]
			}
			if v.Position[a] > maxP[a] {
				maxP[a] = v.Position[a]
			}
		}
	}

	var center [3]float32
	var halfExtent float32
	for a := 0; a < 3; a++ {
		center[a] = (minP[a] + maxP[a]) / 2
		if h := (maxP[a] - minP[a]) / 2; h > halfExtent {
			halfExtent = h
		}
	}
	if halfExtent == 0 {
		return
	}

	for i := range vertices {
		for a := 0; a < 3; a++ {
			vertices[i].Position[a] = (vertices[i].Position[a] - center[a]) / halfExtent
		}
	}
}
