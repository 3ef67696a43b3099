// Package geometry provides the non-indexed vertex streams drawn by the
// render loop: a built-in cube primitive and meshes loaded from glTF files.
// All geometry shares a single vertex format of position plus normal.
package geometry

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/lp249839965/180622-WebGPU-Demos/common"
)

// Vertex is the interleaved vertex format consumed by the object and helper
// pipelines. Layout matches the WGSL vertex input struct.
type Vertex struct {
	Position [3]float32 // offset 0
	Normal   [3]float32 // offset 12
}

// VertexStride is the size of one Vertex in bytes.
const VertexStride = 24

// geometry is the implementation of the Geometry interface.
type geometry struct {
	label    string
	vertices []Vertex
	buffer   *wgpu.Buffer
}

// Geometry is a non-indexed triangle-list vertex stream with an optional GPU
// residency. Upload creates the vertex buffer; until then the geometry is
// CPU-only and still usable for inspection and tests.
type Geometry interface {
	// Label returns the debug label attached to the GPU buffer.
	//
	// Returns:
	//   - string: the geometry label
	Label() string

	// Vertices returns the CPU-side vertex stream.
	//
	// Returns:
	//   - []Vertex: the vertex data in draw order
	Vertices() []Vertex

	// VertexCount returns the number of vertices drawn for this geometry.
	//
	// Returns:
	//   - uint32: the draw vertex count
	VertexCount() uint32

	// Buffer returns the GPU vertex buffer, or nil before Upload.
	//
	// Returns:
	//   - *wgpu.Buffer: the vertex buffer
	Buffer() *wgpu.Buffer

	// Upload creates the GPU vertex buffer and writes the vertex stream into
	// it. Calling Upload on an already-resident geometry is a no-op.
	//
	// Parameters:
	//   - device: the device to create the buffer on
	//   - queue: the queue used for the initial write
	//
	// Returns:
	//   - error: any error returned by buffer creation
	Upload(device *wgpu.Device, queue *wgpu.Queue) error

	// Release frees the GPU buffer if one exists. The CPU-side vertex stream
	// stays valid, so the geometry can be re-uploaded later.
	Release()
}

var _ Geometry = &geometry{}

// NewGeometry creates a CPU-side Geometry from an already non-indexed vertex
// stream.
//
// Parameters:
//   - label: the debug label used for the GPU buffer
//   - vertices: the vertex data in draw order
//
// Returns:
//   - Geometry: the newly created geometry
func NewGeometry(label string, vertices []Vertex) Geometry {
	return &geometry{
		label:    label,
		vertices: vertices,
	}
}

func (g *geometry) Label() string {
	return g.label
}

func (g *geometry) Vertices() []Vertex {
	return g.vertices
}

func (g *geometry) VertexCount() uint32 {
	return uint32(len(g.vertices))
}

func (g *geometry) Buffer() *wgpu.Buffer {
	return g.buffer
}

func (g *geometry) Upload(device *wgpu.Device, queue *wgpu.Queue) error {
	if g.buffer != nil {
		return nil
	}

	data := common.SliceToBytes(g.vertices)
	buf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            g.label + " Vertex Buffer",
		Size:             uint64(len(data)),
		Usage:            wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if err != nil {
		return err
	}
	queue.WriteBuffer(buf, 0, data)
	g.buffer = buf
	return nil
}

func (g *geometry) Release() {
	if g.buffer != nil {
		g.buffer.Release()
		g.buffer = nil
	}
}

// VertexBufferLayout describes the position/normal vertex stream to a render
// pipeline.
//
// Returns:
//   - wgpu.VertexBufferLayout: the layout for shader location 0 (position)
//     and 1 (normal)
func VertexBufferLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         0,
				ShaderLocation: 0,
			},
			{
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         12,
				ShaderLocation: 1,
			},
		},
	}
}
