package uniform

import (
	"unsafe"

	"github.com/lp249839965/180622-WebGPU-Demos/common"
)

// GPUInstanceData is the GPU-aligned per-instance uniform block written every frame.
// Matches the WGSL InstanceUniforms struct layout exactly (see shaders package).
// Size: 192 bytes (std140 / WGSL uniform aligned).
type GPUInstanceData struct {
	Model        [16]float32 // offset   0: model matrix, column-major (64 bytes)
	MVP          [16]float32 // offset  64: model-view-projection matrix, column-major (64 bytes)
	BaseColor    [4]float32  // offset 128: per-instance material RGBA (16 bytes)
	AmbientColor [4]float32  // offset 144: scene ambient light RGBA (16 bytes)
	LightColor   [4]float32  // offset 160: directional light RGBA (16 bytes)
	LightDir     [3]float32  // offset 176: directional light direction (12 bytes)
	_pad         float32     // offset 188: padding to 192-byte alignment
}

// Size returns the size of the GPUInstanceData struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (192)
func (g *GPUInstanceData) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Bytes returns a byte-slice view of the block suitable for GPU upload.
// The view shares memory with the struct; it must not be retained past the
// queue write it is passed to.
//
// Returns:
//   - []byte: 192-byte view of the block
func (g *GPUInstanceData) Bytes() []byte {
	return common.StructToBytes(g)
}
