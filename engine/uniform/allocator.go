package uniform

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/cogentcore/webgpu/wgpu"
)

// AllocationError reports a failed GPU buffer or bind group creation.
// Fatal during setup; resizes that hit it leave the pool consistent but short.
type AllocationError struct {
	Err error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("uniform slot allocation failed: %v", e.Err)
}

func (e *AllocationError) Unwrap() error {
	return e.Err
}

// slotCount generates unique debug labels across all allocators.
var slotCount atomic.Uint64

// wgpuAllocator creates device-backed slots sharing one bind group layout.
type wgpuAllocator struct {
	device *wgpu.Device
	layout *wgpu.BindGroupLayout
}

// Allocator creates Slots. The pool calls Allocate lazily when it grows and
// no recycled slot is available.
type Allocator interface {
	// Allocate creates one slot with a fresh fixed-size uniform buffer and
	// its bind group.
	//
	// Returns:
	//   - Slot: the new slot
	//   - error: an *AllocationError if buffer or bind group creation fails
	Allocate() (Slot, error)
}

var _ Allocator = &wgpuAllocator{}

// NewAllocator creates an Allocator that allocates device-backed slots. All
// slots share the given bind group layout (one uniform buffer at binding 0).
//
// Parameters:
//   - device: the GPU device to allocate on
//   - layout: the shared per-instance bind group layout
//
// Returns:
//   - Allocator: the device-backed allocator
func NewAllocator(device *wgpu.Device, layout *wgpu.BindGroupLayout) Allocator {
	return &wgpuAllocator{
		device: device,
		layout: layout,
	}
}

// BindGroupLayoutDescriptor returns the layout descriptor every slot bind
// group is created against: one uniform buffer at binding 0. Both stages read
// the block; the vertex stage uses the matrices, the fragment stage the light
// fields.
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the shared slot layout descriptor
func BindGroupLayoutDescriptor() wgpu.BindGroupLayoutDescriptor {
	var block GPUInstanceData
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Instance Uniforms Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(block.Size()),
				},
			},
		},
	}
}

func (a *wgpuAllocator) Allocate() (Slot, error) {
	label := "Instance Slot " + strconv.FormatUint(slotCount.Add(1), 10)

	var block GPUInstanceData
	buf, err := a.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label + " Buffer",
		Size:  uint64(block.Size()),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, &AllocationError{Err: err}
	}

	bindGroup, err := a.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  label + " Bind Group",
		Layout: a.layout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  buf,
				Offset:  0,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		buf.Release()
		return nil, &AllocationError{Err: err}
	}

	return &slot{
		buffer:    buf,
		bindGroup: bindGroup,
	}, nil
}
