// Package uniform owns the per-instance GPU uniform blocks. Each Slot wraps a
// single fixed-size uniform buffer plus the bind group referencing it; the
// buffer is created once and mutated in place every frame, never reallocated.
package uniform

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// slot is the implementation of the Slot interface.
type slot struct {
	data      GPUInstanceData
	buffer    *wgpu.Buffer
	bindGroup *wgpu.BindGroup
}

// Slot is one GPU-resident per-instance data block: the CPU staging copy of
// the uniform fields plus the buffer and bind group that expose it to draws.
// A slot's buffer identity never changes after creation; only contents change.
// Slots are never destroyed while the process runs; the pool recycles them.
type Slot interface {
	// Data returns the CPU staging block for this slot. Callers mutate the
	// returned struct in place each frame, then call Flush to upload it.
	//
	// Returns:
	//   - *GPUInstanceData: the mutable staging block
	Data() *GPUInstanceData

	// Flush uploads the staging block to the slot's GPU buffer via the queue.
	// Safe to call every frame; performs no allocation.
	//
	// Parameters:
	//   - queue: the GPU queue to write through
	Flush(queue *wgpu.Queue)

	// Buffer returns the slot's uniform buffer. Nil only for CPU-only slots
	// created by test allocators.
	//
	// Returns:
	//   - *wgpu.Buffer: the uniform buffer
	Buffer() *wgpu.Buffer

	// BindGroup returns the bind group referencing the slot's buffer.
	//
	// Returns:
	//   - *wgpu.BindGroup: the bind group or nil for CPU-only slots
	BindGroup() *wgpu.BindGroup
}

var _ Slot = &slot{}

func (s *slot) Data() *GPUInstanceData {
	return &s.data
}

func (s *slot) Flush(queue *wgpu.Queue) {
	if s.buffer == nil {
		return
	}
	queue.WriteBuffer(s.buffer, 0, s.data.Bytes())
}

func (s *slot) Buffer() *wgpu.Buffer {
	return s.buffer
}

func (s *slot) BindGroup() *wgpu.BindGroup {
	return s.bindGroup
}
