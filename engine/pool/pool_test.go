package pool

import (
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/object"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/uniform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSlot is a CPU-only uniform.Slot standing in for a GPU-backed one.
type fakeSlot struct {
	data uniform.GPUInstanceData
}

func (f *fakeSlot) Data() *uniform.GPUInstanceData { return &f.data }
func (f *fakeSlot) Flush(_ *wgpu.Queue)            {}
func (f *fakeSlot) Buffer() *wgpu.Buffer           { return nil }
func (f *fakeSlot) BindGroup() *wgpu.BindGroup     { return nil }

// fakeAllocator counts allocations and can be armed to fail after a quota.
type fakeAllocator struct {
	allocations int
	failAfter   int
}

func (f *fakeAllocator) Allocate() (uniform.Slot, error) {
	if f.failAfter > 0 && f.allocations >= f.failAfter {
		return nil, &uniform.AllocationError{Err: errors.New("quota exhausted")}
	}
	f.allocations++
	return &fakeSlot{}, nil
}

func TestResizeProducesExactCount(t *testing.T) {
	alloc := &fakeAllocator{}
	p := NewInstancePool(alloc, WithRandSource(1))

	require.NoError(t, p.Resize(50))

	assert.Equal(t, 50, p.Count())
	assert.Equal(t, 0, p.FreeCount())
	assert.Equal(t, 50, p.TotalAllocated())
	assert.Equal(t, 50, alloc.allocations)
}

func TestResizeBindsUniqueSlots(t *testing.T) {
	p := NewInstancePool(&fakeAllocator{}, WithRandSource(1))
	require.NoError(t, p.Resize(32))

	seen := make(map[uniform.Slot]bool)
	p.ForEach(func(i int, obj object.SceneObject) bool {
		s := obj.Slot()
		require.NotNil(t, s)
		assert.False(t, seen[s], "slot shared between objects")
		seen[s] = true
		return true
	})
	assert.Len(t, seen, 32)
}

func TestResizeRecyclesBeforeAllocating(t *testing.T) {
	alloc := &fakeAllocator{}
	p := NewInstancePool(alloc, WithRandSource(1))

	require.NoError(t, p.Resize(40))
	require.NoError(t, p.Resize(10))
	assert.Equal(t, 10, p.Count())
	assert.Equal(t, 30, p.FreeCount())

	require.NoError(t, p.Resize(40))
	assert.Equal(t, 40, p.Count())
	assert.Equal(t, 0, p.FreeCount())

	// Shrinking and regrowing within the high-water mark allocates nothing new.
	assert.Equal(t, 40, alloc.allocations)
	assert.Equal(t, 40, p.TotalAllocated())
}

func TestResizeGrowthAllocatesOnlyTheDelta(t *testing.T) {
	alloc := &fakeAllocator{}
	p := NewInstancePool(alloc, WithRandSource(1))

	require.NoError(t, p.Resize(20))
	require.NoError(t, p.Resize(35))

	assert.Equal(t, 35, p.Count())
	assert.Equal(t, 35, alloc.allocations)
	assert.Equal(t, p.Count()+p.FreeCount(), p.TotalAllocated())
}

func TestResizeAllocationFailureLeavesConsistentPrefix(t *testing.T) {
	alloc := &fakeAllocator{failAfter: 25}
	p := NewInstancePool(alloc, WithRandSource(1))

	err := p.Resize(40)
	require.Error(t, err)

	var allocErr *uniform.AllocationError
	assert.ErrorAs(t, err, &allocErr)

	// The built prefix stays live, and no object is missing a slot.
	assert.Equal(t, 25, p.Count())
	p.ForEach(func(i int, obj object.SceneObject) bool {
		assert.NotNil(t, obj.Slot())
		return true
	})
	assert.Equal(t, p.Count()+p.FreeCount(), p.TotalAllocated())
}

func TestPlacementStaysInsideRegion(t *testing.T) {
	p := NewInstancePool(&fakeAllocator{}, WithRegionSize(60), WithRandSource(7))
	require.NoError(t, p.Resize(200))

	half := p.RegionSize() / 2
	p.ForEach(func(i int, obj object.SceneObject) bool {
		x, y, z := obj.Position()
		assert.LessOrEqual(t, x, half)
		assert.GreaterOrEqual(t, x, -half)
		assert.LessOrEqual(t, y, half)
		assert.GreaterOrEqual(t, y, -half)
		assert.LessOrEqual(t, z, half)
		assert.GreaterOrEqual(t, z, -half)
		return true
	})
}

func TestPlacementColorIsDeterministic(t *testing.T) {
	r1, g1, b1 := placementColor(12, -8, 50)
	r2, g2, b2 := placementColor(12, -8, 50)
	assert.Equal(t, r1, r2)
	assert.Equal(t, g1, g2)
	assert.Equal(t, b1, b2)

	// Two pools seeded identically lay out and color identically.
	pa := NewInstancePool(&fakeAllocator{}, WithRandSource(99))
	pb := NewInstancePool(&fakeAllocator{}, WithRandSource(99))
	require.NoError(t, pa.Resize(10))
	require.NoError(t, pb.Resize(10))

	for i := 0; i < 10; i++ {
		ca := pa.At(i).BaseColor()
		cb := pb.At(i).BaseColor()
		assert.Equal(t, ca, cb)
	}
}

func TestPlacementColorSaturationClamps(t *testing.T) {
	// A corner placement exceeds the half-extent radius; the color must still
	// be a valid fully saturated one, not NaN or out of range.
	r, g, b := placementColor(50, 50, 50)
	for _, c := range []float32{r, g, b} {
		assert.GreaterOrEqual(t, c, float32(0))
		assert.LessOrEqual(t, c, float32(1))
	}
}

func TestAdvanceBranchesAreMutuallyExclusive(t *testing.T) {
	p := NewInstancePool(&fakeAllocator{}, WithRandSource(1))
	require.NoError(t, p.Resize(1))

	obj := p.At(0)
	obj.SetRotation(0, 0, 0)

	// frame 0: phase 0, 0%4 < 2, spin branch sets rotation Z only.
	p.Advance(0)
	rx, ry, rz := obj.Rotation()
	assert.Equal(t, float32(0), rx)
	assert.Equal(t, float32(0), ry)
	assert.Equal(t, float32(0)/spinDivisor, rz)

	// frame 2: phase 2, tumble branch increments rotation X only.
	obj.SetRotation(0, 0, 0)
	p.Advance(2)
	rx, ry, rz = obj.Rotation()
	assert.InDelta(t, tumbleStep, rx, 1e-6)
	assert.Equal(t, float32(0), ry)
	assert.Equal(t, float32(0), rz)
}

func TestAdvanceStaggersNeighbors(t *testing.T) {
	p := NewInstancePool(&fakeAllocator{}, WithRandSource(1))
	require.NoError(t, p.Resize(2))

	p.At(0).SetRotation(0, 0, 0)
	p.At(1).SetRotation(0, 0, 0)

	// At frame 0, index 0 has phase 0 (spin) and index 1 has phase 7 (tumble).
	p.Advance(0)

	rx0, _, _ := p.At(0).Rotation()
	_, _, rz1 := p.At(1).Rotation()
	rx1, _, _ := p.At(1).Rotation()

	assert.Equal(t, float32(0), rx0)
	assert.Equal(t, float32(0), rz1)
	assert.InDelta(t, tumbleStep, rx1, 1e-6)
}

func TestAdvanceHundredTickClosedForm(t *testing.T) {
	p := NewInstancePool(&fakeAllocator{}, WithRandSource(1))
	require.NoError(t, p.Resize(1))

	obj := p.At(0)
	obj.SetRotation(0, 0, 0)

	for frame := uint64(0); frame < 100; frame++ {
		p.Advance(frame)
	}

	// For index 0 the phase equals the frame. Over frames 0..99 the spin
	// branch fires 50 times, last at frame 97, leaving rotation Z at 97/30.
	// The tumble branch fires the other 50 times, accumulating 50 steps.
	rx, ry, rz := obj.Rotation()
	assert.InDelta(t, float64(50)*tumbleStep, float64(rx), 1e-4)
	assert.Equal(t, float32(0), ry)
	assert.InDelta(t, 97.0/spinDivisor, float64(rz), 1e-5)
}
