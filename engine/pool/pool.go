// Package pool owns the variable-length collection of scene objects and the
// free list of recycled uniform slots. Resizing reuses existing GPU buffers
// before allocating new ones; the free list and the live objects together
// account for every slot ever created.
package pool

import (
	"math/rand"
	"sync"

	"github.com/chewxy/math32"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/object"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/uniform"
	"github.com/lucasb-eyer/go-colorful"
)

// Animation cadence constants. These are cosmetic policy: each object's phase
// is frame + index*phaseStride, and the two branches below are mutually
// exclusive per object per tick.
const (
	// phaseStride staggers neighboring objects so the swarm never moves in sync.
	phaseStride = 7
	// spinCadence is the phase modulus selecting between the two spin branches.
	spinCadence = 4
	// spinThreshold splits the cadence window: phases below it spin, the rest tumble.
	spinThreshold = 2
	// spinDivisor converts the phase into the absolute spin angle in radians.
	spinDivisor = 30.0
	// tumbleStep is the per-tick increment of the secondary rotation axis.
	tumbleStep = 0.02
)

// instancePool is the implementation of the InstancePool interface.
type instancePool struct {
	mu *sync.Mutex

	allocator uniform.Allocator

	// regionSize is the side length of the cube objects are scattered in.
	regionSize float32

	// objects is the live list, in pool order. free holds recycled slots as a
	// stack. Every slot ever allocated is in exactly one of the two.
	objects []object.SceneObject
	free    []uniform.Slot

	// allocated counts every slot ever created, for leak accounting.
	allocated int

	rng *rand.Rand
}

// InstancePool owns a resizable ordered collection of SceneObjects, each
// bound to a unique uniform slot. Shrinking or rebuilding recycles slots to a
// free list; growth pops the free list before allocating new GPU buffers.
type InstancePool interface {
	// Resize rebuilds the pool to exactly n live objects: every current
	// object's slot is recycled, then n fresh objects are constructed with
	// randomized placement and orientation inside the pool's cube region,
	// each bound to a recycled slot when available. The material color of
	// each object is a deterministic function of its (x, z) placement.
	// On a mid-resize allocation failure the already-built prefix remains
	// live and consistent (no object is left without a slot) and the
	// allocation error is returned.
	//
	// Parameters:
	//   - n: the requested live object count
	//
	// Returns:
	//   - error: an *uniform.AllocationError if slot creation fails
	Resize(n int) error

	// Count returns the number of live objects.
	//
	// Returns:
	//   - int: the live object count
	Count() int

	// At returns the live object at index i in pool order.
	//
	// Parameters:
	//   - i: the pool index
	//
	// Returns:
	//   - object.SceneObject: the object at i
	At(i int) object.SceneObject

	// ForEach traverses the live objects in pool order, stopping early if fn
	// returns false.
	//
	// Parameters:
	//   - fn: visitor receiving the pool index and object
	ForEach(fn func(i int, obj object.SceneObject) bool)

	// Advance applies the per-tick staggered animation to every live object.
	// Each object's phase is frame + index*7; phases with phase%4 < 2 set the
	// spin angle (rotation Z) to phase/30, all other phases increment the
	// tumble angle (rotation X) by 0.02. The two branches are mutually
	// exclusive per object per tick.
	//
	// Parameters:
	//   - frame: the monotonically increasing frame counter
	Advance(frame uint64)

	// FreeCount returns the number of recycled slots currently on the free list.
	//
	// Returns:
	//   - int: the free list length
	FreeCount() int

	// TotalAllocated returns the number of slots ever created by this pool.
	// TotalAllocated == Count() + FreeCount() at all times.
	//
	// Returns:
	//   - int: the lifetime slot allocation count
	TotalAllocated() int

	// RegionSize returns the side length of the cube objects are scattered in.
	//
	// Returns:
	//   - float32: the region side length
	RegionSize() float32
}

var _ InstancePool = &instancePool{}

// NewInstancePool creates an empty InstancePool with the provided options.
// The scatter region defaults to a cube of side 100.
//
// Parameters:
//   - allocator: the slot allocator used when the free list runs dry
//   - options: functional options to configure the pool
//
// Returns:
//   - InstancePool: the newly created pool
func NewInstancePool(allocator uniform.Allocator, options ...InstancePoolBuilderOption) InstancePool {
	p := &instancePool{
		mu:         &sync.Mutex{},
		allocator:  allocator,
		regionSize: 100,
		rng:        rand.New(rand.NewSource(rand.Int63())),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *instancePool) Resize(n int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Recycle every live slot before rebuilding so growth reuses buffers
	// instead of allocating.
	for _, obj := range p.objects {
		if s := obj.Slot(); s != nil {
			p.free = append(p.free, s)
		}
		obj.BindSlot(nil)
	}
	p.objects = p.objects[:0]

	half := p.regionSize / 2
	for i := 0; i < n; i++ {
		slot, err := p.takeSlot()
		if err != nil {
			return err
		}

		x := p.rng.Float32()*p.regionSize - half
		y := p.rng.Float32()*p.regionSize - half
		z := p.rng.Float32()*p.regionSize - half

		r, g, b := placementColor(x, z, half)

		obj := object.NewSceneObject(
			object.WithPosition(x, y, z),
			object.WithRotation(
				p.rng.Float32()*2*math32.Pi,
				p.rng.Float32()*2*math32.Pi,
				p.rng.Float32()*2*math32.Pi,
			),
			object.WithScale(1, 1, 1),
			object.WithBaseColor(r, g, b, 1),
			object.WithSlot(slot),
		)
		p.objects = append(p.objects, obj)
	}

	return nil
}

// takeSlot pops the free list, falling back to the allocator when empty.
// Caller must hold the mutex.
func (p *instancePool) takeSlot() (uniform.Slot, error) {
	if n := len(p.free); n > 0 {
		s := p.free[n-1]
		p.free = p.free[:n-1]
		return s, nil
	}
	s, err := p.allocator.Allocate()
	if err != nil {
		return nil, err
	}
	p.allocated++
	return s, nil
}

func (p *instancePool) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.objects)
}

func (p *instancePool) At(i int) object.SceneObject {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.objects[i]
}

func (p *instancePool) ForEach(fn func(i int, obj object.SceneObject) bool) {
	p.mu.Lock()
	objects := p.objects
	p.mu.Unlock()

	for i, obj := range objects {
		if !fn(i, obj) {
			return
		}
	}
}

func (p *instancePool) Advance(frame uint64) {
	p.mu.Lock()
	objects := p.objects
	p.mu.Unlock()

	for i, obj := range objects {
		phase := frame + uint64(i)*phaseStride
		rx, ry, rz := obj.Rotation()
		if phase%spinCadence < spinThreshold {
			rz = float32(phase) / spinDivisor
		} else {
			rx += tumbleStep
		}
		obj.SetRotation(rx, ry, rz)
	}
}

func (p *instancePool) FreeCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}

func (p *instancePool) TotalAllocated() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.allocated
}

func (p *instancePool) RegionSize() float32 {
	return p.regionSize
}

// placementColor derives a material color from an object's (x, z) placement:
// hue from the angular position around the region center, saturation from the
// radial distance relative to the region half-extent, fixed value. The same
// placement always yields the same color.
//
// Parameters:
//   - x, z: the horizontal placement
//   - halfExtent: half the region side length, normalizing saturation
//
// Returns:
//   - r, g, b: color components in [0, 1]
func placementColor(x, z, halfExtent float32) (r, g, b float32) {
	hue := float64(math32.Atan2(z, x))/(2*float64(math32.Pi))*360 + 180

	dist := math32.Sqrt(x*x + z*z)
	sat := dist / halfExtent
	if sat > 1 {
		sat = 1
	}

	c := colorful.Hsv(hue, float64(sat), 0.9)
	return float32(c.R), float32(c.G), float32(c.B)
}
