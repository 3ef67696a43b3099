package renderer

import (
	"fmt"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/lp249839965/180622-WebGPU-Demos/common"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/camera"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/config"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/geometry"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/light"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/object"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/pipeline"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/pool"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/profiler"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/shaders"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/uniform"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/window"
)

// helperMarkerScale sizes the light helper relative to the unit cube.
const helperMarkerScale = 2.0

// frameRenderer is the implementation of the FrameRenderer interface.
type frameRenderer struct {
	mu *sync.Mutex

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	surface  *wgpu.Surface

	surfaceFormat wgpu.TextureFormat
	presentMode   wgpu.PresentMode

	depthTexture     *wgpu.Texture
	depthTextureView *wgpu.TextureView

	// swarmPassDescriptor clears both attachments; helperPassDescriptor loads
	// them so the helper draws over the finished swarm with correct depth.
	swarmPassDescriptor  *wgpu.RenderPassDescriptor
	helperPassDescriptor *wgpu.RenderPassDescriptor

	registry  pipeline.Registry
	allocator uniform.Allocator

	cam       camera.Camera
	sun       light.DirectionalLight
	swarm     pool.InstancePool
	prof      *profiler.Profiler
	staging   worker.DynamicWorkerPool
	workers   int
	clearTone wgpu.Color

	// cubeGeometry is always resident; it backs the helper pass and is the
	// default swarm geometry. alternate is the optional loaded mesh.
	cubeGeometry geometry.Geometry
	alternate    geometry.Geometry
	active       geometry.Geometry

	// helperSlot is a dedicated uniform slot for the light marker, outside
	// the pool's accounting.
	helperSlot uniform.Slot

	// Pending requests, applied at the start of the next tick.
	pendingCount    int
	countRequested  bool
	toggleRequested bool

	countTarget int
	poolOptions []pool.InstancePoolBuilderOption

	frame    uint64
	lastTick time.Time

	// scratch is the per-tick object snapshot, reused to avoid allocation.
	scratch []object.SceneObject

	forceFallbackAdapter bool
	closed               bool
}

var _ FrameRenderer = &frameRenderer{}

// NewFrameRenderer initializes WebGPU over the window's surface, builds the
// pipelines, and fills the pool to the configured count. Any missing platform
// capability surfaces as a *CapabilityError.
//
// Parameters:
//   - win: the spawned window to render into
//   - options: functional options to configure the renderer
//
// Returns:
//   - FrameRenderer: the ready renderer
//   - error: a *CapabilityError, *pipeline.CompilationError, or
//     *uniform.AllocationError describing the failed setup stage
func NewFrameRenderer(win window.Window, options ...FrameRendererBuilderOption) (FrameRenderer, error) {
	runtime.LockOSThread()

	r := &frameRenderer{
		mu:          &sync.Mutex{},
		presentMode: wgpu.PresentModeFifo,
		workers:     runtime.NumCPU(),
		clearTone:   wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
		countTarget: config.CountMin,
		lastTick:    time.Now(),
	}
	for _, option := range options {
		option(r)
	}
	if r.cam == nil {
		r.cam = camera.NewCamera(camera.WithController(camera.NewController()))
	}
	if r.sun == nil {
		r.sun = light.NewDirectionalLight()
	}

	surfaceDescriptor := win.SurfaceDescriptor()
	if surfaceDescriptor == nil {
		return nil, &CapabilityError{Stage: "window surface"}
	}

	r.instance = wgpu.CreateInstance(nil)
	r.surface = r.instance.CreateSurface(surfaceDescriptor)

	adapter, err := r.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: r.forceFallbackAdapter,
		CompatibleSurface:    r.surface,
	})
	if err != nil {
		return nil, &CapabilityError{Stage: "adapter", Err: err}
	}
	r.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Swarm Device",
	})
	if err != nil {
		return nil, &CapabilityError{Stage: "device", Err: err}
	}
	r.device = device
	r.queue = device.GetQueue()

	capabilities := r.surface.GetCapabilities(adapter)
	if len(capabilities.Formats) == 0 {
		return nil, &CapabilityError{Stage: "surface format"}
	}
	r.surfaceFormat = capabilities.Formats[0]

	library, err := shaders.NewLibrary()
	if err != nil {
		return nil, &pipeline.CompilationError{Stage: "shader library", Err: err}
	}
	r.registry, err = pipeline.NewRegistry(device, library, r.surfaceFormat)
	if err != nil {
		return nil, err
	}
	r.allocator = uniform.NewAllocator(device, r.registry.SlotLayout())

	r.cubeGeometry = geometry.NewCube()
	if err := r.cubeGeometry.Upload(device, r.queue); err != nil {
		return nil, fmt.Errorf("renderer: upload cube geometry: %w", err)
	}
	r.active = r.cubeGeometry

	r.helperSlot, err = r.allocator.Allocate()
	if err != nil {
		return nil, err
	}

	r.swarm = pool.NewInstancePool(r.allocator, r.poolOptions...)
	if err := r.swarm.Resize(r.countTarget); err != nil {
		return nil, err
	}

	r.staging = worker.NewDynamicWorkerPool(r.workers, 256, 1*time.Second)
	r.prof = profiler.NewProfiler()

	r.configureSurface(win.Width(), win.Height())
	r.cam.SetAspect(float32(win.Width()) / float32(win.Height()))

	log.Printf("[Renderer] initialized: format=%v, objects=%d, workers=%d",
		r.surfaceFormat, r.swarm.Count(), r.workers)
	return r, nil
}

// configureSurface configures the surface at the window's fixed framebuffer
// size and builds the depth texture and the cached pass descriptors. The
// dimensions never change after startup.
func (r *frameRenderer) configureSurface(width, height int) {
	capabilities := r.surface.GetCapabilities(r.adapter)

	r.surface.Configure(r.adapter, r.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      r.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: r.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	depthTexture, err := r.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        pipeline.DepthFormat,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		panic(err)
	}
	view, err := depthTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}
	r.depthTexture = depthTexture
	r.depthTextureView = view

	r.swarmPassDescriptor = swarmPassDescriptor(view, r.clearTone)
	r.helperPassDescriptor = helperPassDescriptor(view)
}

// swarmPassDescriptor clears color and depth: it is the first pass of the
// frame. The color view is filled in per frame.
func swarmPassDescriptor(depthView *wgpu.TextureView, clear wgpu.Color) *wgpu.RenderPassDescriptor {
	return &wgpu.RenderPassDescriptor{
		Label: "Swarm Pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: clear,
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1.0,
		},
	}
}

// helperPassDescriptor loads both attachments so the helper is depth-tested
// against the already-drawn swarm.
func helperPassDescriptor(depthView *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	return &wgpu.RenderPassDescriptor{
		Label: "Light Helper Pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				LoadOp:  wgpu.LoadOpLoad,
				StoreOp: wgpu.StoreOpStore,
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            depthView,
			DepthLoadOp:     wgpu.LoadOpLoad,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	}
}

func (r *frameRenderer) Tick() error {
	now := time.Now()
	dt := float32(now.Sub(r.lastTick).Seconds())
	r.lastTick = now
	if dt > 0.1 {
		dt = 0.1
	}

	if err := r.applyPending(); err != nil {
		return err
	}

	r.frame++
	frame := r.frame

	r.swarm.Advance(frame)
	r.sun.Advance(frame)
	if ctrl := r.cam.Controller(); ctrl != nil {
		ctrl.Advance(dt)
	}
	r.cam.Update()

	r.stageUniforms()
	r.flushUniforms()

	if err := r.drawFrame(); err != nil {
		return err
	}

	r.prof.Tick(r.swarm.Count(), r.swarm.TotalAllocated())
	return nil
}

// applyPending applies count and geometry requests queued since the previous
// tick. Requests are coalesced: only the latest of each kind runs.
func (r *frameRenderer) applyPending() error {
	r.mu.Lock()
	recount, n := r.countRequested, r.pendingCount
	toggle := r.toggleRequested
	r.countRequested, r.toggleRequested = false, false
	r.mu.Unlock()

	if recount && n != r.swarm.Count() {
		if err := r.swarm.Resize(n); err != nil {
			return fmt.Errorf("renderer: resize pool to %d: %w", n, err)
		}
		log.Printf("[Renderer] instance count -> %d (slots allocated: %d)", n, r.swarm.TotalAllocated())
	}

	if toggle {
		if r.active == r.cubeGeometry && r.alternate != nil {
			r.active = r.alternate
		} else {
			r.active = r.cubeGeometry
		}
		log.Printf("[Renderer] geometry -> %s (%d vertices)", r.active.Label(), r.active.VertexCount())
	}

	return nil
}

// stageUniforms fills every live slot's CPU mirror: model, MVP, material
// color, and the shared light block. The work is chunked across the staging
// pool; no GPU call happens here, so tasks only touch disjoint slots.
func (r *frameRenderer) stageUniforms() {
	r.scratch = r.scratch[:0]
	r.swarm.ForEach(func(_ int, obj object.SceneObject) bool {
		r.scratch = append(r.scratch, obj)
		return true
	})

	vp := r.cam.ViewProjectionMatrix()
	lightDir := r.sun.Direction()
	lightColor := r.sun.Color()
	ambient := r.sun.Ambient()

	chunk := (len(r.scratch) + r.workers - 1) / r.workers
	if chunk < 1 {
		chunk = 1
	}

	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < len(r.scratch); start += chunk {
		end := start + chunk
		if end > len(r.scratch) {
			end = len(r.scratch)
		}
		batch := r.scratch[start:end]

		wg.Add(1)
		id := taskID
		taskID++
		r.staging.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				for _, obj := range batch {
					slot := obj.Slot()
					if slot == nil {
						continue
					}
					data := slot.Data()
					obj.ModelMatrix(data.Model[:])
					common.Mul4(data.MVP[:], vp[:], data.Model[:])
					data.BaseColor = obj.BaseColor()
					data.AmbientColor = ambient
					data.LightColor = lightColor
					data.LightDir = lightDir
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	r.stageHelper(vp)
}

// stageHelper positions the light marker at the orbiting light and makes it
// self-lit: full ambient, no directional term.
func (r *frameRenderer) stageHelper(vp [16]float32) {
	p := r.sun.Position()
	data := r.helperSlot.Data()

	common.BuildModelMatrix(data.Model[:], p[0], p[1], p[2], 0, 0,
		helperMarkerScale, helperMarkerScale, helperMarkerScale)
	common.Mul4(data.MVP[:], vp[:], data.Model[:])
	data.BaseColor = r.sun.Color()
	data.AmbientColor = [4]float32{1, 1, 1, 1}
	data.LightColor = [4]float32{0, 0, 0, 0}
	data.LightDir = [3]float32{0, -1, 0}
}

// flushUniforms serializes every staged slot into its GPU buffer. Writes go
// through the single queue on the loop thread.
func (r *frameRenderer) flushUniforms() {
	for _, obj := range r.scratch {
		if slot := obj.Slot(); slot != nil {
			slot.Flush(r.queue)
		}
	}
	r.helperSlot.Flush(r.queue)
}

// drawFrame acquires the surface and encodes both passes into one submission.
func (r *frameRenderer) drawFrame() error {
	surfaceTexture, err := r.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
	}

	encoder, err := r.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return fmt.Errorf("renderer: command encoder: %w", err)
	}

	r.swarmPassDescriptor.ColorAttachments[0].View = view
	r.helperPassDescriptor.ColorAttachments[0].View = view

	// Pass 1: the swarm, clearing color and depth.
	pass := encoder.BeginRenderPass(r.swarmPassDescriptor)
	pass.SetPipeline(r.registry.Object())
	pass.SetVertexBuffer(0, r.active.Buffer(), 0, wgpu.WholeSize)
	vertexCount := r.active.VertexCount()
	for _, obj := range r.scratch {
		slot := obj.Slot()
		if slot == nil || slot.BindGroup() == nil {
			continue
		}
		pass.SetBindGroup(0, slot.BindGroup(), nil)
		pass.Draw(vertexCount, 1, 0, 0)
	}
	pass.End()

	// Pass 2: the light helper over the finished swarm. The cube's vertex
	// stream doubles as the line-strip outline.
	helperPass := encoder.BeginRenderPass(r.helperPassDescriptor)
	helperPass.SetPipeline(r.registry.Helper())
	helperPass.SetVertexBuffer(0, r.cubeGeometry.Buffer(), 0, wgpu.WholeSize)
	helperPass.SetBindGroup(0, r.helperSlot.BindGroup(), nil)
	helperPass.Draw(r.cubeGeometry.VertexCount(), 1, 0, 0)
	helperPass.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		encoder.Release()
		view.Release()
		surfaceTexture.Release()
		return fmt.Errorf("renderer: encoder finish: %w", err)
	}

	r.queue.Submit(commandBuffer)
	r.surface.Present()

	commandBuffer.Release()
	encoder.Release()
	view.Release()
	surfaceTexture.Release()
	return nil
}

func (r *frameRenderer) AdjustCount(delta int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.countTarget = config.ClampCount(r.countTarget + delta)
	r.pendingCount = r.countTarget
	r.countRequested = true
}

func (r *frameRenderer) SetAlternateGeometry(geo geometry.Geometry) error {
	if err := geo.Upload(r.device, r.queue); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.alternate != nil && r.active != r.alternate {
		r.alternate.Release()
	}
	r.alternate = geo
	return nil
}

func (r *frameRenderer) ToggleGeometry() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.alternate == nil {
		return
	}
	r.toggleRequested = true
}

func (r *frameRenderer) Pool() pool.InstancePool {
	return r.swarm
}

func (r *frameRenderer) Camera() camera.Camera {
	return r.cam
}

func (r *frameRenderer) Frame() uint64 {
	return r.frame
}

func (r *frameRenderer) Close() {
	if r.closed {
		return
	}
	r.closed = true

	if r.cubeGeometry != nil {
		r.cubeGeometry.Release()
	}
	if r.alternate != nil {
		r.alternate.Release()
	}
	if r.registry != nil {
		r.registry.Release()
	}
	if r.depthTextureView != nil {
		r.depthTextureView.Release()
	}
	if r.depthTexture != nil {
		r.depthTexture.Release()
	}
	if r.device != nil {
		r.device.Release()
	}
	log.Printf("[Renderer] closed after %d frames", r.frame)
}
