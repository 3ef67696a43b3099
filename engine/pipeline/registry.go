// Package pipeline builds and owns the two render pipelines used every
// frame: the triangle-list object pipeline and the line-strip light helper
// pipeline. Both share one shader module, one bind group layout, and the
// same depth configuration.
package pipeline

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/geometry"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/shaders"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/uniform"
)

// DepthFormat is the depth attachment format shared by both pipelines and
// the renderer's depth texture.
const DepthFormat = wgpu.TextureFormatDepth32Float

// CompilationError is a fatal setup error wrapping a failed shader module or
// pipeline creation. Frame rendering never starts once one is returned.
type CompilationError struct {
	Stage string
	Err   error
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("pipeline: %s: %v", e.Stage, e.Err)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

// registry is the implementation of the Registry interface.
type registry struct {
	object     *wgpu.RenderPipeline
	helper     *wgpu.RenderPipeline
	slotLayout *wgpu.BindGroupLayout
}

// Registry holds the frozen pipeline set. Pipelines are built once at setup
// and reused every frame; geometry swaps never rebuild them because every
// geometry shares the same vertex layout.
type Registry interface {
	// Object returns the triangle-list pipeline drawing the instanced swarm.
	//
	// Returns:
	//   - *wgpu.RenderPipeline: the object pipeline
	Object() *wgpu.RenderPipeline

	// Helper returns the line-strip pipeline drawing the light helper.
	//
	// Returns:
	//   - *wgpu.RenderPipeline: the helper pipeline
	Helper() *wgpu.RenderPipeline

	// SlotLayout returns the bind group layout every uniform slot binds
	// against. Both pipelines use it as group 0.
	//
	// Returns:
	//   - *wgpu.BindGroupLayout: the shared slot layout
	SlotLayout() *wgpu.BindGroupLayout

	// Release frees the pipelines and the shared layout.
	Release()
}

var _ Registry = &registry{}

// NewRegistry compiles the shared shader module and builds both pipelines
// against the surface color format.
//
// Parameters:
//   - device: the device to build on
//   - library: the validated shader library
//   - colorFormat: the surface's preferred texture format
//
// Returns:
//   - Registry: the built pipeline set
//   - error: a *CompilationError naming the stage that failed
func NewRegistry(device *wgpu.Device, library shaders.Library, colorFormat wgpu.TextureFormat) (Registry, error) {
	module, err := device.CreateShaderModule(library.ModuleDescriptor())
	if err != nil {
		return nil, &CompilationError{Stage: "shader module", Err: err}
	}
	defer module.Release()

	layoutDesc := uniform.BindGroupLayoutDescriptor()
	slotLayout, err := device.CreateBindGroupLayout(&layoutDesc)
	if err != nil {
		return nil, &CompilationError{Stage: "slot bind group layout", Err: err}
	}

	pipelineLayout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Swarm Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{slotLayout},
	})
	if err != nil {
		slotLayout.Release()
		return nil, &CompilationError{Stage: "pipeline layout", Err: err}
	}
	defer pipelineLayout.Release()

	object, err := device.CreateRenderPipeline(objectPipelineDescriptor(module, pipelineLayout, colorFormat))
	if err != nil {
		slotLayout.Release()
		return nil, &CompilationError{Stage: "object pipeline", Err: err}
	}

	helper, err := device.CreateRenderPipeline(helperPipelineDescriptor(module, pipelineLayout, colorFormat))
	if err != nil {
		object.Release()
		slotLayout.Release()
		return nil, &CompilationError{Stage: "helper pipeline", Err: err}
	}

	return &registry{
		object:     object,
		helper:     helper,
		slotLayout: slotLayout,
	}, nil
}

// objectPipelineDescriptor describes the instanced swarm pipeline: triangle
// list, back-face culling, depth test and write against the shared format.
func objectPipelineDescriptor(module *wgpu.ShaderModule, layout *wgpu.PipelineLayout, colorFormat wgpu.TextureFormat) *wgpu.RenderPipelineDescriptor {
	return &wgpu.RenderPipelineDescriptor{
		Label:  "Object Render Pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: shaders.EntryVertexInstance,
			Buffers:    []wgpu.VertexBufferLayout{geometry.VertexBufferLayout()},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: shaders.EntryFragment,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    colorFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeBack,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: sharedDepthState(),
	}
}

// helperPipelineDescriptor describes the light helper pipeline: line strip,
// no culling, same depth state so the helper sorts correctly against the
// swarm.
func helperPipelineDescriptor(module *wgpu.ShaderModule, layout *wgpu.PipelineLayout, colorFormat wgpu.TextureFormat) *wgpu.RenderPipelineDescriptor {
	return &wgpu.RenderPipelineDescriptor{
		Label:  "Light Helper Render Pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: shaders.EntryVertexHelper,
			Buffers:    []wgpu.VertexBufferLayout{geometry.VertexBufferLayout()},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: shaders.EntryFragment,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    colorFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyLineStrip,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: sharedDepthState(),
	}
}

func sharedDepthState() *wgpu.DepthStencilState {
	return &wgpu.DepthStencilState{
		Format:            DepthFormat,
		DepthWriteEnabled: true,
		DepthCompare:      wgpu.CompareFunctionLess,
		StencilFront: wgpu.StencilFaceState{
			Compare: wgpu.CompareFunctionAlways,
		},
		StencilBack: wgpu.StencilFaceState{
			Compare: wgpu.CompareFunctionAlways,
		},
	}
}

func (r *registry) Object() *wgpu.RenderPipeline {
	return r.object
}

func (r *registry) Helper() *wgpu.RenderPipeline {
	return r.helper
}

func (r *registry) SlotLayout() *wgpu.BindGroupLayout {
	return r.slotLayout
}

func (r *registry) Release() {
	if r.object != nil {
		r.object.Release()
		r.object = nil
	}
	if r.helper != nil {
		r.helper.Release()
		r.helper = nil
	}
	if r.slotLayout != nil {
		r.slotLayout.Release()
		r.slotLayout = nil
	}
}
