package pipeline

import (
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/shaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineDescriptorsShareShadingAndDepth(t *testing.T) {
	obj := objectPipelineDescriptor(nil, nil, wgpu.TextureFormatBGRA8Unorm)
	helper := helperPipelineDescriptor(nil, nil, wgpu.TextureFormatBGRA8Unorm)

	// Both passes resolve the same fragment stage and color format.
	require.NotNil(t, obj.Fragment)
	require.NotNil(t, helper.Fragment)
	assert.Equal(t, shaders.EntryFragment, obj.Fragment.EntryPoint)
	assert.Equal(t, shaders.EntryFragment, helper.Fragment.EntryPoint)
	assert.Equal(t, obj.Fragment.Targets[0].Format, helper.Fragment.Targets[0].Format)

	// Identical depth configuration keeps the helper sorted against the swarm.
	assert.Equal(t, obj.DepthStencil, helper.DepthStencil)
}

func TestObjectPipelineIsTriangleListWithCulling(t *testing.T) {
	obj := objectPipelineDescriptor(nil, nil, wgpu.TextureFormatBGRA8Unorm)

	assert.Equal(t, shaders.EntryVertexInstance, obj.Vertex.EntryPoint)
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, obj.Primitive.Topology)
	assert.Equal(t, wgpu.CullModeBack, obj.Primitive.CullMode)
}

func TestHelperPipelineIsLineStripWithoutCulling(t *testing.T) {
	helper := helperPipelineDescriptor(nil, nil, wgpu.TextureFormatBGRA8Unorm)

	assert.Equal(t, shaders.EntryVertexHelper, helper.Vertex.EntryPoint)
	assert.Equal(t, wgpu.PrimitiveTopologyLineStrip, helper.Primitive.Topology)
	assert.Equal(t, wgpu.CullModeNone, helper.Primitive.CullMode)
}

func TestSharedDepthStateWritesWithLessCompare(t *testing.T) {
	depth := sharedDepthState()

	assert.Equal(t, DepthFormat, depth.Format)
	assert.True(t, depth.DepthWriteEnabled)
	assert.Equal(t, wgpu.CompareFunctionLess, depth.DepthCompare)
}

func TestCompilationErrorUnwraps(t *testing.T) {
	cause := errors.New("bad WGSL")
	err := &CompilationError{Stage: "shader module", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "shader module")
}
