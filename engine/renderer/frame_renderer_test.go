package renderer

import (
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwarmPassClearsBothAttachments(t *testing.T) {
	tone := wgpu.Color{R: 0.2, G: 0.3, B: 0.4, A: 1.0}
	desc := swarmPassDescriptor(nil, tone)

	require.Len(t, desc.ColorAttachments, 1)
	assert.Equal(t, wgpu.LoadOpClear, desc.ColorAttachments[0].LoadOp)
	assert.Equal(t, wgpu.StoreOpStore, desc.ColorAttachments[0].StoreOp)
	assert.Equal(t, tone, desc.ColorAttachments[0].ClearValue)

	require.NotNil(t, desc.DepthStencilAttachment)
	assert.Equal(t, wgpu.LoadOpClear, desc.DepthStencilAttachment.DepthLoadOp)
	assert.Equal(t, wgpu.StoreOpStore, desc.DepthStencilAttachment.DepthStoreOp, "depth survives into the helper pass")
	assert.Equal(t, float32(1.0), desc.DepthStencilAttachment.DepthClearValue)
}

func TestHelperPassLoadsBothAttachments(t *testing.T) {
	desc := helperPassDescriptor(nil)

	require.Len(t, desc.ColorAttachments, 1)
	assert.Equal(t, wgpu.LoadOpLoad, desc.ColorAttachments[0].LoadOp, "helper must not erase the swarm")
	assert.Equal(t, wgpu.StoreOpStore, desc.ColorAttachments[0].StoreOp)

	require.NotNil(t, desc.DepthStencilAttachment)
	assert.Equal(t, wgpu.LoadOpLoad, desc.DepthStencilAttachment.DepthLoadOp, "helper depth-tests against the swarm")
}

func TestPassDescriptorsShareDepthView(t *testing.T) {
	// Both descriptors must target the same depth texture for the helper's
	// depth test to see the swarm's depth.
	view := &wgpu.TextureView{}
	swarm := swarmPassDescriptor(view, wgpu.Color{})
	helper := helperPassDescriptor(view)

	assert.Same(t, swarm.DepthStencilAttachment.View, helper.DepthStencilAttachment.View)
}

func TestCapabilityErrorFormatsStage(t *testing.T) {
	bare := &CapabilityError{Stage: "adapter"}
	assert.Contains(t, bare.Error(), "adapter")

	cause := errors.New("no backend")
	wrapped := &CapabilityError{Stage: "device", Err: cause}
	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, wrapped.Error(), "device")
}

func TestErrSurfaceUnavailableIsDetectable(t *testing.T) {
	// The tick wraps acquisition failures; callers skip the frame on match.
	err := errors.Join(ErrSurfaceUnavailable)
	assert.ErrorIs(t, err, ErrSurfaceUnavailable)
}
