package shaders

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLibraryValidatesEmbeddedSource(t *testing.T) {
	lib, err := NewLibrary()
	require.NoError(t, err)

	assert.True(t, lib.HasVertexEntry(EntryVertexInstance))
	assert.True(t, lib.HasVertexEntry(EntryVertexHelper))
	assert.True(t, lib.HasFragmentEntry(EntryFragment))
	assert.False(t, lib.HasVertexEntry("vs_missing"))
	assert.False(t, lib.HasFragmentEntry(EntryVertexInstance), "vertex entries are not fragment entries")
}

func TestNewLibraryRejectsMissingEntryPoints(t *testing.T) {
	stripped := strings.ReplaceAll(swarmSource, "fn vs_helper", "fn vs_other")

	_, err := newLibraryFromSource(stripped)
	require.Error(t, err)
	assert.Contains(t, err.Error(), EntryVertexHelper)
}

func TestModuleDescriptorWrapsSource(t *testing.T) {
	lib, err := NewLibrary()
	require.NoError(t, err)

	desc := lib.ModuleDescriptor()
	require.NotNil(t, desc.WGSLDescriptor)
	assert.Equal(t, lib.Source(), desc.WGSLDescriptor.Code)
}

func TestUniformBlockMatchesSlotLayout(t *testing.T) {
	// Field order in the WGSL struct must match the Go-side uniform block.
	src := swarmSource
	order := []string{"model", "mvp", "base_color", "ambient_color", "light_color", "light_dir"}

	last := -1
	for _, field := range order {
		idx := strings.Index(src, field+" :")
		require.GreaterOrEqual(t, idx, 0, "field %s missing", field)
		assert.Greater(t, idx, last, "field %s out of order", field)
		last = idx
	}
}
