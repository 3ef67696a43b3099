// Package shaders embeds the WGSL source shared by the instanced swarm and
// the light helper, and validates its entry points before any pipeline is
// built from it.
package shaders

import (
	_ "embed"
	"fmt"
	"regexp"

	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/swarm.wgsl
var swarmSource string

// Entry point names in the embedded source. Both vertex stages pair with the
// single fragment stage.
const (
	EntryVertexInstance = "vs_instance"
	EntryVertexHelper   = "vs_helper"
	EntryFragment       = "fs_main"
)

var (
	vertexEntryPattern   = regexp.MustCompile(`@vertex\s+fn\s+(\w+)`)
	fragmentEntryPattern = regexp.MustCompile(`@fragment\s+fn\s+(\w+)`)
)

// library is the implementation of the Library interface.
type library struct {
	source          string
	vertexEntries   map[string]bool
	fragmentEntries map[string]bool
}

// Library holds a validated WGSL source and hands out module descriptors for
// pipeline creation.
type Library interface {
	// Source returns the WGSL source code.
	//
	// Returns:
	//   - string: the shader source
	Source() string

	// ModuleDescriptor returns a descriptor for creating the shader module.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: the descriptor wrapping the source
	ModuleDescriptor() *wgpu.ShaderModuleDescriptor

	// HasVertexEntry reports whether the source declares the named @vertex
	// entry point.
	//
	// Parameters:
	//   - name: the entry point name
	//
	// Returns:
	//   - bool: true if the entry point exists
	HasVertexEntry(name string) bool

	// HasFragmentEntry reports whether the source declares the named
	// @fragment entry point.
	//
	// Parameters:
	//   - name: the entry point name
	//
	// Returns:
	//   - bool: true if the entry point exists
	HasFragmentEntry(name string) bool
}

var _ Library = &library{}

// NewLibrary parses the embedded swarm source and verifies that every entry
// point the pipelines reference is present.
//
// Returns:
//   - Library: the validated library
//   - error: an error naming the first missing entry point
func NewLibrary() (Library, error) {
	return newLibraryFromSource(swarmSource)
}

func newLibraryFromSource(source string) (Library, error) {
	l := &library{
		source:          source,
		vertexEntries:   make(map[string]bool),
		fragmentEntries: make(map[string]bool),
	}
	for _, m := range vertexEntryPattern.FindAllStringSubmatch(source, -1) {
		l.vertexEntries[m[1]] = true
	}
	for _, m := range fragmentEntryPattern.FindAllStringSubmatch(source, -1) {
		l.fragmentEntries[m[1]] = true
	}

	for _, name := range []string{EntryVertexInstance, EntryVertexHelper} {
		if !l.vertexEntries[name] {
			return nil, fmt.Errorf("shaders: missing @vertex entry point %q", name)
		}
	}
	if !l.fragmentEntries[EntryFragment] {
		return nil, fmt.Errorf("shaders: missing @fragment entry point %q", EntryFragment)
	}
	return l, nil
}

func (l *library) Source() string {
	return l.source
}

func (l *library) ModuleDescriptor() *wgpu.ShaderModuleDescriptor {
	return &wgpu.ShaderModuleDescriptor{
		Label: "Swarm Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: l.source,
		},
	}
}

func (l *library) HasVertexEntry(name string) bool {
	return l.vertexEntries[name]
}

func (l *library) HasFragmentEntry(name string) bool {
	return l.fragmentEntries[name]
}
