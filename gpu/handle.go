// Package gpu describes the device that the frame lifecycle code drives: a command queue, a
// fence, command allocators and lists, descriptor heaps, persistently mapped upload memory, and
// an optional presentation surface. Device objects that are owned and released as a group
// (pipelines, root signatures, buffers, textures) are referenced through Handle values rather
// than interface values so they can be queued for deferred destruction.
package gpu

import "fmt"

// Handle is an opaque reference to a device object. It pairs a small slot index with a
// generation counter; a handle whose slot has been released and reused no longer resolves.
// The zero Handle refers to nothing.
type Handle struct {
	Index      uint32
	Generation uint32
}

func (h Handle) IsNil() bool {
	return h.Generation == 0
}

func (h Handle) String() string {
	if h.IsNil() {
		return "Handle(nil)"
	}
	return fmt.Sprintf("Handle(%d:%d)", h.Index, h.Generation)
}

// CPUDescriptorHandle addresses a descriptor slot from the host side
type CPUDescriptorHandle uint64

// GPUDescriptorHandle addresses a descriptor slot from shaders; it is only meaningful for
// shader-visible heaps
type GPUDescriptorHandle uint64
