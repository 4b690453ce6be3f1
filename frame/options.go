package frame

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/pacer/descriptor"
	"github.com/vkngwrapper/pacer/memutils"
	"github.com/vkngwrapper/pacer/upload"
)

// CreateFlags indicate specific context behaviors to activate or deactivate
type CreateFlags int32

const (
	// CreateExternallySynchronized ensures that the root signature registry and pipeline cache
	// will not be synchronized internally. The consumer must guarantee they are used from only one
	// goroutine at a time, but lookups become cheaper because internal mutexes are not used.
	CreateExternallySynchronized CreateFlags = 1 << iota
)

var createFlagNames = []string{
	"CreateExternallySynchronized",
}

func (f CreateFlags) String() string {
	if f == 0 {
		return "None"
	}

	var names []string
	for bit, name := range createFlagNames {
		if f&(1<<bit) != 0 {
			names = append(names, name)
		}
	}
	unknown := f &^ (1<<len(createFlagNames) - 1)
	if unknown != 0 {
		names = append(names, "Unknown")
	}
	return strings.Join(names, "|")
}

const (
	// DefaultBufferCount is the number of frames the CPU may record ahead of the GPU
	DefaultBufferCount = 3
)

// CreateOptions contains optional settings when creating a scheduler or graphics context. It is
// valid to leave every field blank.
type CreateOptions struct {
	// Flags indicates specific behaviors to activate or deactivate
	Flags CreateFlags
	// BufferCount is the number of frames in flight, and the number of surface back buffers
	BufferCount int

	// UploadBufferSize is the size in bytes of the transient upload ring. It must be a multiple
	// of the constant buffer alignment.
	UploadBufferSize int
	// DescriptorHeapCapacity is the slot count of the shader-visible descriptor ring
	DescriptorHeapCapacity int
	// RenderTargetHeapCapacity is the slot count of the render target view ring
	RenderTargetHeapCapacity int
	// DepthStencilHeapCapacity is the slot count of the depth stencil view ring
	DepthStencilHeapCapacity int
}

// WithDefaults returns a copy of the options with every zero field replaced by its default
func (o CreateOptions) WithDefaults() CreateOptions {
	if o.BufferCount == 0 {
		o.BufferCount = DefaultBufferCount
	}
	if o.UploadBufferSize == 0 {
		o.UploadBufferSize = upload.DefaultSize
	}
	if o.DescriptorHeapCapacity == 0 {
		o.DescriptorHeapCapacity = descriptor.DefaultShaderVisibleCapacity
	}
	if o.RenderTargetHeapCapacity == 0 {
		o.RenderTargetHeapCapacity = descriptor.DefaultRenderTargetCapacity
	}
	if o.DepthStencilHeapCapacity == 0 {
		o.DepthStencilHeapCapacity = descriptor.DefaultDepthStencilCapacity
	}
	return o
}

// Validate reports the first option that cannot be used. Zero fields are valid.
func (o CreateOptions) Validate() error {
	if o.BufferCount < 0 {
		return errors.Newf("buffer count must be at least 1, but was %d", o.BufferCount)
	}
	if o.UploadBufferSize < 0 {
		return errors.Newf("upload buffer size must be positive, but was %d", o.UploadBufferSize)
	}
	if !memutils.IsAligned(uint(o.UploadBufferSize), memutils.ConstantBufferAlignment) {
		return errors.Newf("upload buffer size %d is not a multiple of %d", o.UploadBufferSize, memutils.ConstantBufferAlignment)
	}
	if o.DescriptorHeapCapacity < 0 || o.RenderTargetHeapCapacity < 0 || o.DepthStencilHeapCapacity < 0 {
		return errors.New("descriptor heap capacities must be positive")
	}
	return nil
}
