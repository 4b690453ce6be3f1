package soft

import (
	"github.com/vkngwrapper/pacer/gpu"
)

// DescriptorHeap is a gpu.DescriptorHeap occupying a private range of the device's descriptor
// address space
type DescriptorHeap struct {
	desc      gpu.DescriptorHeapDescriptor
	increment int
	cpuStart  gpu.CPUDescriptorHandle
	gpuStart  gpu.GPUDescriptorHandle
}

var _ gpu.DescriptorHeap = &DescriptorHeap{}

func (h *DescriptorHeap) Descriptor() gpu.DescriptorHeapDescriptor { return h.desc }
func (h *DescriptorHeap) CPUStart() gpu.CPUDescriptorHandle       { return h.cpuStart }
func (h *DescriptorHeap) GPUStart() gpu.GPUDescriptorHandle       { return h.gpuStart }
func (h *DescriptorHeap) IncrementSize() int                      { return h.increment }
func (h *DescriptorHeap) Destroy()                                {}

// UploadBuffer is a gpu.UploadBuffer whose mapping is the resource's host memory
type UploadBuffer struct {
	resource gpu.Handle
	mapped   []byte
}

var _ gpu.UploadBuffer = &UploadBuffer{}

func (b *UploadBuffer) Resource() gpu.Handle { return b.resource }
func (b *UploadBuffer) Mapped() []byte       { return b.mapped }
