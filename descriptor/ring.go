// Package descriptor hands out temporary descriptor slots from a fixed-capacity heap in ring
// order. A slot is only valid until the ring wraps back around to it; nothing detects a slot
// being reused while the GPU still reads it, so the capacity must cover the descriptors used
// by every frame in flight.
package descriptor

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/pacer/gpu"
	"github.com/vkngwrapper/pacer/memutils"
)

const (
	// DefaultShaderVisibleCapacity is the capacity of the shader-visible CBV/SRV/UAV heap
	DefaultShaderVisibleCapacity = 65536
	// DefaultRenderTargetCapacity is the capacity of the render target view heap
	DefaultRenderTargetCapacity = 64
	// DefaultDepthStencilCapacity is the capacity of the depth stencil view heap
	DefaultDepthStencilCapacity = 64
)

// Handle locates one descriptor slot. GPU is zero for heaps that are not shader visible.
type Handle struct {
	CPU  gpu.CPUDescriptorHandle
	GPU  gpu.GPUDescriptorHandle
	Slot int
}

// Ring allocates descriptor slots from one heap. It is not safe for concurrent use.
type Ring struct {
	logger *slog.Logger
	heap   gpu.DescriptorHeap

	cpuStart      gpu.CPUDescriptorHandle
	gpuStart      gpu.GPUDescriptorHandle
	shaderVisible bool
	increment     int
	capacity      int
	cursor        int

	allocations int
	wraps       int
}

// New creates a descriptor heap described by desc and wraps it in a ring
func New(logger *slog.Logger, device gpu.Device, desc gpu.DescriptorHeapDescriptor) (*Ring, error) {
	if desc.Capacity <= 0 {
		return nil, errors.Newf("descriptor ring capacity must be positive, but was %d", desc.Capacity)
	}

	heap, err := device.CreateDescriptorHeap(desc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create a %s descriptor heap of %d slots", desc.Type, desc.Capacity)
	}

	return NewFromHeap(logger, heap), nil
}

// NewFromHeap wraps an existing heap. The ring takes ownership of the heap.
func NewFromHeap(logger *slog.Logger, heap gpu.DescriptorHeap) *Ring {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	desc := heap.Descriptor()
	memutils.DebugCheckPow2(heap.IncrementSize(), "descriptor increment size")

	ring := &Ring{
		logger:        logger,
		heap:          heap,
		cpuStart:      heap.CPUStart(),
		shaderVisible: desc.ShaderVisible,
		increment:     heap.IncrementSize(),
		capacity:      desc.Capacity,
	}
	if desc.ShaderVisible {
		ring.gpuStart = heap.GPUStart()
	}

	logger.Debug("DescriptorRing::New",
		slog.String("Type", desc.Type.String()),
		slog.Int("Capacity", desc.Capacity),
		slog.Bool("ShaderVisible", desc.ShaderVisible),
	)
	return ring
}

func (r *Ring) advance() int {
	slot := r.cursor
	r.cursor = (r.cursor + 1) % r.capacity
	if r.cursor == 0 {
		r.wraps++
	}
	r.allocations++
	return slot
}

// Allocate returns the next slot with both its CPU and GPU handles
func (r *Ring) Allocate() Handle {
	slot := r.advance()
	offset := uint64(slot) * uint64(r.increment)

	handle := Handle{
		CPU:  r.cpuStart + gpu.CPUDescriptorHandle(offset),
		Slot: slot,
	}
	if r.shaderVisible {
		handle.GPU = r.gpuStart + gpu.GPUDescriptorHandle(offset)
	}
	return handle
}

// AllocateCPU returns the CPU handle of the next slot. It is the only form meaningful for
// render target and depth stencil heaps.
func (r *Ring) AllocateCPU() gpu.CPUDescriptorHandle {
	slot := r.advance()
	return r.cpuStart + gpu.CPUDescriptorHandle(uint64(slot)*uint64(r.increment))
}

// Heap returns the heap behind the ring, for binding on a command list
func (r *Ring) Heap() gpu.DescriptorHeap {
	return r.heap
}

func (r *Ring) Capacity() int {
	return r.capacity
}

// Cursor returns the slot the next allocation will use
func (r *Ring) Cursor() int {
	return r.cursor
}

// PrintJson populates a json object with the ring's counters
func (r *Ring) PrintJson(json jwriter.ObjectState) {
	json.Name("Type").String(r.heap.Descriptor().Type.String())
	json.Name("Capacity").Int(r.capacity)
	json.Name("Cursor").Int(r.cursor)
	json.Name("Allocations").Int(r.allocations)
	json.Name("Wraps").Int(r.wraps)
}

func (r *Ring) Destroy() {
	if r.heap != nil {
		r.heap.Destroy()
		r.heap = nil
	}
}
