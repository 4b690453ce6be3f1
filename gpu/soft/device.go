// Package soft implements the gpu interfaces in process memory. Submitted command lists run on
// an emulated GPU timeline that either advances on its own, after an optional latency per fence
// signal, or only when a test asks it to. Commands that touch a released resource and command
// allocators reset while their lists are still in flight are recorded as faults, so tests can
// assert that CPU-side lifetime management never outruns the GPU.
package soft

import (
	"log/slog"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/gogpu/gputypes"
	"github.com/vkngwrapper/pacer/gpu"
	"github.com/vkngwrapper/pacer/internal/handles"
)

const (
	defaultDescriptorIncrement = 32
	addressAlignment           = 64 * 1024
	baseVirtualAddress         = 0x1_0000_0000
)

// ErrFault is wrapped by every fault the emulated GPU records
var ErrFault = errors.New("emulated gpu fault")

type resourceKind int

const (
	resourceBuffer resourceKind = iota
	resourceUploadBuffer
	resourceTexture
	resourceRootSignature
	resourcePipelineState
)

func (k resourceKind) String() string {
	switch k {
	case resourceBuffer:
		return "Buffer"
	case resourceUploadBuffer:
		return "UploadBuffer"
	case resourceTexture:
		return "Texture"
	case resourceRootSignature:
		return "RootSignature"
	case resourcePipelineState:
		return "PipelineState"
	}
	return "Unknown"
}

type resource struct {
	kind    resourceKind
	address uint64
	data    []byte

	texture       gpu.TextureDescriptor
	rootSignature *gpu.RootSignatureDescriptor
	pipeline      *gpu.PipelineStateDescriptor
}

// ViewKind identifies what was written into a descriptor slot
type ViewKind int

const (
	ViewShaderResource ViewKind = iota
	ViewRenderTarget
	ViewDepthStencil
)

// View is the content of one descriptor slot
type View struct {
	Kind     ViewKind
	Resource gpu.Handle
	Format   gputypes.TextureFormat
}

// Options configure a software device
type Options struct {
	// Manual leaves the emulated GPU idle until a test calls Queue.CompleteNext or
	// Queue.CompleteAll. Otherwise a worker goroutine drains each queue in order.
	Manual bool
	// Latency is slept by the worker before it completes each fence signal. Ignored in
	// manual mode.
	Latency time.Duration
	// DescriptorIncrement is the distance between consecutive descriptor slots. Zero means 32.
	DescriptorIncrement int
}

// Device is a gpu.Device whose resources live in host memory
type Device struct {
	logger  *slog.Logger
	options Options

	mutex       sync.Mutex
	resources   *handles.Table[*resource]
	views       *swiss.Map[gpu.CPUDescriptorHandle, View]
	nextAddress uint64
	nextHeap    uint64
	released    int
	faults      []error

	queues []*Queue
}

var _ gpu.Device = &Device{}

func NewDevice(logger *slog.Logger, options Options) *Device {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if options.DescriptorIncrement == 0 {
		options.DescriptorIncrement = defaultDescriptorIncrement
	}

	return &Device{
		logger:      logger,
		options:     options,
		resources:   handles.NewTable[*resource](64),
		views:       swiss.NewMap[gpu.CPUDescriptorHandle, View](42),
		nextAddress: baseVirtualAddress,
		nextHeap:    0x1000,
	}
}

func toHandle(id handles.ID) gpu.Handle {
	return gpu.Handle{Index: id.Index, Generation: id.Generation}
}

func toID(h gpu.Handle) handles.ID {
	return handles.ID{Index: h.Index, Generation: h.Generation}
}

func (d *Device) insertLocked(res *resource) gpu.Handle {
	if res.kind == resourceBuffer || res.kind == resourceUploadBuffer {
		res.address = d.nextAddress
		size := uint64(len(res.data))
		d.nextAddress += (size + addressAlignment - 1) &^ (addressAlignment - 1)
		if size == 0 {
			d.nextAddress += addressAlignment
		}
	}

	return toHandle(d.resources.Insert(res))
}

func (d *Device) lookup(h gpu.Handle) (*resource, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.resources.Get(toID(h))
}

func (d *Device) fault(err error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.faultLocked(err)
}

func (d *Device) faultLocked(err error) {
	err = errors.Mark(err, ErrFault)
	d.faults = append(d.faults, err)
	d.logger.Error("emulated gpu fault", slog.Any("error", err))
}

// Faults returns every fault recorded by the emulated GPU
func (d *Device) Faults() []error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return append([]error(nil), d.faults...)
}

// LiveResources returns the number of handles that have been created and not released
func (d *Device) LiveResources() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.resources.Len()
}

// Released returns the number of handles released over the life of the device
func (d *Device) Released() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.released
}

// IsLive reports whether h still refers to a resource
func (d *Device) IsLive(h gpu.Handle) bool {
	_, err := d.lookup(h)
	return err == nil
}

// BufferData returns the host memory behind a buffer, upload buffer, or texture
func (d *Device) BufferData(h gpu.Handle) ([]byte, error) {
	res, err := d.lookup(h)
	if err != nil {
		return nil, err
	}
	return res.data, nil
}

// PipelineState returns the descriptor a pipeline handle was created from
func (d *Device) PipelineState(h gpu.Handle) (*gpu.PipelineStateDescriptor, error) {
	res, err := d.lookup(h)
	if err != nil {
		return nil, err
	}
	if res.kind != resourcePipelineState {
		return nil, errors.Newf("%s is a %s, not a pipeline state", h, res.kind)
	}
	return res.pipeline, nil
}

// RootSignature returns the descriptor a root signature handle was created from
func (d *Device) RootSignature(h gpu.Handle) (*gpu.RootSignatureDescriptor, error) {
	res, err := d.lookup(h)
	if err != nil {
		return nil, err
	}
	if res.kind != resourceRootSignature {
		return nil, errors.Newf("%s is a %s, not a root signature", h, res.kind)
	}
	return res.rootSignature, nil
}

// View returns the view last written into the descriptor slot at cpu
func (d *Device) View(cpu gpu.CPUDescriptorHandle) (View, bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.views.Get(cpu)
}

// Queue returns the queue created at index, in creation order
func (d *Device) Queue(index int) *Queue {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.queues[index]
}

func (d *Device) CreateCommandQueue() (gpu.CommandQueue, error) {
	queue := newQueue(d)

	d.mutex.Lock()
	d.queues = append(d.queues, queue)
	d.mutex.Unlock()

	if !d.options.Manual {
		go queue.run()
	}

	return queue, nil
}

func (d *Device) CreateFence(initialValue uint64) (gpu.Fence, error) {
	return newFence(initialValue), nil
}

func (d *Device) CreateCommandAllocator() (gpu.CommandAllocator, error) {
	return &CommandAllocator{device: d}, nil
}

func (d *Device) CreateCommandList(allocator gpu.CommandAllocator) (gpu.CommandList, error) {
	softAllocator, ok := allocator.(*CommandAllocator)
	if !ok {
		return nil, errors.Newf("command allocator of type %T was not created by the software device", allocator)
	}

	return &CommandList{device: d, allocator: softAllocator}, nil
}

func (d *Device) CreateDescriptorHeap(desc gpu.DescriptorHeapDescriptor) (gpu.DescriptorHeap, error) {
	if desc.Capacity <= 0 {
		return nil, errors.Newf("descriptor heap capacity must be positive, but was %d", desc.Capacity)
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	heap := &DescriptorHeap{
		desc:      desc,
		increment: d.options.DescriptorIncrement,
		cpuStart:  gpu.CPUDescriptorHandle(d.nextHeap),
	}
	if desc.ShaderVisible {
		heap.gpuStart = gpu.GPUDescriptorHandle(d.nextHeap | 1<<48)
	}
	// Leave a gap between heaps so an overrun lands outside every heap
	d.nextHeap += uint64(desc.Capacity*heap.increment) + 0x1000

	return heap, nil
}

func (d *Device) CreateUploadBuffer(size int) (gpu.UploadBuffer, error) {
	if size <= 0 {
		return nil, errors.Newf("upload buffer size must be positive, but was %d", size)
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	res := &resource{kind: resourceUploadBuffer, data: make([]byte, size)}
	return &UploadBuffer{resource: d.insertLocked(res), mapped: res.data}, nil
}

func (d *Device) CreateBuffer(size int, initialState gpu.ResourceState) (gpu.Handle, error) {
	if size < 0 {
		return gpu.Handle{}, errors.Newf("buffer size must not be negative, but was %d", size)
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.insertLocked(&resource{kind: resourceBuffer, data: make([]byte, size)}), nil
}

func (d *Device) CreateTexture(desc gpu.TextureDescriptor, initialState gpu.ResourceState) (gpu.Handle, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return gpu.Handle{}, errors.Newf("texture extent %dx%d is invalid", desc.Width, desc.Height)
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	size := gpu.RowPitch(desc.Format, desc.Width) * desc.Height
	return d.insertLocked(&resource{kind: resourceTexture, texture: desc, data: make([]byte, size)}), nil
}

func (d *Device) CreateRootSignature(desc *gpu.RootSignatureDescriptor) (gpu.Handle, error) {
	if desc == nil {
		return gpu.Handle{}, errors.New("root signature descriptor is nil")
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.insertLocked(&resource{kind: resourceRootSignature, rootSignature: desc}), nil
}

func (d *Device) CreatePipelineState(desc *gpu.PipelineStateDescriptor) (gpu.Handle, error) {
	if desc == nil {
		return gpu.Handle{}, errors.New("pipeline state descriptor is nil")
	}
	if len(desc.VertexShader) == 0 {
		return gpu.Handle{}, errors.New("pipeline state has no vertex shader")
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	_, err := d.resources.Get(toID(desc.RootSignature))
	if err != nil {
		return gpu.Handle{}, errors.Wrap(err, "pipeline state root signature")
	}

	return d.insertLocked(&resource{kind: resourcePipelineState, pipeline: desc}), nil
}

func (d *Device) writeView(resource gpu.Handle, dest gpu.CPUDescriptorHandle, kind ViewKind, format gputypes.TextureFormat) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	res, err := d.resources.Get(toID(resource))
	if err != nil {
		return err
	}
	if format == gputypes.TextureFormatUndefined {
		format = res.texture.Format
	}

	d.views.Put(dest, View{Kind: kind, Resource: resource, Format: format})
	return nil
}

func (d *Device) CreateShaderResourceView(resource gpu.Handle, desc gpu.ShaderResourceViewDescriptor, dest gpu.CPUDescriptorHandle) error {
	return d.writeView(resource, dest, ViewShaderResource, desc.Format)
}

func (d *Device) CreateRenderTargetView(resource gpu.Handle, dest gpu.CPUDescriptorHandle) error {
	return d.writeView(resource, dest, ViewRenderTarget, gputypes.TextureFormatUndefined)
}

func (d *Device) CreateDepthStencilView(resource gpu.Handle, dest gpu.CPUDescriptorHandle) error {
	return d.writeView(resource, dest, ViewDepthStencil, gputypes.TextureFormatUndefined)
}

func (d *Device) GPUVirtualAddress(resource gpu.Handle) (uint64, error) {
	res, err := d.lookup(resource)
	if err != nil {
		return 0, err
	}
	if res.kind != resourceBuffer && res.kind != resourceUploadBuffer {
		return 0, errors.Newf("%s is a %s and has no virtual address", resource, res.kind)
	}
	return res.address, nil
}

func (d *Device) Release(resource gpu.Handle) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	_, err := d.resources.Remove(toID(resource))
	if err != nil {
		return errors.Wrapf(err, "release %s", resource)
	}
	d.released++
	return nil
}

// Close stops the worker goroutine of every queue
func (d *Device) Close() {
	d.mutex.Lock()
	queues := append([]*Queue(nil), d.queues...)
	d.mutex.Unlock()

	for _, queue := range queues {
		queue.Destroy()
	}
}
