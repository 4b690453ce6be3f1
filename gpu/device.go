package gpu

import (
	"github.com/gogpu/gputypes"
)

//go:generate mockgen -destination=mocks/gpu_mocks.go -package=mocks github.com/vkngwrapper/pacer/gpu Releaser,Device,CommandQueue,Fence,CommandAllocator,DescriptorHeap,UploadBuffer,Surface,CommandList

// Releaser frees the device object behind a handle
type Releaser interface {
	Release(resource Handle) error
}

// Device creates every object the frame lifecycle needs. Objects with their own lifetimes
// (queues, fences, allocators, command lists, descriptor heaps) are returned as interfaces.
// Resources that are destroyed through the deferred destruction path are returned as handles.
type Device interface {
	Releaser

	CreateCommandQueue() (CommandQueue, error)
	CreateFence(initialValue uint64) (Fence, error)
	CreateCommandAllocator() (CommandAllocator, error)
	CreateCommandList(allocator CommandAllocator) (CommandList, error)
	CreateDescriptorHeap(desc DescriptorHeapDescriptor) (DescriptorHeap, error)

	// CreateUploadBuffer creates a host-visible buffer that stays mapped until it is released
	CreateUploadBuffer(size int) (UploadBuffer, error)
	CreateBuffer(size int, initialState ResourceState) (Handle, error)
	CreateTexture(desc TextureDescriptor, initialState ResourceState) (Handle, error)
	CreateRootSignature(desc *RootSignatureDescriptor) (Handle, error)
	CreatePipelineState(desc *PipelineStateDescriptor) (Handle, error)

	CreateShaderResourceView(resource Handle, desc ShaderResourceViewDescriptor, dest CPUDescriptorHandle) error
	CreateRenderTargetView(resource Handle, dest CPUDescriptorHandle) error
	CreateDepthStencilView(resource Handle, dest CPUDescriptorHandle) error

	// GPUVirtualAddress returns the address shaders and the input assembler use to reach a buffer
	GPUVirtualAddress(resource Handle) (uint64, error)
}

type CommandQueue interface {
	ExecuteCommandLists(lists ...CommandList) error
	// Signal asks the queue to set fence to value once all previously submitted work completes
	Signal(fence Fence, value uint64) error
	Destroy()
}

// Fence is a monotonically increasing counter written by the GPU
type Fence interface {
	CompletedValue() uint64
	// Wait blocks until CompletedValue reaches value. There is no timeout.
	Wait(value uint64) error
	Destroy()
}

type CommandAllocator interface {
	// Reset reclaims the memory of every command list recorded from this allocator. The GPU
	// must have finished executing those lists.
	Reset() error
	Destroy()
}

type DescriptorHeap interface {
	Descriptor() DescriptorHeapDescriptor
	CPUStart() CPUDescriptorHandle
	// GPUStart is zero for heaps that are not shader visible
	GPUStart() GPUDescriptorHandle
	IncrementSize() int
	Destroy()
}

type UploadBuffer interface {
	Resource() Handle
	// Mapped returns the host view of the buffer. It remains valid until the resource is released.
	Mapped() []byte
}

// Surface is a swap chain presenting to a window or an offscreen target
type Surface interface {
	Present(syncInterval int, flags PresentFlags) error
	Resize(bufferCount, width, height int) error
	Width() int
	Height() int
	Format() gputypes.TextureFormat
	CurrentBackBufferIndex() int
	BackBuffer(index int) Handle
	Destroy()
}

type CommandList interface {
	Reset(allocator CommandAllocator) error
	Close() error

	SetDescriptorHeaps(heaps ...DescriptorHeap)
	SetGraphicsRootSignature(rootSignature Handle)
	SetPipelineState(pipeline Handle)
	SetGraphicsRootConstantBufferView(parameterIndex int, address uint64)
	SetGraphicsRootDescriptorTable(parameterIndex int, base GPUDescriptorHandle)

	SetPrimitiveTopology(topology gputypes.PrimitiveTopology)
	SetVertexBuffers(startSlot int, views ...VertexBufferView)
	SetIndexBuffer(view IndexBufferView)
	SetViewport(viewport Viewport)
	SetScissorRect(rect Rect)
	// SetRenderTargets binds the render target views and an optional depth stencil view; pass
	// nil for depthStencil to bind none
	SetRenderTargets(renderTargets []CPUDescriptorHandle, depthStencil *CPUDescriptorHandle)
	ClearRenderTargetView(renderTarget CPUDescriptorHandle, color gputypes.Color)
	ClearDepthStencilView(depthStencil CPUDescriptorHandle, flags ClearFlags, depth float32, stencil uint8)

	ResourceBarrier(resource Handle, before, after ResourceState)
	UnorderedAccessBarrier(resource Handle)
	CopyBufferRegion(dest Handle, destOffset int, source Handle, sourceOffset int, size int)
	CopyBufferToTexture(dest Handle, source Handle, layout TextureCopyLayout)

	DrawIndexedInstanced(indexCountPerInstance, instanceCount, startIndexLocation, baseVertexLocation, startInstanceLocation int)
	Destroy()
}
