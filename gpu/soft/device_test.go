package soft

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/pacer/gpu"
	"github.com/vkngwrapper/pacer/internal/handles"
)

func readyQueue(t *testing.T, device *Device) (*Queue, *Fence, *CommandAllocator, *CommandList) {
	queue, err := device.CreateCommandQueue()
	require.NoError(t, err)
	fence, err := device.CreateFence(0)
	require.NoError(t, err)
	allocator, err := device.CreateCommandAllocator()
	require.NoError(t, err)
	list, err := device.CreateCommandList(allocator)
	require.NoError(t, err)

	return queue.(*Queue), fence.(*Fence), allocator.(*CommandAllocator), list.(*CommandList)
}

func TestBufferAddressesAndRelease(t *testing.T) {
	device := NewDevice(nil, Options{Manual: true})

	first, err := device.CreateBuffer(100, gpu.ResourceStateCommon)
	require.NoError(t, err)
	second, err := device.CreateBuffer(100, gpu.ResourceStateCommon)
	require.NoError(t, err)

	firstAddress, err := device.GPUVirtualAddress(first)
	require.NoError(t, err)
	secondAddress, err := device.GPUVirtualAddress(second)
	require.NoError(t, err)
	require.Greater(t, secondAddress, firstAddress)
	require.Equal(t, 2, device.LiveResources())

	require.NoError(t, device.Release(first))
	require.False(t, device.IsLive(first))
	require.Equal(t, 1, device.Released())

	err = device.Release(first)
	require.True(t, errors.Is(err, handles.ErrStaleHandle))
}

func TestQueueManualCompletion(t *testing.T) {
	device := NewDevice(nil, Options{Manual: true})
	queue, fence, _, list := readyQueue(t, device)

	upload, err := device.CreateUploadBuffer(16)
	require.NoError(t, err)
	copy(upload.Mapped(), []byte{1, 2, 3, 4})

	dest, err := device.CreateBuffer(4, gpu.ResourceStateCopyDest)
	require.NoError(t, err)

	list.CopyBufferRegion(dest, 0, upload.Resource(), 0, 4)
	require.NoError(t, list.Close())
	require.NoError(t, queue.ExecuteCommandLists(list))
	require.NoError(t, queue.Signal(fence, 1))

	require.Equal(t, uint64(0), fence.CompletedValue())
	require.Equal(t, 2, queue.Pending())

	require.True(t, queue.CompleteNext())
	require.Equal(t, uint64(1), fence.CompletedValue())

	data, err := device.BufferData(dest)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, data)
	require.Empty(t, device.Faults())
}

func TestReleaseBeforeExecutionFaults(t *testing.T) {
	device := NewDevice(nil, Options{Manual: true})
	queue, fence, _, list := readyQueue(t, device)

	source, err := device.CreateBuffer(4, gpu.ResourceStateCopySource)
	require.NoError(t, err)
	dest, err := device.CreateBuffer(4, gpu.ResourceStateCopyDest)
	require.NoError(t, err)

	list.CopyBufferRegion(dest, 0, source, 0, 4)
	require.NoError(t, list.Close())
	require.NoError(t, queue.ExecuteCommandLists(list))
	require.NoError(t, queue.Signal(fence, 1))

	require.NoError(t, device.Release(source))
	queue.CompleteAll()

	faults := device.Faults()
	require.Len(t, faults, 1)
	require.True(t, errors.Is(faults[0], ErrFault))
	require.Contains(t, faults[0].Error(), "CopyBufferRegion")
}

func TestAllocatorResetWhileInFlight(t *testing.T) {
	device := NewDevice(nil, Options{Manual: true})
	queue, fence, allocator, list := readyQueue(t, device)

	require.NoError(t, list.Close())
	require.NoError(t, queue.ExecuteCommandLists(list))
	require.NoError(t, queue.Signal(fence, 1))

	require.Error(t, allocator.Reset())
	require.Len(t, device.Faults(), 1)

	queue.CompleteAll()
	require.NoError(t, allocator.Reset())
	require.Equal(t, 2, allocator.Resets())
}

func TestCommandListLifecycle(t *testing.T) {
	device := NewDevice(nil, Options{Manual: true})
	queue, _, allocator, list := readyQueue(t, device)

	require.Error(t, list.Reset(allocator))
	require.Error(t, queue.ExecuteCommandLists(list))

	require.NoError(t, list.Close())
	list.SetScissorRect(gpu.Rect{Right: 1, Bottom: 1})
	require.NoError(t, list.Reset(allocator))
	require.Empty(t, list.Commands())

	list.DrawIndexedInstanced(3, 1, 0, 0, 0)
	require.Error(t, list.Close())
}

func TestFenceWaitBlocksUntilSignaled(t *testing.T) {
	device := NewDevice(nil, Options{Manual: true})
	queue, fence, _, _ := readyQueue(t, device)

	require.NoError(t, queue.Signal(fence, 5))

	done := make(chan struct{})
	go func() {
		_ = fence.Wait(5)
		close(done)
	}()

	require.True(t, fence.AwaitWaiter(time.Second))
	select {
	case <-done:
		t.Fatal("wait returned before the fence was signaled")
	default:
	}

	queue.CompleteAll()
	<-done
	require.Equal(t, 0, fence.Waiting())
}

func TestAutomaticCompletion(t *testing.T) {
	device := NewDevice(nil, Options{Latency: time.Millisecond})
	defer device.Close()

	queue, fence, allocator, list := readyQueue(t, device)

	for value := uint64(1); value <= 3; value++ {
		require.NoError(t, list.Close())
		require.NoError(t, queue.ExecuteCommandLists(list))
		require.NoError(t, queue.Signal(fence, value))
		require.NoError(t, fence.Wait(value))
		require.NoError(t, allocator.Reset())
		require.NoError(t, list.Reset(allocator))
	}

	require.Equal(t, uint64(3), fence.CompletedValue())
	require.Empty(t, device.Faults())
}

func TestFenceNeverMovesBackwards(t *testing.T) {
	fence := newFence(10)
	fence.Signal(4)
	require.Equal(t, uint64(10), fence.CompletedValue())
	fence.Signal(12)
	require.Equal(t, uint64(12), fence.CompletedValue())
}

func TestSurfacePresentRotatesBackBuffers(t *testing.T) {
	device := NewDevice(nil, Options{Manual: true})
	surface, err := device.NewSurface(3, 64, 32, gputypes.TextureFormatBGRA8Unorm)
	require.NoError(t, err)
	require.Equal(t, 3, device.LiveResources())

	require.NoError(t, surface.Present(1, 0))
	require.NoError(t, surface.Present(0, gpu.PresentAllowTearing))
	require.Error(t, surface.Present(1, gpu.PresentAllowTearing))
	require.Equal(t, 2, surface.CurrentBackBufferIndex())

	presents := surface.Presents()
	require.Equal(t, []PresentCall{
		{SyncInterval: 1, Flags: 0, BackBuffer: 0},
		{SyncInterval: 0, Flags: gpu.PresentAllowTearing, BackBuffer: 1},
	}, presents)

	oldBackBuffer := surface.BackBuffer(0)
	require.NoError(t, surface.Resize(3, 128, 64))
	require.False(t, device.IsLive(oldBackBuffer))
	require.Equal(t, 128, surface.Width())
	require.Equal(t, 0, surface.CurrentBackBufferIndex())
	require.Equal(t, 3, device.LiveResources())
}

func TestViewsAndDescriptorHeaps(t *testing.T) {
	device := NewDevice(nil, Options{Manual: true})

	shaderVisible, err := device.CreateDescriptorHeap(gpu.DescriptorHeapDescriptor{Type: gpu.DescriptorHeapCBVSRVUAV, Capacity: 8, ShaderVisible: true})
	require.NoError(t, err)
	cpuOnly, err := device.CreateDescriptorHeap(gpu.DescriptorHeapDescriptor{Type: gpu.DescriptorHeapRenderTarget, Capacity: 8})
	require.NoError(t, err)

	require.NotZero(t, shaderVisible.GPUStart())
	require.Zero(t, cpuOnly.GPUStart())
	require.Greater(t, uint64(cpuOnly.CPUStart()), uint64(shaderVisible.CPUStart())+uint64(8*shaderVisible.IncrementSize()))

	texture, err := device.CreateTexture(gpu.TextureDescriptor{Width: 4, Height: 4, MipLevels: 1, Format: gputypes.TextureFormatRGBA8Unorm}, gpu.ResourceStateCommon)
	require.NoError(t, err)

	require.NoError(t, device.CreateShaderResourceView(texture, gpu.ShaderResourceViewDescriptor{MipLevels: 1}, shaderVisible.CPUStart()))
	view, ok := device.View(shaderVisible.CPUStart())
	require.True(t, ok)
	require.Equal(t, View{Kind: ViewShaderResource, Resource: texture, Format: gputypes.TextureFormatRGBA8Unorm}, view)
}

func TestPipelineStateRequiresLiveRootSignature(t *testing.T) {
	device := NewDevice(nil, Options{Manual: true})

	rootSignature, err := device.CreateRootSignature(&gpu.RootSignatureDescriptor{})
	require.NoError(t, err)

	pipeline, err := device.CreatePipelineState(&gpu.PipelineStateDescriptor{RootSignature: rootSignature, VertexShader: []byte{1}})
	require.NoError(t, err)

	desc, err := device.PipelineState(pipeline)
	require.NoError(t, err)
	require.Equal(t, rootSignature, desc.RootSignature)

	require.NoError(t, device.Release(rootSignature))
	_, err = device.CreatePipelineState(&gpu.PipelineStateDescriptor{RootSignature: rootSignature, VertexShader: []byte{1}})
	require.Error(t, err)
}
