package descriptor

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/pacer/gpu"
	"github.com/vkngwrapper/pacer/gpu/mocks"
	"github.com/vkngwrapper/pacer/gpu/soft"
	"go.uber.org/mock/gomock"
)

func TestAllocateAdvancesByIncrement(t *testing.T) {
	ctrl := gomock.NewController(t)

	desc := gpu.DescriptorHeapDescriptor{Type: gpu.DescriptorHeapCBVSRVUAV, Capacity: 4, ShaderVisible: true}
	heap := mocks.EasyMockDescriptorHeap(ctrl, desc, 0x1000, 0x9000, 32)
	ring := NewFromHeap(nil, heap)

	first := ring.Allocate()
	second := ring.Allocate()

	require.Equal(t, Handle{CPU: 0x1000, GPU: 0x9000, Slot: 0}, first)
	require.Equal(t, Handle{CPU: 0x1020, GPU: 0x9020, Slot: 1}, second)
}

func TestAllocateWrapsSilently(t *testing.T) {
	ctrl := gomock.NewController(t)

	desc := gpu.DescriptorHeapDescriptor{Type: gpu.DescriptorHeapCBVSRVUAV, Capacity: 3, ShaderVisible: true}
	heap := mocks.EasyMockDescriptorHeap(ctrl, desc, 0x1000, 0x9000, 16)
	ring := NewFromHeap(nil, heap)

	var slots []int
	for i := 0; i < 7; i++ {
		slots = append(slots, ring.Allocate().Slot)
	}

	require.Equal(t, []int{0, 1, 2, 0, 1, 2, 0}, slots)
	require.Equal(t, 1, ring.Cursor())
}

func TestAllocateShaderVisibleHeapAtAddressZero(t *testing.T) {
	ctrl := gomock.NewController(t)

	desc := gpu.DescriptorHeapDescriptor{Type: gpu.DescriptorHeapCBVSRVUAV, Capacity: 4, ShaderVisible: true}
	heap := mocks.EasyMockDescriptorHeap(ctrl, desc, 0x1000, 0, 16)
	ring := NewFromHeap(nil, heap)

	require.Equal(t, Handle{CPU: 0x1000, GPU: 0, Slot: 0}, ring.Allocate())
	require.Equal(t, Handle{CPU: 0x1010, GPU: 0x10, Slot: 1}, ring.Allocate())
}

func TestAllocateCPUOnlyHeap(t *testing.T) {
	ctrl := gomock.NewController(t)

	desc := gpu.DescriptorHeapDescriptor{Type: gpu.DescriptorHeapRenderTarget, Capacity: 2}
	heap := mocks.EasyMockDescriptorHeap(ctrl, desc, 0x4000, 0, 8)
	ring := NewFromHeap(nil, heap)

	require.Equal(t, gpu.CPUDescriptorHandle(0x4000), ring.AllocateCPU())
	handle := ring.Allocate()
	require.Equal(t, gpu.CPUDescriptorHandle(0x4008), handle.CPU)
	require.Zero(t, handle.GPU)
	require.Equal(t, gpu.CPUDescriptorHandle(0x4000), ring.AllocateCPU())
}

func TestNewCreatesHeap(t *testing.T) {
	device := soft.NewDevice(nil, soft.Options{Manual: true})

	ring, err := New(nil, device, gpu.DescriptorHeapDescriptor{
		Type:          gpu.DescriptorHeapCBVSRVUAV,
		Capacity:      DefaultShaderVisibleCapacity,
		ShaderVisible: true,
	})
	require.NoError(t, err)
	require.Equal(t, DefaultShaderVisibleCapacity, ring.Capacity())

	handle := ring.Allocate()
	require.Equal(t, ring.Heap().CPUStart(), handle.CPU)
	require.Equal(t, ring.Heap().GPUStart(), handle.GPU)
}

func TestNewPropagatesHeapFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	device := mocks.NewMockDevice(ctrl)
	device.EXPECT().CreateDescriptorHeap(gomock.Any()).Return(nil, errors.New("out of memory"))

	_, err := New(nil, device, gpu.DescriptorHeapDescriptor{Type: gpu.DescriptorHeapDepthStencil, Capacity: 64})
	require.ErrorContains(t, err, "DepthStencil descriptor heap of 64 slots")
	require.ErrorContains(t, err, "out of memory")

	_, err = New(nil, device, gpu.DescriptorHeapDescriptor{Capacity: 0})
	require.Error(t, err)
}

func TestPrintJson(t *testing.T) {
	ctrl := gomock.NewController(t)

	desc := gpu.DescriptorHeapDescriptor{Type: gpu.DescriptorHeapDepthStencil, Capacity: 2}
	ring := NewFromHeap(nil, mocks.EasyMockDescriptorHeap(ctrl, desc, 0x10, 0, 8))
	ring.AllocateCPU()
	ring.AllocateCPU()
	ring.AllocateCPU()

	writer := jwriter.NewWriter()
	obj := writer.Object()
	ring.PrintJson(obj)
	obj.End()

	require.JSONEq(t, `{"Type":"DepthStencil","Capacity":2,"Cursor":1,"Allocations":3,"Wraps":1}`, string(writer.Bytes()))
}
