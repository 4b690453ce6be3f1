package mocks

import (
	"github.com/vkngwrapper/pacer/gpu"
	"go.uber.org/mock/gomock"
)

// EasyMockUploadBuffer returns an upload buffer mock backed by real host memory of the
// requested size
func EasyMockUploadBuffer(ctrl *gomock.Controller, resource gpu.Handle, size int) *MockUploadBuffer {
	buffer := NewMockUploadBuffer(ctrl)
	mapped := make([]byte, size)

	buffer.EXPECT().Resource().Return(resource).AnyTimes()
	buffer.EXPECT().Mapped().Return(mapped).AnyTimes()

	return buffer
}

// EasyMockDescriptorHeap returns a descriptor heap mock that reports desc along with the
// given heap starts and increment
func EasyMockDescriptorHeap(ctrl *gomock.Controller, desc gpu.DescriptorHeapDescriptor, cpuStart gpu.CPUDescriptorHandle, gpuStart gpu.GPUDescriptorHandle, increment int) *MockDescriptorHeap {
	heap := NewMockDescriptorHeap(ctrl)

	heap.EXPECT().Descriptor().Return(desc).AnyTimes()
	heap.EXPECT().CPUStart().Return(cpuStart).AnyTimes()
	heap.EXPECT().GPUStart().Return(gpuStart).AnyTimes()
	heap.EXPECT().IncrementSize().Return(increment).AnyTimes()

	return heap
}

// EasyMockFence returns a fence mock whose completed value is read from *completed on
// every call
func EasyMockFence(ctrl *gomock.Controller, completed *uint64) *MockFence {
	fence := NewMockFence(ctrl)

	fence.EXPECT().CompletedValue().DoAndReturn(func() uint64 {
		return *completed
	}).AnyTimes()

	return fence
}
