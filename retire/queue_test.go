package retire

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/pacer/gpu"
	"github.com/vkngwrapper/pacer/gpu/mocks"
	"github.com/vkngwrapper/pacer/gpu/soft"
	"go.uber.org/mock/gomock"
)

func TestResourceSurvivesUntilFrameCompletes(t *testing.T) {
	device := soft.NewDevice(nil, soft.Options{Manual: true})
	queue := New(nil, device)

	buffer, err := device.CreateBuffer(64, gpu.ResourceStateCommon)
	require.NoError(t, err)
	require.NoError(t, queue.Enqueue(buffer, 5))

	require.NoError(t, queue.DrainUpTo(3))
	require.True(t, device.IsLive(buffer))

	require.NoError(t, queue.DrainUpTo(4))
	require.True(t, device.IsLive(buffer))

	require.NoError(t, queue.DrainUpTo(5))
	require.False(t, device.IsLive(buffer))
	require.Equal(t, 0, queue.Len())
	require.Equal(t, 1, queue.Released())
}

func TestDrainStopsAtFirstPendingRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	releaser := mocks.NewMockReleaser(ctrl)
	queue := New(nil, releaser)

	first := gpu.Handle{Index: 1, Generation: 1}
	second := gpu.Handle{Index: 2, Generation: 1}
	third := gpu.Handle{Index: 3, Generation: 1}

	require.NoError(t, queue.Enqueue(first, 4))
	require.NoError(t, queue.Enqueue(second, 4))
	require.NoError(t, queue.Enqueue(third, 6))

	gomock.InOrder(
		releaser.EXPECT().Release(first).Return(nil),
		releaser.EXPECT().Release(second).Return(nil),
	)
	require.NoError(t, queue.DrainUpTo(5))
	require.Equal(t, 1, queue.Len())

	head, ok := queue.Peek()
	require.True(t, ok)
	require.Equal(t, Request{Resource: third, Frame: 6}, head)

	releaser.EXPECT().Release(third).Return(nil)
	require.NoError(t, queue.DrainUpTo(6))
	require.Equal(t, 0, queue.Len())
}

func TestDrainContinuesPastReleaseFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	releaser := mocks.NewMockReleaser(ctrl)
	queue := New(nil, releaser)

	first := gpu.Handle{Index: 1, Generation: 1}
	second := gpu.Handle{Index: 2, Generation: 1}
	require.NoError(t, queue.Enqueue(first, 1))
	require.NoError(t, queue.Enqueue(second, 1))

	releaser.EXPECT().Release(first).Return(errors.New("already gone"))
	releaser.EXPECT().Release(second).Return(nil)

	err := queue.DrainUpTo(1)
	require.ErrorContains(t, err, "already gone")
	require.Equal(t, 0, queue.Len())
	require.Equal(t, 1, queue.Released())
}

func TestEnqueueIgnoresNilHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := New(nil, mocks.NewMockReleaser(ctrl))

	require.NoError(t, queue.Enqueue(gpu.Handle{}, 3))
	require.Equal(t, 0, queue.Len())
}

func TestEnqueueRejectsDecreasingFrame(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := New(nil, mocks.NewMockReleaser(ctrl))

	require.NoError(t, queue.Enqueue(gpu.Handle{Index: 1, Generation: 1}, 7))
	err := queue.Enqueue(gpu.Handle{Index: 2, Generation: 1}, 6)
	require.Error(t, err)
	require.True(t, errors.IsAssertionFailure(err))
	require.Equal(t, 1, queue.Len())
}

func TestDrainAll(t *testing.T) {
	device := soft.NewDevice(nil, soft.Options{Manual: true})
	queue := New(nil, device)

	for frame := uint64(1); frame <= 100; frame++ {
		buffer, err := device.CreateBuffer(4, gpu.ResourceStateCommon)
		require.NoError(t, err)
		require.NoError(t, queue.Enqueue(buffer, frame))
	}

	require.NoError(t, queue.DrainUpTo(80))
	require.Equal(t, 20, queue.Len())
	require.Equal(t, 20, device.LiveResources())

	require.NoError(t, queue.DrainAll())
	require.Equal(t, 0, queue.Len())
	require.Equal(t, 0, device.LiveResources())
	require.NoError(t, queue.DrainAll())
}
