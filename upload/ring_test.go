package upload

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/pacer/gpu"
	"github.com/vkngwrapper/pacer/gpu/mocks"
	"github.com/vkngwrapper/pacer/gpu/soft"
	"github.com/vkngwrapper/pacer/memutils"
	"go.uber.org/mock/gomock"
)

func readyRing(t *testing.T, size int) (*soft.Device, *Ring) {
	device := soft.NewDevice(nil, soft.Options{Manual: true})
	ring, err := New(nil, device, size)
	require.NoError(t, err)
	return device, ring
}

func TestUploadOffsetsAreAligned(t *testing.T) {
	_, ring := readyRing(t, 64*1024)

	for size := 1; size < 3000; size += 97 {
		offset, err := ring.Upload(make([]byte, size))
		require.NoError(t, err)
		require.Zero(t, offset%256, "upload of %d bytes landed at %d", size, offset)
	}
}

func TestUploadWrapsAtEnd(t *testing.T) {
	device, ring := readyRing(t, 1024)

	payload := make([]byte, 300)
	var offsets []int
	for i := 0; i < 3; i++ {
		for j := range payload {
			payload[j] = byte(i + 1)
		}

		offset, err := ring.Upload(payload)
		require.NoError(t, err)
		offsets = append(offsets, offset)
	}

	require.Equal(t, []int{0, 512, 0}, offsets)
	require.Equal(t, 512, ring.Cursor())

	mapped, err := device.BufferData(ring.Resource())
	require.NoError(t, err)
	require.Equal(t, byte(3), mapped[0])
	require.Equal(t, byte(2), mapped[512])
}

func TestUploadDiscardsTail(t *testing.T) {
	_, ring := readyRing(t, 1024)

	offset, err := ring.Upload(make([]byte, 700))
	require.NoError(t, err)
	require.Equal(t, 0, offset)
	require.Equal(t, 768, ring.Cursor())

	offset, err = ring.Upload(make([]byte, 257))
	require.NoError(t, err)
	require.Equal(t, 0, offset)

	var stats memutils.RingStatistics
	stats.Clear()
	ring.Statistics(&stats)
	require.Equal(t, 1, stats.WrapCount)
	require.Equal(t, 256, stats.DiscardedBytes)
	require.Equal(t, 2, stats.AllocationCount)
	require.Equal(t, 768+512, stats.AllocationBytes)
}

func TestUploadExactlyFillsRing(t *testing.T) {
	_, ring := readyRing(t, 1024)

	offset, err := ring.Upload(make([]byte, 1024))
	require.NoError(t, err)
	require.Equal(t, 0, offset)
	require.Equal(t, 0, ring.Cursor())
}

func TestUploadTooLarge(t *testing.T) {
	_, ring := readyRing(t, 1024)

	_, err := ring.Upload(make([]byte, 1025))
	require.True(t, errors.Is(err, ErrAllocationTooLarge))
	require.Equal(t, 0, ring.Cursor())
}

func TestZeroLengthUpload(t *testing.T) {
	_, ring := readyRing(t, 1024)

	_, err := ring.Upload(make([]byte, 10))
	require.NoError(t, err)

	offset, err := ring.Upload(nil)
	require.NoError(t, err)
	require.Equal(t, 256, offset)
	require.Equal(t, 256, ring.Cursor())
}

func TestUploadSlice(t *testing.T) {
	device, ring := readyRing(t, 1024)

	type constants struct {
		A uint32
		B uint32
	}

	_, err := ring.Upload([]byte{0xff})
	require.NoError(t, err)

	offset, err := UploadSlice(ring, []constants{{A: 0x01020304, B: 0x05060708}})
	require.NoError(t, err)
	require.Equal(t, 256, offset)

	mapped, err := device.BufferData(ring.Resource())
	require.NoError(t, err)
	// little-endian host
	require.Equal(t, []byte{4, 3, 2, 1, 8, 7, 6, 5}, mapped[256:264])
}

func TestAllocate(t *testing.T) {
	device, ring := readyRing(t, 1024)

	allocation, err := ring.Allocate(16)
	require.NoError(t, err)
	require.Equal(t, 0, allocation.Offset)
	require.Len(t, allocation.Data, 16)

	allocation.Data[3] = 7
	mapped, err := device.BufferData(ring.Resource())
	require.NoError(t, err)
	require.Equal(t, byte(7), mapped[3])

	address, err := device.GPUVirtualAddress(ring.Resource())
	require.NoError(t, err)
	require.Equal(t, address+256, ring.GPUVirtualAddress(256))
}

func TestNewRejectsUnalignedSize(t *testing.T) {
	device := soft.NewDevice(nil, soft.Options{Manual: true})

	_, err := New(nil, device, 1000)
	require.Error(t, err)
	_, err = New(nil, device, 0)
	require.Error(t, err)
	require.Zero(t, device.LiveResources())
}

func TestNewReleasesBufferWhenAddressFails(t *testing.T) {
	ctrl := gomock.NewController(t)

	resource := gpu.Handle{Index: 1, Generation: 1}
	buffer := mocks.EasyMockUploadBuffer(ctrl, resource, 1024)
	device := mocks.NewMockDevice(ctrl)

	device.EXPECT().CreateUploadBuffer(1024).Return(buffer, nil)
	device.EXPECT().GPUVirtualAddress(resource).Return(uint64(0), errors.New("device removed"))
	device.EXPECT().Release(resource).Return(nil)

	_, err := New(nil, device, 1024)
	require.ErrorContains(t, err, "device removed")
}

func TestDestroyReleasesBuffer(t *testing.T) {
	device, ring := readyRing(t, 1024)
	resource := ring.Resource()

	require.NoError(t, ring.Destroy())
	require.False(t, device.IsLive(resource))
	require.NoError(t, ring.Destroy())
}

func TestPrintJson(t *testing.T) {
	_, ring := readyRing(t, 1024)
	_, err := ring.Upload(make([]byte, 300))
	require.NoError(t, err)

	writer := jwriter.NewWriter()
	obj := writer.Object()
	ring.PrintJson(obj)
	obj.End()

	require.NoError(t, writer.Error())
	require.JSONEq(t, `{"Cursor":512,"Capacity":1024,"Allocations":1,"AllocationBytes":512,"Wraps":0,"DiscardedBytes":0,"AllocationSizeMin":512,"AllocationSizeMax":512}`, string(writer.Bytes()))
}
