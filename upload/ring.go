// Package upload implements the transient upload ring: a bump allocator over one persistently
// mapped, host-visible buffer. Per-frame constant data and staging copies are written into the
// ring and read by the GPU through the buffer's virtual address. Allocations are never freed
// individually; the cursor wraps to the start when an allocation would run past the end, and
// data from earlier frames is simply overwritten.
package upload

import (
	"context"
	"log/slog"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/pacer/gpu"
	"github.com/vkngwrapper/pacer/memutils"
)

// DefaultSize is the ring capacity used when none is configured: 64 MiB
const DefaultSize int = 64 * 1024 * 1024

// ErrAllocationTooLarge is returned when a single allocation is larger than the whole ring
var ErrAllocationTooLarge = errors.New("allocation is larger than the upload ring")

// Allocation is a range of the ring. Data aliases the mapped memory and must not be retained
// after the ring cursor wraps over it.
type Allocation struct {
	Offset int
	Size   int
	Data   []byte
}

// Ring is the transient upload allocator. It is not safe for concurrent use: it is driven from
// the goroutine that records the frame.
type Ring struct {
	logger *slog.Logger
	device gpu.Device

	buffer      gpu.UploadBuffer
	region      *memutils.MappedRegion
	baseAddress uint64
	size        int
	cursor      int

	stats memutils.RingStatistics
}

// New creates an upload buffer of size bytes on device and maps it for the lifetime of the ring
func New(logger *slog.Logger, device gpu.Device, size int) (*Ring, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if size <= 0 {
		return nil, errors.Newf("upload ring size must be positive, but was %d", size)
	}
	if !memutils.IsAligned(size, int(memutils.ConstantBufferAlignment)) {
		return nil, errors.Newf("upload ring size %d is not a multiple of %d", size, memutils.ConstantBufferAlignment)
	}

	buffer, err := device.CreateUploadBuffer(size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create a %d byte upload buffer", size)
	}

	address, err := device.GPUVirtualAddress(buffer.Resource())
	if err != nil {
		releaseErr := device.Release(buffer.Resource())
		return nil, errors.CombineErrors(errors.Wrap(err, "failed to query the upload buffer address"), releaseErr)
	}

	mapped := buffer.Mapped()
	if len(mapped) < size {
		releaseErr := device.Release(buffer.Resource())
		return nil, errors.CombineErrors(errors.Newf("upload buffer mapping is %d bytes, expected %d", len(mapped), size), releaseErr)
	}

	ring := &Ring{
		logger:      logger,
		device:      device,
		buffer:      buffer,
		region:      memutils.NewMappedRegion(mapped[:size]),
		baseAddress: address,
		size:        size,
	}
	ring.stats.Clear()
	ring.stats.Capacity = size

	logger.LogAttrs(context.Background(), slog.LevelDebug, "UploadRing::New", slog.Int("Size", size), slog.Uint64("Address", address))
	return ring, nil
}

// reserve moves the cursor past size bytes and returns where they start. The tail of the ring is
// discarded when the aligned size does not fit in it.
func (r *Ring) reserve(size int) (int, int, error) {
	if size < 0 {
		return 0, 0, errors.Newf("allocation size must not be negative, but was %d", size)
	}

	aligned := memutils.AlignUp(size, int(memutils.ConstantBufferAlignment))
	if aligned > r.size {
		return 0, 0, errors.Wrapf(ErrAllocationTooLarge, "%d bytes (%d aligned) requested from a %d byte ring", size, aligned, r.size)
	}

	if r.cursor+aligned > r.size {
		r.logger.LogAttrs(context.Background(), slog.LevelDebug, "UploadRing::wrap",
			slog.Int("Cursor", r.cursor),
			slog.Int("Discarded", r.size-r.cursor),
		)
		r.stats.AddWrap(r.size - r.cursor)
		r.cursor = 0
	}

	offset := r.cursor
	r.cursor = (offset + aligned) % r.size
	r.stats.AddAllocation(aligned)

	memutils.DebugValidate(r)
	return offset, aligned, nil
}

// Upload copies data into the ring and returns the offset it was written at. The offset is a
// multiple of 256.
func (r *Ring) Upload(data []byte) (int, error) {
	offset, _, err := r.reserve(len(data))
	if err != nil {
		return 0, err
	}

	err = r.region.Write(offset, data)
	if err != nil {
		return 0, err
	}

	return offset, nil
}

// Allocate reserves size bytes and returns a writable view of them
func (r *Ring) Allocate(size int) (Allocation, error) {
	offset, _, err := r.reserve(size)
	if err != nil {
		return Allocation{}, err
	}

	data, err := r.region.Slice(offset, size)
	if err != nil {
		return Allocation{}, err
	}

	return Allocation{Offset: offset, Size: size, Data: data}, nil
}

// UploadSlice copies the memory of data into the ring. T must be a plain value type with no
// pointers, such as a vertex or constant buffer struct.
func UploadSlice[T any](r *Ring, data []T) (int, error) {
	if len(data) == 0 {
		return r.Upload(nil)
	}

	var zero T
	size := len(data) * int(unsafe.Sizeof(zero))
	bytes := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(data))), size)
	return r.Upload(bytes)
}

// GPUVirtualAddress returns the address shaders use to read the ring at offset
func (r *Ring) GPUVirtualAddress(offset int) uint64 {
	return r.baseAddress + uint64(offset)
}

// Resource returns the handle of the buffer behind the ring
func (r *Ring) Resource() gpu.Handle {
	return r.buffer.Resource()
}

func (r *Ring) Size() int {
	return r.size
}

// Cursor returns the offset the next allocation will start at, if it fits
func (r *Ring) Cursor() int {
	return r.cursor
}

// Statistics adds the ring's counters to stats
func (r *Ring) Statistics(stats *memutils.RingStatistics) {
	stats.AddRingStatistics(&r.stats)
}

// PrintJson populates a json object with the ring's state
func (r *Ring) PrintJson(json jwriter.ObjectState) {
	json.Name("Cursor").Int(r.cursor)
	r.stats.PrintJson(json)
}

func (r *Ring) Validate() error {
	if r.cursor < 0 || r.cursor >= r.size {
		return errors.Newf("upload ring cursor %d is outside [0, %d)", r.cursor, r.size)
	}
	if !memutils.IsAligned(r.cursor, int(memutils.ConstantBufferAlignment)) {
		return errors.Newf("upload ring cursor %d is not aligned to %d", r.cursor, memutils.ConstantBufferAlignment)
	}
	return r.region.Validate()
}

// Destroy releases the upload buffer immediately. The GPU must be idle.
func (r *Ring) Destroy() error {
	if r.buffer == nil {
		return nil
	}

	err := r.device.Release(r.buffer.Resource())
	r.buffer = nil
	return err
}
