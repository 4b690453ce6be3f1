package memutils

import (
	cerrors "github.com/cockroachdb/errors"
)

// MappedRegion is a bounds-checked view over host-visible memory that stays mapped for the
// lifetime of the resource that owns it. Every access is checked against the size of the
// mapping, so a bad offset produces an error instead of a write past the end.
type MappedRegion struct {
	data []byte
}

func NewMappedRegion(data []byte) *MappedRegion {
	return &MappedRegion{data: data}
}

func (r *MappedRegion) Size() int {
	return len(r.data)
}

func (r *MappedRegion) checkRange(offset, size int) error {
	if offset < 0 || size < 0 || offset+size > len(r.data) {
		return cerrors.Wrapf(ErrOutOfBounds, "offset %d size %d in region of size %d", offset, size, len(r.data))
	}
	return nil
}

// Write copies src into the region starting at offset
func (r *MappedRegion) Write(offset int, src []byte) error {
	err := r.checkRange(offset, len(src))
	if err != nil {
		return err
	}

	copy(r.data[offset:], src)
	return nil
}

// Slice returns a writable view of size bytes starting at offset. The view aliases the mapping.
func (r *MappedRegion) Slice(offset, size int) ([]byte, error) {
	err := r.checkRange(offset, size)
	if err != nil {
		return nil, err
	}

	return r.data[offset : offset+size : offset+size], nil
}

// Validate checks that the region is backed by memory
func (r *MappedRegion) Validate() error {
	if r.data == nil {
		return cerrors.New("mapped region has no backing memory")
	}
	return nil
}
