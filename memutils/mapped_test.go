package memutils

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestMappedRegionWrite(t *testing.T) {
	backing := make([]byte, 16)
	region := NewMappedRegion(backing)

	require.NoError(t, region.Write(4, []byte{1, 2, 3}))
	require.Equal(t, []byte{0, 0, 0, 0, 1, 2, 3, 0}, backing[:8])

	require.NoError(t, region.Write(13, []byte{9, 9, 9}))
	require.Equal(t, byte(9), backing[15])
}

func TestMappedRegionWriteOutOfBounds(t *testing.T) {
	backing := make([]byte, 16)
	region := NewMappedRegion(backing)

	err := region.Write(14, []byte{1, 2, 3})
	require.True(t, errors.Is(err, ErrOutOfBounds))
	require.Equal(t, make([]byte, 16), backing)

	err = region.Write(-1, []byte{1})
	require.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestMappedRegionSlice(t *testing.T) {
	backing := make([]byte, 32)
	region := NewMappedRegion(backing)

	view, err := region.Slice(8, 8)
	require.NoError(t, err)
	require.Len(t, view, 8)
	require.Equal(t, 8, cap(view))

	view[0] = 0xff
	require.Equal(t, byte(0xff), backing[8])

	_, err = region.Slice(30, 4)
	require.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestMappedRegionValidate(t *testing.T) {
	require.Error(t, NewMappedRegion(nil).Validate())
	require.NoError(t, NewMappedRegion(make([]byte, 1)).Validate())
}
