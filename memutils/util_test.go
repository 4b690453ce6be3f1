package memutils

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestAlignUp(t *testing.T) {
	require.Equal(t, 0, AlignUp(0, 256))
	require.Equal(t, 256, AlignUp(1, 256))
	require.Equal(t, 256, AlignUp(256, 256))
	require.Equal(t, 512, AlignUp(300, 256))
	require.Equal(t, uint64(1024), AlignUp(uint64(769), 256))
}

func TestAlignUpAlwaysMultipleOfConstantAlignment(t *testing.T) {
	alignment := int(ConstantBufferAlignment)
	for size := 0; size < 4096; size += 7 {
		aligned := AlignUp(size, alignment)
		require.True(t, IsAligned(aligned, alignment))
		require.GreaterOrEqual(t, aligned, size)
		require.Less(t, aligned-size, alignment)
	}
}

func TestCheckPow2(t *testing.T) {
	require.NoError(t, CheckPow2(256, "alignment"))
	require.NoError(t, CheckPow2(uint(1), "alignment"))

	err := CheckPow2(300, "alignment")
	require.Error(t, err)
	require.True(t, errors.Is(err, PowerOfTwoError))
	require.Contains(t, err.Error(), "alignment is 300")
}
