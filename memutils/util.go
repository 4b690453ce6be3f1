package memutils

import (
	cerrors "github.com/cockroachdb/errors"
)

// ConstantBufferAlignment is the placement alignment required for constant data read by shaders
// through a root constant buffer view
const ConstantBufferAlignment uint = 256

type Number interface {
	~int | ~uint | ~int32 | ~uint32 | ~int64 | ~uint64
}

func CheckPow2[T Number](number T, name string) error {
	if number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

// AlignUp rounds value up to the next multiple of alignment, which must be a power of two
func AlignUp[T Number](value T, alignment T) T {
	return (value + alignment - 1) &^ (alignment - 1)
}

func IsAligned[T Number](value T, alignment T) bool {
	return value&(alignment-1) == 0
}
