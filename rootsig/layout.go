package rootsig

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/gputypes"
	"github.com/vkngwrapper/pacer/gpu"
)

// ErrUnknownLayoutCode is returned when a layout code contains a character outside CcSsUu
var ErrUnknownLayoutCode = errors.New("unknown root signature layout code")

// StaticSamplerCount is the number of samplers attached to every root signature, at sampler
// registers 0 through StaticSamplerCount-1
const StaticSamplerCount = 4

// ParseLayoutCode turns a layout code into root parameters. Each character is one parameter, in
// order:
//
//	C  constant buffer view, bound directly
//	c  constant buffer view, bound through a descriptor table
//	S  shader resource view, bound directly
//	s  shader resource view, bound through a descriptor table
//	U  unordered access view, bound directly
//	u  unordered access view, bound through a descriptor table
//
// Registers are assigned per view type in order of appearance, shared between the direct and
// table forms, so "CcS" binds b0, b1 and t0.
func ParseLayoutCode(code string) ([]gpu.RootParameter, error) {
	parameters := make([]gpu.RootParameter, 0, len(code))
	var cbvCount, srvCount, uavCount int

	for i, c := range code {
		var kind gpu.RootParameterKind
		var register *int

		switch c {
		case 'C':
			kind, register = gpu.RootParameterCBV, &cbvCount
		case 'c':
			kind, register = gpu.RootParameterCBVTable, &cbvCount
		case 'S':
			kind, register = gpu.RootParameterSRV, &srvCount
		case 's':
			kind, register = gpu.RootParameterSRVTable, &srvCount
		case 'U':
			kind, register = gpu.RootParameterUAV, &uavCount
		case 'u':
			kind, register = gpu.RootParameterUAVTable, &uavCount
		default:
			return nil, errors.Wrapf(ErrUnknownLayoutCode, "character %q at position %d of %q", c, i, code)
		}

		parameters = append(parameters, gpu.RootParameter{Kind: kind, Register: *register})
		*register++
	}

	return parameters, nil
}

// StaticSamplers returns the samplers attached to every root signature: linear clamp at s0,
// 16x anisotropic clamp at s1, a less-than comparison sampler for shadow maps at s2, and point
// clamp at s3
func StaticSamplers() []gpu.StaticSampler {
	linear := gpu.StaticSampler{
		MinFilter:    gputypes.FilterModeLinear,
		MagFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MinLOD:       0,
		MaxLOD:       math.MaxFloat32,
	}

	samplers := []gpu.StaticSampler{linear, linear, linear, linear}
	for i := range samplers {
		samplers[i].Register = i
	}

	samplers[1].MaxAnisotropy = 16

	samplers[2].Compare = gputypes.CompareFunctionLess

	samplers[3].MinFilter = gputypes.FilterModeNearest
	samplers[3].MagFilter = gputypes.FilterModeNearest
	samplers[3].MipmapFilter = gputypes.FilterModeNearest

	return samplers
}
