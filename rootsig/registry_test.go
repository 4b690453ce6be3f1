package rootsig

import (
	"math"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/pacer/gpu"
	"github.com/vkngwrapper/pacer/gpu/mocks"
	"github.com/vkngwrapper/pacer/gpu/soft"
	"go.uber.org/mock/gomock"
)

func TestParseLayoutCodeRegistersPerKind(t *testing.T) {
	parameters, err := ParseLayoutCode("CSU")
	require.NoError(t, err)
	require.Equal(t, []gpu.RootParameter{
		{Kind: gpu.RootParameterCBV, Register: 0},
		{Kind: gpu.RootParameterSRV, Register: 0},
		{Kind: gpu.RootParameterUAV, Register: 0},
	}, parameters)
}

func TestParseLayoutCodeTables(t *testing.T) {
	parameters, err := ParseLayoutCode("Cssss")
	require.NoError(t, err)
	require.Equal(t, []gpu.RootParameter{
		{Kind: gpu.RootParameterCBV, Register: 0},
		{Kind: gpu.RootParameterSRVTable, Register: 0},
		{Kind: gpu.RootParameterSRVTable, Register: 1},
		{Kind: gpu.RootParameterSRVTable, Register: 2},
		{Kind: gpu.RootParameterSRVTable, Register: 3},
	}, parameters)
}

func TestParseLayoutCodeSharesCounterAcrossForms(t *testing.T) {
	parameters, err := ParseLayoutCode("CcSsuU")
	require.NoError(t, err)

	registers := make([]int, 0, len(parameters))
	for _, parameter := range parameters {
		registers = append(registers, parameter.Register)
	}
	require.Equal(t, []int{0, 1, 0, 1, 0, 1}, registers)
}

func TestParseLayoutCodeUnknownCharacter(t *testing.T) {
	_, err := ParseLayoutCode("CSx")
	require.True(t, errors.Is(err, ErrUnknownLayoutCode))
	require.Contains(t, err.Error(), "position 2")
}

func TestParseEmptyLayoutCode(t *testing.T) {
	parameters, err := ParseLayoutCode("")
	require.NoError(t, err)
	require.Empty(t, parameters)
}

func TestStaticSamplers(t *testing.T) {
	samplers := StaticSamplers()
	require.Len(t, samplers, StaticSamplerCount)

	for i, sampler := range samplers {
		require.Equal(t, i, sampler.Register)
		require.Equal(t, gputypes.AddressModeClampToEdge, sampler.AddressModeU)
		require.Equal(t, gputypes.AddressModeClampToEdge, sampler.AddressModeW)
		require.Equal(t, float32(math.MaxFloat32), sampler.MaxLOD)
	}

	require.Equal(t, gputypes.FilterModeLinear, samplers[0].MinFilter)
	require.Zero(t, samplers[0].MaxAnisotropy)
	require.Equal(t, uint16(16), samplers[1].MaxAnisotropy)
	require.Equal(t, gputypes.CompareFunctionLess, samplers[2].Compare)
	require.Equal(t, gputypes.FilterModeNearest, samplers[3].MagFilter)
}

func TestRegistryCachesByCode(t *testing.T) {
	device := soft.NewDevice(nil, soft.Options{Manual: true})
	registry := NewRegistry(nil, device, true)

	first, err := registry.GetOrCreate("Cs")
	require.NoError(t, err)
	second, err := registry.GetOrCreate("Cs")
	require.NoError(t, err)
	require.Same(t, first, second)

	other, err := registry.GetOrCreate("CC")
	require.NoError(t, err)
	require.NotEqual(t, first.Handle(), other.Handle())
	require.Equal(t, 2, registry.Len())
	require.Equal(t, 2, device.LiveResources())

	desc, err := device.RootSignature(first.Handle())
	require.NoError(t, err)
	require.True(t, desc.AllowInputLayout)
	require.Len(t, desc.StaticSamplers, StaticSamplerCount)
	require.Equal(t, first.Parameters(), desc.Parameters)
}

func TestRegistryInvalidCodeCreatesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mocks.NewMockDevice(ctrl)
	registry := NewRegistry(nil, device, false)

	_, err := registry.GetOrCreate("CQ")
	require.True(t, errors.Is(err, ErrUnknownLayoutCode))
	require.Equal(t, 0, registry.Len())
}

func TestRegistryCreationFailureIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mocks.NewMockDevice(ctrl)
	registry := NewRegistry(nil, device, false)

	handle := gpu.Handle{Index: 4, Generation: 1}
	gomock.InOrder(
		device.EXPECT().CreateRootSignature(gomock.Any()).Return(gpu.Handle{}, errors.New("invalid arg")),
		device.EXPECT().CreateRootSignature(gomock.Any()).Return(handle, nil),
	)

	_, err := registry.GetOrCreate("C")
	require.ErrorContains(t, err, "invalid arg")
	require.Equal(t, 0, registry.Len())

	signature, err := registry.GetOrCreate("C")
	require.NoError(t, err)
	require.Equal(t, handle, signature.Handle())
}

func TestRootSignatureRegisterLookups(t *testing.T) {
	device := soft.NewDevice(nil, soft.Options{Manual: true})
	registry := NewRegistry(nil, device, false)

	signature, err := registry.GetOrCreate("CsCsu")
	require.NoError(t, err)

	index, err := signature.ConstantBufferParameter(1)
	require.NoError(t, err)
	require.Equal(t, 2, index)

	index, err = signature.ShaderResourceParameter(1)
	require.NoError(t, err)
	require.Equal(t, 3, index)

	index, err = signature.UnorderedAccessParameter(0)
	require.NoError(t, err)
	require.Equal(t, 4, index)

	_, err = signature.ShaderResourceParameter(2)
	require.Error(t, err)
	_, err = signature.UnorderedAccessParameter(-1)
	require.Error(t, err)
}

func TestRegistryConcurrentGetOrCreate(t *testing.T) {
	device := soft.NewDevice(nil, soft.Options{Manual: true})
	registry := NewRegistry(nil, device, true)

	var wg sync.WaitGroup
	results := make([]*RootSignature, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			signature, err := registry.GetOrCreate("CCs")
			if err == nil {
				results[i] = signature
			}
		}(i)
	}
	wg.Wait()

	for _, signature := range results {
		require.Same(t, results[0], signature)
	}
	require.Equal(t, 1, device.LiveResources())
}

func TestRegistryDestroy(t *testing.T) {
	device := soft.NewDevice(nil, soft.Options{Manual: true})
	registry := NewRegistry(nil, device, false)

	_, err := registry.GetOrCreate("C")
	require.NoError(t, err)
	_, err = registry.GetOrCreate("s")
	require.NoError(t, err)

	require.NoError(t, registry.Destroy())
	require.Equal(t, 0, registry.Len())
	require.Equal(t, 0, device.LiveResources())
}
