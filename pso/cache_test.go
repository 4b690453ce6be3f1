package pso

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/gputypes"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/pacer/gpu"
	"github.com/vkngwrapper/pacer/gpu/mocks"
	"github.com/vkngwrapper/pacer/gpu/soft"
	"github.com/vkngwrapper/pacer/rootsig"
	"go.uber.org/mock/gomock"
)

var testLayout = NewVertexLayout(
	gpu.InputElement{SemanticName: "POSITION", Format: gputypes.VertexFormatFloat32x2, Slot: 0},
	gpu.InputElement{SemanticName: "TEXCOORD", Format: gputypes.VertexFormatFloat32x2, Slot: 1},
	gpu.InputElement{SemanticName: "COLOR", Format: gputypes.VertexFormatUnorm8x4, Slot: 2},
)

func setupCache(t *testing.T) (*soft.Device, *Cache, *Program, *rootsig.RootSignature) {
	device := soft.NewDevice(nil, soft.Options{Manual: true})
	registry := rootsig.NewRegistry(nil, device, true)
	signature, err := registry.GetOrCreate("Cs")
	require.NoError(t, err)

	program := NewProgram("imgui", []byte{1, 2, 3}, []byte{4, 5, 6}, nil)
	return device, NewCache(nil, device, true), program, signature
}

func TestParseBlendMode(t *testing.T) {
	require.Equal(t, BlendAlpha, ParseBlendMode("Alpha"))
	require.Equal(t, BlendAdditive, ParseBlendMode("Add"))
	require.Equal(t, BlendOpaque, ParseBlendMode(""))
	require.Equal(t, BlendOpaque, ParseBlendMode("alpha"))

	require.Nil(t, BlendOpaque.BlendState())

	alpha := BlendAlpha.BlendState()
	require.Equal(t, gputypes.BlendFactorSrcAlpha, alpha.Color.SrcFactor)
	require.Equal(t, gputypes.BlendFactorOneMinusSrcAlpha, alpha.Color.DstFactor)
	require.Equal(t, gputypes.BlendFactorOne, alpha.Alpha.SrcFactor)

	additive := BlendAdditive.BlendState()
	require.Equal(t, gputypes.BlendFactorOne, additive.Color.DstFactor)
	require.Equal(t, gputypes.BlendFactorOne, additive.Alpha.DstFactor)
}

func TestCacheReturnsSamePipelineForSameKey(t *testing.T) {
	device, cache, program, signature := setupCache(t)

	desc := DefaultDescription()
	desc.Blend = ParseBlendMode("Alpha")

	first, err := cache.GetOrCreate(desc, program, signature, testLayout)
	require.NoError(t, err)
	second, err := cache.GetOrCreate(desc, program, signature, testLayout)
	require.NoError(t, err)
	require.Equal(t, first, second)

	hits, misses := cache.Stats()
	require.Equal(t, uint64(1), hits)
	require.Equal(t, uint64(1), misses)
	require.Equal(t, 1, cache.Len())

	pipeline, err := device.PipelineState(first)
	require.NoError(t, err)
	require.Equal(t, signature.Handle(), pipeline.RootSignature)
	require.NotNil(t, pipeline.Blend)
}

func TestCacheSeparatesBlendModes(t *testing.T) {
	_, cache, program, signature := setupCache(t)

	desc := DefaultDescription()
	desc.Blend = ParseBlendMode("Alpha")
	alpha, err := cache.GetOrCreate(desc, program, signature, testLayout)
	require.NoError(t, err)

	desc.Blend = ParseBlendMode("Add")
	additive, err := cache.GetOrCreate(desc, program, signature, testLayout)
	require.NoError(t, err)

	require.NotEqual(t, alpha, additive)
	require.Equal(t, 2, cache.Len())
}

func TestCacheComparesLayoutsByContent(t *testing.T) {
	_, cache, program, signature := setupCache(t)

	copied := NewVertexLayout(testLayout.Elements()...)
	require.True(t, copied.Equal(testLayout))

	first, err := cache.GetOrCreate(DefaultDescription(), program, signature, testLayout)
	require.NoError(t, err)
	second, err := cache.GetOrCreate(DefaultDescription(), program, signature, copied)
	require.NoError(t, err)
	require.Equal(t, first, second)

	other := NewVertexLayout(gpu.InputElement{SemanticName: "POSITION", Format: gputypes.VertexFormatFloat32x3})
	third, err := cache.GetOrCreate(DefaultDescription(), program, signature, other)
	require.NoError(t, err)
	require.NotEqual(t, first, third)

	fourth, err := cache.GetOrCreate(DefaultDescription(), program, signature, nil)
	require.NoError(t, err)
	require.NotEqual(t, third, fourth)
	require.Equal(t, 3, cache.Len())
}

func TestCacheSeparatesLayoutsWithSeparatorsInNames(t *testing.T) {
	_, cache, program, signature := setupCache(t)

	pair := NewVertexLayout(
		gpu.InputElement{SemanticName: "X", Format: gputypes.VertexFormat(1)},
		gpu.InputElement{SemanticName: "Y", Format: gputypes.VertexFormat(1)},
	)
	single := NewVertexLayout(gpu.InputElement{SemanticName: "X/0/1/0/0;Y", Format: gputypes.VertexFormat(1)})
	require.False(t, pair.Equal(single))
	require.NotEqual(t, pair.Key(), single.Key())

	first, err := cache.GetOrCreate(DefaultDescription(), program, signature, pair)
	require.NoError(t, err)
	second, err := cache.GetOrCreate(DefaultDescription(), program, signature, single)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
	require.Equal(t, 2, cache.Len())
}

func TestCacheSeparatesProgramsWithSameBytecode(t *testing.T) {
	_, cache, program, signature := setupCache(t)
	twin := NewProgram("twin", program.vertexShader, program.pixelShader, nil)
	require.Equal(t, program.CodeHash(), twin.CodeHash())
	require.NotEqual(t, program.ID(), twin.ID())

	first, err := cache.GetOrCreate(DefaultDescription(), program, signature, testLayout)
	require.NoError(t, err)
	second, err := cache.GetOrCreate(DefaultDescription(), twin, signature, testLayout)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestCacheLogsProgramCodeHash(t *testing.T) {
	device, _, program, signature := setupCache(t)

	var output bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&output, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cache := NewCache(logger, device, true)

	_, err := cache.GetOrCreate(DefaultDescription(), program, signature, testLayout)
	require.NoError(t, err)

	var record struct {
		Msg      string
		CodeHash uint64
	}
	require.NoError(t, json.Unmarshal(output.Bytes(), &record))
	require.Equal(t, "PipelineCache::GetOrCreate", record.Msg)
	require.Equal(t, program.CodeHash(), record.CodeHash)
}

func TestBuildDescriptor(t *testing.T) {
	program := NewProgram("shadow", []byte{1}, []byte{2}, []byte{3})
	desc := Description{
		RenderTargetCount:    3,
		RenderTargetFormat:   gputypes.TextureFormatRGBA16Float,
		DepthStencilFormat:   gputypes.TextureFormatUndefined,
		Blend:                BlendOpaque,
		DepthBias:            4,
		SlopeScaledDepthBias: 1.5,
		CullMode:             gputypes.CullModeBack,
		Topology:             gputypes.PrimitiveTopologyLineList,
	}

	built := BuildDescriptor(desc, program, gpu.Handle{Index: 7, Generation: 1}, testLayout)
	require.Equal(t, []gputypes.TextureFormat{
		gputypes.TextureFormatRGBA16Float,
		gputypes.TextureFormatRGBA16Float,
		gputypes.TextureFormatRGBA16Float,
	}, built.RenderTargetFormats)
	require.Equal(t, uint32(math.MaxUint32), built.SampleMask)
	require.Equal(t, 1, built.SampleCount)
	require.Nil(t, built.Blend)
	require.Equal(t, gputypes.CullModeBack, built.Rasterizer.CullMode)
	require.Equal(t, int32(4), built.Rasterizer.DepthBias)
	require.Equal(t, float32(1.5), built.Rasterizer.SlopeScaledDepthBias)
	require.False(t, built.DepthStencil.DepthTest)
	require.Equal(t, []byte{3}, built.GeometryShader)
	require.Equal(t, gputypes.PrimitiveTopologyLineList, built.Topology)
	require.Len(t, built.InputLayout, 3)
}

func TestCacheRejectsInvalidRequests(t *testing.T) {
	_, cache, program, signature := setupCache(t)

	_, err := cache.GetOrCreate(DefaultDescription(), nil, signature, nil)
	require.Error(t, err)
	_, err = cache.GetOrCreate(DefaultDescription(), program, nil, nil)
	require.Error(t, err)

	desc := DefaultDescription()
	desc.RenderTargetCount = 9
	_, err = cache.GetOrCreate(desc, program, signature, nil)
	require.Error(t, err)
	require.Zero(t, cache.Len())
}

func TestCacheDoesNotCacheFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mocks.NewMockDevice(ctrl)

	rootSignature := gpu.Handle{Index: 1, Generation: 1}
	device.EXPECT().CreateRootSignature(gomock.Any()).Return(rootSignature, nil)
	signature, err := rootsig.NewRegistry(nil, device, false).GetOrCreate("C")
	require.NoError(t, err)

	cache := NewCache(nil, device, false)
	program := NewProgram("broken", []byte{1}, nil, nil)

	device.EXPECT().CreatePipelineState(gomock.Any()).Return(gpu.Handle{}, errors.New("bad bytecode"))
	_, err = cache.GetOrCreate(DefaultDescription(), program, signature, nil)
	require.True(t, errors.Is(err, ErrPipelineCreation))
	require.Contains(t, err.Error(), "bad bytecode")
	require.Zero(t, cache.Len())

	pipeline := gpu.Handle{Index: 2, Generation: 1}
	device.EXPECT().CreatePipelineState(gomock.Any()).Return(pipeline, nil)
	got, err := cache.GetOrCreate(DefaultDescription(), program, signature, nil)
	require.NoError(t, err)
	require.Equal(t, pipeline, got)
}

func TestCacheConcurrentLookupsCompileOnce(t *testing.T) {
	_, cache, program, signature := setupCache(t)

	var wg sync.WaitGroup
	results := make([]gpu.Handle, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pipeline, err := cache.GetOrCreate(DefaultDescription(), program, signature, testLayout)
			require.NoError(t, err)
			results[i] = pipeline
		}(i)
	}
	wg.Wait()

	for _, pipeline := range results {
		require.Equal(t, results[0], pipeline)
	}
	_, misses := cache.Stats()
	require.Equal(t, uint64(1), misses)
}

func TestCacheDestroyReleasesPipelines(t *testing.T) {
	device, cache, program, signature := setupCache(t)

	desc := DefaultDescription()
	first, err := cache.GetOrCreate(desc, program, signature, testLayout)
	require.NoError(t, err)
	desc.Blend = BlendAlpha
	second, err := cache.GetOrCreate(desc, program, signature, testLayout)
	require.NoError(t, err)

	require.NoError(t, cache.Destroy())
	require.False(t, device.IsLive(first))
	require.False(t, device.IsLive(second))
	require.Zero(t, cache.Len())
}

func TestCachePrintJson(t *testing.T) {
	_, cache, program, signature := setupCache(t)
	_, err := cache.GetOrCreate(DefaultDescription(), program, signature, nil)
	require.NoError(t, err)

	writer := jwriter.NewWriter()
	obj := writer.Object()
	cache.PrintJson(obj)
	obj.End()

	require.JSONEq(t, `{"Pipelines":1,"Hits":0,"Misses":1}`, string(writer.Bytes()))
}
