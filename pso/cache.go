// Package pso compiles graphics pipeline state objects on demand and caches them by their full
// structural description
package pso

import (
	"log/slog"
	"math"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/gogpu/gputypes"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/pacer/gpu"
	"github.com/vkngwrapper/pacer/internal/utils"
	"github.com/vkngwrapper/pacer/rootsig"
)

// ErrPipelineCreation marks errors returned when the device fails to compile a pipeline
var ErrPipelineCreation = errors.New("pipeline state creation failed")

// Description is the part of a pipeline's state chosen by the material being drawn
type Description struct {
	RenderTargetCount    int
	RenderTargetFormat   gputypes.TextureFormat
	DepthStencilFormat   gputypes.TextureFormat
	Blend                BlendMode
	DepthBias            int32
	SlopeScaledDepthBias float32
	CullMode             gputypes.CullMode
	Topology             gputypes.PrimitiveTopology
}

// DefaultDescription renders opaque triangles into one RGBA8 target with a depth stencil buffer
func DefaultDescription() Description {
	return Description{
		RenderTargetCount:  1,
		RenderTargetFormat: gputypes.TextureFormatRGBA8Unorm,
		DepthStencilFormat: gputypes.TextureFormatDepth24PlusStencil8,
		Blend:              BlendOpaque,
		CullMode:           gputypes.CullModeNone,
		Topology:           gputypes.PrimitiveTopologyTriangleList,
	}
}

// Key identifies one cached pipeline
type Key struct {
	Description
	Program       uint64
	RootSignature gpu.Handle
	VertexLayout  string
}

// BuildDescriptor expands a description into the full pipeline state the device compiles
func BuildDescriptor(desc Description, program *Program, rootSignature gpu.Handle, layout *VertexLayout) *gpu.PipelineStateDescriptor {
	formats := make([]gputypes.TextureFormat, desc.RenderTargetCount)
	for i := range formats {
		formats[i] = desc.RenderTargetFormat
	}

	hasDepth := desc.DepthStencilFormat != gputypes.TextureFormatUndefined

	return &gpu.PipelineStateDescriptor{
		RootSignature:       rootSignature,
		VertexShader:        program.vertexShader,
		PixelShader:         program.pixelShader,
		GeometryShader:      program.geometryShader,
		InputLayout:         layout.Elements(),
		Topology:            desc.Topology,
		RenderTargetFormats: formats,
		DepthStencilFormat:  desc.DepthStencilFormat,
		Blend:               desc.Blend.BlendState(),
		Rasterizer: gpu.RasterizerState{
			CullMode:             desc.CullMode,
			FrontFace:            gputypes.FrontFaceCCW,
			DepthBias:            desc.DepthBias,
			SlopeScaledDepthBias: desc.SlopeScaledDepthBias,
			DepthClip:            true,
		},
		DepthStencil: gpu.DepthStencilState{
			DepthTest:    hasDepth,
			DepthWrite:   hasDepth,
			DepthCompare: gputypes.CompareFunctionLess,
		},
		SampleMask:  math.MaxUint32,
		SampleCount: 1,
	}
}

// Cache compiles each distinct pipeline once. Entries are never evicted; the cache grows with
// the number of distinct keys requested.
type Cache struct {
	logger *slog.Logger
	device gpu.Device

	mutex     utils.OptionalRWMutex
	pipelines *swiss.Map[Key, gpu.Handle]

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache creates an empty cache. When useMutex is false the caller must serialize every call.
func NewCache(logger *slog.Logger, device gpu.Device, useMutex bool) *Cache {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Cache{
		logger:    logger,
		device:    device,
		mutex:     utils.OptionalRWMutex{UseMutex: useMutex},
		pipelines: swiss.NewMap[Key, gpu.Handle](42),
	}
}

// GetOrCreate returns the pipeline for the given state, compiling it if no pipeline with an
// identical key exists. layout may be nil for pipelines that read no vertex buffers.
func (c *Cache) GetOrCreate(desc Description, program *Program, rootSignature *rootsig.RootSignature, layout *VertexLayout) (gpu.Handle, error) {
	if program == nil {
		return gpu.Handle{}, errors.New("pipeline requested without a shader program")
	}
	if rootSignature == nil {
		return gpu.Handle{}, errors.New("pipeline requested without a root signature")
	}
	if desc.RenderTargetCount < 0 || desc.RenderTargetCount > 8 {
		return gpu.Handle{}, errors.Newf("render target count %d is outside [0, 8]", desc.RenderTargetCount)
	}

	key := Key{
		Description:   desc,
		Program:       program.id,
		RootSignature: rootSignature.Handle(),
		VertexLayout:  layout.Key(),
	}

	c.mutex.RLock()
	pipeline, ok := c.pipelines.Get(key)
	c.mutex.RUnlock()
	if ok {
		c.hits.Add(1)
		return pipeline, nil
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	pipeline, ok = c.pipelines.Get(key)
	if ok {
		c.hits.Add(1)
		return pipeline, nil
	}

	pipeline, err := c.device.CreatePipelineState(BuildDescriptor(desc, program, rootSignature.Handle(), layout))
	if err != nil {
		return gpu.Handle{}, errors.Wrapf(errors.Mark(err, ErrPipelineCreation),
			"failed to compile pipeline for program %q with root signature %q", program.name, rootSignature.Code())
	}

	c.pipelines.Put(key, pipeline)
	c.misses.Add(1)

	c.logger.Debug("PipelineCache::GetOrCreate",
		slog.String("Program", program.name),
		slog.Uint64("CodeHash", program.codeHash),
		slog.String("RootSignature", rootSignature.Code()),
		slog.String("Blend", desc.Blend.String()),
		slog.Int("Count", c.pipelines.Count()),
	)
	return pipeline, nil
}

func (c *Cache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.pipelines.Count()
}

// Stats returns the number of lookups served from the cache and the number that compiled a
// new pipeline
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// PrintJson populates a json object with the cache's counters
func (c *Cache) PrintJson(json jwriter.ObjectState) {
	hits, misses := c.Stats()
	json.Name("Pipelines").Int(c.Len())
	json.Name("Hits").Int(int(hits))
	json.Name("Misses").Int(int(misses))
}

// Destroy releases every cached pipeline immediately. No command list that uses them may still
// be executing.
func (c *Cache) Destroy() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	var err error
	c.pipelines.Iter(func(key Key, pipeline gpu.Handle) bool {
		err = errors.CombineErrors(err, c.device.Release(pipeline))
		return false
	})
	c.pipelines.Clear()

	return err
}
