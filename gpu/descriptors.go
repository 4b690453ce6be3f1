package gpu

import (
	"github.com/gogpu/gputypes"
)

type DescriptorHeapType int

const (
	DescriptorHeapCBVSRVUAV DescriptorHeapType = iota
	DescriptorHeapRenderTarget
	DescriptorHeapDepthStencil
)

func (t DescriptorHeapType) String() string {
	switch t {
	case DescriptorHeapCBVSRVUAV:
		return "CBVSRVUAV"
	case DescriptorHeapRenderTarget:
		return "RenderTarget"
	case DescriptorHeapDepthStencil:
		return "DepthStencil"
	}
	return "Unknown"
}

type DescriptorHeapDescriptor struct {
	Type          DescriptorHeapType
	Capacity      int
	ShaderVisible bool
}

// RootParameterKind is the kind of binding in one root signature slot
type RootParameterKind int

const (
	RootParameterCBV RootParameterKind = iota
	RootParameterCBVTable
	RootParameterSRV
	RootParameterSRVTable
	RootParameterUAV
	RootParameterUAVTable
)

func (k RootParameterKind) String() string {
	switch k {
	case RootParameterCBV:
		return "CBV"
	case RootParameterCBVTable:
		return "CBVTable"
	case RootParameterSRV:
		return "SRV"
	case RootParameterSRVTable:
		return "SRVTable"
	case RootParameterUAV:
		return "UAV"
	case RootParameterUAVTable:
		return "UAVTable"
	}
	return "Unknown"
}

// IsTable reports whether the parameter is bound through a single-entry descriptor table
// rather than directly as a root descriptor
func (k RootParameterKind) IsTable() bool {
	return k == RootParameterCBVTable || k == RootParameterSRVTable || k == RootParameterUAVTable
}

type RootParameter struct {
	Kind     RootParameterKind
	Register int
}

type StaticSampler struct {
	Register      int
	MinFilter     gputypes.FilterMode
	MagFilter     gputypes.FilterMode
	MipmapFilter  gputypes.FilterMode
	AddressModeU  gputypes.AddressMode
	AddressModeV  gputypes.AddressMode
	AddressModeW  gputypes.AddressMode
	MaxAnisotropy uint16
	// Compare is left zero for samplers that do not compare
	Compare gputypes.CompareFunction
	MinLOD  float32
	MaxLOD  float32
}

type RootSignatureDescriptor struct {
	Parameters     []RootParameter
	StaticSamplers []StaticSampler
	// AllowInputLayout permits pipelines using this signature to read vertex buffers through
	// the input assembler
	AllowInputLayout bool
}

// InputElement describes one vertex attribute read by the input assembler
type InputElement struct {
	SemanticName  string
	SemanticIndex int
	Format        gputypes.VertexFormat
	Slot          int
	Offset        int
}

type RasterizerState struct {
	CullMode             gputypes.CullMode
	FrontFace            gputypes.FrontFace
	DepthBias            int32
	SlopeScaledDepthBias float32
	DepthClip            bool
}

type DepthStencilState struct {
	DepthTest    bool
	DepthWrite   bool
	DepthCompare gputypes.CompareFunction
}

type PipelineStateDescriptor struct {
	RootSignature  Handle
	VertexShader   []byte
	PixelShader    []byte
	GeometryShader []byte
	InputLayout    []InputElement
	Topology       gputypes.PrimitiveTopology

	RenderTargetFormats []gputypes.TextureFormat
	DepthStencilFormat  gputypes.TextureFormat
	// Blend is nil for opaque output
	Blend        *gputypes.BlendState
	Rasterizer   RasterizerState
	DepthStencil DepthStencilState
	SampleMask   uint32
	SampleCount  int
}

type TextureUsage uint32

const (
	TextureUsageSampled TextureUsage = 1 << iota
	TextureUsageRenderTarget
	TextureUsageDepthStencil
	TextureUsageUnorderedAccess
)

type TextureDescriptor struct {
	Width     int
	Height    int
	MipLevels int
	Format    gputypes.TextureFormat
	Usage     TextureUsage
}

type ShaderResourceViewDescriptor struct {
	Format    gputypes.TextureFormat
	MipLevels int
}

type VertexBufferView struct {
	Address uint64
	Size    int
	Stride  int
}

type IndexBufferView struct {
	Address uint64
	Size    int
	Format  gputypes.IndexFormat
}

type Viewport struct {
	X, Y, Width, Height float32
	MinDepth, MaxDepth  float32
}

type Rect struct {
	Left, Top, Right, Bottom int
}

// TextureCopyLayout describes how texel rows are laid out in a buffer that is copied into a
// texture
type TextureCopyLayout struct {
	Offset   int
	RowPitch int
	Width    int
	Height   int
	Format   gputypes.TextureFormat
}
