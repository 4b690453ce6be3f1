package frame

import (
	"github.com/cockroachdb/errors"
	"github.com/gogpu/gputypes"
	"github.com/vkngwrapper/pacer/gpu"
	"github.com/vkngwrapper/pacer/pso"
)

// Texture is a 2D texture together with the state it was last transitioned to. Render
// textures also own a single-slot view heap, so their views never expire.
type Texture struct {
	desc     gpu.TextureDescriptor
	resource gpu.Handle
	state    gpu.ResourceState

	viewHeap gpu.DescriptorHeap
	view     gpu.CPUDescriptorHandle
}

// NewTexture describes a texture whose GPU resource is created by its first upload
func NewTexture(width, height int, format gputypes.TextureFormat) *Texture {
	return &Texture{
		desc: gpu.TextureDescriptor{
			Width:     width,
			Height:    height,
			MipLevels: 1,
			Format:    format,
			Usage:     gpu.TextureUsageSampled,
		},
		state: gpu.ResourceStateCommon,
	}
}

func (t *Texture) Width() int {
	return t.desc.Width
}

func (t *Texture) Height() int {
	return t.desc.Height
}

func (t *Texture) Format() gputypes.TextureFormat {
	return t.desc.Format
}

func (t *Texture) Resource() gpu.Handle {
	return t.resource
}

func (t *Texture) State() gpu.ResourceState {
	return t.state
}

// IsDepth reports whether the texture is a depth stencil target
func (t *Texture) IsDepth() bool {
	return t.desc.Usage&gpu.TextureUsageDepthStencil != 0
}

// Destroy hands the texture's resource to the context's destruction queue
func (t *Texture) Destroy(g *Graphics) error {
	err := g.DestroyResource(t.resource)
	t.resource = gpu.Handle{}

	if t.viewHeap != nil {
		// Views are consumed at record time, so the heap may go right away
		t.viewHeap.Destroy()
		t.viewHeap = nil
	}
	return err
}

type vertexBuffer struct {
	resource gpu.Handle
	size     int
	stride   int
}

// Mesh is a set of per-slot vertex buffers and an index buffer drawn with one vertex layout
type Mesh struct {
	layout *pso.VertexLayout

	vertices    []vertexBuffer
	indices     gpu.Handle
	indexSize   int
	indexFormat gputypes.IndexFormat
	indexCount  int
}

func NewMesh(layout *pso.VertexLayout) *Mesh {
	return &Mesh{layout: layout}
}

// DefaultVertexLayout is the layout of GUI geometry: position, texture coordinate, and
// packed color, each in its own vertex buffer slot
func DefaultVertexLayout() *pso.VertexLayout {
	return pso.NewVertexLayout(
		gpu.InputElement{SemanticName: "POSITION", Format: gputypes.VertexFormatFloat32x2, Slot: 0},
		gpu.InputElement{SemanticName: "TEXCOORD", Format: gputypes.VertexFormatFloat32x2, Slot: 1},
		gpu.InputElement{SemanticName: "COLOR", Format: gputypes.VertexFormatUnorm8x4, Slot: 2},
	)
}

func (m *Mesh) Layout() *pso.VertexLayout {
	return m.layout
}

// IndexCount returns the number of indices in the index buffer
func (m *Mesh) IndexCount() int {
	return m.indexCount
}

// VertexBuffer returns the buffer bound at slot, or a nil handle
func (m *Mesh) VertexBuffer(slot int) gpu.Handle {
	if slot < 0 || slot >= len(m.vertices) {
		return gpu.Handle{}
	}
	return m.vertices[slot].resource
}

func (m *Mesh) IndexBuffer() gpu.Handle {
	return m.indices
}

// Destroy hands every buffer of the mesh to the context's destruction queue
func (m *Mesh) Destroy(g *Graphics) error {
	var err error
	for i := range m.vertices {
		err = errors.CombineErrors(err, g.DestroyResource(m.vertices[i].resource))
	}
	m.vertices = nil

	err = errors.CombineErrors(err, g.DestroyResource(m.indices))
	m.indices = gpu.Handle{}
	m.indexCount = 0
	m.indexSize = 0
	return err
}
