package frame

import (
	"github.com/cockroachdb/errors"
	"github.com/gogpu/gputypes"
	"github.com/vkngwrapper/pacer/gpu"
	"github.com/vkngwrapper/pacer/memutils"
	"github.com/vkngwrapper/pacer/pso"
	"github.com/vkngwrapper/pacer/rootsig"
)

// CommandContext records a frame's commands. It tracks the bound root signature, program,
// pipeline description, and vertex layout, and resolves the pipeline only when a draw needs
// it. The context returned by BeginFrame is valid until the frame is submitted.
type CommandContext struct {
	graphics *Graphics
	list     gpu.CommandList

	rootSignature *rootsig.RootSignature
	program       *pso.Program
	desc          pso.Description
	layout        *pso.VertexLayout
	pipeline      gpu.Handle
}

func (c *CommandContext) reset() {
	c.rootSignature = nil
	c.program = nil
	c.desc = pso.DefaultDescription()
	c.layout = nil
	c.pipeline = gpu.Handle{}
}

// CommandList returns the list being recorded, for commands the context does not wrap
func (c *CommandContext) CommandList() gpu.CommandList {
	return c.list
}

// SetRootSignature binds the root signature for a layout code, creating it on first use
func (c *CommandContext) SetRootSignature(code string) error {
	rootSignature, err := c.graphics.RootSignature(code)
	if err != nil {
		return err
	}

	if c.rootSignature != rootSignature {
		c.rootSignature = rootSignature
		c.pipeline = gpu.Handle{}
		c.list.SetGraphicsRootSignature(rootSignature.Handle())
	}
	return nil
}

// SetPipelineState selects the program and description the next draws compile against. The
// render target formats of the description are replaced by those of the bound targets.
func (c *CommandContext) SetPipelineState(program *pso.Program, desc pso.Description) {
	desc.RenderTargetCount = c.desc.RenderTargetCount
	desc.RenderTargetFormat = c.desc.RenderTargetFormat
	desc.DepthStencilFormat = c.desc.DepthStencilFormat

	if c.program != program || c.desc != desc {
		c.pipeline = gpu.Handle{}
	}
	c.program = program
	c.desc = desc
}

// Description returns the pipeline description the next draw will use
func (c *CommandContext) Description() pso.Description {
	return c.desc
}

// SetMesh binds a mesh's vertex and index buffers and selects its vertex layout
func (c *CommandContext) SetMesh(mesh *Mesh) error {
	if mesh.indices.IsNil() {
		return errors.New("mesh has no index buffer")
	}

	c.list.SetPrimitiveTopology(c.desc.Topology)

	views := make([]gpu.VertexBufferView, 0, len(mesh.vertices))
	for slot, buffer := range mesh.vertices {
		address, err := c.graphics.device.GPUVirtualAddress(buffer.resource)
		if err != nil {
			return errors.Wrapf(err, "vertex buffer in slot %d", slot)
		}
		views = append(views, gpu.VertexBufferView{Address: address, Size: buffer.size, Stride: buffer.stride})
	}
	c.list.SetVertexBuffers(0, views...)

	address, err := c.graphics.device.GPUVirtualAddress(mesh.indices)
	if err != nil {
		return errors.Wrap(err, "index buffer")
	}
	c.list.SetIndexBuffer(gpu.IndexBufferView{Address: address, Size: mesh.indexSize, Format: mesh.indexFormat})

	if !c.layout.Equal(mesh.layout) {
		c.pipeline = gpu.Handle{}
	}
	c.layout = mesh.layout
	return nil
}

// SetConstantBuffer binds constants previously uploaded at offset in the upload ring to the
// constant buffer register
func (c *CommandContext) SetConstantBuffer(offset int, register int) error {
	if c.rootSignature == nil {
		return errors.New("SetConstantBuffer called without a root signature")
	}

	parameter, err := c.rootSignature.ConstantBufferParameter(register)
	if err != nil {
		return err
	}

	c.list.SetGraphicsRootConstantBufferView(parameter, c.graphics.uploads.GPUVirtualAddress(offset))
	return nil
}

// SetConstantData uploads data to the upload ring and binds it to the constant buffer register
func (c *CommandContext) SetConstantData(register int, data []byte) error {
	offset, err := c.graphics.Upload(data)
	if err != nil {
		return err
	}
	return c.SetConstantBuffer(offset, register)
}

func (c *CommandContext) transition(texture *Texture, state gpu.ResourceState) {
	if texture.state != state {
		c.list.ResourceBarrier(texture.resource, texture.state, state)
		texture.state = state
	} else if state == gpu.ResourceStateUnorderedAccess {
		c.list.UnorderedAccessBarrier(texture.resource)
	}
}

// SetShaderResource writes a view of texture into a temporary descriptor and binds it to the
// shader resource register
func (c *CommandContext) SetShaderResource(texture *Texture, register int) error {
	if c.rootSignature == nil {
		return errors.New("SetShaderResource called without a root signature")
	}
	if texture.resource.IsNil() {
		return errors.New("texture has no resource; upload it first")
	}

	parameter, err := c.rootSignature.ShaderResourceParameter(register)
	if err != nil {
		return err
	}

	c.transition(texture, gpu.ResourceStateGenericRead)

	slot := c.graphics.descriptors.Allocate()
	err = c.graphics.device.CreateShaderResourceView(texture.resource, gpu.ShaderResourceViewDescriptor{
		Format:    texture.desc.Format,
		MipLevels: texture.desc.MipLevels,
	}, slot.CPU)
	if err != nil {
		return errors.Wrap(err, "failed to create shader resource view")
	}

	c.list.SetGraphicsRootDescriptorTable(parameter, slot.GPU)
	return nil
}

func (c *CommandContext) screenTarget() (gpu.Surface, gpu.CPUDescriptorHandle, error) {
	surface := c.graphics.scheduler.Surface()
	if surface == nil {
		return nil, 0, errors.New("the context has no surface to render to")
	}

	backBuffer := surface.BackBuffer(surface.CurrentBackBufferIndex())
	view := c.graphics.renderTargets.AllocateCPU()
	err := c.graphics.device.CreateRenderTargetView(backBuffer, view)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to create back buffer view")
	}
	return surface, view, nil
}

func (c *CommandContext) setTargetFormats(count int, format, depthFormat gputypes.TextureFormat) {
	if c.desc.RenderTargetCount != count || c.desc.RenderTargetFormat != format || c.desc.DepthStencilFormat != depthFormat {
		c.pipeline = gpu.Handle{}
	}
	c.desc.RenderTargetCount = count
	c.desc.RenderTargetFormat = format
	c.desc.DepthStencilFormat = depthFormat
}

func (c *CommandContext) setViewport(width, height int) {
	c.list.SetViewport(gpu.Viewport{Width: float32(width), Height: float32(height), MaxDepth: 1})
	c.list.SetScissorRect(gpu.Rect{Right: width, Bottom: height})
}

// ScreenBeginRender transitions the current back buffer so it can be rendered to
func (c *CommandContext) ScreenBeginRender() error {
	surface := c.graphics.scheduler.Surface()
	if surface == nil {
		return errors.New("the context has no surface to render to")
	}

	backBuffer := surface.BackBuffer(surface.CurrentBackBufferIndex())
	c.list.ResourceBarrier(backBuffer, gpu.ResourceStatePresent, gpu.ResourceStateRenderTarget)
	return nil
}

// ScreenEndRender transitions the current back buffer back for presentation
func (c *CommandContext) ScreenEndRender() error {
	surface := c.graphics.scheduler.Surface()
	if surface == nil {
		return errors.New("the context has no surface to render to")
	}

	backBuffer := surface.BackBuffer(surface.CurrentBackBufferIndex())
	c.list.ResourceBarrier(backBuffer, gpu.ResourceStateRenderTarget, gpu.ResourceStatePresent)
	return nil
}

// SetRenderTargetScreen renders into the current back buffer, with a viewport covering it and
// no depth buffer
func (c *CommandContext) SetRenderTargetScreen() error {
	surface, view, err := c.screenTarget()
	if err != nil {
		return err
	}

	c.list.SetRenderTargets([]gpu.CPUDescriptorHandle{view}, nil)
	c.setViewport(surface.Width(), surface.Height())
	c.setTargetFormats(1, surface.Format(), gputypes.TextureFormatUndefined)
	return nil
}

// ClearScreen clears the current back buffer to color
func (c *CommandContext) ClearScreen(color gputypes.Color) error {
	_, view, err := c.screenTarget()
	if err != nil {
		return err
	}

	c.list.ClearRenderTargetView(view, color)
	return nil
}

// SetRenderTargets renders into textures made by CreateRenderTexture. depth may be nil. The
// viewport covers the first target, or the depth texture if there are no color targets.
func (c *CommandContext) SetRenderTargets(targets []*Texture, depth *Texture) error {
	if len(targets) == 0 && depth == nil {
		return errors.New("SetRenderTargets called without targets")
	}

	views := make([]gpu.CPUDescriptorHandle, 0, len(targets))
	format := gputypes.TextureFormatUndefined
	for i, target := range targets {
		if target.viewHeap == nil || target.IsDepth() {
			return errors.Newf("texture %d is not a color render texture", i)
		}
		if i == 0 {
			format = target.desc.Format
		} else if target.desc.Format != format {
			return errors.Newf("render texture %d is %v but texture 0 is %v", i, target.desc.Format, format)
		}

		c.transition(target, gpu.ResourceStateRenderTarget)
		views = append(views, target.view)
	}

	var depthView *gpu.CPUDescriptorHandle
	depthFormat := gputypes.TextureFormatUndefined
	if depth != nil {
		if depth.viewHeap == nil || !depth.IsDepth() {
			return errors.New("depth texture is not a depth render texture")
		}
		c.transition(depth, gpu.ResourceStateDepthWrite)
		depthView = &depth.view
		depthFormat = depth.desc.Format
	}

	c.list.SetRenderTargets(views, depthView)

	sized := depth
	if len(targets) > 0 {
		sized = targets[0]
	}
	c.setViewport(sized.desc.Width, sized.desc.Height)
	c.setTargetFormats(len(targets), format, depthFormat)
	return nil
}

// ClearRenderTarget clears a color render texture to color
func (c *CommandContext) ClearRenderTarget(texture *Texture, color gputypes.Color) error {
	if texture.viewHeap == nil || texture.IsDepth() {
		return errors.New("texture is not a color render texture")
	}

	c.transition(texture, gpu.ResourceStateRenderTarget)
	c.list.ClearRenderTargetView(texture.view, color)
	return nil
}

// ClearDepth clears a depth render texture's depth and stencil
func (c *CommandContext) ClearDepth(texture *Texture, depth float32, stencil uint8) error {
	if texture.viewHeap == nil || !texture.IsDepth() {
		return errors.New("texture is not a depth render texture")
	}

	c.transition(texture, gpu.ResourceStateDepthWrite)
	c.list.ClearDepthStencilView(texture.view, gpu.ClearDepth|gpu.ClearStencil, depth, stencil)
	return nil
}

func (c *CommandContext) SetScissorRect(rect gpu.Rect) {
	c.list.SetScissorRect(rect)
}

func (c *CommandContext) SetViewport(viewport gpu.Viewport) {
	c.list.SetViewport(viewport)
}

// DrawIndexedInstanced draws with the pipeline for the current program, description, root
// signature, and mesh layout, compiling it if no such pipeline exists yet
func (c *CommandContext) DrawIndexedInstanced(indexCountPerInstance, instanceCount, startIndexLocation, baseVertexLocation, startInstanceLocation int) error {
	if c.pipeline.IsNil() {
		pipeline, err := c.graphics.GetOrCreatePipeline(c.desc, c.program, c.rootSignature, c.layout)
		if err != nil {
			return err
		}

		c.pipeline = pipeline
		c.list.SetPipelineState(pipeline)
	}

	c.list.DrawIndexedInstanced(indexCountPerInstance, instanceCount, startIndexLocation, baseVertexLocation, startInstanceLocation)
	return nil
}

// SetBlendMode changes the blend mode of the next draws
func (c *CommandContext) SetBlendMode(mode pso.BlendMode) {
	if c.desc.Blend != mode {
		c.desc.Blend = mode
		c.pipeline = gpu.Handle{}
	}
}

// UploadVertexBuffer replaces the vertex buffer in slot with a new buffer holding data. The
// old buffer is destroyed once the GPU is done with it.
func (c *CommandContext) UploadVertexBuffer(mesh *Mesh, slot int, data []byte, stride int) error {
	if slot < 0 {
		return errors.Newf("vertex buffer slot %d is invalid", slot)
	}
	if len(data) == 0 {
		return errors.New("vertex data is empty")
	}

	offset, err := c.graphics.Upload(data)
	if err != nil {
		return err
	}

	for len(mesh.vertices) <= slot {
		mesh.vertices = append(mesh.vertices, vertexBuffer{})
	}

	err = c.graphics.DestroyResource(mesh.vertices[slot].resource)
	if err != nil {
		return err
	}
	mesh.vertices[slot] = vertexBuffer{}

	buffer, err := c.graphics.device.CreateBuffer(len(data), gpu.ResourceStateCopyDest)
	if err != nil {
		return errors.Wrapf(err, "failed to create a %d byte vertex buffer", len(data))
	}
	mesh.vertices[slot] = vertexBuffer{resource: buffer, size: len(data), stride: stride}

	c.list.CopyBufferRegion(buffer, 0, c.graphics.uploads.Resource(), offset, len(data))
	c.list.ResourceBarrier(buffer, gpu.ResourceStateCopyDest, gpu.ResourceStateGenericRead)
	return nil
}

// UploadIndexBuffer writes indices into the mesh's index buffer. The buffer is only recreated
// when the format, count, or size changes; otherwise it is overwritten in place.
func (c *CommandContext) UploadIndexBuffer(mesh *Mesh, data []byte, format gputypes.IndexFormat) error {
	indexSize := gpu.IndexFormatSize(format)
	if len(data) == 0 || len(data)%indexSize != 0 {
		return errors.Newf("index data of %d bytes is not a whole number of %d byte indices", len(data), indexSize)
	}
	count := len(data) / indexSize

	offset, err := c.graphics.Upload(data)
	if err != nil {
		return err
	}

	if mesh.indices.IsNil() || mesh.indexFormat != format || mesh.indexCount != count || mesh.indexSize != len(data) {
		err = c.graphics.DestroyResource(mesh.indices)
		if err != nil {
			return err
		}
		mesh.indices = gpu.Handle{}

		buffer, err := c.graphics.device.CreateBuffer(len(data), gpu.ResourceStateCopyDest)
		if err != nil {
			return errors.Wrapf(err, "failed to create a %d byte index buffer", len(data))
		}

		mesh.indices = buffer
		mesh.indexFormat = format
		mesh.indexCount = count
		mesh.indexSize = len(data)
	} else {
		c.list.ResourceBarrier(mesh.indices, gpu.ResourceStateGenericRead, gpu.ResourceStateCopyDest)
	}

	c.list.CopyBufferRegion(mesh.indices, 0, c.graphics.uploads.Resource(), offset, len(data))
	c.list.ResourceBarrier(mesh.indices, gpu.ResourceStateCopyDest, gpu.ResourceStateGenericRead)
	return nil
}

// UploadTexture recreates texture's resource and fills it with tightly packed rows of data.
// The staging buffer and the previous resource are both destroyed once the copy completes.
func (c *CommandContext) UploadTexture(texture *Texture, data []byte) error {
	rowPitch := gpu.RowPitch(texture.desc.Format, texture.desc.Width)
	size := rowPitch * texture.desc.Height
	if size == 0 {
		return errors.Newf("texture format %v has no known size", texture.desc.Format)
	}
	if len(data) < size {
		return errors.Newf("texture data is %d bytes but a %dx%d texture needs %d", len(data), texture.desc.Width, texture.desc.Height, size)
	}

	staging, err := c.graphics.device.CreateUploadBuffer(size)
	if err != nil {
		return errors.Wrapf(err, "failed to create a %d byte staging buffer", size)
	}

	err = c.graphics.DestroyResource(staging.Resource())
	if err != nil {
		return err
	}

	region := memutils.NewMappedRegion(staging.Mapped())
	err = region.Write(0, data[:size])
	if err != nil {
		return err
	}

	err = c.graphics.DestroyResource(texture.resource)
	if err != nil {
		return err
	}
	texture.resource = gpu.Handle{}

	resource, err := c.graphics.device.CreateTexture(texture.desc, gpu.ResourceStateCopyDest)
	if err != nil {
		return errors.Wrapf(err, "failed to create a %dx%d texture", texture.desc.Width, texture.desc.Height)
	}
	texture.resource = resource
	texture.state = gpu.ResourceStateCopyDest

	c.list.CopyBufferToTexture(resource, staging.Resource(), gpu.TextureCopyLayout{
		RowPitch: rowPitch,
		Width:    texture.desc.Width,
		Height:   texture.desc.Height,
		Format:   texture.desc.Format,
	})
	c.transition(texture, gpu.ResourceStateGenericRead)
	return nil
}

// CreateRenderTexture creates a texture that can be rendered to and sampled. Depth formats
// produce a depth stencil texture. The texture owns its view, so it stays bindable across
// frames.
func (c *CommandContext) CreateRenderTexture(width, height int, format gputypes.TextureFormat) (*Texture, error) {
	return c.graphics.CreateRenderTexture(width, height, format)
}

// CreateRenderTexture creates a texture that can be rendered to and sampled. Depth formats
// produce a depth stencil texture.
func (g *Graphics) CreateRenderTexture(width, height int, format gputypes.TextureFormat) (*Texture, error) {
	width = max(width, 1)
	height = max(height, 1)

	texture := &Texture{
		desc: gpu.TextureDescriptor{
			Width:     width,
			Height:    height,
			MipLevels: 1,
			Format:    format,
			Usage:     gpu.TextureUsageSampled | gpu.TextureUsageRenderTarget,
		},
		state: gpu.ResourceStateRenderTarget,
	}
	heapType := gpu.DescriptorHeapRenderTarget
	if gpu.IsDepthFormat(format) {
		texture.desc.Usage = gpu.TextureUsageSampled | gpu.TextureUsageDepthStencil
		texture.state = gpu.ResourceStateDepthWrite
		heapType = gpu.DescriptorHeapDepthStencil
	}

	resource, err := g.device.CreateTexture(texture.desc, texture.state)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create a %dx%d render texture", width, height)
	}
	texture.resource = resource

	texture.viewHeap, err = g.device.CreateDescriptorHeap(gpu.DescriptorHeapDescriptor{Type: heapType, Capacity: 1})
	if err != nil {
		return nil, errors.CombineErrors(errors.Wrap(err, "failed to create a render texture view heap"), g.device.Release(resource))
	}
	texture.view = texture.viewHeap.CPUStart()

	if texture.IsDepth() {
		err = g.device.CreateDepthStencilView(resource, texture.view)
	} else {
		err = g.device.CreateRenderTargetView(resource, texture.view)
	}
	if err != nil {
		texture.viewHeap.Destroy()
		return nil, errors.CombineErrors(errors.Wrap(err, "failed to create a render texture view"), g.device.Release(resource))
	}

	return texture, nil
}
