package frame

import (
	"log/slog"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/pacer/descriptor"
	"github.com/vkngwrapper/pacer/gpu"
	"github.com/vkngwrapper/pacer/pso"
	"github.com/vkngwrapper/pacer/rootsig"
	"github.com/vkngwrapper/pacer/upload"
)

type textureUpload struct {
	texture *Texture
	data    []byte
}

// Graphics is the rendering context: it owns the frame scheduler, every transient allocator,
// the root signature registry, the pipeline cache, and the command list frames are recorded
// into. Construct one and pass it to everything that renders.
//
// Graphics is driven from a single goroutine. RootSignature, GetOrCreatePipeline, and
// QueueTextureUpload may also be called from other goroutines unless the context was created
// with CreateExternallySynchronized.
type Graphics struct {
	logger  *slog.Logger
	device  gpu.Device
	options CreateOptions

	scheduler      *Scheduler
	uploads        *upload.Ring
	descriptors    *descriptor.Ring
	renderTargets  *descriptor.Ring
	depthStencils  *descriptor.Ring
	rootSignatures *rootsig.Registry
	pipelines      *pso.Cache

	commandList gpu.CommandList
	context     *CommandContext
	recording   bool

	uploadMutex    sync.Mutex
	pendingUploads []textureUpload
}

// NewGraphics creates a rendering context on device. surface may be nil for headless
// rendering. If anything fails to create, whatever was already created is destroyed.
func NewGraphics(logger *slog.Logger, device gpu.Device, surface gpu.Surface, options CreateOptions) (*Graphics, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	err := options.Validate()
	if err != nil {
		return nil, err
	}
	options = options.WithDefaults()
	useMutex := options.Flags&CreateExternallySynchronized == 0

	g := &Graphics{
		logger:         logger,
		device:         device,
		options:        options,
		rootSignatures: rootsig.NewRegistry(logger, device, useMutex),
		pipelines:      pso.NewCache(logger, device, useMutex),
	}

	g.scheduler, err = NewScheduler(logger, device, surface, options)
	if err != nil {
		return nil, err
	}

	err = g.createAllocators()
	if err != nil {
		g.destroyAllocators()
		return nil, errors.CombineErrors(err, g.scheduler.Destroy())
	}

	g.context = &CommandContext{graphics: g, list: g.commandList}

	logger.Debug("Graphics::New",
		slog.String("Flags", options.Flags.String()),
		slog.Int("UploadBufferSize", options.UploadBufferSize),
	)
	return g, nil
}

func (g *Graphics) createAllocators() error {
	var err error

	g.uploads, err = upload.New(g.logger, g.device, g.options.UploadBufferSize)
	if err != nil {
		return err
	}

	g.descriptors, err = descriptor.New(g.logger, g.device, gpu.DescriptorHeapDescriptor{
		Type:          gpu.DescriptorHeapCBVSRVUAV,
		Capacity:      g.options.DescriptorHeapCapacity,
		ShaderVisible: true,
	})
	if err != nil {
		return err
	}

	g.renderTargets, err = descriptor.New(g.logger, g.device, gpu.DescriptorHeapDescriptor{
		Type:     gpu.DescriptorHeapRenderTarget,
		Capacity: g.options.RenderTargetHeapCapacity,
	})
	if err != nil {
		return err
	}

	g.depthStencils, err = descriptor.New(g.logger, g.device, gpu.DescriptorHeapDescriptor{
		Type:     gpu.DescriptorHeapDepthStencil,
		Capacity: g.options.DepthStencilHeapCapacity,
	})
	if err != nil {
		return err
	}

	g.commandList, err = g.device.CreateCommandList(g.scheduler.CommandAllocator())
	if err != nil {
		return errors.Wrap(err, "failed to create the command list")
	}

	// Command lists are created open; BeginFrame expects a closed one
	err = g.commandList.Close()
	if err != nil {
		return errors.Wrap(err, "failed to close the new command list")
	}
	return nil
}

func (g *Graphics) destroyAllocators() error {
	var err error

	if g.commandList != nil {
		g.commandList.Destroy()
		g.commandList = nil
	}
	for _, ring := range []*descriptor.Ring{g.descriptors, g.renderTargets, g.depthStencils} {
		if ring != nil {
			ring.Destroy()
		}
	}
	g.descriptors, g.renderTargets, g.depthStencils = nil, nil, nil

	if g.uploads != nil {
		err = g.uploads.Destroy()
		g.uploads = nil
	}
	return err
}

// BeginFrame recycles the current frame slot's command allocator and opens the command list
// for recording. Texture uploads queued since the last frame are recorded first; if any of them
// fails the frame is abandoned unsubmitted and no context is returned.
func (g *Graphics) BeginFrame() (*CommandContext, error) {
	if g.recording {
		return nil, errors.New("BeginFrame called while a frame is already recording")
	}

	err := g.scheduler.Begin()
	if err != nil {
		return nil, err
	}

	err = g.commandList.Reset(g.scheduler.CommandAllocator())
	if err != nil {
		return nil, errors.Wrap(err, "failed to reset the command list")
	}
	g.recording = true

	g.commandList.SetDescriptorHeaps(g.descriptors.Heap())
	g.context.reset()

	err = g.drainTextureUploads()
	if err != nil {
		g.recording = false
		return nil, errors.CombineErrors(err, g.commandList.Close())
	}

	return g.context, nil
}

// QueueTextureUpload schedules texture to be filled with data at the start of the next frame.
// It may be called from any goroutine; data must not be modified afterwards.
func (g *Graphics) QueueTextureUpload(texture *Texture, data []byte) {
	g.uploadMutex.Lock()
	defer g.uploadMutex.Unlock()

	g.pendingUploads = append(g.pendingUploads, textureUpload{texture: texture, data: data})
}

func (g *Graphics) drainTextureUploads() error {
	g.uploadMutex.Lock()
	pending := g.pendingUploads
	g.pendingUploads = nil
	g.uploadMutex.Unlock()

	var err error
	for _, pendingUpload := range pending {
		err = errors.CombineErrors(err, g.context.UploadTexture(pendingUpload.texture, pendingUpload.data))
	}
	return err
}

// Upload copies data into the transient upload ring and returns its offset. The bytes stay
// valid until the ring wraps back over them.
func (g *Graphics) Upload(data []byte) (int, error) {
	return g.uploads.Upload(data)
}

// AllocateDescriptor returns a temporary shader-visible descriptor slot
func (g *Graphics) AllocateDescriptor() descriptor.Handle {
	return g.descriptors.Allocate()
}

// RootSignature returns the root signature for a layout code, creating it on first use
func (g *Graphics) RootSignature(code string) (*rootsig.RootSignature, error) {
	return g.rootSignatures.GetOrCreate(code)
}

// GetOrCreatePipeline returns the pipeline for the given state, compiling it on first use
func (g *Graphics) GetOrCreatePipeline(desc pso.Description, program *pso.Program, rootSignature *rootsig.RootSignature, layout *pso.VertexLayout) (gpu.Handle, error) {
	return g.pipelines.GetOrCreate(desc, program, rootSignature, layout)
}

// Submit closes the command list and executes it
func (g *Graphics) Submit() error {
	if !g.recording {
		return errors.New("Submit called without a recording frame")
	}
	g.recording = false

	err := g.commandList.Close()
	if err != nil {
		return errors.Wrap(err, "failed to close the command list")
	}

	return g.scheduler.Execute(g.commandList)
}

// Present submits the frame if it is still recording, then presents it and paces against
// the GPU
func (g *Graphics) Present(mode SyncMode) error {
	if g.recording {
		err := g.Submit()
		if err != nil {
			return err
		}
	}

	return g.scheduler.Present(mode)
}

// DestroyResource releases resource once the GPU has finished every frame recorded so far
func (g *Graphics) DestroyResource(resource gpu.Handle) error {
	return g.scheduler.DestroyResource(resource)
}

func (g *Graphics) WaitForGPU() error {
	return g.scheduler.WaitForGPU()
}

// Resize waits for the GPU and resizes the surface. It may not be called while a frame is
// recording.
func (g *Graphics) Resize(width, height int) error {
	if g.recording {
		return errors.New("Resize called while a frame is recording")
	}
	return g.scheduler.Resize(width, height)
}

func (g *Graphics) Device() gpu.Device {
	return g.device
}

func (g *Graphics) Scheduler() *Scheduler {
	return g.scheduler
}

func (g *Graphics) UploadRing() *upload.Ring {
	return g.uploads
}

func (g *Graphics) Pipelines() *pso.Cache {
	return g.pipelines
}

// BuildStatsString returns a json document describing the state of every allocator and cache
func (g *Graphics) BuildStatsString() string {
	writer := jwriter.NewWriter()
	objState := writer.Object()
	{
		json := objState.Name("Scheduler").Object()
		g.scheduler.PrintJson(json)
		json.End()

		json = objState.Name("UploadRing").Object()
		g.uploads.PrintJson(json)
		json.End()

		rings := objState.Name("DescriptorRings").Array()
		for _, ring := range []*descriptor.Ring{g.descriptors, g.renderTargets, g.depthStencils} {
			json = rings.Object()
			ring.PrintJson(json)
			json.End()
		}
		rings.End()

		json = objState.Name("PipelineCache").Object()
		g.pipelines.PrintJson(json)
		json.End()

		objState.Name("RootSignatures").Int(g.rootSignatures.Len())
	}
	objState.End()

	return string(writer.Bytes())
}

// Close waits for the GPU to go idle and destroys everything the context owns. An unsubmitted
// frame is discarded.
func (g *Graphics) Close() error {
	if g.scheduler == nil {
		return nil
	}

	var err error
	if g.recording {
		g.recording = false
		// The discarded list may hold recording errors; it is never executed
		_ = g.commandList.Close()
	}

	err = g.scheduler.WaitForGPU()
	err = errors.CombineErrors(err, g.pipelines.Destroy())
	err = errors.CombineErrors(err, g.rootSignatures.Destroy())
	err = errors.CombineErrors(err, g.destroyAllocators())
	err = errors.CombineErrors(err, g.scheduler.Destroy())
	g.scheduler = nil

	g.logger.Debug("Graphics::Close")
	return err
}
