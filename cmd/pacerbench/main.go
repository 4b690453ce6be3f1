// Command pacerbench drives a graphics context on the software device for a number of frames
// and prints the allocator and cache statistics as json
package main

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/gputypes"
	"github.com/spf13/cobra"
	"github.com/vkngwrapper/pacer/config"
	"github.com/vkngwrapper/pacer/frame"
	"github.com/vkngwrapper/pacer/gpu"
	"github.com/vkngwrapper/pacer/gpu/soft"
	"github.com/vkngwrapper/pacer/pso"
)

type benchOptions struct {
	configPath string
	frames     int
	latency    time.Duration
	width      int
	height     int
	headless   bool
	immediate  bool
	meshes     int
}

func main() {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:          "pacerbench",
		Short:        "Render frames on the software GPU and report frame pacing statistics",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	flags.IntVarP(&opts.frames, "frames", "n", 300, "number of frames to render")
	flags.DurationVar(&opts.latency, "latency", 2*time.Millisecond, "emulated GPU time per frame")
	flags.IntVar(&opts.width, "width", 1280, "surface width")
	flags.IntVar(&opts.height, "height", 720, "surface height")
	flags.BoolVar(&opts.headless, "headless", false, "render without a surface")
	flags.BoolVar(&opts.immediate, "immediate", false, "present without waiting for vertical blank")
	flags.IntVar(&opts.meshes, "meshes", 8, "meshes drawn per frame")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts benchOptions) error {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return err
		}
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel}))

	device := soft.NewDevice(logger, soft.Options{Latency: opts.latency})
	defer device.Close()

	var surface gpu.Surface
	if !opts.headless {
		softSurface, err := device.NewSurface(cfg.Options.BufferCount, opts.width, opts.height, gputypes.TextureFormatBGRA8Unorm)
		if err != nil {
			return errors.Wrap(err, "failed to create the surface")
		}
		defer softSurface.Destroy()
		surface = softSurface
	}

	graphics, err := frame.NewGraphics(logger, device, surface, cfg.Options)
	if err != nil {
		return err
	}

	start := time.Now()
	err = renderFrames(graphics, opts)
	elapsed := time.Since(start)
	err = errors.CombineErrors(err, graphics.WaitForGPU())

	stats := graphics.BuildStatsString()
	err = errors.CombineErrors(err, graphics.Close())
	if err != nil {
		return err
	}

	for _, fault := range device.Faults() {
		logger.Error("emulated GPU fault", slog.Any("Error", fault))
	}
	logger.Info("pacerbench finished",
		slog.Int("Frames", opts.frames),
		slog.Duration("Elapsed", elapsed),
		slog.Int("Faults", len(device.Faults())),
	)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), stats)
	return err
}

func renderFrames(graphics *frame.Graphics, opts benchOptions) error {
	program := pso.NewProgram("bench", []byte("bench.vs"), []byte("bench.ps"), nil)
	font := frame.NewTexture(64, 64, gputypes.TextureFormatRGBA8Unorm)
	graphics.QueueTextureUpload(font, make([]byte, 64*64*4))

	meshes := make([]*frame.Mesh, opts.meshes)
	for i := range meshes {
		meshes[i] = frame.NewMesh(frame.DefaultVertexLayout())
	}
	defer func() {
		for _, mesh := range meshes {
			_ = mesh.Destroy(graphics)
		}
		_ = font.Destroy(graphics)
	}()

	mode := frame.SyncVertical
	if opts.immediate {
		mode = frame.SyncImmediate
	}
	hasSurface := !opts.headless

	for i := 0; i < opts.frames; i++ {
		c, err := graphics.BeginFrame()
		if err != nil {
			return err
		}

		err = renderFrame(c, i, program, font, meshes, hasSurface)
		if err != nil {
			return errors.Wrapf(err, "frame %d", i)
		}

		err = graphics.Present(mode)
		if err != nil {
			return err
		}
	}
	return nil
}

func renderFrame(c *frame.CommandContext, index int, program *pso.Program, font *frame.Texture, meshes []*frame.Mesh, hasSurface bool) error {
	if hasSurface {
		err := c.ScreenBeginRender()
		if err != nil {
			return err
		}
		err = c.SetRenderTargetScreen()
		if err != nil {
			return err
		}
		err = c.ClearScreen(gputypes.Color{R: 0.05, G: 0.05, B: 0.08, A: 1})
		if err != nil {
			return err
		}
	}

	err := c.SetRootSignature("Cs")
	if err != nil {
		return err
	}

	desc := pso.DefaultDescription()
	desc.Blend = pso.BlendAlpha
	c.SetPipelineState(program, desc)

	constants := make([]byte, 64)
	binary.LittleEndian.PutUint32(constants, math.Float32bits(float32(index)))
	err = c.SetConstantData(0, constants)
	if err != nil {
		return err
	}

	err = c.SetShaderResource(font, 0)
	if err != nil {
		return err
	}

	for m, mesh := range meshes {
		// Vertex counts vary per frame like GUI geometry does
		quads := 1 + (index+m)%16
		err = uploadQuads(c, mesh, quads)
		if err != nil {
			return err
		}

		err = c.SetMesh(mesh)
		if err != nil {
			return err
		}
		err = c.DrawIndexedInstanced(mesh.IndexCount(), 1, 0, 0, 0)
		if err != nil {
			return err
		}
	}

	if hasSurface {
		return c.ScreenEndRender()
	}
	return nil
}

func uploadQuads(c *frame.CommandContext, mesh *frame.Mesh, quads int) error {
	vertices := quads * 4

	err := c.UploadVertexBuffer(mesh, 0, make([]byte, vertices*8), 8)
	if err != nil {
		return err
	}
	err = c.UploadVertexBuffer(mesh, 1, make([]byte, vertices*8), 8)
	if err != nil {
		return err
	}
	err = c.UploadVertexBuffer(mesh, 2, make([]byte, vertices*4), 4)
	if err != nil {
		return err
	}

	indices := make([]byte, 0, quads*6*2)
	for q := 0; q < quads; q++ {
		base := uint16(q * 4)
		for _, offset := range []uint16{0, 1, 2, 2, 3, 0} {
			indices = binary.LittleEndian.AppendUint16(indices, base+offset)
		}
	}
	return c.UploadIndexBuffer(mesh, indices, gputypes.IndexFormatUint16)
}
