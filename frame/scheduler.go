// Package frame paces CPU command submission against GPU completion and ties together the
// transient allocators, deferred destruction, and pipeline caches that a frame depends on.
//
// Every submission is associated with a fence value. The scheduler keeps at most BufferCount
// frames in flight: Present blocks whenever the GPU falls BufferCount or more fence values
// behind, and resources handed to DestroyResource are only released once the fence has passed
// the value that was current when they were handed over.
package frame

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/pacer/gpu"
	"github.com/vkngwrapper/pacer/retire"
)

// ErrDeviceLost marks errors where the scheduler could not signal or wait on its fence. The
// render loop cannot continue after one.
var ErrDeviceLost = errors.New("gpu device lost")

// SyncMode selects how Present synchronizes with the display
type SyncMode int

const (
	// SyncVertical waits for the next vertical blank
	SyncVertical SyncMode = iota
	// SyncImmediate presents immediately and allows tearing
	SyncImmediate
)

func (m SyncMode) String() string {
	if m == SyncImmediate {
		return "Immediate"
	}
	return "Vertical"
}

// SchedulerStatistics counts the scheduler's blocking behavior
type SchedulerStatistics struct {
	// Presents is the number of completed Present calls
	Presents int
	// PacingWaits is the number of presents that blocked because too many frames were in flight
	PacingWaits int
	// FullWaits is the number of WaitForGPU calls
	FullWaits int
	// Released is the number of resources the destruction queue has released
	Released int
}

// Scheduler owns the command queue, the fence, and one command allocator per frame in flight.
// It is not safe for concurrent use.
type Scheduler struct {
	logger  *slog.Logger
	device  gpu.Device
	surface gpu.Surface

	queue      gpu.CommandQueue
	fence      gpu.Fence
	allocators []gpu.CommandAllocator
	retire     *retire.Queue

	bufferCount int
	frameIndex  int
	target      uint64

	stats SchedulerStatistics
}

// NewScheduler creates the queue, fence, and command allocators. surface may be nil for
// headless rendering, in which case Present only signals and paces.
//
// The fence starts at BufferCount and the first frame signals BufferCount+1, so the pacing
// threshold never underflows.
func NewScheduler(logger *slog.Logger, device gpu.Device, surface gpu.Surface, options CreateOptions) (*Scheduler, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	err := options.Validate()
	if err != nil {
		return nil, err
	}
	options = options.WithDefaults()

	scheduler := &Scheduler{
		logger:      logger,
		device:      device,
		surface:     surface,
		retire:      retire.New(logger, device),
		bufferCount: options.BufferCount,
		target:      uint64(options.BufferCount),
	}

	scheduler.queue, err = device.CreateCommandQueue()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create the command queue")
	}

	scheduler.fence, err = device.CreateFence(scheduler.target)
	if err != nil {
		scheduler.destroyObjects()
		return nil, errors.Wrap(err, "failed to create the frame fence")
	}
	scheduler.target++

	for i := 0; i < options.BufferCount; i++ {
		allocator, err := device.CreateCommandAllocator()
		if err != nil {
			scheduler.destroyObjects()
			return nil, errors.Wrapf(err, "failed to create command allocator %d", i)
		}
		scheduler.allocators = append(scheduler.allocators, allocator)
	}

	logger.Debug("Scheduler::New",
		slog.Int("BufferCount", options.BufferCount),
		slog.Bool("Headless", surface == nil),
	)
	return scheduler, nil
}

func (s *Scheduler) destroyObjects() {
	for _, allocator := range s.allocators {
		allocator.Destroy()
	}
	s.allocators = nil

	if s.fence != nil {
		s.fence.Destroy()
		s.fence = nil
	}
	if s.queue != nil {
		s.queue.Destroy()
		s.queue = nil
	}
}

// Begin recycles the command allocator of the current frame slot. The fence has already
// passed the last frame recorded with it.
func (s *Scheduler) Begin() error {
	err := s.allocators[s.frameIndex].Reset()
	if err != nil {
		return errors.Wrapf(err, "failed to reset the command allocator for frame slot %d", s.frameIndex)
	}
	return nil
}

// Execute submits command lists to the scheduler's queue
func (s *Scheduler) Execute(lists ...gpu.CommandList) error {
	err := s.queue.ExecuteCommandLists(lists...)
	if err != nil {
		return errors.Wrap(err, "failed to execute command lists")
	}
	return nil
}

func (s *Scheduler) signal() error {
	err := s.queue.Signal(s.fence, s.target)
	if err != nil {
		return errors.Wrapf(errors.Mark(err, ErrDeviceLost), "failed to signal fence value %d", s.target)
	}
	return nil
}

func (s *Scheduler) wait(value uint64) error {
	err := s.fence.Wait(value)
	if err != nil {
		return errors.Wrapf(errors.Mark(err, ErrDeviceLost), "failed to wait for fence value %d", value)
	}
	return nil
}

func (s *Scheduler) drain() error {
	err := s.retire.DrainUpTo(s.fence.CompletedValue())
	s.stats.Released = s.retire.Released()
	return err
}

// Present shows the current back buffer, signals the current frame's fence value, and moves to
// the next frame slot. If the GPU is BufferCount or more frames behind it blocks until the
// oldest of them completes, so the allocator of the new slot can be reused. Finally it
// releases every deferred resource the GPU has finished with.
func (s *Scheduler) Present(mode SyncMode) error {
	if s.surface != nil {
		var err error
		if mode == SyncImmediate {
			err = s.surface.Present(0, gpu.PresentAllowTearing)
		} else {
			err = s.surface.Present(1, 0)
		}
		if err != nil {
			return errors.Wrapf(err, "failed to present frame %d", s.target)
		}
	}

	err := s.signal()
	if err != nil {
		return err
	}

	s.frameIndex = (s.frameIndex + 1) % s.bufferCount

	threshold := s.target - uint64(s.bufferCount) + 1
	completed := s.fence.CompletedValue()
	if completed < threshold {
		s.stats.PacingWaits++
		s.logger.LogAttrs(context.Background(), slog.LevelDebug, "Scheduler::Present",
			slog.Uint64("Target", s.target),
			slog.Uint64("Completed", completed),
			slog.Uint64("WaitFor", threshold),
		)

		err = s.wait(threshold)
		if err != nil {
			return err
		}
	}

	err = s.drain()
	s.target++
	s.stats.Presents++
	if err != nil {
		return errors.Wrap(err, "failed to release retired resources")
	}
	return nil
}

// WaitForGPU blocks until every command submitted so far has completed, then releases every
// deferred resource
func (s *Scheduler) WaitForGPU() error {
	err := s.signal()
	if err != nil {
		return err
	}

	err = s.wait(s.target)
	if err != nil {
		return err
	}

	s.stats.FullWaits++
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "Scheduler::WaitForGPU",
		slog.Uint64("Target", s.target),
	)

	err = s.drain()
	s.target++
	if err != nil {
		return errors.Wrap(err, "failed to release retired resources")
	}
	return nil
}

// DestroyResource hands resource to the destruction queue. It is released once the GPU
// completes the frame currently being recorded. Nil handles are ignored.
func (s *Scheduler) DestroyResource(resource gpu.Handle) error {
	return s.retire.Enqueue(resource, s.target)
}

// Resize waits for the GPU to go idle and resizes the surface's back buffers. Dimensions below
// one are raised to one.
func (s *Scheduler) Resize(width, height int) error {
	err := s.WaitForGPU()
	if err != nil {
		return err
	}

	if s.surface == nil {
		return nil
	}

	width = max(width, 1)
	height = max(height, 1)

	err = s.surface.Resize(s.bufferCount, width, height)
	if err != nil {
		return errors.Wrapf(err, "failed to resize the surface to %dx%d", width, height)
	}

	s.logger.Debug("Scheduler::Resize", slog.Int("Width", width), slog.Int("Height", height))
	return nil
}

// CommandAllocator returns the allocator for the current frame slot
func (s *Scheduler) CommandAllocator() gpu.CommandAllocator {
	return s.allocators[s.frameIndex]
}

func (s *Scheduler) Queue() gpu.CommandQueue {
	return s.queue
}

func (s *Scheduler) Surface() gpu.Surface {
	return s.surface
}

// FrameIndex returns the current frame slot, in [0, BufferCount)
func (s *Scheduler) FrameIndex() int {
	return s.frameIndex
}

func (s *Scheduler) BufferCount() int {
	return s.bufferCount
}

// FrameCount returns the fence value the frame being recorded will signal
func (s *Scheduler) FrameCount() uint64 {
	return s.target
}

// CompletedValue returns the highest fence value the GPU has reached
func (s *Scheduler) CompletedValue() uint64 {
	return s.fence.CompletedValue()
}

// PendingDestroys returns the number of resources waiting for the GPU to finish with them
func (s *Scheduler) PendingDestroys() int {
	return s.retire.Len()
}

func (s *Scheduler) Statistics() SchedulerStatistics {
	return s.stats
}

// PrintJson populates a json object with the scheduler's frame values and counters
func (s *Scheduler) PrintJson(json jwriter.ObjectState) {
	json.Name("BufferCount").Int(s.bufferCount)
	json.Name("FrameIndex").Int(s.frameIndex)
	json.Name("Target").Int(int(s.target))
	json.Name("Completed").Int(int(s.fence.CompletedValue()))
	json.Name("PendingDestroys").Int(s.retire.Len())
	json.Name("Presents").Int(s.stats.Presents)
	json.Name("PacingWaits").Int(s.stats.PacingWaits)
	json.Name("FullWaits").Int(s.stats.FullWaits)
	json.Name("Released").Int(s.stats.Released)
}

// Destroy waits for the GPU to go idle, releases every deferred resource, and destroys the
// scheduler's queue, fence, and allocators. The surface belongs to the caller.
func (s *Scheduler) Destroy() error {
	if s.queue == nil {
		return nil
	}

	err := s.WaitForGPU()
	err = errors.CombineErrors(err, s.retire.DrainAll())
	s.stats.Released = s.retire.Released()

	s.destroyObjects()
	return err
}
