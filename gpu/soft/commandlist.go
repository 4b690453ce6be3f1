package soft

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/gputypes"
	"github.com/vkngwrapper/pacer/gpu"
)

// CommandAllocator is a gpu.CommandAllocator that remembers the last submission recorded from
// it, so a reset that races the emulated GPU is caught
type CommandAllocator struct {
	device *Device

	mutex          sync.Mutex
	queue          *Queue
	lastSubmission uint64
	resets         int
}

var _ gpu.CommandAllocator = &CommandAllocator{}

func (a *CommandAllocator) markSubmitted(queue *Queue, submission uint64) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.queue = queue
	a.lastSubmission = submission
}

func (a *CommandAllocator) Reset() error {
	a.mutex.Lock()
	queue, last := a.queue, a.lastSubmission
	a.resets++
	a.mutex.Unlock()

	if queue != nil && queue.completedSubmission() < last {
		err := errors.Newf("command allocator reset while submission %d is still executing", last)
		a.device.fault(err)
		return err
	}

	return nil
}

// Resets returns the number of times Reset has been called
func (a *CommandAllocator) Resets() int {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.resets
}

func (a *CommandAllocator) Destroy() {}

// Command is one recorded command. Every handle in Resources must still be live when the
// emulated GPU executes the command.
type Command struct {
	Op        string
	Resources []gpu.Handle
	Args      []any

	run func(d *Device) error
}

func (c Command) execute(d *Device) error {
	for _, h := range c.Resources {
		if h.IsNil() {
			continue
		}

		_, err := d.lookup(h)
		if err != nil {
			return errors.Wrapf(err, "%s references a released resource", c.Op)
		}
	}

	if c.run != nil {
		return c.run(d)
	}
	return nil
}

// CommandList is a gpu.CommandList that records commands for the emulated GPU
type CommandList struct {
	device    *Device
	allocator *CommandAllocator
	commands  []Command
	closed    bool
	err       error

	pipeline gpu.Handle
}

var _ gpu.CommandList = &CommandList{}

// Commands returns the commands recorded since the last Reset
func (l *CommandList) Commands() []Command {
	return l.commands
}

// CommandsWithOp returns the recorded commands named op
func (l *CommandList) CommandsWithOp(op string) []Command {
	var matches []Command
	for _, command := range l.commands {
		if command.Op == op {
			matches = append(matches, command)
		}
	}
	return matches
}

func (l *CommandList) record(command Command) {
	if l.closed {
		if l.err == nil {
			l.err = errors.Newf("%s recorded into a closed command list", command.Op)
		}
		return
	}

	l.commands = append(l.commands, command)
}

func (l *CommandList) Reset(allocator gpu.CommandAllocator) error {
	softAllocator, ok := allocator.(*CommandAllocator)
	if !ok {
		return errors.Newf("command allocator of type %T was not created by the software device", allocator)
	}
	if !l.closed {
		return errors.New("command list must be closed before it is reset")
	}

	l.allocator = softAllocator
	l.commands = nil
	l.closed = false
	l.err = nil
	l.pipeline = gpu.Handle{}
	return nil
}

func (l *CommandList) Close() error {
	if l.closed {
		return errors.New("command list is already closed")
	}

	l.closed = true
	return l.err
}

func (l *CommandList) SetDescriptorHeaps(heaps ...gpu.DescriptorHeap) {
	args := make([]any, 0, len(heaps))
	for _, heap := range heaps {
		args = append(args, heap)
	}
	l.record(Command{Op: "SetDescriptorHeaps", Args: args})
}

func (l *CommandList) SetGraphicsRootSignature(rootSignature gpu.Handle) {
	l.record(Command{Op: "SetGraphicsRootSignature", Resources: []gpu.Handle{rootSignature}})
}

func (l *CommandList) SetPipelineState(pipeline gpu.Handle) {
	l.pipeline = pipeline
	l.record(Command{Op: "SetPipelineState", Resources: []gpu.Handle{pipeline}})
}

func (l *CommandList) SetGraphicsRootConstantBufferView(parameterIndex int, address uint64) {
	l.record(Command{Op: "SetGraphicsRootConstantBufferView", Args: []any{parameterIndex, address}})
}

func (l *CommandList) SetGraphicsRootDescriptorTable(parameterIndex int, base gpu.GPUDescriptorHandle) {
	l.record(Command{Op: "SetGraphicsRootDescriptorTable", Args: []any{parameterIndex, base}})
}

func (l *CommandList) SetPrimitiveTopology(topology gputypes.PrimitiveTopology) {
	l.record(Command{Op: "SetPrimitiveTopology", Args: []any{topology}})
}

func (l *CommandList) SetVertexBuffers(startSlot int, views ...gpu.VertexBufferView) {
	args := []any{startSlot}
	for _, view := range views {
		args = append(args, view)
	}
	l.record(Command{Op: "SetVertexBuffers", Args: args})
}

func (l *CommandList) SetIndexBuffer(view gpu.IndexBufferView) {
	l.record(Command{Op: "SetIndexBuffer", Args: []any{view}})
}

func (l *CommandList) SetViewport(viewport gpu.Viewport) {
	l.record(Command{Op: "SetViewport", Args: []any{viewport}})
}

func (l *CommandList) SetScissorRect(rect gpu.Rect) {
	l.record(Command{Op: "SetScissorRect", Args: []any{rect}})
}

func (l *CommandList) viewTargetCommand(op string, targets ...gpu.CPUDescriptorHandle) Command {
	args := make([]any, 0, len(targets))
	for _, target := range targets {
		args = append(args, target)
	}

	return Command{
		Op:   op,
		Args: args,
		run: func(d *Device) error {
			for _, target := range targets {
				view, ok := d.View(target)
				if !ok {
					return errors.Newf("descriptor %#x holds no view", uint64(target))
				}

				_, err := d.lookup(view.Resource)
				if err != nil {
					return errors.Wrapf(err, "view at descriptor %#x", uint64(target))
				}
			}
			return nil
		},
	}
}

func (l *CommandList) SetRenderTargets(renderTargets []gpu.CPUDescriptorHandle, depthStencil *gpu.CPUDescriptorHandle) {
	targets := append([]gpu.CPUDescriptorHandle(nil), renderTargets...)
	if depthStencil != nil {
		targets = append(targets, *depthStencil)
	}
	l.record(l.viewTargetCommand("SetRenderTargets", targets...))
}

func (l *CommandList) ClearRenderTargetView(renderTarget gpu.CPUDescriptorHandle, color gputypes.Color) {
	command := l.viewTargetCommand("ClearRenderTargetView", renderTarget)
	command.Args = append(command.Args, color)
	l.record(command)
}

func (l *CommandList) ClearDepthStencilView(depthStencil gpu.CPUDescriptorHandle, flags gpu.ClearFlags, depth float32, stencil uint8) {
	command := l.viewTargetCommand("ClearDepthStencilView", depthStencil)
	command.Args = append(command.Args, flags, depth, stencil)
	l.record(command)
}

func (l *CommandList) ResourceBarrier(resource gpu.Handle, before, after gpu.ResourceState) {
	l.record(Command{
		Op:        "ResourceBarrier",
		Resources: []gpu.Handle{resource},
		Args:      []any{before, after},
	})
}

func (l *CommandList) UnorderedAccessBarrier(resource gpu.Handle) {
	l.record(Command{Op: "UnorderedAccessBarrier", Resources: []gpu.Handle{resource}})
}

func (l *CommandList) CopyBufferRegion(dest gpu.Handle, destOffset int, source gpu.Handle, sourceOffset int, size int) {
	l.record(Command{
		Op:        "CopyBufferRegion",
		Resources: []gpu.Handle{dest, source},
		Args:      []any{destOffset, sourceOffset, size},
		run: func(d *Device) error {
			destData, err := d.BufferData(dest)
			if err != nil {
				return err
			}
			sourceData, err := d.BufferData(source)
			if err != nil {
				return err
			}

			if destOffset < 0 || sourceOffset < 0 || destOffset+size > len(destData) || sourceOffset+size > len(sourceData) {
				return errors.Newf("copy of %d bytes from offset %d to offset %d is out of range", size, sourceOffset, destOffset)
			}

			copy(destData[destOffset:destOffset+size], sourceData[sourceOffset:sourceOffset+size])
			return nil
		},
	})
}

func (l *CommandList) CopyBufferToTexture(dest gpu.Handle, source gpu.Handle, layout gpu.TextureCopyLayout) {
	l.record(Command{
		Op:        "CopyBufferToTexture",
		Resources: []gpu.Handle{dest, source},
		Args:      []any{layout},
		run: func(d *Device) error {
			destData, err := d.BufferData(dest)
			if err != nil {
				return err
			}
			sourceData, err := d.BufferData(source)
			if err != nil {
				return err
			}

			rowSize := gpu.RowPitch(layout.Format, layout.Width)
			if rowSize*layout.Height > len(destData) {
				return errors.Newf("texture copy of %d rows of %d bytes overruns the texture", layout.Height, rowSize)
			}

			for row := 0; row < layout.Height; row++ {
				start := layout.Offset + row*layout.RowPitch
				if start+rowSize > len(sourceData) {
					return errors.Newf("texture copy row %d reads past the end of the source", row)
				}
				copy(destData[row*rowSize:(row+1)*rowSize], sourceData[start:start+rowSize])
			}
			return nil
		},
	})
}

func (l *CommandList) DrawIndexedInstanced(indexCountPerInstance, instanceCount, startIndexLocation, baseVertexLocation, startInstanceLocation int) {
	if l.pipeline.IsNil() && !l.closed && l.err == nil {
		l.err = errors.New("draw recorded without a pipeline state")
	}

	l.record(Command{
		Op:        "DrawIndexedInstanced",
		Resources: []gpu.Handle{l.pipeline},
		Args:      []any{indexCountPerInstance, instanceCount, startIndexLocation, baseVertexLocation, startInstanceLocation},
	})
}

func (l *CommandList) Destroy() {}
