package soft

import (
	"log/slog"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/pacer/gpu"
)

type workItem struct {
	// commands is nil for signal items
	commands   []Command
	submission uint64

	fence *Fence
	value uint64
}

// Queue is a gpu.CommandQueue that executes submitted work in order on the emulated timeline
type Queue struct {
	device *Device

	mutex     sync.Mutex
	cond      *sync.Cond
	pending   []workItem
	submitted uint64
	completed uint64
	closed    bool
}

var _ gpu.CommandQueue = &Queue{}

func newQueue(device *Device) *Queue {
	queue := &Queue{device: device}
	queue.cond = sync.NewCond(&queue.mutex)
	return queue
}

func (q *Queue) ExecuteCommandLists(lists ...gpu.CommandList) error {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	if q.closed {
		return errors.New("command queue has been destroyed")
	}

	for _, list := range lists {
		softList, ok := list.(*CommandList)
		if !ok {
			return errors.Newf("command list of type %T was not created by the software device", list)
		}
		if !softList.closed {
			return errors.New("command list must be closed before it is executed")
		}
		if softList.err != nil {
			return errors.Wrap(softList.err, "command list recorded an invalid command")
		}

		q.submitted++
		softList.allocator.markSubmitted(q, q.submitted)
		q.pending = append(q.pending, workItem{
			commands:   append([]Command(nil), softList.commands...),
			submission: q.submitted,
		})
	}

	q.cond.Broadcast()
	return nil
}

func (q *Queue) Signal(fence gpu.Fence, value uint64) error {
	softFence, ok := fence.(*Fence)
	if !ok {
		return errors.Newf("fence of type %T was not created by the software device", fence)
	}

	q.mutex.Lock()
	defer q.mutex.Unlock()

	if q.closed {
		return errors.New("command queue has been destroyed")
	}

	q.pending = append(q.pending, workItem{fence: softFence, value: value})
	q.cond.Broadcast()
	return nil
}

// Pending returns the number of submitted command lists and signals that have not run yet
func (q *Queue) Pending() int {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	return len(q.pending)
}

func (q *Queue) completedSubmission() uint64 {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	return q.completed
}

func (q *Queue) execute(item workItem) {
	if item.fence != nil {
		item.fence.signal(item.value)
		return
	}

	for _, command := range item.commands {
		err := command.execute(q.device)
		if err != nil {
			q.device.fault(errors.Wrapf(err, "executing %s", command.Op))
		}
	}

	q.mutex.Lock()
	q.completed = item.submission
	q.mutex.Unlock()
}

func (q *Queue) pop() (workItem, bool) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	if len(q.pending) == 0 {
		return workItem{}, false
	}

	item := q.pending[0]
	q.pending = q.pending[1:]
	return item, true
}

// CompleteNext runs pending work up to and including the next fence signal. It returns false
// if the queue had no signal pending, in which case every pending command list has run.
func (q *Queue) CompleteNext() bool {
	for {
		item, ok := q.pop()
		if !ok {
			return false
		}

		q.execute(item)
		if item.fence != nil {
			return true
		}
	}
}

// CompleteAll runs every pending command list and signal
func (q *Queue) CompleteAll() {
	for q.CompleteNext() {
	}
}

func (q *Queue) run() {
	for {
		q.mutex.Lock()
		for len(q.pending) == 0 && !q.closed {
			q.cond.Wait()
		}
		if q.closed && len(q.pending) == 0 {
			q.mutex.Unlock()
			return
		}
		item := q.pending[0]
		q.pending = q.pending[1:]
		q.mutex.Unlock()

		if item.fence != nil && q.device.options.Latency > 0 {
			time.Sleep(q.device.options.Latency)
		}
		q.execute(item)
	}
}

// Destroy stops the worker after it finishes the work already submitted
func (q *Queue) Destroy() {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	if !q.closed {
		q.device.logger.Debug("Queue::Destroy", slog.Int("Pending", len(q.pending)))
	}
	q.closed = true
	q.cond.Broadcast()
}

// Fence is a gpu.Fence advanced by the emulated timeline
type Fence struct {
	mutex     sync.Mutex
	cond      *sync.Cond
	completed uint64
	waiters   int
}

var _ gpu.Fence = &Fence{}

func newFence(initialValue uint64) *Fence {
	fence := &Fence{completed: initialValue}
	fence.cond = sync.NewCond(&fence.mutex)
	return fence
}

func (f *Fence) signal(value uint64) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	// The completed value never moves backwards
	if value > f.completed {
		f.completed = value
	}
	f.cond.Broadcast()
}

// Signal sets the fence from the host side, as if the GPU had reached value
func (f *Fence) Signal(value uint64) {
	f.signal(value)
}

func (f *Fence) CompletedValue() uint64 {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	return f.completed
}

func (f *Fence) Wait(value uint64) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.waiters++
	for f.completed < value {
		f.cond.Wait()
	}
	f.waiters--
	f.cond.Broadcast()

	return nil
}

// Waiting returns the number of goroutines blocked in Wait
func (f *Fence) Waiting() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	return f.waiters
}

// AwaitWaiter blocks until at least one goroutine is blocked in Wait or timeout elapses, and
// reports which happened
func (f *Fence) AwaitWaiter(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if f.Waiting() > 0 {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return f.Waiting() > 0
}

func (f *Fence) Destroy() {}
