// Package retire defers the release of GPU resources until the GPU can no longer be reading
// them. Each request is tagged with the fence value of the frame that last used the resource;
// a drain releases every request whose value the fence has completed.
package retire

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/pacer/gpu"
)

// Request is one resource awaiting release
type Request struct {
	Resource gpu.Handle
	Frame    uint64
}

// Queue is a FIFO of destroy requests. Requests are released in the order they were enqueued,
// which relies on frame values never decreasing from one Enqueue to the next. Queue is not
// safe for concurrent use.
type Queue struct {
	logger   *slog.Logger
	releaser gpu.Releaser

	requests []Request
	head     int
	released int
}

func New(logger *slog.Logger, releaser gpu.Releaser) *Queue {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Queue{
		logger:   logger,
		releaser: releaser,
	}
}

// Enqueue hands ownership of resource to the queue. It will be released once the fence reaches
// frame. Nil handles are ignored.
func (q *Queue) Enqueue(resource gpu.Handle, frame uint64) error {
	if resource.IsNil() {
		return nil
	}

	if q.Len() > 0 {
		tail := q.requests[len(q.requests)-1]
		if frame < tail.Frame {
			return errors.AssertionFailedf("destroy request for frame %d enqueued behind frame %d", frame, tail.Frame)
		}
	}

	q.requests = append(q.requests, Request{Resource: resource, Frame: frame})
	return nil
}

// DrainUpTo releases every request at the head of the queue whose frame is at or below
// completed, stopping at the first request that is still in use. A failed release does not
// stop the drain; every failure is returned together.
func (q *Queue) DrainUpTo(completed uint64) error {
	var err error
	drained := 0

	for q.head < len(q.requests) && q.requests[q.head].Frame <= completed {
		request := q.requests[q.head]
		q.requests[q.head] = Request{}
		q.head++
		drained++

		releaseErr := q.releaser.Release(request.Resource)
		if releaseErr != nil {
			err = errors.CombineErrors(err, errors.Wrapf(releaseErr, "failed to release %s retired at frame %d", request.Resource, request.Frame))
			continue
		}
		q.released++
	}

	q.compact()

	if drained > 0 {
		q.logger.LogAttrs(context.Background(), slog.LevelDebug, "RetireQueue::DrainUpTo",
			slog.Uint64("Completed", completed),
			slog.Int("Drained", drained),
			slog.Int("Remaining", q.Len()),
		)
	}
	return err
}

// DrainAll releases every request regardless of frame. The GPU must be idle.
func (q *Queue) DrainAll() error {
	if q.Len() == 0 {
		return nil
	}

	return q.DrainUpTo(q.requests[len(q.requests)-1].Frame)
}

// compact drops the consumed prefix once it dominates the backing array
func (q *Queue) compact() {
	if q.head == len(q.requests) {
		q.requests = q.requests[:0]
		q.head = 0
		return
	}

	if q.head > 64 && q.head*2 > len(q.requests) {
		remaining := copy(q.requests, q.requests[q.head:])
		q.requests = q.requests[:remaining]
		q.head = 0
	}
}

// Len returns the number of requests waiting to be released
func (q *Queue) Len() int {
	return len(q.requests) - q.head
}

// Released returns the number of resources successfully released over the queue's lifetime
func (q *Queue) Released() int {
	return q.released
}

// Peek returns the request at the head of the queue
func (q *Queue) Peek() (Request, bool) {
	if q.Len() == 0 {
		return Request{}, false
	}
	return q.requests[q.head], true
}
