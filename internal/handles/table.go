// Package handles provides a table that hands out small integer handles with a generation
// counter, so a handle that outlives its slot is detected instead of aliasing whatever was
// stored there next.
package handles

import (
	"github.com/cockroachdb/errors"
)

// ErrStaleHandle is returned when a handle refers to a slot that has since been freed or reused
var ErrStaleHandle = errors.New("handle is stale or was never issued")

// ID identifies one entry in a Table. The zero ID is never issued.
type ID struct {
	Index      uint32
	Generation uint32
}

func (id ID) IsZero() bool {
	return id.Generation == 0
}

type slot[T any] struct {
	value      T
	generation uint32
	live       bool
}

// Table stores values behind generation-checked IDs. Freed slots are reused in LIFO order and
// their generation is bumped so earlier IDs stop resolving. Table is not safe for concurrent use.
type Table[T any] struct {
	slots    []slot[T]
	freeList []uint32
	live     int
}

func NewTable[T any](capacity int) *Table[T] {
	return &Table[T]{
		slots: make([]slot[T], 0, capacity),
	}
}

func (t *Table[T]) Insert(value T) ID {
	var index uint32
	if len(t.freeList) > 0 {
		index = t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
	} else {
		index = uint32(len(t.slots))
		t.slots = append(t.slots, slot[T]{})
	}

	s := &t.slots[index]
	s.generation++
	if s.generation == 0 {
		// Generation 0 is reserved for the zero ID
		s.generation = 1
	}
	s.value = value
	s.live = true
	t.live++

	return ID{Index: index, Generation: s.generation}
}

func (t *Table[T]) lookup(id ID) (*slot[T], error) {
	if id.IsZero() || int(id.Index) >= len(t.slots) {
		return nil, errors.Wrapf(ErrStaleHandle, "index %d generation %d", id.Index, id.Generation)
	}

	s := &t.slots[id.Index]
	if !s.live || s.generation != id.Generation {
		return nil, errors.Wrapf(ErrStaleHandle, "index %d generation %d", id.Index, id.Generation)
	}

	return s, nil
}

func (t *Table[T]) Get(id ID) (T, error) {
	s, err := t.lookup(id)
	if err != nil {
		var zero T
		return zero, err
	}

	return s.value, nil
}

// Remove frees the slot for id and returns the value that was stored there
func (t *Table[T]) Remove(id ID) (T, error) {
	var zero T

	s, err := t.lookup(id)
	if err != nil {
		return zero, err
	}

	value := s.value
	s.value = zero
	s.live = false
	t.live--
	t.freeList = append(t.freeList, id.Index)

	return value, nil
}

// Len returns the number of live entries
func (t *Table[T]) Len() int {
	return t.live
}

// Range calls fn for each live entry until fn returns false
func (t *Table[T]) Range(fn func(id ID, value T) bool) {
	for i := range t.slots {
		s := &t.slots[i]
		if !s.live {
			continue
		}

		if !fn(ID{Index: uint32(i), Generation: s.generation}, s.value) {
			return
		}
	}
}
