package resource

import (
	"errors"
)

var (
	ErrClosed = errors.New("resource backend closed")
	ErrFull   = errors.New("resource table full")
)

// LocalBackend is an in-memory slot store. Each slot keeps a generation
// counter that is bumped on drop, which invalidates every handle issued for
// the previous occupant.
type LocalBackend struct {
	entries  []entry
	freeList []int
	closed   bool
}

type entry struct {
	value  any
	typeID uint32
	gen    uint32
	valid  bool
}

// NewLocalBackend creates a new in-memory backend.
func NewLocalBackend() *LocalBackend {
	return &LocalBackend{
		entries:  make([]entry, 0, 64),
		freeList: make([]int, 0, 16),
	}
}

// Create stores a value and returns a handle.
func (b *LocalBackend) Create(typeID uint32, value any) (Handle, error) {
	if b.closed {
		return 0, ErrClosed
	}

	if len(b.freeList) > 0 {
		idx := b.freeList[len(b.freeList)-1]
		b.freeList = b.freeList[:len(b.freeList)-1]
		e := &b.entries[idx]
		e.typeID = typeID
		e.value = value
		e.valid = true
		return makeHandle(idx, e.gen), nil
	}

	if len(b.entries) >= indexMask {
		return 0, ErrFull
	}
	b.entries = append(b.entries, entry{typeID: typeID, value: value, valid: true})
	return makeHandle(len(b.entries)-1, 0), nil
}

func (b *LocalBackend) lookup(handle Handle) *entry {
	idx := handle.slot()
	if idx < 0 || idx >= len(b.entries) {
		return nil
	}
	e := &b.entries[idx]
	if !e.valid || e.gen&genMask != handle.generation() {
		return nil
	}
	return e
}

// Get retrieves a value by handle.
func (b *LocalBackend) Get(handle Handle) (any, bool) {
	e := b.lookup(handle)
	if e == nil {
		return nil, false
	}
	return e.value, true
}

// TypeID returns the type ID for a handle.
func (b *LocalBackend) TypeID(handle Handle) (uint32, bool) {
	e := b.lookup(handle)
	if e == nil {
		return 0, false
	}
	return e.typeID, true
}

// Drop removes a resource and returns (value, true) if it was live.
func (b *LocalBackend) Drop(handle Handle) (any, bool) {
	e := b.lookup(handle)
	if e == nil {
		return nil, false
	}

	value := e.value
	e.valid = false
	e.value = nil
	e.gen++
	b.freeList = append(b.freeList, handle.slot())

	return value, true
}

// Close releases all resources.
func (b *LocalBackend) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	for i := range b.entries {
		if b.entries[i].valid {
			if d, ok := b.entries[i].value.(Dropper); ok {
				d.Drop()
			}
			b.entries[i].valid = false
			b.entries[i].value = nil
		}
	}

	b.entries = nil
	b.freeList = nil
	return nil
}

// Len returns the number of active resources.
func (b *LocalBackend) Len() int {
	count := 0
	for _, e := range b.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Each iterates over all active resources.
func (b *LocalBackend) Each(fn func(Handle, uint32, any) bool) {
	for i, e := range b.entries {
		if e.valid {
			if !fn(makeHandle(i, e.gen), e.typeID, e.value) {
				break
			}
		}
	}
}
