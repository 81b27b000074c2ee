package native

import (
	"encoding/binary"

	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/native/internal/layout"
)

// MaxArenaSize bounds how far an Arena may grow.
const MaxArenaSize = 64 << 20

const (
	minClass = 8
	// first usable address; 0 stays the null pointer
	arenaBase = 8
)

var (
	_ imguibridge.Memory      = (*Arena)(nil)
	_ imguibridge.MemorySizer = (*Arena)(nil)
	_ imguibridge.Allocator   = (*Arena)(nil)
)

// Arena is a growable linear memory with a bump allocator and per size
// class free lists. Address 0 is never handed out.
type Arena struct {
	free map[uint32][]uint32
	data []byte
	next uint32
}

// NewArena creates an arena with the given initial capacity.
func NewArena(initial uint32) *Arena {
	if initial < arenaBase {
		initial = 64
	}
	return &Arena{
		data: make([]byte, initial),
		next: arenaBase,
		free: make(map[uint32][]uint32),
	}
}

func sizeClass(size uint32) uint32 {
	return layout.AlignTo(max(size, minClass), minClass)
}

// Alloc returns a zeroed region of at least size bytes.
func (a *Arena) Alloc(size, align uint32) (uint32, error) {
	if size == 0 {
		return 0, nil
	}
	class := sizeClass(size)
	if align <= minClass {
		if list := a.free[class]; len(list) > 0 {
			ptr := list[len(list)-1]
			a.free[class] = list[:len(list)-1]
			clear(a.data[ptr : ptr+class])
			return ptr, nil
		}
		align = minClass
	}

	ptr := layout.AlignTo(a.next, align)
	end := uint64(ptr) + uint64(class)
	if end > MaxArenaSize {
		return 0, errors.AllocationFailed(errors.PhaseMemory, size, align)
	}
	if end > uint64(len(a.data)) {
		a.grow(uint32(end))
	}
	a.next = uint32(end)
	return ptr, nil
}

// Free returns a region to its size class.
func (a *Arena) Free(ptr, size, align uint32) {
	if ptr == 0 || size == 0 {
		return
	}
	class := sizeClass(size)
	a.free[class] = append(a.free[class], ptr)
}

func (a *Arena) grow(need uint32) {
	n := uint32(len(a.data)) * 2
	for n < need {
		n *= 2
	}
	n = min(n, MaxArenaSize)
	data := make([]byte, n)
	copy(data, a.data)
	a.data = data
}

// Size returns the current capacity in bytes.
func (a *Arena) Size() uint32 {
	return uint32(len(a.data))
}

// Used returns the high-water mark of the bump allocator.
func (a *Arena) Used() uint32 {
	return a.next
}

func (a *Arena) check(offset, length uint32) error {
	if uint64(offset)+uint64(length) > uint64(len(a.data)) {
		return errors.OutOfBounds(errors.PhaseMemory, nil, int(offset)+int(length), len(a.data))
	}
	return nil
}

// Read returns a copy of length bytes at offset.
func (a *Arena) Read(offset, length uint32) ([]byte, error) {
	if err := a.check(offset, length); err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, a.data[offset:offset+length])
	return out, nil
}

func (a *Arena) Write(offset uint32, data []byte) error {
	if err := a.check(offset, uint32(len(data))); err != nil {
		return err
	}
	copy(a.data[offset:], data)
	return nil
}

func (a *Arena) ReadU8(offset uint32) (uint8, error) {
	if err := a.check(offset, 1); err != nil {
		return 0, err
	}
	return a.data[offset], nil
}

func (a *Arena) ReadU16(offset uint32) (uint16, error) {
	if err := a.check(offset, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(a.data[offset:]), nil
}

func (a *Arena) ReadU32(offset uint32) (uint32, error) {
	if err := a.check(offset, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(a.data[offset:]), nil
}

func (a *Arena) ReadU64(offset uint32) (uint64, error) {
	if err := a.check(offset, 8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(a.data[offset:]), nil
}

func (a *Arena) WriteU8(offset uint32, value uint8) error {
	if err := a.check(offset, 1); err != nil {
		return err
	}
	a.data[offset] = value
	return nil
}

func (a *Arena) WriteU16(offset uint32, value uint16) error {
	if err := a.check(offset, 2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(a.data[offset:], value)
	return nil
}

func (a *Arena) WriteU32(offset uint32, value uint32) error {
	if err := a.check(offset, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(a.data[offset:], value)
	return nil
}

func (a *Arena) WriteU64(offset uint32, value uint64) error {
	if err := a.check(offset, 8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(a.data[offset:], value)
	return nil
}
