package wasmhost

import (
	"github.com/tetratelabs/wazero/api"

	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/errors"
)

// guestMemory wraps a guest's linear memory as a bridge Memory.
type guestMemory struct {
	mem api.Memory
}

var (
	_ imguibridge.Memory      = guestMemory{}
	_ imguibridge.MemorySizer = guestMemory{}
)

func outOfBounds(offset, length uint32, size uint32) error {
	return errors.New(errors.PhaseMemory, errors.KindOutOfBounds).
		Value(offset).
		Detail("guest access [%d, %d) outside memory of %d bytes", offset, uint64(offset)+uint64(length), size).
		Build()
}

func (m guestMemory) Read(offset, length uint32) ([]byte, error) {
	data, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, outOfBounds(offset, length, m.Size())
	}
	return data, nil
}

func (m guestMemory) Write(offset uint32, data []byte) error {
	if !m.mem.Write(offset, data) {
		return outOfBounds(offset, uint32(len(data)), m.Size())
	}
	return nil
}

func (m guestMemory) ReadU8(offset uint32) (uint8, error) {
	v, ok := m.mem.ReadByte(offset)
	if !ok {
		return 0, outOfBounds(offset, 1, m.Size())
	}
	return v, nil
}

func (m guestMemory) ReadU16(offset uint32) (uint16, error) {
	v, ok := m.mem.ReadUint16Le(offset)
	if !ok {
		return 0, outOfBounds(offset, 2, m.Size())
	}
	return v, nil
}

func (m guestMemory) ReadU32(offset uint32) (uint32, error) {
	v, ok := m.mem.ReadUint32Le(offset)
	if !ok {
		return 0, outOfBounds(offset, 4, m.Size())
	}
	return v, nil
}

func (m guestMemory) ReadU64(offset uint32) (uint64, error) {
	v, ok := m.mem.ReadUint64Le(offset)
	if !ok {
		return 0, outOfBounds(offset, 8, m.Size())
	}
	return v, nil
}

func (m guestMemory) WriteU8(offset uint32, value uint8) error {
	if !m.mem.WriteByte(offset, value) {
		return outOfBounds(offset, 1, m.Size())
	}
	return nil
}

func (m guestMemory) WriteU16(offset uint32, value uint16) error {
	if !m.mem.WriteUint16Le(offset, value) {
		return outOfBounds(offset, 2, m.Size())
	}
	return nil
}

func (m guestMemory) WriteU32(offset uint32, value uint32) error {
	if !m.mem.WriteUint32Le(offset, value) {
		return outOfBounds(offset, 4, m.Size())
	}
	return nil
}

func (m guestMemory) WriteU64(offset uint32, value uint64) error {
	if !m.mem.WriteUint64Le(offset, value) {
		return outOfBounds(offset, 8, m.Size())
	}
	return nil
}

func (m guestMemory) Size() uint32 {
	if m.mem == nil {
		return 0
	}
	return m.mem.Size()
}
