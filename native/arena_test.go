package native

import (
	"testing"

	"github.com/wippyai/imgui-bridge/errors"
)

func TestArena_AllocNeverReturnsNull(t *testing.T) {
	a := NewArena(0)
	ptr, err := a.Alloc(4, 4)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if ptr == 0 {
		t.Fatal("Alloc returned the null address")
	}
	if ptr%8 != 0 {
		t.Errorf("ptr %d not 8-aligned", ptr)
	}
}

func TestArena_ZeroSize(t *testing.T) {
	a := NewArena(64)
	ptr, err := a.Alloc(0, 1)
	if err != nil || ptr != 0 {
		t.Fatalf("Alloc(0) = %d, %v; want 0, nil", ptr, err)
	}
}

func TestArena_Grow(t *testing.T) {
	a := NewArena(16)
	ptr, err := a.Alloc(1000, 8)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if a.Size() < ptr+1000 {
		t.Fatalf("Size() = %d, want >= %d", a.Size(), ptr+1000)
	}
	if err := a.WriteU32(ptr+996, 0xdeadbeef); err != nil {
		t.Fatalf("WriteU32: %v", err)
	}
	v, err := a.ReadU32(ptr + 996)
	if err != nil || v != 0xdeadbeef {
		t.Fatalf("ReadU32 = %#x, %v", v, err)
	}
}

func TestArena_FreeReuses(t *testing.T) {
	a := NewArena(64)
	p1, _ := a.Alloc(12, 4)
	if err := a.WriteU32(p1, 7); err != nil {
		t.Fatal(err)
	}
	a.Free(p1, 12, 4)

	p2, _ := a.Alloc(16, 4)
	if p2 != p1 {
		t.Fatalf("expected reuse of %d, got %d", p1, p2)
	}
	v, _ := a.ReadU32(p2)
	if v != 0 {
		t.Errorf("reused block not zeroed: %d", v)
	}
}

func TestArena_LargeAlignment(t *testing.T) {
	a := NewArena(64)
	_, _ = a.Alloc(3, 1)
	ptr, err := a.Alloc(16, 64)
	if err != nil {
		t.Fatal(err)
	}
	if ptr%64 != 0 {
		t.Errorf("ptr %d not 64-aligned", ptr)
	}
}

func TestArena_OutOfBounds(t *testing.T) {
	a := NewArena(64)

	tests := []struct {
		name string
		fn   func() error
	}{
		{"read", func() error { _, err := a.Read(60, 8); return err }},
		{"write", func() error { return a.Write(63, []byte{1, 2}) }},
		{"u8", func() error { _, err := a.ReadU8(64); return err }},
		{"u16", func() error { return a.WriteU16(63, 1) }},
		{"u64", func() error { _, err := a.ReadU64(60); return err }},
		{"overflow", func() error { _, err := a.Read(0xffffffff, 2); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			if !errors.IsKind(err, errors.KindOutOfBounds) {
				t.Fatalf("got %v, want out_of_bounds", err)
			}
		})
	}
}

func TestArena_TooLarge(t *testing.T) {
	a := NewArena(64)
	_, err := a.Alloc(MaxArenaSize, 8)
	if !errors.IsKind(err, errors.KindAllocation) {
		t.Fatalf("got %v, want allocation error", err)
	}
}

func TestArena_RoundTripWidths(t *testing.T) {
	a := NewArena(64)
	ptr, _ := a.Alloc(16, 8)

	if err := a.WriteU8(ptr, 0xab); err != nil {
		t.Fatal(err)
	}
	if err := a.WriteU16(ptr+2, 0xbeef); err != nil {
		t.Fatal(err)
	}
	if err := a.WriteU64(ptr+8, 0x0102030405060708); err != nil {
		t.Fatal(err)
	}

	if v, _ := a.ReadU8(ptr); v != 0xab {
		t.Errorf("u8 = %#x", v)
	}
	if v, _ := a.ReadU16(ptr + 2); v != 0xbeef {
		t.Errorf("u16 = %#x", v)
	}
	if v, _ := a.ReadU64(ptr + 8); v != 0x0102030405060708 {
		t.Errorf("u64 = %#x", v)
	}
	b, _ := a.Read(ptr+8, 2)
	if b[0] != 0x08 || b[1] != 0x07 {
		t.Errorf("not little-endian: %v", b)
	}
}
