package resource

import (
	"errors"
	"testing"
)

func TestLocalBackend_Basic(t *testing.T) {
	b := NewLocalBackend()

	handle, err := b.Create(TypeIO, "test value")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if handle == 0 {
		t.Fatal("Expected non-zero handle")
	}

	val, ok := b.Get(handle)
	if !ok || val != "test value" {
		t.Fatalf("Get = %v, %v", val, ok)
	}

	val, ok = b.Drop(handle)
	if !ok || val != "test value" {
		t.Fatalf("Drop = %v, %v", val, ok)
	}

	if _, ok = b.Get(handle); ok {
		t.Fatal("Expected Get to fail after Drop")
	}
	if _, ok = b.TypeID(handle); ok {
		t.Fatal("Expected TypeID to fail after Drop")
	}
}

func TestLocalBackend_GenerationWraps(t *testing.T) {
	b := NewLocalBackend()

	var last Handle
	for i := 0; i < genMask+3; i++ {
		h, err := b.Create(TypeFont, i)
		if err != nil {
			t.Fatal(err)
		}
		if h == 0 {
			t.Fatalf("iteration %d produced handle 0", i)
		}
		if _, ok := b.Get(h); !ok {
			t.Fatalf("iteration %d: fresh handle does not resolve", i)
		}
		b.Drop(h)
		last = h
	}
	if b.Len() != 0 || last.slot() != 0 {
		t.Fatalf("expected a single reused slot, Len=%d slot=%d", b.Len(), last.slot())
	}
}

func TestLocalBackend_Each(t *testing.T) {
	b := NewLocalBackend()
	h1, _ := b.Create(TypeDrawList, "a")
	h2, _ := b.Create(TypeDrawList, "b")
	b.Drop(h1)

	var seen []Handle
	b.Each(func(h Handle, typeID uint32, v any) bool {
		seen = append(seen, h)
		return true
	})
	if len(seen) != 1 || seen[0] != h2 {
		t.Fatalf("Each saw %v, want [%v]", seen, h2)
	}
}

func TestLocalBackend_Closed(t *testing.T) {
	b := NewLocalBackend()
	if err := b.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Create(TypeIO, nil); !errors.Is(err, ErrClosed) {
		t.Fatalf("Create after Close = %v, want ErrClosed", err)
	}
}
