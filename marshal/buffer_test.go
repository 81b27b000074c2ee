package marshal

import (
	"bytes"
	"slices"
	"testing"

	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/value"
)

func TestFlattenStrings(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  []byte
	}{
		{"empty", nil, []byte{0}},
		{"one", []string{"a"}, []byte("a\x00\x00")},
		{"trailing empty", []string{"a", "bb", ""}, []byte("a\x00bb\x00\x00\x00")},
		{"three", []string{"Apple", "Banana", "Cherry"}, []byte("Apple\x00Banana\x00Cherry\x00\x00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FlattenStrings(tt.items)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFlattenList(t *testing.T) {
	got, err := FlattenList(value.List(value.String("x"), value.String("yz")))
	if err != nil {
		t.Fatalf("FlattenList failed: %v", err)
	}
	if want := []byte("x\x00yz\x00\x00"); !bytes.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	_, err = FlattenList(value.List(value.String("x"), value.Int(1)))
	if !errors.IsKind(err, errors.KindTypeMismatch) {
		t.Fatalf("expected type_mismatch, got %v", err)
	}
	if e := err.(*errors.Error); len(e.Path) != 1 || e.Path[0] != "[1]" {
		t.Errorf("path = %v, want [1]", e.Path)
	}
}

func TestSplitFlattened(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []string
	}{
		{"empty", []byte{0}, nil},
		{"three", FlattenStrings([]string{"a", "b", "c"}), []string{"a", "b", "c"}},
		{"stops at empty entry", FlattenStrings([]string{"a", "", "c"}), []string{"a"}},
		{"unterminated", []byte("tail"), []string{"tail"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitFlattened(tt.in); !slices.Equal(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextBuffer(t *testing.T) {
	t.Run("zero capacity", func(t *testing.T) {
		_, err := NewTextBuffer(0)
		if !errors.IsKind(err, errors.KindInvalidArgument) {
			t.Errorf("expected invalid_argument, got %v", err)
		}
	})

	t.Run("set and read", func(t *testing.T) {
		b, err := NewTextBufferString("hello", 16)
		if err != nil {
			t.Fatal(err)
		}
		if b.Text() != "hello" || b.Cap() != 16 {
			t.Errorf("got %q cap %d", b.Text(), b.Cap())
		}
		if b.SetText("hi") {
			t.Error("short text reported as truncated")
		}
		if b.Text() != "hi" {
			t.Errorf("got %q, want hi", b.Text())
		}
		if b.Bytes()[2] != 0 || b.Bytes()[4] != 0 {
			t.Error("stale bytes after shorter text")
		}
	})

	t.Run("truncates without growing", func(t *testing.T) {
		b, _ := NewTextBuffer(4)
		if !b.SetText("abcdef") {
			t.Error("expected truncation")
		}
		if b.Text() != "abc" || b.Cap() != 4 {
			t.Errorf("got %q cap %d", b.Text(), b.Cap())
		}
	})

	t.Run("truncates at rune boundary", func(t *testing.T) {
		b, _ := NewTextBuffer(4)
		b.SetText("aé€")
		if b.Text() != "aé" {
			t.Errorf("got %q, want aé", b.Text())
		}
	})

	t.Run("invalid byte does not erase the text", func(t *testing.T) {
		b, _ := NewTextBuffer(8)
		if !b.SetText("\xffabcdefghij") {
			t.Error("expected truncation")
		}
		if b.Text() != "\xffabcdef" {
			t.Errorf("got %q, want %q", b.Text(), "\xffabcdef")
		}
	})

	t.Run("drops a split rune", func(t *testing.T) {
		b, _ := NewTextBuffer(4)
		b.SetText("a€")
		if b.Text() != "a" {
			t.Errorf("got %q, want a", b.Text())
		}
	})

	t.Run("fields", func(t *testing.T) {
		b, _ := NewTextBuffer(8)
		if err := b.Set("value", value.String("abc")); err != nil {
			t.Fatal(err)
		}
		v, err := b.Get("value")
		if err != nil || !v.Equal(value.String("abc")) {
			t.Errorf("value = %v, %v", v, err)
		}
		c, _ := b.Get("capacity")
		if !c.Equal(value.Int(8)) {
			t.Errorf("capacity = %v", c)
		}
		if err := b.Set("capacity", value.Int(32)); !errors.IsKind(err, errors.KindUnsupported) {
			t.Errorf("expected unsupported, got %v", err)
		}
		if err := b.Set("value", value.Int(1)); !errors.IsKind(err, errors.KindTypeMismatch) {
			t.Errorf("expected type_mismatch, got %v", err)
		}
		if _, err := b.Get("size"); !errors.IsKind(err, errors.KindNotFound) {
			t.Errorf("expected not_found, got %v", err)
		}
	})
}

func TestCheckBuffer(t *testing.T) {
	good, _ := NewTextBuffer(32)
	closed, _ := NewTextBuffer(32)
	closed.Close()

	tests := []struct {
		name     string
		buf      *TextBuffer
		declared int
		ok       bool
	}{
		{"valid", good, 32, true},
		{"smaller declared", good, 8, true},
		{"nil buffer", nil, 32, false},
		{"closed", closed, 32, false},
		{"zero capacity", good, 0, false},
		{"negative capacity", good, -1, false},
		{"declared exceeds real", good, 33, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckBuffer(tt.buf, tt.declared)
			if tt.ok {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.IsKind(err, errors.KindInvalidArgument) {
				t.Errorf("expected invalid_argument, got %v", err)
			}
		})
	}
}

func TestRefs(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		r := NewBoolRef(false)
		if err := r.Set("value", value.Bool(true)); err != nil {
			t.Fatal(err)
		}
		if !r.Value() {
			t.Error("value not stored")
		}
		if err := r.Set("value", value.Int(1)); !errors.IsKind(err, errors.KindTypeMismatch) {
			t.Errorf("expected type_mismatch, got %v", err)
		}
		if _, err := r.Get("v"); !errors.IsKind(err, errors.KindNotFound) {
			t.Errorf("expected not_found, got %v", err)
		}
	})

	t.Run("int scalar", func(t *testing.T) {
		r := NewIntRef()
		if r.Len() != 1 || r.Value() != 0 {
			t.Fatalf("default ref = %v", r.Values())
		}
		if err := r.Set("value", value.Int(5)); err != nil {
			t.Fatal(err)
		}
		v, _ := r.Get("value")
		if !v.Equal(value.Int(5)) {
			t.Errorf("got %v", v)
		}
	})

	t.Run("float components", func(t *testing.T) {
		r := NewFloatRef(1, 2, 3)
		v, _ := r.Get("value")
		want := value.List(value.Float(1), value.Float(2), value.Float(3))
		if !v.Equal(want) {
			t.Errorf("got %v, want %v", v, want)
		}
		if err := r.Set("value", value.List(value.Float(0.5), value.Int(4), value.Float(-1))); err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(r.Values(), []float32{0.5, 4, -1}) {
			t.Errorf("got %v", r.Values())
		}
		if err := r.Set("value", value.Float(1)); !errors.IsKind(err, errors.KindTypeMismatch) {
			t.Errorf("scalar into 3 components: expected type_mismatch, got %v", err)
		}
	})

	t.Run("int overflow", func(t *testing.T) {
		r := NewIntRef(1, 2)
		err := r.Set("value", value.List(value.Int(1), value.Int(1<<40)))
		if !errors.IsKind(err, errors.KindTypeMismatch) {
			t.Errorf("expected type_mismatch, got %v", err)
		}
		if r.Values()[0] != 1 {
			t.Error("partial write on failure")
		}
	})
}
