package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:      PhaseMarshal,
				Kind:       KindTypeMismatch,
				Path:       []string{"Button", "size"},
				Position:   2,
				HostKind:   "str",
				NativeKind: "vec2",
				Detail:     "cannot convert",
			},
			contains: []string{"[marshal]", "type_mismatch", "Button.size", "(arg 2)", "host str", "native vec2", "cannot convert"},
		},
		{
			name: "index segment",
			err: &Error{
				Phase: PhaseMarshal,
				Kind:  KindTypeMismatch,
				Path:  []string{"Combo", "items", "[1]"},
			},
			contains: []string{"at Combo.items[1]"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseMemory,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[memory]", "out_of_bounds"},
		},
		{
			name: "native kind only",
			err: &Error{
				Phase:      PhaseMarshal,
				Kind:       KindNilPointer,
				NativeKind: "char_p",
			},
			contains: []string{"native char_p"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseHost,
				Kind:   KindAllocation,
				Detail: "memory full",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[host]", "allocation", "memory full", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseWire,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseMarshal,
		Kind:  KindTypeMismatch,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseMarshal, Kind: KindTypeMismatch}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseUnmarshal, Kind: KindTypeMismatch}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseMarshal, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseMarshal, Kind: KindTypeMismatch}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestError_WithArg(t *testing.T) {
	base := TypeMismatch(PhaseMarshal, []string{"x"}, "str", "vec2")
	bound := base.WithArg("SetCursorPos", 1, "pos")

	if bound == base {
		t.Fatal("WithArg should return a copy")
	}
	if bound.Position != 1 {
		t.Errorf("Position = %d, want 1", bound.Position)
	}
	want := []string{"SetCursorPos", "pos", "x"}
	if strings.Join(bound.Path, ".") != strings.Join(want, ".") {
		t.Errorf("Path = %v, want %v", bound.Path, want)
	}
	if len(base.Path) != 1 || base.Position != 0 {
		t.Errorf("original mutated: %+v", base)
	}
}

func TestIsKind(t *testing.T) {
	inner := Unsupported(PhaseField, "read-only field")
	outer := Wrap(PhaseHost, KindInvalidData, inner, "guest call")
	wrapped := fmt.Errorf("call: %w", outer)

	if !IsKind(wrapped, KindInvalidData) {
		t.Error("IsKind should find outer kind")
	}
	if !IsKind(wrapped, KindUnsupported) {
		t.Error("IsKind should find kind in cause chain")
	}
	if IsKind(wrapped, KindArity) {
		t.Error("IsKind should not match absent kind")
	}
	if IsKind(errors.New("plain"), KindArity) {
		t.Error("IsKind should be false for plain errors")
	}
	if IsKind(nil, KindArity) {
		t.Error("IsKind should be false for nil")
	}
}

func TestKindOf(t *testing.T) {
	if k := KindOf(fmt.Errorf("x: %w", Arity("Text", 1, 1, 0))); k != KindArity {
		t.Errorf("KindOf = %q, want %q", k, KindArity)
	}
	if k := KindOf(errors.New("plain")); k != "" {
		t.Errorf("KindOf = %q, want empty", k)
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseMarshal, KindTypeMismatch).
		Path("Button", "size").
		Position(2).
		HostKind("str").
		NativeKind("vec2").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "vec2", "str").
		Build()

	if err.Phase != PhaseMarshal {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseMarshal)
	}
	if err.Kind != KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
	}
	if len(err.Path) != 2 || err.Path[0] != "Button" || err.Path[1] != "size" {
		t.Errorf("Path = %v, want [Button size]", err.Path)
	}
	if err.Position != 2 {
		t.Errorf("Position = %d, want 2", err.Position)
	}
	if err.HostKind != "str" || err.NativeKind != "vec2" {
		t.Errorf("HostKind=%q NativeKind=%q", err.HostKind, err.NativeKind)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected vec2, got str" {
		t.Errorf("Detail = %v, want 'expected vec2, got str'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("TypeMismatch", func(t *testing.T) {
		err := TypeMismatch(PhaseMarshal, []string{"field"}, "int", "str")
		if err.Kind != KindTypeMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
		}
		if err.HostKind != "int" || err.NativeKind != "str" {
			t.Errorf("HostKind=%v NativeKind=%v", err.HostKind, err.NativeKind)
		}
	})

	t.Run("InvalidArgument", func(t *testing.T) {
		err := InvalidArgument(PhaseCall, []string{"buf"}, "capacity is zero")
		if err.Kind != KindInvalidArgument || err.Detail != "capacity is zero" {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("Arity", func(t *testing.T) {
		cases := []struct {
			min, max, got int
			want          string
		}{
			{1, 1, 0, "expected 1 argument(s), got 0"},
			{1, 3, 0, "expected at least 1 argument(s), got 0"},
			{1, 3, 5, "expected at most 3 argument(s), got 5"},
		}
		for _, c := range cases {
			err := Arity("Fn", c.min, c.max, c.got)
			if err.Kind != KindArity || err.Detail != c.want {
				t.Errorf("Arity(%d,%d,%d) = %q, want %q", c.min, c.max, c.got, err.Detail, c.want)
			}
		}
	})

	t.Run("AllocationFailed", func(t *testing.T) {
		err := AllocationFailed(PhaseMemory, 1024, 8)
		if err.Kind != KindAllocation {
			t.Errorf("Kind = %v, want %v", err.Kind, KindAllocation)
		}
		if !strings.Contains(err.Detail, "1024") {
			t.Errorf("Detail = %v, should contain size", err.Detail)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseField, "constructing ImGuiIO")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseMemory, []string{"block"}, 10, 5)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if err.Value != 10 {
			t.Errorf("Value = %v, want 10", err.Value)
		}
	})

	t.Run("NilPointer", func(t *testing.T) {
		err := NilPointer(PhaseMarshal, []string{"ptr"}, "char_p")
		if err.Kind != KindNilPointer {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNilPointer)
		}
		if err.NativeKind != "char_p" {
			t.Errorf("NativeKind = %v, want 'char_p'", err.NativeKind)
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		err := Overflow(PhaseMarshal, []string{"val"}, int64(1)<<40, "int")
		if err.Kind != KindOverflow {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOverflow)
		}
		if err.NativeKind != "int" {
			t.Errorf("NativeKind = %v, want int", err.NativeKind)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseDispatch, "function", "Nope")
		if err.Kind != KindNotFound || !strings.Contains(err.Detail, `"Nope"`) {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("Registration", func(t *testing.T) {
		cause := errors.New("dup")
		err := Registration("imgui", "call", cause)
		if err.Phase != PhaseRegister || !errors.Is(err, cause) {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("ParseFailed", func(t *testing.T) {
		err := ParseFailed("signature", errors.New("bad token"))
		if err.Phase != PhaseParse || err.Kind != KindInvalidData {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("NotInitialized", func(t *testing.T) {
		err := NotInitialized(PhaseCall, "context")
		if err.Kind != KindNotInitialized || err.Detail != "context not initialized" {
			t.Errorf("got %+v", err)
		}
	})
}
