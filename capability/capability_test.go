package capability

import (
	"testing"

	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/native"
	"github.com/wippyai/imgui-bridge/resource"
	"github.com/wippyai/imgui-bridge/value"
)

func testType(t *testing.T) *Type {
	t.Helper()
	typ, err := NewType("_Test", resource.TypeIO, []FieldSpec{
		Bool("Enabled"),
		Int("Count"),
		Float("Alpha"),
		Vec2("Size"),
		Vec4("Color"),
		String("Name"),
		Ptr("UserData"),
		Ptr("Ctx").RO(),
		U16("DecimalPoint"),
		S8("Legacy"),
		Float("Version").RO(),
	})
	if err != nil {
		t.Fatalf("NewType failed: %v", err)
	}
	return typ
}

func newWrapper(t *testing.T) (*Wrapper, *resource.ObjectTable, *native.Struct) {
	t.Helper()
	typ := testType(t)
	arena := native.NewArena(256)
	block, err := typ.NewBlock(arena, arena)
	if err != nil {
		t.Fatalf("NewBlock failed: %v", err)
	}
	table := resource.NewTable()
	h := table.Insert(typ.TypeID(), block)
	return typ.Wrap(table, h), table, block
}

func TestWrapper_GetSet(t *testing.T) {
	w, _, _ := newWrapper(t)

	tests := []struct {
		field string
		in    value.Value
		want  value.Value
	}{
		{"Enabled", value.Bool(true), value.Bool(true)},
		{"Count", value.Int(-12), value.Int(-12)},
		{"Alpha", value.Float(0.5), value.Float(0.5)},
		{"Alpha", value.Int(2), value.Float(2)},
		{
			"Size",
			value.List(value.Int(640), value.Int(480)),
			value.Record("vec2", map[string]value.Value{"x": value.Float(640), "y": value.Float(480)}),
		},
		{
			"Color",
			value.List(value.Float(1), value.Float(0.5), value.Float(0.25), value.Float(1)),
			value.Record("vec4", map[string]value.Value{
				"x": value.Float(1), "y": value.Float(0.5), "z": value.Float(0.25), "w": value.Float(1),
			}),
		},
		{"Name", value.String("imgui.ini"), value.String("imgui.ini")},
		{"Name", value.String(""), value.String("")},
		{"UserData", value.Pointer(0x40), value.Pointer(0x40)},
		{"UserData", value.None(), value.None()},
		{"DecimalPoint", value.Int('.'), value.Int('.')},
		{"Legacy", value.Int(-1), value.Int(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.field+"="+tt.in.String(), func(t *testing.T) {
			if err := w.Set(tt.field, tt.in); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			got, err := w.Get(tt.field)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrapper_Zeroed(t *testing.T) {
	w, _, _ := newWrapper(t)
	for _, name := range w.Fields() {
		v, err := w.Get(name)
		if err != nil {
			t.Fatalf("Get(%s) failed: %v", name, err)
		}
		switch name {
		case "Name":
			if !v.Equal(value.String("")) {
				t.Errorf("%s = %v, want empty string", name, v)
			}
		case "UserData", "Ctx":
			if !v.IsNone() {
				t.Errorf("%s = %v, want None", name, v)
			}
		}
	}
}

func TestWrapper_Errors(t *testing.T) {
	w, _, block := newWrapper(t)
	if err := block.SetFloat("Version", 1.5); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		field string
		in    value.Value
		kind  errors.Kind
	}{
		{"read-only float", "Version", value.Float(2), errors.KindUnsupported},
		{"read-only pointer", "Ctx", value.Pointer(1), errors.KindUnsupported},
		{"unknown field", "Nope", value.Int(1), errors.KindNotFound},
		{"bool from int", "Enabled", value.Int(1), errors.KindTypeMismatch},
		{"int from float", "Count", value.Float(1.5), errors.KindTypeMismatch},
		{"vec2 from str", "Size", value.String("1,2"), errors.KindTypeMismatch},
		{"u16 negative", "DecimalPoint", value.Int(-1), errors.KindTypeMismatch},
		{"u16 overflow", "DecimalPoint", value.Int(70000), errors.KindTypeMismatch},
		{"s8 overflow", "Legacy", value.Int(128), errors.KindTypeMismatch},
		{"pointer from int", "UserData", value.Int(64), errors.KindTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := w.Set(tt.field, tt.in)
			if !errors.IsKind(err, tt.kind) {
				t.Fatalf("expected %s, got %v", tt.kind, err)
			}
			if e := err.(*errors.Error); e.Phase != errors.PhaseField {
				t.Errorf("phase = %s, want field", e.Phase)
			}
		})
	}

	v, err := w.Get("Version")
	if err != nil || !v.Equal(value.Float(1.5)) {
		t.Errorf("read-only field changed: %v, %v", v, err)
	}
	if _, err := w.Get("Nope"); !errors.IsKind(err, errors.KindNotFound) {
		t.Errorf("expected not_found, got %v", err)
	}
}

func TestWrapper_Destroyed(t *testing.T) {
	w, table, _ := newWrapper(t)
	if !w.Alive() {
		t.Fatal("fresh wrapper not alive")
	}
	table.Remove(w.Handle())

	if w.Alive() {
		t.Error("wrapper alive after removal")
	}
	if _, err := w.Get("Count"); !errors.IsKind(err, errors.KindInvalidArgument) {
		t.Errorf("Get: expected invalid_argument, got %v", err)
	}
	if err := w.Set("Count", value.Int(1)); !errors.IsKind(err, errors.KindInvalidArgument) {
		t.Errorf("Set: expected invalid_argument, got %v", err)
	}

	// a new block in the freed slot must not revive the old wrapper
	arena := native.NewArena(64)
	block, _ := w.Type().NewBlock(arena, arena)
	table.Insert(w.Type().TypeID(), block)
	if w.Alive() {
		t.Error("stale wrapper resolved a reused slot")
	}
}

func TestWrapper_WrongType(t *testing.T) {
	typ := testType(t)
	table := resource.NewTable()
	h := table.Insert(resource.TypeStyle, "not a block")
	w := typ.Wrap(table, h)
	if _, err := w.Get("Count"); !errors.IsKind(err, errors.KindInvalidArgument) {
		t.Errorf("expected invalid_argument, got %v", err)
	}
}

func TestType_New(t *testing.T) {
	typ := testType(t)
	for _, args := range [][]value.Value{nil, {value.Int(1)}} {
		w, err := typ.New(args...)
		if w != nil {
			t.Error("New returned a wrapper")
		}
		if !errors.IsKind(err, errors.KindUnsupported) {
			t.Errorf("expected unsupported, got %v", err)
		}
	}
}

func TestNewType_Errors(t *testing.T) {
	_, err := NewType("_Dup", resource.TypeIO, []FieldSpec{Int("A"), Float("A")})
	if !errors.IsKind(err, errors.KindInvalidArgument) {
		t.Errorf("duplicate field: expected invalid_argument, got %v", err)
	}
}

func TestType_Fields(t *testing.T) {
	typ := testType(t)
	fields := typ.Fields()
	if len(fields) != 11 || fields[0] != "Enabled" || fields[10] != "Version" {
		t.Errorf("fields = %v", fields)
	}
	fields[0] = "mutated"
	if typ.Fields()[0] != "Enabled" {
		t.Error("Fields exposes internal slice")
	}
	if spec, ok := typ.Spec("Ctx"); !ok || !spec.ReadOnly {
		t.Errorf("Ctx spec = %+v, %v", spec, ok)
	}
}
