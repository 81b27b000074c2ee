package native

import (
	"testing"

	"github.com/wippyai/imgui-bridge/errors"
	"go.bytecodealliance.org/wit"
)

func testRecord() *wit.Record {
	return &wit.Record{Fields: []wit.Field{
		{Name: "Enabled", Type: wit.Bool{}},
		{Name: "Flags", Type: wit.S32{}},
		{Name: "Alpha", Type: wit.F32{}},
		{Name: "Padding", Type: Vec2Type},
		{Name: "Color", Type: Vec4Type},
		{Name: "Name", Type: wit.String{}},
		{Name: "UserData", Type: wit.U32{}},
		{Name: "Decimal", Type: wit.U16{}},
		{Name: "Legacy", Type: wit.S8{}},
	}}
}

func newTestStruct(t *testing.T) (*Arena, *Struct) {
	t.Helper()
	l, err := NewStructLayout("Test", testRecord())
	if err != nil {
		t.Fatalf("NewStructLayout: %v", err)
	}
	a := NewArena(256)
	s, err := NewStruct(a, a, l)
	if err != nil {
		t.Fatalf("NewStruct: %v", err)
	}
	return a, s
}

func TestStructLayout_Offsets(t *testing.T) {
	l, err := NewStructLayout("Test", testRecord())
	if err != nil {
		t.Fatal(err)
	}

	want := []struct {
		name   string
		offset uint32
		kind   FieldKind
	}{
		{"Enabled", 0, FieldBool},
		{"Flags", 4, FieldInt},
		{"Alpha", 8, FieldFloat},
		{"Padding", 12, FieldVec2},
		{"Color", 20, FieldVec4},
		{"Name", 36, FieldString},
		{"UserData", 44, FieldHandle},
		{"Decimal", 48, FieldU16},
		{"Legacy", 50, FieldS8},
	}
	fields := l.Fields()
	if len(fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(fields), len(want))
	}
	for i, w := range want {
		f := fields[i]
		if f.Name != w.name || f.Offset != w.offset || f.Kind != w.kind {
			t.Errorf("field %d = %+v, want %+v", i, f, w)
		}
	}
	if l.Size != 52 || l.Align != 4 {
		t.Errorf("size/align = %d/%d, want 52/4", l.Size, l.Align)
	}
}

func TestStructLayout_Rejects(t *testing.T) {
	t.Run("unsupported type", func(t *testing.T) {
		rec := &wit.Record{Fields: []wit.Field{{Name: "x", Type: wit.F64{}}}}
		_, err := NewStructLayout("Bad", rec)
		if !errors.IsKind(err, errors.KindUnsupported) {
			t.Fatalf("got %v, want unsupported", err)
		}
	})
	t.Run("duplicate field", func(t *testing.T) {
		rec := &wit.Record{Fields: []wit.Field{
			{Name: "x", Type: wit.F32{}},
			{Name: "x", Type: wit.F32{}},
		}}
		_, err := NewStructLayout("Bad", rec)
		if !errors.IsKind(err, errors.KindInvalidArgument) {
			t.Fatalf("got %v, want invalid_argument", err)
		}
	})
}

func TestStruct_RoundTrip(t *testing.T) {
	_, s := newTestStruct(t)

	if err := s.SetBool("Enabled", true); err != nil {
		t.Fatal(err)
	}
	if err := s.SetInt("Flags", -42); err != nil {
		t.Fatal(err)
	}
	if err := s.SetFloat("Alpha", 0.25); err != nil {
		t.Fatal(err)
	}
	if err := s.SetVec2("Padding", Vec2{1.5, -2}); err != nil {
		t.Fatal(err)
	}
	if err := s.SetVec4("Color", Vec4{0.1, 0.2, 0.3, 0.4}); err != nil {
		t.Fatal(err)
	}
	if err := s.SetStr("Name", "imgui.ini"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetHandle("UserData", 99); err != nil {
		t.Fatal(err)
	}
	if err := s.SetU16("Decimal", '.'); err != nil {
		t.Fatal(err)
	}
	if err := s.SetS8("Legacy", -1); err != nil {
		t.Fatal(err)
	}

	if v, _ := s.Bool("Enabled"); !v {
		t.Error("Enabled")
	}
	if v, _ := s.Int("Flags"); v != -42 {
		t.Errorf("Flags = %d", v)
	}
	if v, _ := s.Float("Alpha"); v != 0.25 {
		t.Errorf("Alpha = %v", v)
	}
	if v, _ := s.Vec2("Padding"); v != (Vec2{1.5, -2}) {
		t.Errorf("Padding = %v", v)
	}
	if v, _ := s.Vec4("Color"); v != (Vec4{0.1, 0.2, 0.3, 0.4}) {
		t.Errorf("Color = %v", v)
	}
	if v, _ := s.Str("Name"); v != "imgui.ini" {
		t.Errorf("Name = %q", v)
	}
	if v, _ := s.Handle("UserData"); v != 99 {
		t.Errorf("UserData = %d", v)
	}
	if v, _ := s.U16("Decimal"); v != '.' {
		t.Errorf("Decimal = %d", v)
	}
	if v, _ := s.S8("Legacy"); v != -1 {
		t.Errorf("Legacy = %d", v)
	}
}

func TestStruct_StringReplaceFreesOld(t *testing.T) {
	a, s := newTestStruct(t)

	if v, err := s.Str("Name"); err != nil || v != "" {
		t.Fatalf("unset string = %q, %v", v, err)
	}
	if err := s.SetStr("Name", "first"); err != nil {
		t.Fatal(err)
	}
	used := a.Used()
	for i := 0; i < 10; i++ {
		if err := s.SetStr("Name", "second"); err != nil {
			t.Fatal(err)
		}
	}
	if a.Used() > used+8 {
		t.Errorf("string storage leaked: used %d -> %d", used, a.Used())
	}
	if err := s.SetStr("Name", ""); err != nil {
		t.Fatal(err)
	}
	if v, _ := s.Str("Name"); v != "" {
		t.Errorf("Name = %q, want empty", v)
	}
}

func TestStruct_Errors(t *testing.T) {
	_, s := newTestStruct(t)

	if _, err := s.Float("Flags"); !errors.IsKind(err, errors.KindTypeMismatch) {
		t.Errorf("wrong kind: got %v", err)
	}
	if _, err := s.Int("Missing"); !errors.IsKind(err, errors.KindNotFound) {
		t.Errorf("missing field: got %v", err)
	}

	s.Free()
	if s.Addr() != 0 {
		t.Error("Free should clear the base address")
	}
	if _, err := s.Int("Flags"); !errors.IsKind(err, errors.KindInvalidArgument) {
		t.Errorf("freed block: got %v", err)
	}
	s.Free()
}
