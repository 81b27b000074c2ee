package value

import (
	"math"
	"testing"
)

type testObject struct{ name string }

func (o *testObject) TypeName() string { return o.name }

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNone, "None"},
		{KindBool, "bool"},
		{KindInt, "int"},
		{KindFloat, "float"},
		{KindString, "str"},
		{KindPointer, "void_p"},
		{KindRecord, "record"},
		{KindList, "list"},
		{KindObject, "object"},
		{Kind(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestAccessors(t *testing.T) {
	if !None().IsNone() || (Value{}).Kind() != KindNone {
		t.Error("zero value should be None")
	}
	if b, ok := Bool(true).Bool(); !ok || !b {
		t.Error("Bool(true)")
	}
	if _, ok := Bool(true).Int(); ok {
		t.Error("bool must not read as int")
	}
	if i, ok := Int(-7).Int(); !ok || i != -7 {
		t.Errorf("Int(-7) = %d, %v", i, ok)
	}
	if f, ok := Float(1.5).Float(); !ok || f != 1.5 {
		t.Errorf("Float(1.5) = %v, %v", f, ok)
	}
	if _, ok := Int(1).Float(); ok {
		t.Error("int must not read as float")
	}
	if n, ok := Int(3).Number(); !ok || n != 3 {
		t.Errorf("Number(int) = %v, %v", n, ok)
	}
	if _, ok := String("3").Number(); ok {
		t.Error("string must not read as number")
	}
	if s, ok := String("hi").Str(); !ok || s != "hi" {
		t.Errorf("Str = %q, %v", s, ok)
	}
	if a, ok := Pointer(0x10).Pointer(); !ok || a != 0x10 {
		t.Errorf("Pointer = %v, %v", a, ok)
	}
	obj := &testObject{"_IO"}
	if o, ok := Obj(obj).Object(); !ok || o != obj {
		t.Error("Object")
	}
	if !Obj(nil).IsNone() {
		t.Error("Obj(nil) should be None")
	}
}

func TestImmutability(t *testing.T) {
	items := []Value{Int(1), Int(2)}
	l := List(items...)
	items[0] = Int(99)
	if v, _ := l.Index(0); !v.Equal(Int(1)) {
		t.Error("List should copy its items")
	}
	got, _ := l.List()
	got[1] = Int(99)
	if v, _ := l.Index(1); !v.Equal(Int(2)) {
		t.Error("List() should return a copy")
	}

	fields := map[string]Value{"x": Float(1)}
	r := Record("vec2", fields)
	fields["x"] = Float(2)
	if v, _ := r.Field("x"); !v.Equal(Float(1)) {
		t.Error("Record should copy its fields")
	}
}

func TestListAccess(t *testing.T) {
	l := List(String("a"), String("b"))
	if l.Len() != 2 {
		t.Errorf("Len = %d", l.Len())
	}
	if _, ok := l.Index(2); ok {
		t.Error("Index out of range should fail")
	}
	if _, ok := l.Index(-1); ok {
		t.Error("negative Index should fail")
	}
	if Int(1).Len() != 0 {
		t.Error("non-list Len should be 0")
	}
}

func TestEqual(t *testing.T) {
	obj := &testObject{"_IO"}
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"none", None(), None(), true},
		{"int vs float", Int(1), Float(1), false},
		{"bool vs int", Bool(true), Int(1), false},
		{"strings", String("a"), String("a"), true},
		{"nested lists", List(Int(1), List(String("x"))), List(Int(1), List(String("x"))), true},
		{"list length", List(Int(1)), List(Int(1), Int(2)), false},
		{"records", Record("vec2", map[string]Value{"x": Float(1), "y": Float(2)}), Record("vec2", map[string]Value{"x": Float(1), "y": Float(2)}), true},
		{"record types", Record("vec2", nil), Record("vec4", nil), false},
		{"record fields", Record("vec2", map[string]Value{"x": Float(1)}), Record("vec2", map[string]Value{"y": Float(1)}), false},
		{"objects by identity", Obj(obj), Obj(obj), true},
		{"distinct objects", Obj(obj), Obj(&testObject{"_IO"}), false},
		{"pointers", Pointer(1), Pointer(1), true},
		{"nan", Float(math.NaN()), Float(math.NaN()), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{None(), "None"},
		{Bool(true), "True"},
		{Bool(false), "False"},
		{Int(-3), "-3"},
		{Float(2), "2.0"},
		{Float(0.5), "0.5"},
		{Float(math.Inf(1)), "+Inf"},
		{String("a'b"), `"a'b"`},
		{Pointer(255), "<void_p at 0xff>"},
		{List(Int(1), String("x")), `[1, "x"]`},
		{Record("vec2", map[string]Value{"x": Float(1), "y": Float(2.5)}), "vec2(1.0, 2.5)"},
		{Record("Rectangle", map[string]Value{"x": Float(0), "y": Float(0), "width": Float(4), "height": Float(3)}), "Rectangle(0.0, 0.0, 4.0, 3.0)"},
		{Record("point", map[string]Value{"b": Int(2), "a": Int(1)}), "point(a=1, b=2)"},
		{Obj(&testObject{"_Style"}), "<_Style object>"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTypeName(t *testing.T) {
	if got := Record("vec4", nil).TypeName(); got != "vec4" {
		t.Errorf("record TypeName = %q", got)
	}
	if got := Obj(&testObject{"_IO"}).TypeName(); got != "_IO" {
		t.Errorf("object TypeName = %q", got)
	}
	if got := Int(1).TypeName(); got != "int" {
		t.Errorf("int TypeName = %q", got)
	}
}
