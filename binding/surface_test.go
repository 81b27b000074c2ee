package binding

import (
	"testing"

	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/marshal"
	"github.com/wippyai/imgui-bridge/value"
)

func object[T value.Object](t *testing.T, v value.Value) T {
	t.Helper()
	o, ok := v.Object()
	if !ok {
		t.Fatalf("expected an object, got %s", v.TypeName())
	}
	r, ok := o.(T)
	if !ok {
		t.Fatalf("unexpected object type %s", o.TypeName())
	}
	return r
}

func TestHelpers(t *testing.T) {
	m := newTestModule(t)

	v := call(t, m, "vec2", value.Int(1), value.Float(2.5))
	if v.RecordType() != "vec2" {
		t.Fatalf("vec2 returned %s", v.TypeName())
	}
	if y, _ := v.Field("y"); !y.Equal(value.Float(2.5)) {
		t.Errorf("vec2.y = %v", y)
	}
	if c := call(t, m, "vec4", value.Int(1), value.Int(0), value.Int(0), value.Int(1)); c.RecordType() != "vec4" {
		t.Errorf("vec4 returned %s", c.TypeName())
	}
	if r := call(t, m, "Rectangle", value.Int(0), value.Int(0), value.Int(8), value.Int(8)); r.RecordType() != "Rectangle" {
		t.Errorf("Rectangle returned %s", r.TypeName())
	}

	ints := object[*marshal.IntRef](t, call(t, m, "int_p", value.List(value.Int(1), value.Int(2), value.Int(3))))
	if ints.Len() != 3 || ints.Values()[2] != 3 {
		t.Errorf("int_p values = %v", ints.Values())
	}
	single := object[*marshal.FloatRef](t, call(t, m, "float_p"))
	if single.Len() != 1 || single.Value() != 0 {
		t.Errorf("float_p() = %v, want a single zero", single.Values())
	}
	scalar := object[*marshal.FloatRef](t, call(t, m, "float_p", value.Int(4)))
	if scalar.Value() != 4 {
		t.Errorf("float_p(4) = %v", scalar.Value())
	}
	flag := object[*marshal.BoolRef](t, call(t, m, "bool_p", value.Bool(true)))
	if !flag.Value() {
		t.Error("bool_p(True) should hold True")
	}
	buf := object[*marshal.TextBuffer](t, call(t, m, "char_p", value.Int(4), value.String("hello")))
	if buf.Text() != "hel" || buf.Cap() != 4 {
		t.Errorf("char_p(4, 'hello') = %q cap %d", buf.Text(), buf.Cap())
	}
}

func TestHelperErrors(t *testing.T) {
	m := newTestModule(t)

	tests := []struct {
		name string
		fn   string
		args []value.Value
		kind errors.Kind
	}{
		{"int_p from str", "int_p", []value.Value{value.String("x")}, errors.KindTypeMismatch},
		{"int_p list item", "int_p", []value.Value{value.List(value.Int(1), value.Float(0.5))}, errors.KindTypeMismatch},
		{"empty list", "float_p", []value.Value{value.List()}, errors.KindInvalidArgument},
		{"zero capacity", "char_p", []value.Value{value.Int(0)}, errors.KindInvalidArgument},
		{"vec2 from str", "vec2", []value.Value{value.String("1"), value.Int(2)}, errors.KindTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Call(tt.fn, tt.args...)
			if !errors.IsKind(err, tt.kind) {
				t.Errorf("%s: got %v, want %s", tt.fn, err, tt.kind)
			}
		})
	}

	_, err := m.Call("int_p", value.List(value.Int(1), value.String("two")))
	e, ok := err.(*errors.Error)
	if !ok || len(e.Path) < 2 || e.Path[1] != "v[1]" {
		t.Errorf("list item error should name the item: %v", err)
	}
}

// click presses and releases the left button over the center of the item
// draw submits last, one input event per frame.
func click(t *testing.T, m *Module, draw func() value.Value) []value.Value {
	t.Helper()
	var results []value.Value
	var center value.Value
	step := func() {
		frame(t, m, func() {
			results = append(results, draw())
			lo := call(t, m, "GetItemRectMin")
			hi := call(t, m, "GetItemRectMax")
			x0, _ := lo.Field("x")
			y0, _ := lo.Field("y")
			x1, _ := hi.Field("x")
			y1, _ := hi.Field("y")
			ax, _ := x0.Number()
			ay, _ := y0.Number()
			bx, _ := x1.Number()
			by, _ := y1.Number()
			center = vec2(float32(ax+bx)/2, float32(ay+by)/2)
		})
	}

	step()
	x, _ := center.Field("x")
	y, _ := center.Field("y")
	call(t, m, "AddMousePosEvent", x, y)
	step()
	call(t, m, "AddMouseButtonEvent", value.Int(0), value.Bool(true))
	step()
	call(t, m, "AddMouseButtonEvent", value.Int(0), value.Bool(false))
	step()
	return results
}

func TestCheckboxThroughRef(t *testing.T) {
	m := newTestModule(t)
	ref := call(t, m, "bool_p")
	results := click(t, m, func() value.Value {
		return call(t, m, "Checkbox", value.String("check"), ref)
	})
	if last := results[len(results)-1]; !last.Equal(value.Bool(true)) {
		t.Errorf("Checkbox on release = %v, want True", last)
	}
	for _, r := range results[:len(results)-1] {
		if !r.Equal(value.Bool(false)) {
			t.Errorf("Checkbox before release = %v, want False", r)
		}
	}
	if !object[*marshal.BoolRef](t, ref).Value() {
		t.Error("the widget should write through the reference")
	}

	frame(t, m, func() {
		if _, err := m.Call("Checkbox", value.String("none"), value.None()); !errors.IsKind(err, errors.KindTypeMismatch) {
			t.Errorf("Checkbox with None: got %v", err)
		}
	})
}

func TestMultiComponentRefs(t *testing.T) {
	m := newTestModule(t)
	pair := call(t, m, "float_p", value.List(value.Float(1), value.Float(2)))
	frame(t, m, func() {
		if _, err := m.Call("SliderFloat2", value.String("two"), pair, value.Float(0), value.Float(10)); err != nil {
			t.Fatalf("SliderFloat2: %v", err)
		}
		_, err := m.Call("SliderFloat3", value.String("three"), pair, value.Float(0), value.Float(10))
		if !errors.IsKind(err, errors.KindInvalidArgument) {
			t.Errorf("SliderFloat3 with two components: got %v", err)
		}
		if _, err := m.Call("SliderInt", value.String("wrong"), pair, value.Int(0), value.Int(10)); !errors.IsKind(err, errors.KindTypeMismatch) {
			t.Errorf("SliderInt with a float_p: got %v", err)
		}
	})
	got := object[*marshal.FloatRef](t, pair).Values()
	if got[0] != 1 || got[1] != 2 {
		t.Errorf("untouched slider changed its values: %v", got)
	}
}

func TestInputTextBuffer(t *testing.T) {
	m := newTestModule(t)
	buf := call(t, m, "char_p", value.Int(16), value.String("abc"))

	frame(t, m, func() {
		if _, err := m.Call("InputText", value.String("name"), buf, value.Int(16)); err != nil {
			t.Fatalf("InputText: %v", err)
		}
		for _, size := range []int64{0, 17} {
			_, err := m.Call("InputText", value.String("name"), buf, value.Int(size))
			if !errors.IsKind(err, errors.KindInvalidArgument) {
				t.Errorf("buf_size %d: got %v", size, err)
				continue
			}
			if e := err.(*errors.Error); e.Position != 2 {
				t.Errorf("buf_size %d: error at position %d, want 2", size, e.Position)
			}
		}
	})
	if got := object[*marshal.TextBuffer](t, buf).Text(); got != "abc" {
		t.Errorf("buffer = %q, want abc", got)
	}
}

func TestTextures(t *testing.T) {
	m := newTestModule(t)
	tex := call(t, m, "LoadTexture", value.Int(32), value.Int(16))
	if _, ok := tex.Pointer(); !ok {
		t.Fatalf("LoadTexture returned %s", tex.TypeName())
	}
	if _, err := m.Call("LoadTexture", value.Int(0), value.Int(16)); !errors.IsKind(err, errors.KindInvalidArgument) {
		t.Errorf("zero width: got %v", err)
	}

	frame(t, m, func() {
		call(t, m, "rlImGuiImage", tex)
		size := call(t, m, "GetItemRectSize")
		if w, _ := size.Field("x"); !w.Equal(value.Float(32)) {
			t.Errorf("image size = %v", size)
		}
		if _, err := m.Call("rlImGuiImage", value.Pointer(1<<40)); !errors.IsKind(err, errors.KindInvalidArgument) {
			t.Errorf("huge address: got %v", err)
		}
		if _, err := m.Call("rlImGuiImage", value.Int(1)); !errors.IsKind(err, errors.KindTypeMismatch) {
			t.Errorf("int as texture: got %v", err)
		}
	})

	call(t, m, "UnloadTexture", tex)
	frame(t, m, func() {
		if _, err := m.Call("rlImGuiImage", tex); !errors.IsKind(err, errors.KindInvalidArgument) {
			t.Errorf("unloaded texture: got %v", err)
		}
	})
}

func TestPopupContextDefaults(t *testing.T) {
	m := newTestModule(t)
	frame(t, m, func() {
		call(t, m, "Button", value.String("target"))
		open := call(t, m, "BeginPopupContextItem")
		if !open.Equal(value.Bool(false)) {
			t.Errorf("BeginPopupContextItem = %v without a click", open)
		}
		if v := call(t, m, "IsPopupOpen", value.String("target")); !v.Equal(value.Bool(false)) {
			t.Errorf("IsPopupOpen = %v", v)
		}
	})
}
