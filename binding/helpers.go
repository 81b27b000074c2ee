package binding

import (
	"strconv"

	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/imgui"
	"github.com/wippyai/imgui-bridge/marshal"
	"github.com/wippyai/imgui-bridge/native"
	"github.com/wippyai/imgui-bridge/value"
)

// helperEntries build the host-side values the native calls take: vector
// records and the reference cells written through by widgets.
var helperEntries = []entry{
	{"vec2(x: float, y: float) -> vec2", "2D vector",
		func(_ *imgui.Context, a args) (any, error) {
			return native.Vec2{X: a.f32(0), Y: a.f32(1)}, nil
		}},
	{"vec4(x: float, y: float, z: float, w: float) -> vec4", "4D vector, also used for colors",
		func(_ *imgui.Context, a args) (any, error) {
			return native.Vec4{X: a.f32(0), Y: a.f32(1), Z: a.f32(2), W: a.f32(3)}, nil
		}},
	{"Rectangle(x: float, y: float, width: float, height: float) -> Rectangle", "source rectangle for texture calls",
		func(_ *imgui.Context, a args) (any, error) {
			return native.Rect{X: a.f32(0), Y: a.f32(1), Width: a.f32(2), Height: a.f32(3)}, nil
		}},
	{"bool_p(v: bool = False) -> bool_p", "bool cell passed where a call takes bool*",
		func(_ *imgui.Context, a args) (any, error) {
			return value.Object(marshal.NewBoolRef(a.bool(0))), nil
		}},
	{"int_p(v=None) -> int_p", "int cell; pass a list for multi-component widgets",
		func(_ *imgui.Context, a args) (any, error) {
			vals, err := cells(a.value(0), marshal.KindInt, "int_p")
			if err != nil {
				return nil, err
			}
			ints := make([]int32, len(vals))
			for i, v := range vals {
				ints[i] = v.(int32)
			}
			return value.Object(marshal.NewIntRef(ints...)), nil
		}},
	{"float_p(v=None) -> float_p", "float cell; pass a list for multi-component widgets",
		func(_ *imgui.Context, a args) (any, error) {
			vals, err := cells(a.value(0), marshal.KindFloat, "float_p")
			if err != nil {
				return nil, err
			}
			floats := make([]float32, len(vals))
			for i, v := range vals {
				floats[i] = v.(float32)
			}
			return value.Object(marshal.NewFloatRef(floats...)), nil
		}},
	{"char_p(size: int, value: str = '') -> char_p", "fixed-capacity text buffer for InputText",
		func(_ *imgui.Context, a args) (any, error) {
			b, err := marshal.NewTextBufferString(a.str(1), int(a.i32(0)))
			if err != nil {
				return nil, withArg(err, "char_p", 1, "size")
			}
			return value.Object(b), nil
		}},
}

// cells converts the initial value of a reference cell: None for a single
// zero, a scalar, or a non-empty list of scalars.
func cells(v value.Value, k marshal.Kind, fn string) ([]any, error) {
	if v.IsNone() {
		return nil, nil
	}
	items, isList := v.List()
	if !isList {
		items = []value.Value{v}
	} else if len(items) == 0 {
		return nil, errors.InvalidArgument(errors.PhaseCall, []string{fn, "v"}, "empty component list")
	}

	out := make([]any, len(items))
	for i, item := range items {
		n, err := marshal.ToNative(item, k)
		if err != nil {
			if isList {
				return nil, withArg(err, fn, 1, "v["+strconv.Itoa(i)+"]")
			}
			return nil, withArg(err, fn, 1, "v")
		}
		out[i] = n
	}
	return out, nil
}
