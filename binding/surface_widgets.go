package binding

import (
	"github.com/wippyai/imgui-bridge/imgui"
	"github.com/wippyai/imgui-bridge/marshal"
	"github.com/wippyai/imgui-bridge/native"
)

var widgetEntries = []entry{
	// Widgets: Text
	{"Text(s: str)", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.Text(a.str(0))) }},
	{"TextColored(col: vec4, s: str)", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.TextColored(a.vec4(0), a.str(1))) }},
	{"TextDisabled(s: str)", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.TextDisabled(a.str(0))) }},
	{"TextWrapped(s: str)", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.TextWrapped(a.str(0))) }},
	{"LabelText(label: str, s: str)", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.LabelText(a.str(0), a.str(1))) }},
	{"BulletText(s: str)", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.BulletText(a.str(0))) }},
	{"SeparatorText(label: str)", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SeparatorText(a.str(0))) }},

	// Widgets: Main
	{"Button(label: str, size: vec2 = None) -> bool", "button",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.Button(a.str(0), a.vec2(1))) }},
	{"SmallButton(label: str) -> bool", "button with FramePadding=(0,0) to easily embed within text",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.SmallButton(a.str(0))) }},
	{"InvisibleButton(str_id: str, size: vec2, flags=0) -> bool", "flexible button behavior without the visuals",
		func(c *imgui.Context, a args) (any, error) {
			return retBool(c.InvisibleButton(a.str(0), a.vec2(1), a.i32(2)))
		}},
	{"ArrowButton(str_id: str, dir: int) -> bool", "square button with an arrow shape",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.ArrowButton(a.str(0), a.i32(1))) }},
	{"Checkbox(label: str, v: bool_p) -> bool", "",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.Checkbox(a.str(0), a.boolPtr(1))) }},
	{"CheckboxFlags(label: str, flags: int_p, flags_value: int) -> bool", "",
		func(c *imgui.Context, a args) (any, error) {
			p, err := a.intPtr("CheckboxFlags", 1)
			if err != nil {
				return nil, err
			}
			return retBool(c.CheckboxFlags(a.str(0), p, a.i32(2)))
		}},
	{"RadioButton(label: str, active: bool) -> bool", "use with e.g. if (RadioButton(\"one\", my_value==1)) { my_value = 1; }",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.RadioButton(a.str(0), a.bool(1))) }},
	{"ProgressBar(fraction: float, size: vec2 = None, overlay: str = None)", "",
		func(c *imgui.Context, a args) (any, error) {
			size := a.vec2Or(1, native.Vec2{X: -imgui.FltMin})
			return retNone(c.ProgressBar(a.f32(0), size, a.strPtr(2)))
		}},
	{"Bullet()", "draw a small circle + keep the cursor on the same line.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.Bullet()) }},

	// Widgets: Combo Box
	{"BeginCombo(label: str, preview_value: str, flags=0) -> bool", "The BeginCombo()/EndCombo() api allows you to manage your contents and selection state however you want it.",
		func(c *imgui.Context, a args) (any, error) {
			return retBool(c.BeginCombo(a.str(0), a.str(1), a.i32(2)))
		}},
	{"EndCombo()", "only call EndCombo() if BeginCombo() returns true!",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.EndCombo()) }},
	{"Combo(label: str, current_item: int_p, items: list[str], popup_max_height_in_items=-1) -> bool", "The old Combo() api are helpers over BeginCombo()/EndCombo().",
		func(c *imgui.Context, a args) (any, error) {
			p, err := a.intPtr("Combo", 1)
			if err != nil {
				return nil, err
			}
			// the native combo reads a zero-separated list, so an empty
			// entry ends it
			items := marshal.SplitFlattened(marshal.FlattenStrings(a.strings(2)))
			return retBool(c.Combo(a.str(0), p, items, a.i32(3)))
		}},

	// Widgets: Regular Sliders
	sliderFloat("SliderFloat", 1),
	sliderFloat("SliderFloat2", 2),
	sliderFloat("SliderFloat3", 3),
	sliderFloat("SliderFloat4", 4),
	sliderInt("SliderInt", 1),
	sliderInt("SliderInt2", 2),
	sliderInt("SliderInt3", 3),
	sliderInt("SliderInt4", 4),

	// Widgets: Input with Keyboard
	{"InputText(label: str, buf: char_p, buf_size: int, flags=0) -> bool", "",
		func(c *imgui.Context, a args) (any, error) {
			buf, err := a.text("InputText", 1, 2)
			if err != nil {
				return nil, err
			}
			return retBool(c.InputText(a.str(0), buf, a.i32(3)))
		}},
	{"InputTextMultiline(label: str, buf: char_p, buf_size: int, size: vec2 = None, flags=0) -> bool", "",
		func(c *imgui.Context, a args) (any, error) {
			buf, err := a.text("InputTextMultiline", 1, 2)
			if err != nil {
				return nil, err
			}
			return retBool(c.InputTextMultiline(a.str(0), buf, a.vec2(3), a.i32(4)))
		}},
	{"InputTextWithHint(label: str, hint: str, buf: char_p, buf_size: int, flags=0) -> bool", "",
		func(c *imgui.Context, a args) (any, error) {
			buf, err := a.text("InputTextWithHint", 2, 3)
			if err != nil {
				return nil, err
			}
			return retBool(c.InputTextWithHint(a.str(0), a.str(1), buf, a.i32(4)))
		}},
	{"InputFloat(label: str, v: float_p, step=0.0, step_fast=0.0, format='%.3f', flags=0) -> bool", "",
		func(c *imgui.Context, a args) (any, error) {
			p, err := a.floatPtr("InputFloat", 1)
			if err != nil {
				return nil, err
			}
			return retBool(c.InputFloat(a.str(0), p, a.f32(2), a.f32(3), a.str(4), a.i32(5)))
		}},
	inputFloatN("InputFloat2", 2),
	inputFloatN("InputFloat3", 3),
	inputFloatN("InputFloat4", 4),
	{"InputInt(label: str, v: int_p, step=1, step_fast=100, flags=0) -> bool", "",
		func(c *imgui.Context, a args) (any, error) {
			p, err := a.intPtr("InputInt", 1)
			if err != nil {
				return nil, err
			}
			return retBool(c.InputInt(a.str(0), p, a.i32(2), a.i32(3), a.i32(4)))
		}},
	inputIntN("InputInt2", 2),
	inputIntN("InputInt3", 3),
	inputIntN("InputInt4", 4),
}

func sliderFloat(name string, n int) entry {
	return entry{
		sig: name + "(label: str, v: float_p, v_min: float, v_max: float, format='%.3f', flags=0) -> bool",
		fn: func(c *imgui.Context, a args) (any, error) {
			v, err := a.floats(name, 1, n)
			if err != nil {
				return nil, err
			}
			return retBool(c.SliderFloatN(a.str(0), v, a.f32(2), a.f32(3), a.str(4), a.i32(5)))
		},
	}
}

func sliderInt(name string, n int) entry {
	return entry{
		sig: name + "(label: str, v: int_p, v_min: int, v_max: int, format='%d', flags=0) -> bool",
		fn: func(c *imgui.Context, a args) (any, error) {
			v, err := a.ints(name, 1, n)
			if err != nil {
				return nil, err
			}
			return retBool(c.SliderIntN(a.str(0), v, a.i32(2), a.i32(3), a.str(4), a.i32(5)))
		},
	}
}

func inputFloatN(name string, n int) entry {
	return entry{
		sig: name + "(label: str, v: float_p, format='%.3f', flags=0) -> bool",
		fn: func(c *imgui.Context, a args) (any, error) {
			v, err := a.floats(name, 1, n)
			if err != nil {
				return nil, err
			}
			return retBool(c.InputFloatN(a.str(0), v, a.str(2), a.i32(3)))
		},
	}
}

func inputIntN(name string, n int) entry {
	return entry{
		sig: name + "(label: str, v: int_p, flags=0) -> bool",
		fn: func(c *imgui.Context, a args) (any, error) {
			v, err := a.ints(name, 1, n)
			if err != nil {
				return nil, err
			}
			return retBool(c.InputIntN(a.str(0), v, a.i32(2)))
		},
	}
}
