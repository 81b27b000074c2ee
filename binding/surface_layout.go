package binding

import (
	"github.com/wippyai/imgui-bridge/imgui"
	"github.com/wippyai/imgui-bridge/marshal"
)

var layoutEntries = []entry{
	// Parameters stacks (shared)
	{"PopFont()", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.PopFont()) }},
	{"PushStyleColor(idx: int, col: vec4)", "modify a style color. always use this if you modify the style after NewFrame().",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.PushStyleColor(a.i32(0), a.vec4(1))) }},
	{"PopStyleColor(count=1)", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.PopStyleColor(a.i32(0))) }},
	{"PushStyleVar(idx: int, val: float)", "modify a style float variable. always use this if you modify the style after NewFrame().",
		func(c *imgui.Context, a args) (any, error) {
			return retNone(c.PushStyleVarFloat(a.i32(0), a.f32(1)))
		}},
	{"PushStyleVar(idx: int, val: vec2)", "modify a style ImVec2 variable. always use this if you modify the style after NewFrame().",
		func(c *imgui.Context, a args) (any, error) {
			return retNone(c.PushStyleVarVec2(a.i32(0), a.vec2(1)))
		}},
	{"PopStyleVar(count=1)", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.PopStyleVar(a.i32(0))) }},
	{"PushTabStop(tab_stop: bool)", "== tab stop enable. Allow focusing using TAB/Shift-TAB, enabled by default but you can disable it for certain widgets",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.PushTabStop(a.bool(0))) }},
	{"PopTabStop()", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.PopTabStop()) }},
	{"PushButtonRepeat(repeat: bool)", "in 'repeat' mode, Button*() functions return repeated true in a typematic manner.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.PushButtonRepeat(a.bool(0))) }},
	{"PopButtonRepeat()", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.PopButtonRepeat()) }},

	// Parameters stacks (current window)
	{"PushItemWidth(item_width: float)", "push width of items for common large \"item+label\" widgets.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.PushItemWidth(a.f32(0))) }},
	{"PopItemWidth()", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.PopItemWidth()) }},
	{"SetNextItemWidth(item_width: float)", "set width of the _next_ common large \"item+label\" widget.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetNextItemWidth(a.f32(0))) }},
	{"CalcItemWidth() -> float", "width of item given pushed settings and current cursor position.",
		func(c *imgui.Context, a args) (any, error) { return ret(c.CalcItemWidth()) }},
	{"PushTextWrapPos(wrap_local_pos_x: float = 0.0)", "push word-wrapping position for Text*() commands.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.PushTextWrapPos(a.f32(0))) }},
	{"PopTextWrapPos()", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.PopTextWrapPos()) }},

	// Style read access
	{"GetFontSize() -> float", "get current font size (= height in pixels) of current font with current scale applied",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetFontSize()) }},
	{"GetFontTexUvWhitePixel() -> vec2", "get UV coordinate for a while pixel, useful to draw custom shapes via the ImDrawList API",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetFontTexUvWhitePixel()) }},
	{"GetStyleColorVec4(idx: int) -> vec4", "retrieve style color as stored in ImGuiStyle structure.",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetStyleColorVec4(a.i32(0))) }},
	{"GetStyleColorName(idx: int) -> str", "get a string corresponding to the enum value (for display, saving, etc.).",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetStyleColorName(a.i32(0))) }},

	// Cursor / Layout
	{"Separator()", "separator, generally horizontal.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.Separator()) }},
	{"SameLine(offset_from_start_x=0.0, spacing=-1.0)", "call between widgets or groups to layout them horizontally.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SameLine(a.f32(0), a.f32(1))) }},
	{"NewLine()", "undo a SameLine() or force a new line when in a horizontal-layout context.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.NewLine()) }},
	{"Spacing()", "add vertical spacing.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.Spacing()) }},
	{"Dummy(size: vec2)", "add a dummy item of given size.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.Dummy(a.vec2(0))) }},
	{"Indent(indent_w=0.0)", "move content position toward the right, by indent_w, or style.IndentSpacing if indent_w <= 0",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.Indent(a.f32(0))) }},
	{"Unindent(indent_w=0.0)", "move content position back to the left, by indent_w, or style.IndentSpacing if indent_w <= 0",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.Unindent(a.f32(0))) }},
	{"BeginGroup()", "lock horizontal starting position",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.BeginGroup()) }},
	{"EndGroup()", "unlock horizontal starting position + capture the whole group bounding box into one \"item\"",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.EndGroup()) }},
	{"GetCursorPos() -> vec2", "cursor position in window coordinates (relative to window position)",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetCursorPos()) }},
	{"GetCursorPosX() -> float", "",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetCursorPosX()) }},
	{"GetCursorPosY() -> float", "",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetCursorPosY()) }},
	{"SetCursorPos(local_pos: vec2)", "cursor position in window coordinates (relative to window position)",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetCursorPos(a.vec2(0))) }},
	{"SetCursorPosX(local_x: float)", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetCursorPosX(a.f32(0))) }},
	{"SetCursorPosY(local_y: float)", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetCursorPosY(a.f32(0))) }},
	{"GetCursorStartPos() -> vec2", "initial cursor position in window coordinates",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetCursorStartPos()) }},
	{"GetCursorScreenPos() -> vec2", "cursor position in absolute screen coordinates.",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetCursorScreenPos()) }},
	{"SetCursorScreenPos(pos: vec2)", "cursor position in absolute screen coordinates.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetCursorScreenPos(a.vec2(0))) }},
	{"AlignTextToFramePadding()", "vertically align/lower upcoming text to FramePadding.y so that it will aligns to upcoming widgets",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.AlignTextToFramePadding()) }},
	{"GetTextLineHeight() -> float", "~ FontSize",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetTextLineHeight()) }},
	{"GetTextLineHeightWithSpacing() -> float", "~ FontSize + style.ItemSpacing.y",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetTextLineHeightWithSpacing()) }},
	{"GetFrameHeight() -> float", "~ FontSize + style.FramePadding.y * 2",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetFrameHeight()) }},
	{"GetFrameHeightWithSpacing() -> float", "~ FontSize + style.FramePadding.y * 2 + style.ItemSpacing.y",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetFrameHeightWithSpacing()) }},
	{"CalcTextSize(text: str, hide_text_after_double_hash=False, wrap_width=-1.0) -> vec2", "calculate text size. text can be multi-line.",
		func(c *imgui.Context, a args) (any, error) {
			return ret(c.CalcTextSize(a.str(0), a.bool(1), a.f32(2)))
		}},

	// ID stack/scopes
	{"PushID(x)", "push a string, integer or pointer into the ID stack",
		func(c *imgui.Context, a args) (any, error) { return retNone(pushID(c, a)) }},
	{"PopID()", "pop from the ID stack.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.PopID()) }},
	{"SetStateStorage(storage: void_p)", "replace current window storage with our own",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetStateStorage(a.handle(0))) }},
	{"GetStateStorage() -> void_p", "",
		func(c *imgui.Context, a args) (any, error) { return retAddr(c.GetStateStorage()) }},
}

// pushID selects the native PushID overload from the runtime tag of x.
func pushID(c *imgui.Context, a args) error {
	x := a.value(0)
	k, err := marshal.DispatchByRuntimeTag(x)
	if err != nil {
		return withArg(err, "PushID", 1, "x")
	}
	switch k {
	case marshal.KindString:
		s, _ := x.Str()
		return c.PushIDStr(s)
	case marshal.KindInt:
		n, err := marshal.ToNative(x, marshal.KindInt)
		if err != nil {
			return withArg(err, "PushID", 1, "x")
		}
		return c.PushIDInt(n.(int32))
	default:
		p, _ := x.Pointer()
		return c.PushIDPtr(p)
	}
}
