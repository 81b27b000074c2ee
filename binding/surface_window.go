package binding

import (
	"github.com/wippyai/imgui-bridge/imgui"
)

var windowEntries = []entry{
	// Windows
	{"Begin(name: str, p_open: bool_p = None, flags=0) -> bool", "",
		func(c *imgui.Context, a args) (any, error) {
			return retBool(c.Begin(a.str(0), a.boolPtr(1), a.i32(2)))
		}},
	{"End()", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.End()) }},

	// Child Windows
	{"BeginChild(str_id: str, size: vec2 = None, border=False, flags=0) -> bool", "",
		func(c *imgui.Context, a args) (any, error) {
			return retBool(c.BeginChild(a.str(0), a.vec2(1), a.bool(2), a.i32(3)))
		}},
	{"EndChild()", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.EndChild()) }},
	{"BeginChildFrame(id: int, size: vec2, flags: int = 0) -> bool", "helper to create a child window / scrolling region that looks like a normal widget frame",
		func(c *imgui.Context, a args) (any, error) {
			return retBool(c.BeginChildFrame(id(a.i32(0)), a.vec2(1), a.i32(2)))
		}},
	{"EndChildFrame()", "always call EndChildFrame() regardless of BeginChildFrame() return values",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.EndChildFrame()) }},

	// Windows Utilities
	{"IsWindowAppearing() -> bool", "",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsWindowAppearing()) }},
	{"IsWindowCollapsed() -> bool", "",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsWindowCollapsed()) }},
	{"IsWindowFocused(flags=0) -> bool", "is current window focused? or its root/child, depending on flags.",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsWindowFocused(a.i32(0))) }},
	{"IsWindowHovered(flags=0) -> bool", "is current window hovered (and typically: not blocked by a popup/modal)?",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsWindowHovered(a.i32(0))) }},
	{"GetWindowDrawList() -> void_p", "get draw list associated to the current window, to append your own drawing primitives",
		func(c *imgui.Context, a args) (any, error) { return retAddr(c.GetWindowDrawList()) }},
	{"GetWindowPos() -> vec2", "get current window position in screen space",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetWindowPos()) }},
	{"GetWindowSize() -> vec2", "get current window size",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetWindowSize()) }},
	{"GetWindowWidth() -> float", "get current window width (shortcut for GetWindowSize().x)",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetWindowWidth()) }},
	{"GetWindowHeight() -> float", "get current window height (shortcut for GetWindowSize().y)",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetWindowHeight()) }},

	// Window manipulation
	{"SetNextWindowPos(pos: vec2, cond=0, pivot: vec2 = None)", "set next window position. call before Begin(). use pivot=(0.5f,0.5f) to center on given point, etc.",
		func(c *imgui.Context, a args) (any, error) {
			return retNone(c.SetNextWindowPos(a.vec2(0), a.i32(1), a.vec2(2)))
		}},
	{"SetNextWindowSize(size: vec2, cond=0)", "set next window size. set axis to 0.0f to force an auto-fit on this axis. call before Begin()",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetNextWindowSize(a.vec2(0), a.i32(1))) }},
	{"SetNextWindowSizeConstraints(size_min: vec2, size_max: vec2)", "set next window size limits. use -1,-1 on either X/Y axis to preserve the current size.",
		func(c *imgui.Context, a args) (any, error) {
			return retNone(c.SetNextWindowSizeConstraints(a.vec2(0), a.vec2(1)))
		}},
	{"SetNextWindowContentSize(size: vec2)", "set next window content size (~ scrollable client area, which enforce the range of scrollbars).",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetNextWindowContentSize(a.vec2(0))) }},
	{"SetNextWindowCollapsed(collapsed: bool, cond=0)", "set next window collapsed state. call before Begin()",
		func(c *imgui.Context, a args) (any, error) {
			return retNone(c.SetNextWindowCollapsed(a.bool(0), a.i32(1)))
		}},
	{"SetNextWindowFocus()", "set next window to be focused / top-most. call before Begin()",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetNextWindowFocus()) }},
	{"SetNextWindowScroll(scroll: vec2)", "set next window scrolling value (use < 0.0f to not affect a given axis).",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetNextWindowScroll(a.vec2(0))) }},
	{"SetNextWindowBgAlpha(alpha: float)", "set next window background alpha.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetNextWindowBgAlpha(a.f32(0))) }},

	// Content region
	{"GetContentRegionAvail() -> vec2", "== GetContentRegionMax() - GetCursorPos()",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetContentRegionAvail()) }},
	{"GetContentRegionMax() -> vec2", "current content boundaries, in windows coordinates",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetContentRegionMax()) }},
	{"GetWindowContentRegionMin() -> vec2", "content boundaries min (roughly (0,0)-Scroll), in window coordinates",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetWindowContentRegionMin()) }},
	{"GetWindowContentRegionMax() -> vec2", "content boundaries max (roughly (0,0)+Size-Scroll), in window coordinates",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetWindowContentRegionMax()) }},

	// Windows Scrolling
	{"GetScrollX() -> float", "get scrolling amount [0 .. GetScrollMaxX()]",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetScrollX()) }},
	{"GetScrollY() -> float", "get scrolling amount [0 .. GetScrollMaxY()]",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetScrollY()) }},
	{"SetScrollX(scroll_x: float)", "set scrolling amount [0 .. GetScrollMaxX()]",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetScrollX(a.f32(0))) }},
	{"SetScrollY(scroll_y: float)", "set scrolling amount [0 .. GetScrollMaxY()]",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetScrollY(a.f32(0))) }},
	{"GetScrollMaxX() -> float", "get maximum scrolling amount ~~ ContentSize.x - WindowSize.x - DecorationsSize.x",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetScrollMaxX()) }},
	{"GetScrollMaxY() -> float", "get maximum scrolling amount ~~ ContentSize.y - WindowSize.y - DecorationsSize.y",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetScrollMaxY()) }},
	{"SetScrollHereX(center_x_ratio=0.5)", "adjust scrolling amount to make current cursor position visible.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetScrollHereX(a.f32(0))) }},
	{"SetScrollHereY(center_y_ratio=0.5)", "adjust scrolling amount to make current cursor position visible.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetScrollHereY(a.f32(0))) }},
	{"SetScrollFromPosX(local_x: float, center_x_ratio=0.5)", "adjust scrolling amount to make given position visible.",
		func(c *imgui.Context, a args) (any, error) {
			return retNone(c.SetScrollFromPosX(a.f32(0), a.f32(1)))
		}},
	{"SetScrollFromPosY(local_y: float, center_y_ratio=0.5)", "adjust scrolling amount to make given position visible.",
		func(c *imgui.Context, a args) (any, error) {
			return retNone(c.SetScrollFromPosY(a.f32(0), a.f32(1)))
		}},
}
