package binding

import (
	"github.com/wippyai/imgui-bridge/imgui"
)

var queryEntries = []entry{
	// Disabling
	{"BeginDisabled(disabled: bool = True)", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.BeginDisabled(a.bool(0))) }},
	{"EndDisabled()", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.EndDisabled()) }},

	// Clipping
	{"PushClipRect(clip_rect_min: vec2, clip_rect_max: vec2, intersect_with_current_clip_rect: bool)", "",
		func(c *imgui.Context, a args) (any, error) {
			return retNone(c.PushClipRect(a.vec2(0), a.vec2(1), a.bool(2)))
		}},
	{"PopClipRect()", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.PopClipRect()) }},

	// Focus, Activation
	{"SetItemDefaultFocus()", "make last item the default focused item of a window.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetItemDefaultFocus()) }},
	{"SetKeyboardFocusHere(offset: int = 0)", "focus keyboard on the next widget.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetKeyboardFocusHere(a.i32(0))) }},

	// Item/Widgets Utilities and Query Functions
	{"IsItemHovered(flags: int = 0) -> bool", "is the last item hovered? (and usable, aka not blocked by a popup, etc.).",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsItemHovered(a.i32(0))) }},
	{"IsItemActive() -> bool", "is the last item active?",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsItemActive()) }},
	{"IsItemFocused() -> bool", "is the last item focused for keyboard/gamepad navigation?",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsItemFocused()) }},
	{"IsItemClicked(mouse_button: int = 0) -> bool", "is the last item hovered and mouse clicked on?",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsItemClicked(a.i32(0))) }},
	{"IsItemVisible() -> bool", "is the last item visible?",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsItemVisible()) }},
	{"IsItemEdited() -> bool", "did the last item modify its underlying value this frame? or was pressed?",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsItemEdited()) }},
	{"IsItemActivated() -> bool", "was the last item just made active (item was previously inactive).",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsItemActivated()) }},
	{"IsItemDeactivated() -> bool", "was the last item just made inactive (item was previously active).",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsItemDeactivated()) }},
	{"IsItemDeactivatedAfterEdit() -> bool", "was the last item just made inactive and made a value change when it was active?",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsItemDeactivatedAfterEdit()) }},
	{"IsItemToggledOpen() -> bool", "was the last item open state toggled? set by TreeNode().",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsItemToggledOpen()) }},
	{"IsAnyItemHovered() -> bool", "is any item hovered?",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsAnyItemHovered()) }},
	{"IsAnyItemActive() -> bool", "is any item active?",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsAnyItemActive()) }},
	{"IsAnyItemFocused() -> bool", "is any item focused?",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsAnyItemFocused()) }},
	{"GetItemRectMin() -> vec2", "get upper-left bounding rectangle of the last item (screen space)",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetItemRectMin()) }},
	{"GetItemRectMax() -> vec2", "get lower-right bounding rectangle of the last item (screen space)",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetItemRectMax()) }},
	{"GetItemRectSize() -> vec2", "get size of last item",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetItemRectSize()) }},
	{"SetItemAllowOverlap()", "allow the next item to overlap the last one.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetItemAllowOverlap()) }},

	// Viewports, Background/Foreground Draw Lists
	{"GetMainViewport() -> void_p", "",
		func(c *imgui.Context, a args) (any, error) { return retAddr(c.GetMainViewport()) }},
	{"GetBackgroundDrawList() -> void_p", "get background draw list for the current active window.",
		func(c *imgui.Context, a args) (any, error) { return retAddr(c.GetBackgroundDrawList()) }},
	{"GetForegroundDrawList() -> void_p", "get foreground draw list for the current active window.",
		func(c *imgui.Context, a args) (any, error) { return retAddr(c.GetForegroundDrawList()) }},
	{"GetDrawListSharedData() -> void_p", "you may use this when creating your own ImDrawList instances.",
		func(c *imgui.Context, a args) (any, error) { return retAddr(c.GetDrawListSharedData()) }},
	{"GetFont() -> ImFont", "get current font",
		func(c *imgui.Context, a args) (any, error) { return retAddr(c.GetFont()) }},
	{"IsRectVisible(size: vec2) -> bool", "test if rectangle (of given size, starting from cursor position) is visible / not clipped.",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsRectVisible(a.vec2(0))) }},
}
