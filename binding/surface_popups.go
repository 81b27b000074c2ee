package binding

import (
	"github.com/wippyai/imgui-bridge/imgui"
)

var popupEntries = []entry{
	// Widgets: Trees
	{"TreeNode(label: str, flags=0) -> bool", "",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.TreeNode(a.str(0), a.i32(1))) }},
	{"TreePush(str_id: str)", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.TreePush(a.str(0))) }},
	{"TreePop()", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.TreePop()) }},
	{"SetNextItemOpen(is_open: bool, cond=0)", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetNextItemOpen(a.bool(0), a.i32(1))) }},

	// Tooltips
	{"BeginTooltip() -> bool", "begin/append a tooltip window.",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.BeginTooltip()) }},
	{"EndTooltip()", "end/append tooltip window",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.EndTooltip()) }},
	{"SetTooltip(text: str)", "set a text-only tooltip, typically use with ImGui::IsItemHovered().",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetTooltip(a.str(0))) }},
	{"BeginItemTooltip() -> bool", "begin/append a tooltip window if the last item is hovered.",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.BeginItemTooltip()) }},
	{"SetItemTooltip(text: str)", "set a text-only tooltip if the last item is hovered.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetItemTooltip(a.str(0))) }},

	// Popups, Modals
	{"BeginPopup(str_id: str, flags: int = 0) -> bool", "return true if the popup is open, and you can start outputting to it.",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.BeginPopup(a.str(0), a.i32(1))) }},
	{"BeginPopupModal(name: str, p_open: bool_p = None, flags: int = 0) -> bool", "return true if the modal is open, and you can start outputting to it.",
		func(c *imgui.Context, a args) (any, error) {
			return retBool(c.BeginPopupModal(a.str(0), a.boolPtr(1), a.i32(2)))
		}},
	{"EndPopup()", "only call EndPopup() if BeginPopupXXX() returns true!",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.EndPopup()) }},
	{"OpenPopup(str_id: str, popup_flags: int = 0)", "call to mark popup as open (don't call every frame!).",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.OpenPopup(a.str(0), a.i32(1))) }},
	{"OpenPopupOnItemClick(str_id: str = None, popup_flags: int = 1)", "helper to open popup when clicked on last item.",
		func(c *imgui.Context, a args) (any, error) {
			return retNone(c.OpenPopupOnItemClick(a.str(0), a.i32(1)))
		}},
	{"CloseCurrentPopup()", "manually close the popup we have begin-ed into.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.CloseCurrentPopup()) }},
	{"BeginPopupContextItem(str_id: str = None, popup_flags: int = 1) -> bool", "open+begin popup when clicked on last item.",
		func(c *imgui.Context, a args) (any, error) {
			return retBool(c.BeginPopupContextItem(a.str(0), a.i32(1)))
		}},
	{"BeginPopupContextWindow(str_id: str = None, popup_flags: int = 1) -> bool", "open+begin popup when clicked on current window.",
		func(c *imgui.Context, a args) (any, error) {
			return retBool(c.BeginPopupContextWindow(a.str(0), a.i32(1)))
		}},
	{"BeginPopupContextVoid(str_id: str = None, popup_flags: int = 1) -> bool", "open+begin popup when clicked in void (where there are no windows).",
		func(c *imgui.Context, a args) (any, error) {
			return retBool(c.BeginPopupContextVoid(a.str(0), a.i32(1)))
		}},
	{"IsPopupOpen(str_id: str, flags: int = 0) -> bool", "return true if the popup is open.",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsPopupOpen(a.str(0), a.i32(1))) }},
	{"GetMousePosOnOpeningCurrentPopup() -> vec2", "retrieve mouse position at the time of opening popup we have BeginPopup() into",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetMousePosOnOpeningCurrentPopup()) }},

	// Tab Bars, Tabs
	{"BeginTabBar(str_id: str, flags: int = 0) -> bool", "create and append into a TabBar",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.BeginTabBar(a.str(0), a.i32(1))) }},
	{"EndTabBar()", "only call EndTabBar() if BeginTabBar() returns true!",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.EndTabBar()) }},
	{"BeginTabItem(label: str, p_open: bool_p = None, flags: int = 0) -> bool", "create a Tab. Returns true if the Tab is selected.",
		func(c *imgui.Context, a args) (any, error) {
			return retBool(c.BeginTabItem(a.str(0), a.boolPtr(1), a.i32(2)))
		}},
	{"EndTabItem()", "only call EndTabItem() if BeginTabItem() returns true!",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.EndTabItem()) }},
	{"TabItemButton(label: str, flags: int = 0) -> bool", "create a Tab behaving like a button. return true when clicked.",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.TabItemButton(a.str(0), a.i32(1))) }},
	{"SetTabItemClosed(tab_or_docked_window_label: str)", "notify TabBar of a closed tab ahead.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetTabItemClosed(a.str(0))) }},
}
