package binding

import (
	"github.com/wippyai/imgui-bridge/imgui"
)

var inputEntries = []entry{
	// Inputs Utilities: Keyboard
	{"IsKeyDown(key: int) -> bool", "is key being held.",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsKeyDown(a.i32(0))) }},
	{"IsKeyPressed(key: int, repeat=True) -> bool", "was key pressed (went from !Down to Down)?",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsKeyPressed(a.i32(0), a.bool(1))) }},
	{"IsKeyReleased(key: int) -> bool", "was key released (went from Down to !Down)?",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsKeyReleased(a.i32(0))) }},
	{"GetKeyPressedAmount(key: int, repeat_delay: float, rate: float) -> int", "uses provided repeat rate/delay. return a count, most often 0 or 1",
		func(c *imgui.Context, a args) (any, error) {
			return ret(c.GetKeyPressedAmount(a.i32(0), a.f32(1), a.f32(2)))
		}},
	{"GetKeyName(key: int) -> str", "[DEBUG] returns English name of the key.",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetKeyName(a.i32(0))) }},
	{"SetNextFrameWantCaptureKeyboard(want_capture_keyboard: bool)", "Override io.WantCaptureKeyboard flag next frame.",
		func(c *imgui.Context, a args) (any, error) {
			return retNone(c.SetNextFrameWantCaptureKeyboard(a.bool(0)))
		}},

	// Inputs Utilities: Mouse
	{"IsMouseDown(button: int) -> bool", "is mouse button held?",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsMouseDown(a.i32(0))) }},
	{"IsMouseClicked(button: int, repeat=False) -> bool", "did mouse button clicked? (went from !Down to Down).",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsMouseClicked(a.i32(0), a.bool(1))) }},
	{"IsMouseReleased(button: int) -> bool", "did mouse button released? (went from Down to !Down)",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsMouseReleased(a.i32(0))) }},
	{"IsMouseDoubleClicked(button: int) -> bool", "did mouse button double-clicked? Same as GetMouseClickedCount() == 2.",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsMouseDoubleClicked(a.i32(0))) }},
	{"GetMouseClickedCount(button: int) -> int", "return the number of successive mouse-clicks at the time where a click happen (otherwise 0).",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetMouseClickedCount(a.i32(0))) }},
	{"IsMouseHoveringRect(r_min: vec2, r_max: vec2, clip=True) -> bool", "is mouse hovering given bounding rect (in screen space).",
		func(c *imgui.Context, a args) (any, error) {
			return retBool(c.IsMouseHoveringRect(a.vec2(0), a.vec2(1), a.bool(2)))
		}},
	{"IsMousePosValid(mouse_pos: vec2 = None) -> bool", "by convention we use (-FLT_MAX,-FLT_MAX) to denote that there is no mouse available",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsMousePosValid(a.vec2Ptr(0))) }},
	{"IsAnyMouseDown() -> bool", "is any mouse button held?",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsAnyMouseDown()) }},
	{"GetMousePos() -> vec2", "shortcut to ImGui::GetIO().MousePos provided by user, to be consistent with other calls",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetMousePos()) }},
	{"IsMouseDragging(button: int, lock_threshold=-1.0) -> bool", "is mouse dragging?",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.IsMouseDragging(a.i32(0), a.f32(1))) }},
	{"GetMouseDragDelta(button: int = 0, lock_threshold=-1.0) -> vec2", "return the delta from the initial clicking position while the mouse button is pressed or was just released.",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetMouseDragDelta(a.i32(0), a.f32(1))) }},
	{"ResetMouseDragDelta(button: int = 0) -> None", "reset the dragging state when the mouse has been dragging",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.ResetMouseDragDelta(a.i32(0))) }},
	{"GetMouseCursor() -> int", "get desired cursor type, reset in end frame.",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetMouseCursor()) }},
	{"SetMouseCursor(type: int) -> None", "set desired cursor type",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetMouseCursor(a.i32(0))) }},
	{"SetNextFrameWantCaptureMouse(want_capture_mouse: bool)", "Override io.WantCaptureMouse flag next frame.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetNextFrameWantCaptureMouse(a.bool(0))) }},

	// Clipboard Utilities
	{"GetClipboardText() -> str", "",
		func(c *imgui.Context, a args) (any, error) { return ret(c.GetClipboardText()) }},
	{"SetClipboardText(text: str) -> None", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.SetClipboardText(a.str(0))) }},

	// Debug Utilities
	{"DebugTextEncoding(text: str) -> None", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.DebugTextEncoding(a.str(0))) }},

	// Input events, latched until the next NewFrame
	{"AddMousePosEvent(x: float, y: float)", "queue a new mouse position",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.AddMousePosEvent(a.f32(0), a.f32(1))) }},
	{"AddMouseButtonEvent(button: int, down: bool)", "queue a mouse button change",
		func(c *imgui.Context, a args) (any, error) {
			return retNone(c.AddMouseButtonEvent(a.i32(0), a.bool(1)))
		}},
	{"AddMouseWheelEvent(wheel_x: float, wheel_y: float)", "queue a mouse wheel update",
		func(c *imgui.Context, a args) (any, error) {
			return retNone(c.AddMouseWheelEvent(a.f32(0), a.f32(1)))
		}},
	{"AddKeyEvent(key: int, down: bool)", "queue a new key down/up event",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.AddKeyEvent(a.i32(0), a.bool(1))) }},
	{"AddInputCharacters(text: str)", "queue characters typed by the user",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.AddInputCharacters(a.str(0))) }},
}
