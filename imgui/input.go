package imgui

import (
	cimgui "github.com/AllenDang/cimgui-go/imgui"

	"github.com/wippyai/imgui-bridge/native"
)

// Input events are queued in IO and applied by the next NewFrame.

func (c *Context) AddMousePosEvent(x, y float32) error {
	if err := c.live(); err != nil {
		return err
	}
	c.io.AddMousePosEvent(x, y)
	return nil
}

func (c *Context) AddMouseButtonEvent(button int32, down bool) error {
	if err := c.live(); err != nil {
		return err
	}
	if err := checkButton("AddMouseButtonEvent", button); err != nil {
		return err
	}
	c.io.AddMouseButtonEvent(button, down)
	return nil
}

func (c *Context) AddMouseWheelEvent(x, y float32) error {
	if err := c.live(); err != nil {
		return err
	}
	c.io.AddMouseWheelEvent(x, y)
	return nil
}

// AddKeyEvent queues a key or modifier change. Key 0 (None) is ignored.
func (c *Context) AddKeyEvent(key int32, down bool) error {
	if err := c.live(); err != nil {
		return err
	}
	if key == 0 {
		return nil
	}
	k, err := libKey("AddKeyEvent", key)
	if err != nil {
		return err
	}
	c.io.AddKeyEvent(k, down)
	return nil
}

func (c *Context) AddInputCharacters(s string) error {
	if err := c.live(); err != nil {
		return err
	}
	c.io.AddInputCharactersUTF8(s)
	return nil
}

func (c *Context) IsKeyDown(key int32) (bool, error) {
	k, err := c.key("IsKeyDown", key)
	if err != nil {
		return false, err
	}
	return cimgui.IsKeyDownNil(k), nil
}

func (c *Context) IsKeyPressed(key int32, repeat bool) (bool, error) {
	k, err := c.key("IsKeyPressed", key)
	if err != nil {
		return false, err
	}
	return cimgui.IsKeyPressedBoolV(k, repeat), nil
}

func (c *Context) IsKeyReleased(key int32) (bool, error) {
	k, err := c.key("IsKeyReleased", key)
	if err != nil {
		return false, err
	}
	return cimgui.IsKeyReleasedNil(k), nil
}

func (c *Context) GetKeyPressedAmount(key int32, repeatDelay, rate float32) (int32, error) {
	k, err := c.key("GetKeyPressedAmount", key)
	if err != nil {
		return 0, err
	}
	return cimgui.KeyPressedAmount(k, repeatDelay, rate), nil
}

// GetKeyName returns the name of a key. Unknown keys are named "Unknown".
func (c *Context) GetKeyName(key int32) (string, error) {
	if err := c.live(); err != nil {
		return "", err
	}
	switch key {
	case 0:
		return "None", nil
	case modCtrl, modShortcut:
		return "ModCtrl", nil
	case modShift:
		return "ModShift", nil
	case modAlt:
		return "ModAlt", nil
	case modSuper:
		return "ModSuper", nil
	}
	if name, ok := keyNames[int64(key)]; ok {
		return name, nil
	}
	return "Unknown", nil
}

func (c *Context) key(fn string, key int32) (cimgui.Key, error) {
	if err := c.inFrame(fn); err != nil {
		return 0, err
	}
	return libKey(fn, key)
}

func (c *Context) IsMouseDown(button int32) (bool, error) {
	b, err := c.mouseButton("IsMouseDown", button)
	if err != nil {
		return false, err
	}
	return cimgui.IsMouseDownNil(b), nil
}

func (c *Context) IsMouseClicked(button int32, repeat bool) (bool, error) {
	b, err := c.mouseButton("IsMouseClicked", button)
	if err != nil {
		return false, err
	}
	return cimgui.IsMouseClickedBoolV(b, repeat), nil
}

func (c *Context) IsMouseReleased(button int32) (bool, error) {
	b, err := c.mouseButton("IsMouseReleased", button)
	if err != nil {
		return false, err
	}
	return cimgui.IsMouseReleasedNil(b), nil
}

func (c *Context) IsMouseDoubleClicked(button int32) (bool, error) {
	b, err := c.mouseButton("IsMouseDoubleClicked", button)
	if err != nil {
		return false, err
	}
	return cimgui.IsMouseDoubleClickedNil(b), nil
}

func (c *Context) GetMouseClickedCount(button int32) (int32, error) {
	b, err := c.mouseButton("GetMouseClickedCount", button)
	if err != nil {
		return 0, err
	}
	return cimgui.MouseClickedCount(b), nil
}

func (c *Context) IsMouseDragging(button int32, threshold float32) (bool, error) {
	b, err := c.mouseButton("IsMouseDragging", button)
	if err != nil {
		return false, err
	}
	return cimgui.IsMouseDraggingV(b, threshold), nil
}

func (c *Context) GetMouseDragDelta(button int32, threshold float32) (native.Vec2, error) {
	b, err := c.mouseButton("GetMouseDragDelta", button)
	if err != nil {
		return native.Vec2{}, err
	}
	return fromV2(cimgui.MouseDragDeltaV(b, threshold)), nil
}

func (c *Context) ResetMouseDragDelta(button int32) error {
	b, err := c.mouseButton("ResetMouseDragDelta", button)
	if err != nil {
		return err
	}
	cimgui.ResetMouseDragDeltaV(b)
	return nil
}

func (c *Context) mouseButton(fn string, button int32) (cimgui.MouseButton, error) {
	if err := c.inFrame(fn); err != nil {
		return 0, err
	}
	if err := checkButton(fn, button); err != nil {
		return 0, err
	}
	return cimgui.MouseButton(button), nil
}

func (c *Context) IsMouseHoveringRect(rMin, rMax native.Vec2, clip bool) (bool, error) {
	if err := c.inFrame("IsMouseHoveringRect"); err != nil {
		return false, err
	}
	return cimgui.IsMouseHoveringRectV(v2(rMin), v2(rMax), clip), nil
}

// IsMousePosValid checks pos, or the current mouse position when pos is
// nil.
func (c *Context) IsMousePosValid(pos *native.Vec2) (bool, error) {
	if err := c.live(); err != nil {
		return false, err
	}
	if pos == nil {
		return cimgui.IsMousePosValid(), nil
	}
	p := v2(*pos)
	return cimgui.IsMousePosValidV(&p), nil
}

func (c *Context) IsAnyMouseDown() (bool, error) {
	if err := c.inFrame("IsAnyMouseDown"); err != nil {
		return false, err
	}
	return cimgui.IsAnyMouseDown(), nil
}

func (c *Context) GetMousePos() (native.Vec2, error) {
	if err := c.live(); err != nil {
		return native.Vec2{}, err
	}
	return fromV2(cimgui.MousePos()), nil
}

func (c *Context) GetMouseCursor() (int32, error) {
	if err := c.inFrame("GetMouseCursor"); err != nil {
		return 0, err
	}
	return int32(cimgui.CurrentMouseCursor()), nil
}

func (c *Context) SetMouseCursor(cursor int32) error {
	if err := c.inFrame("SetMouseCursor"); err != nil {
		return err
	}
	if cursor < mouseCursorNone || cursor >= mouseCursorCount {
		return argErr("SetMouseCursor", "cursor_type", cursor, "cursor %d out of range [-1, %d)", cursor, mouseCursorCount)
	}
	cimgui.SetMouseCursor(cimgui.MouseCursor(cursor))
	return nil
}

func (c *Context) SetNextFrameWantCaptureKeyboard(want bool) error {
	if err := c.inFrame("SetNextFrameWantCaptureKeyboard"); err != nil {
		return err
	}
	cimgui.SetNextFrameWantCaptureKeyboard(want)
	return nil
}

func (c *Context) SetNextFrameWantCaptureMouse(want bool) error {
	if err := c.inFrame("SetNextFrameWantCaptureMouse"); err != nil {
		return err
	}
	cimgui.SetNextFrameWantCaptureMouse(want)
	return nil
}

// GetClipboardText reads the clipboard through the library's handlers.
func (c *Context) GetClipboardText() (string, error) {
	if err := c.live(); err != nil {
		return "", err
	}
	return cimgui.ClipboardText(), nil
}

func (c *Context) SetClipboardText(s string) error {
	if err := c.live(); err != nil {
		return err
	}
	cimgui.SetClipboardText(s)
	return nil
}

// DebugTextEncoding shows the code points of s in a table.
func (c *Context) DebugTextEncoding(s string) error {
	if err := c.inFrame("DebugTextEncoding"); err != nil {
		return err
	}
	cimgui.DebugTextEncoding(s)
	return nil
}
