package imgui

import (
	"fmt"

	cimgui "github.com/AllenDang/cimgui-go/imgui"

	"github.com/wippyai/imgui-bridge/native"
	"github.com/wippyai/imgui-bridge/resource"
)

// Begin pushes a window. End must be called whatever Begin returns.
func (c *Context) Begin(name string, pOpen *bool, flags int32) (bool, error) {
	if err := c.inFrame("Begin"); err != nil {
		return false, err
	}
	if name == "" {
		return false, argErr("Begin", "name", name, "window name must not be empty")
	}
	if flags&windowFlagsInternal != 0 {
		return false, argErr("Begin", "flags", flags, "internal window flags 0x%X", flags&windowFlagsInternal)
	}
	ok := cimgui.BeginV(name, pOpen, cimgui.WindowFlags(flags))
	c.pushScope(scopeWindow, name)
	c.windows = append(c.windows, name)
	return ok, nil
}

// End pops the current window.
func (c *Context) End() error {
	if err := c.inFrame("End"); err != nil {
		return err
	}
	if err := c.endScope("End", scopeWindow); err != nil {
		return err
	}
	cimgui.End()
	return nil
}

// BeginChild begins a child window. EndChild must be called whatever it
// returns.
func (c *Context) BeginChild(strID string, size native.Vec2, border bool, flags int32) (bool, error) {
	if err := c.inFrame("BeginChild"); err != nil {
		return false, err
	}
	if flags&windowFlagsInternal != 0 {
		return false, argErr("BeginChild", "flags", flags, "internal window flags 0x%X", flags&windowFlagsInternal)
	}
	var child cimgui.ChildFlags
	if border {
		child |= childBorders
	}
	if flags&windowFlagsAlwaysUseWindowPadding != 0 {
		child |= childAlwaysUseWindowPadding
		flags &^= windowFlagsAlwaysUseWindowPadding
	}
	ok := cimgui.BeginChildStrV(strID, v2(size), child, cimgui.WindowFlags(flags))
	c.pushScope(scopeChild, strID)
	return ok, nil
}

// BeginChildFrame begins a child window styled like a framed item.
func (c *Context) BeginChildFrame(id ID, size native.Vec2, flags int32) (bool, error) {
	if err := c.inFrame("BeginChildFrame"); err != nil {
		return false, err
	}
	if id == 0 {
		return false, argErr("BeginChildFrame", "id", id, "id must not be 0")
	}
	if flags&windowFlagsInternal != 0 {
		return false, argErr("BeginChildFrame", "flags", flags, "internal window flags 0x%X", flags&windowFlagsInternal)
	}
	ok := cimgui.BeginChildIDV(cimgui.ID(id), v2(size), childFrameStyle, cimgui.WindowFlags(flags))
	c.pushScope(scopeChild, fmt.Sprintf("0x%08X", uint32(id)))
	return ok, nil
}

// EndChild ends a child window.
func (c *Context) EndChild() error {
	if err := c.inFrame("EndChild"); err != nil {
		return err
	}
	if err := c.endScope("EndChild", scopeChild); err != nil {
		return err
	}
	cimgui.EndChild()
	return nil
}

// EndChildFrame ends a child frame.
func (c *Context) EndChildFrame() error { return c.EndChild() }

func (c *Context) IsWindowAppearing() (bool, error) {
	if err := c.inFrame("IsWindowAppearing"); err != nil {
		return false, err
	}
	return cimgui.IsWindowAppearing(), nil
}

func (c *Context) IsWindowCollapsed() (bool, error) {
	if err := c.inFrame("IsWindowCollapsed"); err != nil {
		return false, err
	}
	return cimgui.IsWindowCollapsed(), nil
}

func (c *Context) IsWindowFocused(flags int32) (bool, error) {
	if err := c.inFrame("IsWindowFocused"); err != nil {
		return false, err
	}
	if flags < 0 || flags&^hoveredWindowOnly != 0 {
		return false, argErr("IsWindowFocused", "flags", flags, "invalid focused flags 0x%X", flags)
	}
	return cimgui.IsWindowFocusedV(cimgui.FocusedFlags(flags)), nil
}

// Hovered flags IsWindowHovered accepts.
const hoveredForWindow = hoveredWindowOnly | 32 | 128 | 4096 | 8192

func (c *Context) IsWindowHovered(flags int32) (bool, error) {
	if err := c.inFrame("IsWindowHovered"); err != nil {
		return false, err
	}
	if flags < 0 || flags&^hoveredForWindow != 0 {
		return false, argErr("IsWindowHovered", "flags", flags, "invalid flags for IsWindowHovered 0x%X", flags&^hoveredForWindow)
	}
	return cimgui.IsWindowHoveredV(cimgui.HoveredFlags(flags)), nil
}

// GetWindowDrawList returns the draw list of the current window.
func (c *Context) GetWindowDrawList() (resource.Handle, error) {
	if err := c.inFrame("GetWindowDrawList"); err != nil {
		return 0, err
	}
	return c.object(resource.TypeDrawList, "window:"+c.windowName(), cimgui.WindowDrawList()), nil
}

func (c *Context) GetWindowPos() (native.Vec2, error) {
	if err := c.inFrame("GetWindowPos"); err != nil {
		return native.Vec2{}, err
	}
	return fromV2(cimgui.WindowPos()), nil
}

func (c *Context) GetWindowSize() (native.Vec2, error) {
	if err := c.inFrame("GetWindowSize"); err != nil {
		return native.Vec2{}, err
	}
	return fromV2(cimgui.WindowSize()), nil
}

func (c *Context) GetWindowWidth() (float32, error) {
	if err := c.inFrame("GetWindowWidth"); err != nil {
		return 0, err
	}
	return cimgui.WindowWidth(), nil
}

func (c *Context) GetWindowHeight() (float32, error) {
	if err := c.inFrame("GetWindowHeight"); err != nil {
		return 0, err
	}
	return cimgui.WindowHeight(), nil
}

func (c *Context) SetNextWindowPos(pos native.Vec2, cond int32, pivot native.Vec2) error {
	if err := c.inFrame("SetNextWindowPos"); err != nil {
		return err
	}
	if err := checkCond("SetNextWindowPos", cond); err != nil {
		return err
	}
	cimgui.SetNextWindowPosV(v2(pos), cimgui.Cond(cond), v2(pivot))
	return nil
}

func (c *Context) SetNextWindowSize(size native.Vec2, cond int32) error {
	if err := c.inFrame("SetNextWindowSize"); err != nil {
		return err
	}
	if err := checkCond("SetNextWindowSize", cond); err != nil {
		return err
	}
	cimgui.SetNextWindowSizeV(v2(size), cimgui.Cond(cond))
	return nil
}

func (c *Context) SetNextWindowSizeConstraints(sizeMin, sizeMax native.Vec2) error {
	if err := c.inFrame("SetNextWindowSizeConstraints"); err != nil {
		return err
	}
	cimgui.SetNextWindowSizeConstraints(v2(sizeMin), v2(sizeMax))
	return nil
}

func (c *Context) SetNextWindowContentSize(size native.Vec2) error {
	if err := c.inFrame("SetNextWindowContentSize"); err != nil {
		return err
	}
	cimgui.SetNextWindowContentSize(v2(size))
	return nil
}

func (c *Context) SetNextWindowCollapsed(collapsed bool, cond int32) error {
	if err := c.inFrame("SetNextWindowCollapsed"); err != nil {
		return err
	}
	if err := checkCond("SetNextWindowCollapsed", cond); err != nil {
		return err
	}
	cimgui.SetNextWindowCollapsedV(collapsed, cimgui.Cond(cond))
	return nil
}

func (c *Context) SetNextWindowFocus() error {
	if err := c.inFrame("SetNextWindowFocus"); err != nil {
		return err
	}
	cimgui.SetNextWindowFocus()
	return nil
}

func (c *Context) SetNextWindowScroll(scroll native.Vec2) error {
	if err := c.inFrame("SetNextWindowScroll"); err != nil {
		return err
	}
	cimgui.SetNextWindowScroll(v2(scroll))
	return nil
}

func (c *Context) SetNextWindowBgAlpha(alpha float32) error {
	if err := c.inFrame("SetNextWindowBgAlpha"); err != nil {
		return err
	}
	cimgui.SetNextWindowBgAlpha(alpha)
	return nil
}

func (c *Context) GetContentRegionAvail() (native.Vec2, error) {
	if err := c.inFrame("GetContentRegionAvail"); err != nil {
		return native.Vec2{}, err
	}
	return fromV2(cimgui.ContentRegionAvail()), nil
}

// GetContentRegionMax returns the bottom-right corner of the content
// region in window coordinates. Newer libraries dropped the call, so it is
// derived from the available region at the cursor.
func (c *Context) GetContentRegionMax() (native.Vec2, error) {
	if err := c.inFrame("GetContentRegionMax"); err != nil {
		return native.Vec2{}, err
	}
	return c.contentRegionMax(), nil
}

func (c *Context) contentRegionMax() native.Vec2 {
	avail := fromV2(cimgui.ContentRegionAvail())
	cursor := fromV2(cimgui.CursorScreenPos())
	return avail.Add(cursor).Sub(fromV2(cimgui.WindowPos()))
}

// GetWindowContentRegionMin returns the top-left corner of the content
// region in window coordinates.
func (c *Context) GetWindowContentRegionMin() (native.Vec2, error) {
	if err := c.inFrame("GetWindowContentRegionMin"); err != nil {
		return native.Vec2{}, err
	}
	return fromV2(cimgui.CursorStartPos()), nil
}

// GetWindowContentRegionMax returns the bottom-right corner of the content
// region in window coordinates.
func (c *Context) GetWindowContentRegionMax() (native.Vec2, error) {
	if err := c.inFrame("GetWindowContentRegionMax"); err != nil {
		return native.Vec2{}, err
	}
	return c.contentRegionMax(), nil
}

func (c *Context) GetScrollX() (float32, error) {
	if err := c.inFrame("GetScrollX"); err != nil {
		return 0, err
	}
	return cimgui.ScrollX(), nil
}

func (c *Context) GetScrollY() (float32, error) {
	if err := c.inFrame("GetScrollY"); err != nil {
		return 0, err
	}
	return cimgui.ScrollY(), nil
}

func (c *Context) GetScrollMaxX() (float32, error) {
	if err := c.inFrame("GetScrollMaxX"); err != nil {
		return 0, err
	}
	return cimgui.ScrollMaxX(), nil
}

func (c *Context) GetScrollMaxY() (float32, error) {
	if err := c.inFrame("GetScrollMaxY"); err != nil {
		return 0, err
	}
	return cimgui.ScrollMaxY(), nil
}

func (c *Context) SetScrollX(x float32) error {
	if err := c.inFrame("SetScrollX"); err != nil {
		return err
	}
	cimgui.SetScrollXFloat(x)
	return nil
}

func (c *Context) SetScrollY(y float32) error {
	if err := c.inFrame("SetScrollY"); err != nil {
		return err
	}
	cimgui.SetScrollYFloat(y)
	return nil
}

func (c *Context) SetScrollHereX(ratio float32) error {
	if err := c.inFrame("SetScrollHereX"); err != nil {
		return err
	}
	if err := checkRatio("SetScrollHereX", ratio); err != nil {
		return err
	}
	cimgui.SetScrollHereXV(ratio)
	return nil
}

func (c *Context) SetScrollHereY(ratio float32) error {
	if err := c.inFrame("SetScrollHereY"); err != nil {
		return err
	}
	if err := checkRatio("SetScrollHereY", ratio); err != nil {
		return err
	}
	cimgui.SetScrollHereYV(ratio)
	return nil
}

func (c *Context) SetScrollFromPosX(localX, ratio float32) error {
	if err := c.inFrame("SetScrollFromPosX"); err != nil {
		return err
	}
	if err := checkRatio("SetScrollFromPosX", ratio); err != nil {
		return err
	}
	cimgui.SetScrollFromPosXFloatV(localX, ratio)
	return nil
}

func (c *Context) SetScrollFromPosY(localY, ratio float32) error {
	if err := c.inFrame("SetScrollFromPosY"); err != nil {
		return err
	}
	if err := checkRatio("SetScrollFromPosY", ratio); err != nil {
		return err
	}
	cimgui.SetScrollFromPosYFloatV(localY, ratio)
	return nil
}
