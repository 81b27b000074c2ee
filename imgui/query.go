package imgui

import (
	cimgui "github.com/AllenDang/cimgui-go/imgui"

	"github.com/wippyai/imgui-bridge/native"
	"github.com/wippyai/imgui-bridge/resource"
)

// Item and context queries.

// Hovered flags IsItemHovered accepts.
const hoveredForItem = 32 | 128 | 256 | 512 | 1024 | 2048 | 4096 | 8192 | 16384 | 32768 | 65536 | 131072

func (c *Context) IsItemHovered(flags int32) (bool, error) {
	if err := c.inFrame("IsItemHovered"); err != nil {
		return false, err
	}
	if flags < 0 || flags&^hoveredForItem != 0 {
		return false, argErr("IsItemHovered", "flags", flags, "invalid flags for IsItemHovered 0x%X", flags&^hoveredForItem)
	}
	return cimgui.IsItemHoveredV(cimgui.HoveredFlags(flags)), nil
}

func (c *Context) IsItemActive() (bool, error) {
	return c.itemQuery("IsItemActive", cimgui.IsItemActive)
}

func (c *Context) IsItemFocused() (bool, error) {
	return c.itemQuery("IsItemFocused", cimgui.IsItemFocused)
}

func (c *Context) IsItemClicked(button int32) (bool, error) {
	if err := c.inFrame("IsItemClicked"); err != nil {
		return false, err
	}
	if err := checkButton("IsItemClicked", button); err != nil {
		return false, err
	}
	return cimgui.IsItemClickedV(cimgui.MouseButton(button)), nil
}

func (c *Context) IsItemVisible() (bool, error) {
	return c.itemQuery("IsItemVisible", cimgui.IsItemVisible)
}

func (c *Context) IsItemEdited() (bool, error) {
	return c.itemQuery("IsItemEdited", cimgui.IsItemEdited)
}

func (c *Context) IsItemActivated() (bool, error) {
	return c.itemQuery("IsItemActivated", cimgui.IsItemActivated)
}

func (c *Context) IsItemDeactivated() (bool, error) {
	return c.itemQuery("IsItemDeactivated", cimgui.IsItemDeactivated)
}

func (c *Context) IsItemDeactivatedAfterEdit() (bool, error) {
	return c.itemQuery("IsItemDeactivatedAfterEdit", cimgui.IsItemDeactivatedAfterEdit)
}

func (c *Context) IsItemToggledOpen() (bool, error) {
	return c.itemQuery("IsItemToggledOpen", cimgui.IsItemToggledOpen)
}

func (c *Context) IsAnyItemHovered() (bool, error) {
	return c.itemQuery("IsAnyItemHovered", cimgui.IsAnyItemHovered)
}

func (c *Context) IsAnyItemActive() (bool, error) {
	return c.itemQuery("IsAnyItemActive", cimgui.IsAnyItemActive)
}

func (c *Context) IsAnyItemFocused() (bool, error) {
	return c.itemQuery("IsAnyItemFocused", cimgui.IsAnyItemFocused)
}

func (c *Context) itemQuery(fn string, q func() bool) (bool, error) {
	if err := c.inFrame(fn); err != nil {
		return false, err
	}
	return q(), nil
}

func (c *Context) GetItemRectMin() (native.Vec2, error) {
	if err := c.inFrame("GetItemRectMin"); err != nil {
		return native.Vec2{}, err
	}
	return fromV2(cimgui.ItemRectMin()), nil
}

func (c *Context) GetItemRectMax() (native.Vec2, error) {
	if err := c.inFrame("GetItemRectMax"); err != nil {
		return native.Vec2{}, err
	}
	return fromV2(cimgui.ItemRectMax()), nil
}

func (c *Context) GetItemRectSize() (native.Vec2, error) {
	if err := c.inFrame("GetItemRectSize"); err != nil {
		return native.Vec2{}, err
	}
	return fromV2(cimgui.ItemRectSize()), nil
}

// SetItemAllowOverlap lets the next item overlap the last one. Later
// library versions only support setting it before the item is submitted,
// so it applies to the item that follows.
func (c *Context) SetItemAllowOverlap() error {
	if err := c.inFrame("SetItemAllowOverlap"); err != nil {
		return err
	}
	cimgui.SetNextItemAllowOverlap()
	return nil
}

func (c *Context) SetItemDefaultFocus() error {
	if err := c.inFrame("SetItemDefaultFocus"); err != nil {
		return err
	}
	cimgui.SetItemDefaultFocus()
	return nil
}

func (c *Context) SetKeyboardFocusHere(offset int32) error {
	if err := c.inFrame("SetKeyboardFocusHere"); err != nil {
		return err
	}
	if offset < -1 {
		return argErr("SetKeyboardFocusHere", "offset", offset, "offset must be -1 or greater")
	}
	cimgui.SetKeyboardFocusHereV(offset)
	return nil
}

// Objects handed to the host as handles.

func (c *Context) GetMainViewport() (resource.Handle, error) {
	if err := c.live(); err != nil {
		return 0, err
	}
	return c.object(resource.TypeViewport, "main", cimgui.MainViewport()), nil
}

func (c *Context) GetBackgroundDrawList() (resource.Handle, error) {
	if err := c.inFrame("GetBackgroundDrawList"); err != nil {
		return 0, err
	}
	return c.object(resource.TypeDrawList, "background", cimgui.BackgroundDrawList()), nil
}

func (c *Context) GetForegroundDrawList() (resource.Handle, error) {
	if err := c.inFrame("GetForegroundDrawList"); err != nil {
		return 0, err
	}
	return c.object(resource.TypeDrawList, "foreground", cimgui.ForegroundDrawList()), nil
}

// GetDrawListSharedData returns a handle standing for the context's shared
// draw list data. The host can only pass it back.
func (c *Context) GetDrawListSharedData() (resource.Handle, error) {
	if err := c.live(); err != nil {
		return 0, err
	}
	return c.object(resource.TypeDrawListSharedData, "", c.ctx), nil
}

// GetFont returns the font on top of the font stack.
func (c *Context) GetFont() (resource.Handle, error) {
	if err := c.live(); err != nil {
		return 0, err
	}
	if n := len(c.fonts); n > 0 {
		return c.fonts[n-1], nil
	}
	return c.hFont, nil
}

func (c *Context) GetFontSize() (float32, error) {
	if err := c.inFrame("GetFontSize"); err != nil {
		return 0, err
	}
	return cimgui.FontSize(), nil
}

func (c *Context) GetFontTexUvWhitePixel() (native.Vec2, error) {
	if err := c.inFrame("GetFontTexUvWhitePixel"); err != nil {
		return native.Vec2{}, err
	}
	return fromV2(cimgui.FontTexUvWhitePixel()), nil
}

// GetStateStorage returns the storage of the current window.
func (c *Context) GetStateStorage() (resource.Handle, error) {
	if err := c.inFrame("GetStateStorage"); err != nil {
		return 0, err
	}
	return c.object(resource.TypeStorage, c.windowName(), cimgui.StateStorage()), nil
}

// SetStateStorage replaces the storage of the current window with one
// obtained from GetStateStorage.
func (c *Context) SetStateStorage(h resource.Handle) error {
	if err := c.inFrame("SetStateStorage"); err != nil {
		return err
	}
	s, ok := lookup[*cimgui.Storage](c, h, resource.TypeStorage)
	if !ok || s == nil {
		return argErr("SetStateStorage", "storage", uint32(h), "invalid ImGuiStorage pointer")
	}
	cimgui.SetStateStorage(s)
	return nil
}
