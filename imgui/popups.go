package imgui

import (
	cimgui "github.com/AllenDang/cimgui-go/imgui"

	"github.com/wippyai/imgui-bridge/native"
)

// Popups

func (c *Context) OpenPopup(strID string, flags int32) error {
	if err := c.inFrame("OpenPopup"); err != nil {
		return err
	}
	f, err := libPopupFlags("OpenPopup", flags)
	if err != nil {
		return err
	}
	cimgui.OpenPopupStrV(strID, f)
	return nil
}

func (c *Context) OpenPopupOnItemClick(strID string, flags int32) error {
	if err := c.inFrame("OpenPopupOnItemClick"); err != nil {
		return err
	}
	f, err := libPopupFlags("OpenPopupOnItemClick", flags)
	if err != nil {
		return err
	}
	cimgui.OpenPopupOnItemClickV(strID, f)
	return nil
}

// BeginPopup begins a popup opened with OpenPopup. EndPopup is only
// called when it returns true.
func (c *Context) BeginPopup(strID string, flags int32) (bool, error) {
	if err := c.inFrame("BeginPopup"); err != nil {
		return false, err
	}
	if flags&windowFlagsInternal != 0 {
		return false, argErr("BeginPopup", "flags", flags, "internal window flags 0x%X", flags&windowFlagsInternal)
	}
	return c.popup(strID, cimgui.BeginPopupV(strID, cimgui.WindowFlags(flags))), nil
}

func (c *Context) BeginPopupModal(name string, pOpen *bool, flags int32) (bool, error) {
	if err := c.inFrame("BeginPopupModal"); err != nil {
		return false, err
	}
	if flags&windowFlagsInternal != 0 {
		return false, argErr("BeginPopupModal", "flags", flags, "internal window flags 0x%X", flags&windowFlagsInternal)
	}
	return c.popup(name, cimgui.BeginPopupModalV(name, pOpen, cimgui.WindowFlags(flags))), nil
}

func (c *Context) BeginPopupContextItem(strID string, flags int32) (bool, error) {
	if err := c.inFrame("BeginPopupContextItem"); err != nil {
		return false, err
	}
	f, err := libPopupFlags("BeginPopupContextItem", flags)
	if err != nil {
		return false, err
	}
	return c.popup(strID, cimgui.BeginPopupContextItemV(strID, f)), nil
}

func (c *Context) BeginPopupContextWindow(strID string, flags int32) (bool, error) {
	if err := c.inFrame("BeginPopupContextWindow"); err != nil {
		return false, err
	}
	f, err := libPopupFlags("BeginPopupContextWindow", flags)
	if err != nil {
		return false, err
	}
	return c.popup(strID, cimgui.BeginPopupContextWindowV(strID, f)), nil
}

func (c *Context) BeginPopupContextVoid(strID string, flags int32) (bool, error) {
	if err := c.inFrame("BeginPopupContextVoid"); err != nil {
		return false, err
	}
	f, err := libPopupFlags("BeginPopupContextVoid", flags)
	if err != nil {
		return false, err
	}
	return c.popup(strID, cimgui.BeginPopupContextVoidV(strID, f)), nil
}

func (c *Context) popup(name string, open bool) bool {
	if open {
		c.pushScope(scopePopup, name)
	}
	return open
}

func (c *Context) EndPopup() error {
	if err := c.inFrame("EndPopup"); err != nil {
		return err
	}
	if err := c.endScope("EndPopup", scopePopup); err != nil {
		return err
	}
	cimgui.EndPopup()
	return nil
}

func (c *Context) CloseCurrentPopup() error {
	if err := c.inFrame("CloseCurrentPopup"); err != nil {
		return err
	}
	cimgui.CloseCurrentPopup()
	return nil
}

func (c *Context) IsPopupOpen(strID string, flags int32) (bool, error) {
	if err := c.inFrame("IsPopupOpen"); err != nil {
		return false, err
	}
	f, err := libPopupFlags("IsPopupOpen", flags)
	if err != nil {
		return false, err
	}
	if flags&popupAnyPopupID != 0 && strID != "" {
		return false, argErr("IsPopupOpen", "str_id", strID, "str_id must be empty with AnyPopupId")
	}
	return cimgui.IsPopupOpenStrV(strID, f), nil
}

func (c *Context) GetMousePosOnOpeningCurrentPopup() (native.Vec2, error) {
	if err := c.inFrame("GetMousePosOnOpeningCurrentPopup"); err != nil {
		return native.Vec2{}, err
	}
	return fromV2(cimgui.MousePosOnOpeningCurrentPopup()), nil
}

// Tooltips

// BeginTooltip begins a tooltip window. EndTooltip is only called when it
// returns true.
func (c *Context) BeginTooltip() (bool, error) {
	if err := c.inFrame("BeginTooltip"); err != nil {
		return false, err
	}
	return c.tooltip(cimgui.BeginTooltip()), nil
}

// BeginItemTooltip begins a tooltip when the last item is hovered.
func (c *Context) BeginItemTooltip() (bool, error) {
	if err := c.inFrame("BeginItemTooltip"); err != nil {
		return false, err
	}
	return c.tooltip(cimgui.BeginItemTooltip()), nil
}

func (c *Context) tooltip(open bool) bool {
	if open {
		c.pushScope(scopeTooltip, "##Tooltip")
	}
	return open
}

func (c *Context) EndTooltip() error {
	if err := c.inFrame("EndTooltip"); err != nil {
		return err
	}
	if err := c.endScope("EndTooltip", scopeTooltip); err != nil {
		return err
	}
	cimgui.EndTooltip()
	return nil
}

// SetTooltip replaces the tooltip with a text.
func (c *Context) SetTooltip(s string) error {
	if err := c.inFrame("SetTooltip"); err != nil {
		return err
	}
	if cimgui.BeginTooltip() {
		cimgui.TextUnformatted(s)
		cimgui.EndTooltip()
	}
	return nil
}

// SetItemTooltip shows a text tooltip when the last item is hovered.
func (c *Context) SetItemTooltip(s string) error {
	if err := c.inFrame("SetItemTooltip"); err != nil {
		return err
	}
	if cimgui.BeginItemTooltip() {
		cimgui.TextUnformatted(s)
		cimgui.EndTooltip()
	}
	return nil
}

// Trees

// TreeNode returns true when the node is open; TreePop must then be
// called unless NoTreePushOnOpen is set.
func (c *Context) TreeNode(label string, flags int32) (bool, error) {
	if err := c.inFrame("TreeNode"); err != nil {
		return false, err
	}
	if flags < 0 || flags >= 1<<15 {
		return false, argErr("TreeNode", "flags", flags, "invalid tree node flags 0x%X", flags)
	}
	open := cimgui.TreeNodeExStrV(label, cimgui.TreeNodeFlags(flags))
	if open && flags&treeNodeNoTreePushOnOpen == 0 {
		c.pushScope(scopeTree, label)
	}
	return open, nil
}

func (c *Context) TreePush(strID string) error {
	if err := c.inFrame("TreePush"); err != nil {
		return err
	}
	cimgui.TreePushStr(strID)
	c.pushScope(scopeTree, strID)
	return nil
}

func (c *Context) TreePop() error {
	if err := c.inFrame("TreePop"); err != nil {
		return err
	}
	if err := c.endScope("TreePop", scopeTree); err != nil {
		return err
	}
	cimgui.TreePop()
	return nil
}

func (c *Context) SetNextItemOpen(open bool, cond int32) error {
	if err := c.inFrame("SetNextItemOpen"); err != nil {
		return err
	}
	if err := checkCond("SetNextItemOpen", cond); err != nil {
		return err
	}
	cimgui.SetNextItemOpenV(open, cimgui.Cond(cond))
	return nil
}

// Tab bars

func (c *Context) BeginTabBar(strID string, flags int32) (bool, error) {
	if err := c.inFrame("BeginTabBar"); err != nil {
		return false, err
	}
	if flags < 0 || flags >= 1<<8 {
		return false, argErr("BeginTabBar", "flags", flags, "invalid tab bar flags 0x%X", flags)
	}
	if !cimgui.BeginTabBarV(strID, cimgui.TabBarFlags(flags)) {
		return false, nil
	}
	c.pushScope(scopeTabBar, strID)
	return true, nil
}

func (c *Context) EndTabBar() error {
	if err := c.inFrame("EndTabBar"); err != nil {
		return err
	}
	if err := c.endScope("EndTabBar", scopeTabBar); err != nil {
		return err
	}
	cimgui.EndTabBar()
	return nil
}

func (c *Context) inTabBar(fn string) error {
	if s := c.top(); s == nil || s.kind != scopeTabBar {
		return callErr(fn, "needs to be called between BeginTabBar() and EndTabBar()")
	}
	return nil
}

func (c *Context) BeginTabItem(label string, pOpen *bool, flags int32) (bool, error) {
	if err := c.inFrame("BeginTabItem"); err != nil {
		return false, err
	}
	if err := c.inTabBar("BeginTabItem"); err != nil {
		return false, err
	}
	if flags < 0 || flags&tabItemButton != 0 || flags >= 1<<8 {
		return false, argErr("BeginTabItem", "flags", flags, "invalid tab item flags 0x%X, use TabItemButton for buttons", flags)
	}
	if !cimgui.BeginTabItemV(label, pOpen, cimgui.TabItemFlags(flags)) {
		return false, nil
	}
	c.pushScope(scopeTabItem, label)
	return true, nil
}

func (c *Context) EndTabItem() error {
	if err := c.inFrame("EndTabItem"); err != nil {
		return err
	}
	if err := c.endScope("EndTabItem", scopeTabItem); err != nil {
		return err
	}
	cimgui.EndTabItem()
	return nil
}

func (c *Context) TabItemButton(label string, flags int32) (bool, error) {
	if err := c.inFrame("TabItemButton"); err != nil {
		return false, err
	}
	if err := c.inTabBar("TabItemButton"); err != nil {
		return false, err
	}
	if flags < 0 || flags >= 1<<8 {
		return false, argErr("TabItemButton", "flags", flags, "invalid tab item flags 0x%X", flags)
	}
	return cimgui.TabItemButtonV(label, cimgui.TabItemFlags(flags)), nil
}

func (c *Context) SetTabItemClosed(label string) error {
	if err := c.inFrame("SetTabItemClosed"); err != nil {
		return err
	}
	cimgui.SetTabItemClosed(label)
	return nil
}

// Disabled blocks

func (c *Context) BeginDisabled(disabled bool) error {
	if err := c.inFrame("BeginDisabled"); err != nil {
		return err
	}
	cimgui.BeginDisabledV(disabled)
	c.pushScope(scopeDisabled, "disabled")
	return nil
}

func (c *Context) EndDisabled() error {
	if err := c.inFrame("EndDisabled"); err != nil {
		return err
	}
	if err := c.endScope("EndDisabled", scopeDisabled); err != nil {
		return err
	}
	cimgui.EndDisabled()
	return nil
}
