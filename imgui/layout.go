package imgui

import (
	cimgui "github.com/AllenDang/cimgui-go/imgui"

	"github.com/wippyai/imgui-bridge/native"
	"github.com/wippyai/imgui-bridge/resource"
)

// ID is a hashed widget identifier.
type ID uint32

func (c *Context) Separator() error {
	if err := c.inFrame("Separator"); err != nil {
		return err
	}
	cimgui.Separator()
	return nil
}

func (c *Context) SeparatorText(label string) error {
	if err := c.inFrame("SeparatorText"); err != nil {
		return err
	}
	cimgui.SeparatorText(label)
	return nil
}

func (c *Context) SameLine(offsetFromStartX, spacing float32) error {
	if err := c.inFrame("SameLine"); err != nil {
		return err
	}
	cimgui.SameLineV(offsetFromStartX, spacing)
	return nil
}

func (c *Context) NewLine() error {
	if err := c.inFrame("NewLine"); err != nil {
		return err
	}
	cimgui.NewLine()
	return nil
}

func (c *Context) Spacing() error {
	if err := c.inFrame("Spacing"); err != nil {
		return err
	}
	cimgui.Spacing()
	return nil
}

func (c *Context) Dummy(size native.Vec2) error {
	if err := c.inFrame("Dummy"); err != nil {
		return err
	}
	cimgui.Dummy(v2(size))
	return nil
}

func (c *Context) Indent(w float32) error {
	if err := c.inFrame("Indent"); err != nil {
		return err
	}
	cimgui.IndentV(w)
	return nil
}

func (c *Context) Unindent(w float32) error {
	if err := c.inFrame("Unindent"); err != nil {
		return err
	}
	cimgui.UnindentV(w)
	return nil
}

func (c *Context) BeginGroup() error {
	if err := c.inFrame("BeginGroup"); err != nil {
		return err
	}
	cimgui.BeginGroup()
	c.pushScope(scopeGroup, "group")
	return nil
}

func (c *Context) EndGroup() error {
	if err := c.inFrame("EndGroup"); err != nil {
		return err
	}
	if err := c.endScope("EndGroup", scopeGroup); err != nil {
		return err
	}
	cimgui.EndGroup()
	return nil
}

func (c *Context) AlignTextToFramePadding() error {
	if err := c.inFrame("AlignTextToFramePadding"); err != nil {
		return err
	}
	cimgui.AlignTextToFramePadding()
	return nil
}

func (c *Context) GetCursorPos() (native.Vec2, error) {
	if err := c.inFrame("GetCursorPos"); err != nil {
		return native.Vec2{}, err
	}
	return fromV2(cimgui.CursorPos()), nil
}

func (c *Context) GetCursorPosX() (float32, error) {
	if err := c.inFrame("GetCursorPosX"); err != nil {
		return 0, err
	}
	return cimgui.CursorPosX(), nil
}

func (c *Context) GetCursorPosY() (float32, error) {
	if err := c.inFrame("GetCursorPosY"); err != nil {
		return 0, err
	}
	return cimgui.CursorPosY(), nil
}

func (c *Context) SetCursorPos(pos native.Vec2) error {
	if err := c.inFrame("SetCursorPos"); err != nil {
		return err
	}
	cimgui.SetCursorPos(v2(pos))
	return nil
}

func (c *Context) SetCursorPosX(x float32) error {
	if err := c.inFrame("SetCursorPosX"); err != nil {
		return err
	}
	cimgui.SetCursorPosX(x)
	return nil
}

func (c *Context) SetCursorPosY(y float32) error {
	if err := c.inFrame("SetCursorPosY"); err != nil {
		return err
	}
	cimgui.SetCursorPosY(y)
	return nil
}

func (c *Context) GetCursorStartPos() (native.Vec2, error) {
	if err := c.inFrame("GetCursorStartPos"); err != nil {
		return native.Vec2{}, err
	}
	return fromV2(cimgui.CursorStartPos()), nil
}

func (c *Context) GetCursorScreenPos() (native.Vec2, error) {
	if err := c.inFrame("GetCursorScreenPos"); err != nil {
		return native.Vec2{}, err
	}
	return fromV2(cimgui.CursorScreenPos()), nil
}

func (c *Context) SetCursorScreenPos(pos native.Vec2) error {
	if err := c.inFrame("SetCursorScreenPos"); err != nil {
		return err
	}
	cimgui.SetCursorScreenPos(v2(pos))
	return nil
}

func (c *Context) GetTextLineHeight() (float32, error) {
	if err := c.inFrame("GetTextLineHeight"); err != nil {
		return 0, err
	}
	return cimgui.TextLineHeight(), nil
}

func (c *Context) GetTextLineHeightWithSpacing() (float32, error) {
	if err := c.inFrame("GetTextLineHeightWithSpacing"); err != nil {
		return 0, err
	}
	return cimgui.TextLineHeightWithSpacing(), nil
}

func (c *Context) GetFrameHeight() (float32, error) {
	if err := c.inFrame("GetFrameHeight"); err != nil {
		return 0, err
	}
	return cimgui.FrameHeight(), nil
}

func (c *Context) GetFrameHeightWithSpacing() (float32, error) {
	if err := c.inFrame("GetFrameHeightWithSpacing"); err != nil {
		return 0, err
	}
	return cimgui.FrameHeightWithSpacing(), nil
}

// CalcTextSize measures text with the current font. It needs a frame
// because the font is bound by NewFrame.
func (c *Context) CalcTextSize(text string, hideAfterDoubleHash bool, wrapWidth float32) (native.Vec2, error) {
	if err := c.inFrame("CalcTextSize"); err != nil {
		return native.Vec2{}, err
	}
	return fromV2(cimgui.CalcTextSizeV(text, hideAfterDoubleHash, wrapWidth)), nil
}

func (c *Context) CalcItemWidth() (float32, error) {
	if err := c.inFrame("CalcItemWidth"); err != nil {
		return 0, err
	}
	return cimgui.CalcItemWidth(), nil
}

func (c *Context) IsRectVisible(size native.Vec2) (bool, error) {
	if err := c.inFrame("IsRectVisible"); err != nil {
		return false, err
	}
	return cimgui.IsRectVisibleNil(v2(size)), nil
}

// PushStyleColor overrides a style color until the matching PopStyleColor.
func (c *Context) PushStyleColor(idx int32, col native.Vec4) error {
	if err := c.inFrame("PushStyleColor"); err != nil {
		return err
	}
	lc, err := libColor("PushStyleColor", idx)
	if err != nil {
		return err
	}
	cimgui.PushStyleColorVec4(lc, v4(col))
	c.pushParam(paramStyleColor)
	return nil
}

func (c *Context) PopStyleColor(count int32) error {
	if err := c.inFrame("PopStyleColor"); err != nil {
		return err
	}
	if err := c.popParam("PopStyleColor", paramStyleColor, int(count)); err != nil {
		return err
	}
	cimgui.PopStyleColorV(count)
	return nil
}

func (c *Context) PushStyleVarFloat(idx int32, val float32) error {
	if err := c.inFrame("PushStyleVar"); err != nil {
		return err
	}
	sv, err := libStyleVar("PushStyleVar", idx, false)
	if err != nil {
		return err
	}
	cimgui.PushStyleVarFloat(sv, val)
	c.pushParam(paramStyleVar)
	return nil
}

func (c *Context) PushStyleVarVec2(idx int32, val native.Vec2) error {
	if err := c.inFrame("PushStyleVar"); err != nil {
		return err
	}
	sv, err := libStyleVar("PushStyleVar", idx, true)
	if err != nil {
		return err
	}
	cimgui.PushStyleVarVec2(sv, v2(val))
	c.pushParam(paramStyleVar)
	return nil
}

func (c *Context) PopStyleVar(count int32) error {
	if err := c.inFrame("PopStyleVar"); err != nil {
		return err
	}
	if err := c.popParam("PopStyleVar", paramStyleVar, int(count)); err != nil {
		return err
	}
	cimgui.PopStyleVarV(count)
	return nil
}

// PushTabStop allows or forbids focusing the next items with TAB.
func (c *Context) PushTabStop(tabStop bool) error {
	return c.pushItemFlag("PushTabStop", itemNoTabStop, !tabStop)
}

func (c *Context) PopTabStop() error { return c.popItemFlag("PopTabStop") }

// PushButtonRepeat makes buttons return true repeatedly while held.
func (c *Context) PushButtonRepeat(repeat bool) error {
	return c.pushItemFlag("PushButtonRepeat", itemButtonRepeat, repeat)
}

func (c *Context) PopButtonRepeat() error { return c.popItemFlag("PopButtonRepeat") }

func (c *Context) pushItemFlag(fn string, flag cimgui.ItemFlags, enabled bool) error {
	if err := c.inFrame(fn); err != nil {
		return err
	}
	cimgui.PushItemFlag(flag, enabled)
	c.pushParam(paramItemFlag)
	return nil
}

func (c *Context) popItemFlag(fn string) error {
	if err := c.inFrame(fn); err != nil {
		return err
	}
	if err := c.popParam(fn, paramItemFlag, 1); err != nil {
		return err
	}
	cimgui.PopItemFlag()
	return nil
}

func (c *Context) PushItemWidth(w float32) error {
	if err := c.inFrame("PushItemWidth"); err != nil {
		return err
	}
	cimgui.PushItemWidth(w)
	c.pushParam(paramItemWidth)
	return nil
}

func (c *Context) PopItemWidth() error {
	if err := c.inFrame("PopItemWidth"); err != nil {
		return err
	}
	if err := c.popParam("PopItemWidth", paramItemWidth, 1); err != nil {
		return err
	}
	cimgui.PopItemWidth()
	return nil
}

func (c *Context) SetNextItemWidth(w float32) error {
	if err := c.inFrame("SetNextItemWidth"); err != nil {
		return err
	}
	cimgui.SetNextItemWidth(w)
	return nil
}

func (c *Context) PushTextWrapPos(wrapLocalPosX float32) error {
	if err := c.inFrame("PushTextWrapPos"); err != nil {
		return err
	}
	cimgui.PushTextWrapPosV(wrapLocalPosX)
	c.pushParam(paramTextWrap)
	return nil
}

func (c *Context) PopTextWrapPos() error {
	if err := c.inFrame("PopTextWrapPos"); err != nil {
		return err
	}
	if err := c.popParam("PopTextWrapPos", paramTextWrap, 1); err != nil {
		return err
	}
	cimgui.PopTextWrapPos()
	return nil
}

// PushFont switches to a font loaded into the atlas. Handle 0 selects the
// default font.
func (c *Context) PushFont(h resource.Handle) error {
	if err := c.inFrame("PushFont"); err != nil {
		return err
	}
	if h == 0 {
		h = c.hFont
	}
	f, ok := lookup[*cimgui.Font](c, h, resource.TypeFont)
	if !ok {
		return argErr("PushFont", "font", uint32(h), "invalid ImFont pointer")
	}
	cimgui.PushFont(f)
	c.pushParam(paramFont)
	c.fonts = append(c.fonts, h)
	return nil
}

func (c *Context) PopFont() error {
	if err := c.inFrame("PopFont"); err != nil {
		return err
	}
	if err := c.popParam("PopFont", paramFont, 1); err != nil {
		return err
	}
	cimgui.PopFont()
	return nil
}

func (c *Context) PushClipRect(clipMin, clipMax native.Vec2, intersect bool) error {
	if err := c.inFrame("PushClipRect"); err != nil {
		return err
	}
	cimgui.PushClipRect(v2(clipMin), v2(clipMax), intersect)
	c.pushParam(paramClipRect)
	return nil
}

func (c *Context) PopClipRect() error {
	if err := c.inFrame("PopClipRect"); err != nil {
		return err
	}
	if err := c.popParam("PopClipRect", paramClipRect, 1); err != nil {
		return err
	}
	cimgui.PopClipRect()
	return nil
}

func (c *Context) PushIDStr(s string) error {
	if err := c.inFrame("PushID"); err != nil {
		return err
	}
	cimgui.PushIDStr(s)
	c.pushParam(paramID)
	return nil
}

func (c *Context) PushIDInt(n int32) error {
	if err := c.inFrame("PushID"); err != nil {
		return err
	}
	cimgui.PushIDInt(n)
	c.pushParam(paramID)
	return nil
}

// PushIDPtr pushes an opaque address. Only its value is hashed.
func (c *Context) PushIDPtr(p uint64) error {
	if err := c.inFrame("PushID"); err != nil {
		return err
	}
	cimgui.PushIDPtr(uintptr(p))
	c.pushParam(paramID)
	return nil
}

func (c *Context) PopID() error {
	if err := c.inFrame("PopID"); err != nil {
		return err
	}
	if err := c.popParam("PopID", paramID, 1); err != nil {
		return err
	}
	cimgui.PopID()
	return nil
}

// GetID hashes s with the current ID stack.
func (c *Context) GetID(s string) (ID, error) {
	if err := c.inFrame("GetID"); err != nil {
		return 0, err
	}
	return ID(cimgui.IDStr(s)), nil
}
