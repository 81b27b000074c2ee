package imgui

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	cimgui "github.com/AllenDang/cimgui-go/imgui"

	"github.com/wippyai/imgui-bridge/native"
)

// Text calls forward the string unformatted: the library's printf-style
// variants would interpret '%' in host strings.

func (c *Context) Text(s string) error {
	if err := c.inFrame("Text"); err != nil {
		return err
	}
	cimgui.TextUnformatted(s)
	return nil
}

func (c *Context) TextColored(col native.Vec4, s string) error {
	if err := c.inFrame("TextColored"); err != nil {
		return err
	}
	c.coloredText(v4(col), s)
	return nil
}

func (c *Context) TextDisabled(s string) error {
	if err := c.inFrame("TextDisabled"); err != nil {
		return err
	}
	c.coloredText(*cimgui.StyleColorVec4(cimgui.ColTextDisabled), s)
	return nil
}

func (c *Context) coloredText(col cimgui.Vec4, s string) {
	cimgui.PushStyleColorVec4(cimgui.ColText, col)
	cimgui.TextUnformatted(s)
	cimgui.PopStyleColorV(1)
}

// TextWrapped wraps at the end of the window unless a wrap position was
// pushed.
func (c *Context) TextWrapped(s string) error {
	if err := c.inFrame("TextWrapped"); err != nil {
		return err
	}
	pushed := c.params[paramTextWrap] > 0
	if !pushed {
		cimgui.PushTextWrapPosV(0)
	}
	cimgui.TextUnformatted(s)
	if !pushed {
		cimgui.PopTextWrapPos()
	}
	return nil
}

// LabelText shows a value where a widget would be and the label after it.
func (c *Context) LabelText(label, s string) error {
	if err := c.inFrame("LabelText"); err != nil {
		return err
	}
	x := cimgui.CursorPosX()
	w := cimgui.CalcItemWidth()
	cimgui.BeginGroup()
	cimgui.AlignTextToFramePadding()
	cimgui.TextUnformatted(s)
	if visible := visibleLabel(label); visible != "" {
		cimgui.SameLineV(x+w+c.style.ItemInnerSpacing().X, -1)
		cimgui.TextUnformatted(visible)
	}
	cimgui.EndGroup()
	return nil
}

func (c *Context) BulletText(s string) error {
	if err := c.inFrame("BulletText"); err != nil {
		return err
	}
	cimgui.Bullet()
	cimgui.TextUnformatted(s)
	return nil
}

// visibleLabel strips the ID suffix introduced by "##".
func visibleLabel(label string) string {
	if i := strings.Index(label, "##"); i >= 0 {
		return label[:i]
	}
	return label
}

func (c *Context) Button(label string, size native.Vec2) (bool, error) {
	if err := c.inFrame("Button"); err != nil {
		return false, err
	}
	return cimgui.ButtonV(label, v2(size)), nil
}

func (c *Context) SmallButton(label string) (bool, error) {
	if err := c.inFrame("SmallButton"); err != nil {
		return false, err
	}
	return cimgui.SmallButton(label), nil
}

// Button flags InvisibleButton accepts: the mouse button mask.
const buttonFlagsMask = 7

func (c *Context) InvisibleButton(strID string, size native.Vec2, flags int32) (bool, error) {
	if err := c.inFrame("InvisibleButton"); err != nil {
		return false, err
	}
	if size.X == 0 || size.Y == 0 {
		return false, argErr("InvisibleButton", "size", size, "size must not be zero")
	}
	if flags < 0 || flags&^buttonFlagsMask != 0 {
		return false, argErr("InvisibleButton", "flags", flags, "invalid button flags 0x%X", flags)
	}
	return cimgui.InvisibleButtonV(strID, v2(size), cimgui.ButtonFlags(flags)), nil
}

func (c *Context) ArrowButton(strID string, dir int32) (bool, error) {
	if err := c.inFrame("ArrowButton"); err != nil {
		return false, err
	}
	if dir < dirLeft || dir > dirDown {
		return false, argErr("ArrowButton", "dir", dir, "dir must be Left, Right, Up or Down")
	}
	return cimgui.ArrowButton(strID, cimgui.Dir(dir)), nil
}

func (c *Context) Checkbox(label string, v *bool) (bool, error) {
	if err := c.inFrame("Checkbox"); err != nil {
		return false, err
	}
	if v == nil {
		return false, argErr("Checkbox", "v", nil, "v must not be None")
	}
	return cimgui.Checkbox(label, v), nil
}

func (c *Context) CheckboxFlags(label string, flags *int32, flagsValue int32) (bool, error) {
	if err := c.inFrame("CheckboxFlags"); err != nil {
		return false, err
	}
	return cimgui.CheckboxFlagsIntPtr(label, flags, flagsValue), nil
}

func (c *Context) RadioButton(label string, active bool) (bool, error) {
	if err := c.inFrame("RadioButton"); err != nil {
		return false, err
	}
	return cimgui.RadioButtonBool(label, active), nil
}

// ProgressBar shows the percentage when overlay is nil.
func (c *Context) ProgressBar(fraction float32, size native.Vec2, overlay *string) error {
	if err := c.inFrame("ProgressBar"); err != nil {
		return err
	}
	text := fmt.Sprintf("%.0f%%", fraction*100+0.01)
	if overlay != nil {
		text = *overlay
	}
	cimgui.ProgressBarV(fraction, v2(size), text)
	return nil
}

func (c *Context) Bullet() error {
	if err := c.inFrame("Bullet"); err != nil {
		return err
	}
	cimgui.Bullet()
	return nil
}

// BeginCombo opens a combo box. EndCombo is only called when it returns
// true.
func (c *Context) BeginCombo(label, preview string, flags int32) (bool, error) {
	if err := c.inFrame("BeginCombo"); err != nil {
		return false, err
	}
	if flags < 0 || flags&^127 != 0 {
		return false, argErr("BeginCombo", "flags", flags, "invalid combo flags 0x%X", flags)
	}
	if flags&comboNoArrowButton != 0 && flags&comboNoPreview != 0 {
		return false, argErr("BeginCombo", "flags", flags, "NoArrowButton and NoPreview are exclusive")
	}
	if f := flags & comboHeightMask; f&(f-1) != 0 {
		return false, argErr("BeginCombo", "flags", flags, "only one height flag may be set")
	}
	if !cimgui.BeginComboV(label, preview, cimgui.ComboFlags(flags)) {
		return false, nil
	}
	c.pushScope(scopeCombo, label)
	return true, nil
}

func (c *Context) EndCombo() error {
	if err := c.inFrame("EndCombo"); err != nil {
		return err
	}
	if err := c.endScope("EndCombo", scopeCombo); err != nil {
		return err
	}
	cimgui.EndCombo()
	return nil
}

func (c *Context) Combo(label string, current *int32, items []string, heightInItems int32) (bool, error) {
	if err := c.inFrame("Combo"); err != nil {
		return false, err
	}
	return cimgui.ComboStrarrV(label, current, items, int32(len(items)), heightInItems), nil
}

// SliderFloatN edits one to four floats.
func (c *Context) SliderFloatN(label string, v []float32, vMin, vMax float32, format string, flags int32) (bool, error) {
	if err := c.inFrame("SliderFloat"); err != nil {
		return false, err
	}
	f, err := sliderFlags("SliderFloat", flags)
	if err != nil {
		return false, err
	}
	switch len(v) {
	case 1:
		return cimgui.SliderFloatV(label, &v[0], vMin, vMax, format, f), nil
	case 2:
		return cimgui.SliderFloat2V(label, (*[2]float32)(v), vMin, vMax, format, f), nil
	case 3:
		return cimgui.SliderFloat3V(label, (*[3]float32)(v), vMin, vMax, format, f), nil
	case 4:
		return cimgui.SliderFloat4V(label, (*[4]float32)(v), vMin, vMax, format, f), nil
	}
	return false, componentErr("SliderFloat", len(v))
}

// SliderIntN edits one to four ints.
func (c *Context) SliderIntN(label string, v []int32, vMin, vMax int32, format string, flags int32) (bool, error) {
	if err := c.inFrame("SliderInt"); err != nil {
		return false, err
	}
	f, err := sliderFlags("SliderInt", flags)
	if err != nil {
		return false, err
	}
	switch len(v) {
	case 1:
		return cimgui.SliderIntV(label, &v[0], vMin, vMax, format, f), nil
	case 2:
		return cimgui.SliderInt2V(label, (*[2]int32)(v), vMin, vMax, format, f), nil
	case 3:
		return cimgui.SliderInt3V(label, (*[3]int32)(v), vMin, vMax, format, f), nil
	case 4:
		return cimgui.SliderInt4V(label, (*[4]int32)(v), vMin, vMax, format, f), nil
	}
	return false, componentErr("SliderInt", len(v))
}

func sliderFlags(fn string, flags int32) (cimgui.SliderFlags, error) {
	if flags&sliderInvalidMask != 0 {
		return 0, argErr(fn, "flags", flags, "invalid slider flags 0x%X, pass ImGuiSliderFlags values", flags)
	}
	return cimgui.SliderFlags(flags), nil
}

func componentErr(fn string, n int) error {
	return callErr(fn, "%d components, want 1 to 4", n)
}

func (c *Context) InputFloat(label string, v *float32, step, stepFast float32, format string, flags int32) (bool, error) {
	if err := c.inFrame("InputFloat"); err != nil {
		return false, err
	}
	f, err := libInputText("InputFloat", flags)
	if err != nil {
		return false, err
	}
	return cimgui.InputFloatV(label, v, step, stepFast, format, f), nil
}

// InputFloatN edits two to four floats.
func (c *Context) InputFloatN(label string, v []float32, format string, flags int32) (bool, error) {
	if err := c.inFrame("InputFloat"); err != nil {
		return false, err
	}
	f, err := libInputText("InputFloat", flags)
	if err != nil {
		return false, err
	}
	switch len(v) {
	case 2:
		return cimgui.InputFloat2V(label, (*[2]float32)(v), format, f), nil
	case 3:
		return cimgui.InputFloat3V(label, (*[3]float32)(v), format, f), nil
	case 4:
		return cimgui.InputFloat4V(label, (*[4]float32)(v), format, f), nil
	}
	return false, componentErr("InputFloat", len(v))
}

func (c *Context) InputInt(label string, v *int32, step, stepFast, flags int32) (bool, error) {
	if err := c.inFrame("InputInt"); err != nil {
		return false, err
	}
	f, err := libInputText("InputInt", flags)
	if err != nil {
		return false, err
	}
	return cimgui.InputIntV(label, v, step, stepFast, f), nil
}

// InputIntN edits two to four ints.
func (c *Context) InputIntN(label string, v []int32, flags int32) (bool, error) {
	if err := c.inFrame("InputInt"); err != nil {
		return false, err
	}
	f, err := libInputText("InputInt", flags)
	if err != nil {
		return false, err
	}
	switch len(v) {
	case 2:
		return cimgui.InputInt2V(label, (*[2]int32)(v), f), nil
	case 3:
		return cimgui.InputInt3V(label, (*[3]int32)(v), f), nil
	case 4:
		return cimgui.InputInt4V(label, (*[4]int32)(v), f), nil
	}
	return false, componentErr("InputInt", len(v))
}

// InputText edits the zero-terminated text in buf. Edits that do not fit
// are cut at the last whole rune.
func (c *Context) InputText(label string, buf []byte, flags int32) (bool, error) {
	return c.inputText("InputText", label, "", buf, nil, flags)
}

func (c *Context) InputTextMultiline(label string, buf []byte, size native.Vec2, flags int32) (bool, error) {
	return c.inputText("InputTextMultiline", label, "", buf, &size, flags)
}

func (c *Context) InputTextWithHint(label, hint string, buf []byte, flags int32) (bool, error) {
	return c.inputText("InputTextWithHint", label, hint, buf, nil, flags)
}

func (c *Context) inputText(fn, label, hint string, buf []byte, size *native.Vec2, flags int32) (bool, error) {
	if err := c.inFrame(fn); err != nil {
		return false, err
	}
	if len(buf) == 0 {
		return false, argErr(fn, "buf_size", 0, "buffer size must be positive")
	}
	f, err := libInputText(fn, flags)
	if err != nil {
		return false, err
	}
	text := string(cString(buf))
	var changed bool
	if size != nil {
		changed = cimgui.InputTextMultiline(label, &text, v2(*size), f, nil)
	} else {
		changed = cimgui.InputTextWithHint(label, hint, &text, f, nil)
	}
	if changed {
		storeCString(buf, text)
	}
	return changed, nil
}

func cString(buf []byte) []byte {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return buf[:i]
	}
	return buf
}

// storeCString writes s and a terminator into buf. A rune cut by the
// capacity is dropped.
func storeCString(buf []byte, s string) {
	if limit := len(buf) - 1; len(s) > limit {
		s = s[:limit]
		i := len(s) - 1
		for i > 0 && len(s)-i < utf8.UTFMax && !utf8.RuneStart(s[i]) {
			i--
		}
		if i >= 0 && !utf8.FullRuneInString(s[i:]) {
			s = s[:i]
		}
	}
	n := copy(buf, s)
	clear(buf[n:])
}
