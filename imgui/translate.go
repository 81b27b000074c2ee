package imgui

import (
	"sync"
	"unsafe"

	cimgui "github.com/AllenDang/cimgui-go/imgui"

	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/native"
	"github.com/wippyai/imgui-bridge/resource"
)

// The host passes enum values from the constant table. Families whose
// numbering moved in later library versions are translated by name or
// by flag; every other family keeps its values.

func v2(v native.Vec2) cimgui.Vec2     { return cimgui.Vec2{X: v.X, Y: v.Y} }
func fromV2(v cimgui.Vec2) native.Vec2 { return native.Vec2{X: v.X, Y: v.Y} }
func v4(v native.Vec4) cimgui.Vec4     { return cimgui.Vec4{X: v.X, Y: v.Y, Z: v.Z, W: v.W} }
func fromV4(v cimgui.Vec4) native.Vec4 { return native.Vec4{X: v.X, Y: v.Y, Z: v.Z, W: v.W} }

// Flags of newer enum families, with their library values.
const (
	childBorders                cimgui.ChildFlags = 1 << 0
	childAlwaysUseWindowPadding cimgui.ChildFlags = 1 << 1
	childFrameStyle             cimgui.ChildFlags = 1 << 7

	itemNoTabStop    cimgui.ItemFlags = 1 << 0
	itemButtonRepeat cimgui.ItemFlags = 1 << 3
)

// colorRenames maps library color names to the table's older names.
var colorRenames = map[string]string{
	"TabSelected":       "TabActive",
	"TabDimmed":         "TabUnfocused",
	"TabDimmedSelected": "TabUnfocusedActive",
	"NavCursor":         "NavHighlight",
}

var (
	libColorsOnce sync.Once
	libColors     map[int32]cimgui.Col

	libKeysOnce sync.Once
	libKeys     map[int32]cimgui.Key
)

// loadLibColors matches library style colors to table indices by name.
func loadLibColors() {
	byName := make(map[string]int32, len(colorNames))
	for v, n := range colorNames {
		byName[n] = int32(v)
	}
	libColors = make(map[int32]cimgui.Col, colCount)
	for col := cimgui.Col(0); col < cimgui.Col(cimgui.ColCOUNT); col++ {
		name := cimgui.StyleColorName(col)
		if old, ok := colorRenames[name]; ok {
			name = old
		}
		if idx, ok := byName[name]; ok {
			libColors[idx] = col
		}
	}
}

// loadLibKeys matches library named keys to table values by name.
func loadLibKeys() {
	byName := make(map[string]int32, len(keyNames))
	for v, n := range keyNames {
		byName[n] = int32(v)
	}
	libKeys = make(map[int32]cimgui.Key, len(keyNames))
	for k := cimgui.Key(cimgui.KeyNamedKeyBEGIN); k < cimgui.Key(cimgui.KeyNamedKeyEND); k++ {
		if v, ok := byName[cimgui.KeyName(k)]; ok {
			libKeys[v] = k
		}
	}
}

func libColor(fn string, idx int32) (cimgui.Col, error) {
	if idx < 0 || idx >= colCount {
		return 0, badIndex(fn, "idx", idx, colCount)
	}
	libColorsOnce.Do(loadLibColors)
	col, ok := libColors[idx]
	if !ok {
		return 0, errors.New(errors.PhaseCall, errors.KindUnsupported).
			Path(fn, "idx").
			Value(idx).
			Detail("style color %s does not exist in Dear ImGui %s", colorNames[int64(idx)], cimgui.Version()).
			Build()
	}
	return col, nil
}

// libKey translates a named key or a single modifier flag.
func libKey(fn string, key int32) (cimgui.Key, error) {
	switch key {
	case modShortcut:
		return cimgui.Key(modCtrl), nil
	case modCtrl, modShift, modAlt, modSuper:
		return cimgui.Key(key), nil
	}
	libKeysOnce.Do(loadLibKeys)
	if k, ok := libKeys[key]; ok {
		return k, nil
	}
	return 0, argErr(fn, "key", key, "%d is not a named key or a modifier", key)
}

var libStyleVars = [styleVarCount]cimgui.StyleVar{
	cimgui.StyleVarAlpha,
	cimgui.StyleVarDisabledAlpha,
	cimgui.StyleVarWindowPadding,
	cimgui.StyleVarWindowRounding,
	cimgui.StyleVarWindowBorderSize,
	cimgui.StyleVarWindowMinSize,
	cimgui.StyleVarWindowTitleAlign,
	cimgui.StyleVarChildRounding,
	cimgui.StyleVarChildBorderSize,
	cimgui.StyleVarPopupRounding,
	cimgui.StyleVarPopupBorderSize,
	cimgui.StyleVarFramePadding,
	cimgui.StyleVarFrameRounding,
	cimgui.StyleVarFrameBorderSize,
	cimgui.StyleVarItemSpacing,
	cimgui.StyleVarItemInnerSpacing,
	cimgui.StyleVarIndentSpacing,
	cimgui.StyleVarCellPadding,
	cimgui.StyleVarScrollbarSize,
	cimgui.StyleVarScrollbarRounding,
	cimgui.StyleVarGrabMinSize,
	cimgui.StyleVarGrabRounding,
	cimgui.StyleVarTabRounding,
	cimgui.StyleVarButtonTextAlign,
	cimgui.StyleVarSelectableTextAlign,
	cimgui.StyleVarSeparatorTextBorderSize,
	cimgui.StyleVarSeparatorTextAlign,
	cimgui.StyleVarSeparatorTextPadding,
}

func libStyleVar(fn string, idx int32, vec2 bool) (cimgui.StyleVar, error) {
	if idx < 0 || idx >= styleVarCount {
		return 0, badIndex(fn, "idx", idx, styleVarCount)
	}
	if styleVarVec2[idx] != vec2 {
		want := "float"
		if styleVarVec2[idx] {
			want = "vec2"
		}
		return 0, argErr(fn, "idx", idx, "style variable %d holds a %s", idx, want)
	}
	return libStyleVars[idx], nil
}

var libInputTextFlags = []struct {
	bit  int32
	flag cimgui.InputTextFlags
}{
	{1, cimgui.InputTextFlagsCharsDecimal},
	{2, cimgui.InputTextFlagsCharsHexadecimal},
	{4, cimgui.InputTextFlagsCharsUppercase},
	{8, cimgui.InputTextFlagsCharsNoBlank},
	{16, cimgui.InputTextFlagsAutoSelectAll},
	{32, cimgui.InputTextFlagsEnterReturnsTrue},
	{1024, cimgui.InputTextFlagsAllowTabInput},
	{2048, cimgui.InputTextFlagsCtrlEnterForNewLine},
	{4096, cimgui.InputTextFlagsNoHorizontalScroll},
	{8192, cimgui.InputTextFlagsAlwaysOverwrite},
	{16384, cimgui.InputTextFlagsReadOnly},
	{32768, cimgui.InputTextFlagsPassword},
	{65536, cimgui.InputTextFlagsNoUndoRedo},
	{131072, cimgui.InputTextFlagsCharsScientific},
	{1048576, cimgui.InputTextFlagsEscapeClearsAll},
}

// libInputText translates input text flags. Callback flags need a
// host callback and are refused.
func libInputText(fn string, flags int32) (cimgui.InputTextFlags, error) {
	if flags&inputTextCallbacks != 0 {
		return 0, errors.New(errors.PhaseCall, errors.KindUnsupported).
			Path(fn, "flags").
			Value(flags).
			Detail("input text callbacks are not supported").
			Build()
	}
	var out cimgui.InputTextFlags
	rest := flags
	for _, f := range libInputTextFlags {
		if flags&f.bit != 0 {
			out |= f.flag
			rest &^= f.bit
		}
	}
	if rest != 0 {
		return 0, argErr(fn, "flags", flags, "invalid input text flags 0x%X", rest)
	}
	return out, nil
}

func libPopupFlags(fn string, flags int32) (cimgui.PopupFlags, error) {
	if flags < 0 || flags&^511 != 0 {
		return 0, argErr(fn, "flags", flags, "invalid popup flags 0x%X", flags)
	}
	f := cimgui.PopupFlags(flags & popupMouseButtonMask)
	if flags&popupNoOpenOverExistingPopup != 0 {
		f |= cimgui.PopupFlagsNoOpenOverExistingPopup
	}
	if flags&popupNoOpenOverItems != 0 {
		f |= cimgui.PopupFlagsNoOpenOverItems
	}
	if flags&popupAnyPopupID != 0 {
		f |= cimgui.PopupFlagsAnyPopup &^ cimgui.PopupFlagsAnyPopupLevel
	}
	if flags&popupAnyPopupLevel != 0 {
		f |= cimgui.PopupFlagsAnyPopupLevel
	}
	return f, nil
}

// textureID packs a texture handle into the library's texture id.
func textureID(h resource.Handle) cimgui.TextureID {
	var id cimgui.TextureID
	*(*uintptr)(unsafe.Pointer(&id)) = uintptr(h)
	return id
}

func checkCond(fn string, cond int32) error {
	if cond != 0 && (cond < 0 || cond > 8 || cond&(cond-1) != 0) {
		return argErr(fn, "cond", cond, "cond must be 0 or one ImGuiCond flag")
	}
	return nil
}

func checkButton(fn string, button int32) error {
	if button < 0 || button >= mouseButtonCount {
		return badIndex(fn, "button", button, mouseButtonCount)
	}
	return nil
}

func checkRatio(fn string, ratio float32) error {
	if ratio < 0 || ratio > 1 {
		return argErr(fn, "ratio", ratio, "ratio %g out of range [0, 1]", ratio)
	}
	return nil
}
