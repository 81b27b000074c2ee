package imgui

import (
	"reflect"

	cimgui "github.com/AllenDang/cimgui-go/imgui"

	"github.com/wippyai/imgui-bridge/capability"
	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/native"
	"github.com/wippyai/imgui-bridge/resource"
)

// accessor binds one wrapper field to a getter and an optional setter of
// a library struct. Values use the shapes capability.Block documents.
type accessor[R any] struct {
	spec  capability.FieldSpec
	load  func(c *Context, r R) any
	store func(r R, v any)
}

type integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func boolAt[R any](name string, get func(R) bool, set func(R, bool)) accessor[R] {
	a := accessor[R]{spec: capability.Bool(name), load: func(_ *Context, r R) any { return get(r) }}
	if set != nil {
		a.store = func(r R, v any) { set(r, v.(bool)) }
	}
	return a
}

func intAt[R any, T integer](name string, get func(R) T, set func(R, T)) accessor[R] {
	a := accessor[R]{spec: capability.Int(name), load: func(_ *Context, r R) any { return int32(get(r)) }}
	if set != nil {
		a.store = func(r R, v any) { set(r, T(v.(int32))) }
	}
	return a
}

func u16At[R any, T integer](name string, get func(R) T, set func(R, T)) accessor[R] {
	a := accessor[R]{spec: capability.U16(name), load: func(_ *Context, r R) any { return uint16(get(r)) }}
	if set != nil {
		a.store = func(r R, v any) { set(r, T(v.(uint16))) }
	}
	return a
}

func floatAt[R any](name string, get func(R) float32, set func(R, float32)) accessor[R] {
	a := accessor[R]{spec: capability.Float(name), load: func(_ *Context, r R) any { return get(r) }}
	if set != nil {
		a.store = func(r R, v any) { set(r, v.(float32)) }
	}
	return a
}

func vec2At[R any](name string, get func(R) cimgui.Vec2, set func(R, cimgui.Vec2)) accessor[R] {
	a := accessor[R]{spec: capability.Vec2(name), load: func(_ *Context, r R) any { return fromV2(get(r)) }}
	if set != nil {
		a.store = func(r R, v any) { set(r, v2(v.(native.Vec2))) }
	}
	return a
}

func strAt[R any](name string, get func(R) string, set func(R, string)) accessor[R] {
	a := accessor[R]{spec: capability.String(name), load: func(_ *Context, r R) any { return get(r) }}
	if set != nil {
		a.store = func(r R, v any) { set(r, v.(string)) }
	}
	return a
}

// ptrAt exposes a pointer field as a read-only handle. Non-null pointers
// are registered in the table under typ.
func ptrAt[R any, P any](name string, typ uint32, get func(R) P) accessor[R] {
	return accessor[R]{spec: capability.Ptr(name), load: func(c *Context, r R) any {
		p := get(r)
		if v := reflect.ValueOf(p); !v.IsValid() || v.IsZero() {
			return uint32(0)
		}
		return uint32(c.object(typ, name, p))
	}}
}

// handleAt exposes a field whose object the context registered itself.
func handleAt[R any](name string, h func(c *Context) resource.Handle) accessor[R] {
	return accessor[R]{spec: capability.Ptr(name), load: func(c *Context, _ R) any { return uint32(h(c)) }}
}

// libBlock adapts a library struct to capability.Block.
type libBlock[R any] struct {
	c      *Context
	target R
	fields map[string]accessor[R]
}

func (b *libBlock[R]) Load(f native.Field) (any, error) {
	a, ok := b.fields[f.Name]
	if !ok {
		return nil, errors.NotFound(errors.PhaseField, "field", f.Name)
	}
	if err := b.c.live(); err != nil {
		return nil, err
	}
	return a.load(b.c, b.target), nil
}

func (b *libBlock[R]) Store(f native.Field, v any) error {
	a, ok := b.fields[f.Name]
	if !ok {
		return errors.NotFound(errors.PhaseField, "field", f.Name)
	}
	if a.store == nil {
		return errors.Unsupported(errors.PhaseField, f.Name+" is read-only")
	}
	if err := b.c.live(); err != nil {
		return err
	}
	a.store(b.target, v)
	return nil
}

// IO fields, in ImGuiIO declaration order.
var ioAccessors = []accessor[*cimgui.IO]{
	intAt("ConfigFlags", (*cimgui.IO).ConfigFlags, (*cimgui.IO).SetConfigFlags),
	intAt("BackendFlags", (*cimgui.IO).BackendFlags, (*cimgui.IO).SetBackendFlags),
	vec2At("DisplaySize", (*cimgui.IO).DisplaySize, (*cimgui.IO).SetDisplaySize),
	floatAt("DeltaTime", (*cimgui.IO).DeltaTime, (*cimgui.IO).SetDeltaTime),
	floatAt("IniSavingRate", (*cimgui.IO).IniSavingRate, (*cimgui.IO).SetIniSavingRate),
	strAt("IniFilename", (*cimgui.IO).IniFilename, (*cimgui.IO).SetIniFilename),
	strAt("LogFilename", (*cimgui.IO).LogFilename, (*cimgui.IO).SetLogFilename),
	ptrAt("UserData", resource.TypeHostObject, (*cimgui.IO).UserData),
	handleAt[*cimgui.IO]("Fonts", func(c *Context) resource.Handle { return c.hAtlas }),
	floatAt("FontGlobalScale", (*cimgui.IO).FontGlobalScale, (*cimgui.IO).SetFontGlobalScale),
	boolAt("FontAllowUserScaling", (*cimgui.IO).FontAllowUserScaling, (*cimgui.IO).SetFontAllowUserScaling),
	ptrAt("FontDefault", resource.TypeFont, (*cimgui.IO).FontDefault),
	vec2At("DisplayFramebufferScale", (*cimgui.IO).DisplayFramebufferScale, (*cimgui.IO).SetDisplayFramebufferScale),
	boolAt("MouseDrawCursor", (*cimgui.IO).MouseDrawCursor, (*cimgui.IO).SetMouseDrawCursor),
	boolAt("ConfigMacOSXBehaviors", (*cimgui.IO).ConfigMacOSXBehaviors, (*cimgui.IO).SetConfigMacOSXBehaviors),
	boolAt("ConfigInputTrickleEventQueue", (*cimgui.IO).ConfigInputTrickleEventQueue, (*cimgui.IO).SetConfigInputTrickleEventQueue),
	boolAt("ConfigInputTextCursorBlink", (*cimgui.IO).ConfigInputTextCursorBlink, (*cimgui.IO).SetConfigInputTextCursorBlink),
	boolAt("ConfigInputTextEnterKeepActive", (*cimgui.IO).ConfigInputTextEnterKeepActive, (*cimgui.IO).SetConfigInputTextEnterKeepActive),
	boolAt("ConfigDragClickToInputText", (*cimgui.IO).ConfigDragClickToInputText, (*cimgui.IO).SetConfigDragClickToInputText),
	boolAt("ConfigWindowsResizeFromEdges", (*cimgui.IO).ConfigWindowsResizeFromEdges, (*cimgui.IO).SetConfigWindowsResizeFromEdges),
	boolAt("ConfigWindowsMoveFromTitleBarOnly", (*cimgui.IO).ConfigWindowsMoveFromTitleBarOnly, (*cimgui.IO).SetConfigWindowsMoveFromTitleBarOnly),
	floatAt("ConfigMemoryCompactTimer", (*cimgui.IO).ConfigMemoryCompactTimer, (*cimgui.IO).SetConfigMemoryCompactTimer),
	floatAt("MouseDoubleClickTime", (*cimgui.IO).MouseDoubleClickTime, (*cimgui.IO).SetMouseDoubleClickTime),
	floatAt("MouseDoubleClickMaxDist", (*cimgui.IO).MouseDoubleClickMaxDist, (*cimgui.IO).SetMouseDoubleClickMaxDist),
	floatAt("MouseDragThreshold", (*cimgui.IO).MouseDragThreshold, (*cimgui.IO).SetMouseDragThreshold),
	floatAt("KeyRepeatDelay", (*cimgui.IO).KeyRepeatDelay, (*cimgui.IO).SetKeyRepeatDelay),
	floatAt("KeyRepeatRate", (*cimgui.IO).KeyRepeatRate, (*cimgui.IO).SetKeyRepeatRate),
	boolAt("ConfigDebugBeginReturnValueOnce", (*cimgui.IO).ConfigDebugBeginReturnValueOnce, (*cimgui.IO).SetConfigDebugBeginReturnValueOnce),
	boolAt("ConfigDebugBeginReturnValueLoop", (*cimgui.IO).ConfigDebugBeginReturnValueLoop, (*cimgui.IO).SetConfigDebugBeginReturnValueLoop),
	boolAt("ConfigDebugIgnoreFocusLoss", (*cimgui.IO).ConfigDebugIgnoreFocusLoss, (*cimgui.IO).SetConfigDebugIgnoreFocusLoss),
	boolAt("ConfigDebugIniSettings", (*cimgui.IO).ConfigDebugIniSettings, (*cimgui.IO).SetConfigDebugIniSettings),
	strAt("BackendPlatformName", (*cimgui.IO).BackendPlatformName, nil),
	strAt("BackendRendererName", (*cimgui.IO).BackendRendererName, nil),
	ptrAt("BackendPlatformUserData", resource.TypeHostObject, (*cimgui.IO).BackendPlatformUserData),
	ptrAt("BackendRendererUserData", resource.TypeHostObject, (*cimgui.IO).BackendRendererUserData),
	ptrAt("BackendLanguageUserData", resource.TypeHostObject, (*cimgui.IO).BackendLanguageUserData),
	boolAt("WantCaptureMouse", (*cimgui.IO).WantCaptureMouse, (*cimgui.IO).SetWantCaptureMouse),
	boolAt("WantCaptureKeyboard", (*cimgui.IO).WantCaptureKeyboard, (*cimgui.IO).SetWantCaptureKeyboard),
	boolAt("WantTextInput", (*cimgui.IO).WantTextInput, (*cimgui.IO).SetWantTextInput),
	boolAt("WantSetMousePos", (*cimgui.IO).WantSetMousePos, (*cimgui.IO).SetWantSetMousePos),
	boolAt("WantSaveIniSettings", (*cimgui.IO).WantSaveIniSettings, (*cimgui.IO).SetWantSaveIniSettings),
	boolAt("NavActive", (*cimgui.IO).NavActive, (*cimgui.IO).SetNavActive),
	boolAt("NavVisible", (*cimgui.IO).NavVisible, (*cimgui.IO).SetNavVisible),
	floatAt("Framerate", (*cimgui.IO).Framerate, (*cimgui.IO).SetFramerate),
	intAt("MetricsRenderVertices", (*cimgui.IO).MetricsRenderVertices, (*cimgui.IO).SetMetricsRenderVertices),
	intAt("MetricsRenderIndices", (*cimgui.IO).MetricsRenderIndices, (*cimgui.IO).SetMetricsRenderIndices),
	intAt("MetricsRenderWindows", (*cimgui.IO).MetricsRenderWindows, (*cimgui.IO).SetMetricsRenderWindows),
	intAt("MetricsActiveWindows", (*cimgui.IO).MetricsActiveWindows, (*cimgui.IO).SetMetricsActiveWindows),
	intAt("MetricsActiveAllocations", (*cimgui.IO).MetricsActiveAllocations, (*cimgui.IO).SetMetricsActiveAllocations),
	vec2At("MouseDelta", (*cimgui.IO).MouseDelta, (*cimgui.IO).SetMouseDelta),
	handleAt[*cimgui.IO]("Ctx", func(c *Context) resource.Handle { return c.hCtx }),
	vec2At("MousePos", (*cimgui.IO).MousePos, (*cimgui.IO).SetMousePos),
	floatAt("MouseWheel", (*cimgui.IO).MouseWheel, (*cimgui.IO).SetMouseWheel),
	floatAt("MouseWheelH", (*cimgui.IO).MouseWheelH, (*cimgui.IO).SetMouseWheelH),
	intAt("MouseSource", (*cimgui.IO).MouseSource, (*cimgui.IO).SetMouseSource),
	boolAt("KeyCtrl", (*cimgui.IO).KeyCtrl, (*cimgui.IO).SetKeyCtrl),
	boolAt("KeyShift", (*cimgui.IO).KeyShift, (*cimgui.IO).SetKeyShift),
	boolAt("KeyAlt", (*cimgui.IO).KeyAlt, (*cimgui.IO).SetKeyAlt),
	boolAt("KeySuper", (*cimgui.IO).KeySuper, (*cimgui.IO).SetKeySuper),
	intAt("KeyMods", (*cimgui.IO).KeyMods, (*cimgui.IO).SetKeyMods),
	boolAt("WantCaptureMouseUnlessPopupClose", (*cimgui.IO).WantCaptureMouseUnlessPopupClose, (*cimgui.IO).SetWantCaptureMouseUnlessPopupClose),
	vec2At("MousePosPrev", (*cimgui.IO).MousePosPrev, (*cimgui.IO).SetMousePosPrev),
	boolAt("MouseWheelRequestAxisSwap", (*cimgui.IO).MouseWheelRequestAxisSwap, (*cimgui.IO).SetMouseWheelRequestAxisSwap),
	floatAt("PenPressure", (*cimgui.IO).PenPressure, (*cimgui.IO).SetPenPressure),
	boolAt("AppFocusLost", (*cimgui.IO).AppFocusLost, (*cimgui.IO).SetAppFocusLost),
	boolAt("AppAcceptingEvents", (*cimgui.IO).AppAcceptingEvents, (*cimgui.IO).SetAppAcceptingEvents),
	u16At("InputQueueSurrogate", (*cimgui.IO).InputQueueSurrogate, (*cimgui.IO).SetInputQueueSurrogate),
}

// Style fields, in ImGuiStyle declaration order. Colors are reached
// through the style color functions.
var styleAccessors = []accessor[*cimgui.Style]{
	floatAt("Alpha", (*cimgui.Style).Alpha, (*cimgui.Style).SetAlpha),
	floatAt("DisabledAlpha", (*cimgui.Style).DisabledAlpha, (*cimgui.Style).SetDisabledAlpha),
	vec2At("WindowPadding", (*cimgui.Style).WindowPadding, (*cimgui.Style).SetWindowPadding),
	floatAt("WindowRounding", (*cimgui.Style).WindowRounding, (*cimgui.Style).SetWindowRounding),
	floatAt("WindowBorderSize", (*cimgui.Style).WindowBorderSize, (*cimgui.Style).SetWindowBorderSize),
	vec2At("WindowMinSize", (*cimgui.Style).WindowMinSize, (*cimgui.Style).SetWindowMinSize),
	vec2At("WindowTitleAlign", (*cimgui.Style).WindowTitleAlign, (*cimgui.Style).SetWindowTitleAlign),
	intAt("WindowMenuButtonPosition", (*cimgui.Style).WindowMenuButtonPosition, (*cimgui.Style).SetWindowMenuButtonPosition),
	floatAt("ChildRounding", (*cimgui.Style).ChildRounding, (*cimgui.Style).SetChildRounding),
	floatAt("ChildBorderSize", (*cimgui.Style).ChildBorderSize, (*cimgui.Style).SetChildBorderSize),
	floatAt("PopupRounding", (*cimgui.Style).PopupRounding, (*cimgui.Style).SetPopupRounding),
	floatAt("PopupBorderSize", (*cimgui.Style).PopupBorderSize, (*cimgui.Style).SetPopupBorderSize),
	vec2At("FramePadding", (*cimgui.Style).FramePadding, (*cimgui.Style).SetFramePadding),
	floatAt("FrameRounding", (*cimgui.Style).FrameRounding, (*cimgui.Style).SetFrameRounding),
	floatAt("FrameBorderSize", (*cimgui.Style).FrameBorderSize, (*cimgui.Style).SetFrameBorderSize),
	vec2At("ItemSpacing", (*cimgui.Style).ItemSpacing, (*cimgui.Style).SetItemSpacing),
	vec2At("ItemInnerSpacing", (*cimgui.Style).ItemInnerSpacing, (*cimgui.Style).SetItemInnerSpacing),
	vec2At("CellPadding", (*cimgui.Style).CellPadding, (*cimgui.Style).SetCellPadding),
	vec2At("TouchExtraPadding", (*cimgui.Style).TouchExtraPadding, (*cimgui.Style).SetTouchExtraPadding),
	floatAt("IndentSpacing", (*cimgui.Style).IndentSpacing, (*cimgui.Style).SetIndentSpacing),
	floatAt("ColumnsMinSpacing", (*cimgui.Style).ColumnsMinSpacing, (*cimgui.Style).SetColumnsMinSpacing),
	floatAt("ScrollbarSize", (*cimgui.Style).ScrollbarSize, (*cimgui.Style).SetScrollbarSize),
	floatAt("ScrollbarRounding", (*cimgui.Style).ScrollbarRounding, (*cimgui.Style).SetScrollbarRounding),
	floatAt("GrabMinSize", (*cimgui.Style).GrabMinSize, (*cimgui.Style).SetGrabMinSize),
	floatAt("GrabRounding", (*cimgui.Style).GrabRounding, (*cimgui.Style).SetGrabRounding),
	floatAt("LogSliderDeadzone", (*cimgui.Style).LogSliderDeadzone, (*cimgui.Style).SetLogSliderDeadzone),
	floatAt("TabRounding", (*cimgui.Style).TabRounding, (*cimgui.Style).SetTabRounding),
	floatAt("TabBorderSize", (*cimgui.Style).TabBorderSize, (*cimgui.Style).SetTabBorderSize),
	intAt("ColorButtonPosition", (*cimgui.Style).ColorButtonPosition, (*cimgui.Style).SetColorButtonPosition),
	vec2At("ButtonTextAlign", (*cimgui.Style).ButtonTextAlign, (*cimgui.Style).SetButtonTextAlign),
	vec2At("SelectableTextAlign", (*cimgui.Style).SelectableTextAlign, (*cimgui.Style).SetSelectableTextAlign),
	floatAt("SeparatorTextBorderSize", (*cimgui.Style).SeparatorTextBorderSize, (*cimgui.Style).SetSeparatorTextBorderSize),
	vec2At("SeparatorTextAlign", (*cimgui.Style).SeparatorTextAlign, (*cimgui.Style).SetSeparatorTextAlign),
	vec2At("SeparatorTextPadding", (*cimgui.Style).SeparatorTextPadding, (*cimgui.Style).SetSeparatorTextPadding),
	vec2At("DisplayWindowPadding", (*cimgui.Style).DisplayWindowPadding, (*cimgui.Style).SetDisplayWindowPadding),
	vec2At("DisplaySafeAreaPadding", (*cimgui.Style).DisplaySafeAreaPadding, (*cimgui.Style).SetDisplaySafeAreaPadding),
	floatAt("MouseCursorScale", (*cimgui.Style).MouseCursorScale, (*cimgui.Style).SetMouseCursorScale),
	boolAt("AntiAliasedLines", (*cimgui.Style).AntiAliasedLines, (*cimgui.Style).SetAntiAliasedLines),
	boolAt("AntiAliasedLinesUseTex", (*cimgui.Style).AntiAliasedLinesUseTex, (*cimgui.Style).SetAntiAliasedLinesUseTex),
	boolAt("AntiAliasedFill", (*cimgui.Style).AntiAliasedFill, (*cimgui.Style).SetAntiAliasedFill),
	floatAt("CurveTessellationTol", (*cimgui.Style).CurveTessellationTol, (*cimgui.Style).SetCurveTessellationTol),
	floatAt("CircleTessellationMaxError", (*cimgui.Style).CircleTessellationMaxError, (*cimgui.Style).SetCircleTessellationMaxError),
	floatAt("HoverStationaryDelay", (*cimgui.Style).HoverStationaryDelay, (*cimgui.Style).SetHoverStationaryDelay),
	floatAt("HoverDelayShort", (*cimgui.Style).HoverDelayShort, (*cimgui.Style).SetHoverDelayShort),
	floatAt("HoverDelayNormal", (*cimgui.Style).HoverDelayNormal, (*cimgui.Style).SetHoverDelayNormal),
	intAt("HoverFlagsForTooltipMouse", (*cimgui.Style).HoverFlagsForTooltipMouse, (*cimgui.Style).SetHoverFlagsForTooltipMouse),
	intAt("HoverFlagsForTooltipNav", (*cimgui.Style).HoverFlagsForTooltipNav, (*cimgui.Style).SetHoverFlagsForTooltipNav),
}

var (
	ioType    = mustType("_IO", resource.TypeIO, ioAccessors)
	styleType = mustType("_Style", resource.TypeStyle, styleAccessors)

	ioIndex    = index(ioAccessors)
	styleIndex = index(styleAccessors)
)

func newIOBlock(c *Context) capability.Block {
	return &libBlock[*cimgui.IO]{c: c, target: c.io, fields: ioIndex}
}

func newStyleBlock(c *Context) capability.Block {
	return &libBlock[*cimgui.Style]{c: c, target: c.style, fields: styleIndex}
}

func mustType[R any](name string, typeID uint32, fields []accessor[R]) *capability.Type {
	specs := make([]capability.FieldSpec, len(fields))
	for i, a := range fields {
		specs[i] = a.spec
		if a.store == nil {
			specs[i] = specs[i].RO()
		}
	}
	t, err := capability.NewType(name, typeID, specs)
	if err != nil {
		panic(err)
	}
	return t
}

func index[R any](fields []accessor[R]) map[string]accessor[R] {
	m := make(map[string]accessor[R], len(fields))
	for _, a := range fields {
		m[a.spec.Name] = a
	}
	return m
}
