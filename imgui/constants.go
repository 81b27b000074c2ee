package imgui

import "strings"

// Version is the header version the constant table and the host call
// surface follow. GetVersion reports the version of the linked library,
// which may be newer.
const Version = "1.89.9"

// Constants returns every enum value of the call surface in header order.
func Constants() []Constant {
	return append([]Constant(nil), constants...)
}

var constantIndex = func() map[string]int64 {
	m := make(map[string]int64, len(constants))
	for _, c := range constants {
		m[c.Name] = c.Value
	}
	return m
}()

// LookupConstant returns the value of a named enum constant.
func LookupConstant(name string) (int64, bool) {
	v, ok := constantIndex[name]
	return v, ok
}

// Values from the constant table that the argument checks interpret.
const (
	colCount      = 53
	styleVarCount = 28

	mouseButtonCount = 5

	dirNone  = -1
	dirLeft  = 0
	dirRight = 1
	dirDown  = 3

	mouseCursorNone  = -1
	mouseCursorCount = 9

	windowFlagsAlwaysUseWindowPadding = 1 << 16
	windowFlagsInternal               = 0x1F000000

	hoveredWindowOnly = 0x1F

	popupNoOpenOverExistingPopup = 32
	popupNoOpenOverItems         = 64
	popupAnyPopupID              = 128
	popupAnyPopupLevel           = 256
	popupMouseButtonMask         = 31

	comboNoArrowButton = 32
	comboNoPreview     = 64
	comboHeightMask    = 30

	inputTextCallbacks = 64 | 128 | 256 | 512 | 262144 | 524288

	sliderInvalidMask = 0x7000000F

	tabItemButton = 1 << 21

	treeNodeNoTreePushOnOpen = 8

	keyNamedBegin = 512
	keyNamedEnd   = 652

	modShortcut = 2048
	modCtrl     = 4096
	modShift    = 8192
	modAlt      = 16384
	modSuper    = 32768
)

// styleVarVec2 marks the style variables holding an ImVec2.
var styleVarVec2 = [styleVarCount]bool{
	2: true, 5: true, 6: true, 11: true, 14: true, 15: true,
	17: true, 23: true, 24: true, 26: true, 27: true,
}

// enumNames maps the values of one enum family to their names, without
// the family prefix. Aliases keep the first name in header order.
func enumNames(prefix string, lo, hi int64, skip ...string) map[int64]string {
	m := make(map[int64]string)
	for _, c := range constants {
		rest, ok := strings.CutPrefix(c.Name, prefix)
		if !ok || c.Value < lo || c.Value >= hi {
			continue
		}
		if hasAnyPrefix(rest, skip) {
			continue
		}
		if _, dup := m[c.Value]; !dup {
			m[c.Value] = rest
		}
	}
	return m
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

var (
	colorNames = enumNames("ImGuiCol_", 0, colCount)
	keyNames   = enumNames("ImGuiKey_", keyNamedBegin, keyNamedEnd, "NamedKey_", "Reserved")
)
