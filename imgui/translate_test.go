package imgui

import (
	"testing"

	cimgui "github.com/AllenDang/cimgui-go/imgui"

	"github.com/wippyai/imgui-bridge/errors"
)

func TestLibKey(t *testing.T) {
	newTestContext(t)

	tests := []struct {
		key  int32
		name string
	}{
		{512, "Tab"},
		{526, "Escape"},
		{546, "A"},
	}
	for _, tt := range tests {
		k, err := libKey("IsKeyDown", tt.key)
		if err != nil {
			t.Fatalf("libKey(%d): %v", tt.key, err)
		}
		if got := cimgui.KeyName(k); got != tt.name {
			t.Errorf("libKey(%d) names %q, want %q", tt.key, got, tt.name)
		}
	}

	if k, _ := libKey("IsKeyDown", modShortcut); k != cimgui.Key(modCtrl) {
		t.Errorf("Shortcut translated to %d, want Ctrl", k)
	}
	for _, key := range []int32{1, 511, modCtrl | modShift} {
		if _, err := libKey("IsKeyDown", key); !errors.IsKind(err, errors.KindInvalidArgument) {
			t.Errorf("libKey(%d): expected invalid_argument, got %v", key, err)
		}
	}
}

func TestGetKeyName(t *testing.T) {
	c := newTestContext(t)

	tests := []struct {
		key  int32
		want string
	}{
		{0, "None"},
		{512, "Tab"},
		{546, "A"},
		{modCtrl, "ModCtrl"},
		{modShortcut, "ModCtrl"},
		{modAlt, "ModAlt"},
		{5, "Unknown"},
	}
	for _, tt := range tests {
		got, err := c.GetKeyName(tt.key)
		if err != nil || got != tt.want {
			t.Errorf("GetKeyName(%d) = %q, %v; want %q", tt.key, got, err, tt.want)
		}
	}
}

func TestLibColor(t *testing.T) {
	newTestContext(t)

	col, err := libColor("PushStyleColor", 0)
	if err != nil || cimgui.StyleColorName(col) != "Text" {
		t.Errorf("libColor(0) = %d, %v", col, err)
	}

	// renamed in later versions, still reachable by the old index
	col, err = libColor("PushStyleColor", 35)
	if err != nil {
		t.Fatal(err)
	}
	if name := cimgui.StyleColorName(col); name != "TabActive" && name != "TabSelected" {
		t.Errorf("libColor(TabActive) names %q", name)
	}

	for _, idx := range []int32{-1, colCount} {
		if _, err := libColor("PushStyleColor", idx); !errors.IsKind(err, errors.KindInvalidArgument) {
			t.Errorf("libColor(%d): expected invalid_argument, got %v", idx, err)
		}
	}
}

func TestLibStyleVar(t *testing.T) {
	if sv, err := libStyleVar("PushStyleVar", 0, false); err != nil || sv != cimgui.StyleVarAlpha {
		t.Errorf("Alpha = %d, %v", sv, err)
	}
	if sv, err := libStyleVar("PushStyleVar", 2, true); err != nil || sv != cimgui.StyleVarWindowPadding {
		t.Errorf("WindowPadding = %d, %v", sv, err)
	}

	tests := []struct {
		name string
		idx  int32
		vec2 bool
		msg  string
	}{
		{"vec2 as float", 2, false, "holds a vec2"},
		{"float as vec2", 0, true, "holds a float"},
		{"out of range", styleVarCount, false, "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := libStyleVar("PushStyleVar", tt.idx, tt.vec2)
			wantErr(t, err, errors.KindInvalidArgument, tt.msg)
		})
	}
}

func TestLibInputText(t *testing.T) {
	f, err := libInputText("InputText", 16|32|16384)
	if err != nil {
		t.Fatal(err)
	}
	want := cimgui.InputTextFlagsAutoSelectAll | cimgui.InputTextFlagsEnterReturnsTrue | cimgui.InputTextFlagsReadOnly
	if f != want {
		t.Errorf("flags = %d, want %d", f, want)
	}

	for _, cb := range []int32{64, 128, 256, 512, 262144, 524288} {
		if _, err := libInputText("InputText", cb); !errors.IsKind(err, errors.KindUnsupported) {
			t.Errorf("callback flag %d: expected unsupported, got %v", cb, err)
		}
	}
	_, err = libInputText("InputText", 1<<30)
	wantErr(t, err, errors.KindInvalidArgument, "invalid input text flags")
}

func TestLibPopupFlags(t *testing.T) {
	tests := []struct {
		in   int32
		want cimgui.PopupFlags
	}{
		{0, 0},
		{1, cimgui.PopupFlags(1)},
		{popupNoOpenOverItems, cimgui.PopupFlagsNoOpenOverItems},
		{popupAnyPopupID | popupAnyPopupLevel, cimgui.PopupFlagsAnyPopup},
	}
	for _, tt := range tests {
		got, err := libPopupFlags("OpenPopup", tt.in)
		if err != nil || got != tt.want {
			t.Errorf("libPopupFlags(%d) = %d, %v; want %d", tt.in, got, err, tt.want)
		}
	}
	if _, err := libPopupFlags("OpenPopup", 512); !errors.IsKind(err, errors.KindInvalidArgument) {
		t.Errorf("expected invalid_argument, got %v", err)
	}
}

func TestCheckCond(t *testing.T) {
	for _, cond := range []int32{0, 1, 2, 4, 8} {
		if err := checkCond("SetNextWindowPos", cond); err != nil {
			t.Errorf("cond %d: %v", cond, err)
		}
	}
	for _, cond := range []int32{-1, 3, 16} {
		if err := checkCond("SetNextWindowPos", cond); !errors.IsKind(err, errors.KindInvalidArgument) {
			t.Errorf("cond %d: expected invalid_argument, got %v", cond, err)
		}
	}
}

func TestTextureID(t *testing.T) {
	if textureID(7) == textureID(8) {
		t.Error("distinct handles share a texture id")
	}
	if textureID(7) != textureID(7) {
		t.Error("texture id not stable")
	}
}
