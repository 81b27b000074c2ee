package imgui

import (
	"strings"
	"testing"

	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/marshal"
	"github.com/wippyai/imgui-bridge/native"
	"github.com/wippyai/imgui-bridge/value"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	c, err := NewContext(DefaultConfig())
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}
	t.Cleanup(c.Destroy)
	return c
}

// frame runs body inside a fixed window of a fresh frame and renders it.
func frame(t *testing.T, c *Context, body func()) {
	t.Helper()
	must(t, c.NewFrame())
	must(t, c.SetNextWindowPos(native.Vec2{}, 1, native.Vec2{}))
	must(t, c.SetNextWindowSize(native.Vec2{X: 400, Y: 300}, 1))
	if _, err := c.Begin("Test", nil, 0); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	body()
	must(t, c.End())
	must(t, c.Render())
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func wantErr(t *testing.T, err error, kind errors.Kind, substr string) {
	t.Helper()
	if !errors.IsKind(err, kind) {
		t.Fatalf("expected %s, got %v", kind, err)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("error %q does not mention %q", err, substr)
	}
}

func TestNewContext(t *testing.T) {
	c := newTestContext(t)

	if c.Destroyed() || c.InFrame() {
		t.Fatal("fresh context destroyed or in a frame")
	}
	if v := c.GetVersion(); !strings.HasPrefix(v, "1.") {
		t.Errorf("GetVersion = %q", v)
	}
	if n := c.GetFrameCount(); n != 0 {
		t.Errorf("GetFrameCount = %d, want 0", n)
	}
	if h, err := c.GetFont(); err != nil || h == 0 {
		t.Errorf("GetFont = %d, %v", h, err)
	}

	if _, err := NewContext(Config{DisplaySize: native.Vec2{X: -1, Y: 10}}); !errors.IsKind(err, errors.KindInvalidArgument) {
		t.Errorf("negative display size: expected invalid_argument, got %v", err)
	}
}

func TestContext_Destroy(t *testing.T) {
	c, err := NewContext(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	io, err := c.GetIO()
	if err != nil {
		t.Fatal(err)
	}
	c.Destroy()
	c.Destroy()

	if !c.Destroyed() {
		t.Fatal("Destroyed = false")
	}
	if err := c.NewFrame(); !errors.IsKind(err, errors.KindNotInitialized) {
		t.Errorf("NewFrame: expected not_initialized, got %v", err)
	}
	if _, err := c.GetIO(); !errors.IsKind(err, errors.KindNotInitialized) {
		t.Errorf("GetIO: expected not_initialized, got %v", err)
	}
	if io.Alive() {
		t.Error("IO wrapper alive after Destroy")
	}
	if _, ok := c.DrawStats(); ok {
		t.Error("DrawStats available after Destroy")
	}
}

func TestContext_IO(t *testing.T) {
	c := newTestContext(t)
	io, err := c.GetIO()
	if err != nil {
		t.Fatal(err)
	}

	v, err := io.Get("DisplaySize")
	if err != nil {
		t.Fatal(err)
	}
	if want := marshal.Vec2Value(native.Vec2{X: 1280, Y: 720}); !v.Equal(want) {
		t.Errorf("DisplaySize = %v, want %v", v, want)
	}

	must(t, io.Set("DeltaTime", value.Float(0.25)))
	if got := c.io.DeltaTime(); got != 0.25 {
		t.Errorf("library DeltaTime = %g after Set", got)
	}
	v, _ = io.Get("DeltaTime")
	if !v.Equal(value.Float(0.25)) {
		t.Errorf("DeltaTime = %v", v)
	}

	must(t, io.Set("ConfigFlags", value.Int(1)))
	if got := c.io.ConfigFlags(); got != 1 {
		t.Errorf("library ConfigFlags = %d", got)
	}

	if err := io.Set("BackendPlatformName", value.String("mine")); !errors.IsKind(err, errors.KindUnsupported) {
		t.Errorf("read-only field: expected unsupported, got %v", err)
	}
	if _, err := io.Get("KeysDown"); !errors.IsKind(err, errors.KindNotFound) {
		t.Errorf("unknown field: expected not_found, got %v", err)
	}

	ctx, _ := io.Get("Ctx")
	if ctx.IsNone() {
		t.Error("IO.Ctx is None")
	}
	fonts, _ := io.Get("Fonts")
	if fonts.IsNone() {
		t.Error("IO.Fonts is None")
	}
}

func TestContext_Style(t *testing.T) {
	c := newTestContext(t)
	style, err := c.GetStyle()
	if err != nil {
		t.Fatal(err)
	}

	must(t, style.Set("Alpha", value.Float(0.5)))
	if got := c.style.Alpha(); got != 0.5 {
		t.Errorf("library Alpha = %g after Set", got)
	}
	must(t, style.Set("FramePadding", marshal.Vec2Value(native.Vec2{X: 6, Y: 2})))
	if got := c.style.FramePadding(); got.X != 6 || got.Y != 2 {
		t.Errorf("library FramePadding = %v", got)
	}

	// NewFrame refuses values the library asserts on
	must(t, style.Set("Alpha", value.Float(2)))
	wantErr(t, c.NewFrame(), errors.KindInvalidArgument, "Style.Alpha")
	must(t, style.Set("Alpha", value.Float(1)))
	must(t, c.NewFrame())
	must(t, c.EndFrame())
}

func TestContext_Isolation(t *testing.T) {
	a := newTestContext(t)
	b := newTestContext(t)

	ioA, _ := a.GetIO()
	ioB, _ := b.GetIO()
	must(t, ioA.Set("FontGlobalScale", value.Float(2)))

	v, err := ioB.Get("FontGlobalScale")
	if err != nil {
		t.Fatal(err)
	}
	if v.Equal(value.Float(2)) {
		t.Error("IO write leaked into another context")
	}

	must(t, a.NewFrame())
	must(t, b.NewFrame())
	must(t, a.Render())
	must(t, b.Render())
	if a.GetFrameCount() != 1 || b.GetFrameCount() != 1 {
		t.Errorf("frame counts = %d, %d", a.GetFrameCount(), b.GetFrameCount())
	}
}

func TestContext_Objects(t *testing.T) {
	c := newTestContext(t)

	vp1, err := c.GetMainViewport()
	if err != nil {
		t.Fatal(err)
	}
	vp2, _ := c.GetMainViewport()
	if vp1 == 0 || vp1 != vp2 {
		t.Errorf("viewport handles %d, %d", vp1, vp2)
	}

	if _, err := c.GetBackgroundDrawList(); !errors.IsKind(err, errors.KindInvalidArgument) {
		t.Errorf("draw list outside a frame: expected invalid_argument, got %v", err)
	}

	frame(t, c, func() {
		bg, err := c.GetBackgroundDrawList()
		if err != nil || bg == 0 {
			t.Errorf("GetBackgroundDrawList = %d, %v", bg, err)
		}
		fg, _ := c.GetForegroundDrawList()
		if fg == bg {
			t.Error("foreground and background share a handle")
		}
		st, err := c.GetStateStorage()
		if err != nil {
			t.Fatal(err)
		}
		must(t, c.SetStateStorage(st))
		wantErr(t, c.SetStateStorage(bg), errors.KindInvalidArgument, "ImGuiStorage")
	})
}
