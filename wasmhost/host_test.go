package wasmhost

import (
	"context"
	"strings"
	"testing"

	"github.com/tetratelabs/wazero"

	"github.com/wippyai/imgui-bridge/binding"
	"github.com/wippyai/imgui-bridge/imgui"
	"github.com/wippyai/imgui-bridge/marshal"
	"github.com/wippyai/imgui-bridge/native"
	"github.com/wippyai/imgui-bridge/value"
)

func newTestHost(t *testing.T) *Host {
	t.Helper()
	ctx, err := imgui.NewContext(imgui.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}
	t.Cleanup(ctx.Destroy)
	m, err := binding.NewModule(ctx, binding.DefaultOptions())
	if err != nil {
		t.Fatalf("NewModule failed: %v", err)
	}
	h := New(m, DefaultOptions())
	t.Cleanup(h.Close)
	return h
}

// arenaGuest plays the guest side against an in-process memory.
type arenaGuest struct {
	t   *testing.T
	h   *Host
	mem *native.Arena
}

func newArenaGuest(t *testing.T) *arenaGuest {
	return &arenaGuest{t: t, h: newTestHost(t), mem: native.NewArena(4096)}
}

func (g *arenaGuest) put(data []byte) (uint32, uint32) {
	g.t.Helper()
	if len(data) == 0 {
		return 0, 0
	}
	ptr, err := g.mem.Alloc(uint32(len(data)), 1)
	if err != nil {
		g.t.Fatal(err)
	}
	if err := g.mem.Write(ptr, data); err != nil {
		g.t.Fatal(err)
	}
	return ptr, uint32(len(data))
}

// call returns the host status and, on success, the decoded result.
func (g *arenaGuest) call(name string, args []value.Value, kwargs map[string]value.Value, outCap uint32) (int32, value.Value) {
	g.t.Helper()
	req, err := EncodeArgs(args, kwargs, g.h.Objects())
	if err != nil {
		g.t.Fatal(err)
	}
	namePtr, nameLen := g.put([]byte(name))
	argsPtr, argsLen := g.put(req)
	out, err := g.mem.Alloc(max(outCap, 1), 1)
	if err != nil {
		g.t.Fatal(err)
	}

	n := g.h.Call(g.mem, namePtr, nameLen, argsPtr, argsLen, out, outCap)
	if n < 0 {
		return n, value.Value{}
	}
	raw, err := g.mem.Read(out, uint32(n))
	if err != nil {
		g.t.Fatal(err)
	}
	v, used, err := DecodeValue(raw, g.h.Objects())
	if err != nil || used != int(n) {
		g.t.Fatalf("result decode: %v (used %d of %d)", err, used, n)
	}
	return n, v
}

func (g *arenaGuest) must(name string, args ...value.Value) value.Value {
	g.t.Helper()
	n, v := g.call(name, args, nil, 256)
	if n < 0 {
		g.t.Fatalf("%s: status %d: %s", name, n, g.h.LastError())
	}
	return v
}

func center(lo, hi value.Value) (value.Value, value.Value) {
	coord := func(v value.Value, name string) float64 {
		f, _ := v.Field(name)
		n, _ := f.Number()
		return n
	}
	return value.Float((coord(lo, "x") + coord(hi, "x")) / 2), value.Float((coord(lo, "y") + coord(hi, "y")) / 2)
}

func TestHostCall(t *testing.T) {
	g := newArenaGuest(t)
	always, _ := g.h.Module().Constant("ImGuiCond_Always")

	g.must("NewFrame")
	g.must("SetNextWindowPos", marshal.Vec2Value(native.Vec2{}), value.Int(always))
	g.must("Begin", value.String("guest"))
	pressed := g.must("Button", value.String("OK"), marshal.Vec2Value(native.Vec2{X: 100, Y: 20}))
	if !pressed.Equal(value.Bool(false)) {
		t.Errorf("Button = %v", pressed)
	}
	size := g.must("GetItemRectSize")
	if w, _ := size.Field("x"); !w.Equal(value.Float(100)) {
		t.Errorf("GetItemRectSize = %v", size)
	}
	g.must("End")
	g.must("Render")
	if n := g.must("GetFrameCount"); !n.Equal(value.Int(1)) {
		t.Errorf("GetFrameCount = %v", n)
	}
	if g.h.LastError() != "" {
		t.Errorf("a successful call should clear the last error, got %q", g.h.LastError())
	}
}

func TestHostObjectsRoundTrip(t *testing.T) {
	g := newArenaGuest(t)
	ref := g.must("bool_p")
	if ref.TypeName() != "bool_p" {
		t.Fatalf("bool_p returned %s", ref.TypeName())
	}
	if g.h.Objects().Len() != 1 {
		t.Errorf("object table holds %d tokens, want 1", g.h.Objects().Len())
	}

	// hover, press and release over the checkbox, one event per frame
	always, _ := g.h.Module().Constant("ImGuiCond_Always")
	var x, y value.Value
	var changed value.Value
	for i := range 4 {
		switch i {
		case 1:
			g.must("AddMousePosEvent", x, y)
		case 2:
			g.must("AddMouseButtonEvent", value.Int(0), value.Bool(true))
		case 3:
			g.must("AddMouseButtonEvent", value.Int(0), value.Bool(false))
		}
		g.must("NewFrame")
		g.must("SetNextWindowPos", marshal.Vec2Value(native.Vec2{}), value.Int(always))
		g.must("Begin", value.String("guest"))
		changed = g.must("Checkbox", value.String("flag"), ref)
		x, y = center(g.must("GetItemRectMin"), g.must("GetItemRectMax"))
		g.must("End")
		g.must("EndFrame")
	}
	if !changed.Equal(value.Bool(true)) {
		t.Errorf("Checkbox on release = %v", changed)
	}

	o, _ := ref.Object()
	if !o.(*marshal.BoolRef).Value() {
		t.Error("the host object should hold the widget's write")
	}
}

func TestHostCallFailures(t *testing.T) {
	g := newArenaGuest(t)

	tests := []struct {
		name   string
		fn     string
		args   []value.Value
		outCap uint32
		status int32
		msg    string
	}{
		{"unknown function", "Nope", nil, 64, StatusFailed, "Nope"},
		{"bad argument", "Button", []value.Value{value.Int(1)}, 64, StatusFailed, "label"},
		{"outside frame", "Button", []value.Value{value.String("x")}, 64, StatusFailed, "NewFrame"},
		{"small output", "GetVersion", nil, 2, StatusTooSmall, "out_cap"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, _ := g.call(tt.fn, tt.args, nil, tt.outCap)
			if n != tt.status {
				t.Fatalf("status = %d, want %d", n, tt.status)
			}
			if msg := g.h.LastError(); !strings.Contains(msg, tt.msg) {
				t.Errorf("last error %q should mention %q", msg, tt.msg)
			}
		})
	}
}

func TestHostBadRequest(t *testing.T) {
	g := newArenaGuest(t)
	namePtr, nameLen := g.put([]byte("Button"))
	argsPtr, argsLen := g.put([]byte{1, 0, 0, 0, 99})
	if n := g.h.Call(g.mem, namePtr, nameLen, argsPtr, argsLen, 0, 0); n != StatusRequest {
		t.Errorf("undecodable args: status %d", n)
	}
	if n := g.h.Call(g.mem, g.mem.Size()+16, 4, 0, 0, 0, 0); n != StatusRequest {
		t.Errorf("name out of bounds: status %d", n)
	}
	if !strings.Contains(g.h.LastError(), "out_of_bounds") {
		t.Errorf("last error = %q", g.h.LastError())
	}
}

func TestHostConstAndLastError(t *testing.T) {
	g := newArenaGuest(t)
	ptr, n := g.put([]byte("ImGuiKey_Enter"))
	if v := g.h.Const(g.mem, ptr, n); v != 525 {
		t.Errorf("const ImGuiKey_Enter = %d", v)
	}
	ptr, n = g.put([]byte("ImGuiKey_Nope"))
	if v := g.h.Const(g.mem, ptr, n); v != NoConstant {
		t.Errorf("unknown constant = %d", v)
	}

	msg := g.h.LastError()
	out, _ := g.mem.Alloc(8, 1)
	full := g.h.ReadLastError(g.mem, out, 8)
	if int(full) != len(msg) {
		t.Errorf("ReadLastError = %d, want %d", full, len(msg))
	}
	got, _ := g.mem.Read(out, 8)
	if string(got) != msg[:8] {
		t.Errorf("truncated message = %q", got)
	}
}

// guestWasm is a module that imports the host functions and re-exports
// them through thin forwarding functions, plus one page of memory.
var guestWasm = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
	// type section: (i32 x6) -> i32, (i32 i32) -> i64, (i32 i32) -> i32
	0x01, 0x17, 0x03,
	0x60, 0x06, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x01, 0x7f,
	0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7e,
	0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f,
	// import section: imgui.call, imgui.const, imgui.last_error
	0x02, 0x2f, 0x03,
	0x05, 'i', 'm', 'g', 'u', 'i', 0x04, 'c', 'a', 'l', 'l', 0x00, 0x00,
	0x05, 'i', 'm', 'g', 'u', 'i', 0x05, 'c', 'o', 'n', 's', 't', 0x00, 0x01,
	0x05, 'i', 'm', 'g', 'u', 'i', 0x0a, 'l', 'a', 's', 't', '_', 'e', 'r', 'r', 'o', 'r', 0x00, 0x02,
	// function section
	0x03, 0x04, 0x03, 0x00, 0x01, 0x02,
	// memory section: one page
	0x05, 0x03, 0x01, 0x00, 0x01,
	// export section
	0x07, 0x26, 0x04,
	0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
	0x04, 'c', 'a', 'l', 'l', 0x00, 0x03,
	0x05, 'c', 'o', 'n', 's', 't', 0x00, 0x04,
	0x0a, 'l', 'a', 's', 't', '_', 'e', 'r', 'r', 'o', 'r', 0x00, 0x05,
	// code section
	0x0a, 0x24, 0x03,
	0x10, 0x00, 0x20, 0x00, 0x20, 0x01, 0x20, 0x02, 0x20, 0x03, 0x20, 0x04, 0x20, 0x05, 0x10, 0x00, 0x0b,
	0x08, 0x00, 0x20, 0x00, 0x20, 0x01, 0x10, 0x01, 0x0b,
	0x08, 0x00, 0x20, 0x00, 0x20, 0x01, 0x10, 0x02, 0x0b,
}

func TestWazeroGuest(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	h := newTestHost(t)
	if _, err := h.Instantiate(ctx, rt); err != nil {
		t.Fatal(err)
	}
	guest, err := rt.Instantiate(ctx, guestWasm)
	if err != nil {
		t.Fatalf("guest instantiate: %v", err)
	}
	mem := guest.Memory()

	const (
		nameAt = 0
		argsAt = 256
		outAt  = 1024
	)
	invoke := func(name string, args ...value.Value) (int32, []byte) {
		t.Helper()
		req, err := EncodeArgs(args, nil, h.Objects())
		if err != nil {
			t.Fatal(err)
		}
		mem.Write(nameAt, []byte(name))
		mem.Write(argsAt, req)
		res, err := guest.ExportedFunction("call").Call(ctx,
			nameAt, uint64(len(name)), argsAt, uint64(len(req)), outAt, 512)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		n := int32(uint32(res[0]))
		if n < 0 {
			return n, nil
		}
		out, _ := mem.Read(outAt, uint32(n))
		return n, out
	}

	n, out := invoke("GetVersion")
	if n <= 0 {
		t.Fatalf("GetVersion status %d: %s", n, h.LastError())
	}
	v, _, err := DecodeValue(out, nil)
	if err != nil || !v.Equal(value.String(h.Module().Context().GetVersion())) {
		t.Errorf("GetVersion = %v, %v", v, err)
	}

	if n, _ := invoke("NewFrame"); n < 0 {
		t.Fatalf("NewFrame: %s", h.LastError())
	}
	if n, _ := invoke("Button", value.Int(3)); n != StatusFailed {
		t.Errorf("bad call status = %d", n)
	}
	res, err := guest.ExportedFunction("last_error").Call(ctx, outAt, 512)
	if err != nil {
		t.Fatal(err)
	}
	msgLen := uint32(res[0])
	msg, _ := mem.Read(outAt, min(msgLen, 512))
	if !strings.Contains(string(msg), "Button") {
		t.Errorf("last_error = %q", msg)
	}

	mem.Write(nameAt, []byte("ImGuiCond_Always"))
	res, err = guest.ExportedFunction("const").Call(ctx, nameAt, uint64(len("ImGuiCond_Always")))
	if err != nil {
		t.Fatal(err)
	}
	if int64(res[0]) != 1 {
		t.Errorf("const ImGuiCond_Always = %d", int64(res[0]))
	}
}
