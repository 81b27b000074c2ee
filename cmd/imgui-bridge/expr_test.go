package main

import (
	"slices"
	"strconv"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/wippyai/imgui-bridge/binding"
	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/imgui"
	"github.com/wippyai/imgui-bridge/marshal"
	"github.com/wippyai/imgui-bridge/native"
	"github.com/wippyai/imgui-bridge/value"
)

func newTestModule(t *testing.T) *binding.Module {
	t.Helper()
	m, err := newSession(defaultFileConfig(), zap.NewNop())
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}
	t.Cleanup(m.Context().Destroy)
	return m
}

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		src  string
		want value.Value
	}{
		{"42", value.Int(42)},
		{"-3", value.Int(-3)},
		{"0x10", value.Int(16)},
		{"1.5", value.Float(1.5)},
		{"-2.5e1", value.Float(-25)},
		{".5", value.Float(0.5)},
		{"'hi'", value.String("hi")},
		{`"a\"b"`, value.String(`a"b`)},
		{`'tab\t'`, value.String("tab\t")},
		{"True", value.Bool(true)},
		{"None", value.None()},
		{"[1, 'x', [False]]", value.List(value.Int(1), value.String("x"), value.List(value.Bool(false)))},
		{"[]", value.List()},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			e, err := parseExpr(tt.src)
			if err != nil {
				t.Fatalf("parseExpr: %v", err)
			}
			got, err := e.eval(nil)
			if err != nil {
				t.Fatalf("eval: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unterminated string", "'open"},
		{"unclosed call", "Button("},
		{"trailing comma", "Button('a',)"},
		{"missing comma", "[1 2]"},
		{"positional after keyword", "f(a=1, 2)"},
		{"repeated keyword", "f(a=1, a=2)"},
		{"minus before name", "-x"},
		{"bad character", "@"},
		{"two expressions", "1 2"},
		{"unknown escape", `'\q'`},
		{"int overflow", "99999999999999999999"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseExpr(tt.src)
			if !errors.IsKind(err, errors.KindInvalidData) {
				t.Fatalf("got %v, want invalid_data", err)
			}
			if e, ok := err.(*errors.Error); !ok || e.Phase != errors.PhaseParse {
				t.Errorf("want a parse error, got %#v", err)
			}
		})
	}
}

func TestParseProgram(t *testing.T) {
	src := "NewFrame(); Begin('w')\nButton('OK', size=vec2(100, 20)) # draw it\n;;Render()"
	stmts, err := parseProgram(src)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"NewFrame()", "Begin('w')", "Button('OK', size=vec2(100, 20))", "Render()"}
	if len(stmts) != len(want) {
		t.Fatalf("got %d statements, want %d", len(stmts), len(want))
	}
	for i, st := range stmts {
		if st.src != want[i] {
			t.Errorf("statement %d = %q, want %q", i, st.src, want[i])
		}
	}

	c, ok := stmts[2].expr.(*callExpr)
	if !ok {
		t.Fatalf("statement 2 is %T", stmts[2].expr)
	}
	if c.fn != "Button" || len(c.args) != 1 || len(c.kwargs) != 1 || c.kwargs[0].name != "size" {
		t.Errorf("unexpected call %+v", c)
	}

	if _, err := parseProgram("Button('a') Button('b')"); !errors.IsKind(err, errors.KindInvalidData) {
		t.Errorf("missing separator: got %v", err)
	}
	if stmts, err := parseProgram(" ; \n # nothing\n"); err != nil || len(stmts) != 0 {
		t.Errorf("blank program: %v %v", stmts, err)
	}
}

func TestEval(t *testing.T) {
	m := newTestModule(t)

	tests := []struct {
		src  string
		want value.Value
	}{
		{"ImGuiKey_Enter", value.Int(525)},
		{"ImGuiWindowFlags_NoTitleBar | ImGuiWindowFlags_NoResize", value.Int(3)},
		{"0x10 | 1", value.Int(17)},
		{"vec2(1, 2)", marshal.Vec2Value(native.Vec2{X: 1, Y: 2})},
		{"vec2(x=1, y=2)", marshal.Vec2Value(native.Vec2{X: 1, Y: 2})},
		{"GetVersion()", value.String(m.Context().GetVersion())},
		{"[vec2(0, 0), ImGuiCond_Always]", value.List(marshal.Vec2Value(native.Vec2{}), value.Int(1))},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			e, err := parseExpr(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			got, err := e.eval(m)
			if err != nil {
				t.Fatalf("eval: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	m := newTestModule(t)

	tests := []struct {
		src  string
		kind errors.Kind
	}{
		{"Nope", errors.KindNotFound},
		{"1 | 'a'", errors.KindTypeMismatch},
		{"Nope()", errors.KindNotFound},
		{"Button('x')", errors.KindInvalidArgument},
		{"Button(1)", errors.KindTypeMismatch},
		{"vec2(Nope, 1)", errors.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			e, err := parseExpr(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := e.eval(m); !errors.IsKind(err, tt.kind) {
				t.Errorf("got %v, want %s", err, tt.kind)
			}
		})
	}
}

func mustParse(t *testing.T, src string) expr {
	t.Helper()
	e, err := parseExpr(src)
	if err != nil {
		t.Fatalf("parseExpr(%q): %v", src, err)
	}
	return e
}

func TestEvalFramed(t *testing.T) {
	m := newTestModule(t)
	ctx := m.Context()

	if lines := drawSummary(ctx, 0); lines != nil {
		t.Errorf("summary before the first render: %v", lines)
	}

	got, err := evalFramed(m, mustParse(t, "Button('OK', vec2(50, 20))"))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(value.Bool(false)) {
		t.Errorf("Button = %v", got)
	}
	if ctx.InFrame() {
		t.Error("frame left open")
	}
	if n := ctx.GetFrameCount(); n != 1 {
		t.Errorf("frame count = %d, want 1", n)
	}

	lines := drawSummary(ctx, 0)
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "frame 1:") {
		t.Fatalf("summary = %v", lines)
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, strconv.Quote(scratchWindow)) {
		t.Errorf("summary misses the window:\n%s", joined)
	}

	if _, err := evalFramed(m, mustParse(t, "ProgressBar('half')")); !errors.IsKind(err, errors.KindTypeMismatch) {
		t.Errorf("failing call: got %v", err)
	}
	if ctx.InFrame() {
		t.Error("failing call left the frame open")
	}
}

func TestEvalFramedFrameControl(t *testing.T) {
	m := newTestModule(t)
	ctx := m.Context()

	if _, err := evalFramed(m, mustParse(t, "NewFrame()")); err != nil {
		t.Fatal(err)
	}
	if !ctx.InFrame() {
		t.Fatal("NewFrame should not be wrapped")
	}
	// inside a running frame calls run as they are
	if _, err := evalFramed(m, mustParse(t, "Text('inside')")); err != nil {
		t.Fatal(err)
	}
	if _, err := evalFramed(m, mustParse(t, "Render()")); err != nil {
		t.Fatal(err)
	}
	if ctx.InFrame() || ctx.GetFrameCount() != 1 {
		t.Errorf("in frame %v, count %d", ctx.InFrame(), ctx.GetFrameCount())
	}
}

func TestClip(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"abcdef", 4, "abc…"},
		{"abc", 0, "abc"},
		{"abc", 3, "abc"},
		{"héllo", 3, "hé…"},
		{"abc", 1, "…"},
	}
	for _, tt := range tests {
		if got := clip(tt.s, tt.width); got != tt.want {
			t.Errorf("clip(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}

func TestSummaryLines(t *testing.T) {
	st := imgui.DrawStats{Windows: []string{"Main", "Tools"}, CmdLists: 2, Vertices: 120, Indices: 180}
	want := []string{
		"frame 3: 2 draw lists, 120 vertices, 180 indices",
		`  window "Main"`,
		`  window "Tools"`,
	}
	if got := summaryLines(3, st, 0); !slices.Equal(got, want) {
		t.Errorf("summaryLines = %q, want %q", got, want)
	}
	if got := summaryLines(1, st, 10); got[1] != `  window …` {
		t.Errorf("clipped window line = %q", got[1])
	}
}
