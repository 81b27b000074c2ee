package main

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/wippyai/imgui-bridge/binding"
	"github.com/wippyai/imgui-bridge/imgui"
	"github.com/wippyai/imgui-bridge/value"
)

// scratchWindow hosts calls evaluated outside a frame.
const scratchWindow = "imgui-bridge"

var frameControl = map[string]bool{
	"NewFrame": true,
	"EndFrame": true,
	"Render":   true,
}

// newSession creates a context configured from cfg and binds a module to it.
// Destroy the module's context when done.
func newSession(cfg fileConfig, log *zap.Logger) (*binding.Module, error) {
	ctx, err := imgui.NewContext(cfg.Config)
	if err != nil {
		return nil, fmt.Errorf("create context: %w", err)
	}
	if err := cfg.apply(ctx); err != nil {
		ctx.Destroy()
		return nil, err
	}
	m, err := binding.NewModule(ctx, binding.Options{Logger: log, CheckDefaults: true})
	if err != nil {
		ctx.Destroy()
		return nil, fmt.Errorf("bind module: %w", err)
	}
	return m, nil
}

// evalFramed evaluates e inside a frame with a scratch window open, unless a
// frame is already running or e drives the frame itself.
func evalFramed(m *binding.Module, e expr) (value.Value, error) {
	if c, ok := e.(*callExpr); (ok && frameControl[c.fn]) || m.Context().InFrame() {
		return e.eval(m)
	}
	if _, err := m.Call("NewFrame"); err != nil {
		return value.Value{}, err
	}
	if _, err := m.Call("Begin", value.String(scratchWindow)); err != nil {
		_, _ = m.Call("Render")
		return value.Value{}, err
	}

	res, err := e.eval(m)
	_, endErr := m.Call("End")
	_, renderErr := m.Call("Render")
	switch {
	case err != nil:
		return value.Value{}, err
	case endErr != nil:
		return res, fmt.Errorf("close frame: %w", endErr)
	case renderErr != nil:
		return res, fmt.Errorf("close frame: %w", renderErr)
	}
	return res, nil
}

// drawSummary describes the last rendered frame: one line for the draw
// data, then each window submitted. Lines are cut to width when width is
// positive.
func drawSummary(c *imgui.Context, width int) []string {
	st, ok := c.DrawStats()
	if !ok {
		return nil
	}
	return summaryLines(c.GetFrameCount(), st, width)
}

func summaryLines(frame int32, st imgui.DrawStats, width int) []string {
	lines := []string{fmt.Sprintf("frame %d: %d draw lists, %d vertices, %d indices",
		frame, st.CmdLists, st.Vertices, st.Indices)}
	for _, w := range st.Windows {
		lines = append(lines, clip("  window "+strconv.Quote(w), width))
	}
	return lines
}

func clip(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
