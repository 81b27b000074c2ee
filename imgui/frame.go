package imgui

import (
	"strings"

	cimgui "github.com/AllenDang/cimgui-go/imgui"

	"github.com/wippyai/imgui-bridge/native"
	"github.com/wippyai/imgui-bridge/resource"
)

// NewFrame starts a frame. IO and Style values the library asserts on are
// checked first.
func (c *Context) NewFrame() error {
	if err := c.live(); err != nil {
		return err
	}
	if c.withinFrame {
		return callErr("NewFrame", "forgot to call Render or EndFrame at the end of the previous frame")
	}
	if err := c.checkIO(); err != nil {
		return err
	}
	if err := c.checkStyle(); err != nil {
		return err
	}

	cimgui.NewFrame()
	c.frameCount++
	c.withinFrame, c.ended, c.rendered = true, false, false
	c.windows = c.windows[:0]
	return nil
}

func (c *Context) checkIO() error {
	io := c.io
	if dt := io.DeltaTime(); dt <= 0 && c.frameCount > 0 {
		return callErr("NewFrame", "IO.DeltaTime must be positive, got %g", dt)
	}
	if d := io.DisplaySize(); d.X < 0 || d.Y < 0 {
		return callErr("NewFrame", "invalid IO.DisplaySize %gx%g", d.X, d.Y)
	}
	if io.FontGlobalScale() <= 0 {
		return callErr("NewFrame", "IO.FontGlobalScale must be positive")
	}
	if io.KeyRepeatDelay() <= 0 || io.KeyRepeatRate() <= 0 {
		return callErr("NewFrame", "IO.KeyRepeatDelay and IO.KeyRepeatRate must be positive")
	}
	return nil
}

func (c *Context) checkStyle() error {
	s := c.style
	if a := s.Alpha(); a < 0 || a > 1 {
		return callErr("NewFrame", "Style.Alpha %g out of range [0, 1]", a)
	}
	if m := s.WindowMinSize(); m.X < 1 || m.Y < 1 {
		return callErr("NewFrame", "Style.WindowMinSize must be at least 1x1")
	}
	if s.CurveTessellationTol() <= 0 {
		return callErr("NewFrame", "Style.CurveTessellationTol must be positive")
	}
	if s.CircleTessellationMaxError() <= 0 {
		return callErr("NewFrame", "Style.CircleTessellationMaxError must be positive")
	}
	switch s.WindowMenuButtonPosition() {
	case dirNone, dirLeft, dirRight:
	default:
		return callErr("NewFrame", "Style.WindowMenuButtonPosition must be None, Left or Right")
	}
	switch s.ColorButtonPosition() {
	case dirLeft, dirRight:
	default:
		return callErr("NewFrame", "Style.ColorButtonPosition must be Left or Right")
	}
	return nil
}

// EndFrame ends the frame. Render calls it. Scopes and pushes left open
// are closed and reported as one error after the frame has ended.
func (c *Context) EndFrame() error {
	if err := c.live(); err != nil {
		return err
	}
	if !c.withinFrame {
		if c.ended {
			return nil
		}
		return callErr("EndFrame", "forgot to call NewFrame")
	}
	problems := c.unwind()
	cimgui.EndFrame()
	c.withinFrame, c.ended = false, true

	if len(problems) > 0 {
		return callErr("EndFrame", "%s", strings.Join(problems, "; "))
	}
	return nil
}

// Render ends the frame if needed and builds the draw data.
func (c *Context) Render() error {
	if err := c.live(); err != nil {
		return err
	}
	if c.frameCount == 0 {
		return callErr("Render", "forgot to call NewFrame")
	}
	if c.rendered {
		return callErr("Render", "Render called twice in the same frame")
	}
	endErr := c.EndFrame()
	cimgui.Render()
	c.rendered = true
	return endErr
}

// DrawStats summarizes the draw data of the last Render.
type DrawStats struct {
	Windows  []string
	CmdLists int32
	Vertices int32
	Indices  int32
}

// DrawStats returns the totals of the draw data built by the last Render,
// or false when nothing was rendered since the last NewFrame.
func (c *Context) DrawStats() (DrawStats, bool) {
	if c.destroyed || !c.rendered {
		return DrawStats{}, false
	}
	c.use()
	dd := cimgui.CurrentDrawData()
	if !dd.Valid() {
		return DrawStats{}, false
	}
	return DrawStats{
		Windows:  append([]string(nil), c.windows...),
		CmdLists: dd.CmdListsCount(),
		Vertices: dd.TotalVtxCount(),
		Indices:  dd.TotalIdxCount(),
	}, true
}

// GetDrawData returns the handle of the draw data built by Render, or 0
// when nothing was rendered since the last NewFrame.
func (c *Context) GetDrawData() (resource.Handle, error) {
	if err := c.live(); err != nil {
		return 0, err
	}
	if !c.rendered {
		return 0, nil
	}
	return c.object(resource.TypeDrawData, "", cimgui.CurrentDrawData()), nil
}

// ShowDemoWindow shows the library's demo window.
func (c *Context) ShowDemoWindow(pOpen *bool) error {
	if err := c.inFrame("ShowDemoWindow"); err != nil {
		return err
	}
	cimgui.ShowDemoWindowV(pOpen)
	c.windows = append(c.windows, "Dear ImGui Demo")
	return nil
}

// ShowMetricsWindow shows the library's metrics and debugger window.
func (c *Context) ShowMetricsWindow(pOpen *bool) error {
	if err := c.inFrame("ShowMetricsWindow"); err != nil {
		return err
	}
	cimgui.ShowMetricsWindowV(pOpen)
	c.windows = append(c.windows, "Dear ImGui Metrics/Debugger")
	return nil
}

// StyleColorsDark applies the dark theme.
func (c *Context) StyleColorsDark() error {
	if err := c.live(); err != nil {
		return err
	}
	cimgui.StyleColorsDark()
	return nil
}

// StyleColorsLight applies the light theme.
func (c *Context) StyleColorsLight() error {
	if err := c.live(); err != nil {
		return err
	}
	cimgui.StyleColorsLight()
	return nil
}

// StyleColorsClassic applies the classic theme.
func (c *Context) StyleColorsClassic() error {
	if err := c.live(); err != nil {
		return err
	}
	cimgui.StyleColorsClassic()
	return nil
}

// GetStyleColorVec4 returns a style color of the current style.
func (c *Context) GetStyleColorVec4(idx int32) (native.Vec4, error) {
	if err := c.live(); err != nil {
		return native.Vec4{}, err
	}
	col, err := libColor("GetStyleColorVec4", idx)
	if err != nil {
		return native.Vec4{}, err
	}
	return fromV4(*cimgui.StyleColorVec4(col)), nil
}

// GetStyleColorName returns the name of a style color index.
func (c *Context) GetStyleColorName(idx int32) (string, error) {
	if err := c.live(); err != nil {
		return "", err
	}
	col, err := libColor("GetStyleColorName", idx)
	if err != nil {
		return "", err
	}
	return cimgui.StyleColorName(col), nil
}
