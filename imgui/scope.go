package imgui

import (
	"fmt"
	"strings"

	cimgui "github.com/AllenDang/cimgui-go/imgui"
)

// scopeKind is a Begin/End pair the library keeps on a stack.
type scopeKind uint8

const (
	scopeWindow scopeKind = iota
	scopeChild
	scopePopup
	scopeCombo
	scopeTooltip
	scopeGroup
	scopeTree
	scopeTabBar
	scopeTabItem
	scopeDisabled
)

var scopeEnds = [...]string{"End", "EndChild", "EndPopup", "EndCombo", "EndTooltip", "EndGroup", "TreePop", "EndTabBar", "EndTabItem", "EndDisabled"}

// ownsWindow reports whether the scope begins a window of its own.
func (k scopeKind) ownsWindow() bool { return k <= scopeTooltip }

// param is a Push/Pop stack.
type param uint8

const (
	paramID param = iota
	paramStyleColor
	paramStyleVar
	paramItemWidth
	paramTextWrap
	paramFont
	paramItemFlag
	paramClipRect
	paramCount
)

var paramPops = [paramCount]string{"PopID", "PopStyleColor", "PopStyleVar", "PopItemWidth", "PopTextWrapPos", "PopFont", "PopTabStop/PopButtonRepeat", "PopClipRect"}

type scope struct {
	kind scopeKind
	name string
	base [paramCount]int
}

func (c *Context) pushScope(kind scopeKind, name string) {
	c.scopes = append(c.scopes, scope{kind: kind, name: name, base: c.params})
}

func (c *Context) top() *scope {
	if len(c.scopes) == 0 {
		return nil
	}
	return &c.scopes[len(c.scopes)-1]
}

// window returns the innermost scope owning a window, or nil inside the
// implicit window.
func (c *Context) window() *scope {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if c.scopes[i].kind.ownsWindow() {
			return &c.scopes[i]
		}
	}
	return nil
}

func (c *Context) windowName() string {
	if w := c.window(); w != nil {
		return w.name
	}
	return implicitWindow
}

// endScope checks that kind is the innermost open scope and, for windows,
// that every parameter pushed inside it was popped. It pops the scope.
func (c *Context) endScope(fn string, kind scopeKind) error {
	s := c.top()
	if s == nil {
		return callErr(fn, "calling %s() too many times", fn)
	}
	if s.kind != kind {
		return callErr(fn, "%s() called while %q is open, call %s() first", fn, s.name, scopeEnds[s.kind])
	}
	if kind.ownsWindow() {
		for p := range paramCount {
			if c.params[p] > s.base[p] {
				return callErr(fn, "missing %s() in %q", paramPops[p], s.name)
			}
		}
	}
	c.scopes = c.scopes[:len(c.scopes)-1]
	return nil
}

// pushParam records a push. Callers make the library call.
func (c *Context) pushParam(p param) { c.params[p]++ }

// popParam checks that n pushes of p belong to the current window.
func (c *Context) popParam(fn string, p param, n int) error {
	if n < 0 {
		return argErr(fn, "count", n, "count must not be negative")
	}
	base := 0
	if w := c.window(); w != nil {
		base = w.base[p]
	}
	if c.params[p]-n < base {
		return callErr(fn, "calling %s() too many times", fn)
	}
	c.params[p] -= n
	if p == paramFont {
		c.fonts = c.fonts[:len(c.fonts)-n]
	}
	return nil
}

// unwind closes what user code left open, innermost first, and describes
// each mismatch.
func (c *Context) unwind() []string {
	var problems []string
	for i := len(c.scopes) - 1; i >= 0; i-- {
		s := c.scopes[i]
		problems = append(problems, c.popAbove(s.base, s.name)...)
		problems = append(problems, fmt.Sprintf("missing %s for %q", scopeEnds[s.kind], s.name))
		endNative(s.kind)
	}
	c.scopes = c.scopes[:0]
	return append(problems, c.popAbove([paramCount]int{}, implicitWindow)...)
}

func (c *Context) popAbove(base [paramCount]int, name string) []string {
	var problems []string
	for p := range paramCount {
		n := c.params[p] - base[p]
		if n <= 0 {
			continue
		}
		problems = append(problems, fmt.Sprintf("missing %s x%d in %q", strings.Split(paramPops[p], "/")[0], n, name))
		popNative(p, n)
		c.params[p] = base[p]
		if p == paramFont {
			c.fonts = c.fonts[:len(c.fonts)-n]
		}
	}
	return problems
}

func endNative(k scopeKind) {
	switch k {
	case scopeWindow:
		cimgui.End()
	case scopeChild:
		cimgui.EndChild()
	case scopePopup:
		cimgui.EndPopup()
	case scopeCombo:
		cimgui.EndCombo()
	case scopeTooltip:
		cimgui.EndTooltip()
	case scopeGroup:
		cimgui.EndGroup()
	case scopeTree:
		cimgui.TreePop()
	case scopeTabBar:
		cimgui.EndTabBar()
	case scopeTabItem:
		cimgui.EndTabItem()
	case scopeDisabled:
		cimgui.EndDisabled()
	}
}

func popNative(p param, n int) {
	switch p {
	case paramStyleColor:
		cimgui.PopStyleColorV(int32(n))
		return
	case paramStyleVar:
		cimgui.PopStyleVarV(int32(n))
		return
	}
	for range n {
		switch p {
		case paramID:
			cimgui.PopID()
		case paramItemWidth:
			cimgui.PopItemWidth()
		case paramTextWrap:
			cimgui.PopTextWrapPos()
		case paramFont:
			cimgui.PopFont()
		case paramItemFlag:
			cimgui.PopItemFlag()
		case paramClipRect:
			cimgui.PopClipRect()
		}
	}
}
