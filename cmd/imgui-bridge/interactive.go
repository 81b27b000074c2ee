package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/wippyai/imgui-bridge/binding"
	"github.com/wippyai/imgui-bridge/imgui"
	"github.com/wippyai/imgui-bridge/marshal"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	module   *binding.Module
	log      *zap.Logger
	config   string
	result   string
	frame    []string
	funcs    []funcInfo
	visible  []int
	inputs   []textinput.Model
	filter   textinput.Model
	selected int
	focusIdx int
	width    int
	height   int
	state    modelState
}

// funcInfo is one overload shown in the list.
type funcInfo struct {
	name string
	doc  string
	sig  *marshal.Signature
}

type modelState int

const (
	stateSelectFunc modelState = iota
	stateFilter
	stateInputArgs
	stateShowResult
)

func newInteractiveModel(configPath string, log *zap.Logger) *interactiveModel {
	filter := textinput.New()
	filter.Prompt = "/"
	filter.Placeholder = "filter"
	filter.Width = 30
	return &interactiveModel{
		config: configPath,
		log:    log,
		filter: filter,
		state:  stateSelectFunc,
	}
}

type loadedMsg struct {
	err    error
	module *binding.Module
	funcs  []funcInfo
}

type callResultMsg struct {
	err    error
	result string
	frame  []string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.load
}

func (m *interactiveModel) load() tea.Msg {
	cfg, err := loadConfig(m.config)
	if err != nil {
		return loadedMsg{err: err}
	}
	mod, err := newSession(cfg, m.log)
	if err != nil {
		return loadedMsg{err: err}
	}
	var funcs []funcInfo
	for _, name := range mod.Functions() {
		f, _ := mod.Lookup(name)
		for _, o := range f.Overloads {
			funcs = append(funcs, funcInfo{name: name, doc: o.Doc, sig: o.Sig})
		}
	}
	return loadedMsg{module: mod, funcs: funcs}
}

// close destroys the session's context.
func (m *interactiveModel) close() {
	if m.module != nil {
		m.module.Context().Destroy()
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.state == stateFilter {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputArgs {
				return m, tea.Quit
			}

		case "/":
			if m.state == stateSelectFunc {
				m.state = stateFilter
				return m, m.filter.Focus()
			}

		case "up", "k":
			if m.state == stateSelectFunc && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectFunc && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectFunc:
				if len(m.visible) == 0 {
					return m, nil
				}
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.prepareCall()
				}
				m.state = stateInputArgs
				return m, nil

			case stateInputArgs:
				return m, m.prepareCall()

			case stateShowResult:
				m.clearResult()
			}

		case "tab", "shift+tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				step := 1
				if msg.String() == "shift+tab" {
					step = len(m.inputs) - 1
				}
				m.focusIdx = (m.focusIdx + step) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
				return m, nil
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectFunc
				m.inputs = nil
			case stateShowResult:
				m.clearResult()
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.module = msg.module
		m.funcs = msg.funcs
		m.applyFilter()

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.frame = msg.frame
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.filter.SetValue("")
		m.applyFilter()
		fallthrough
	case "enter":
		m.filter.Blur()
		m.state = stateSelectFunc
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *interactiveModel) applyFilter() {
	q := strings.ToLower(m.filter.Value())
	m.visible = m.visible[:0]
	for i, f := range m.funcs {
		if q == "" || strings.Contains(strings.ToLower(f.name), q) {
			m.visible = append(m.visible, i)
		}
	}
	m.selected = 0
}

func (m *interactiveModel) current() funcInfo {
	return m.funcs[m.visible[m.selected]]
}

func (m *interactiveModel) clearResult() {
	m.state = stateSelectFunc
	m.result = ""
	m.frame = nil
	m.err = nil
}

func (m *interactiveModel) prepareInputs() {
	f := m.current()
	m.inputs = make([]textinput.Model, len(f.sig.Params))
	for i, p := range f.sig.Params {
		ti := textinput.New()
		ti.Placeholder = paramType(p)
		if p.HasDefault {
			ti.Placeholder += " = " + p.Default.String()
		}
		ti.Prompt = p.Name + ": "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

// prepareCall parses the filled inputs into keyword arguments. Empty inputs
// are left out so their defaults apply.
func (m *interactiveModel) prepareCall() tea.Cmd {
	f := m.current()
	c := &callExpr{fn: f.name}
	for i, in := range m.inputs {
		src := strings.TrimSpace(in.Value())
		if src == "" {
			continue
		}
		name := f.sig.Params[i].Name
		e, err := parseExpr(src)
		if err != nil {
			return func() tea.Msg { return callResultMsg{err: fmt.Errorf("%s: %w", name, err)} }
		}
		c.kwargs = append(c.kwargs, kwarg{name: name, val: e})
	}
	mod, width := m.module, m.width
	return func() tea.Msg {
		res, err := evalFramed(mod, c)
		msg := callResultMsg{err: err, frame: drawSummary(mod.Context(), width)}
		if err == nil {
			msg.result = res.String()
		}
		return msg
	}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.module == nil {
		return "Creating context..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("imgui-bridge"))
	b.WriteString(fmt.Sprintf(" %s (constants %s)  frame %d\n\n", m.module.Context().GetVersion(), imgui.Version, m.module.Context().GetFrameCount()))

	switch m.state {
	case stateSelectFunc, stateFilter:
		if m.state == stateFilter || m.filter.Value() != "" {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		} else {
			b.WriteString("Select a function to call:\n\n")
		}
		rows := m.listRows()
		start := max(0, min(m.selected-rows/2, len(m.visible)-rows))
		end := min(len(m.visible), start+rows)
		for i := start; i < end; i++ {
			f := m.funcs[m.visible[i]]
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + f.sig.String()))
			} else {
				b.WriteString("  " + formatFunc(f))
			}
			b.WriteString("\n")
		}
		if len(m.visible) == 0 {
			b.WriteString(helpStyle.Render("  no matches"))
			b.WriteString("\n")
		} else if end < len(m.visible) {
			b.WriteString(helpStyle.Render(fmt.Sprintf("  ... %d more", len(m.visible)-end)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.state == stateFilter {
			b.WriteString(helpStyle.Render("type to filter • enter keep • esc clear"))
		} else {
			b.WriteString(helpStyle.Render("↑/↓ select • / filter • enter call • q quit"))
		}

	case stateInputArgs:
		f := m.current()
		b.WriteString(fmt.Sprintf("Calling %s\n", funcStyle.Render(f.name)))
		if f.doc != "" {
			b.WriteString(helpStyle.Render(f.doc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(typeStyle.Render(paramType(f.sig.Params[i])))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter call • esc back"))

	case stateShowResult:
		f := m.current()
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", funcStyle.Render(f.name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		frame := m.frame
		if rows := m.listRows(); len(frame) > rows {
			frame = append(frame[:rows:rows], fmt.Sprintf("  ... %d more", len(m.frame)-rows))
		}
		for _, l := range frame {
			b.WriteString(l)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) listRows() int {
	if m.height <= 0 {
		return 20
	}
	return max(5, m.height-8)
}

func formatFunc(f funcInfo) string {
	var params []string
	for _, p := range f.sig.Params {
		s := p.Name + ": " + typeStyle.Render(paramType(p))
		if p.HasDefault {
			s += " = " + p.Default.String()
		}
		params = append(params, s)
	}
	result := ""
	if f.sig.Result != marshal.KindNone {
		result = " -> " + typeStyle.Render(f.sig.ResultType)
	}
	return funcStyle.Render(f.name) + "(" + strings.Join(params, ", ") + ")" + result
}

func paramType(p marshal.Param) string {
	if p.Type != "" {
		return p.Type
	}
	return p.Kind.String()
}

func runInteractive(configPath string, log *zap.Logger) error {
	model := newInteractiveModel(configPath, log)
	defer model.close()
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
