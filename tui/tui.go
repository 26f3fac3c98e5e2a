// Package tui provides the Bubble Tea inspector for the expresscore engine:
// a character list, the selected character's call stack, a log of command
// output and side effects, and a command line.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/expresscore/cli"
	"github.com/nathoo/expresscore/engine"
)

// DefaultInterval is the auto-run step period.
const DefaultInterval = 100 * time.Millisecond

// rawLine stores an unstyled log line with its classification, so we can
// re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text    string
	kind    lineKind
	isInput bool // true for echoed commands
}

// Model is the Bubble Tea model for the inspector.
type Model struct {
	engine *engine.Engine
	shell  *cli.CLI

	viewport viewport.Model
	input    textinput.Model
	history  *History
	keys     keyMap

	rawLines []rawLine

	width    int
	height   int
	ready    bool
	selected int
	running  bool
	interval time.Duration
	seen     int
	quitting bool
	lastCmd  string
}

// stepMsg drives auto-run.
type stepMsg struct{}

// outputMsg carries lines into the Update loop.
type outputMsg struct {
	input string
	lines []string
}

type keyMap struct {
	Quit     key.Binding
	Submit   key.Binding
	Prev     key.Binding
	Next     key.Binding
	NextChar key.Binding
	PrevChar key.Binding
	Step     key.Binding
	AutoRun  key.Binding
	Scroll   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("ctrl+c")),
		Submit:   key.NewBinding(key.WithKeys("enter")),
		Prev:     key.NewBinding(key.WithKeys("up")),
		Next:     key.NewBinding(key.WithKeys("down")),
		NextChar: key.NewBinding(key.WithKeys("tab")),
		PrevChar: key.NewBinding(key.WithKeys("shift+tab")),
		Step:     key.NewBinding(key.WithKeys("ctrl+s")),
		AutoRun:  key.NewBinding(key.WithKeys("ctrl+r")),
		Scroll:   key.NewBinding(key.WithKeys("pgup", "pgdown")),
	}
}

// New creates an inspector over eng, running commands through shell.
func New(eng *engine.Engine, shell *cli.CLI) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	m := Model{
		engine:   eng,
		shell:    shell,
		input:    ti,
		history:  NewHistory(100),
		keys:     defaultKeyMap(),
		interval: DefaultInterval,
	}
	if rec := eng.Recorder(); rec != nil {
		m.seen = rec.Total()
	}
	return m
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine, shell *cli.CLI) error {
	p := tea.NewProgram(New(eng, shell), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init shows the opening lines.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg {
		return outputMsg{lines: []string{
			"[expresscore inspector. Tab selects a character, ctrl+s steps, ctrl+r toggles auto-run.]",
			"[Type help for commands.]",
		}}
	})
}

// Update handles key presses, resizes, auto-run steps and output.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := m.viewportHeight()
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Submit):
			return m.handleEnter()

		case key.Matches(msg, m.keys.Prev):
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, m.keys.Next):
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.ResetCursor()
			}
			return m, nil

		case key.Matches(msg, m.keys.NextChar):
			m.selectCharacter(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevChar):
			m.selectCharacter(-1)
			return m, nil

		case key.Matches(msg, m.keys.Step):
			m.engine.Step()
			m = m.appendEffects()
			return m, nil

		case key.Matches(msg, m.keys.AutoRun):
			m.running = !m.running
			if m.running {
				return m, m.scheduleStep()
			}
			return m, nil

		case key.Matches(msg, m.keys.Scroll):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case stepMsg:
		if !m.running {
			return m, nil
		}
		if !m.engine.Step() {
			m.running = false
		}
		m = m.appendEffects()
		if m.running {
			return m, m.scheduleStep()
		}
		return m, nil

	case outputMsg:
		m = m.appendOutput(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) scheduleStep() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return stepMsg{} })
}

func (m *Model) selectCharacter(delta int) {
	n := len(m.engine.Characters())
	if n == 0 {
		return
	}
	m.selected = (m.selected + delta + n) % n
}

// handleEnter runs the submitted command line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if input == "" {
		return m, nil
	}
	m.history.Push(input)
	m.history.ResetCursor()

	lower := strings.ToLower(input)
	if lower == "again" || lower == "g" {
		if m.lastCmd == "" {
			m = m.appendOutput(outputMsg{input: input, lines: []string{"[Nothing to repeat.]"}})
			return m, nil
		}
		input = m.lastCmd
	} else {
		m.lastCmd = input
	}

	lines, quit := m.shell.Exec(input)
	m = m.appendOutput(outputMsg{input: input, lines: lines})
	m = m.appendEffects()
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// appendEffects logs the side effects recorded since the last call.
func (m Model) appendEffects() Model {
	rec := m.engine.Recorder()
	if rec == nil {
		return m
	}
	n := rec.Total() - m.seen
	m.seen = rec.Total()
	if n <= 0 {
		return m
	}
	lines := make([]string, 0, n)
	for _, eff := range rec.Last(n) {
		lines = append(lines, "[trace] "+eff.String())
	}
	return m.appendOutput(outputMsg{lines: lines})
}

// appendOutput adds lines to the log and refreshes the viewport.
func (m Model) appendOutput(msg outputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{text: "> " + msg.input, isInput: true})
	}
	for _, line := range msg.lines {
		m.rawLines = append(m.rawLines, rawLine{text: line, kind: classifyLine(line)})
	}
	if over := len(m.rawLines) - maxLogLines; over > 0 {
		m.rawLines = append(m.rawLines[:0], m.rawLines[over:]...)
	}
	m.refreshViewport()
	return m
}

const maxLogLines = 2000

func (m Model) viewportHeight() int {
	h := m.height - m.panelHeight() - 2 // 1 status bar + 1 input line
	if h < 1 {
		h = 1
	}
	return h
}

// refreshViewport re-wraps and re-styles the log at the current width.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	width := m.width
	if width < 10 {
		width = 10
	}
	styled := make([]string, 0, len(m.rawLines))
	for _, rl := range m.rawLines {
		wrapped := wordWrap(rl.text, width)
		if rl.isInput {
			styled = append(styled, styleCommand.Render(wrapped))
			continue
		}
		styled = append(styled, renderLineKind(wrapped, rl.kind))
	}
	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap wraps text to fit within width, breaking at word boundaries.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}
	var result strings.Builder
	lineLen := 0
	for i, word := range strings.Fields(text) {
		switch {
		case i == 0:
			lineLen = len(word)
		case lineLen+1+len(word) > width:
			result.WriteString("\n")
			lineLen = len(word)
		default:
			result.WriteString(" ")
			lineLen += 1 + len(word)
		}
		result.WriteString(word)
	}
	return result.String()
}

// View renders panels, log, status bar and input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	return m.renderPanels() + "\n" + m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled; those
// browse the command history.
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
