package main

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rotorsim/rotorsim/core/format"
	"github.com/rotorsim/rotorsim/interfaces"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700")).
			MarginLeft(2).
			MarginTop(1)

	rotorStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#666666")).
			Padding(0, 1).
			Align(lipgloss.Center)

	selectedRotorStyle = rotorStyle.
				BorderForeground(lipgloss.Color("#FFD700"))

	windowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))

	lampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)

	litLampStyle = lampStyle.
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFD700"))

	contentStyle = lipgloss.NewStyle().MarginLeft(2).MarginTop(1)
	traceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).MarginTop(1).MarginLeft(2)
)

// lampRows is the QWERTZ layout of the lamp board.
var lampRows = []string{"QWERTZUIO", "ASDFGHJK", "PYXCVBNML"}

type keyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Reset key.Binding
	Group key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "prev rotor"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next rotor"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "spin forward"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "spin back"),
	),
	Reset: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "reset"),
	),
	Group: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "group tape"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Reset, k.Group, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Reset, k.Group, k.Quit},
	}
}

// tracePath is shared between the model copies and the machine's trace
// callback.
type tracePath struct {
	last string
}

func (t *tracePath) record(path string) {
	t.last = path
}

type model struct {
	machine  interfaces.Machine
	trace    *tracePath
	selected int
	input    []byte
	output   []byte
	lamp     rune
	group    bool
	message  string
	keys     keyMap
	help     help.Model
	width    int
}

func newModel(machine interfaces.Machine, trace *tracePath) model {
	return model{
		machine:  machine,
		trace:    trace,
		selected: 2,
		keys:     keys,
		help:     help.New(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			m.selected = (m.selected + 2) % 3
		case key.Matches(msg, m.keys.Right):
			m.selected = (m.selected + 1) % 3
		case key.Matches(msg, m.keys.Up):
			m.spin(1)
		case key.Matches(msg, m.keys.Down):
			m.spin(-1)
		case key.Matches(msg, m.keys.Reset):
			m.machine.Reset()
			m.input, m.output = nil, nil
			m.lamp = 0
			m.trace.last = ""
			m.message = ""
		case key.Matches(msg, m.keys.Group):
			m.group = !m.group
		case msg.Type == tea.KeyRunes:
			for _, r := range msg.Runes {
				m.press(r)
			}
		}
	}
	return m, nil
}

func (m *model) spin(delta int) {
	if _, err := m.machine.SpinRotor(m.selected, delta); err != nil {
		m.message = err.Error()
		return
	}
	m.lamp = 0
	m.message = ""
}

func (m *model) press(r rune) {
	up := unicode.ToUpper(r)
	if up < 'A' || up > 'Z' {
		return
	}
	out := m.machine.EncodeChar(up)
	m.input = append(m.input, byte(up))
	m.output = append(m.output, byte(out))
	m.lamp = out
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Enigma I"))
	s.WriteString("\n")
	s.WriteString(contentStyle.Render(m.machine.String()))
	s.WriteString("\n\n")

	s.WriteString(contentStyle.Render(m.renderRotors()))
	s.WriteString("\n\n")
	s.WriteString(contentStyle.Render(m.renderLamps()))
	s.WriteString("\n")

	s.WriteString(contentStyle.Render("IN  " + m.tape(m.input)))
	s.WriteString("\n")
	s.WriteString(contentStyle.UnsetMarginTop().Render("OUT " + m.tape(m.output)))
	s.WriteString("\n")
	if m.trace.last != "" {
		s.WriteString(contentStyle.Render(traceStyle.Render(m.trace.last)))
		s.WriteString("\n")
	}
	if m.message != "" {
		s.WriteString(contentStyle.Render(errorStyle.Render(m.message)))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return s.String()
}

func (m model) tape(b []byte) string {
	if m.group {
		return format.GroupLetters(string(b))
	}
	return string(b)
}

// renderRotors draws each rotor window with the neighbouring letters above
// and below, the way the dial shows through the cover.
func (m model) renderRotors() string {
	pos := m.machine.Positions()
	boxes := make([]string, 0, len(pos))
	for slot, p := range pos {
		prev := letterAt(p - 1)
		next := letterAt(p + 1)
		body := dimStyle.Render(prev) + "\n" + windowStyle.Render(letterAt(p)) + "\n" + dimStyle.Render(next)

		style := rotorStyle
		if slot == m.selected {
			style = selectedRotorStyle
		}
		boxes = append(boxes, style.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m model) renderLamps() string {
	rows := make([]string, 0, len(lampRows))
	for n, row := range lampRows {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", n*2))
		for _, c := range row {
			if c == m.lamp {
				b.WriteString(litLampStyle.Render(string(c)))
			} else {
				b.WriteString(lampStyle.Render(string(c)))
			}
		}
		rows = append(rows, b.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func letterAt(i int) string {
	return string(rune('A' + (i%26+26)%26))
}
