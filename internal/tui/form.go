package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// labelled text inputs with focus cycling and a single inline error line.
// enter on the last field submits.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
	err    string
	busy   bool
}

type formField struct {
	label       string
	placeholder string
	secret      bool
	limit       int
}

type formSubmitMsg struct{}

func newForm(fields ...formField) form {
	f := form{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}

	for i, field := range fields {
		ti := textinput.New()
		ti.Placeholder = field.placeholder
		ti.Prompt = "> "
		ti.PromptStyle = blurredPromptStyle
		ti.CharLimit = 200
		if field.limit > 0 {
			ti.CharLimit = field.limit
		}
		if field.secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}

		f.labels[i] = field.label
		f.inputs[i] = ti
	}

	f.setFocus(0)
	return f
}

func (f *form) setFocus(i int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}

	f.focus = (i + len(f.inputs)) % len(f.inputs)

	var cmd tea.Cmd
	for j := range f.inputs {
		if j == f.focus {
			f.inputs[j].PromptStyle = focusedPromptStyle
			cmd = f.inputs[j].Focus()
			continue
		}
		f.inputs[j].PromptStyle = blurredPromptStyle
		f.inputs[j].Blur()
	}

	return cmd
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// raw value, for passwords where whitespace counts
func (f *form) rawValue(i int) string {
	return f.inputs[i].Value()
}

func (f *form) setValue(i int, v string) {
	f.inputs[i].SetValue(v)
}

func (f *form) reset() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.err = ""
	f.busy = false

	return f.setFocus(0)
}

// handles focus keys and typing. a formSubmitMsg is emitted when enter is
// pressed on the last field.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if f.busy {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			return f.setFocus(f.focus + 1)
		case "shift+tab", "up":
			return f.setFocus(f.focus - 1)
		case "enter":
			if f.focus < len(f.inputs)-1 {
				return f.setFocus(f.focus + 1)
			}
			return func() tea.Msg { return formSubmitMsg{} }
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view(busyText string) string {
	var b strings.Builder

	for i := range f.inputs {
		b.WriteString(labelStyle.Render(f.labels[i]))
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.err))
		b.WriteString("\n")
	}

	if f.busy && busyText != "" {
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(busyText))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().MarginBottom(1).Render(b.String())
}
