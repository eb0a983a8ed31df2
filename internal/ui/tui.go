// Package ui provides the interactive terminal mode.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todofs/internal/view"
)

// ErrNotTTY is returned when the interactive mode is started without a terminal.
var ErrNotTTY = errors.New("interactive mode requires a TTY")

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	doneStyle   = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	cursorStyle = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// Run starts the interactive mode over v and blocks until the user quits.
func Run(ctx context.Context, v *view.View, out io.Writer) error {
	if !IsTTY(out) {
		return ErrNotTTY
	}
	program := tea.NewProgram(newModel(ctx, v), tea.WithAltScreen(), tea.WithContext(ctx), tea.WithOutput(out))
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

type mode int

const (
	modeBrowse mode = iota
	modeAdd
)

type model struct {
	ctx    context.Context
	view   *view.View
	cursor int
	mode   mode
	input  textinput.Model
	status string
	err    error
}

func newModel(ctx context.Context, v *view.View) *model {
	ti := textinput.New()
	ti.Placeholder = "Task name"
	ti.Prompt = "New task: "
	ti.CharLimit = 255
	ti.Width = 50
	return &model{
		ctx:   ctx,
		view:  v,
		input: ti,
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode == modeAdd {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.mode == modeAdd {
		return m.updateAdd(key)
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.view.Len()-1 {
			m.cursor++
		}
	case " ", "enter":
		m.toggle()
	case "a":
		m.mode = modeAdd
		m.status, m.err = "", nil
		return m, m.input.Focus()
	case "d", "x":
		m.remove()
	}
	return m, nil
}

func (m *model) updateAdd(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.closeInput()
		return m, nil
	case "enter":
		name := m.input.Value()
		m.closeInput()
		task, err := m.view.Add(m.ctx, name)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.cursor = m.view.Len() - 1
		m.status = fmt.Sprintf("added %q", task.Name)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m *model) closeInput() {
	m.mode = modeBrowse
	m.input.Reset()
	m.input.Blur()
}

func (m *model) toggle() {
	if m.view.Len() == 0 {
		return
	}
	task, err := m.view.Toggle(m.ctx, m.cursor)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	if task.Done {
		m.status = fmt.Sprintf("done %q", task.Name)
	} else {
		m.status = fmt.Sprintf("undone %q", task.Name)
	}
}

func (m *model) remove() {
	if m.view.Len() == 0 {
		return
	}
	task, err := m.view.Remove(m.ctx, m.cursor)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.status = fmt.Sprintf("removed %q", task.Name)
	if m.cursor >= m.view.Len() && m.cursor > 0 {
		m.cursor--
	}
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("todofs: "+m.view.List()) + "\n\n")

	tasks := m.view.Tasks()
	if len(tasks) == 0 {
		b.WriteString("  No tasks. Press a to add one.\n")
	}
	for i, task := range tasks {
		b.WriteString(formatItem(task.Name, task.Done, i == m.cursor))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.mode == modeAdd {
		b.WriteString(m.input.View() + "\n\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render("error: "+m.err.Error()) + "\n\n")
	} else if m.status != "" {
		b.WriteString(m.status + "\n\n")
	}

	if m.mode == modeAdd {
		b.WriteString(helpStyle.Render("enter add | esc cancel") + "\n")
	} else {
		b.WriteString(helpStyle.Render("j/k move | space toggle | a add | d remove | q quit") + "\n")
	}
	return b.String()
}

func formatItem(name string, done, selected bool) string {
	pointer := "  "
	if selected {
		pointer = cursorStyle.Render("> ")
	}
	box := "[ ]"
	if done {
		box = "[x]"
		name = doneStyle.Render(name)
	}
	return pointer + box + " " + name
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
