package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"listdeck/internal/controller"
	"listdeck/internal/record"
)

type formField struct {
	label string
	input textinput.Model
	radio bool // priority selector instead of a text input
}

// addForm collects the inputs of one Add. Its fields depend on the mode it
// was opened in.
type addForm struct {
	mode     record.Mode
	fields   []formField
	priority record.Priority
	focus    int
	err      string
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	return ti
}

func newAddForm(mode record.Mode) addForm {
	f := addForm{mode: mode, priority: record.PriorityLow}
	switch mode {
	case record.ModeStudents:
		f.fields = []formField{
			{label: "Name:", input: newInput("Enter student name", 100)},
		}
	case record.ModeCart:
		f.fields = []formField{
			{label: "Name:", input: newInput("Enter item name", 100)},
			{label: "Price:", input: newInput("0.00", 20)},
			{label: "Qty:", input: newInput("1", 10)},
		}
	case record.ModeTasks:
		f.fields = []formField{
			{label: "Title:", input: newInput("Enter task title", 100)},
			{label: "Desc:", input: newInput("optional", 200)},
			{label: "Prio:", radio: true},
		}
	}
	f.fields[0].input.Focus()
	return f
}

func (f *addForm) title() string {
	switch f.mode {
	case record.ModeCart:
		return "Add Item"
	case record.ModeTasks:
		return "Add Task"
	}
	return "Add Student"
}

func (f *addForm) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (f *addForm) moveFocus(delta int) {
	f.fields[f.focus].input.Blur()
	n := len(f.fields)
	f.focus = (f.focus + delta + n) % n
	if !f.fields[f.focus].radio {
		f.fields[f.focus].input.Focus()
		f.fields[f.focus].input.CursorEnd()
	}
}

func (f *addForm) value(i int) string {
	if i >= len(f.fields) {
		return ""
	}
	return f.fields[i].input.Value()
}

// submission maps the form onto Controller.Add's arguments.
func (f *addForm) submission() (string, controller.Fields) {
	switch f.mode {
	case record.ModeCart:
		return f.value(0), controller.Fields{PriceRaw: f.value(1), QuantityRaw: f.value(2)}
	case record.ModeTasks:
		return f.value(0), controller.Fields{Description: f.value(1), Priority: f.priority}
	}
	return f.value(0), controller.Fields{}
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	key := msg.String()

	switch key {
	case "esc":
		m.form = nil
		m.view = viewList
		return m, nil

	case "tab", "down":
		f.moveFocus(1)
		return m, nil

	case "shift+tab", "up":
		f.moveFocus(-1)
		return m, nil

	case "enter":
		primary, fields := f.submission()
		res, err := m.ctl.Add(primary, fields)
		if err != nil {
			f.err = err.Error()
			return m, nil
		}
		m.form = nil
		m.view = viewList
		m.refresh()
		m.cursor = res.Position
		m.clampOffset()
		if res.Merged {
			m.setStatus("Updated: "+res.Entry.Heading(), false)
		} else {
			m.setStatus("Added: "+res.Entry.Heading(), false)
		}
		return m, nil
	}

	if f.fields[f.focus].radio {
		switch key {
		case "left", "h":
			if f.priority > record.PriorityLow {
				f.priority--
			}
		case "right", "l":
			if f.priority < record.PriorityHigh {
				f.priority++
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	f.err = ""
	return m, cmd
}

func (m Model) viewForm() string {
	f := m.form

	lines := []string{boxTitleStyle.Render(f.title()), ""}
	for i, field := range f.fields {
		label := fieldLabel(field.label, i == f.focus)
		value := field.input.View()
		if field.radio {
			value = renderRadio(f.priority, i == f.focus)
		}
		lines = append(lines, label+" "+value, "")
	}
	if f.err != "" {
		lines = append(lines, errorStyle.Render(f.err), "")
	}
	lines = append(lines, dimStyle.Render("Enter: add  Esc: cancel  Tab: next"))

	box := boxStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func fieldLabel(label string, focused bool) string {
	style := lipgloss.NewStyle().Width(7)
	if focused {
		style = style.Bold(true).Foreground(lipgloss.Color("39"))
	} else {
		style = style.Foreground(lipgloss.Color("252"))
	}
	return style.Render(label)
}

func renderRadio(selected record.Priority, focused bool) string {
	var parts []string
	for _, p := range record.Priorities {
		if p == selected {
			style := lipgloss.NewStyle().Bold(true)
			if focused {
				style = style.Foreground(lipgloss.Color("39"))
			}
			parts = append(parts, style.Render(fmt.Sprintf("● %s", p)))
		} else {
			parts = append(parts, dimStyle.Render(fmt.Sprintf("○ %s", p)))
		}
	}
	return strings.Join(parts, "  ")
}
