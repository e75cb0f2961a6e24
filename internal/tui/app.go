// Package tui is the full-screen view over a list session.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"listdeck/internal/controller"
	"listdeck/internal/output"
	"listdeck/internal/record"
)

type view int

const (
	viewList view = iota
	viewForm
	viewDetail
	viewConfirm
)

type confirmAction int

const (
	confirmDelete confirmAction = iota
	confirmClear
)

// Options configures the view.
type Options struct {
	// DateFormat renders the cart detail's added date.
	DateFormat string
}

// Model is the bubbletea model. Every change goes through the controller;
// the visible entries are re-read from it after each action.
type Model struct {
	ctl  *controller.Controller
	opts Options

	entries []record.Record
	cursor  int
	offset  int // scroll offset
	width   int
	height  int

	view    view
	form    *addForm
	detail  string
	confirm confirmAction

	status    string
	statusErr bool
	quitting  bool
}

// NewModel returns a model over ctl showing its active mode.
func NewModel(ctl *controller.Controller, opts Options) Model {
	if opts.DateFormat == "" {
		opts.DateFormat = "01/02/2006 15:04"
	}
	m := Model{
		ctl:    ctl,
		opts:   opts,
		width:  80,
		height: 24,
	}
	m.refresh()
	return m
}

// Run shows the view until the user quits or ctx is cancelled.
func Run(ctx context.Context, ctl *controller.Controller, opts Options, out io.Writer) error {
	p := tea.NewProgram(NewModel(ctl, opts),
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// refresh re-reads the active list and keeps the cursor in range.
func (m *Model) refresh() {
	m.entries = m.ctl.Entries()
	if m.cursor >= len(m.entries) {
		m.cursor = max(0, len(m.entries)-1)
	}
	m.clampOffset()
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

func (m *Model) switchMode(mode record.Mode) {
	if mode == m.ctl.Mode() {
		return
	}
	m.ctl.SetMode(mode)
	m.cursor = 0
	m.offset = 0
	m.status = ""
	m.refresh()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.view {
		case viewList:
			return m.updateList(msg)
		case viewForm:
			return m.updateForm(msg)
		case viewDetail:
			return m.updateDetail(msg)
		case viewConfirm:
			return m.updateConfirm(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "1", "2", "3":
		m.switchMode(record.Modes[key[0]-'1'])

	case "tab":
		m.switchMode(record.Modes[(int(m.ctl.Mode())+1)%len(record.Modes)])

	case "shift+tab":
		n := len(record.Modes)
		m.switchMode(record.Modes[(int(m.ctl.Mode())+n-1)%n])

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.clampOffset()
		}

	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
			m.clampOffset()
		}

	case "home", "g":
		m.cursor = 0
		m.clampOffset()

	case "end", "G":
		m.cursor = max(0, len(m.entries)-1)
		m.clampOffset()

	case "a":
		f := newAddForm(m.ctl.Mode())
		m.form = &f
		m.view = viewForm
		return m, f.focusCmd()

	case "enter", " ":
		if len(m.entries) > 0 {
			m.activate()
		}

	case "d", "delete":
		if len(m.entries) > 0 {
			m.confirm = confirmDelete
			m.view = viewConfirm
		}

	case "c":
		if len(m.entries) > 0 {
			m.confirm = confirmClear
			m.view = viewConfirm
		} else {
			m.setStatus("nothing to clear", false)
		}
	}
	return m, nil
}

func (m *Model) activate() {
	sel, err := m.ctl.Activate(m.cursor)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	switch sel.Kind {
	case controller.SelectDetail:
		m.detail = output.DetailText(sel.Detail, m.ctl.Currency(), m.opts.DateFormat)
		m.view = viewDetail
	default:
		m.setStatus(sel.Message, false)
	}
	m.refresh()
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q", " ":
		m.detail = ""
		m.view = viewList
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.confirm == confirmDelete {
			removed, err := m.ctl.Remove(m.cursor)
			if err != nil {
				m.setStatus(err.Error(), true)
			} else {
				m.setStatus("Removed: "+removed.Heading(), false)
			}
		} else {
			n := m.ctl.Clear()
			m.setStatus(fmt.Sprintf("Cleared %d entries", n), false)
		}
		m.view = viewList
		m.refresh()

	case "n", "N", "esc", "q":
		m.view = viewList
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewForm:
		return m.viewForm()
	case viewDetail:
		return m.viewBox("Item Details", m.detail, "Enter/Esc: close")
	case viewConfirm:
		if m.confirm == confirmDelete {
			return m.viewBox("Delete Item", "Are you sure you want to delete this item?", "y: delete  n: cancel")
		}
		return m.viewBox("Clear List", fmt.Sprintf("Remove all %d entries from the %s?", len(m.entries), m.ctl.Mode()), "y: clear  n: cancel")
	}
	return m.viewList()
}

func (m Model) viewList() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("listdeck") + " " + m.renderTabs() + "\n\n")

	if len(m.entries) == 0 {
		b.WriteString(dimStyle.Render("  " + output.EmptyList))
		b.WriteString("\n")
	}
	visible := m.visibleRows()
	end := min(m.offset+visible, len(m.entries))
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(i) + "\n")
	}
	rendered := end - m.offset
	if len(m.entries) == 0 {
		rendered = 1
	}
	for i := rendered; i < visible; i++ {
		b.WriteString("\n")
	}

	b.WriteString(summaryStyle.Render(m.ctl.Summary()) + "\n")
	switch {
	case m.status == "":
		b.WriteString("\n")
	case m.statusErr:
		b.WriteString(errorStyle.Render("  "+m.status) + "\n")
	default:
		b.WriteString(statusStyle.Render("  "+m.status) + "\n")
	}
	b.WriteString(helpStyle.Render("  1/2/3 Tab: mode  a: add  Enter: select  d: delete  c: clear  q: quit"))
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(record.Modes))
	for i, mode := range record.Modes {
		label := fmt.Sprintf("%d %s", i+1, mode)
		if mode == m.ctl.Mode() {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderRow(i int) string {
	line := fmt.Sprintf("%4d  %s", i+1, output.EntryText(m.entries[i], m.ctl.Currency()))
	if i == m.cursor {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, selectedStyle.Render(line))
	}
	if t, ok := m.entries[i].(record.Task); ok && t.Completed {
		return completedStyle.Render(line)
	}
	return line
}

func (m Model) viewBox(title, body, help string) string {
	content := boxTitleStyle.Render(title) + "\n\n" + body + "\n\n" + dimStyle.Render(help)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxStyle.Render(content))
}

func (m Model) visibleRows() int {
	// title, blank, summary, status, help
	return max(1, m.height-5)
}

func (m *Model) clampOffset() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
