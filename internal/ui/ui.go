// Package ui renders the single-select connection picker.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Selection is the outcome of a prompt: either the position of the chosen
// label or an abort. Index is meaningless when Aborted is true.
type Selection struct {
	Index   int
	Aborted bool
}

type pickerModel struct {
	title   string
	items   []string
	cursor  int
	offset  int
	chosen  bool
	aborted bool
	height  int
	keys    keyMap
	help    help.Model
	styles  styles
}

func newPicker(title string, items []string, accent string) pickerModel {
	return pickerModel{
		title:  title,
		items:  items,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: newStyles(accent),
	}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scroll()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Choose):
			if len(m.items) == 0 {
				break
			}
			m.chosen = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Top):
			m.cursor = 0
		case key.Matches(msg, m.keys.Bottom):
			if len(m.items) > 0 {
				m.cursor = len(m.items) - 1
			}
		}
		m.scroll()
	}
	return m, nil
}

// visibleRows is how many items fit below the title and above the help line.
func (m pickerModel) visibleRows() int {
	if m.height <= 0 {
		return len(m.items)
	}
	return max(1, m.height-3)
}

func (m *pickerModel) scroll() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m pickerModel) View() string {
	if m.aborted {
		return ""
	}
	if m.chosen {
		return fmt.Sprintf("%s %s %s\n",
			m.styles.done.Render("✔"),
			m.styles.title.Render(m.title),
			m.styles.selected.Render(m.items[m.cursor]))
	}

	b := strings.Builder{}
	b.WriteString(m.styles.prompt.Render("?") + " " + m.styles.title.Render(m.title) + "\n")
	end := min(len(m.items), m.offset+m.visibleRows())
	for i := m.offset; i < end; i++ {
		if i == m.cursor {
			b.WriteString(m.styles.cursor.Render("❯ ") + m.styles.selected.Render(m.items[i]) + "\n")
			continue
		}
		b.WriteString("  " + m.styles.item.Render(m.items[i]) + "\n")
	}
	b.WriteString(m.styles.dim.Render(m.help.View(m.keys)) + "\n")
	return b.String()
}

func (m pickerModel) selection() Selection {
	if !m.chosen {
		return Selection{Aborted: true}
	}
	return Selection{Index: m.cursor}
}
