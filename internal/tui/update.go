package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/xonecas/natrium/internal/editor"
	"github.com/xonecas/natrium/internal/input"
)

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.rows.reset()
		m.follow()

	case tea.KeyPressMsg:
		m.feed(decodeKey(msg, m.keys))

	case tea.PasteMsg:
		m.feed(pasteKeys(msg.Content))
	}

	if m.ed.Quitting() {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) feed(cmds []input.Cmd) {
	for _, c := range cmds {
		m.ed.Feed(c)
		m.rows.apply(m.ed.TakeRedraw())
		if m.ed.Quitting() {
			break
		}
	}
	m.follow()
}

// follow scrolls the current buffer so its cursor stays on screen.
func (m *Model) follow() {
	b := m.ed.Buffer()
	p := b.Pos()

	if rows := m.textRows(); rows > 0 {
		if p.Y < b.ScrollY {
			b.ScrollY = p.Y
		}
		if p.Y >= b.ScrollY+rows {
			b.ScrollY = p.Y - rows + 1
		}
	}

	if tw := m.textWidth(b); tw > 0 {
		col := m.displayCol(b, p)
		if col < b.ScrollX {
			b.ScrollX = col
		}
		if col >= b.ScrollX+tw {
			b.ScrollX = col - tw + 1
		}
	}
}

// displayCol is the screen column of p within its expanded line.
func (m Model) displayCol(b *editor.Buffer, p editor.Pos) int {
	l, ok := b.Text.Line(p.Y)
	if !ok {
		return 0
	}
	rs := l.Runes()
	x := min(p.X, len(rs))
	return ansi.StringWidth(expandTabs(string(rs[:x]), m.tabWidth))
}
