package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/xonecas/natrium/internal/editor"
	"github.com/xonecas/natrium/internal/highlight"
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() tea.View {
	v := tea.NewView(m.renderContent())
	v.AltScreen = true
	return v
}

// renderContent produces the string content for the view.
func (m Model) renderContent() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	b := m.ed.Buffer()
	lang := ""
	if m.ed.Options.Highlight {
		lang = highlight.DetectLanguage(b.Path)
	}
	m.rows.check(layoutKey{
		buf:     b,
		opts:    m.ed.Options,
		scrollX: b.ScrollX,
		gutter:  m.gutterWidth(b),
		width:   m.width,
		lang:    lang,
	})

	cursors := m.cursorCells(b)
	lines := make([]string, 0, m.height)
	for i := range m.textRows() {
		y := b.ScrollY + i
		if y >= b.Text.Len() {
			lines = append(lines, m.pad(m.styles.Tilde.Render("~"), m.width, m.styles.Text))
			continue
		}
		if s, ok := m.rows.get(y); ok && len(cursors[y]) == 0 {
			lines = append(lines, s)
			continue
		}
		s := m.renderRow(b, y, lang, cursors[y])
		if len(cursors[y]) == 0 {
			m.rows.put(y, s)
		}
		lines = append(lines, s)
	}
	lines = append(lines, m.renderStatusBar(b), m.renderMessage())
	return strings.Join(lines[:min(len(lines), m.height)], "\n")
}

// cell is a cursor drawn at a screen column of its row.
type cell struct {
	col   int
	style lipgloss.Style
}

// cursorCells groups the buffer's cursors by row. The current cursor is
// drawn last so it wins over another on the same cell.
func (m Model) cursorCells(b *editor.Buffer) map[int][]cell {
	out := make(map[int][]cell)
	for i, c := range b.Cursors {
		if i == b.Current {
			continue
		}
		p := b.Bound(c.Pos(), false)
		out[p.Y] = append(out[p.Y], cell{m.displayCol(b, p), m.styles.CursorOther})
	}
	sty := m.styles.Cursor
	switch m.ed.Mode() {
	case editor.ModeInsert, editor.ModeReplace:
		sty = m.styles.CursorInsert
	case editor.ModePrompt:
		sty = m.styles.CursorOther
	}
	p := b.Pos()
	out[p.Y] = append(out[p.Y], cell{m.displayCol(b, p), sty})
	return out
}

// renderRow draws buffer row y: gutter, colored text, cursors, clipped to
// the horizontal scroll and padded to the full width.
func (m Model) renderRow(b *editor.Buffer, y int, lang string, cursors []cell) string {
	l, _ := b.Text.Line(y)
	text := expandTabs(l.String(), m.tabWidth)

	bgHex := m.pal.Bg
	if m.ed.Options.LineMarker && y == b.Pos().Y {
		bgHex = m.pal.Marker
	}
	bg := lipgloss.Color(bgHex)
	textSty := m.styles.Text.Background(bg)

	var sb strings.Builder
	if gw := m.gutterWidth(b); gw > 0 {
		sb.WriteString(m.styles.Gutter.Background(bg).Render(fmt.Sprintf("%*d ", gw-1, y+1)))
	}

	var hl string
	switch {
	case !m.ed.Options.Highlight:
		hl = textSty.Render(text)
	case lang != "":
		hl = highlight.Highlight(text, lang, m.theme, bgHex)
	default:
		hl = highlight.CharClass(text, m.pal, bgHex)
	}
	hl = placeCursors(hl, text, cursors)

	tw := m.textWidth(b)
	sb.WriteString(m.pad(ansi.Cut(hl, b.ScrollX, b.ScrollX+tw), tw, textSty))
	return sb.String()
}

// placeCursors overlays cursor cells on the highlighted line hl, whose
// plain text is text. A cursor past the end draws on a blank cell.
func placeCursors(hl, text string, cursors []cell) string {
	if len(cursors) == 0 {
		return hl
	}
	slices.SortStableFunc(cursors, func(a, b cell) int { return a.col - b.col })
	uniq := cursors[:0]
	for _, c := range cursors {
		if n := len(uniq); n > 0 && uniq[n-1].col == c.col {
			uniq[n-1] = c
			continue
		}
		uniq = append(uniq, c)
	}
	cursors = uniq

	w := ansi.StringWidth(text)
	var sb strings.Builder
	prev := 0
	for _, c := range cursors {
		if c.col < prev {
			continue
		}
		sb.WriteString(ansi.Cut(hl, prev, c.col))
		ch := " "
		if c.col < w {
			ch = ansi.Cut(text, c.col, c.col+1)
			if ch == "" {
				ch = " "
			}
		}
		sb.WriteString(c.style.Render(ch))
		prev = c.col + max(ansi.StringWidth(ch), 1)
	}
	if prev < w {
		sb.WriteString(ansi.Cut(hl, prev, w))
	}
	return sb.String()
}

// renderStatusBar draws mode, title, the pending command echo and the
// cursor position.
func (m Model) renderStatusBar(b *editor.Buffer) string {
	st := m.ed.Status
	p := b.Pos()
	left := m.styles.StatusMode.Render(" "+st.Mode+" ") + m.styles.Status.Render(" "+st.Title)
	right := m.styles.Status.Render(st.Cmd + "  " + strconv.Itoa(p.Y+1) + ":" + strconv.Itoa(p.X+1) + " ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return ansi.Truncate(left+m.styles.Status.Render(" ")+right, m.width, "")
	}
	return left + m.styles.Status.Render(strings.Repeat(" ", gap)) + right
}

// renderMessage draws the bottom line: the prompt being typed in Prompt
// mode, the status message otherwise.
func (m Model) renderMessage() string {
	if m.ed.Mode() == editor.ModePrompt {
		line := ";" + expandTabs(m.ed.PromptLine(), m.tabWidth)
		s := m.styles.Message.Render(line) + m.styles.Cursor.Render(" ")
		return m.pad(ansi.TruncateLeft(s, max(lipgloss.Width(s)-m.width, 0), ""), m.width, m.styles.Message)
	}
	return m.pad(m.styles.Message.Render(m.ed.Status.Msg), m.width, m.styles.Message)
}

// pad truncates or fills s to exactly w cells.
func (m Model) pad(s string, w int, fill lipgloss.Style) string {
	sw := lipgloss.Width(s)
	if sw > w {
		return ansi.Truncate(s, w, "")
	}
	if sw < w {
		s += fill.Render(strings.Repeat(" ", w-sw))
	}
	return s
}

// gutterWidth is the line number column including its trailing space, or
// zero when line numbers are off.
func (m Model) gutterWidth(b *editor.Buffer) int {
	if !m.ed.Options.LineNumbers {
		return 0
	}
	return max(len(strconv.Itoa(b.Text.Len())), 2) + 1
}

// textWidth returns the width available for text content.
func (m Model) textWidth(b *editor.Buffer) int {
	return max(m.width-m.gutterWidth(b), 1)
}

// expandTabs replaces tabs with spaces up to the next multiple of width.
func expandTabs(s string, width int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			spaces := width - col%width
			b.WriteString(strings.Repeat(" ", spaces))
			col += spaces
			continue
		}
		b.WriteRune(r)
		col += ansi.StringWidth(string(r))
	}
	return b.String()
}
