package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/xonecas/natrium/internal/highlight"
)

type styles struct {
	Text         lipgloss.Style
	Gutter       lipgloss.Style
	Tilde        lipgloss.Style
	Cursor       lipgloss.Style // Normal mode
	CursorInsert lipgloss.Style // Insert and Replace mode
	CursorOther  lipgloss.Style // cursors that are not current
	Status       lipgloss.Style
	StatusMode   lipgloss.Style
	Message      lipgloss.Style
}

func newStyles(p highlight.Palette) styles {
	bg := lipgloss.Color(p.Bg)
	fg := lipgloss.Color(p.Fg)
	text := lipgloss.NewStyle().Foreground(fg).Background(bg)
	return styles{
		Text:         text,
		Gutter:       text.Foreground(lipgloss.Color(p.Gutter)),
		Tilde:        text.Foreground(lipgloss.Color(p.Gutter)),
		Cursor:       lipgloss.NewStyle().Foreground(bg).Background(fg),
		CursorInsert: lipgloss.NewStyle().Foreground(fg).Background(bg).Underline(true),
		CursorOther:  lipgloss.NewStyle().Foreground(bg).Background(lipgloss.Color(p.Muted)),
		Status:       lipgloss.NewStyle().Foreground(fg).Background(lipgloss.Color(p.Marker)),
		StatusMode:   lipgloss.NewStyle().Foreground(bg).Background(lipgloss.Color(p.Accent)).Bold(true),
		Message:      text,
	}
}
