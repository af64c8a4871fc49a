// Package tui hosts the editor in a bubbletea program: it decodes terminal
// keys into editor instructions and renders the current buffer, the status
// bar and the prompt line.
package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/natrium/internal/editor"
	"github.com/xonecas/natrium/internal/highlight"
)

// statusRows is the status bar plus the message/prompt line.
const statusRows = 2

// Options configure the host.
type Options struct {
	Theme    string // Chroma style name
	TabWidth int
}

// Model is the bubbletea model wrapping an editor.
type Model struct {
	ed     *editor.Editor
	width  int
	height int

	theme    string
	tabWidth int
	pal      highlight.Palette
	styles   styles
	keys     keyMap
	rows     *rowCache
}

// New returns a host for ed.
func New(ed *editor.Editor, opts Options) Model {
	if opts.TabWidth < 1 {
		opts.TabWidth = 4
	}
	if opts.Theme == "" {
		opts.Theme = "monokai"
	}
	pal := highlight.ThemePalette(opts.Theme)
	return Model{
		ed:       ed,
		theme:    opts.Theme,
		tabWidth: opts.TabWidth,
		pal:      pal,
		styles:   newStyles(pal),
		keys:     defaultKeyMap(),
		rows:     newRowCache(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// textRows is the number of screen rows showing buffer text.
func (m Model) textRows() int { return max(m.height-statusRows, 0) }
