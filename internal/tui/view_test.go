package tui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/golden"

	"github.com/xonecas/natrium/internal/editor"
	"github.com/xonecas/natrium/internal/text"
)

func newTestModel(t *testing.T, w, h int, opts editor.Options, lines ...string) Model {
	t.Helper()
	ed := editor.New(opts)
	if len(lines) > 0 {
		ed.Buffer().Text = text.FromStrings(lines)
		ed.Buffer().MarkSaved()
	}
	m := New(ed, Options{Theme: "monokai", TabWidth: 4})
	return resize(m, w, h)
}

func resize(m Model, w, h int) Model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(Model)
}

func press(m Model, keys string) Model {
	for _, r := range keys {
		updated, _ := m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
		m = updated.(Model)
	}
	return m
}

func screen(m Model) []string {
	return strings.Split(ansi.Strip(m.renderContent()), "\n")
}

func TestLayout(t *testing.T) {
	m := newTestModel(t, 30, 6, editor.DefaultOptions(), "hello", "world")
	output := m.renderContent()

	t.Run("Stripped", func(t *testing.T) {
		golden.RequireEqual(t, []byte(ansi.Strip(output)))
	})
}

func TestViewWidths(t *testing.T) {
	long := strings.Repeat("abcdefghij", 8)
	tests := []struct {
		name  string
		opts  editor.Options
		lines []string
	}{
		{"plain", editor.Options{}, []string{"hello", "", "world"}},
		{"highlight", editor.DefaultOptions(), []string{"x := \"str\" + 42", "(a[b])"}},
		{"line numbers", editor.Options{LineNumbers: true, LineMarker: true}, []string{"one", "two"}},
		{"tabs", editor.DefaultOptions(), []string{"\tindented", "a\tb\tc"}},
		{"overflow", editor.DefaultOptions(), []string{long, long}},
		{"wide runes", editor.DefaultOptions(), []string{"日本語のテキスト", "ok"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, 40, 8, tt.opts, tt.lines...)
			lines := strings.Split(m.renderContent(), "\n")
			if len(lines) != 8 {
				t.Fatalf("rendered %d rows, want 8", len(lines))
			}
			for i, l := range lines {
				if w := lipgloss.Width(l); w != 40 {
					t.Errorf("row %d: width=%d (want 40): %q", i, w, ansi.Strip(l))
				}
			}
		})
	}
}

func TestViewEmptyBeforeResize(t *testing.T) {
	m := New(editor.New(editor.DefaultOptions()), Options{})
	if got := m.renderContent(); got != "" {
		t.Errorf("renderContent() = %q before the first resize, want empty", got)
	}
}

func TestLineNumbers(t *testing.T) {
	opts := editor.DefaultOptions()
	opts.LineNumbers = true
	m := newTestModel(t, 20, 5, opts, "alpha", "beta")

	rows := screen(m)
	if !strings.HasPrefix(rows[0], " 1 alpha") {
		t.Errorf("row 0 = %q, want prefix %q", rows[0], " 1 alpha")
	}
	if !strings.HasPrefix(rows[1], " 2 beta") {
		t.Errorf("row 1 = %q, want prefix %q", rows[1], " 2 beta")
	}
	if !strings.HasPrefix(rows[2], "~") {
		t.Errorf("row 2 = %q, want a tilde past the end", rows[2])
	}
}

func TestTabsExpandInView(t *testing.T) {
	m := newTestModel(t, 20, 4, editor.Options{}, "\tx", "ab\tc")
	rows := screen(m)
	if got, want := strings.TrimRight(rows[0], " "), "    x"; got != want {
		t.Errorf("row 0 = %q, want %q", got, want)
	}
	if got, want := strings.TrimRight(rows[1], " "), "ab  c"; got != want {
		t.Errorf("row 1 = %q, want %q", got, want)
	}
}

func TestStatusBar(t *testing.T) {
	m := newTestModel(t, 30, 4, editor.DefaultOptions(), "hello")
	m = press(m, "ll")
	rows := screen(m)
	status := rows[len(rows)-2]
	if !strings.HasPrefix(status, " Normal  [No Name]") {
		t.Errorf("status = %q, want mode and title on the left", status)
	}
	if !strings.HasSuffix(status, "1:3 ") {
		t.Errorf("status = %q, want position 1:3 on the right", status)
	}

	m = press(m, "ix")
	status = screen(m)[2]
	if !strings.HasPrefix(status, " Insert  [No Name] *") {
		t.Errorf("status = %q, want Insert mode and a modified title", status)
	}
}

func TestPromptLine(t *testing.T) {
	m := newTestModel(t, 20, 4, editor.DefaultOptions(), "hello")
	m = press(m, ";set")
	rows := screen(m)
	if got, want := rows[3], ";set"+strings.Repeat(" ", 16); got != want {
		t.Errorf("prompt row = %q, want %q", got, want)
	}
}

func TestMessageLine(t *testing.T) {
	m := newTestModel(t, 30, 4, editor.DefaultOptions(), "hello")
	rows := screen(m)
	if got, want := rows[3], editor.WelcomeMessage+strings.Repeat(" ", 30-len(editor.WelcomeMessage)); got != want {
		t.Errorf("message row = %q, want %q", got, want)
	}
}

func TestPlaceCursors(t *testing.T) {
	cur := lipgloss.NewStyle()
	tests := []struct {
		name    string
		text    string
		cursors []cell
		want    string
	}{
		{"none", "abc", nil, "abc"},
		{"start", "abc", []cell{{0, cur}}, "abc"},
		{"end of line", "abc", []cell{{3, cur}}, "abc "},
		{"empty line", "", []cell{{0, cur}}, " "},
		{"several", "abcdef", []cell{{4, cur}, {1, cur}}, "abcdef"},
		{"same cell", "abc", []cell{{1, cur}, {1, cur}}, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(placeCursors(tt.text, tt.text, tt.cursors))
			if got != tt.want {
				t.Errorf("placeCursors(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExpandTabs(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"\thello", 4, "    hello"},
		{"\t\thello", 4, "        hello"},
		{"ab\tc", 4, "ab  c"},
		{"abcd\te", 4, "abcd    e"},
		{"a\tb", 8, "a       b"},
		{"no tabs", 4, "no tabs"},
	}
	for _, tc := range cases {
		if got := expandTabs(tc.in, tc.width); got != tc.want {
			t.Errorf("expandTabs(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestViewHighlightsByLanguage(t *testing.T) {
	m := newTestModel(t, 40, 4, editor.DefaultOptions(), "package main", "func main() {}")
	m.ed.Buffer().Path = "main.go"
	m = resize(m, 40, 4)

	out := m.renderContent()
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[1], "\x1b[") {
		t.Errorf("row 1 has no color: %q", lines[1])
	}
	if got := ansi.Strip(lines[1]); !strings.HasPrefix(got, "func main() {}") {
		t.Errorf("row 1 = %q", got)
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 40 {
			t.Errorf("row %d: width=%d (want 40)", i, w)
		}
	}
}
