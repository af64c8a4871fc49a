package editor

import (
	"slices"
	"testing"

	"github.com/xonecas/natrium/internal/text"
)

func titled(title string, transient bool) *Buffer {
	b := NewBuffer(text.New())
	b.Title = title
	b.Transient = transient
	return b
}

func titles(m *BufferManager) []string {
	var out []string
	for _, b := range m.All() {
		out = append(out, b.DisplayTitle())
	}
	return out
}

func TestBufferManagerDelete(t *testing.T) {
	tests := []struct {
		name    string
		current int
		del     int
		want    []string
		wantCur int
	}{
		{"before current", 2, 0, []string{"b", "c"}, 1},
		{"current in middle", 1, 1, []string{"a", "c"}, 0},
		{"current at start", 0, 0, []string{"b", "c"}, 0},
		{"after current", 0, 2, []string{"a", "b"}, 0},
		{"out of range", 1, 7, []string{"a", "b", "c"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &BufferManager{buffers: []*Buffer{titled("a", false), titled("b", false), titled("c", false)}}
			m.SwitchTo(tt.current)
			m.Delete(tt.del)
			if got := titles(m); !slices.Equal(got, tt.want) {
				t.Errorf("buffers = %v, want %v", got, tt.want)
			}
			if m.CurrentIndex() != tt.wantCur {
				t.Errorf("current = %d, want %d", m.CurrentIndex(), tt.wantCur)
			}
		})
	}
}

func TestBufferManagerDeleteLast(t *testing.T) {
	m := NewBufferManager()
	m.Current().Title = "old"
	m.Delete(0)
	if m.Len() != 1 || m.Current().Title != "" {
		t.Fatalf("expected a fresh buffer, got %v", titles(m))
	}
	if got := m.Current().Text.Strings(); len(got) != 1 || got[0] != "" {
		t.Errorf("fresh buffer text = %q", got)
	}
}

func TestBufferManagerSwitchDropsTransient(t *testing.T) {
	m := &BufferManager{buffers: []*Buffer{titled("a", false)}}
	m.Add(titled("b", false))
	help := m.Add(titled("<Help>", true))
	m.SwitchTo(help)
	if m.IsValid(2) {
		t.Error("transient buffer counted as valid")
	}
	m.SwitchTo(1)
	if got := titles(m); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("buffers = %v", got)
	}
	if m.Current().Title != "b" {
		t.Errorf("current = %q", m.Current().Title)
	}

	// A transient buffer before the target shifts the target down.
	m = &BufferManager{buffers: []*Buffer{titled("<Help>", true), titled("a", false)}}
	m.SwitchTo(1)
	if m.Len() != 1 || m.Current().Title != "a" {
		t.Errorf("buffers = %v, current %q", titles(m), m.Current().Title)
	}
}

func TestBufferManagerIsValid(t *testing.T) {
	m := NewBufferManager()
	m.Add(titled("x", false))
	for n, want := range map[int]bool{-1: false, 0: true, 1: true, 2: false} {
		if got := m.IsValid(n); got != want {
			t.Errorf("IsValid(%d) = %t, want %t", n, got, want)
		}
	}
}

func TestBranchAndKillCursor(t *testing.T) {
	b := newTestBuffer("abc")
	b.Goto(Pos{2, 0})
	if !b.BranchCursor() {
		t.Fatal("BranchCursor failed")
	}
	if len(b.Cursors) != 2 || b.Current != 1 {
		t.Fatalf("cursors = %d, current = %d", len(b.Cursors), b.Current)
	}
	if b.Cursor().Pos() != (Pos{2, 0}) {
		t.Errorf("branched cursor at %v", b.Cursor().Pos())
	}
	b.NextCursor()
	if b.Current != 0 {
		t.Errorf("NextCursor did not wrap: %d", b.Current)
	}
	b.PrevCursor()
	if b.Current != 1 {
		t.Errorf("PrevCursor did not wrap: %d", b.Current)
	}
	if !b.KillCursor() || len(b.Cursors) != 1 || b.Current != 0 {
		t.Errorf("KillCursor left %d cursors, current %d", len(b.Cursors), b.Current)
	}
	if b.KillCursor() {
		t.Error("killed the last cursor")
	}
}

func TestBranchCursorCap(t *testing.T) {
	b := newTestBuffer("")
	for range MaxCursors - 1 {
		if !b.BranchCursor() {
			t.Fatalf("BranchCursor failed at %d cursors", len(b.Cursors))
		}
	}
	if b.BranchCursor() {
		t.Error("branched past the cap")
	}
	if len(b.Cursors) != MaxCursors {
		t.Errorf("cursors = %d", len(b.Cursors))
	}
}

func TestBufferModified(t *testing.T) {
	e := newTestEditor(t, "abc")
	b := e.Buffer()
	if b.Modified() {
		t.Fatal("fresh buffer is modified")
	}
	typeKeys(e, "x")
	if !b.Modified() {
		t.Fatal("edit did not mark the buffer")
	}
	b.MarkSaved()
	if b.Modified() {
		t.Error("MarkSaved did not clear the flag")
	}
	typeKeys(e, "lll")
	if b.Modified() {
		t.Error("movement marked the buffer")
	}
}
