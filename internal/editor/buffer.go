package editor

import (
	"iter"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/xonecas/natrium/internal/text"
)

// Buffer is one open document with its cursors and view state.
type Buffer struct {
	Text    *text.SplitBuffer
	Cursors []Cursor
	Current int

	ScrollX, ScrollY int

	Title     string // empty when untitled
	Path      string // file the buffer was read from or written to
	Transient bool   // generated view, dropped when left

	saved    string // fingerprint at the last open or write
	changed  bool   // text touched since modified was computed
	modified bool
}

// NewBuffer wraps t in a buffer with a single cursor at the origin.
func NewBuffer(t *text.SplitBuffer) *Buffer {
	return &Buffer{
		Text:    t,
		Cursors: []Cursor{{}},
		saved:   t.Fingerprint(),
	}
}

// Cursor returns the current cursor.
func (b *Buffer) Cursor() *Cursor { return &b.Cursors[b.Current] }

// Modified reports whether the text differs from what was last read or
// written.
func (b *Buffer) Modified() bool {
	if b.changed {
		b.modified = b.Text.Fingerprint() != b.saved
		b.changed = false
	}
	return b.modified
}

// MarkSaved records the current text as the saved content.
func (b *Buffer) MarkSaved() {
	b.saved = b.Text.Fingerprint()
	b.changed = false
	b.modified = false
}

func (b *Buffer) touch() { b.changed = true }

// DisplayTitle is the title shown to the user.
func (b *Buffer) DisplayTitle() string {
	if b.Title == "" {
		return "[No Name]"
	}
	return b.Title
}

// blank reports whether b is an untouched scratch buffer.
func (b *Buffer) blank() bool {
	if b.Transient || b.Path != "" || b.Text.Len() != 1 {
		return false
	}
	return b.Text.At(0).Len() == 0
}

// Hint moves the text focus to the cursor.
func (b *Buffer) Hint() {
	p := b.Pos()
	if err := b.Text.FocusHintY(p.Y); err != nil {
		log.Warn().Err(err).Int("row", p.Y).Msg("failed to move focus")
	}
	b.Text.FocusHintX(p.X)
}

// Goto places the current cursor at p and relocates the focus.
func (b *Buffer) Goto(p Pos) {
	c := b.Cursor()
	c.X, c.Y = p.X, p.Y
	b.Hint()
}

// BufferManager owns the open buffers and tracks the current one. It always
// holds at least one buffer.
type BufferManager struct {
	buffers []*Buffer
	current int
}

// NewBufferManager returns a manager holding one empty buffer.
func NewBufferManager() *BufferManager {
	return &BufferManager{buffers: []*Buffer{NewBuffer(text.New())}}
}

// Add appends b and returns its index.
func (m *BufferManager) Add(b *Buffer) int {
	m.buffers = append(m.buffers, b)
	return len(m.buffers) - 1
}

// SwitchTo makes buffer n current. A transient buffer being left is
// deleted, shifting n down if it came after it.
func (m *BufferManager) SwitchTo(n int) {
	if n < 0 || n >= len(m.buffers) {
		return
	}
	if cur := m.current; cur != n && m.buffers[cur].Transient {
		m.buffers = slices.Delete(m.buffers, cur, cur+1)
		if n > cur {
			n--
		}
	}
	m.current = n
}

// Delete removes buffer n. Removing the last buffer leaves a fresh empty
// one in its place.
func (m *BufferManager) Delete(n int) {
	if n < 0 || n >= len(m.buffers) {
		return
	}
	m.buffers = slices.Delete(m.buffers, n, n+1)
	if len(m.buffers) == 0 {
		m.buffers = append(m.buffers, NewBuffer(text.New()))
		m.current = 0
		return
	}
	if n <= m.current && m.current > 0 {
		m.current--
	}
}

// IsValid reports whether n addresses a buffer the user can see. Transient
// buffers are not counted.
func (m *BufferManager) IsValid(n int) bool {
	count := 0
	for _, b := range m.buffers {
		if !b.Transient {
			count++
		}
	}
	return n >= 0 && n < count
}

// Current returns the current buffer.
func (m *BufferManager) Current() *Buffer { return m.buffers[m.current] }

// CurrentIndex returns the index of the current buffer.
func (m *BufferManager) CurrentIndex() int { return m.current }

// Len returns the number of buffers.
func (m *BufferManager) Len() int { return len(m.buffers) }

// At returns buffer n.
func (m *BufferManager) At(n int) *Buffer { return m.buffers[n] }

// All yields every buffer with its index.
func (m *BufferManager) All() iter.Seq2[int, *Buffer] {
	return slices.All(m.buffers)
}
