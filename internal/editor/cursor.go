package editor

// Mode is the input mode of a cursor.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeReplace
	ModePrompt
)

// IsInsert reports whether m is Insert or Replace.
func (m Mode) IsInsert() bool { return m == ModeInsert || m == ModeReplace }

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "Insert"
	case ModeReplace:
		return "Replace"
	case ModePrompt:
		return "Prompt"
	}
	return "Normal"
}

// Pos is a column/row pair. Positions produced by unbounded motions may lie
// outside the document.
type Pos struct {
	X, Y int
}

// Cursor is a position with its own mode.
type Cursor struct {
	X, Y int
	Mode Mode
}

// Pos returns the raw cursor position.
func (c Cursor) Pos() Pos { return Pos{c.X, c.Y} }

// MaxCursors caps the cursors of one buffer.
const MaxCursors = 255

// BranchCursor clones the current cursor in place and advances to the next
// slot. It reports false when the buffer already holds MaxCursors.
func (b *Buffer) BranchCursor() bool {
	if len(b.Cursors) >= MaxCursors {
		return false
	}
	c := *b.Cursor()
	b.Cursors = append(b.Cursors, Cursor{})
	copy(b.Cursors[b.Current+1:], b.Cursors[b.Current:])
	b.Cursors[b.Current] = c
	b.NextCursor()
	return true
}

// KillCursor removes the current cursor and moves to the previous one. It
// reports false when only one cursor is left.
func (b *Buffer) KillCursor() bool {
	if len(b.Cursors) <= 1 {
		return false
	}
	b.Cursors = append(b.Cursors[:b.Current], b.Cursors[b.Current+1:]...)
	b.PrevCursor()
	return true
}

// NextCursor advances the current cursor, wrapping around.
func (b *Buffer) NextCursor() {
	b.Current = (b.Current + 1) % len(b.Cursors)
}

// PrevCursor retreats the current cursor, wrapping around.
func (b *Buffer) PrevCursor() {
	b.Current = (b.Current + len(b.Cursors) - 1) % len(b.Cursors)
}
