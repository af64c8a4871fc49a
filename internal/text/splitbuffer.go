// Package text provides the line store behind every editor buffer.
//
// A SplitBuffer keeps its lines in two stacks around a focus row. Rows up to
// and including the focus live in before, in order; rows past the focus live
// in after, reversed, so the row next to the focus is the tail of after.
// Splicing at the focus is a push or pop. Moving the focus costs one transfer
// per row crossed, which matches cursor-driven editing where nearly every
// access happens next to the cursor.
package text

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

var (
	// ErrOutOfBounds is returned for a row index past the end of the buffer.
	ErrOutOfBounds = errors.New("out of bound")
	// ErrLastLine is returned when removing the only remaining row.
	ErrLastLine = errors.New("cannot remove the only line")
)

// SplitBuffer is an ordered, never-empty sequence of lines.
type SplitBuffer struct {
	before []Line // rows 0..focus, focus last
	after  []Line // rows focus+1..len-1, reversed
	hinted bool   // a focus hint was given since the last structural edit
}

// New returns a buffer holding one empty line.
func New() *SplitBuffer {
	return &SplitBuffer{before: []Line{{}}, hinted: true}
}

// FromLines returns a buffer holding lines with the focus at row 0. An
// empty slice yields a single empty line.
func FromLines(lines []Line) *SplitBuffer {
	if len(lines) == 0 {
		return New()
	}
	after := make([]Line, 0, len(lines)-1)
	for i := len(lines) - 1; i >= 1; i-- {
		after = append(after, lines[i])
	}
	return &SplitBuffer{before: []Line{lines[0]}, after: after, hinted: true}
}

// FromStrings is FromLines over plain strings.
func FromStrings(ss []string) *SplitBuffer {
	lines := make([]Line, len(ss))
	for i, s := range ss {
		lines[i] = NewLine(s)
	}
	return FromLines(lines)
}

// Len returns the number of rows.
func (b *SplitBuffer) Len() int { return len(b.before) + len(b.after) }

// Focus returns the current focus row.
func (b *SplitBuffer) Focus() int { return len(b.before) - 1 }

func (b *SplitBuffer) slot(n int) *Line {
	if n < len(b.before) {
		return &b.before[n]
	}
	return &b.after[b.Len()-1-n]
}

// Line returns row n, or false if n is out of range.
func (b *SplitBuffer) Line(n int) (Line, bool) {
	if n < 0 || n >= b.Len() {
		return Line{}, false
	}
	return *b.slot(n), true
}

// LineMut returns a pointer to row n, or false if n is out of range. The
// pointer is valid until the next structural edit or focus hint.
func (b *SplitBuffer) LineMut(n int) (*Line, bool) {
	if n < 0 || n >= b.Len() {
		return nil, false
	}
	b.checkFocus(n)
	return b.slot(n), true
}

// At returns row n. Asking for a row out of range is a caller bug and panics.
func (b *SplitBuffer) At(n int) Line {
	l, ok := b.Line(n)
	if !ok {
		panic(fmt.Sprintf("text: row %d out of range [0,%d)", n, b.Len()))
	}
	return l
}

// AtMut is LineMut for callers that have already bounded n.
func (b *SplitBuffer) AtMut(n int) *Line {
	l, ok := b.LineMut(n)
	if !ok {
		panic(fmt.Sprintf("text: row %d out of range [0,%d)", n, b.Len()))
	}
	return l
}

// InsertLine inserts l so that it becomes row n. n == Len() appends.
func (b *SplitBuffer) InsertLine(n int, l Line) error {
	if n < 0 || n > b.Len() {
		return fmt.Errorf("insert row %d of %d: %w", n, b.Len(), ErrOutOfBounds)
	}
	if n < len(b.before) {
		b.before = slices.Insert(b.before, n, l)
	} else {
		b.after = slices.Insert(b.after, b.Len()-n, l)
	}
	b.hinted = false
	return nil
}

// RemoveLine removes and returns row n. The last remaining row cannot be
// removed; callers clear it instead.
func (b *SplitBuffer) RemoveLine(n int) (Line, error) {
	if n < 0 || n >= b.Len() {
		return Line{}, fmt.Errorf("remove row %d of %d: %w", n, b.Len(), ErrOutOfBounds)
	}
	if b.Len() == 1 {
		return Line{}, ErrLastLine
	}
	var l Line
	if n < len(b.before) {
		l = b.before[n]
		b.before = slices.Delete(b.before, n, n+1)
		if len(b.before) == 0 {
			last := len(b.after) - 1
			b.before = append(b.before, b.after[last])
			b.after = b.after[:last]
		}
	} else {
		i := b.Len() - 1 - n
		l = b.after[i]
		b.after = slices.Delete(b.after, i, i+1)
	}
	b.hinted = false
	return l, nil
}

// FocusHintY moves the focus to row y, one row transfer at a time. Stale
// focus never changes answers, only their cost.
func (b *SplitBuffer) FocusHintY(y int) error {
	focus := b.Focus()
	if (y < 0 || y >= b.Len()) && y != focus {
		return fmt.Errorf("focus row %d of %d: %w", y, b.Len(), ErrOutOfBounds)
	}
	for i := min(focus-y, len(b.before)-1); i > 0; i-- {
		last := len(b.before) - 1
		b.after = append(b.after, b.before[last])
		b.before = b.before[:last]
	}
	for i := min(y-focus, len(b.after)); i > 0; i-- {
		last := len(b.after) - 1
		b.before = append(b.before, b.after[last])
		b.after = b.after[:last]
	}
	b.hinted = true
	return nil
}

// FocusHintX is reserved for column locality. Callers issue it alongside
// FocusHintY on every cursor move.
func (b *SplitBuffer) FocusHintX(int) {}

// Indent returns the leading whitespace of row n, or an empty line when n
// is out of range.
func (b *SplitBuffer) Indent(n int) Line {
	l, ok := b.Line(n)
	if !ok {
		return Line{}
	}
	return l.Indent()
}

// Lines yields every row in order. The sequence can be ranged over any
// number of times.
func (b *SplitBuffer) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for _, l := range b.before {
			if !yield(l) {
				return
			}
		}
		for i := len(b.after) - 1; i >= 0; i-- {
			if !yield(b.after[i]) {
				return
			}
		}
	}
}

// Rows yields row numbers with their lines, starting at row from.
func (b *SplitBuffer) Rows(from int) iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		for n := max(from, 0); n < b.Len(); n++ {
			if !yield(n, *b.slot(n)) {
				return
			}
		}
	}
}

// Strings returns a copy of every row as a string.
func (b *SplitBuffer) Strings() []string {
	out := make([]string, 0, b.Len())
	for l := range b.Lines() {
		out = append(out, l.String())
	}
	return out
}

// String joins the rows with newlines.
func (b *SplitBuffer) String() string {
	return strings.Join(b.Strings(), "\n")
}

// Fingerprint returns a content hash of the rows, used to tell whether a
// buffer changed since it was last read or written.
func (b *SplitBuffer) Fingerprint() string {
	h := sha256.New()
	for l := range b.Lines() {
		h.Write([]byte(l.String()))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
