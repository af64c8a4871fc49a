package text

import "fmt"

// Line is one row of text as a sequence of Unicode scalar values.
//
// Edits shift whichever side of the edit point is shorter, so inserting or
// removing near either end of a long line stays cheap. Line values share
// their backing storage; use Clone before keeping a copy across edits.
type Line struct {
	buf  []rune
	head int // live runes are buf[head:]
}

// NewLine returns a line holding s.
func NewLine(s string) Line {
	return Line{buf: []rune(s)}
}

// LineFromRunes returns a line holding a copy of r.
func LineFromRunes(r []rune) Line {
	buf := make([]rune, len(r))
	copy(buf, r)
	return Line{buf: buf}
}

// Len returns the number of runes in the line.
func (l Line) Len() int { return len(l.buf) - l.head }

// Runes returns the live runes. The slice aliases the line and must not be
// modified or kept across edits.
func (l Line) Runes() []rune { return l.buf[l.head:] }

func (l Line) String() string { return string(l.Runes()) }

// At returns the rune at index i. It panics if i is out of range.
func (l Line) At(i int) rune {
	l.check(i, l.Len()-1)
	return l.buf[l.head+i]
}

// Clone returns a line with its own storage.
func (l Line) Clone() Line { return LineFromRunes(l.Runes()) }

// Indent returns the leading run of spaces and tabs.
func (l Line) Indent() Line {
	rs := l.Runes()
	n := 0
	for n < len(rs) && (rs[n] == ' ' || rs[n] == '\t') {
		n++
	}
	return LineFromRunes(rs[:n])
}

// Index returns the column of the first r at or after from, or -1.
func (l Line) Index(r rune, from int) int {
	rs := l.Runes()
	for i := max(from, 0); i < len(rs); i++ {
		if rs[i] == r {
			return i
		}
	}
	return -1
}

// Insert places r at column i, shifting the shorter side of the line.
func (l *Line) Insert(i int, r rune) {
	n := l.Len()
	l.check(i, n)
	if i < n/2 {
		if l.head == 0 {
			l.reserve()
		}
		copy(l.buf[l.head-1:], l.buf[l.head:l.head+i])
		l.head--
		l.buf[l.head+i] = r
		return
	}
	l.buf = append(l.buf, 0)
	copy(l.buf[l.head+i+1:], l.buf[l.head+i:])
	l.buf[l.head+i] = r
}

// Remove deletes and returns the rune at column i.
func (l *Line) Remove(i int) rune {
	n := l.Len()
	l.check(i, n-1)
	r := l.buf[l.head+i]
	if i < n/2 {
		copy(l.buf[l.head+1:], l.buf[l.head:l.head+i])
		l.head++
		return r
	}
	copy(l.buf[l.head+i:], l.buf[l.head+i+1:])
	l.buf = l.buf[:len(l.buf)-1]
	return r
}

// Set overwrites the rune at column i.
func (l *Line) Set(i int, r rune) {
	l.check(i, l.Len()-1)
	l.buf[l.head+i] = r
}

// Drain removes the half-open column range [from, to).
func (l *Line) Drain(from, to int) {
	n := l.Len()
	l.check(from, n)
	l.check(to, n)
	if from >= to {
		return
	}
	copy(l.buf[l.head+from:], l.buf[l.head+to:])
	l.buf = l.buf[:len(l.buf)-(to-from)]
}

// Split truncates the line at column i and returns the removed tail.
func (l *Line) Split(i int) Line {
	l.check(i, l.Len())
	tail := LineFromRunes(l.buf[l.head+i:])
	l.buf = l.buf[:l.head+i]
	return tail
}

// Append adds the runes of o to the end of the line.
func (l *Line) Append(o Line) {
	l.buf = append(l.buf, o.Runes()...)
}

// Clear empties the line, keeping its storage.
func (l *Line) Clear() {
	l.buf = l.buf[:0]
	l.head = 0
}

// Concat returns a new line holding a followed by b.
func Concat(a, b Line) Line {
	buf := make([]rune, 0, a.Len()+b.Len())
	buf = append(buf, a.Runes()...)
	buf = append(buf, b.Runes()...)
	return Line{buf: buf}
}

// reserve opens front headroom proportional to the line length.
func (l *Line) reserve() {
	n := l.Len()
	room := max(8, n/2)
	buf := make([]rune, room+n, room+n+max(8, n/2))
	copy(buf[room:], l.buf[l.head:])
	l.buf = buf
	l.head = room
}

func (l Line) check(i, hi int) {
	if i < 0 || i > hi {
		panic(fmt.Sprintf("text: column %d out of range [0,%d]", i, hi))
	}
}
