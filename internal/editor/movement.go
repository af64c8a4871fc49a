package editor

import "unicode"

// Left returns the cursor moved n columns left, stopping at column 0.
func (b *Buffer) Left(n int) Pos {
	p := b.Pos()
	return Pos{max(p.X-n, 0), p.Y}
}

// LeftUnbounded is Left without the clamp.
func (b *Buffer) LeftUnbounded(n int) Pos {
	p := b.Pos()
	return Pos{p.X - n, p.Y}
}

// Right returns the cursor moved n columns right, bounded to the line.
func (b *Buffer) Right(n int, tight bool) Pos {
	p := b.Pos()
	return b.BoundHor(Pos{p.X + n, p.Y}, tight)
}

// RightUnbounded is Right without the clamp.
func (b *Buffer) RightUnbounded(n int) Pos {
	p := b.Pos()
	return Pos{p.X + n, p.Y}
}

// Up returns the cursor moved n rows up, stopping at row 0. The raw column
// is kept so vertical moves remember it across short lines.
func (b *Buffer) Up(n int) Pos {
	c := b.Cursor()
	return Pos{c.X, max(b.Y()-n, 0)}
}

// UpUnbounded is Up without the clamp.
func (b *Buffer) UpUnbounded(n int) Pos {
	p := b.Pos()
	return Pos{p.X, p.Y - n}
}

// Down returns the cursor moved n rows down, bounded to the last row.
func (b *Buffer) Down(n int) Pos {
	c := b.Cursor()
	return b.BoundVer(Pos{c.X, b.Y() + n})
}

// DownUnbounded is Down without the clamp.
func (b *Buffer) DownUnbounded(n int) Pos {
	p := b.Pos()
	return Pos{p.X, p.Y + n}
}

// NextOccurrence returns the column of the n-th r strictly after the
// cursor on the cursor row.
func (b *Buffer) NextOccurrence(r rune, n int) (int, bool) {
	p := b.Pos()
	rs := b.Text.At(p.Y).Runes()
	for x := p.X + 1; x < len(rs); x++ {
		if rs[x] == r {
			if n--; n <= 0 {
				return x, true
			}
		}
	}
	return 0, false
}

// PrevOccurrence returns the column of the n-th r strictly before the
// cursor on the cursor row.
func (b *Buffer) PrevOccurrence(r rune, n int) (int, bool) {
	p := b.Pos()
	rs := b.Text.At(p.Y).Runes()
	for x := min(p.X, len(rs)) - 1; x >= 0; x-- {
		if rs[x] == r {
			if n--; n <= 0 {
				return x, true
			}
		}
	}
	return 0, false
}

func wordClass(r rune) int {
	switch {
	case unicode.IsSpace(r):
		return 0
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return 1
	}
	return 2
}

// NextWord returns the start of the n-th next word. The unbounded form
// stays on the cursor row, ending one past its last character.
func (b *Buffer) NextWord(n int, unbounded bool) Pos {
	start := b.Pos()
	p := start
	for range n {
		q, ok := b.wordStartAfter(p)
		if !ok {
			if unbounded {
				return Pos{b.lineLen(start.Y), start.Y}
			}
			break
		}
		p = q
	}
	if unbounded && p.Y != start.Y {
		return Pos{b.lineLen(start.Y), start.Y}
	}
	return p
}

// WordEnd returns the last character of the n-th following word. The
// unbounded form points one past it so range removal includes it.
func (b *Buffer) WordEnd(n int, unbounded bool) Pos {
	start := b.Pos()
	p := start
	for range n {
		q, ok := b.wordEndAfter(p)
		if !ok {
			break
		}
		p = q
	}
	if !unbounded {
		return p
	}
	if p.Y != start.Y {
		return Pos{b.lineLen(start.Y), start.Y}
	}
	if p == start {
		return p
	}
	return Pos{p.X + 1, p.Y}
}

func (b *Buffer) wordStartAfter(p Pos) (Pos, bool) {
	x, y := p.X, p.Y
	rs := b.Text.At(y).Runes()
	if x < len(rs) {
		if c := wordClass(rs[x]); c != 0 {
			for x < len(rs) && wordClass(rs[x]) == c {
				x++
			}
		}
	}
	for {
		for x < len(rs) {
			if wordClass(rs[x]) != 0 {
				return Pos{x, y}, true
			}
			x++
		}
		if y++; y >= b.Text.Len() {
			return Pos{}, false
		}
		x = 0
		rs = b.Text.At(y).Runes()
		if len(rs) == 0 {
			return Pos{0, y}, true
		}
	}
}

func (b *Buffer) wordEndAfter(p Pos) (Pos, bool) {
	x, y := p.X+1, p.Y
	rs := b.Text.At(y).Runes()
	for x >= len(rs) || wordClass(rs[x]) == 0 {
		if x < len(rs) {
			x++
			continue
		}
		if y++; y >= b.Text.Len() {
			return Pos{}, false
		}
		x = 0
		rs = b.Text.At(y).Runes()
	}
	c := wordClass(rs[x])
	for x+1 < len(rs) && wordClass(rs[x+1]) == c {
		x++
	}
	return Pos{x, y}, true
}
