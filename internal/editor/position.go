package editor

func (b *Buffer) lineLen(y int) int {
	l, ok := b.Text.Line(y)
	if !ok {
		return 0
	}
	return l.Len()
}

func (b *Buffer) clampY(y int) int {
	return min(max(y, 0), b.Text.Len()-1)
}

// Bound clamps p into the document. A tight bound keeps x on a character;
// a loose one also allows the append slot one past the end of the line.
// An empty line bounds x to 0 either way.
func (b *Buffer) Bound(p Pos, tight bool) Pos {
	y := b.clampY(p.Y)
	ln := b.lineLen(y)
	if !tight {
		ln++
	}
	x := max(p.X, 0)
	if x >= ln {
		x = max(ln-1, 0)
	}
	return Pos{x, y}
}

// BoundHor clamps only the column of p.
func (b *Buffer) BoundHor(p Pos, tight bool) Pos {
	return Pos{b.Bound(p, tight).X, p.Y}
}

// BoundVer clamps only the row of p.
func (b *Buffer) BoundVer(p Pos) Pos {
	return Pos{p.X, b.clampY(p.Y)}
}

// Pos returns the current cursor position, loosely bounded.
func (b *Buffer) Pos() Pos { return b.Bound(b.Cursor().Pos(), false) }

// X returns the bounded cursor column.
func (b *Buffer) X() int { return b.Pos().X }

// Y returns the bounded cursor row.
func (b *Buffer) Y() int { return b.Pos().Y }

// After returns the position n characters after p, reading the document as
// one stream with lines joined and no separator counted. It reports false
// past the end of the document.
func (b *Buffer) After(n int, p Pos) (Pos, bool) {
	ln := b.lineLen(p.Y)
	if p.X+n < ln {
		return Pos{p.X + n, p.Y}, true
	}
	mv := p.X + n - ln
	for y := p.Y + 1; y < b.Text.Len(); y++ {
		ln = b.lineLen(y)
		if mv < ln {
			return Pos{mv, y}, true
		}
		mv -= ln
	}
	return Pos{}, false
}

// Before is the inverse of After. It reports false before the start of the
// document.
func (b *Buffer) Before(n int, p Pos) (Pos, bool) {
	if p.X >= n {
		return Pos{p.X - n, p.Y}, true
	}
	mv := n - p.X
	for y := p.Y - 1; y >= 0; y-- {
		ln := b.lineLen(y)
		if mv <= ln {
			return Pos{ln - mv, y}, true
		}
		mv -= ln
	}
	return Pos{}, false
}

// Next returns the position n characters after the cursor.
func (b *Buffer) Next(n int) (Pos, bool) { return b.After(n, b.Pos()) }

// Previous returns the position n characters before the cursor.
func (b *Buffer) Previous(n int) (Pos, bool) { return b.Before(n, b.Pos()) }
