package editor

import (
	"github.com/rs/zerolog/log"
)

// delete removes the character under the cursor. At the end of a row it
// joins the next row onto it; at the end of the last row it does nothing
// and reports false.
func (e *Editor) delete() bool {
	b := e.Buffer()
	p := b.Pos()
	switch {
	case p.X < b.lineLen(p.Y):
		b.Text.AtMut(p.Y).Remove(p.X)
		e.markRedraw(redrawLines(p.Y, p.Y+1))
	case p.Y+1 < b.Text.Len():
		next, err := b.Text.RemoveLine(p.Y + 1)
		if err != nil {
			log.Error().Err(err).Int("row", p.Y).Msg("failed to join lines")
			return false
		}
		b.Hint()
		b.Text.AtMut(p.Y).Append(next)
		e.markRedraw(redrawLinesAfter(p.Y))
	default:
		return false
	}
	b.touch()
	return true
}

// backspace deletes the character before the cursor, joining rows at
// column 0. It reports false at the start of the document.
func (e *Editor) backspace() bool {
	b := e.Buffer()
	p := b.Pos()
	switch {
	case p.X > 0:
		b.Goto(Pos{p.X - 1, p.Y})
	case p.Y > 0:
		b.Goto(Pos{b.lineLen(p.Y - 1), p.Y - 1})
	default:
		e.setStatus("Can't delete file start")
		return false
	}
	e.delete()
	return true
}

// replaceUnderCursor swaps the character under the cursor for r. An empty
// row gets r inserted.
func (e *Editor) replaceUnderCursor(r rune) {
	b := e.Buffer()
	p := b.Bound(b.Pos(), true)
	l := b.Text.AtMut(p.Y)
	if l.Len() == 0 {
		l.Insert(0, r)
	} else {
		l.Set(p.X, r)
	}
	b.touch()
	b.Goto(p)
	e.markRedraw(redrawLines(p.Y, p.Y+1))
}
