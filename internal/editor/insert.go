package editor

import (
	"github.com/rs/zerolog/log"

	"github.com/xonecas/natrium/internal/text"
)

// indentFor returns the autoindent for a line following row y.
func (e *Editor) indentFor(y int) text.Line {
	if !e.Options.AutoIndent {
		return text.Line{}
	}
	return e.Buffer().Text.Indent(y)
}

// insertChar inserts r at the cursor and moves past it.
func (e *Editor) insertChar(r rune) {
	b := e.Buffer()
	p := b.Pos()
	b.Text.AtMut(p.Y).Insert(p.X, r)
	b.touch()
	b.Goto(b.Right(1, false))
	e.markRedraw(redrawLines(p.Y, p.Y+1))
}

// insertNewline splits the cursor row. The tail, behind the autoindent,
// becomes a new row below and the cursor lands after the indent.
func (e *Editor) insertNewline() {
	b := e.Buffer()
	p := b.Pos()
	tail := b.Text.AtMut(p.Y).Split(p.X)
	indent := e.indentFor(p.Y)
	if err := b.Text.InsertLine(p.Y+1, text.Concat(indent, tail)); err != nil {
		log.Error().Err(err).Int("row", p.Y).Msg("failed to split line")
		return
	}
	b.touch()
	b.Goto(Pos{indent.Len(), p.Y + 1})
	e.markRedraw(redrawLinesAfter(p.Y))
}

// openLine adds an autoindented row below the cursor and moves to it.
func (e *Editor) openLine() {
	b := e.Buffer()
	y := b.Y()
	indent := e.indentFor(y)
	if err := b.Text.InsertLine(y+1, indent); err != nil {
		log.Error().Err(err).Int("row", y).Msg("failed to open line")
		return
	}
	b.touch()
	b.Goto(Pos{indent.Len(), y + 1})
	e.markRedraw(redrawLinesAfter(y))
}

// replaceChar overwrites the character at the cursor in Replace mode. At
// the end of a row it continues on the next character of the document;
// at the end of the document it does nothing.
func (e *Editor) replaceChar(r rune) {
	b := e.Buffer()
	p := b.Pos()
	if p.X >= b.lineLen(p.Y) {
		q, ok := b.After(0, p)
		if !ok {
			return
		}
		p = q
		b.Goto(p)
	}
	b.Text.AtMut(p.Y).Set(p.X, r)
	b.touch()
	if q, ok := b.After(1, p); ok {
		b.Goto(q)
	} else {
		b.Goto(Pos{p.X + 1, p.Y})
	}
	e.markRedraw(redrawLines(p.Y, b.Y()+1))
}
