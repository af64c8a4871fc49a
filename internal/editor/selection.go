package editor

import (
	"github.com/rs/zerolog/log"
)

// removeRange erases from the cursor to target. On the cursor row the
// half-open column range between the two is removed; otherwise every row
// between them, inclusive, goes.
func (e *Editor) removeRange(target Pos) {
	b := e.Buffer()
	p := b.Pos()
	if target.Y == p.Y {
		t := b.Bound(target, false)
		from, to := min(p.X, t.X), max(p.X, t.X)
		b.Text.AtMut(p.Y).Drain(from, to)
		if from != to {
			b.touch()
		}
		b.Goto(b.Bound(Pos{from, p.Y}, false))
		e.markRedraw(redrawLines(p.Y, p.Y+1))
		return
	}
	t := b.Bound(target, true)
	e.removeLines(min(p.Y, t.Y), max(p.Y, t.Y))
}

// removeLines erases rows from through to inclusive. The buffer keeps at
// least one row: when every row goes, the first is cleared instead.
func (e *Editor) removeLines(from, to int) {
	b := e.Buffer()
	x := b.Cursor().X
	for y := to; y >= from; y-- {
		if b.Text.Len() == 1 {
			if err := b.Text.FocusHintY(0); err != nil {
				log.Error().Err(err).Msg("failed to move focus")
			}
			b.Text.AtMut(0).Clear()
			break
		}
		if _, err := b.Text.RemoveLine(y); err != nil {
			log.Error().Err(err).Int("row", y).Msg("failed to remove line")
			return
		}
	}
	b.touch()
	b.Goto(b.Bound(Pos{x, from}, true))
	e.markRedraw(redrawLinesAfter(from))
}
