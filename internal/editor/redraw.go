package editor

// RedrawKind says how much of the screen an instruction invalidated.
type RedrawKind int

const (
	RedrawNone RedrawKind = iota
	RedrawLines
	RedrawLinesAfter
	RedrawFull
	RedrawStatusBar
	RedrawCursor
)

// RedrawTask is the narrowest redraw covering everything since it was last
// taken. Lines
// uses the row range [From, To); LinesAfter uses From; Cursor uses Old and
// New.
type RedrawTask struct {
	Kind     RedrawKind
	From, To int
	Old, New Pos
}

func redrawLines(from, to int) RedrawTask {
	return RedrawTask{Kind: RedrawLines, From: from, To: to}
}

func redrawLinesAfter(row int) RedrawTask {
	return RedrawTask{Kind: RedrawLinesAfter, From: row}
}

func redrawCursor(old, new Pos) RedrawTask {
	return RedrawTask{Kind: RedrawCursor, Old: old, New: new}
}

var (
	redrawFull      = RedrawTask{Kind: RedrawFull}
	redrawStatusBar = RedrawTask{Kind: RedrawStatusBar}
)

// Redraw returns the pending redraw task.
func (e *Editor) Redraw() RedrawTask { return e.redraw }

// TakeRedraw returns the pending redraw task and clears it.
func (e *Editor) TakeRedraw() RedrawTask {
	t := e.redraw
	e.redraw = RedrawTask{}
	return t
}

// markRedraw widens the pending task to also cover t.
func (e *Editor) markRedraw(t RedrawTask) { e.redraw = e.redraw.merge(t) }

func (a RedrawTask) merge(b RedrawTask) RedrawTask {
	switch {
	case a.Kind == RedrawNone || a.Kind == RedrawStatusBar:
		if b.Kind == RedrawNone {
			return a
		}
		return b
	case b.Kind == RedrawNone || b.Kind == RedrawStatusBar:
		return a
	case a.Kind == RedrawFull || b.Kind == RedrawFull:
		return redrawFull
	case a.Kind == RedrawCursor && b.Kind == RedrawCursor && a.New == b.Old:
		return redrawCursor(a.Old, b.New)
	}
	af, at, aOpen := a.rows()
	bf, bt, bOpen := b.rows()
	if aOpen || bOpen {
		return redrawLinesAfter(min(af, bf))
	}
	return redrawLines(min(af, bf), max(at, bt))
}

// rows returns the row range a task touches. open means every row from
// from onwards.
func (t RedrawTask) rows() (from, to int, open bool) {
	switch t.Kind {
	case RedrawLinesAfter:
		return t.From, 0, true
	case RedrawCursor:
		return min(t.Old.Y, t.New.Y), max(t.Old.Y, t.New.Y) + 1, false
	}
	return t.From, t.To, false
}
