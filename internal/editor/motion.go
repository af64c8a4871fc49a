package editor

import (
	"github.com/rs/zerolog/log"

	"github.com/xonecas/natrium/internal/input"
)

// motion resolves in to a target position and hands it to then. Bounded
// targets are safe cursor positions; unbounded ones may leave the document
// and are used to size ranges. Motions that need more input (g, t, f)
// suspend until it arrives. An undefined motion reports a status and then
// is never called.
func (e *Editor) motion(in input.Instruction, unbounded bool, then func(Pos)) {
	e.motionAt(in, unbounded, false, then)
}

func (e *Editor) motionAt(in input.Instruction, unbounded, nested bool, then func(Pos)) {
	b := e.Buffer()
	n := in.Param.D()
	p := b.Pos()
	k := in.Key()

	switch k.Kind {
	case input.KindLeft:
		k = input.Char('h')
	case input.KindRight:
		k = input.Char('l')
	case input.KindUp:
		k = input.Char('k')
	case input.KindDown:
		k = input.Char('j')
	case input.KindChar:
	default:
		e.undefinedMotion(k)
		return
	}

	switch k.Rune {
	case 'h':
		if unbounded {
			then(b.LeftUnbounded(n))
		} else {
			then(b.Left(n))
		}
	case 'l':
		if unbounded {
			then(b.RightUnbounded(n))
		} else {
			then(b.Right(n, true))
		}
	case 'j':
		if unbounded {
			then(b.DownUnbounded(n))
		} else {
			then(b.Down(n))
		}
	case 'k':
		if unbounded {
			then(b.UpUnbounded(n))
		} else {
			then(b.Up(n))
		}
	case 'g':
		if !in.Param.IsSet() && !nested {
			e.awaitInstruction(func(next input.Instruction) {
				e.motionAt(next, unbounded, true, then)
			})
			return
		}
		t := Pos{0, n - 1}
		if !unbounded {
			t = b.BoundVer(t)
		}
		then(t)
	case 'G':
		then(Pos{0, b.Text.Len() - 1})
	case 'H', '0':
		then(Pos{0, p.Y})
	case 'L', '$':
		if unbounded {
			then(Pos{b.lineLen(p.Y), p.Y})
		} else {
			then(Pos{max(b.lineLen(p.Y)-1, 0), p.Y})
		}
	case 'w':
		then(b.NextWord(n, unbounded))
	case 'e':
		then(b.WordEnd(n, unbounded))
	case 't', 'f':
		find := b.NextOccurrence
		if k.Rune == 'f' {
			find = b.PrevOccurrence
		}
		e.awaitChar(func(r rune) {
			if x, ok := find(r, n); ok {
				then(Pos{x, b.Y()})
			}
		})
	default:
		e.undefinedMotion(k)
	}
}

func (e *Editor) undefinedMotion(k input.Key) {
	log.Debug().Str("key", k.String()).Msg("motion not defined")
	e.setStatusf("Motion not defined: '%s'", k)
}

// moveTo places the cursor at p and records a cursor redraw.
func (e *Editor) moveTo(p Pos) {
	b := e.Buffer()
	old := b.Pos()
	b.Goto(p)
	e.markRedraw(redrawCursor(old, b.Pos()))
}
