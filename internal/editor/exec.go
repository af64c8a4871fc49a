package editor

import (
	"github.com/rs/zerolog/log"

	"github.com/xonecas/natrium/internal/input"
)

// Vertical distance of J and K per count.
const bigStep = 15

// exec dispatches one instruction on (mode, key).
func (e *Editor) exec(in input.Instruction) {
	b := e.Buffer()
	cur := b.Cursor()
	k := in.Key()
	mod := in.Cmd.Mod
	shiftSpace := mod.Shift && k.IsChar(' ')

	switch {
	case shiftSpace && cur.Mode == ModePrompt:
		e.pushPrompt()
		cur.Mode = ModeNormal
		e.markRedraw(redrawStatusBar)
	case cur.Mode == ModePrompt && k.Kind == input.KindEscape:
		e.prompt[0] = ""
		e.promptIdx = 0
		cur.Mode = ModeNormal
		e.markRedraw(redrawStatusBar)
	case cur.Mode.IsInsert() && (shiftSpace || k.Kind == input.KindEscape):
		e.moveTo(b.Left(1))
		cur.Mode = ModeNormal
	case shiftSpace:
		cur.Mode = ModeNormal
	case mod.Alt && k.IsChar(' '):
		e.nextCursor()
	case mod.Alt:
		e.motion(in, false, e.moveTo)
	case cur.Mode == ModeNormal:
		e.normal(in)
	case cur.Mode.IsInsert():
		e.insertMode(in)
	case cur.Mode == ModePrompt:
		e.promptMode(in)
	default:
		e.setStatus("Unknown command")
	}
}

// ---------------------------------------------------------------------------
// Normal mode
// ---------------------------------------------------------------------------

func (e *Editor) normal(in input.Instruction) {
	k := in.Key()
	switch k.Kind {
	case input.KindLeft, input.KindRight, input.KindUp, input.KindDown:
		e.motion(in, false, e.moveTo)
		return
	case input.KindEscape:
		e.setStatus("")
		return
	case input.KindChar:
		if h, ok := e.commands[k.Rune]; ok {
			h(e, in)
			return
		}
		log.Debug().Str("key", k.String()).Msg("unknown command")
		e.setStatusf("Unknown command: %s", k)
		return
	}
	e.setStatus("Unknown command")
}

// normalCommands maps Normal-mode keys to their handlers.
func normalCommands() map[rune]func(*Editor, input.Instruction) {
	enter := func(m Mode) func(*Editor, input.Instruction) {
		return func(e *Editor, _ input.Instruction) { e.enterMode(m) }
	}
	move := func(e *Editor, in input.Instruction) { e.motion(in, false, e.moveTo) }

	return map[rune]func(*Editor, input.Instruction){
		'i': enter(ModeInsert),
		'R': enter(ModeReplace),
		';': enter(ModePrompt),
		'I': func(e *Editor, _ input.Instruction) {
			e.moveTo(Pos{0, e.Buffer().Y()})
			e.enterMode(ModeInsert)
		},
		'a': func(e *Editor, _ input.Instruction) {
			e.moveTo(e.Buffer().Right(1, false))
			e.enterMode(ModeInsert)
		},
		'A': func(e *Editor, _ input.Instruction) {
			b := e.Buffer()
			e.moveTo(Pos{b.lineLen(b.Y()), b.Y()})
			e.enterMode(ModeInsert)
		},
		'o': func(e *Editor, _ input.Instruction) {
			e.openLine()
			e.enterMode(ModeInsert)
		},

		'h': move, 'j': move, 'k': move, 'l': move,
		'H': move, 'L': move, '0': move, '$': move,
		'g': move, 'G': move, 'w': move, 'e': move,
		't': move, 'f': move,
		'J': func(e *Editor, in input.Instruction) {
			e.moveTo(e.Buffer().Down(bigStep * in.Param.D()))
		},
		'K': func(e *Editor, in input.Instruction) {
			e.moveTo(e.Buffer().Up(bigStep * in.Param.D()))
		},

		'x': func(e *Editor, in input.Instruction) {
			b := e.Buffer()
			for range in.Param.D() {
				b.Goto(b.Bound(b.Pos(), true))
				if !e.delete() {
					break
				}
			}
			b.Goto(b.Bound(b.Pos(), true))
		},
		'X': func(e *Editor, in input.Instruction) {
			b := e.Buffer()
			for range in.Param.D() {
				if !e.backspace() {
					break
				}
			}
			b.Goto(b.Bound(b.Pos(), true))
		},
		'r': func(e *Editor, _ input.Instruction) {
			e.awaitChar(e.replaceUnderCursor)
		},
		'd': (*Editor).operator,
		'c': (*Editor).operator,
		'~': func(e *Editor, in input.Instruction) {
			e.invertChars(in.Param.D())
		},

		'b': func(e *Editor, _ input.Instruction) {
			if !e.Buffer().BranchCursor() {
				e.setStatusf("At max %d cursors", MaxCursors)
				return
			}
			e.markRedraw(redrawFull)
		},
		'B': func(e *Editor, _ input.Instruction) {
			if !e.Buffer().KillCursor() {
				e.setStatus("No other cursors!")
				return
			}
			e.markRedraw(redrawFull)
		},
		' ': func(e *Editor, _ input.Instruction) { e.nextCursor() },

		'z': (*Editor).scroll,
		'Z': func(e *Editor, _ input.Instruction) {
			b := e.Buffer()
			b.ScrollY = max(b.Y()-3, 0)
			e.markRedraw(redrawFull)
		},
		'.': (*Editor).repeat,
	}
}

func (e *Editor) enterMode(m Mode) {
	e.Buffer().Cursor().Mode = m
	if m == ModePrompt {
		e.promptIdx = 0
		e.prompt[0] = ""
	}
}

func (e *Editor) nextCursor() {
	b := e.Buffer()
	old := b.Pos()
	b.NextCursor()
	b.Hint()
	e.markRedraw(redrawCursor(old, b.Pos()))
}

// operator reads a motion and removes the range it spans. The operator
// key repeated (dd, cc) removes whole lines. c then enters Insert mode.
func (e *Editor) operator(in input.Instruction) {
	op := in.Key().Rune
	e.awaitInstruction(func(m input.Instruction) {
		if in.Param.IsSet() {
			m.Param = input.Count(in.Param.D() * m.Param.D())
		}
		done := func() {
			if op == 'c' {
				e.enterMode(ModeInsert)
			}
		}
		if m.Key().IsChar(op) && !m.Cmd.Mod.Alt {
			b := e.Buffer()
			y := b.Y()
			e.removeLines(y, min(y+m.Param.D()-1, b.Text.Len()-1))
			done()
			return
		}
		e.motion(m, true, func(t Pos) {
			e.removeRange(t)
			done()
		})
	})
}

// scroll handles z. With a count it sets the top row; otherwise it reads a
// motion, scrolls to its row and moves there.
func (e *Editor) scroll(in input.Instruction) {
	b := e.Buffer()
	if in.Param.IsSet() {
		b.ScrollY = b.clampY(in.Param.D())
		e.markRedraw(redrawFull)
		return
	}
	e.awaitInstruction(func(m input.Instruction) {
		e.motion(m, false, func(t Pos) {
			b.ScrollY = b.clampY(t.Y)
			b.Goto(t)
			e.markRedraw(redrawFull)
		})
	})
}

func (e *Editor) repeat(input.Instruction) {
	if !e.hasPrev || e.repeating {
		e.setStatus("No previous command")
		return
	}
	e.repeating = true
	defer func() { e.repeating = false }()
	e.exec(e.prev)
}

// ---------------------------------------------------------------------------
// Insert and Replace mode
// ---------------------------------------------------------------------------

func (e *Editor) insertMode(in input.Instruction) {
	b := e.Buffer()
	k := in.Key()
	replace := b.Cursor().Mode == ModeReplace
	switch k.Kind {
	case input.KindChar:
		switch {
		case k.Rune == '\n':
			e.insertNewline()
		case replace:
			e.replaceChar(k.Rune)
		default:
			e.insertChar(k.Rune)
		}
	case input.KindTab:
		e.insertChar('\t')
	case input.KindBackspace:
		if replace {
			e.moveTo(b.Left(1))
			return
		}
		e.backspace()
	case input.KindLeft:
		e.moveTo(b.Left(1))
	case input.KindRight:
		e.moveTo(b.Right(1, false))
	case input.KindUp:
		e.moveTo(b.Up(1))
	case input.KindDown:
		e.moveTo(b.Down(1))
	}
}

// ---------------------------------------------------------------------------
// Prompt mode
// ---------------------------------------------------------------------------

func (e *Editor) promptMode(in input.Instruction) {
	k := in.Key()
	switch {
	case k.IsChar('\n'):
		line := e.PromptLine()
		e.pushPrompt()
		e.Buffer().Cursor().Mode = ModeNormal
		e.invokePrompt(line)
		return
	case k.Kind == input.KindBackspace:
		if rs := []rune(e.prompt[e.promptIdx]); len(rs) > 0 {
			e.prompt[e.promptIdx] = string(rs[:len(rs)-1])
		}
	case k.Kind == input.KindUp:
		if e.promptIdx+1 < len(e.prompt) {
			e.promptIdx++
		}
	case k.Kind == input.KindDown:
		if e.promptIdx > 0 {
			e.promptIdx--
		}
	case k.Kind == input.KindChar:
		e.prompt[e.promptIdx] += string(k.Rune)
	case k.Kind == input.KindTab:
		e.prompt[e.promptIdx] += "\t"
	default:
		e.setStatus("Unknown command")
		return
	}
	e.markRedraw(redrawStatusBar)
}

// pushPrompt files the current prompt line into history and starts a fresh
// one.
func (e *Editor) pushPrompt() {
	line := e.prompt[e.promptIdx]
	if e.promptIdx != 0 {
		e.prompt[0] = line
	}
	if line != "" {
		e.prompt = append([]string{""}, e.prompt...)
		if e.session != nil {
			if err := e.session.AppendHistory(line); err != nil {
				log.Warn().Err(err).Msg("failed to save prompt history")
			}
		}
	}
	e.promptIdx = 0
	e.prompt[0] = ""
	if e.historyLimit > 0 && len(e.prompt) > e.historyLimit+1 {
		e.prompt = e.prompt[:e.historyLimit+1]
	}
}
