// Package editor is the editing core: buffers and cursors, the position and
// motion algebra over a text.SplitBuffer, and the modal command machine
// that turns instructions into edits.
//
// An Editor is driven one key at a time through Feed. Commands that need
// more input (an operator waiting for its motion, a find waiting for its
// character) leave a continuation behind and finish when the next key
// arrives; nothing blocks.
package editor

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/natrium/internal/input"
)

// WelcomeMessage is the status shown at startup.
const WelcomeMessage = "Welcome to Natrium!"

// Session persists prompt history and cursor positions between runs.
type Session interface {
	AppendHistory(line string) error
	History(limit int) ([]string, error)
	SavePosition(path string, x, y int) error
	Position(path string) (x, y int, ok bool, err error)
}

// ShellRunner runs a shell command line and returns its output. vars are
// NAME=value pairs set for that command only.
type ShellRunner interface {
	Exec(ctx context.Context, command string, vars ...string) (stdout, stderr string, err error)
}

// FileVar holds the current buffer's path in ! commands.
const FileVar = "NATRIUM_FILE"

// StatusBar is the state shown on the status line.
type StatusBar struct {
	Mode  string
	Title string
	Cmd   string // keys of the instruction being read
	Msg   string
}

// pending is a command waiting for more input. A char continuation takes
// the next raw key; otherwise the next full instruction.
type pending struct {
	char   bool
	resume func(input.Instruction)
}

// Editor is the whole editing state. It is not safe for concurrent use.
type Editor struct {
	Buffers *BufferManager
	Options Options
	Status  StatusBar

	redraw RedrawTask

	prompt    []string // prompt[0] is the line being typed, older lines follow
	promptIdx int

	parser    input.Parser
	pending   *pending
	echo      string
	prev      input.Instruction
	hasPrev   bool
	repeating bool
	commands  map[rune]func(*Editor, input.Instruction)
	quit      bool

	session      Session
	historyLimit int
	shell        ShellRunner
}

// New returns an editor with one empty buffer.
func New(opts Options) *Editor {
	e := &Editor{
		Buffers:  NewBufferManager(),
		Options:  opts,
		prompt:   []string{""},
		commands: normalCommands(),
	}
	e.Status.Msg = WelcomeMessage
	e.refreshStatus()
	return e
}

// SetSession attaches a session store and loads up to limit history lines.
func (e *Editor) SetSession(s Session, limit int) {
	e.session = s
	e.historyLimit = limit
	if s == nil {
		return
	}
	lines, err := s.History(limit)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load prompt history")
		return
	}
	e.prompt = append([]string{""}, lines...)
	e.promptIdx = 0
}

// SetShell attaches the runner used by the ! prompt command.
func (e *Editor) SetShell(r ShellRunner) { e.shell = r }

// Buffer returns the current buffer.
func (e *Editor) Buffer() *Buffer { return e.Buffers.Current() }

// Mode returns the mode of the current cursor.
func (e *Editor) Mode() Mode { return e.Buffer().Cursor().Mode }

// PromptLine returns the prompt text being edited.
func (e *Editor) PromptLine() string { return e.prompt[e.promptIdx] }

// Quitting reports whether the user asked to quit.
func (e *Editor) Quitting() bool { return e.quit }

// Feed consumes one key press.
func (e *Editor) Feed(c input.Cmd) {
	defer e.finish()
	if c.Key.Kind == input.KindQuit {
		if e.pending != nil {
			e.abort()
			return
		}
		e.quit = true
		return
	}
	if p := e.pending; p != nil && p.char {
		e.pending = nil
		e.parser.Reset()
		e.echo += c.Key.String()
		p.resume(input.Instruction{Cmd: c})
		return
	}
	in, ok := e.parser.Feed(c, e.Mode() == ModeNormal || e.pending != nil)
	if !ok {
		return
	}
	if p := e.pending; p != nil {
		e.pending = nil
		e.echo += in.String()
		p.resume(in)
		return
	}
	e.echo = in.String()
	e.Exec(in)
}

// Exec runs one instruction and remembers it for repeat.
func (e *Editor) Exec(in input.Instruction) {
	normal := e.Mode() == ModeNormal
	e.exec(in)
	if !(normal && in.Key().IsChar('.')) {
		e.prev = in
		e.hasPrev = true
	}
}

// Close saves the cursor position of every file buffer.
func (e *Editor) Close() {
	for _, b := range e.Buffers.All() {
		e.savePosition(b)
	}
}

// awaitInstruction suspends the running command until the next full
// instruction. Escape or a quit aborts it.
func (e *Editor) awaitInstruction(then func(input.Instruction)) {
	e.pending = &pending{resume: func(in input.Instruction) {
		if k := in.Key().Kind; k == input.KindEscape || k == input.KindQuit {
			e.abort()
			return
		}
		then(in)
	}}
}

// awaitChar suspends the running command until the next key, which must
// be a printable character.
func (e *Editor) awaitChar(then func(rune)) {
	e.pending = &pending{char: true, resume: func(in input.Instruction) {
		k := in.Key()
		if k.Kind != input.KindChar || k.Rune == '\n' {
			e.abort()
			return
		}
		then(k.Rune)
	}}
}

func (e *Editor) abort() {
	e.pending = nil
	e.parser.Reset()
	e.setStatus("Aborted")
}

func (e *Editor) finish() {
	if e.pending == nil {
		e.Buffer().Hint()
	}
	e.refreshStatus()
}

func (e *Editor) refreshStatus() {
	b := e.Buffer()
	e.Status.Mode = b.Cursor().Mode.String()
	e.Status.Title = b.DisplayTitle()
	if b.Modified() && !b.Transient {
		e.Status.Title += " *"
	}
	if e.pending != nil {
		e.Status.Cmd = e.echo + e.parser.Pending()
		return
	}
	e.Status.Cmd = e.parser.Pending()
}

// setStatus reports a message that needs only the status line redrawn.
func (e *Editor) setStatus(msg string) {
	e.Status.Msg = msg
	e.markRedraw(redrawStatusBar)
}

func (e *Editor) setStatusf(format string, args ...any) {
	e.setStatus(fmt.Sprintf(format, args...))
}

func (e *Editor) applyLogLevel() {
	if e.Options.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
