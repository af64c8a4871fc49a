package editor

import (
	"context"
	_ "embed"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xonecas/natrium/internal/fileio"
	"github.com/xonecas/natrium/internal/text"
	"github.com/xonecas/natrium/internal/textdiff"
)

//go:embed help.txt
var helpText string

// shellTimeout bounds a ! command.
const shellTimeout = 30 * time.Second

const bufferListHeader = "Buffers\n=====================================\n\n"

// promptCommands maps prompt command names to handlers taking the
// argument text.
func promptCommands() map[string]func(*Editor, string) {
	set := func(e *Editor, name string) {
		if err := e.Options.Set(name); err != nil {
			e.setStatusf("Option does not exist: %s", name)
			return
		}
		e.setStatusf("Option set: %s", name)
		e.optionChanged()
	}
	unset := func(e *Editor, name string) {
		if err := e.Options.Unset(name); err != nil {
			e.setStatusf("Option does not exist: %s", name)
			return
		}
		e.setStatusf("Option unset: %s", name)
		e.optionChanged()
	}
	toggle := func(e *Editor, name string) {
		if err := e.Options.Toggle(name); err != nil {
			e.setStatusf("Option does not exist: %s", name)
			return
		}
		e.setStatusf("Option toggled: %s", name)
		e.optionChanged()
	}
	get := func(e *Editor, name string) {
		v, err := e.Options.Get(name)
		if err != nil {
			e.setStatusf("Option does not exist: %s", name)
			return
		}
		e.setStatusf("%s = %t", name, v)
	}
	open := func(e *Editor, path string) { e.Open(path) }
	write := func(e *Editor, path string) { e.Write(path) }
	help := func(e *Editor, _ string) {
		e.openTransient("<Help>", fileio.Split(helpText))
	}
	quit := func(e *Editor, _ string) { e.quit = true }
	sh := func(e *Editor, cmd string) { e.runShell(cmd) }

	return map[string]func(*Editor, string){
		"set":    set,
		"unset":  unset,
		"toggle": toggle,
		"tog":    toggle,
		"get":    get,
		"o":      open,
		"open":   open,
		"w":      write,
		"write":  write,
		"ls":     (*Editor).listBuffers,
		"bn":     (*Editor).newBuffer,
		"bd":     (*Editor).deleteBuffer,
		"h":      help,
		"help":   help,
		"q":      quit,
		"quit":   quit,
		"diff":   (*Editor).diff,
		"sh":     sh,
	}
}

// invokePrompt runs one prompt line.
func (e *Editor) invokePrompt(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	log.Debug().Str("command", line).Msg("prompt command")
	if cmd, ok := strings.CutPrefix(line, "!"); ok {
		e.runShell(strings.TrimSpace(cmd))
		return
	}
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	if h, ok := promptCommands()[name]; ok {
		h(e, arg)
		return
	}
	if rest, ok := strings.CutPrefix(name, "b"); ok && arg == "" {
		if n, err := strconv.Atoi(rest); err == nil {
			e.switchBuffer(n)
			return
		}
	}
	e.setStatusf("Unknown command: %s", line)
}

func (e *Editor) optionChanged() {
	e.applyLogLevel()
	e.markRedraw(redrawFull)
}

// openTransient shows lines in a generated buffer that is dropped when the
// user switches away.
func (e *Editor) openTransient(title string, lines []string) {
	b := NewBuffer(text.FromStrings(lines))
	b.Title = title
	b.Transient = true
	e.leaveBuffer()
	e.Buffers.SwitchTo(e.Buffers.Add(b))
	e.markRedraw(redrawFull)
}

func (e *Editor) listBuffers(string) {
	lines := fileio.Split(bufferListHeader)
	for i, b := range e.Buffers.All() {
		if b.Transient {
			continue
		}
		lines = append(lines, "b"+strconv.Itoa(i)+"\t\t\t"+b.DisplayTitle())
	}
	e.openTransient("<Buffers>", lines)
}

func (e *Editor) newBuffer(string) {
	e.leaveBuffer()
	e.Buffers.SwitchTo(e.Buffers.Add(NewBuffer(text.New())))
	e.setStatusf("Created buffer #%d", e.Buffers.CurrentIndex())
	e.markRedraw(redrawFull)
}

func (e *Editor) deleteBuffer(string) {
	e.leaveBuffer()
	e.Buffers.Delete(e.Buffers.CurrentIndex())
	e.Buffer().Hint()
	e.setStatus("Deleted buffer")
	e.markRedraw(redrawFull)
}

func (e *Editor) switchBuffer(n int) {
	switch {
	case !e.Buffers.IsValid(n):
		e.setStatusf("Invalid buffer #%d", n)
	case n == e.Buffers.CurrentIndex():
		e.setStatusf("Already in buffer #%d", n)
	default:
		e.leaveBuffer()
		e.Buffers.SwitchTo(n)
		e.setStatusf("Switched to buffer #%d", n)
		e.markRedraw(redrawFull)
	}
}

func (e *Editor) diff(string) {
	b := e.Buffer()
	if b.Path == "" {
		e.setStatus("No file name")
		return
	}
	disk, st := fileio.Read(b.Path)
	if st != fileio.Ok {
		e.setStatusf("File %s could not be opened", b.Path)
		return
	}
	if text.FromStrings(disk).Fingerprint() == b.Text.Fingerprint() {
		e.setStatus("No changes")
		return
	}
	e.openTransient("<Diff>", fileio.Split(textdiff.Unified(b.Path, disk, b.Text.Strings())))
}

func (e *Editor) runShell(cmd string) {
	if e.shell == nil {
		e.setStatus("Shell is disabled")
		return
	}
	if cmd == "" {
		e.setStatus("No command")
		return
	}
	var vars []string
	if p := e.Buffer().Path; p != "" {
		vars = append(vars, FileVar+"="+p)
	}
	ctx, cancel := context.WithTimeout(context.Background(), shellTimeout)
	defer cancel()
	stdout, stderr, err := e.shell.Exec(ctx, cmd, vars...)
	out := stdout + stderr
	if err != nil {
		log.Warn().Err(err).Str("command", cmd).Msg("shell command failed")
	}
	if out != "" {
		e.openTransient("<Shell>", fileio.Split(out))
	}
	if err != nil {
		e.setStatusf("Command failed: %v", err)
		e.markRedraw(redrawFull)
		return
	}
	e.setStatusf("Command finished: %s", cmd)
	e.markRedraw(redrawFull)
}
