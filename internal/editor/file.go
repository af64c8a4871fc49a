package editor

import (
	"github.com/rs/zerolog/log"

	"github.com/xonecas/natrium/internal/fileio"
	"github.com/xonecas/natrium/internal/text"
)

// Open reads path into a new buffer and switches to it. A blank scratch
// buffer being left is dropped.
func (e *Editor) Open(path string) fileio.Status {
	if path == "" {
		e.setStatus("No file name")
		return fileio.Other
	}
	lines, st := fileio.Read(path)
	if st != fileio.Ok {
		e.setStatusf("File %s could not be opened", path)
		return st
	}
	b := NewBuffer(text.FromStrings(lines))
	b.Title = path
	b.Path = path
	e.restorePosition(b)

	e.leaveBuffer()
	prev := e.Buffers.CurrentIndex()
	discard := e.Buffer().blank() && !e.Buffer().Modified()
	e.Buffers.SwitchTo(e.Buffers.Add(b))
	if discard {
		e.Buffers.Delete(prev)
	}
	log.Info().Str("path", path).Int("lines", len(lines)).Msg("file opened")
	e.setStatusf("File %s opened", path)
	e.markRedraw(redrawFull)
	return fileio.Ok
}

// Write stores the current buffer at path, or at the buffer's own path
// when path is empty.
func (e *Editor) Write(path string) fileio.Status {
	if e.Options.ReadOnly {
		e.setStatus("File is read only")
		return fileio.Other
	}
	b := e.Buffer()
	if path == "" {
		path = b.Path
	}
	if path == "" {
		e.setStatus("No file name")
		return fileio.Other
	}
	if st := fileio.Write(path, b.Text.Strings()); st != fileio.Ok {
		e.setStatusf("Couldn't write %s", path)
		return st
	}
	if b.Path == "" {
		b.Path = path
		b.Title = path
	}
	b.MarkSaved()
	e.savePosition(b)
	log.Info().Str("path", path).Int("lines", b.Text.Len()).Msg("file written")
	e.setStatusf("File %s written", path)
	return fileio.Ok
}

// leaveBuffer runs before the current buffer stops being current.
func (e *Editor) leaveBuffer() {
	e.savePosition(e.Buffer())
}

func (e *Editor) savePosition(b *Buffer) {
	if e.session == nil || b.Path == "" || b.Transient {
		return
	}
	p := b.Pos()
	if err := e.session.SavePosition(b.Path, p.X, p.Y); err != nil {
		log.Warn().Err(err).Str("path", b.Path).Msg("failed to save cursor position")
	}
}

func (e *Editor) restorePosition(b *Buffer) {
	if e.session == nil {
		return
	}
	x, y, ok, err := e.session.Position(b.Path)
	if err != nil {
		log.Warn().Err(err).Str("path", b.Path).Msg("failed to load cursor position")
		return
	}
	if ok {
		b.Goto(b.Bound(Pos{x, y}, true))
	}
}
