// Package fileio reads and writes documents as plain newline-terminated
// text, reporting the three-way outcome the editor shows to the user.
package fileio

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Status is the outcome of a file operation.
type Status int

const (
	Ok Status = iota
	NotFound
	Other
)

func (s Status) String() string {
	switch s {
	case Ok:
		return "ok"
	case NotFound:
		return "not found"
	}
	return "error"
}

func statusOf(err error) Status {
	switch {
	case err == nil:
		return Ok
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	}
	return Other
}

// Read returns the lines of the file at path. Line terminators (LF or CRLF)
// are stripped; an empty file is one empty line.
func Read(path string) ([]string, Status) {
	//nolint:gosec // G304: path comes from the user at the prompt
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to read file")
		return nil, statusOf(err)
	}
	return Split(string(data)), Ok
}

// Split breaks s into lines the way Read does.
func Split(s string) []string {
	if s == "" {
		return []string{""}
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Write stores lines at path, each followed by a newline.
func Write(path string, lines []string) Status {
	//nolint:gosec // G304: path comes from the user at the prompt
	f, err := os.Create(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to create file")
		return statusOf(err)
	}
	w := bufio.NewWriter(f)
	for _, l := range lines {
		if _, err = w.WriteString(l); err == nil {
			err = w.WriteByte('\n')
		}
		if err != nil {
			break
		}
	}
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to write file")
	}
	return statusOf(err)
}
