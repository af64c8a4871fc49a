// Package textdiff renders unified diffs between two versions of a
// document.
package textdiff

import (
	"fmt"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Unified returns the unified diff turning before into after, with both
// given as lines. It returns "" when they are equal.
func Unified(path string, before, after []string) string {
	a, b := join(before), join(after)
	if a == b {
		return ""
	}
	edits := myers.ComputeEdits(span.URIFromPath(path), a, b)
	return fmt.Sprint(gotextdiff.ToUnified(path, path+" (buffer)", a, edits))
}

func join(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
