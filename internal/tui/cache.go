package tui

import (
	"github.com/xonecas/natrium/internal/editor"
)

// rowCache keeps rendered rows without cursors between frames. The editor's
// redraw tasks say which rows went stale; anything that changes the layout
// drops the whole cache.
type rowCache struct {
	key   layoutKey
	lines map[int]string
}

// layoutKey is everything besides the row's own text that shapes it.
type layoutKey struct {
	buf     *editor.Buffer
	opts    editor.Options
	scrollX int
	gutter  int
	width   int
	lang    string
}

func newRowCache() *rowCache {
	return &rowCache{lines: make(map[int]string)}
}

func (c *rowCache) reset() { clear(c.lines) }

// check drops the cache when the layout changed.
func (c *rowCache) check(k layoutKey) {
	if k != c.key {
		c.key = k
		c.reset()
	}
}

func (c *rowCache) get(y int) (string, bool) {
	s, ok := c.lines[y]
	return s, ok
}

func (c *rowCache) put(y int, s string) { c.lines[y] = s }

// apply invalidates the rows a redraw task names.
func (c *rowCache) apply(t editor.RedrawTask) {
	switch t.Kind {
	case editor.RedrawLines:
		for y := t.From; y < t.To; y++ {
			delete(c.lines, y)
		}
	case editor.RedrawLinesAfter:
		for y := range c.lines {
			if y >= t.From {
				delete(c.lines, y)
			}
		}
	case editor.RedrawCursor:
		delete(c.lines, t.Old.Y)
		delete(c.lines, t.New.Y)
	case editor.RedrawFull:
		c.reset()
	}
}
