package editor

import "unicode"

// counterparts pairs characters that ~ swaps.
var counterparts = func() map[rune]rune {
	pairs := []string{"<>", "()", "[]", "{}", "+-", ";:", ",.", `'"`, "!?", `/\`, "&|"}
	m := make(map[rune]rune, 2*len(pairs))
	for _, p := range pairs {
		rs := []rune(p)
		m[rs[0]] = rs[1]
		m[rs[1]] = rs[0]
	}
	return m
}()

// invertRune returns the counterpart of r, or r with its case toggled.
func invertRune(r rune) rune {
	if c, ok := counterparts[r]; ok {
		return c
	}
	if unicode.IsUpper(r) {
		return unicode.ToLower(r)
	}
	return unicode.ToUpper(r)
}

// invertChars inverts n characters forward from the cursor.
func (e *Editor) invertChars(n int) {
	b := e.Buffer()
	p := b.Bound(b.Pos(), true)
	b.Goto(p)
	first := p.Y
	for range n {
		if l := b.Text.AtMut(p.Y); p.X < l.Len() {
			l.Set(p.X, invertRune(l.At(p.X)))
			b.touch()
		}
		q, ok := b.After(1, p)
		if !ok {
			break
		}
		p = q
		b.Goto(p)
	}
	e.markRedraw(redrawLines(first, p.Y+1))
}
