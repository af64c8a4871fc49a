package highlight

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type charClass int

const (
	classText charClass = iota
	classString
	classOperator
	classBracket
	classDigit
)

const (
	operatorChars = "+-*/%=<>!&|^~?:;,.@#$\\"
	bracketChars  = "()[]{}"
)

func classOf(r rune) charClass {
	switch {
	case r >= '0' && r <= '9':
		return classDigit
	case strings.ContainsRune(bracketChars, r):
		return classBracket
	case strings.ContainsRune(operatorChars, r):
		return classOperator
	}
	return classText
}

// CharClass colors text by character class: quoted strings, operators,
// brackets and digits each get a palette color over bgHex. A string runs
// from a quote to the next matching quote on the same line, or to the end
// of the line.
func CharClass(text string, pal Palette, bgHex string) string {
	base := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Fg))
	if bgHex != "" {
		base = base.Background(lipgloss.Color(bgHex))
	}
	sty := map[charClass]lipgloss.Style{
		classText:     base,
		classString:   base.Foreground(lipgloss.Color(pal.Accent)),
		classOperator: base.Foreground(lipgloss.Color(pal.Muted)),
		classBracket:  base.Bold(true),
		classDigit:    base.Foreground(lipgloss.Color(pal.Error)),
	}

	var (
		b     strings.Builder
		run   []rune
		cur   = classText
		quote rune
	)
	flush := func() {
		if len(run) > 0 {
			b.WriteString(sty[cur].Render(string(run)))
			run = run[:0]
		}
	}
	for _, r := range text {
		if quote != 0 {
			run = append(run, r)
			if r == quote {
				flush()
				quote = 0
				cur = classText
			}
			continue
		}
		if r == '"' || r == '\'' || r == '`' {
			flush()
			quote, cur = r, classString
			run = append(run, r)
			continue
		}
		if c := classOf(r); c != cur {
			flush()
			cur = c
		}
		run = append(run, r)
	}
	flush()
	return b.String()
}
