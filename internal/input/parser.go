package input

import (
	"math"
	"strings"
)

// maxCount caps a typed repeat count.
const maxCount = math.MaxInt32

// Parser joins key presses into instructions. In command mode leading
// digits accumulate into a repeat count; a leading 0 is a key of its own.
// Outside command mode every key is an instruction with no count.
type Parser struct {
	n    int
	set  bool
	echo strings.Builder
}

// Feed consumes one key press. It returns the completed instruction and
// true once a non-count key arrives. Null keys (bare modifier presses) are
// ignored.
func (p *Parser) Feed(c Cmd, commandMode bool) (Instruction, bool) {
	k := c.Key
	if k.Kind == KindNull {
		return Instruction{}, false
	}
	if commandMode && k.Kind == KindChar && k.Rune >= '0' && k.Rune <= '9' && !c.Mod.Alt && !c.Mod.Ctrl {
		if k.Rune != '0' || p.set {
			if p.n < maxCount {
				p.n = min(p.n*10+int(k.Rune-'0'), maxCount)
				p.echo.WriteRune(k.Rune)
			}
			p.set = true
			return Instruction{}, false
		}
	}
	in := Instruction{Cmd: c}
	if p.set && commandMode {
		in.Param = Count(p.n)
	}
	p.Reset()
	return in, true
}

// Pending returns the count typed so far, for the status bar.
func (p *Parser) Pending() string { return p.echo.String() }

// Reset drops any partially typed count.
func (p *Parser) Reset() {
	p.n = 0
	p.set = false
	p.echo.Reset()
}
