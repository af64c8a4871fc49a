// Package input defines the instruction vocabulary of the editor: keys with
// modifier state, optional numeric repeat counts, and the parser that joins
// a stream of keys into instructions.
package input

import "fmt"

// KeyKind classifies a key.
type KeyKind int

const (
	KindNull KeyKind = iota
	KindChar
	KindBackspace
	KindEscape
	KindLeft
	KindRight
	KindUp
	KindDown
	KindTab
	KindQuit
	KindUnknown
)

// Key is a decoded key press. Rune is only meaningful for KindChar.
type Key struct {
	Kind KeyKind
	Rune rune
}

var (
	Null      = Key{Kind: KindNull}
	Backspace = Key{Kind: KindBackspace}
	Escape    = Key{Kind: KindEscape}
	Left      = Key{Kind: KindLeft}
	Right     = Key{Kind: KindRight}
	Up        = Key{Kind: KindUp}
	Down      = Key{Kind: KindDown}
	Tab       = Key{Kind: KindTab}
	Quit      = Key{Kind: KindQuit}
	Unknown   = Key{Kind: KindUnknown}
)

// Char returns the key for rune r.
func Char(r rune) Key { return Key{Kind: KindChar, Rune: r} }

// IsChar reports whether k is the character r.
func (k Key) IsChar(r rune) bool { return k.Kind == KindChar && k.Rune == r }

func (k Key) String() string {
	switch k.Kind {
	case KindChar:
		switch k.Rune {
		case '\n':
			return "<Enter>"
		case ' ':
			return "<Space>"
		}
		return string(k.Rune)
	case KindBackspace:
		return "<BS>"
	case KindEscape:
		return "<Esc>"
	case KindLeft:
		return "<Left>"
	case KindRight:
		return "<Right>"
	case KindUp:
		return "<Up>"
	case KindDown:
		return "<Down>"
	case KindTab:
		return "<Tab>"
	case KindQuit:
		return "<Quit>"
	case KindNull:
		return ""
	}
	return "<?>"
}

// Modifiers is the modifier state at the time of a key press.
type Modifiers struct {
	Shift bool
	Alt   bool
	Ctrl  bool
}

// Cmd is a key together with its modifiers.
type Cmd struct {
	Key Key
	Mod Modifiers
}

// Press returns a Cmd for a key with no modifiers.
func Press(k Key) Cmd { return Cmd{Key: k} }

// Parameter is an optional repeat count.
type Parameter struct {
	n   int
	set bool
}

// NoCount is the absent repeat count.
var NoCount = Parameter{}

// Count returns a parameter holding n.
func Count(n int) Parameter { return Parameter{n: n, set: true} }

// IsSet reports whether a count was typed.
func (p Parameter) IsSet() bool { return p.set }

// D resolves the count, defaulting to 1.
func (p Parameter) D() int { return p.Or(1) }

// Or resolves the count, defaulting to fallback.
func (p Parameter) Or(fallback int) int {
	if p.set {
		return p.n
	}
	return fallback
}

func (p Parameter) String() string {
	if !p.set {
		return ""
	}
	return fmt.Sprint(p.n)
}

// Instruction is one unit of input to the command dispatcher.
type Instruction struct {
	Param Parameter
	Cmd   Cmd
}

// Key is shorthand for in.Cmd.Key.
func (in Instruction) Key() Key { return in.Cmd.Key }

func (in Instruction) String() string {
	return in.Param.String() + in.Cmd.Key.String()
}
