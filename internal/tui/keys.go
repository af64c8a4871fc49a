package tui

import (
	"unicode"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/natrium/internal/input"
)

type keyMap struct {
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

// decodeKey turns a terminal key press into editor key presses. Text that
// arrives as one press (IME, some terminals' paste) yields one press per
// rune.
func decodeKey(msg tea.KeyPressMsg, km keyMap) []input.Cmd {
	if key.Matches(msg, km.Quit) {
		return []input.Cmd{input.Press(input.Quit)}
	}
	mod := input.Modifiers{
		Shift: msg.Mod.Contains(tea.ModShift),
		Alt:   msg.Mod.Contains(tea.ModAlt),
		Ctrl:  msg.Mod.Contains(tea.ModCtrl),
	}

	var k input.Key
	switch msg.Code {
	case tea.KeyEnter:
		k = input.Char('\n')
	case tea.KeyBackspace:
		k = input.Backspace
	case tea.KeyEscape:
		k = input.Escape
	case tea.KeyTab:
		k = input.Tab
	case tea.KeyLeft:
		k = input.Left
	case tea.KeyRight:
		k = input.Right
	case tea.KeyUp:
		k = input.Up
	case tea.KeyDown:
		k = input.Down
	case tea.KeySpace:
		k = input.Char(' ')
	default:
		switch {
		case mod.Ctrl:
			k = input.Unknown
		case msg.Text != "":
			var cmds []input.Cmd
			for _, r := range msg.Text {
				cmds = append(cmds, input.Cmd{Key: input.Char(r), Mod: input.Modifiers{Alt: mod.Alt}})
			}
			return cmds
		case unicode.IsPrint(msg.Code):
			k = input.Char(msg.Code)
		default:
			k = input.Unknown
		}
	}
	return []input.Cmd{{Key: k, Mod: mod}}
}

// pasteKeys turns pasted text into key presses.
func pasteKeys(s string) []input.Cmd {
	var cmds []input.Cmd
	for _, r := range s {
		switch r {
		case '\r':
			continue
		case '\t':
			cmds = append(cmds, input.Press(input.Tab))
		default:
			cmds = append(cmds, input.Press(input.Char(r)))
		}
	}
	return cmds
}
