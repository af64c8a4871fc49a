// Package shell provides the in-process POSIX shell behind the editor's !
// prompt command, with configurable command blocking.
package shell

import (
	"slices"
	"strings"
)

// BlockFunc returns true if the given command args should be blocked.
type BlockFunc func(args []string) bool

// CommandsBlocker returns a BlockFunc that blocks exact command name matches.
func CommandsBlocker(cmds []string) BlockFunc {
	return func(args []string) bool {
		return len(args) > 0 && slices.Contains(cmds, args[0])
	}
}

// ArgumentsBlocker returns a BlockFunc that blocks a command when specific
// subcommand args and/or flags are present.
//
// For example, ArgumentsBlocker("git", []string{"push"}, []string{"--force"})
// blocks "git push --force origin" but allows "git push origin".
func ArgumentsBlocker(cmd string, subArgs, flags []string) BlockFunc {
	return func(args []string) bool {
		if len(args) == 0 || args[0] != cmd {
			return false
		}
		pos, fl := splitArgsFlags(args[1:])
		return hasPrefix(pos, subArgs) && hasAll(fl, flags)
	}
}

// Blockers turns configured patterns into block functions. A single word
// blocks that command outright; a longer pattern such as "git push --force"
// blocks the command only with those subcommands and flags.
func Blockers(patterns []string) []BlockFunc {
	var (
		names []string
		out   []BlockFunc
	)
	for _, p := range patterns {
		fields := strings.Fields(p)
		switch len(fields) {
		case 0:
			continue
		case 1:
			names = append(names, fields[0])
		default:
			sub, flags := splitArgsFlags(fields[1:])
			out = append(out, ArgumentsBlocker(fields[0], sub, flags))
		}
	}
	if len(names) > 0 {
		out = append(out, CommandsBlocker(names))
	}
	return out
}

// splitArgsFlags separates positional arguments from flags.
func splitArgsFlags(args []string) (positional, flags []string) {
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			flags = append(flags, a)
			continue
		}
		positional = append(positional, a)
	}
	return positional, flags
}

func hasPrefix(args, prefix []string) bool {
	return len(args) >= len(prefix) && slices.Equal(args[:len(prefix)], prefix)
}

func hasAll(flags, required []string) bool {
	for _, r := range required {
		if !slices.Contains(flags, r) {
			return false
		}
	}
	return true
}
