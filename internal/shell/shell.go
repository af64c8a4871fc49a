package shell

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// BlockedError is returned when a blocker refuses a command.
type BlockedError struct {
	Name string
}

func (e *BlockedError) Error() string { return fmt.Sprintf("command blocked: %q", e.Name) }

// Shell runs command lines in-process. The working directory and exported
// variables left by one command are seen by the next.
type Shell struct {
	mu       sync.Mutex
	dir      string
	environ  []string
	blockers []BlockFunc
}

// New returns a shell starting in dir, or the process working directory
// when dir is empty.
func New(dir string, blockers []BlockFunc) *Shell {
	if dir == "" {
		dir, _ = os.Getwd()
	}
	return &Shell{
		dir:      dir,
		environ:  os.Environ(),
		blockers: blockers,
	}
}

// Exec runs command and returns what it wrote. vars are NAME=value pairs
// set for this command only. A non-zero exit is an interp.ExitStatus.
func (s *Shell) Exec(ctx context.Context, command string, vars ...string) (stdout, stderr string, err error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return "", "", fmt.Errorf("could not parse command: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var out, errOut bytes.Buffer
	r, err := interp.New(
		interp.StdIO(nil, &out, &errOut),
		interp.Env(expand.ListEnviron(append(slices.Clone(s.environ), vars...)...)),
		interp.Dir(s.dir),
		interp.ExecHandlers(s.guard),
	)
	if err != nil {
		return "", "", fmt.Errorf("could not create interpreter: %w", err)
	}
	err = run(ctx, r, prog)
	s.keep(r, vars)
	return out.String(), errOut.String(), err
}

// Dir returns the current working directory.
func (s *Shell) Dir() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dir
}

func run(ctx context.Context, r *interp.Runner, prog *syntax.File) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("command panicked: %v", p)
		}
	}()
	return r.Run(ctx, prog)
}

// guard refuses external commands a blocker matches.
func (s *Shell) guard(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(ctx context.Context, args []string) error {
		for _, blocked := range s.blockers {
			if len(args) > 0 && blocked(args) {
				return &BlockedError{Name: args[0]}
			}
		}
		return next(ctx, args)
	}
}

// keep carries the runner's directory and exported variables over to the
// next command, leaving out the per-command vars.
func (s *Shell) keep(r *interp.Runner, vars []string) {
	if r.Dir != "" {
		s.dir = r.Dir
	}
	transient := make(map[string]bool, len(vars))
	for _, v := range vars {
		name, _, _ := strings.Cut(v, "=")
		transient[name] = true
	}
	// Vars holds the final environment once Run returns; it is empty when
	// the run panicked.
	if len(r.Vars) == 0 {
		return
	}
	s.environ = s.environ[:0]
	for name, vr := range r.Vars {
		if vr.Exported && vr.IsSet() && !transient[name] {
			s.environ = append(s.environ, name+"="+vr.String())
		}
	}
}
