package editor

import (
	"errors"
	"fmt"
)

// ErrUnknownOption is returned for an option name with no match.
var ErrUnknownOption = errors.New("option does not exist")

// Options are the boolean settings the user can change at the prompt.
type Options struct {
	AutoIndent  bool
	Debug       bool
	Highlight   bool
	LineMarker  bool
	ReadOnly    bool
	LineNumbers bool
}

// DefaultOptions returns the settings used when no config overrides them.
func DefaultOptions() Options {
	return Options{
		AutoIndent: true,
		Highlight:  true,
		LineMarker: true,
	}
}

func (o *Options) lookup(name string) (*bool, error) {
	switch name {
	case "autoindent", "ai":
		return &o.AutoIndent, nil
	case "debug", "debug_mode":
		return &o.Debug, nil
	case "highlight", "hl":
		return &o.Highlight, nil
	case "line_marker", "linemarker", "linemark", "lm":
		return &o.LineMarker, nil
	case "readonly", "ro":
		return &o.ReadOnly, nil
	case "line_numbers", "ln":
		return &o.LineNumbers, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownOption, name)
}

// Get returns the value of the named option.
func (o *Options) Get(name string) (bool, error) {
	v, err := o.lookup(name)
	if err != nil {
		return false, err
	}
	return *v, nil
}

// Set turns the named option on.
func (o *Options) Set(name string) error { return o.assign(name, func(bool) bool { return true }) }

// Unset turns the named option off.
func (o *Options) Unset(name string) error { return o.assign(name, func(bool) bool { return false }) }

// Toggle flips the named option.
func (o *Options) Toggle(name string) error { return o.assign(name, func(v bool) bool { return !v }) }

func (o *Options) assign(name string, f func(bool) bool) error {
	v, err := o.lookup(name)
	if err != nil {
		return err
	}
	*v = f(*v)
	return nil
}
