package editor

import (
	"errors"
	"testing"
)

func TestOptions(t *testing.T) {
	o := DefaultOptions()
	if err := o.Set("ro"); err != nil {
		t.Fatal(err)
	}
	if !o.ReadOnly {
		t.Error("ro alias did not set ReadOnly")
	}
	if err := o.Unset("autoindent"); err != nil {
		t.Fatal(err)
	}
	if o.AutoIndent {
		t.Error("autoindent still set")
	}
	if err := o.Toggle("lm"); err != nil {
		t.Fatal(err)
	}
	if o.LineMarker {
		t.Error("lm toggle did not flip LineMarker")
	}
	v, err := o.Get("line_marker")
	if err != nil || v {
		t.Errorf("Get(line_marker) = %t, %v", v, err)
	}
}

func TestUnknownOption(t *testing.T) {
	var o Options
	for _, f := range []func(string) error{o.Set, o.Unset, o.Toggle} {
		if err := f("nope"); !errors.Is(err, ErrUnknownOption) {
			t.Errorf("err = %v, want ErrUnknownOption", err)
		}
	}
	if _, err := o.Get("nope"); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("Get err = %v", err)
	}
}
