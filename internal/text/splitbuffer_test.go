package text

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewHasOneEmptyLine(t *testing.T) {
	b := New()
	if b.Len() != 1 {
		t.Fatalf("Len = %d, want 1", b.Len())
	}
	if got := b.At(0).String(); got != "" {
		t.Errorf("row 0 = %q, want empty", got)
	}
}

func TestFromLinesRoundTrip(t *testing.T) {
	tests := [][]string{
		{""},
		{"one"},
		{"one", "two", "three"},
		{"", "", "x", ""},
	}
	for _, want := range tests {
		b := FromStrings(want)
		if diff := cmp.Diff(want, b.Strings()); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
		if b.Focus() != 0 {
			t.Errorf("Focus = %d, want 0", b.Focus())
		}
	}
}

func TestFromEmptySlice(t *testing.T) {
	b := FromStrings(nil)
	if diff := cmp.Diff([]string{""}, b.Strings()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLineOutOfRange(t *testing.T) {
	b := FromStrings([]string{"a", "b"})
	if _, ok := b.Line(2); ok {
		t.Error("Line(2) should be out of range")
	}
	if _, ok := b.Line(-1); ok {
		t.Error("Line(-1) should be out of range")
	}
	if _, ok := b.LineMut(2); ok {
		t.Error("LineMut(2) should be out of range")
	}
}

func TestInsertLine(t *testing.T) {
	tests := []struct {
		name  string
		focus int
		at    int
		want  []string
	}{
		{"front", 0, 0, []string{"new", "a", "b", "c"}},
		{"after focus", 0, 1, []string{"a", "new", "b", "c"}},
		{"append", 0, 3, []string{"a", "b", "c", "new"}},
		{"before focus", 2, 1, []string{"a", "new", "b", "c"}},
		{"at focus", 2, 2, []string{"a", "b", "new", "c"}},
		{"append with focus at end", 2, 3, []string{"a", "b", "c", "new"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromStrings([]string{"a", "b", "c"})
			if err := b.FocusHintY(tt.focus); err != nil {
				t.Fatalf("FocusHintY: %v", err)
			}
			if err := b.InsertLine(tt.at, NewLine("new")); err != nil {
				t.Fatalf("InsertLine: %v", err)
			}
			if diff := cmp.Diff(tt.want, b.Strings()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestInsertLineOutOfBound(t *testing.T) {
	b := FromStrings([]string{"a"})
	err := b.InsertLine(2, NewLine("x"))
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
	if b.Len() != 1 {
		t.Errorf("Len = %d after failed insert", b.Len())
	}
}

func TestRemoveLine(t *testing.T) {
	tests := []struct {
		name  string
		focus int
		at    int
		want  []string
	}{
		{"focus row 0", 0, 0, []string{"b", "c", "d"}},
		{"after focus", 0, 2, []string{"a", "b", "d"}},
		{"last", 1, 3, []string{"a", "b", "c"}},
		{"before focus", 3, 1, []string{"a", "c", "d"}},
		{"at focus", 2, 2, []string{"a", "b", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromStrings([]string{"a", "b", "c", "d"})
			if err := b.FocusHintY(tt.focus); err != nil {
				t.Fatalf("FocusHintY: %v", err)
			}
			removed, err := b.RemoveLine(tt.at)
			if err != nil {
				t.Fatalf("RemoveLine: %v", err)
			}
			if want := string(rune('a' + tt.at)); removed.String() != want {
				t.Errorf("removed %q, want %q", removed.String(), want)
			}
			if diff := cmp.Diff(tt.want, b.Strings()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestRemoveLineErrors(t *testing.T) {
	b := FromStrings([]string{"only"})
	if _, err := b.RemoveLine(0); !errors.Is(err, ErrLastLine) {
		t.Errorf("err = %v, want ErrLastLine", err)
	}
	if _, err := b.RemoveLine(1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestFocusHintY(t *testing.T) {
	b := FromStrings([]string{"a", "b", "c", "d", "e"})
	for _, y := range []int{4, 0, 2, 3, 1, 1} {
		if err := b.FocusHintY(y); err != nil {
			t.Fatalf("FocusHintY(%d): %v", y, err)
		}
		if b.Focus() != y {
			t.Errorf("Focus = %d, want %d", b.Focus(), y)
		}
	}
	if err := b.FocusHintY(5); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("FocusHintY(5) err = %v, want ErrOutOfBounds", err)
	}
	if err := b.FocusHintY(-1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("FocusHintY(-1) err = %v, want ErrOutOfBounds", err)
	}
}

func TestFocusIsTransparentToReads(t *testing.T) {
	want := []string{"zero", "one", "two", "three", "four", "five"}
	b := FromStrings(want)
	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		if err := b.FocusHintY(rng.IntN(len(want))); err != nil {
			t.Fatalf("FocusHintY: %v", err)
		}
		if diff := cmp.Diff(want, b.Strings()); diff != "" {
			t.Fatalf("focus %d changed order (-want +got):\n%s", b.Focus(), diff)
		}
		for n, s := range want {
			if got := b.At(n).String(); got != s {
				t.Fatalf("At(%d) = %q, want %q", n, got, s)
			}
		}
	}
}

func TestLineCountInvariant(t *testing.T) {
	b := New()
	var model []string
	model = append(model, "")
	rng := rand.New(rand.NewPCG(7, 11))
	inserts, removes := 0, 0
	for i := range 500 {
		switch {
		case rng.IntN(3) == 0 && len(model) > 1:
			n := rng.IntN(len(model))
			if _, err := b.RemoveLine(n); err != nil {
				t.Fatalf("RemoveLine(%d): %v", n, err)
			}
			model = slices.Delete(model, n, n+1)
			removes++
		default:
			n := rng.IntN(len(model) + 1)
			s := string(rune('a' + i%26))
			if err := b.InsertLine(n, NewLine(s)); err != nil {
				t.Fatalf("InsertLine(%d): %v", n, err)
			}
			model = slices.Insert(model, n, s)
			inserts++
		}
		if rng.IntN(4) == 0 {
			if err := b.FocusHintY(rng.IntN(b.Len())); err != nil {
				t.Fatalf("FocusHintY: %v", err)
			}
		}
		if b.Len() != 1+inserts-removes {
			t.Fatalf("Len = %d, want %d", b.Len(), 1+inserts-removes)
		}
	}
	if diff := cmp.Diff(model, b.Strings()); diff != "" {
		t.Errorf("contents diverged (-want +got):\n%s", diff)
	}
}

func TestLinesIsRestartable(t *testing.T) {
	b := FromStrings([]string{"a", "b", "c"})
	if err := b.FocusHintY(1); err != nil {
		t.Fatal(err)
	}
	seq := b.Lines()
	var first, second []string
	for l := range seq {
		first = append(first, l.String())
	}
	for l := range seq {
		second = append(second, l.String())
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second pass differs (-first +second):\n%s", diff)
	}
	for l := range seq {
		if l.String() != "a" {
			t.Errorf("first line = %q", l.String())
		}
		break
	}
}

func TestRows(t *testing.T) {
	b := FromStrings([]string{"a", "b", "c"})
	var got []int
	for n, l := range b.Rows(1) {
		got = append(got, n)
		if l.String() != string(rune('a'+n)) {
			t.Errorf("row %d = %q", n, l.String())
		}
	}
	if diff := cmp.Diff([]int{1, 2}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestIndent(t *testing.T) {
	b := FromStrings([]string{"\t\tfoo", "bar"})
	if got := b.Indent(0).String(); got != "\t\t" {
		t.Errorf("Indent(0) = %q", got)
	}
	if got := b.Indent(5).String(); got != "" {
		t.Errorf("Indent(5) = %q, want empty", got)
	}
}

func TestEditThroughLineMut(t *testing.T) {
	b := FromStrings([]string{"ab", "cd", "ef"})
	if err := b.FocusHintY(2); err != nil {
		t.Fatal(err)
	}
	l := b.AtMut(1)
	l.Insert(1, 'X')
	if got := b.At(1).String(); got != "cXd" {
		t.Errorf("row 1 = %q, want %q", got, "cXd")
	}
}

func TestFingerprint(t *testing.T) {
	a := FromStrings([]string{"x", "y"})
	b := FromStrings([]string{"x", "y"})
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("equal buffers have different fingerprints")
	}
	b.AtMut(0).Insert(0, 'z')
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("fingerprint did not change after edit")
	}
	c := FromStrings([]string{"xy"})
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("row boundaries not part of fingerprint")
	}
}
