package text

import "testing"

func TestLineInsert(t *testing.T) {
	tests := []struct {
		name string
		in   string
		at   int
		r    rune
		want string
	}{
		{"empty", "", 0, 'a', "a"},
		{"front", "bcd", 0, 'a', "abcd"},
		{"middle", "abde", 2, 'c', "abcde"},
		{"end", "abc", 3, 'd', "abcd"},
		{"near front of long", "0123456789", 1, 'x', "0x123456789"},
		{"unicode", "héllo", 1, 'ü', "hüéllo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLine(tt.in)
			l.Insert(tt.at, tt.r)
			if got := l.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if l.Len() != len([]rune(tt.want)) {
				t.Errorf("Len = %d, want %d", l.Len(), len([]rune(tt.want)))
			}
		})
	}
}

func TestLineRepeatedFrontEdits(t *testing.T) {
	l := NewLine("tail")
	for _, r := range "olleh" {
		l.Insert(0, r)
	}
	if got := l.String(); got != "hellotail" {
		t.Fatalf("got %q, want %q", got, "hellotail")
	}
	for range 5 {
		l.Remove(0)
	}
	if got := l.String(); got != "tail" {
		t.Fatalf("got %q, want %q", got, "tail")
	}
	l.Insert(2, '-')
	if got := l.String(); got != "ta-il" {
		t.Fatalf("got %q, want %q", got, "ta-il")
	}
}

func TestLineRemove(t *testing.T) {
	tests := []struct {
		in   string
		at   int
		want string
		r    rune
	}{
		{"abc", 0, "bc", 'a'},
		{"abc", 1, "ac", 'b'},
		{"abc", 2, "ab", 'c'},
		{"a", 0, "", 'a'},
	}
	for _, tt := range tests {
		l := NewLine(tt.in)
		r := l.Remove(tt.at)
		if r != tt.r || l.String() != tt.want {
			t.Errorf("Remove(%q, %d) = %q leaving %q, want %q leaving %q", tt.in, tt.at, r, l.String(), tt.r, tt.want)
		}
	}
}

func TestLineRemoveOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	l := NewLine("ab")
	l.Remove(2)
}

func TestLineSplitAppend(t *testing.T) {
	l := NewLine("hello world")
	tail := l.Split(5)
	if l.String() != "hello" || tail.String() != " world" {
		t.Fatalf("Split = %q / %q", l.String(), tail.String())
	}
	l.Append(tail)
	if got := l.String(); got != "hello world" {
		t.Errorf("Append = %q", got)
	}
	l.Drain(0, 6)
	if got := l.String(); got != "world" {
		t.Errorf("Drain = %q", got)
	}
}

func TestLineIndent(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", ""},
		{"  abc", "  "},
		{"\t x", "\t "},
		{"    ", "    "},
	}
	for _, tt := range tests {
		if got := NewLine(tt.in).Indent().String(); got != tt.want {
			t.Errorf("Indent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLineIndex(t *testing.T) {
	l := NewLine("a.b.c")
	if got := l.Index('.', 0); got != 1 {
		t.Errorf("Index from 0 = %d, want 1", got)
	}
	if got := l.Index('.', 2); got != 3 {
		t.Errorf("Index from 2 = %d, want 3", got)
	}
	if got := l.Index('z', 0); got != -1 {
		t.Errorf("Index of missing = %d, want -1", got)
	}
}

func TestLineCloneIsIndependent(t *testing.T) {
	l := NewLine("abc")
	c := l.Clone()
	l.Set(0, 'x')
	if c.String() != "abc" {
		t.Errorf("clone changed to %q", c.String())
	}
}
