package fileio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{""}},
		{"\n", []string{""}},
		{"a", []string{"a"}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Split(tt.in)); diff != "" {
			t.Errorf("Split(%q) (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	want := []string{"first", "", "third"}
	if st := Write(path, want); st != Ok {
		t.Fatalf("Write = %v", st)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "first\n\nthird\n" {
		t.Errorf("file = %q", data)
	}
	got, st := Read(path)
	if st != Ok {
		t.Fatalf("Read = %v", st)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestReadMissing(t *testing.T) {
	_, st := Read(filepath.Join(t.TempDir(), "nope"))
	if st != NotFound {
		t.Errorf("Read = %v, want NotFound", st)
	}
}

func TestWriteIntoMissingDir(t *testing.T) {
	st := Write(filepath.Join(t.TempDir(), "no", "such", "file"), []string{"x"})
	if st != NotFound {
		t.Errorf("Write = %v, want NotFound", st)
	}
}

func TestReadDirectory(t *testing.T) {
	_, st := Read(t.TempDir())
	if st != Other {
		t.Errorf("Read(dir) = %v, want Other", st)
	}
}
