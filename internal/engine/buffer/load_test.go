package buffer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty input", "", nil},
		{"single terminated line", "abc\n", []string{"abc"}},
		{"single unterminated line", "abc", []string{"abc"}},
		{"blank line preserved", "a\n\nb\n", []string{"a", "", "b"}},
		{"crlf stripped", "a\r\nb\r\n", []string{"a", "b"}},
		{"final line without newline", "a\nb", []string{"a", "b"}},
		{"trailing bare cr stripped", "abc\r", []string{"abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			if err := b.Load(strings.NewReader(tt.input)); err != nil {
				t.Fatalf("Load() error: %v", err)
			}

			if b.RowCount() != len(tt.want) {
				t.Fatalf("RowCount() = %d, want %d", b.RowCount(), len(tt.want))
			}

			for y, want := range tt.want {
				if got := string(b.Row(y).Chars()); got != want {
					t.Errorf("row %d = %q, want %q", y, got, want)
				}
			}
		})
	}
}

func TestLoadExpandsTabs(t *testing.T) {
	b := New()
	if err := b.Load(strings.NewReader("abc\n\nde\tf\n")); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if b.RowCount() != 3 {
		t.Fatalf("RowCount() = %d, want 3", b.RowCount())
	}

	if got := string(b.Row(2).Render()); got != "de  f" {
		t.Errorf("row 2 render = %q, want %q", got, "de  f")
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	b := New()
	if err := b.Open(path); err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	if b.RowCount() != 2 {
		t.Fatalf("RowCount() = %d, want 2", b.RowCount())
	}

	if got := string(b.Row(1).Chars()); got != "two" {
		t.Errorf("row 1 = %q, want %q", got, "two")
	}
}

func TestOpenMissingFile(t *testing.T) {
	b := New()

	err := b.Open(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("Open() should fail for a missing file")
	}

	if !os.IsNotExist(err) {
		t.Errorf("Open() error = %v, want not-exist", err)
	}
}
