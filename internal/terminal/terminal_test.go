package terminal

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestRawSettings(t *testing.T) {
	var orig unix.Termios
	orig.Iflag = unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	orig.Oflag = unix.OPOST
	orig.Lflag = unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	orig.Cc[unix.VMIN] = 1
	orig.Cc[unix.VTIME] = 0

	raw := rawSettings(orig)

	if raw.Iflag&(unix.BRKINT|unix.ICRNL|unix.INPCK|unix.ISTRIP|unix.IXON) != 0 {
		t.Errorf("input flags not cleared: %#x", raw.Iflag)
	}
	if raw.Oflag&unix.OPOST != 0 {
		t.Errorf("output processing not cleared: %#x", raw.Oflag)
	}
	if raw.Cflag&unix.CS8 != unix.CS8 {
		t.Errorf("character size not set to 8 bits: %#x", raw.Cflag)
	}
	if raw.Lflag&(unix.ECHO|unix.ICANON|unix.IEXTEN|unix.ISIG) != 0 {
		t.Errorf("local flags not cleared: %#x", raw.Lflag)
	}
	if raw.Cc[unix.VMIN] != 0 {
		t.Errorf("VMIN = %d, want 0", raw.Cc[unix.VMIN])
	}
	if raw.Cc[unix.VTIME] != 1 {
		t.Errorf("VTIME = %d, want 1", raw.Cc[unix.VTIME])
	}
}

func TestRawSettingsPreservesUnrelatedFlags(t *testing.T) {
	var orig unix.Termios
	orig.Iflag = unix.IGNBRK | unix.IXON

	raw := rawSettings(orig)

	if raw.Iflag&unix.IGNBRK == 0 {
		t.Errorf("unrelated input flag cleared: %#x", raw.Iflag)
	}
}

func TestParseCursorReport(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		wantRows int
		wantCols int
		wantErr  bool
	}{
		{"typical", "\x1b[24;80R", 24, 80, false},
		{"large", "\x1b[999;999R", 999, 999, false},
		{"minimum", "\x1b[1;1R", 1, 1, false},
		{"empty", "", 0, 0, true},
		{"missing escape", "24;80R", 0, 0, true},
		{"missing bracket", "\x1b24;80R", 0, 0, true},
		{"missing terminator", "\x1b[24;80", 0, 0, true},
		{"non-numeric", "\x1b[ab;cdR", 0, 0, true},
		{"missing separator", "\x1b[2480R", 0, 0, true},
		{"zero size", "\x1b[0;0R", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, cols, err := parseCursorReport([]byte(tt.reply))

			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseCursorReport(%q) expected error, got %d,%d", tt.reply, rows, cols)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCursorReport(%q) error: %v", tt.reply, err)
			}
			if rows != tt.wantRows || cols != tt.wantCols {
				t.Errorf("parseCursorReport(%q) = %d,%d, want %d,%d",
					tt.reply, rows, cols, tt.wantRows, tt.wantCols)
			}
		})
	}
}
