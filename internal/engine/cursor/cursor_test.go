package cursor

import (
	"testing"

	"github.com/dshills/kiln/internal/engine/buffer"
)

// testBuffer builds the fixture used by the movement tests:
//
//	row 0: "hello" (len 5)
//	row 1: "hi"    (len 2)
//	row 2: ""      (len 0)
//	row 3: "worlds!" (len 7)
func testBuffer() *buffer.Buffer {
	b := buffer.New()
	b.Append([]byte("hello"))
	b.Append([]byte("hi"))
	b.Append([]byte(""))
	b.Append([]byte("worlds!"))
	return b
}

func TestCursorMove(t *testing.T) {
	b := testBuffer()

	tests := []struct {
		name  string
		start Cursor
		dir   Direction
		wantX int
		wantY int
	}{
		{"left at origin stays", At(0, 0), DirLeft, 0, 0},
		{"left within row", At(3, 0), DirLeft, 2, 0},
		{"left joins previous row", At(0, 1), DirLeft, 5, 0},
		{"left joins empty row", At(0, 3), DirLeft, 0, 2},
		{"right within row", At(0, 0), DirRight, 1, 0},
		{"right at row end wraps", At(5, 0), DirRight, 0, 1},
		{"right past last row stays", At(0, 4), DirRight, 0, 4},
		{"right at end of last row wraps", At(7, 3), DirRight, 0, 4},
		{"up at top stays", At(3, 0), DirUp, 3, 0},
		{"up snaps to shorter row", At(6, 3), DirUp, 0, 2},
		{"down snaps to shorter row", At(5, 0), DirDown, 2, 1},
		{"down onto empty row", At(2, 1), DirDown, 0, 2},
		{"down stops past last row", At(0, 4), DirDown, 0, 4},
		{"down onto line past last row", At(3, 3), DirDown, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.Move(tt.dir, b)
			if got.X() != tt.wantX || got.Y() != tt.wantY {
				t.Errorf("Move(%v) = (%d,%d), want (%d,%d)", tt.dir, got.X(), got.Y(), tt.wantX, tt.wantY)
			}
		})
	}
}

func TestCursorStartOfLine(t *testing.T) {
	c := At(3, 1).StartOfLine()

	if c.X() != 0 || c.Y() != 1 {
		t.Errorf("StartOfLine() = (%d,%d), want (0,1)", c.X(), c.Y())
	}
}

func TestCursorEndOfLine(t *testing.T) {
	b := testBuffer()

	tests := []struct {
		name  string
		start Cursor
		wantX int
	}{
		{"first row", At(0, 0), 5},
		{"empty row", At(0, 2), 0},
		{"line past last row", At(0, 4), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.EndOfLine(b)
			if got.X() != tt.wantX {
				t.Errorf("EndOfLine() x = %d, want %d", got.X(), tt.wantX)
			}
			if got.Y() != tt.start.Y() {
				t.Errorf("EndOfLine() moved row to %d", got.Y())
			}
		})
	}
}

func TestCursorWithY(t *testing.T) {
	b := testBuffer()

	tests := []struct {
		name  string
		start Cursor
		y     int
		wantX int
		wantY int
	}{
		{"snaps to shorter row", At(5, 0), 1, 2, 1},
		{"negative clamps to top", At(1, 1), -3, 1, 0},
		{"beyond bottom clamps", At(0, 0), 99, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.WithY(tt.y, b)
			if got.X() != tt.wantX || got.Y() != tt.wantY {
				t.Errorf("WithY(%d) = (%d,%d), want (%d,%d)", tt.y, got.X(), got.Y(), tt.wantX, tt.wantY)
			}
		})
	}
}

func TestCursorRx(t *testing.T) {
	b := buffer.New()
	b.Append([]byte("tab\there"))

	tests := []struct {
		name string
		c    Cursor
		want int
	}{
		{"origin", At(0, 0), 0},
		{"before tab", At(3, 0), 3},
		{"past tab", At(4, 0), 4},
		{"after tab", At(5, 0), 5},
		{"line past last row", At(0, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Rx(b); got != tt.want {
				t.Errorf("Rx() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAtClampsNegative(t *testing.T) {
	c := At(-1, -2)

	if c.X() != 0 || c.Y() != 0 {
		t.Errorf("At(-1,-2) = (%d,%d), want (0,0)", c.X(), c.Y())
	}
}
