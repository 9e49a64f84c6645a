package cursor

import (
	"fmt"

	"github.com/dshills/kiln/internal/engine/buffer"
)

// Cursor represents an insertion point in the buffer.
// Cursor is an immutable value type.
type Cursor struct {
	x int
	y int
}

// New creates a cursor at the origin.
func New() Cursor {
	return Cursor{}
}

// At creates a cursor at the given column and row.
func At(x, y int) Cursor {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return Cursor{x: x, y: y}
}

// X returns the cursor's column within its row.
func (c Cursor) X() int {
	return c.x
}

// Y returns the cursor's row.
func (c Cursor) Y() int {
	return c.y
}

// Rx returns the render column for the cursor, expanding any tabs to
// the left of it. On the line past the last row it is always 0.
func (c Cursor) Rx(b *buffer.Buffer) int {
	row := b.Row(c.y)
	if row == nil {
		return 0
	}
	return row.CxToRx(c.x)
}

// Move returns the cursor after a single step in the given direction.
//
// Stepping left at column 0 joins to the end of the previous row, and
// stepping right past the end of a row wraps to the start of the next.
// Vertical steps stop at the first row and at the line just past the
// last row. The result is always snapped to the destination row.
func (c Cursor) Move(d Direction, b *buffer.Buffer) Cursor {
	switch d {
	case DirLeft:
		if c.x > 0 {
			c.x--
		} else if c.y > 0 {
			c.y--
			c.x = b.RowLen(c.y)
		}
	case DirRight:
		if rowLen, ok := c.rowLen(b); ok {
			if c.x < rowLen {
				c.x++
			} else {
				c.y++
				c.x = 0
			}
		}
	case DirUp:
		if c.y > 0 {
			c.y--
		}
	case DirDown:
		if c.y < b.RowCount() {
			c.y++
		}
	}
	return c.Snap(b)
}

// StartOfLine returns the cursor at column 0 of its row.
func (c Cursor) StartOfLine() Cursor {
	c.x = 0
	return c
}

// EndOfLine returns the cursor just past the last character of its row.
func (c Cursor) EndOfLine(b *buffer.Buffer) Cursor {
	c.x = b.RowLen(c.y)
	return c
}

// WithY returns the cursor moved to the given row, clamped to the valid
// range and snapped to that row's length.
func (c Cursor) WithY(y int, b *buffer.Buffer) Cursor {
	if y < 0 {
		y = 0
	}
	if y > b.RowCount() {
		y = b.RowCount()
	}
	c.y = y
	return c.Snap(b)
}

// Snap clamps the column to the length of the current row. On the line
// past the last row the column becomes 0.
func (c Cursor) Snap(b *buffer.Buffer) Cursor {
	if rowLen := b.RowLen(c.y); c.x > rowLen {
		c.x = rowLen
	}
	return c
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d,%d)", c.x, c.y)
}

func (c Cursor) rowLen(b *buffer.Buffer) (int, bool) {
	if c.y < 0 || c.y >= b.RowCount() {
		return 0, false
	}
	return b.RowLen(c.y), true
}
