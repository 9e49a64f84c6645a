package terminal

import (
	"fmt"

	"golang.org/x/term"
)

// Size returns the terminal dimensions in character cells. The kernel
// is asked first; terminals reached over links that do not forward the
// window size report zero columns, in which case the size is measured
// with escape sequences instead.
func (t *Terminal) Size() (cols, rows int, err error) {
	cols, rows, err = term.GetSize(int(t.out.Fd()))
	if err == nil && cols > 0 {
		return cols, rows, nil
	}
	return t.sizeFromCursor()
}

// sizeFromCursor measures the window using only the wire protocol. Two
// bounded moves (999 columns right, 999 rows down) park the cursor in
// the bottom-right corner, and a Device Status Report query asks the
// terminal where the cursor ended up. That position is the window size.
func (t *Terminal) sizeFromCursor() (cols, rows int, err error) {
	if _, err := t.out.Write([]byte("\x1b[999C\x1b[999B\x1b[6n")); err != nil {
		return 0, 0, fmt.Errorf("querying cursor position: %w", err)
	}

	var reply [32]byte
	n := 0
	for n < len(reply) {
		b, ok, err := t.TryReadByte()
		if err != nil {
			return 0, 0, fmt.Errorf("reading cursor report: %w", err)
		}
		if !ok {
			break
		}
		reply[n] = b
		n++
		if b == 'R' {
			break
		}
	}

	rows, cols, err = parseCursorReport(reply[:n])
	if err != nil {
		return 0, 0, err
	}
	return cols, rows, nil
}

// parseCursorReport parses a cursor position report of the form
// ESC [ <rows> ; <cols> R, with both numbers at least 1.
func parseCursorReport(reply []byte) (rows, cols int, err error) {
	if len(reply) < 6 || reply[0] != escByte || reply[1] != '[' || reply[len(reply)-1] != 'R' {
		return 0, 0, fmt.Errorf("malformed cursor report %q", reply)
	}
	if _, err := fmt.Sscanf(string(reply[2:len(reply)-1]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("malformed cursor report %q: %w", reply, err)
	}
	if rows < 1 || cols < 1 {
		return 0, 0, fmt.Errorf("cursor report out of range %q", reply)
	}
	return rows, cols, nil
}
