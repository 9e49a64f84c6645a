// Package viewport tracks the visible window over the buffer.
package viewport

// Viewport represents the portion of the buffer shown on screen. The
// offsets name the buffer row and render column of the top-left text
// cell; rows and cols are the size of the text area in screen cells.
type Viewport struct {
	rowOff int
	colOff int
	rows   int
	cols   int
}

// New creates a viewport with the given text area size.
// Cols and rows are clamped to a minimum of 1 to prevent underflow.
func New(cols, rows int) *Viewport {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Viewport{cols: cols, rows: rows}
}

// Rows returns the height of the text area in screen rows.
func (v *Viewport) Rows() int {
	return v.rows
}

// Cols returns the width of the text area in screen columns.
func (v *Viewport) Cols() int {
	return v.cols
}

// RowOffset returns the buffer row shown on the first screen row.
func (v *Viewport) RowOffset() int {
	return v.rowOff
}

// ColOffset returns the render column shown in the first screen column.
func (v *Viewport) ColOffset() int {
	return v.colOff
}

// ScrollToFit adjusts the offsets by the minimum amount that brings the
// cell at buffer row y, render column rx inside the text area. Offsets
// never change when the cell is already visible.
// Returns true if the viewport moved.
func (v *Viewport) ScrollToFit(y, rx int) bool {
	rowOff, colOff := v.rowOff, v.colOff

	if y < v.rowOff {
		v.rowOff = y
	}
	if y >= v.rowOff+v.rows {
		v.rowOff = y - v.rows + 1
	}
	if rx < v.colOff {
		v.colOff = rx
	}
	if rx >= v.colOff+v.cols {
		v.colOff = rx - v.cols + 1
	}

	return v.rowOff != rowOff || v.colOff != colOff
}

// RowToScreen converts a buffer row to a screen row within the text
// area. Returns -1 if the row is not visible.
func (v *Viewport) RowToScreen(y int) int {
	if y < v.rowOff || y >= v.rowOff+v.rows {
		return -1
	}
	return y - v.rowOff
}

// IsVisible returns true if the cell at buffer row y, render column rx
// falls inside the text area.
func (v *Viewport) IsVisible(y, rx int) bool {
	return y >= v.rowOff && y < v.rowOff+v.rows &&
		rx >= v.colOff && rx < v.colOff+v.cols
}
