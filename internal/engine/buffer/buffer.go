package buffer

// Buffer owns the ordered collection of rows that make up the open
// document. Row order is document order.
type Buffer struct {
	rows []Row
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// RowCount returns the number of rows in the document.
func (b *Buffer) RowCount() int {
	return len(b.rows)
}

// IsEmpty reports whether the document holds no rows.
func (b *Buffer) IsEmpty() bool {
	return len(b.rows) == 0
}

// Row returns the row at index y, or nil when y is out of range. The
// one-past-end cursor row has no backing row and reads as nil.
func (b *Buffer) Row(y int) *Row {
	if y < 0 || y >= len(b.rows) {
		return nil
	}
	return &b.rows[y]
}

// RowLen returns the character length of row y. Out-of-range rows,
// including the one-past-end cursor position, read as length zero.
func (b *Buffer) RowLen(y int) int {
	if y < 0 || y >= len(b.rows) {
		return 0
	}
	return len(b.rows[y].chars)
}

// Append adds a new row holding a copy of text to the end of the
// document and computes its render form.
func (b *Buffer) Append(text []byte) {
	b.rows = append(b.rows, newRow(text))
}

// InsertChar inserts c into row y at column x. The one-past-end row
// position first grows the document by an empty row; x is clamped to
// the row's bounds. The row's render form is recomputed before return.
func (b *Buffer) InsertChar(y, x int, c byte) {
	if y == len(b.rows) {
		b.Append(nil)
	}
	if y < 0 || y >= len(b.rows) {
		return
	}
	b.rows[y].insertChar(x, c)
}
