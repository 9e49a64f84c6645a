// Package cursor provides cursor positioning over a row buffer.
//
// The cursor package handles:
//
//   - Grid positioning with the Cursor type (column X within row Y)
//   - Directional movement with line joining and wrapping via Move
//   - Column snapping when a move lands past the end of a shorter row
//
// Coordinate Model:
//
// A cursor addresses buffer contents, not screen cells. X counts bytes
// within the row's raw text, so a tab occupies a single X position even
// though it renders as several columns. Y may equal the buffer's row
// count, placing the cursor on the empty line after the last row; the
// only valid X there is 0.
//
// Movement:
//
// Moving left at column 0 joins to the end of the previous row. Moving
// right at the end of a row wraps to column 0 of the next row. After a
// vertical move the column is clamped to the destination row's length,
// so stepping from a long row to a short one never leaves the cursor
// dangling past the text.
//
// Basic usage:
//
//	cur := cursor.New()
//	cur = cur.Move(cursor.DirDown, buf)
//	cur = cur.Move(cursor.DirRight, buf)
//	cur = cur.EndOfLine(buf)
//
// Cursor is an immutable value type. Each operation returns the new
// position and never mutates the buffer.
package cursor
