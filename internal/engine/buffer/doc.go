// Package buffer provides the editor's row-based text buffer.
//
// Text is stored as an ordered sequence of rows. Each row keeps two
// byte sequences: the characters exactly as stored (chars) and a
// derived display form (render) in which every tab is expanded with
// spaces up to the next TabStop boundary. The render form is pure
// derived state: any mutation of a row's characters recomputes it
// before the row is next read, and callers never modify it directly.
//
// Coordinate systems:
//
//   - cx: a column within a row's stored characters
//   - rx: the same position mapped into the render form; rx >= cx,
//     with equality exactly when no tab precedes the column
//
// Buffer is not safe for concurrent use. The editor mutates it from a
// single goroutine between frames.
package buffer
