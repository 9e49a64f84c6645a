// Package renderer draws the editor screen.
//
// The renderer composes every frame into a single in-memory buffer and
// hands it to the terminal in one write. Terminals repaint whatever
// they receive as they receive it, so a frame sent as many small
// writes flickers; one write repaints atomically. Each frame hides the
// cursor, homes, redraws every line erasing to the end of each with
// Erase In Line, draws the status and message bars, parks the cursor
// at its editing position, and shows it again.
//
// Screen layout, top to bottom:
//
//   - the text area, one buffer row per line, "~" past the end of file
//   - the status bar in inverted video
//   - the message bar
//
// The renderer owns the Viewport that decides which buffer rows and
// columns are visible; Draw scrolls it just enough to keep the cursor
// on screen before composing.
package renderer
