package renderer

// VT100 control sequences.
// https://vt100.net/docs/vt100-ug/chapter3.html
const (
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	clearLine   = "\x1b[K"
	invertOn    = "\x1b[7m"
	invertOff   = "\x1b[m"
)
