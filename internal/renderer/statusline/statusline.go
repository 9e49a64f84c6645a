// Package statusline composes the text of the two bottom screen lines.
package statusline

import (
	"fmt"
	"strings"
	"time"
)

// MessageTimeout is how long a status message stays visible.
const MessageTimeout = 5 * time.Second

// NoName is shown in place of a filename when no file is open.
const NoName = "[No Name]"

// Bar composes the status bar text: filename and line count on the
// left, cursor position on the right, padded with spaces to exactly
// width bytes. Long filenames are truncated to 20 characters.
func Bar(width int, filename string, lines, y int) string {
	if filename == "" {
		filename = NoName
	}
	left := fmt.Sprintf("%.20s - %d lines", filename, lines)
	right := fmt.Sprintf("%d/%d", y+1, lines)
	return Compose(width, left, right)
}

// Compose lays left and right out on one line of exactly width bytes.
// Left is truncated to fit; right appears flush against the right edge
// when the space between them allows, and is dropped otherwise.
func Compose(width int, left, right string) string {
	if len(left) > width {
		left = left[:width]
	}

	var b strings.Builder
	b.Grow(width)
	b.WriteString(left)
	for n := len(left); n < width; n++ {
		if width-n == len(right) {
			b.WriteString(right)
			break
		}
		b.WriteByte(' ')
	}
	return b.String()
}

// Message returns the message bar text: msg truncated to width while
// it is younger than MessageTimeout, and empty after that.
func Message(width int, msg string, setAt, now time.Time) string {
	if msg == "" || now.Sub(setAt) >= MessageTimeout {
		return ""
	}
	if len(msg) > width {
		msg = msg[:width]
	}
	return msg
}
