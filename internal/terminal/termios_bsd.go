//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

// TIOCSETAF applies the settings after pending output drains and
// discards unread input, matching tcsetattr(TCSAFLUSH).
const (
	ioctlReadTermios  = unix.TIOCGETA
	ioctlWriteTermios = unix.TIOCSETAF
)
