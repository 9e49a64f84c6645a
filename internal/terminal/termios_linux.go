package terminal

import "golang.org/x/sys/unix"

// TCSETSF applies the settings after pending output drains and
// discards unread input, matching tcsetattr(TCSAFLUSH).
const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETSF
)
