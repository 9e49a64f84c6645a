package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

const escByte = 0x1b

// Terminal wraps the controlling terminal's input and output streams.
// It is not safe for concurrent use.
type Terminal struct {
	in   *os.File
	out  *os.File
	orig *unix.Termios
}

// New creates a Terminal over the given streams. Nothing is changed
// until MakeRaw is called.
func New(in, out *os.File) *Terminal {
	return &Terminal{in: in, out: out}
}

// IsTerminal reports whether both streams are attached to a terminal.
func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(int(t.in.Fd())) && term.IsTerminal(int(t.out.Fd()))
}

// MakeRaw switches the input terminal into raw mode and remembers the
// settings in effect before the switch. Calling it again while already
// raw is a no-op.
func (t *Terminal) MakeRaw() error {
	if t.orig != nil {
		return nil
	}

	orig, err := unix.IoctlGetTermios(int(t.in.Fd()), ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("getting terminal attributes: %w", err)
	}

	raw := rawSettings(*orig)
	if err := unix.IoctlSetTermios(int(t.in.Fd()), ioctlWriteTermios, &raw); err != nil {
		return fmt.Errorf("setting terminal attributes: %w", err)
	}

	t.orig = orig
	return nil
}

// Restore puts back the terminal settings MakeRaw saved. It is safe to
// call when raw mode was never entered.
func (t *Terminal) Restore() error {
	if t.orig == nil {
		return nil
	}

	orig := t.orig
	t.orig = nil
	if err := unix.IoctlSetTermios(int(t.in.Fd()), ioctlWriteTermios, orig); err != nil {
		return fmt.Errorf("restoring terminal attributes: %w", err)
	}
	return nil
}

// rawSettings returns a copy of orig with the terminal driver's input
// buffering, echoing, signal generation, and output processing turned
// off, and the read timer set so reads return after a tenth of a
// second when no input is pending.
func rawSettings(orig unix.Termios) unix.Termios {
	raw := orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	return raw
}

// Write sends bytes to the output terminal.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// ReadByte blocks until the next input byte arrives. In raw mode the
// kernel reports an expired read timer as a zero-length read, which Go
// surfaces as io.EOF; those ticks are retried here.
func (t *Terminal) ReadByte() (byte, error) {
	var buf [1]byte
	for {
		n, err := t.in.Read(buf[:])
		if n == 1 {
			return buf[0], nil
		}
		if err != nil && err != io.EOF {
			return 0, err
		}
	}
}

// TryReadByte makes a single timed read attempt. ok reports whether a
// byte arrived before the read timer expired.
func (t *Terminal) TryReadByte() (byte, bool, error) {
	var buf [1]byte
	n, err := t.in.Read(buf[:])
	if n == 1 {
		return buf[0], true, nil
	}
	if err != nil && err != io.EOF {
		return 0, false, err
	}
	return 0, false, nil
}
