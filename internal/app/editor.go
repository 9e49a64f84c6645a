// Package app provides the editor's top-level state and control loop.
// It wires the terminal, input decoder, buffer, and renderer together
// and manages the application lifecycle.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/dshills/kiln/internal/engine/buffer"
	"github.com/dshills/kiln/internal/engine/cursor"
	"github.com/dshills/kiln/internal/input/key"
	"github.com/dshills/kiln/internal/renderer"
	"github.com/dshills/kiln/internal/renderer/viewport"
	"github.com/dshills/kiln/internal/terminal"
)

// Version is the editor version shown in the welcome banner.
const Version = "0.1.0"

// statusBarLines is the screen height reserved below the text area.
const statusBarLines = 2

var _ key.Source = (*terminal.Terminal)(nil)

// Editor owns all editor state and drives the read-dispatch-draw loop.
// Everything runs on the calling goroutine; the only place the editor
// blocks is the terminal read.
type Editor struct {
	term   *terminal.Terminal
	dec    *key.Decoder
	rend   *renderer.Renderer
	buf    *buffer.Buffer
	cur    cursor.Cursor
	logger *Logger

	filename  string
	message   string
	messageAt time.Time
}

// Options configure a new Editor.
type Options struct {
	// Filename is opened into the buffer at startup when non-empty.
	Filename string

	// Logger receives diagnostics. Nil disables logging.
	Logger *Logger
}

// New creates an Editor over the given terminal. The terminal is left
// untouched until Run.
func New(term *terminal.Terminal, opts Options) *Editor {
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}
	return &Editor{
		term:     term,
		buf:      buffer.New(),
		cur:      cursor.New(),
		logger:   logger,
		filename: opts.Filename,
	}
}

// Run takes over the terminal and drives the editor until the user
// quits or a fatal error occurs. A clean Ctrl-Q quit reports ErrQuit,
// which callers should treat as success. The terminal is restored on
// every return path; callers should print any returned error only
// after Run has returned, when the screen is usable again.
func (e *Editor) Run() error {
	if !e.term.IsTerminal() {
		return ErrNotTerminal
	}

	if err := e.term.MakeRaw(); err != nil {
		return NewOperationError("entering raw mode", "", err)
	}
	defer e.shutdown()

	cols, rows, err := e.term.Size()
	if err != nil {
		return NewOperationError("measuring window", "", err)
	}
	e.logger.Info("window measured: %dx%d", cols, rows)

	vp := viewport.New(cols, rows-statusBarLines)
	e.rend = renderer.New(e.term, vp, Version)
	e.dec = key.NewDecoder(e.term)

	if err := e.rend.Clear(); err != nil {
		return NewOperationError("clearing screen", "", err)
	}

	if e.filename != "" {
		if err := e.buf.Open(e.filename); err != nil {
			return NewOperationError("opening", e.filename, err)
		}
		e.logger.Info("opened %s: %d rows", e.filename, e.buf.RowCount())
	}

	e.SetMessage("HELP: Ctrl-Q = quit")

	for {
		if err := e.rend.Draw(e.frame()); err != nil {
			return NewOperationError("drawing screen", "", err)
		}

		ev, err := e.dec.Next()
		if err != nil {
			return NewOperationError("reading input", "", err)
		}
		e.logger.Debug("key: %s", ev)

		if err := e.dispatch(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				e.logger.Info("quit")
			}
			return err
		}
	}
}

// shutdown clears the screen and leaves raw mode. It is the single
// exit path for Run, so the terminal comes back usable whether the
// editor quit or failed.
func (e *Editor) shutdown() {
	_, _ = e.term.Write([]byte("\x1b[2J\x1b[H"))
	if err := e.term.Restore(); err != nil {
		e.logger.Error("restoring terminal: %v", err)
	}
}

// SetMessage replaces the message bar text. The renderer stops showing
// it after a few seconds.
func (e *Editor) SetMessage(format string, args ...any) {
	e.message = fmt.Sprintf(format, args...)
	e.messageAt = time.Now()
}

func (e *Editor) frame() renderer.Frame {
	return renderer.Frame{
		Buffer:    e.buf,
		Cursor:    e.cur,
		Filename:  e.filename,
		Message:   e.message,
		MessageAt: e.messageAt,
	}
}
