package renderer

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/dshills/kiln/internal/engine/buffer"
	"github.com/dshills/kiln/internal/engine/cursor"
	"github.com/dshills/kiln/internal/renderer/statusline"
	"github.com/dshills/kiln/internal/renderer/viewport"
)

// Frame carries everything one screen repaint needs.
type Frame struct {
	// Buffer is the text being edited.
	Buffer *buffer.Buffer

	// Cursor is the editing position the frame is drawn around.
	Cursor cursor.Cursor

	// Filename appears in the status bar; empty means no file open.
	Filename string

	// Message and MessageAt feed the message bar, which shows Message
	// until it ages out.
	Message   string
	MessageAt time.Time
}

// Renderer composes frames and writes them to the terminal.
// It is not safe for concurrent use.
type Renderer struct {
	out     io.Writer
	vp      *viewport.Viewport
	version string
	buf     bytes.Buffer
	now     func() time.Time
}

// New creates a renderer drawing to out through the given viewport.
// The version string appears in the welcome banner.
func New(out io.Writer, vp *viewport.Viewport, version string) *Renderer {
	return &Renderer{
		out:     out,
		vp:      vp,
		version: version,
		now:     time.Now,
	}
}

// Viewport returns the viewport the renderer draws through.
func (r *Renderer) Viewport() *viewport.Viewport {
	return r.vp
}

// Clear wipes the screen and homes the cursor, outside any frame.
func (r *Renderer) Clear() error {
	_, err := io.WriteString(r.out, clearScreen+cursorHome)
	return err
}

// Draw scrolls the viewport to keep the cursor visible, composes the
// full screen, and sends it to the terminal in a single write.
func (r *Renderer) Draw(f Frame) error {
	rx := f.Cursor.Rx(f.Buffer)
	r.vp.ScrollToFit(f.Cursor.Y(), rx)

	r.buf.Reset()
	r.buf.WriteString(hideCursor)
	r.buf.WriteString(cursorHome)
	r.drawRows(f.Buffer)
	r.drawStatusBar(f)
	r.drawMessageBar(f)
	fmt.Fprintf(&r.buf, "\x1b[%d;%dH",
		f.Cursor.Y()-r.vp.RowOffset()+1, rx-r.vp.ColOffset()+1)
	r.buf.WriteString(showCursor)

	_, err := r.out.Write(r.buf.Bytes())
	return err
}

// drawRows fills the text area. Rows past the end of the buffer show a
// "~" marker; an empty buffer additionally shows the welcome banner a
// third of the way down.
func (r *Renderer) drawRows(b *buffer.Buffer) {
	for sy := 0; sy < r.vp.Rows(); sy++ {
		fileRow := r.vp.RowOffset() + sy
		if fileRow >= b.RowCount() {
			if b.IsEmpty() && sy == r.vp.Rows()/3 {
				r.drawBanner()
			} else {
				r.buf.WriteByte('~')
			}
		} else {
			r.drawRow(b.Row(fileRow))
		}
		r.buf.WriteString(clearLine)
		r.buf.WriteString("\r\n")
	}
}

// drawRow writes the visible slice of one row's rendered text.
func (r *Renderer) drawRow(row *buffer.Row) {
	render := row.Render()
	start := r.vp.ColOffset()
	if start > len(render) {
		start = len(render)
	}
	end := start + r.vp.Cols()
	if end > len(render) {
		end = len(render)
	}
	r.buf.Write(render[start:end])
}

func (r *Renderer) drawBanner() {
	banner := fmt.Sprintf("Kiln editor -- version %s", r.version)
	if len(banner) > r.vp.Cols() {
		banner = banner[:r.vp.Cols()]
	}
	padding := (r.vp.Cols() - len(banner)) / 2
	if padding > 0 {
		r.buf.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		r.buf.WriteByte(' ')
	}
	r.buf.WriteString(banner)
}

func (r *Renderer) drawStatusBar(f Frame) {
	r.buf.WriteString(invertOn)
	r.buf.WriteString(statusline.Bar(r.vp.Cols(), f.Filename, f.Buffer.RowCount(), f.Cursor.Y()))
	r.buf.WriteString(invertOff)
	r.buf.WriteString("\r\n")
}

func (r *Renderer) drawMessageBar(f Frame) {
	r.buf.WriteString(clearLine)
	r.buf.WriteString(statusline.Message(r.vp.Cols(), f.Message, f.MessageAt, r.now()))
}
