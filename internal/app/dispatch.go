package app

import (
	"github.com/dshills/kiln/internal/engine/cursor"
	"github.com/dshills/kiln/internal/input/key"
)

// dispatch routes one key event to its editing operation. Unbound keys
// are ignored; the editor never fails on input it does not understand.
func (e *Editor) dispatch(ev key.Event) error {
	switch {
	case ev.Key == key.KeyRune && ev.Modifiers.HasCtrl():
		if ev.Rune == 'q' {
			return ErrQuit
		}

	case ev.Key.IsArrowKey():
		e.cur = e.cur.Move(directionFor(ev.Key), e.buf)

	case ev.Key == key.KeyHome:
		e.cur = e.cur.StartOfLine()

	case ev.Key == key.KeyEnd:
		e.cur = e.cur.EndOfLine(e.buf)

	case ev.Key == key.KeyPageUp, ev.Key == key.KeyPageDown:
		e.movePage(ev.Key)

	case ev.IsChar():
		e.buf.InsertChar(e.cur.Y(), e.cur.X(), byte(ev.Rune))
		e.cur = e.cur.Move(cursor.DirRight, e.buf)
	}

	return nil
}

// movePage moves the cursor by one screenful. The cursor is first
// anchored to the edge of the current view, then stepped a full page
// so the viewport follows through the usual scroll logic.
func (e *Editor) movePage(k key.Key) {
	vp := e.rend.Viewport()

	dir := cursor.DirDown
	if k == key.KeyPageUp {
		dir = cursor.DirUp
		e.cur = e.cur.WithY(vp.RowOffset(), e.buf)
	} else {
		e.cur = e.cur.WithY(vp.RowOffset()+vp.Rows()-1, e.buf)
	}

	for times := vp.Rows(); times > 0; times-- {
		e.cur = e.cur.Move(dir, e.buf)
	}
}

func directionFor(k key.Key) cursor.Direction {
	switch k {
	case key.KeyUp:
		return cursor.DirUp
	case key.KeyDown:
		return cursor.DirDown
	case key.KeyLeft:
		return cursor.DirLeft
	default:
		return cursor.DirRight
	}
}
