package key

import (
	"fmt"
	"unicode"
)

// Event represents a single decoded key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key) Event {
	return Event{Key: k}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this event should insert its character: a
// printable rune with no Control modifier. Control chords carry a
// letter rune but are commands, not text.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) && !e.Modifiers.HasCtrl()
}

// String returns a compact representation like "a", "C-q", or "Up".
func (e Event) String() string {
	prefix := ""
	if e.Modifiers.HasCtrl() {
		prefix = "C-"
	}

	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			return prefix + "Space"
		}
		return prefix + string(e.Rune)
	case KeyEscape:
		return prefix + "Esc"
	default:
		return prefix + e.Key.String()
	}
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
