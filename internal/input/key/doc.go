// Package key provides key event types and terminal input decoding.
//
// This package defines the fundamental types for representing keyboard
// input:
//
//   - Key: Identifies a keyboard key (special keys or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single decoded key press
//   - Decoder: Turns raw terminal bytes into Events
//
// # Decoding
//
// In raw mode the terminal delivers keyboard input as bytes. Printable
// keys arrive as themselves, control chords as bytes 0x00-0x1F, and
// keys like the arrows as multi-byte escape sequences. The Decoder
// owns the one genuinely ambiguous case: a lone 0x1B is the Escape key,
// while 0x1B followed quickly by more bytes is a sequence. It resolves
// the ambiguity with the read timeout supplied by its Source; a pause
// after 0x1B means the user pressed Escape.
//
// An unrecognized sequence is consumed and reported as Escape.
package key
