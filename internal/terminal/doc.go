// Package terminal owns the controlling terminal: raw mode, sizing,
// and byte-level input.
//
// The package handles:
//
//   - Raw mode entry and exit via MakeRaw and Restore
//   - Window measurement via Size, with an escape-sequence fallback
//   - Timed single-byte reads for the input decoder
//
// # Raw Mode
//
// In its default cooked mode the terminal driver buffers input by line
// and interprets control characters. MakeRaw turns all of that off so
// every key press reaches the program immediately and unmodified, and
// remembers the original settings. Restore puts them back; a terminal
// left raw after exit renders the user's shell unusable, so Restore
// must run on every exit path, including fatal errors.
//
// # Input Timing
//
// Raw mode is configured so a read returns after at most a tenth of a
// second even when no key was pressed. ReadByte hides those empty
// reads and blocks until a byte arrives; TryReadByte exposes a single
// timed attempt, which is what lets the input decoder tell a lone
// Escape press from the start of an escape sequence.
package terminal
