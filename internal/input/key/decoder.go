package key

const (
	escByte = 0x1b
	delByte = 0x7f
)

// Source supplies raw input bytes from the terminal.
type Source interface {
	// ReadByte blocks until the next input byte arrives.
	ReadByte() (byte, error)

	// TryReadByte waits at most one read timeout for the next byte.
	// ok reports whether a byte arrived before the timeout expired.
	TryReadByte() (b byte, ok bool, err error)
}

// Decoder turns raw terminal bytes into key events. It reads exactly
// the bytes belonging to one key press per call and carries no state
// between calls.
type Decoder struct {
	src Source
}

// NewDecoder creates a decoder reading from the given byte source.
func NewDecoder(src Source) *Decoder {
	return &Decoder{src: src}
}

// Next blocks until one key press has been decoded and returns it.
func (d *Decoder) Next() (Event, error) {
	b, err := d.src.ReadByte()
	if err != nil {
		return Event{}, err
	}

	switch {
	case b == escByte:
		return d.decodeEscape()
	case b == '\r':
		return NewSpecialEvent(KeyEnter), nil
	case b == '\t':
		return NewSpecialEvent(KeyTab), nil
	case b == delByte:
		return NewSpecialEvent(KeyBackspace), nil
	case b < 0x20:
		return decodeControl(b), nil
	default:
		return NewRuneEvent(rune(b), ModNone), nil
	}
}

// decodeControl maps a control byte to the letter chord that produces
// it: Ctrl-A sends 0x01 through Ctrl-Z sending 0x1A. Control bytes
// outside that range have no key of their own and decode to KeyNone.
func decodeControl(b byte) Event {
	if b >= 0x01 && b <= 0x1a {
		return NewRuneEvent(rune('a'+b-1), ModCtrl)
	}
	return Event{Key: KeyNone}
}

// decodeEscape disambiguates a leading 0x1B. If no byte follows within
// the read timeout the user pressed the Escape key itself; otherwise
// the bytes form a CSI (ESC [) or SS3 (ESC O) sequence.
func (d *Decoder) decodeEscape() (Event, error) {
	b, ok, err := d.src.TryReadByte()
	if err != nil {
		return Event{}, err
	}
	if !ok {
		return NewSpecialEvent(KeyEscape), nil
	}

	switch b {
	case '[':
		return d.decodeCSI()
	case 'O':
		return d.decodeSS3()
	default:
		return NewSpecialEvent(KeyEscape), nil
	}
}

func (d *Decoder) decodeCSI() (Event, error) {
	b, ok, err := d.src.TryReadByte()
	if err != nil {
		return Event{}, err
	}
	if !ok {
		return NewSpecialEvent(KeyEscape), nil
	}

	if b >= '0' && b <= '9' {
		fin, ok, err := d.src.TryReadByte()
		if err != nil {
			return Event{}, err
		}
		if !ok || fin != '~' {
			return NewSpecialEvent(KeyEscape), nil
		}
		switch b {
		case '1', '7':
			return NewSpecialEvent(KeyHome), nil
		case '4', '8':
			return NewSpecialEvent(KeyEnd), nil
		case '3':
			return NewSpecialEvent(KeyDelete), nil
		case '5':
			return NewSpecialEvent(KeyPageUp), nil
		case '6':
			return NewSpecialEvent(KeyPageDown), nil
		default:
			return NewSpecialEvent(KeyEscape), nil
		}
	}

	switch b {
	case 'A':
		return NewSpecialEvent(KeyUp), nil
	case 'B':
		return NewSpecialEvent(KeyDown), nil
	case 'C':
		return NewSpecialEvent(KeyRight), nil
	case 'D':
		return NewSpecialEvent(KeyLeft), nil
	case 'H':
		return NewSpecialEvent(KeyHome), nil
	case 'F':
		return NewSpecialEvent(KeyEnd), nil
	default:
		return NewSpecialEvent(KeyEscape), nil
	}
}

func (d *Decoder) decodeSS3() (Event, error) {
	b, ok, err := d.src.TryReadByte()
	if err != nil {
		return Event{}, err
	}
	if !ok {
		return NewSpecialEvent(KeyEscape), nil
	}

	switch b {
	case 'H':
		return NewSpecialEvent(KeyHome), nil
	case 'F':
		return NewSpecialEvent(KeyEnd), nil
	default:
		return NewSpecialEvent(KeyEscape), nil
	}
}
