package keys

import "bufio"

// Decoder reads raw bytes from a terminal in raw mode and produces Key
// values, following the ESC-then-'['-then-params-until-final-byte CSI
// reader shape from the teacher's internal/interactive/keys_csi.go and
// keys_escape.go, adapted to the closed Key enum above.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder wraps r for key decoding.
func NewDecoder(r *bufio.Reader) *Decoder {
	return &Decoder{r: r}
}

// Next blocks for and decodes a single key.
func (d *Decoder) Next() (Key, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return Key{}, err
	}

	switch b {
	case '\r', '\n':
		return Key{Kind: Enter}, nil
	case 0x1b:
		return d.decodeEscape()
	case 0x7f:
		return Key{Kind: Backspace}, nil
	case 0x08:
		return Key{Kind: CtrlH}, nil
	case 0x17:
		return Key{Kind: CtrlW}, nil
	case 0x15:
		return Key{Kind: CtrlU}, nil
	case 0x05:
		return Key{Kind: CtrlE}, nil
	case 0x04:
		return Key{Kind: CtrlD}, nil
	case 0x06:
		return Key{Kind: CtrlF}, nil
	case 0x13:
		return Key{Kind: CtrlS}, nil
	case 0x0e:
		return Key{Kind: CtrlN}, nil
	case 0x10:
		return Key{Kind: CtrlP}, nil
	case '\t':
		return Key{Kind: Tab}, nil
	case ' ':
		return Key{Kind: Space, Rune: ' '}, nil
	}

	if b < 0x80 {
		return Key{Kind: Char, Rune: rune(b)}, nil
	}

	// multi-byte UTF-8 rune: unread and decode via Rune helper.
	if err := d.r.UnreadByte(); err != nil {
		return Key{}, err
	}
	r, _, err := d.r.ReadRune()
	if err != nil {
		return Key{}, err
	}
	return Key{Kind: Char, Rune: r}, nil
}

// decodeEscape is called right after consuming the leading 0x1b byte. A
// lone ESC with nothing buffered behind it (no CSI introducer available
// within the read) decodes as Esc; callers that need to distinguish a
// genuinely lone ESC from the start of a slow-arriving escape sequence
// should probe pending input (internal/term.PendingInput) before calling
// Next.
func (d *Decoder) decodeEscape() (Key, error) {
	if d.r.Buffered() == 0 {
		return Key{Kind: Esc}, nil
	}
	next, err := d.r.Peek(1)
	if err != nil || len(next) == 0 || next[0] != '[' {
		return Key{Kind: Esc}, nil
	}
	_, _ = d.r.ReadByte() // consume '['

	var params []byte
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return Key{Kind: Esc}, nil
		}
		if b >= 'A' && b <= 'Z' || b == '~' {
			return finalByteToKey(b, params), nil
		}
		params = append(params, b)
	}
}

func finalByteToKey(final byte, params []byte) Key {
	switch final {
	case 'A':
		return Key{Kind: Up}
	case 'B':
		return Key{Kind: Down}
	case 'C':
		return Key{Kind: Right}
	case 'D':
		return Key{Kind: Left}
	case 'H':
		return Key{Kind: Home}
	case 'F':
		return Key{Kind: End}
	case '~':
		switch string(params) {
		case "1", "7":
			return Key{Kind: Home}
		case "4", "8":
			return Key{Kind: End}
		case "5":
			return Key{Kind: PageUp}
		case "6":
			return Key{Kind: PageDown}
		}
	}
	return Key{Kind: Esc}
}
