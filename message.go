package j1587

// Message framing.
//
// Wire layout: [MID] [0xFF if page-2] [parameter encodings...] [checksum],
// at most MaxFrameLen bytes in total. All parameters of a message share one
// addressing page, and a data link escape parameter, if present, is the
// final one.

import (
	"fmt"
	"strings"
)

const (
	// MaxMID is the largest valid message (sender) identifier.
	MaxMID = 255

	// MaxFrameLen is the total length ceiling of an encoded message,
	// including MID, page marker, parameters, and checksum.
	MaxFrameLen = 21

	// minFrameLen is the shortest possible frame: MID, a single-byte fixed
	// parameter, and the checksum.
	minFrameLen = 4
)

// Message is an immutable J1587 message: a sender MID and a non-empty
// ordered parameter list. The checksum is derived, never set. Construct
// with NewMessage or DecodeMessage; a constructed Message always encodes.
type Message struct {
	mid    byte
	params []Parameter
}

// NewMessage validates mid and the structural invariants of params: the
// list is non-empty, all parameters share one addressing page
// (ErrPageMixing), at most one data link escape appears and only as the
// final element (ErrEscapeNotLast), and the total encoding fits MaxFrameLen
// (ErrMessageTooLong).
func NewMessage(mid int, params []Parameter) (Message, error) {
	if mid < 0 || mid > MaxMID {
		return Message{}, fmt.Errorf("j1587: MID %d out of range [0,%d]", mid, MaxMID)
	}
	if len(params) == 0 {
		return Message{}, fmt.Errorf("j1587: message requires at least one parameter")
	}

	page := params[0].PID().Page()
	for i, p := range params {
		if p.PID().Page() != page {
			return Message{}, fmt.Errorf("%w: %s at index %d in a page-%d message",
				ErrPageMixing, p.PID(), i, page)
		}
		if p.Kind() == KindDataLinkEscape && i != len(params)-1 {
			return Message{}, fmt.Errorf("%w: %s at index %d of %d",
				ErrEscapeNotLast, p.PID(), i, len(params))
		}
	}

	m := Message{mid: byte(mid), params: cloneParameters(params)}
	if n := m.EncodedLen(); n > MaxFrameLen {
		return Message{}, fmt.Errorf("%w: %d bytes, ceiling is %d",
			ErrMessageTooLong, n, MaxFrameLen)
	}
	return m, nil
}

// MID returns the sender identifier.
func (m Message) MID() byte {
	return m.mid
}

// Page returns the addressing page shared by the message's parameters.
func (m Message) Page() int {
	return m.params[0].PID().Page()
}

// Parameters returns a copy of the ordered parameter list.
func (m Message) Parameters() []Parameter {
	return cloneParameters(m.params)
}

// EncodedLen returns the exact length of Encode's result.
func (m Message) EncodedLen() int {
	n := 2 // MID + checksum
	if m.Page() == 2 {
		n++
	}
	for _, p := range m.params {
		n += p.encodedLen()
	}
	return n
}

// Checksum returns the derived checksum byte of the encoded message.
func (m Message) Checksum() byte {
	raw := m.Encode()
	return raw[len(raw)-1]
}

// Encode produces the exact wire byte sequence: MID, the 0xFF page marker
// for a page-2 message, each parameter in order, and the checksum. It never
// fails for a validly constructed Message.
func (m Message) Encode() []byte {
	out := make([]byte, 0, m.EncodedLen())
	out = append(out, m.mid)
	if m.Page() == 2 {
		out = append(out, pageMarker)
	}
	for _, p := range m.params {
		out = p.appendWire(out)
	}
	return append(out, Checksum(out))
}

// DecodeMessage parses one complete frame. It is the exact inverse of
// Encode: the MID byte, an optional 0xFF page marker, parameters up to the
// trailing checksum byte, then checksum verification and a re-validation of
// the structural invariants so a well-formed-on-the-wire but rule-violating
// frame is still rejected.
func DecodeMessage(data []byte) (Message, error) {
	if len(data) < minFrameLen {
		return Message{}, fmt.Errorf("%w: frame is %d bytes, minimum is %d",
			ErrTruncatedParameter, len(data), minFrameLen)
	}
	if len(data) > MaxFrameLen {
		return Message{}, fmt.Errorf("%w: frame is %d bytes, ceiling is %d",
			ErrMessageTooLong, len(data), MaxFrameLen)
	}

	mid := data[0]
	region := data[1 : len(data)-1] // parameters, optionally led by the page marker
	page := 1
	if region[0] == pageMarker {
		page = 2
		region = region[1:]
	}

	var params []Parameter
	for off := 0; off < len(region); {
		p, n, err := decodeParameter(region[off:], page)
		if err != nil {
			return Message{}, err
		}
		params = append(params, p)
		off += n
	}

	if err := VerifyChecksum(data); err != nil {
		return Message{}, err
	}
	return NewMessage(int(mid), params)
}

// Equal reports structural equality: same MID and pairwise-equal parameters
// in the same order.
func (m Message) Equal(other Message) bool {
	if m.mid != other.mid || len(m.params) != len(other.params) {
		return false
	}
	for i, p := range m.params {
		if !p.Equal(other.params[i]) {
			return false
		}
	}
	return true
}

// String renders the message with its parameters.
func (m Message) String() string {
	parts := make([]string, len(m.params))
	for i, p := range m.params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("MID %d page %d: %s", m.mid, m.Page(), strings.Join(parts, "; "))
}

func cloneParameters(params []Parameter) []Parameter {
	out := make([]Parameter, len(params))
	copy(out, params)
	return out
}
