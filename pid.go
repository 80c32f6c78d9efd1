package j1587

// SAE J1587 parameter identifiers.
//
// A PID is a 9-bit logical identifier (0-511) naming a data element on the
// bus. Only the low 8 bits are transmitted; identifiers 256 and above
// ("page 2") are escaped at the message level by a single 0xFF byte emitted
// before the first parameter. 255 and 511 are the escape sentinels
// themselves and never name a parameter.
//
// The transmitted byte (LSB) alone determines how the parameter's data
// field is laid out on the wire:
//   0-127   one data byte
//   128-191 two data bytes
//   192-253 length byte followed by that many data bytes
//   254     data link escape: addressee byte, then all remaining bytes

import "fmt"

// Kind classifies the wire layout of a parameter's data field.
type Kind int

const (
	// KindSingle is a fixed one-byte data field.
	KindSingle Kind = iota
	// KindDouble is a fixed two-byte data field.
	KindDouble
	// KindVariable is a length-prefixed data field.
	KindVariable
	// KindDataLinkEscape is an addressed data field consuming the rest of
	// the message.
	KindDataLinkEscape
)

// String returns the conventional name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindDouble:
		return "double"
	case KindVariable:
		return "variable"
	case KindDataLinkEscape:
		return "data link escape"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

const (
	// MaxPID is the largest valid parameter identifier. 511 is the reserved
	// page-2 extension sentinel.
	MaxPID = 510

	// escapeLSB is the transmitted byte of a data link escape PID.
	escapeLSB = 0xFE

	// pageMarker is emitted once before the first parameter of a message
	// whose identifiers are page-2.
	pageMarker = 0xFF
)

// PID is a validated J1587 parameter identifier. The zero value is PID 0
// (a valid page-1, single-byte identifier); construct with NewPID.
type PID uint16

// NewPID validates v as a parameter identifier. It fails with ErrInvalidPID
// if v is outside [0,511] or is one of the reserved sentinels 255 and 511.
func NewPID(v int) (PID, error) {
	if v < 0 || v > 511 {
		return 0, fmt.Errorf("%w: %d out of range [0,511]", ErrInvalidPID, v)
	}
	if v == 255 || v == 511 {
		return 0, fmt.Errorf("%w: %d is a reserved escape sentinel", ErrInvalidPID, v)
	}
	return PID(v), nil
}

// Page reports the addressing page: 1 for identifiers up to 254, 2 for 256
// and above.
func (p PID) Page() int {
	if p >= 256 {
		return 2
	}
	return 1
}

// LSB returns the single byte actually transmitted for this identifier:
// the value itself on page 1, value-256 on page 2.
func (p PID) LSB() byte {
	return byte(p)
}

// Kind classifies the identifier's data field layout from its LSB.
func (p PID) Kind() Kind {
	return kindOfLSB(p.LSB())
}

// String renders the identifier with its page and kind.
func (p PID) String() string {
	return fmt.Sprintf("PID %d (page %d, %s)", uint16(p), p.Page(), p.Kind())
}

// kindOfLSB classifies a transmitted PID byte. 255 never classifies; it is
// the page marker and must be handled before parameter decode.
func kindOfLSB(lsb byte) Kind {
	switch {
	case lsb <= 127:
		return KindSingle
	case lsb <= 191:
		return KindDouble
	case lsb <= 253:
		return KindVariable
	default:
		return KindDataLinkEscape
	}
}
