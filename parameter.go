package j1587

// Parameter encoding and decoding.
//
// Wire shapes by kind (the leading byte is the PID's LSB):
//   single            [lsb] [byte]
//   double            [lsb] [byte] [byte]
//   variable          [lsb] [n] [n bytes]
//   data link escape  [254] [addressee] [remaining bytes]
//
// A data link escape carries no length; it runs to the end of the frame's
// parameter region, so it only decodes correctly as the final parameter of
// a frame whose total length is already known.

import (
	"bytes"
	"fmt"
	"strings"
)

// Parameter is an immutable (PID, data) pair. Construct with one of
// NewFixedSingle, NewFixedDouble, NewVariable, or NewDataLinkEscape; each
// requires a PID of the matching kind.
type Parameter struct {
	pid       PID
	payload   []byte
	addressee byte // data link escape only
}

// NewFixedSingle builds a single-byte fixed parameter. The payload must be
// exactly one byte.
func NewFixedSingle(pid PID, payload []byte) (Parameter, error) {
	if pid.Kind() != KindSingle {
		return Parameter{}, kindMismatch(pid, KindSingle)
	}
	if len(payload) != 1 {
		return Parameter{}, fmt.Errorf("%w: %s requires exactly 1 data byte, got %d",
			ErrInvalidParameterLength, pid, len(payload))
	}
	return Parameter{pid: pid, payload: cloneBytes(payload)}, nil
}

// NewFixedDouble builds a double-byte fixed parameter. The payload must be
// exactly two bytes.
func NewFixedDouble(pid PID, payload []byte) (Parameter, error) {
	if pid.Kind() != KindDouble {
		return Parameter{}, kindMismatch(pid, KindDouble)
	}
	if len(payload) != 2 {
		return Parameter{}, fmt.Errorf("%w: %s requires exactly 2 data bytes, got %d",
			ErrInvalidParameterLength, pid, len(payload))
	}
	return Parameter{pid: pid, payload: cloneBytes(payload)}, nil
}

// NewVariable builds a variable-length parameter. The payload length must
// fit the wire's one-byte length prefix; the 21-byte frame ceiling is
// enforced at message assembly, where the total is known.
func NewVariable(pid PID, payload []byte) (Parameter, error) {
	if pid.Kind() != KindVariable {
		return Parameter{}, kindMismatch(pid, KindVariable)
	}
	if len(payload) > 255 {
		return Parameter{}, fmt.Errorf("%w: %d data bytes exceed the one-byte length prefix",
			ErrInvalidParameterLength, len(payload))
	}
	return Parameter{pid: pid, payload: cloneBytes(payload)}, nil
}

// NewDataLinkEscape builds a data link escape parameter addressed to the
// device with MID addressee.
func NewDataLinkEscape(pid PID, addressee byte, data []byte) (Parameter, error) {
	if pid.Kind() != KindDataLinkEscape {
		return Parameter{}, kindMismatch(pid, KindDataLinkEscape)
	}
	return Parameter{pid: pid, payload: cloneBytes(data), addressee: addressee}, nil
}

func kindMismatch(pid PID, want Kind) error {
	return fmt.Errorf("%w: %s used where a %s parameter is required",
		ErrPIDKindMismatch, pid, want)
}

// PID returns the parameter's identifier.
func (p Parameter) PID() PID {
	return p.pid
}

// Kind returns the parameter's wire layout kind.
func (p Parameter) Kind() Kind {
	return p.pid.Kind()
}

// Payload returns a copy of the parameter's data bytes. For a data link
// escape this is the data following the addressee.
func (p Parameter) Payload() []byte {
	return cloneBytes(p.payload)
}

// Addressee returns the recipient MID of a data link escape parameter. It
// is zero for every other kind.
func (p Parameter) Addressee() byte {
	return p.addressee
}

// Equal reports structural equality: same identifier, same data, and for a
// data link escape the same addressee.
func (p Parameter) Equal(other Parameter) bool {
	return p.pid == other.pid &&
		p.addressee == other.addressee &&
		bytes.Equal(p.payload, other.payload)
}

// String renders the parameter with its data in hex.
func (p Parameter) String() string {
	if p.Kind() == KindDataLinkEscape {
		return fmt.Sprintf("%s -> MID %d [%s]", p.pid, p.addressee, hexBytes(p.payload))
	}
	return fmt.Sprintf("%s [%s]", p.pid, hexBytes(p.payload))
}

// encodedLen returns the number of bytes the parameter occupies on the
// wire, including its PID byte.
func (p Parameter) encodedLen() int {
	switch p.Kind() {
	case KindSingle:
		return 2
	case KindDouble:
		return 3
	case KindVariable:
		return 2 + len(p.payload)
	default: // data link escape
		return 2 + len(p.payload)
	}
}

// appendWire appends the parameter's wire encoding to dst.
func (p Parameter) appendWire(dst []byte) []byte {
	dst = append(dst, p.pid.LSB())
	switch p.Kind() {
	case KindVariable:
		dst = append(dst, byte(len(p.payload)))
	case KindDataLinkEscape:
		dst = append(dst, p.addressee)
	}
	return append(dst, p.payload...)
}

// decodeParameter decodes one parameter from the front of buf, which must
// extend exactly to the end of the frame's parameter region (checksum
// excluded) so that a data link escape can consume the remainder. page is
// the frame's addressing page, used to reconstruct the full identifier.
// It returns the parameter and the number of bytes consumed.
func decodeParameter(buf []byte, page int) (Parameter, int, error) {
	if len(buf) == 0 {
		return Parameter{}, 0, fmt.Errorf("%w: no bytes left for a PID", ErrTruncatedParameter)
	}

	lsb := buf[0]
	v := int(lsb)
	if page == 2 {
		v += 256
	}
	pid, err := NewPID(v)
	if err != nil {
		return Parameter{}, 0, err
	}

	switch pid.Kind() {
	case KindSingle:
		if len(buf) < 2 {
			return Parameter{}, 0, truncated(pid, 1, len(buf)-1)
		}
		p, err := NewFixedSingle(pid, buf[1:2])
		return p, 2, err

	case KindDouble:
		if len(buf) < 3 {
			return Parameter{}, 0, truncated(pid, 2, len(buf)-1)
		}
		p, err := NewFixedDouble(pid, buf[1:3])
		return p, 3, err

	case KindVariable:
		if len(buf) < 2 {
			return Parameter{}, 0, truncated(pid, 1, 0)
		}
		n := int(buf[1])
		if len(buf) < 2+n {
			return Parameter{}, 0, truncated(pid, n, len(buf)-2)
		}
		p, err := NewVariable(pid, buf[2:2+n])
		return p, 2 + n, err

	default: // data link escape
		if len(buf) < 2 {
			return Parameter{}, 0, truncated(pid, 1, 0)
		}
		p, err := NewDataLinkEscape(pid, buf[1], buf[2:])
		return p, len(buf), err
	}
}

func truncated(pid PID, want, got int) error {
	return fmt.Errorf("%w: %s needs %d more data bytes, %d remain",
		ErrTruncatedParameter, pid, want, got)
}

// hexBytes renders data as space-separated uppercase hex.
func hexBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

// cloneBytes copies b so callers and the codec never share a buffer. A nil
// or empty input yields nil.
func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
