package j1587

import (
	"bytes"
	"errors"
	"testing"
)

// helloWorldFrame is the worked example from the J1587 messaging format:
// MID 195, PID 501 carrying the ASCII bytes of "Hello world".
var helloWorldFrame = []byte{
	0xC3, 0xFF, 0xF5, 0x0B,
	0x48, 0x65, 0x6C, 0x6C, 0x6F, 0x20, 0x77, 0x6F, 0x72, 0x6C, 0x64,
	0x02,
}

func helloWorldMessage(t *testing.T) Message {
	t.Helper()
	p, err := NewVariable(mustPID(t, 501), []byte("Hello world"))
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewMessage(195, []Parameter{p})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestEncodeHelloWorld(t *testing.T) {
	m := helloWorldMessage(t)
	got := m.Encode()
	if !bytes.Equal(got, helloWorldFrame) {
		t.Fatalf("Encode = % X\nwant     % X", got, helloWorldFrame)
	}
	if m.Checksum() != 0x02 {
		t.Errorf("Checksum = 0x%02X, want 0x02", m.Checksum())
	}
	if m.EncodedLen() != len(helloWorldFrame) {
		t.Errorf("EncodedLen = %d, want %d", m.EncodedLen(), len(helloWorldFrame))
	}
}

func TestDecodeHelloWorld(t *testing.T) {
	m, err := DecodeMessage(helloWorldFrame)
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	if !m.Equal(helloWorldMessage(t)) {
		t.Errorf("decoded message %v does not match original", m)
	}
	if m.MID() != 195 || m.Page() != 2 {
		t.Errorf("MID = %d, Page = %d", m.MID(), m.Page())
	}
}

func TestMessageRoundTrip(t *testing.T) {
	single, _ := NewFixedSingle(PID(84), []byte{0x50})
	double, _ := NewFixedDouble(PID(190), []byte{0x12, 0x34})
	variable, _ := NewVariable(PID(200), []byte{0xAA, 0xBB, 0xCC})
	escape, _ := NewDataLinkEscape(PID(254), 0x80, []byte{0x01, 0x02})
	p2single, _ := NewFixedSingle(PID(300), []byte{0x05})
	p2variable, _ := NewVariable(PID(450), []byte{0x41, 0x42})
	p2escape, _ := NewDataLinkEscape(PID(510), 0x05, []byte{0x0A, 0x0B, 0x0C})
	emptyVar, _ := NewVariable(PID(200), nil)

	cases := []struct {
		name   string
		mid    int
		params []Parameter
	}{
		{"single", 128, []Parameter{single}},
		{"double", 0, []Parameter{double}},
		{"page-1 mix", 255, []Parameter{single, double, variable}},
		{"escape only", 172, []Parameter{escape}},
		{"escape last", 1, []Parameter{single, escape}},
		{"page-2 pair", 50, []Parameter{p2single, p2variable}},
		{"page-2 escape", 50, []Parameter{p2escape}},
		{"empty variable payload", 9, []Parameter{emptyVar}},
	}
	for _, tc := range cases {
		m, err := NewMessage(tc.mid, tc.params)
		if err != nil {
			t.Fatalf("%s: NewMessage: %v", tc.name, err)
		}
		raw := m.Encode()
		if len(raw) > MaxFrameLen {
			t.Fatalf("%s: encoded %d bytes", tc.name, len(raw))
		}

		// Checksum closure: every encoded frame sums to zero mod 256.
		var sum byte
		for _, b := range raw {
			sum += b
		}
		if sum != 0 {
			t.Errorf("%s: frame byte sum = 0x%02X, want 0x00", tc.name, sum)
		}

		decoded, err := DecodeMessage(raw)
		if err != nil {
			t.Fatalf("%s: DecodeMessage(% X): %v", tc.name, raw, err)
		}
		if !decoded.Equal(m) {
			t.Errorf("%s: round trip mismatch:\n in  %v\n out %v", tc.name, m, decoded)
		}
	}
}

func TestNewMessageValidation(t *testing.T) {
	single, _ := NewFixedSingle(PID(84), []byte{0x50})
	p2single, _ := NewFixedSingle(PID(300), []byte{0x05})
	escape, _ := NewDataLinkEscape(PID(254), 0x80, []byte{0x01})

	if _, err := NewMessage(-1, []Parameter{single}); err == nil {
		t.Error("negative MID accepted")
	}
	if _, err := NewMessage(256, []Parameter{single}); err == nil {
		t.Error("MID 256 accepted")
	}
	if _, err := NewMessage(10, nil); err == nil {
		t.Error("empty parameter list accepted")
	}

	if _, err := NewMessage(10, []Parameter{single, p2single}); !errors.Is(err, ErrPageMixing) {
		t.Errorf("page mixing: %v", err)
	}
	if _, err := NewMessage(10, []Parameter{escape, single}); !errors.Is(err, ErrEscapeNotLast) {
		t.Errorf("escape followed by single: %v", err)
	}
	if _, err := NewMessage(10, []Parameter{escape, escape}); !errors.Is(err, ErrEscapeNotLast) {
		t.Errorf("two escapes: %v", err)
	}
	if _, err := NewMessage(10, []Parameter{single, escape}); err != nil {
		t.Errorf("escape as last parameter rejected: %v", err)
	}
}

func TestMessageTooLong(t *testing.T) {
	// 1 (MID) + 2 (PID+len) + 18 (data) + 1 (checksum) = 22 > 21.
	p, err := NewVariable(PID(200), make([]byte, 18))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewMessage(10, []Parameter{p}); !errors.Is(err, ErrMessageTooLong) {
		t.Errorf("NewMessage: %v, want ErrMessageTooLong", err)
	}

	// At exactly 21 bytes the message is fine.
	p, err = NewVariable(PID(200), make([]byte, 17))
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewMessage(10, []Parameter{p})
	if err != nil {
		t.Fatalf("21-byte message rejected: %v", err)
	}
	if m.EncodedLen() != MaxFrameLen {
		t.Errorf("EncodedLen = %d, want %d", m.EncodedLen(), MaxFrameLen)
	}
}

func TestDecodeMessageChecksumMismatch(t *testing.T) {
	frame := cloneBytes(helloWorldFrame)
	frame[len(frame)-1] ^= 0xFF
	_, err := DecodeMessage(frame)
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("DecodeMessage: %v, want ErrChecksumMismatch", err)
	}
}

func TestDecodeMessageTruncatedVariable(t *testing.T) {
	// The variable parameter declares 16 data bytes but only 2 remain
	// before the checksum. The decoder must fail without reading past the
	// buffer, and the parameter error wins over the (also bogus) checksum.
	frame := []byte{0x01, 0xC8, 0x10, 0xAA, 0xBB, 0x00}
	_, err := DecodeMessage(frame)
	if !errors.Is(err, ErrTruncatedParameter) {
		t.Errorf("DecodeMessage: %v, want ErrTruncatedParameter", err)
	}
}

func TestDecodeMessageLengthBounds(t *testing.T) {
	if _, err := DecodeMessage([]byte{0x01, 0x54, 0x50}); !errors.Is(err, ErrTruncatedParameter) {
		t.Errorf("3-byte frame: %v, want ErrTruncatedParameter", err)
	}
	if _, err := DecodeMessage(make([]byte, MaxFrameLen+1)); !errors.Is(err, ErrMessageTooLong) {
		t.Errorf("22-byte frame: %v, want ErrMessageTooLong", err)
	}
}

func TestMessageEqual(t *testing.T) {
	a := helloWorldMessage(t)
	b := helloWorldMessage(t)
	if !a.Equal(b) {
		t.Error("identical messages compare unequal")
	}

	single, _ := NewFixedSingle(PID(84), []byte{0x50})
	c, err := NewMessage(195, []Parameter{single})
	if err != nil {
		t.Fatal(err)
	}
	if a.Equal(c) {
		t.Error("distinct messages compare equal")
	}
}

func TestMessageParametersAreCopied(t *testing.T) {
	single, _ := NewFixedSingle(PID(84), []byte{0x50})
	params := []Parameter{single}
	m, err := NewMessage(10, params)
	if err != nil {
		t.Fatal(err)
	}
	other, _ := NewFixedSingle(PID(85), []byte{0x51})
	params[0] = other
	if !m.Parameters()[0].Equal(single) {
		t.Error("NewMessage retained the caller's slice")
	}
}
