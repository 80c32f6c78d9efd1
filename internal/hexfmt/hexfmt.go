package hexfmt

// Hex formatting helpers for frame files and CLI input. Parsing is
// deliberately tolerant: frames get pasted out of bus analyzers and docs
// with spaces, newlines, 0x prefixes, and mixed case.

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Parse converts a hex string into bytes. Whitespace, commas, and 0x/0X
// prefixes are ignored; case is not significant. An empty string (after
// stripping) yields nil.
func Parse(s string) ([]byte, error) {
	var b strings.Builder
	b.Grow(len(s))
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ','
	})
	for _, f := range fields {
		f = strings.TrimPrefix(strings.TrimPrefix(f, "0x"), "0X")
		// A bare odd-length token like "2" means a single byte value.
		if len(f)%2 != 0 {
			b.WriteByte('0')
		}
		b.WriteString(f)
	}
	cleaned := b.String()
	if cleaned == "" {
		return nil, nil
	}
	out, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("parse hex %q: %w", s, err)
	}
	return out, nil
}

// Dump renders data as space-separated uppercase hex, the way frames are
// written in the J1587 documents.
func Dump(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}
