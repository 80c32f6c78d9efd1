package j1587

// Frame checksum.
//
// The last byte of every frame makes the mod-256 sum of the whole frame,
// checksum included, come out to zero. Equivalently the checksum is the
// two's complement of the sum of everything before it.

import "fmt"

// Checksum computes the checksum byte for data: the two's complement of the
// mod-256 sum of its bytes.
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return ^sum + 1
}

// AppendChecksum returns data with its checksum byte appended.
func AppendChecksum(data []byte) []byte {
	out := make([]byte, len(data)+1)
	copy(out, data)
	out[len(data)] = Checksum(data)
	return out
}

// VerifyChecksum checks that the trailing byte of frame is the checksum of
// everything before it. It fails with ErrChecksumMismatch otherwise.
func VerifyChecksum(frame []byte) error {
	if len(frame) < 1 {
		return fmt.Errorf("%w: empty frame has no checksum", ErrTruncatedParameter)
	}
	got := frame[len(frame)-1]
	want := Checksum(frame[:len(frame)-1])
	if got != want {
		return fmt.Errorf("%w: got 0x%02X, want 0x%02X", ErrChecksumMismatch, got, want)
	}
	return nil
}
