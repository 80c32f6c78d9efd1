package j1587

// Stream decoding.
//
// J1587 frames carry no length field; on the bus they are delimited by idle
// time, which a captured byte buffer no longer has. The decoder therefore
// probes candidate frame lengths at the cursor from shortest to longest,
// pruning candidates on the cheap checksum test before attempting a full
// structural decode. The shortest window that both checksums to zero and
// decodes cleanly is taken as the frame. This reproduces concatenated
// Encode output unless a proper prefix of a frame happens to checksum to
// zero and parse, an ambiguity inherent to the wire format.
//
// There is no resynchronization: a frame that cannot be decoded stops the
// stream with a StreamError carrying the byte offset, and the cursor stays
// put. Scanning forward silently would risk misreading payload bytes as a
// frame start, so skipping is left to the caller.

import (
	"fmt"
	"io"
)

// StreamError reports a decode failure at a byte offset within the stream
// buffer. It wraps the underlying codec error, so errors.Is sees through it.
type StreamError struct {
	Offset int
	Err    error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("j1587: stream offset %d: %v", e.Offset, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

// StreamDecoder yields the messages encoded back-to-back in a byte buffer.
// The buffer is copied at construction; the caller keeps ownership of its
// slice.
type StreamDecoder struct {
	buf []byte
	off int
}

// NewStreamDecoder returns a decoder positioned at the start of data.
func NewStreamDecoder(data []byte) *StreamDecoder {
	return &StreamDecoder{buf: cloneBytes(data)}
}

// Offset returns the cursor position: the offset of the first byte not yet
// consumed by a successfully decoded message.
func (d *StreamDecoder) Offset() int {
	return d.off
}

// Next decodes the message at the cursor and advances past it. It returns
// io.EOF once the buffer is cleanly exhausted, and a *StreamError without
// advancing if the bytes at the cursor do not form a decodable frame.
func (d *StreamDecoder) Next() (Message, error) {
	remaining := d.buf[d.off:]
	if len(remaining) == 0 {
		return Message{}, io.EOF
	}
	if len(remaining) < minFrameLen {
		return Message{}, &StreamError{
			Offset: d.off,
			Err: fmt.Errorf("%w: %d trailing bytes, shortest frame is %d",
				ErrTruncatedParameter, len(remaining), minFrameLen),
		}
	}

	limit := MaxFrameLen
	if len(remaining) < limit {
		limit = len(remaining)
	}

	var firstErr error
	for n := minFrameLen; n <= limit; n++ {
		window := remaining[:n]
		if Checksum(window[:n-1]) != window[n-1] {
			continue
		}
		m, err := DecodeMessage(window)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		d.off += n
		return m, nil
	}

	if firstErr == nil {
		firstErr = fmt.Errorf("%w: no candidate frame length up to %d bytes checksums to zero",
			ErrChecksumMismatch, limit)
	}
	return Message{}, &StreamError{Offset: d.off, Err: firstErr}
}
