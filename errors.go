package j1587

import "errors"

// Validation and decode failures. All of these are ordinary, recoverable
// outcomes: a caller dropping a malformed frame and moving on is expected
// usage. Errors returned by this package wrap exactly one of these
// sentinels, so callers can discriminate with errors.Is.
var (
	// ErrInvalidPID reports a parameter identifier outside [0,511] or one
	// of the reserved escape sentinels 255 and 511.
	ErrInvalidPID = errors.New("j1587: invalid PID")

	// ErrPIDKindMismatch reports a parameter constructed with a PID whose
	// kind does not match the constructor.
	ErrPIDKindMismatch = errors.New("j1587: PID kind mismatch")

	// ErrInvalidParameterLength reports a payload whose size does not match
	// what the PID's kind requires or allows.
	ErrInvalidParameterLength = errors.New("j1587: invalid parameter length")

	// ErrPageMixing reports a message containing both page-1 and page-2
	// parameter identifiers.
	ErrPageMixing = errors.New("j1587: cannot mix page-1 and page-2 parameters")

	// ErrEscapeNotLast reports a data link escape parameter that is not the
	// final element of the message, or more than one of them.
	ErrEscapeNotLast = errors.New("j1587: data link escape must be the last parameter")

	// ErrMessageTooLong reports a message whose encoding would exceed the
	// 21-byte frame ceiling.
	ErrMessageTooLong = errors.New("j1587: message exceeds maximum frame length")

	// ErrTruncatedParameter reports a byte sequence that ends before a
	// parameter's declared length is satisfied.
	ErrTruncatedParameter = errors.New("j1587: truncated parameter")

	// ErrChecksumMismatch reports a frame whose trailing checksum byte does
	// not zero the mod-256 sum of the frame.
	ErrChecksumMismatch = errors.New("j1587: checksum mismatch")
)
