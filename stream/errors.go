package stream

import "errors"

var (
	// ErrInvalidData indicates bytes that do not form a valid property
	// list in the encoding being read.
	ErrInvalidData = errors.New("invalid plist data")

	// ErrUnexpectedEOF indicates input that ended in the middle of an
	// encoded structure (or before the 8-byte format signature).
	ErrUnexpectedEOF = errors.New("unexpected end of plist stream")

	// ErrBadEvent indicates an event sequence that violates the structural
	// rules (unbalanced End, a value in a dictionary without a key, ...).
	ErrBadEvent = errors.New("bad event")
)
