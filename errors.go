package bitstamp

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package.
var Error = errs.Class("bitstamp")

var (
	// ErrUnknownKey is returned when a key is not part of the layout.
	ErrUnknownKey = Error.New("unknown key")

	// ErrOverflow is returned when a value does not fit in its segment.
	ErrOverflow = Error.New("value overflows segment")

	// ErrKind is returned when a value's kind does not match its segment.
	ErrKind = Error.New("value kind does not match segment")

	// ErrSize is returned when binary data is not exactly 8 bytes.
	ErrSize = Error.New("invalid size")
)
