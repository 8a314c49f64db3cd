package segment

import "github.com/zeebo/errs"

var (
	// Error is the class of errors returned by this package.
	Error = errs.Class("segment")

	// InvalidSegment is the class of errors returned when a schema
	// fails validation.
	InvalidSegment = errs.Class("invalid segment")
)
