package quire

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("quire")

var (
	// ErrOverflow is returned when more than 2^capacity accumulations
	// are attempted since the last reset.
	ErrOverflow = Error.New("overflow")

	// ErrConfigMismatch is returned when an operand's configuration
	// differs from the quire's.
	ErrConfigMismatch = Error.New("configuration mismatch")
)
