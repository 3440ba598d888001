package posit

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("posit")

var (
	// ErrConfigMismatch is returned when operands of different
	// configurations are combined.
	ErrConfigMismatch = Error.New("configuration mismatch")

	// ErrDivideByZero is returned by Quo when the divisor is zero.
	ErrDivideByZero = Error.New("divide by zero")

	// ErrDivideByNaR is returned by Quo when either operand is NaR.
	ErrDivideByNaR = Error.New("divide by NaR")

	// ErrSqrtNegative is returned by Sqrt for negative operands.
	ErrSqrtNegative = Error.New("square root of negative")
)
