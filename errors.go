package tvm

import "errors"

var (
	// ErrInvalidInput reports parameters outside of the domain of a computation:
	// negative period count, rate <= -1, non-finite values or an empty series.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateInput reports inputs that are well formed but for which the
	// result is undefined, like a cash-flow series summing to zero.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrNonConvergence reports that the root finder could not bring the
	// discrepancy below tolerance within its iteration budget.
	ErrNonConvergence = errors.New("did not converge")

	// ErrSearchExhausted reports that a runout search reached its safety cap
	// without the balance crossing zero.
	ErrSearchExhausted = errors.New("search exhausted")

	// ErrOverflow reports a result too large to be represented as a float64.
	ErrOverflow = errors.New("overflow")
)
