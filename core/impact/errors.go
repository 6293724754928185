package impact

import "errors"

var (
	// ErrUnknownFeedstock is returned for any key absent from the catalog.
	ErrUnknownFeedstock = errors.New("impact: unknown feedstock")

	// ErrDivisionHazard guards divisions whose divisor would be zero.
	ErrDivisionHazard = errors.New("impact: division by zero")
)
