package errs

import (
	"errors"
	"fmt"
)

// QueryError reports a failed statement execution.
//
// Repositories return it for every failure so callers never confuse a
// failed query with an empty result.
type QueryError struct {
	// Op names the data-access operation, e.g. "property.get_all".
	Op string

	// Query is the SQL text that was sent.
	Query string

	// Err is the classified cause, usually an *Error wrapping the driver error.
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// IsQueryError reports whether err carries a *QueryError.
func IsQueryError(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe)
}

// KindOf returns the Kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
