package reconcile

import "errors"

var (
	// ErrBackendFailure is wrapped by adapters for every failed call.
	ErrBackendFailure = errors.New("backend lookup failed")

	// ErrIncomplete is returned when merging a resolution that contains failures.
	ErrIncomplete = errors.New("resolution contains failed backend calls")
)
