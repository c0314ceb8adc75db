package freight

import "errors"

var (
	// ErrRouteNotFound means no catalog row matched the queried lane.
	// Callers must treat this as "route unknown", never as a zero price.
	ErrRouteNotFound = errors.New("route not found")

	// ErrInvalidInput marks inputs rejected before any computation, such as
	// an axle count outside the tabulated set or a non-positive tonnage.
	ErrInvalidInput = errors.New("invalid input")
)
