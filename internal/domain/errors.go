package domain

import "errors"

// Sentinel errors shared by the services and the transport layer.
// Callers compare with errors.Is; producers wrap them with context.
var (
	// ErrNotFound is returned when a lookup, update or delete targets an absent record
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument is returned for unknown sort fields, negative limits
	// and malformed filters
	ErrInvalidArgument = errors.New("invalid argument")
)
