package resources

import "errors"

var (
	// ErrUnknownResource is returned when the requested module or resource is not in the catalog
	ErrUnknownResource = errors.New("unknown resource")
	// ErrDuplicateResource is returned when two resources share a key
	ErrDuplicateResource = errors.New("duplicate resource")
	// ErrUnknownField is returned when a request refers to a field the resource does not have
	ErrUnknownField = errors.New("unknown field")
	// ErrMissingEmployeeID is returned when an employee scoped resource is requested
	// by a session without an employee id
	ErrMissingEmployeeID = errors.New("session has no employee id")
)
