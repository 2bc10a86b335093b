package services

import "errors"

var (
	// ErrInvalidID is the error returned by services when
	// the id provided in the call to the service is invalid
	ErrInvalidID = errors.New("id was invalid or not provided")
	// ErrNotFound is the error returned by services when
	// the requested object could not be found
	ErrNotFound = errors.New("requested object could not be found")
	// ErrSessionExpired is the error returned by SessionService
	// when the requested session is past its expiry
	ErrSessionExpired = errors.New("session has expired")
	// ErrInvalidToken is the error returned when a session token
	// is malformed, has a bad signature or refers to no live session
	ErrInvalidToken = errors.New("invalid session token")
	// ErrResourceForbidden is the error returned by ResourceService
	// when the session may not access the requested resource
	ErrResourceForbidden = errors.New("resource is not available to the session")
)
