package common

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/unicsmcr/bizdash/resources"
	"github.com/unicsmcr/bizdash/services"
	"github.com/unicsmcr/bizdash/upstream"
)

// ErrorStatus maps an error returned while reading a resource to the HTTP status
// and message shown to the user
func ErrorStatus(err error) (int, string) {
	if errors.Is(err, upstream.ErrUnauthorized) {
		return http.StatusUnauthorized, "the backend rejected the session, please log in again"
	}
	if errors.Is(err, upstream.ErrNotFound) || errors.Cause(err) == services.ErrNotFound {
		return http.StatusNotFound, "the backend could not find the requested item"
	}

	switch cause := errors.Cause(err).(type) {
	case *upstream.StatusError:
		return http.StatusBadGateway, cause.Error()
	}

	switch errors.Cause(err) {
	case upstream.ErrRequestFailed:
		return http.StatusBadGateway, "could not reach the backend"
	case upstream.ErrUnexpectedPayload:
		return http.StatusBadGateway, "the backend sent an unexpected response"
	case resources.ErrUnknownField:
		return http.StatusBadRequest, "unknown sort field"
	case resources.ErrUnknownResource:
		return http.StatusNotFound, "resource not found"
	case services.ErrResourceForbidden, resources.ErrMissingEmployeeID:
		return http.StatusForbidden, errors.Cause(err).Error()
	case services.ErrInvalidID:
		return http.StatusBadRequest, "invalid id"
	}
	return http.StatusInternalServerError, "something went wrong"
}
