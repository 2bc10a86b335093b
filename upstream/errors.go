package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized is matched by a StatusError for 401 and 403 responses
	ErrUnauthorized = errors.New("backend rejected the credentials")
	// ErrNotFound is matched by a StatusError for 404 responses
	ErrNotFound = errors.New("backend could not find the resource")
	// ErrRequestFailed is returned when the backend could not be reached
	ErrRequestFailed = errors.New("request to backend failed")
	// ErrUnexpectedPayload is returned when the backend answers with a body of an unknown shape
	ErrUnexpectedPayload = errors.New("unexpected payload from backend")
)

const maxErrorBodyLength = 200

// StatusError is returned when the backend responds with a non-2xx status
type StatusError struct {
	Code int
	// Body of the response, truncated
	Body string
}

func newStatusError(code int, body []byte) *StatusError {
	return &StatusError{
		Code: code,
		Body: truncate(string(body), maxErrorBodyLength),
	}
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend responded with status %d", e.Code)
}

// Is makes errors.Is match ErrUnauthorized and ErrNotFound by status code
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	}
	return false
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
