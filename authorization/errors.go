package authorization

import "errors"

// ErrMissingSecret is returned when JWT_SECRET is not set
var ErrMissingSecret = errors.New("jwt secret is not set")
