package export

import "errors"

// ErrUnsupportedFormat is returned when an export is requested in an unknown format
var ErrUnsupportedFormat = errors.New("unsupported export format")
