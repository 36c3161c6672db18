package audit

import "errors"

var (
	// ErrInvalidTimeRange - from is after to
	ErrInvalidTimeRange = errors.New("audit: invalid time range")
)
