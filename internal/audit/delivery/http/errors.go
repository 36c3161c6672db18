package http

import (
	"errors"

	"identity-srv/internal/audit"
	pkgErrors "identity-srv/pkg/errors"
)

var (
	errInvalidFilter    = pkgErrors.NewHTTPError(400, "Invalid filter")
	errInvalidTimeRange = pkgErrors.NewHTTPError(400, "Invalid time range")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, audit.ErrInvalidTimeRange):
		return errInvalidTimeRange
	default:
		panic(err)
	}
}
