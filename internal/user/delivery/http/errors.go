package http

import (
	"errors"

	"identity-srv/internal/user"
	pkgErrors "identity-srv/pkg/errors"
)

var (
	errWrongBody       = pkgErrors.NewHTTPError(400, "Wrong body")
	errInvalidID       = pkgErrors.NewHTTPError(400, "Invalid user ID")
	errInvalidIsActive = pkgErrors.NewHTTPError(400, "Invalid is_active filter")
	errUserNotFound    = pkgErrors.NewHTTPError(404, "User not found")
	errEmailTaken      = pkgErrors.NewHTTPError(409, "Email already registered")
	errInvalidEmail    = pkgErrors.NewHTTPError(400, "Invalid email")
	errWeakPassword    = pkgErrors.NewHTTPError(400, "Password does not meet policy")
	errInvalidRole     = pkgErrors.NewHTTPError(400, "Invalid role")
	errForbidden       = pkgErrors.NewHTTPError(403, "Forbidden")
	errNothingToUpdate = pkgErrors.NewHTTPError(400, "Nothing to update")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return errUserNotFound
	case errors.Is(err, user.ErrEmailTaken):
		return errEmailTaken
	case errors.Is(err, user.ErrInvalidEmail):
		return errInvalidEmail
	case errors.Is(err, user.ErrWeakPassword):
		return errWeakPassword
	case errors.Is(err, user.ErrInvalidRole):
		return errInvalidRole
	case errors.Is(err, user.ErrForbidden):
		return errForbidden
	case errors.Is(err, user.ErrNothingToUpdate):
		return errNothingToUpdate
	default:
		panic(err)
	}
}
