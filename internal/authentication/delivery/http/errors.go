package http

import (
	"errors"

	"identity-srv/internal/authentication"
	pkgErrors "identity-srv/pkg/errors"
)

var (
	errWrongBody           = pkgErrors.NewHTTPError(400, "Wrong body")
	errInvalidCredentials  = pkgErrors.NewHTTPError(401, "Invalid email or password")
	errInactiveUser        = pkgErrors.NewHTTPError(403, "Account is inactive")
	errInvalidRefreshToken = pkgErrors.NewHTTPError(401, "Invalid refresh token")
	errEmailTaken          = pkgErrors.NewHTTPError(409, "Email already registered")
	errInvalidEmail        = pkgErrors.NewHTTPError(400, "Invalid email")
	errWeakPassword        = pkgErrors.NewHTTPError(400, "Password does not meet policy")
	errUserNotFound        = pkgErrors.NewHTTPError(404, "User not found")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, authentication.ErrInvalidCredentials):
		return errInvalidCredentials
	case errors.Is(err, authentication.ErrInactiveUser):
		return errInactiveUser
	case errors.Is(err, authentication.ErrInvalidRefreshToken):
		return errInvalidRefreshToken
	case errors.Is(err, authentication.ErrEmailTaken):
		return errEmailTaken
	case errors.Is(err, authentication.ErrInvalidEmail):
		return errInvalidEmail
	case errors.Is(err, authentication.ErrWeakPassword):
		return errWeakPassword
	case errors.Is(err, authentication.ErrUserNotFound):
		return errUserNotFound
	default:
		panic(err)
	}
}
