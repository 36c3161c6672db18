package authentication

import "errors"

// Domain errors
var (
	// ErrInvalidCredentials - Email/password pair does not match
	ErrInvalidCredentials = errors.New("authentication: invalid credentials")

	// ErrInactiveUser - Account is deactivated
	ErrInactiveUser = errors.New("authentication: account is inactive")

	// ErrInvalidRefreshToken - Refresh token rejected during verification
	ErrInvalidRefreshToken = errors.New("authentication: invalid refresh token")

	// ErrEmailTaken - Email already registered
	ErrEmailTaken = errors.New("authentication: email already registered")

	// ErrInvalidEmail - Email format invalid
	ErrInvalidEmail = errors.New("authentication: invalid email")

	// ErrWeakPassword - Password does not meet policy
	ErrWeakPassword = errors.New("authentication: password does not meet policy")

	// ErrUserNotFound - Token subject no longer exists
	ErrUserNotFound = errors.New("authentication: user not found")
)
