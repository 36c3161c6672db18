package user

import "errors"

// Domain errors
var (
	// ErrUserNotFound - User does not exist
	ErrUserNotFound = errors.New("user: not found")

	// ErrEmailTaken - Email already registered
	ErrEmailTaken = errors.New("user: email already registered")

	// ErrInvalidEmail - Email format invalid
	ErrInvalidEmail = errors.New("user: invalid email")

	// ErrWeakPassword - Password does not meet policy
	ErrWeakPassword = errors.New("user: password does not meet policy")

	// ErrInvalidRole - Role is not ADMIN or USER
	ErrInvalidRole = errors.New("user: invalid role")

	// ErrInvalidCredentials - Email/password pair does not match
	ErrInvalidCredentials = errors.New("user: invalid credentials")

	// ErrInactiveUser - Account is deactivated
	ErrInactiveUser = errors.New("user: account is inactive")

	// ErrForbidden - Caller may not access this user
	ErrForbidden = errors.New("user: forbidden")

	// ErrNothingToUpdate - Update input has no fields set
	ErrNothingToUpdate = errors.New("user: nothing to update")
)
