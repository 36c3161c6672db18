package jwt

import "errors"

// Key configuration errors. These are startup-fatal: a service with no public
// key cannot verify, and signing without a private key is refused.
var (
	ErrNoPublicKey  = errors.New("jwt: public key is not configured")
	ErrNoPrivateKey = errors.New("jwt: private key is not configured")
	ErrKeyTooSmall  = errors.New("jwt: RSA key is smaller than 2048 bits")
	ErrKeyMismatch  = errors.New("jwt: private and public key do not match")
)

// Verification errors. Callers surface all of them as a single unauthorized
// outcome; the distinct kinds exist for logging only.
var (
	ErrTokenInvalid      = errors.New("jwt: token signature or format invalid")
	ErrTokenExpired      = errors.New("jwt: token has expired")
	ErrClaimMismatch     = errors.New("jwt: issuer or audience mismatch")
	ErrTokenTypeMismatch = errors.New("jwt: unexpected token type")
)
