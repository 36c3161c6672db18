package jwt

import (
	"time"

	"identity-srv/internal/model"
)

// IManager defines the interface for token issuance and verification.
// Implementations are safe for concurrent use.
type IManager interface {
	GenerateAccessToken(user model.User) (string, error)
	GenerateRefreshToken(user model.User) (string, error)
	Verify(tokenString, expectedType string) (*Claims, error)
	PublicKeyPEM() string
	JWKS() JWKS
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

var _ IManager = (*Manager)(nil)
