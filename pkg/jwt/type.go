package jwt

import (
	"crypto/rsa"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds JWT manager configuration. Keys are PEM-encoded: the private
// key may be empty for verify-only deployments.
type Config struct {
	PrivateKeyPEM string
	PublicKeyPEM  string
	Issuer        string
	Audience      []string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// Claims is the token payload. The registered claims carry the envelope
// (iss, aud, sub, exp, iat, jti); the custom claims carry authorization data.
// Permissions are present on access tokens only.
type Claims struct {
	Email       string   `json:"email,omitempty"`
	Name        string   `json:"name,omitempty"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions,omitempty"`
	TokenType   string   `json:"type"`
	jwt.RegisteredClaims
}

// Manager signs and verifies RS256 tokens. It is constructed once at startup
// and holds the key pair read-only for the process lifetime; rotation
// requires a restart.
type Manager struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey

	publicKeyPEM string
	keyID        string

	issuer     string
	audience   []string
	accessTTL  time.Duration
	refreshTTL time.Duration
}
