package jwt

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultAccessTTL  = 30 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// New creates a new JWT manager from PEM-encoded RSA keys.
//
// The public key is always required. The private key is optional: without it
// the manager runs in verify-only mode and Generate* returns ErrNoPrivateKey.
func New(cfg Config) (*Manager, error) {
	if cfg.PublicKeyPEM == "" {
		return nil, ErrNoPublicKey
	}
	if cfg.Issuer == "" {
		return nil, fmt.Errorf("jwt: issuer is required")
	}
	if len(cfg.Audience) == 0 {
		return nil, fmt.Errorf("jwt: audience must have at least one value")
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("jwt: failed to parse public key: %w", err)
	}
	if publicKey.N.BitLen() < MinRSAKeyBits {
		return nil, ErrKeyTooSmall
	}

	m := &Manager{
		publicKey:    publicKey,
		publicKeyPEM: cfg.PublicKeyPEM,
		keyID:        computeKeyID(publicKey),
		issuer:       cfg.Issuer,
		audience:     cfg.Audience,
		accessTTL:    cfg.AccessTTL,
		refreshTTL:   cfg.RefreshTTL,
	}
	if m.accessTTL <= 0 {
		m.accessTTL = defaultAccessTTL
	}
	if m.refreshTTL <= 0 {
		m.refreshTTL = defaultRefreshTTL
	}

	if cfg.PrivateKeyPEM != "" {
		privateKey, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.PrivateKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("jwt: failed to parse private key: %w", err)
		}
		if privateKey.N.Cmp(publicKey.N) != 0 {
			return nil, ErrKeyMismatch
		}
		m.privateKey = privateKey
	}

	return m, nil
}

// computeKeyID derives a stable kid from the public key bytes. The kid only
// has to be consistent across restarts with the same key.
func computeKeyID(key *rsa.PublicKey) string {
	der, err := x509.MarshalPKIXPublicKey(key)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(der)
	return hex.EncodeToString(sum[:8])
}

// AccessTTL returns the configured access token lifetime.
func (m *Manager) AccessTTL() time.Duration {
	return m.accessTTL
}

// RefreshTTL returns the configured refresh token lifetime.
func (m *Manager) RefreshTTL() time.Duration {
	return m.refreshTTL
}
