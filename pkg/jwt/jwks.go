package jwt

import (
	"encoding/base64"
	"math/big"
)

// JWK is a single RSA public key in JSON Web Key format (RFC 7517).
type JWK struct {
	Kty string `json:"kty"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	Kid string `json:"kid,omitempty"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// JWKS is a JSON Web Key Set.
type JWKS struct {
	Keys []JWK `json:"keys"`
}

// PublicKeyPEM returns the PEM-encoded public verification key.
func (m *Manager) PublicKeyPEM() string {
	return m.publicKeyPEM
}

// JWKS returns the public key as a key set. A single key is published; key
// rotation requires a restart, so the set never holds more than one entry.
func (m *Manager) JWKS() JWKS {
	return JWKS{
		Keys: []JWK{
			{
				Kty: "RSA",
				Use: "sig",
				Alg: Algorithm,
				Kid: m.keyID,
				N:   base64URLUint(m.publicKey.N),
				E:   base64URLUint(big.NewInt(int64(m.publicKey.E))),
			},
		},
	}
}

// base64URLUint encodes a big integer as an unpadded base64url string, the
// representation RFC 7518 requires for the n and e members.
func base64URLUint(v *big.Int) string {
	return base64.RawURLEncoding.EncodeToString(v.Bytes())
}
