package jwt

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"identity-srv/internal/model"
	"identity-srv/pkg/permission"
)

// GenerateAccessToken mints a short-lived access token for the user. The
// permission list is derived from the role at issuance time and is never
// taken from the caller.
func (m *Manager) GenerateAccessToken(user model.User) (string, error) {
	return m.generate(user, TokenTypeAccess, m.accessTTL, permission.ForRole(user.Role))
}

// GenerateRefreshToken mints a long-lived refresh token. Refresh tokens carry
// the same envelope claims but no permission list and no profile claims.
func (m *Manager) GenerateRefreshToken(user model.User) (string, error) {
	return m.generate(user, TokenTypeRefresh, m.refreshTTL, nil)
}

func (m *Manager) generate(user model.User, tokenType string, ttl time.Duration, permissions []string) (string, error) {
	if m.privateKey == nil {
		return "", ErrNoPrivateKey
	}

	now := time.Now()
	claims := Claims{
		Role:        string(user.Role),
		Permissions: permissions,
		TokenType:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings(m.audience),
			Subject:   strconv.FormatInt(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}
	if tokenType == TokenTypeAccess {
		claims.Email = user.Email
		claims.Name = user.FullName
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = m.keyID

	signed, err := token.SignedString(m.privateKey)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify validates a token string against the public key and the configured
// issuer/audience, and checks the type claim against expectedType.
//
// Every failure maps to one of the package's verification errors so callers
// can log the kind while presenting a uniform unauthorized outcome.
func (m *Manager) Verify(tokenString, expectedType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, ErrTokenInvalid
			}
			return m.publicKey, nil
		},
		jwt.WithValidMethods([]string{Algorithm}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenInvalidIssuer):
			return nil, ErrClaimMismatch
		default:
			return nil, ErrTokenInvalid
		}
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	if !m.audienceMatches(claims.Audience) {
		return nil, ErrClaimMismatch
	}
	if claims.TokenType != expectedType {
		return nil, ErrTokenTypeMismatch
	}

	return claims, nil
}

// audienceMatches reports whether the token audience intersects the
// configured audience set.
func (m *Manager) audienceMatches(tokenAud jwt.ClaimStrings) bool {
	for _, want := range m.audience {
		for _, got := range tokenAud {
			if want == got {
				return true
			}
		}
	}
	return false
}

// SubjectID parses the subject claim back into a numeric principal id.
func (c *Claims) SubjectID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}
