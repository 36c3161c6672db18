package jwt

const (
	// Algorithm is the only accepted signing algorithm.
	Algorithm = "RS256"

	// TokenTypeAccess and TokenTypeRefresh are the exact values of the "type"
	// claim. Verification rejects tokens whose type does not match the
	// endpoint's expectation.
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	// MinRSAKeyBits is the minimum RSA key size accepted at startup.
	MinRSAKeyBits = 2048
)
