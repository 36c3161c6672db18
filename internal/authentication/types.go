package authentication

// RequestMeta carries request attribution for audit events.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

type LoginInput struct {
	Email    string
	Password string
	Meta     RequestMeta
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Meta     RequestMeta
}

type RefreshInput struct {
	RefreshToken string
	Meta         RequestMeta
}

// TokenOutput is an issued access/refresh pair. ExpiresIn is the access token
// lifetime in seconds.
type TokenOutput struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    int64
}
