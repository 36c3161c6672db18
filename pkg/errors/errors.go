package errors

// HTTPError is an error that carries the HTTP status code and a client-safe
// message. Internal error details never travel inside an HTTPError.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}
