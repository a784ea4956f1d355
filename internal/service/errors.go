package service

import "errors"

// Domain errors the HTTP layer maps onto status codes.
var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// ValidationError marks malformed or missing input; handlers surface it as
// 422 and nothing reaches the store.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{msg: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
