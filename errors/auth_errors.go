// errors/auth_errors.go
package errors

import "errors"

var (
	ErrMissingToken     = errors.New("authorization is required")
	ErrInvalidToken     = errors.New("invalid token")
	ErrUserNotFound     = errors.New("user not found")
	ErrAudienceMismatch = errors.New("account type not permitted")
	ErrForbidden        = errors.New("forbidden")
)
