// errors/user_errors.go
package errors

import "errors"

var (
	ErrInvalidUserData   = errors.New("invalid user data")
	ErrUserConflict      = errors.New("user conflict")
	ErrReferralExhausted = errors.New("referral code generation exhausted retries")
	ErrDatabaseOperation = errors.New("database operation failed")
	ErrInternalServer    = errors.New("internal server error")
)
