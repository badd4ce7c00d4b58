package user

import (
	"errors"
	"fmt"
)

const (
	CodeInvalidCredentials = "invalidCredentials"
	CodeProfileMissing     = "profileMissing"
	CodeEmailTaken         = "emailTaken"
	CodeInvalidInput       = "invalidInput"
	CodeInvalidResetToken  = "invalidResetToken"
	CodeUserNotFound       = "userNotFound"
)

var (
	ErrInvalidCredentials = &AuthError{Code: CodeInvalidCredentials, Message: "invalid email or password"}
	ErrProfileMissing     = &AuthError{Code: CodeProfileMissing, Message: "account has no profile record"}
	ErrEmailTaken         = &AuthError{Code: CodeEmailTaken, Message: "an account with this email already exists"}
	ErrInvalidInput       = &AuthError{Code: CodeInvalidInput, Message: "invalid request"}
	ErrInvalidResetToken  = &AuthError{Code: CodeInvalidResetToken, Message: "reset link is invalid or expired"}
	ErrUserNotFound       = &AuthError{Code: CodeUserNotFound, Message: "user not found"}
)

// AuthError is returned for identity failures the caller can show the user.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// Is matches any AuthError with the same code.
func (e *AuthError) Is(target error) bool {
	var t *AuthError
	return errors.As(target, &t) && t.Code == e.Code
}

func invalidInput(format string, args ...any) error {
	return &AuthError{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}
