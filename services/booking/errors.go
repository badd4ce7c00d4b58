package booking

import (
	"errors"
	"fmt"
)

const (
	CodeNotFound          = "bookingNotFound"
	CodeInvalidTransition = "invalidTransition"
	CodeInvalidInput      = "invalidInput"
)

var (
	ErrBookingNotFound   = &BookingError{Code: CodeNotFound, Message: "booking not found"}
	ErrInvalidTransition = &BookingError{Code: CodeInvalidTransition, Message: "booking status cannot change"}
	ErrInvalidInput      = &BookingError{Code: CodeInvalidInput, Message: "invalid booking request"}
)

// BookingError is the typed error returned by BookingService. errors.Is
// matches on Code, so a detailed error still matches its sentinel.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BookingError) Is(target error) bool {
	var t *BookingError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

func invalidInput(format string, args ...any) error {
	return &BookingError{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func invalidTransition(format string, args ...any) error {
	return &BookingError{Code: CodeInvalidTransition, Message: fmt.Sprintf(format, args...)}
}
