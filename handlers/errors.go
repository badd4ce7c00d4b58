package handlers

import (
	"errors"
	"net/http"

	"salonify/services/admin"
	"salonify/services/booking"
	"salonify/services/content"
	"salonify/services/storage"
	"salonify/services/user"
	"salonify/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the API error shape. Unknown errors are
// reported as 500 with the given message.
func respondError(c *gin.Context, err error, message string) {
	var bookingErr *booking.BookingError
	var authErr *user.AuthError

	switch {
	case errors.As(err, &bookingErr):
		utils.JSONError(c, bookingStatus(bookingErr), bookingErr.Message, bookingErr.Code)
	case errors.As(err, &authErr):
		utils.JSONError(c, authStatus(authErr), authErr.Message, authErr.Code)
	case errors.Is(err, content.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, message, err.Error())
	case errors.Is(err, content.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, message, err.Error())
	case errors.Is(err, storage.ErrStorageDisabled):
		utils.JSONError(c, http.StatusServiceUnavailable, message, err.Error())
	case errors.Is(err, admin.ErrInvalidPassword):
		utils.JSONError(c, http.StatusUnauthorized, message, err.Error())
	case errors.Is(err, admin.ErrAdminDisabled):
		utils.JSONError(c, http.StatusServiceUnavailable, message, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, message, err.Error())
	}
}

func bookingStatus(err *booking.BookingError) int {
	switch err.Code {
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeInvalidTransition:
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

func authStatus(err *user.AuthError) int {
	switch err.Code {
	case user.CodeInvalidCredentials, user.CodeProfileMissing, user.CodeInvalidResetToken:
		return http.StatusUnauthorized
	case user.CodeUserNotFound:
		return http.StatusNotFound
	case user.CodeEmailTaken:
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

// currentUserID returns the id set by the user auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.AbortUnauthenticated(c, "no user in session")
		return "", false
	}
	return userID, true
}
