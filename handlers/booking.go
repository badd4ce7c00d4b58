package handlers

import (
	"net/http"

	"salonify/models"
	"salonify/services/booking"
	"salonify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the customer booking flow and the admin console.
type BookingHandler struct {
	BookingSvc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{BookingSvc: svc}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	logger := getLogger(c)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
		return
	}

	result, err := h.BookingSvc.CreateBooking(c.Request.Context(), userID, input)
	if err != nil {
		logger.Warn("CreateBooking failed", zap.String("userID", userID), zap.Error(err))
		respondError(c, err, "Failed to create booking")
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Availability handles GET /api/bookings/availability?date=YYYY-MM-DD.
func (h *BookingHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	slots, err := h.BookingSvc.Availability(c.Request.Context(), date)
	if err != nil {
		respondError(c, err, "Failed to load availability")
		return
	}
	booked, err := h.BookingSvc.BookedTimes(c.Request.Context(), date)
	if err != nil {
		respondError(c, err, "Failed to load availability")
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots, "booked": booked})
}

// ListMyBookings handles GET /api/users/me/bookings.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	bookings, err := h.BookingSvc.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListBookings handles GET /api/admin/bookings?status=&date=&userId=.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	var filter models.BookingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}
	bookings, err := h.BookingSvc.ListBookings(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to load bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking handles GET /api/admin/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.BookingSvc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateStatus handles PUT /api/admin/bookings/:id/status.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	logger := getLogger(c)

	var update booking.StatusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status update", err.Error())
		return
	}
	update.DocID = c.Param("id")

	result, err := h.BookingSvc.UpdateStatus(c.Request.Context(), update)
	if err != nil {
		logger.Warn("UpdateStatus failed", zap.String("docID", update.DocID), zap.Error(err))
		respondError(c, err, "Failed to update booking status")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Reschedule handles PUT /api/admin/bookings/:id/schedule.
func (h *BookingHandler) Reschedule(c *gin.Context) {
	var input booking.RescheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid schedule", err.Error())
		return
	}
	input.DocID = c.Param("id")

	b, err := h.BookingSvc.Reschedule(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "Failed to reschedule booking")
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBooking handles DELETE /api/admin/bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.BookingSvc.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}
