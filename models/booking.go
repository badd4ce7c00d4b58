package models

import (
	"time"
)

type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusApproved BookingStatus = "approved"
	StatusCanceled BookingStatus = "canceled"
)

// DateLayout is the calendar date format used for booking dates.
const DateLayout = "2006-01-02"

// Booking represents a customer's reservation. DocID is assigned by the store;
// BookingID is the caller-assigned identifier shown to customers.
type Booking struct {
	DocID             string        `bson:"_id,omitempty" json:"docId"`
	BookingID         string        `bson:"bookingId" json:"bookingId"`
	UserID            string        `bson:"userId" json:"userId"`
	ServiceID         string        `bson:"serviceId" json:"serviceId"`
	ServiceName       string        `bson:"serviceName" json:"serviceName"`
	Date              string        `bson:"date" json:"date"`
	Time              string        `bson:"time" json:"time"`
	Price             float64       `bson:"price" json:"price"`
	Status            BookingStatus `bson:"status" json:"status"`
	CustomerName      string        `bson:"customerName" json:"customerName"`
	CustomerPhone     string        `bson:"customerPhone" json:"customerPhone"`
	Notes             string        `bson:"notes,omitempty" json:"notes,omitempty"`
	Custom            bool          `bson:"custom,omitempty" json:"custom,omitempty"`
	EstimatedDuration string        `bson:"estimatedDuration,omitempty" json:"estimatedDuration,omitempty"`
	CreatedAt         time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// IsTerminal reports whether no further status change is possible.
func (s BookingStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusCanceled
}

func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCanceled:
		return true
	}
	return false
}

// CanTransition reports whether the booking may move to the given status.
// Only pending bookings move, and never back to pending.
func (b *Booking) CanTransition(to BookingStatus) bool {
	if b.Status != StatusPending {
		return false
	}
	return to.IsTerminal()
}

// BookingFilter narrows admin listings. Zero fields match everything.
type BookingFilter struct {
	Status BookingStatus `form:"status"`
	Date   string        `form:"date"`
	UserID string        `form:"userId"`
}

// SlotAvailability is one entry of the advisory slot list for a date.
type SlotAvailability struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

// TimeSlots is the fixed set of bookable times, in display order.
var TimeSlots = []string{
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
	"5:00 PM",
	"6:00 PM",
	"7:00 PM",
	"8:00 PM",
}

// IsValidTimeSlot reports whether t is one of TimeSlots.
func IsValidTimeSlot(t string) bool {
	return SlotIndex(t) >= 0
}

// SlotIndex returns the position of t in TimeSlots, or -1.
func SlotIndex(t string) int {
	for i, s := range TimeSlots {
		if s == t {
			return i
		}
	}
	return -1
}

// IsValidDate reports whether d is a YYYY-MM-DD calendar date.
func IsValidDate(d string) bool {
	_, err := time.Parse(DateLayout, d)
	return err == nil
}
