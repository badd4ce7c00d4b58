package notification

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"salonify/models"
)

const waBaseURL = "https://wa.me/"

// WhatsAppMessenger renders wa.me deep links. A number given at construction
// is fixed; otherwise the salon settings supply it.
type WhatsAppMessenger struct {
	mu          sync.RWMutex
	fixedNumber string
	number      string
	name        string
}

func NewWhatsAppMessenger(salonNumber, salonName string) *WhatsAppMessenger {
	return &WhatsAppMessenger{fixedNumber: salonNumber, number: salonNumber, name: salonName}
}

// ApplySettings picks up the salon name and WhatsApp number after an update.
func (m *WhatsAppMessenger) ApplySettings(s models.SalonSettings) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.name = s.Name
	if m.fixedNumber == "" {
		m.number = s.WhatsApp
	}
}

func (m *WhatsAppMessenger) salon() (number, name string) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.number, m.name
}

// NewBookingNotice is addressed to the salon.
func (m *WhatsAppMessenger) NewBookingNotice(b models.Booking) models.Notice {
	msg := fmt.Sprintf(
		"Hi! I'd like to book %s on %s at %s.\nName: %s\nPhone: %s\nBooking ID: %s",
		b.ServiceName, b.Date, b.Time, b.CustomerName, b.CustomerPhone, b.BookingID,
	)
	if b.Notes != "" {
		msg += "\nNotes: " + b.Notes
	}
	number, _ := m.salon()
	return newNotice(number, msg)
}

// ApprovalNotice is addressed to the customer.
func (m *WhatsAppMessenger) ApprovalNotice(b models.Booking) models.Notice {
	_, name := m.salon()
	if name == "" {
		name = "the salon"
	}
	msg := fmt.Sprintf(
		"Hello %s, your %s appointment at %s on %s at %s is confirmed. Booking ID: %s",
		b.CustomerName, b.ServiceName, name, b.Date, b.Time, b.BookingID,
	)
	return newNotice(b.CustomerPhone, msg)
}

func newNotice(phone, msg string) models.Notice {
	to := DigitsOnly(phone)
	return models.Notice{
		Channel: models.ChannelWhatsApp,
		To:      to,
		Message: msg,
		URL:     waBaseURL + to + "?text=" + url.QueryEscape(msg),
	}
}

// DigitsOnly strips everything but 0-9, the form wa.me expects.
func DigitsOnly(phone string) string {
	var sb strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
