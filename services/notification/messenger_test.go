package notification

import (
	"net/url"
	"strings"
	"testing"

	"salonify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingNoticeTargetsSalon(t *testing.T) {
	m := NewWhatsAppMessenger("+91 98765-43210", "Salonify Studio")
	n := m.NewBookingNotice(models.Booking{
		BookingID:     "b-1",
		ServiceName:   "Classic Haircut",
		Date:          "2025-06-01",
		Time:          "11:00 AM",
		CustomerName:  "Asha",
		CustomerPhone: "9000000000",
	})

	assert.Equal(t, models.ChannelWhatsApp, n.Channel)
	assert.Equal(t, "919876543210", n.To)
	require.True(t, strings.HasPrefix(n.URL, "https://wa.me/919876543210?text="))

	u, err := url.Parse(n.URL)
	require.NoError(t, err)
	assert.Equal(t, n.Message, u.Query().Get("text"))
	assert.Contains(t, n.Message, "Classic Haircut")
	assert.Contains(t, n.Message, "11:00 AM")
}

func TestApprovalNoticeTargetsCustomer(t *testing.T) {
	m := NewWhatsAppMessenger("919876543210", "")
	n := m.ApprovalNotice(models.Booking{
		BookingID:     "b-2",
		ServiceName:   "Hair Spa",
		CustomerName:  "Ravi",
		CustomerPhone: "(900) 111-2222",
	})

	assert.Equal(t, "9001112222", n.To)
	assert.Contains(t, n.Message, "confirmed")
	assert.Contains(t, n.Message, "the salon")
}

func TestApplySettingsRetargetsNotices(t *testing.T) {
	b := models.Booking{BookingID: "b-3", ServiceName: "Facial", CustomerPhone: "9000000000"}

	m := NewWhatsAppMessenger("", "")
	assert.Empty(t, m.NewBookingNotice(b).To)

	m.ApplySettings(models.SalonSettings{Name: "Glow Lounge", WhatsApp: "+91 99999 11111"})
	assert.Equal(t, "919999911111", m.NewBookingNotice(b).To)
	assert.Contains(t, m.ApprovalNotice(b).Message, "Glow Lounge")

	m.ApplySettings(models.SalonSettings{Name: "Glow Lounge", WhatsApp: "+91 88888 22222"})
	assert.Equal(t, "918888822222", m.NewBookingNotice(b).To)
}

func TestConfiguredNumberOutranksSettings(t *testing.T) {
	m := NewWhatsAppMessenger("+91 98765 43210", "Salonify Studio")
	m.ApplySettings(models.SalonSettings{Name: "Renamed", WhatsApp: "+91 99999 11111"})

	n := m.NewBookingNotice(models.Booking{BookingID: "b-4"})
	assert.Equal(t, "919876543210", n.To)
	assert.Contains(t, m.ApprovalNotice(models.Booking{}).Message, "Renamed")
}

func TestDisabledMailerIsNoop(t *testing.T) {
	var m *SMTPMailer
	assert.False(t, m.Enabled())
	assert.NoError(t, NewSMTPMailer("", 587, "", "").Send(t.Context(), "a@b.c", "s", "b"))
}
