package models

const ChannelWhatsApp = "whatsapp"

// Notice is an outbound message the caller may open. It is a side-effect
// description, not a delivery receipt.
type Notice struct {
	Channel string `json:"channel"`
	To      string `json:"to,omitempty"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

// BookingNotifyPayload is queued when a booking is created or changes status.
type BookingNotifyPayload struct {
	DocID       string        `json:"docId"`
	BookingID   string        `json:"bookingId"`
	UserID      string        `json:"userId"`
	ServiceName string        `json:"serviceName"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Status      BookingStatus `json:"status"`
}

// ContactNotifyPayload is queued when a contact form is submitted.
type ContactNotifyPayload struct {
	SubmissionID string `json:"submissionId"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Message      string `json:"message"`
}

// ReminderPayload is queued for customers with an approved booking soon.
type ReminderPayload struct {
	BookingID   string `json:"bookingId"`
	UserID      string `json:"userId"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// EmailPayload is a raw message for the mail task.
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}
