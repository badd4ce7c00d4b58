package notification

import (
	"fmt"
	"html"

	"salonify/models"
)

func ResetPasswordEmail(name, link string) (subject, body string) {
	subject = "Reset your password"
	body = fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>We received a request to reset your password. The link below is valid for 30 minutes.</p>
		<p><a href="%s">Reset password</a></p>
		<p>If you did not ask for this you can ignore this email.</p>
	`, html.EscapeString(name), html.EscapeString(link))
	return subject, body
}

func ContactEmail(p models.ContactNotifyPayload) (subject, body string) {
	subject = fmt.Sprintf("New enquiry from %s", p.Name)
	body = fmt.Sprintf(`
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Phone:</strong> %s</p>
		<p>%s</p>
	`, html.EscapeString(p.Name), html.EscapeString(p.Email),
		html.EscapeString(p.Phone), html.EscapeString(p.Message))
	return subject, body
}

func ReminderEmail(name string, p models.ReminderPayload) (subject, body string) {
	subject = fmt.Sprintf("Reminder: %s tomorrow at %s", p.ServiceName, p.Time)
	body = fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your appointment tomorrow.</p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Booking ID:</strong> %s</li>
		</ul>
		<p>If you need to reschedule, message us on WhatsApp.</p>
	`, html.EscapeString(name), html.EscapeString(p.ServiceName),
		p.Date, p.Time, p.BookingID)
	return subject, body
}
