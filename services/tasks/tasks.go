package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"salonify/models"

	"github.com/hibiken/asynq"
)

const (
	TypeBookingNotify   = "booking:notify"
	TypeContactNotify   = "contact:notify"
	TypeBookingReminder = "booking:reminder"
	TypeSendEmail       = "email:send"
)

func newTask(taskType string, payload any, opts ...asynq.Option) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", taskType, err)
	}
	return asynq.NewTask(taskType, b, opts...), nil
}

func NewBookingNotifyTask(p models.BookingNotifyPayload) (*asynq.Task, error) {
	return newTask(TypeBookingNotify, p, asynq.MaxRetry(3))
}

func NewContactNotifyTask(p models.ContactNotifyPayload) (*asynq.Task, error) {
	return newTask(TypeContactNotify, p, asynq.MaxRetry(5))
}

// NewReminderTask fires at fireAt. The booking id doubles as the task id so a
// rerun of the daily scan does not queue a second reminder.
func NewReminderTask(p models.ReminderPayload, fireAt time.Time) (*asynq.Task, error) {
	return newTask(TypeBookingReminder, p,
		asynq.ProcessAt(fireAt),
		asynq.TaskID("reminder:"+p.BookingID+":"+p.Date),
		asynq.MaxRetry(3),
	)
}

func NewEmailTask(p models.EmailPayload) (*asynq.Task, error) {
	return newTask(TypeSendEmail, p, asynq.MaxRetry(5))
}
