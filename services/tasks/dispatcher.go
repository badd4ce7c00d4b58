package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonify/models"

	"github.com/hibiken/asynq"
)

// Dispatcher queues background work. Enqueue failures are returned so callers
// can log them; none of them should fail the request that triggered them.
type Dispatcher interface {
	EnqueueBookingNotify(ctx context.Context, p models.BookingNotifyPayload) error
	EnqueueContactNotify(ctx context.Context, p models.ContactNotifyPayload) error
	EnqueueReminder(ctx context.Context, p models.ReminderPayload, fireAt time.Time) error
	EnqueueEmail(ctx context.Context, p models.EmailPayload) error
}

type AsynqDispatcher struct {
	client *asynq.Client
}

func NewAsynqDispatcher(opt asynq.RedisClientOpt) *AsynqDispatcher {
	return &AsynqDispatcher{client: asynq.NewClient(opt)}
}

func (d *AsynqDispatcher) enqueue(ctx context.Context, task *asynq.Task, err error) error {
	if err != nil {
		return err
	}
	if _, err := d.client.EnqueueContext(ctx, task); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("failed to enqueue %s: %w", task.Type(), err)
	}
	return nil
}

func (d *AsynqDispatcher) EnqueueBookingNotify(ctx context.Context, p models.BookingNotifyPayload) error {
	task, err := NewBookingNotifyTask(p)
	return d.enqueue(ctx, task, err)
}

func (d *AsynqDispatcher) EnqueueContactNotify(ctx context.Context, p models.ContactNotifyPayload) error {
	task, err := NewContactNotifyTask(p)
	return d.enqueue(ctx, task, err)
}

func (d *AsynqDispatcher) EnqueueReminder(ctx context.Context, p models.ReminderPayload, fireAt time.Time) error {
	task, err := NewReminderTask(p, fireAt)
	return d.enqueue(ctx, task, err)
}

func (d *AsynqDispatcher) EnqueueEmail(ctx context.Context, p models.EmailPayload) error {
	task, err := NewEmailTask(p)
	return d.enqueue(ctx, task, err)
}

func (d *AsynqDispatcher) Close() error {
	return d.client.Close()
}

// NopDispatcher drops every task. Used when Redis queueing is off.
type NopDispatcher struct{}

func (NopDispatcher) EnqueueBookingNotify(context.Context, models.BookingNotifyPayload) error {
	return nil
}

func (NopDispatcher) EnqueueContactNotify(context.Context, models.ContactNotifyPayload) error {
	return nil
}

func (NopDispatcher) EnqueueReminder(context.Context, models.ReminderPayload, time.Time) error {
	return nil
}

func (NopDispatcher) EnqueueEmail(context.Context, models.EmailPayload) error {
	return nil
}
