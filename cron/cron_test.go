package cron

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	bookingRepo "salonify/database/repository/booking"
	userRepo "salonify/database/repository/user"
	"salonify/models"
	"salonify/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sentMail struct {
	to, subject string
}

type fakeMailer struct {
	enabled bool
	sent    []sentMail
	err     error
}

func (m *fakeMailer) Enabled() bool { return m.enabled }

func (m *fakeMailer) Send(_ context.Context, to, subject, _ string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject})
	return nil
}

type fakePusher struct {
	titles []string
	data   []map[string]string
}

func (p *fakePusher) NotifyAdmins(_ context.Context, title, _ string, data map[string]string) error {
	p.titles = append(p.titles, title)
	p.data = append(p.data, data)
	return nil
}

type reminderRecorder struct {
	tasks.NopDispatcher
	reminders []models.ReminderPayload
}

func (r *reminderRecorder) EnqueueReminder(_ context.Context, p models.ReminderPayload, _ time.Time) error {
	r.reminders = append(r.reminders, p)
	return nil
}

func task(t *testing.T, taskType string, payload any) *asynq.Task {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return asynq.NewTask(taskType, b)
}

func newHandlers() (*TaskHandlers, *fakeMailer, *fakePusher, *userRepo.MemoryUserRepo) {
	mailer := &fakeMailer{enabled: true}
	pusher := &fakePusher{}
	users := userRepo.NewMemoryUserRepo()
	return &TaskHandlers{
		Pusher:     pusher,
		Mailer:     mailer,
		Users:      users,
		AdminEmail: "owner@salon.example",
		Logger:     zap.NewNop(),
	}, mailer, pusher, users
}

func TestBookingNotifyPushesToAdmins(t *testing.T) {
	h, _, pusher, _ := newHandlers()
	err := h.HandleBookingNotify(context.Background(), task(t, tasks.TypeBookingNotify, models.BookingNotifyPayload{
		DocID: "d1", BookingID: "b1", ServiceName: "Hair Spa", Date: "2025-06-01", Time: "11:00 AM", Status: models.StatusPending,
	}))
	require.NoError(t, err)
	require.Equal(t, []string{"New booking request"}, pusher.titles)
	assert.Equal(t, "b1", pusher.data[0]["bookingId"])
}

func TestContactNotifyMailsAdmin(t *testing.T) {
	h, mailer, _, _ := newHandlers()
	err := h.HandleContactNotify(context.Background(), task(t, tasks.TypeContactNotify, models.ContactNotifyPayload{
		SubmissionID: "c1", Name: "Ria", Message: "Hello",
	}))
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "owner@salon.example", mailer.sent[0].to)

	h.AdminEmail = ""
	require.NoError(t, h.HandleContactNotify(context.Background(), task(t, tasks.TypeContactNotify, models.ContactNotifyPayload{Name: "Ria"})))
	assert.Len(t, mailer.sent, 1)
}

func TestReminderRespectsNotificationSetting(t *testing.T) {
	h, mailer, _, users := newHandlers()
	ctx := context.Background()
	require.NoError(t, users.Create(ctx, &models.User{ID: "u1", Email: "asha@example.com", Name: "Asha", Settings: models.DefaultUserSettings()}))
	require.NoError(t, users.Create(ctx, &models.User{ID: "u2", Email: "quiet@example.com", Name: "Quiet"}))

	p := models.ReminderPayload{BookingID: "b1", UserID: "u1", ServiceName: "Hair Spa", Date: "2025-06-02", Time: "3:00 PM"}
	require.NoError(t, h.HandleReminder(ctx, task(t, tasks.TypeBookingReminder, p)))

	p.UserID = "u2"
	require.NoError(t, h.HandleReminder(ctx, task(t, tasks.TypeBookingReminder, p)))

	p.UserID = "missing"
	require.NoError(t, h.HandleReminder(ctx, task(t, tasks.TypeBookingReminder, p)))

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "asha@example.com", mailer.sent[0].to)
}

func TestMalformedPayloadSkipsRetry(t *testing.T) {
	h, _, _, _ := newHandlers()
	err := h.HandleEmail(context.Background(), asynq.NewTask(tasks.TypeSendEmail, []byte("{")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestMailFailureIsRetried(t *testing.T) {
	h, mailer, _, _ := newHandlers()
	mailer.err = errors.New("smtp down")
	err := h.HandleEmail(context.Background(), task(t, tasks.TypeSendEmail, models.EmailPayload{To: "a@b.co", Subject: "Hi"}))
	require.Error(t, err)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestReminderScanQueuesApprovedBookingsForTomorrow(t *testing.T) {
	ctx := context.Background()
	repo := bookingRepo.NewMemoryBookingRepo()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	for _, b := range []models.Booking{
		{BookingID: "approved", UserID: "u1", Date: "2025-06-02", Time: "11:00 AM", Status: models.StatusApproved},
		{BookingID: "pending", UserID: "u1", Date: "2025-06-02", Time: "12:00 PM", Status: models.StatusPending},
		{BookingID: "canceled", UserID: "u2", Date: "2025-06-02", Time: "1:00 PM", Status: models.StatusCanceled},
		{BookingID: "later", UserID: "u2", Date: "2025-06-03", Time: "1:00 PM", Status: models.StatusApproved},
	} {
		b := b
		require.NoError(t, repo.Create(ctx, &b))
	}

	recorder := &reminderRecorder{}
	scanner := NewReminderScanner(repo, recorder, zap.NewNop())
	scanner.Now = func() time.Time { return now }

	n, err := scanner.Scan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, recorder.reminders, 1)
	assert.Equal(t, "approved", recorder.reminders[0].BookingID)
}

// slotsOnlyRepo returns what the Mongo projection returns from ListByDate.
type slotsOnlyRepo struct {
	*bookingRepo.MemoryBookingRepo
}

func (r slotsOnlyRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	full, err := r.MemoryBookingRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	out := make([]models.Booking, 0, len(full))
	for _, b := range full {
		out = append(out, models.Booking{Date: b.Date, Time: b.Time, Status: b.Status})
	}
	return out, nil
}

func TestReminderScanUsesFullBookingRecords(t *testing.T) {
	ctx := context.Background()
	repo := slotsOnlyRepo{bookingRepo.NewMemoryBookingRepo()}
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	for _, b := range []models.Booking{
		{BookingID: "BK-1", UserID: "u1", ServiceName: "Classic Haircut", Date: "2025-06-02", Time: "11:00 AM", Status: models.StatusApproved},
		{BookingID: "BK-2", UserID: "u2", ServiceName: "Hair Spa", Date: "2025-06-02", Time: "2:00 PM", Status: models.StatusApproved},
	} {
		b := b
		require.NoError(t, repo.Create(ctx, &b))
	}

	recorder := &reminderRecorder{}
	scanner := NewReminderScanner(repo, recorder, zap.NewNop())
	scanner.Now = func() time.Time { return now }

	n, err := scanner.Scan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, recorder.reminders, 2)

	byID := map[string]models.ReminderPayload{}
	for _, p := range recorder.reminders {
		byID[p.BookingID] = p
	}
	require.Contains(t, byID, "BK-1")
	require.Contains(t, byID, "BK-2")
	assert.Equal(t, "u1", byID["BK-1"].UserID)
	assert.Equal(t, "Classic Haircut", byID["BK-1"].ServiceName)
	assert.Equal(t, "u2", byID["BK-2"].UserID)
}

func TestStartReminderCronRejectsBadSpec(t *testing.T) {
	scanner := NewReminderScanner(bookingRepo.NewMemoryBookingRepo(), tasks.NopDispatcher{}, zap.NewNop())
	_, err := StartReminderCron("not a schedule", scanner)
	assert.Error(t, err)

	c, err := StartReminderCron("0 9 * * *", scanner)
	require.NoError(t, err)
	c.Stop()
}
