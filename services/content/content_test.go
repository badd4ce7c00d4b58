package content

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	contentRepo "salonify/database/repository/content"
	settingsRepo "salonify/database/repository/settings"
	"salonify/models"
	"salonify/services/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	uploaded []string
	deleted  []string
	fail     bool
}

func (f *fakeStorage) Upload(_ context.Context, r io.Reader, filename, folder string) (*storage.Uploaded, error) {
	if f.fail {
		return nil, errors.New("upload refused")
	}
	b, _ := io.ReadAll(r)
	id := folder + "/" + filename
	f.uploaded = append(f.uploaded, string(b))
	return &storage.Uploaded{PublicID: id, URL: "https://cdn.example.com/" + id}, nil
}

func (f *fakeStorage) DeleteFile(_ context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return nil
}

type recordingDispatcher struct {
	contacts []models.ContactNotifyPayload
}

func (d *recordingDispatcher) EnqueueBookingNotify(context.Context, models.BookingNotifyPayload) error {
	return nil
}

func (d *recordingDispatcher) EnqueueContactNotify(_ context.Context, p models.ContactNotifyPayload) error {
	d.contacts = append(d.contacts, p)
	return nil
}

func (d *recordingDispatcher) EnqueueReminder(context.Context, models.ReminderPayload, time.Time) error {
	return nil
}

func (d *recordingDispatcher) EnqueueEmail(context.Context, models.EmailPayload) error {
	return nil
}

func newService() (*DefaultContentService, *fakeStorage, *recordingDispatcher) {
	store := &fakeStorage{}
	dispatcher := &recordingDispatcher{}
	svc := NewDefaultContentService(contentRepo.NewMemorySet(), settingsRepo.NewMemorySettingsRepo(), store, dispatcher, nil)
	return svc, store, dispatcher
}

func TestUploadAndDeleteGalleryItem(t *testing.T) {
	svc, store, _ := newService()
	ctx := context.Background()

	item, err := svc.UploadGalleryItem(ctx, strings.NewReader("png-bytes"), "look.png", GalleryInput{Caption: " Balayage "})
	require.NoError(t, err)
	assert.Equal(t, "Balayage", item.Caption)
	assert.Equal(t, galleryFolder+"/look.png", item.PublicID)
	assert.Equal(t, []string{"png-bytes"}, store.uploaded)

	items, err := svc.ListGallery(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, svc.DeleteGalleryItem(ctx, item.ID))
	assert.Equal(t, []string{item.PublicID}, store.deleted)
	assert.ErrorIs(t, svc.DeleteGalleryItem(ctx, item.ID), ErrNotFound)
}

func TestUploadFailureStoresNothing(t *testing.T) {
	svc, store, _ := newService()
	store.fail = true

	_, err := svc.UploadHero(context.Background(), strings.NewReader("x"), "a.png", HeroInput{})
	require.Error(t, err)
	heroes, err := svc.ListHero(context.Background())
	require.NoError(t, err)
	assert.Empty(t, heroes)
}

func TestCreateHeroFromURL(t *testing.T) {
	svc, store, _ := newService()
	ctx := context.Background()

	_, err := svc.CreateHero(ctx, HeroInput{URL: "not a url"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	hero, err := svc.CreateHero(ctx, HeroInput{URL: "https://images.example.com/1.jpg", Title: "Summer"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteHero(ctx, hero.ID))
	assert.Empty(t, store.deleted)
}

func TestReviewsNewestFirst(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	_, err := svc.CreateReview(ctx, ReviewInput{Name: "A", Rating: 6, Comment: "ok"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	first, err := svc.CreateReview(ctx, ReviewInput{Name: "Meera", Rating: 5, Comment: "Loved it"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.Avatar)
	time.Sleep(2 * time.Millisecond)
	second, err := svc.CreateReview(ctx, ReviewInput{Name: "Kabir", Rating: 4, Comment: "Great fade"})
	require.NoError(t, err)

	reviews, err := svc.ListReviews(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, second.ID, reviews[0].ID)
	assert.Equal(t, first.ID, reviews[1].ID)
}

func TestSubmitContactQueuesNotification(t *testing.T) {
	svc, _, dispatcher := newService()
	ctx := context.Background()

	_, err := svc.SubmitContact(ctx, ContactInput{Name: "Ria", Message: "Hi"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.SubmitContact(ctx, ContactInput{Name: "Ria", Email: "bad", Message: "Hi"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	sub, err := svc.SubmitContact(ctx, ContactInput{Name: "Ria", Email: "Ria@Example.com", Message: "Do you do keratin?"})
	require.NoError(t, err)
	assert.Equal(t, "ria@example.com", sub.Email)
	require.Len(t, dispatcher.contacts, 1)
	assert.Equal(t, sub.ID, dispatcher.contacts[0].SubmissionID)

	list, err := svc.ListContacts(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	require.NoError(t, svc.DeleteContact(ctx, sub.ID))
	assert.ErrorIs(t, svc.DeleteContact(ctx, sub.ID), ErrNotFound)
}

func TestSettingsDefaultsAndUpdate(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	got, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSalonSettings().Name, got.Name)

	name := "Glow Studio"
	open := false
	updated, err := svc.UpdateSettings(ctx, models.SalonSettingsUpdate{Name: &name, BookingsOpen: &open})
	require.NoError(t, err)
	assert.Equal(t, "Glow Studio", updated.Name)
	assert.False(t, updated.BookingsOpen)
	assert.Equal(t, models.DefaultSalonSettings().OpeningHours, updated.OpeningHours)

	again, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Glow Studio", again.Name)

	empty := " "
	_, err = svc.UpdateSettings(ctx, models.SalonSettingsUpdate{Name: &empty})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCatalog(t *testing.T) {
	svc, _, _ := newService()
	svcEntry, ok := svc.GetService("classic-haircut")
	require.True(t, ok)
	assert.Equal(t, float64(499), svcEntry.Price)
	assert.NotEmpty(t, svc.ListPackages())
	assert.Len(t, svc.ListServices(), len(models.Catalog))
}

func TestUpdateSettingsNotifiesListener(t *testing.T) {
	svc, _, _ := newService()
	var seen []models.SalonSettings
	svc.OnSettingsChange = func(s models.SalonSettings) { seen = append(seen, s) }

	number := "+91 99999 11111"
	_, err := svc.UpdateSettings(context.Background(), models.SalonSettingsUpdate{WhatsApp: &number})
	require.NoError(t, err)
	require.Len(t, seen, 1)
	assert.Equal(t, number, seen[0].WhatsApp)

	empty := ""
	_, err = svc.UpdateSettings(context.Background(), models.SalonSettingsUpdate{Name: &empty})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Len(t, seen, 1)
}
