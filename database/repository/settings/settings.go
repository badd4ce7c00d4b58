package settingsRepo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"salonify/database"
	"salonify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SettingsRepository persists the single salon settings document.
type SettingsRepository interface {
	// Get returns nil, nil when nothing has been saved yet.
	Get(ctx context.Context) (*models.SalonSettings, error)
	Upsert(ctx context.Context, settings *models.SalonSettings) error
}

type MongoSettingsRepo struct {
	coll *mongo.Collection
}

func NewMongoSettingsRepo() SettingsRepository {
	return &MongoSettingsRepo{coll: database.Collection(database.SettingsCollection)}
}

func (r *MongoSettingsRepo) Get(ctx context.Context) (*models.SalonSettings, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	var s models.SalonSettings
	err := r.coll.FindOne(ctx, bson.M{"id": models.SalonSettingsID}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch salon settings: %w", err)
	}
	return &s, nil
}

func (r *MongoSettingsRepo) Upsert(ctx context.Context, settings *models.SalonSettings) error {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	settings.ID = models.SalonSettingsID
	settings.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": models.SalonSettingsID}, settings, opts); err != nil {
		return fmt.Errorf("failed to save salon settings: %w", err)
	}
	return nil
}

type MemorySettingsRepo struct {
	mu       sync.RWMutex
	settings *models.SalonSettings
}

func NewMemorySettingsRepo() *MemorySettingsRepo {
	return &MemorySettingsRepo{}
}

func (r *MemorySettingsRepo) Get(_ context.Context) (*models.SalonSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.settings == nil {
		return nil, nil
	}
	s := *r.settings
	return &s, nil
}

func (r *MemorySettingsRepo) Upsert(_ context.Context, settings *models.SalonSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings.ID = models.SalonSettingsID
	settings.UpdatedAt = time.Now()
	s := *settings
	r.settings = &s
	return nil
}
