package contentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonify/database"
	"salonify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type MongoContentRepo[T models.Entity] struct {
	coll *mongo.Collection
}

// NewMongoContentRepo returns a repository over the named collection.
func NewMongoContentRepo[T models.Entity](collection string, logger *zap.Logger) ContentRepository[T] {
	repo := &MongoContentRepo[T]{coll: database.Collection(collection)}
	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("contentRepo: failed to create indexes",
			zap.String("collection", collection), zap.Error(err))
	}
	return repo
}

// NewMongoSet wires every content collection.
func NewMongoSet(logger *zap.Logger) Set {
	return Set{
		Hero:     NewMongoContentRepo[models.HeroImage](database.HeroImagesCollection, logger),
		Gallery:  NewMongoContentRepo[models.GalleryItem](database.GalleryCollection, logger),
		Reviews:  NewMongoContentRepo[models.Review](database.ReviewsCollection, logger),
		Contacts: NewMongoContentRepo[models.ContactSubmission](database.ContactSubmissionsCollection, logger),
	}
}

func (r *MongoContentRepo[T]) ensureIndexes() error {
	ctx, cancel := database.NewContext(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	return err
}

func (r *MongoContentRepo[T]) Create(ctx context.Context, item T) error {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", r.coll.Name(), err)
	}
	return nil
}

func (r *MongoContentRepo[T]) Get(ctx context.Context, id string) (*T, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	var item T
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s from %s: %w", id, r.coll.Name(), err)
	}
	return &item, nil
}

func (r *MongoContentRepo[T]) List(ctx context.Context) ([]T, error) {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.coll.Name(), err)
	}
	return items, nil
}

func (r *MongoContentRepo[T]) Delete(ctx context.Context, id string) error {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s from %s: %w", id, r.coll.Name(), err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
