package contentRepo

import (
	"context"
	"sort"
	"sync"

	"salonify/models"
)

type MemoryContentRepo[T models.Entity] struct {
	mu    sync.RWMutex
	items map[string]T
}

func NewMemoryContentRepo[T models.Entity]() *MemoryContentRepo[T] {
	return &MemoryContentRepo[T]{items: make(map[string]T)}
}

// NewMemorySet returns an empty in-process Set.
func NewMemorySet() Set {
	return Set{
		Hero:     NewMemoryContentRepo[models.HeroImage](),
		Gallery:  NewMemoryContentRepo[models.GalleryItem](),
		Reviews:  NewMemoryContentRepo[models.Review](),
		Contacts: NewMemoryContentRepo[models.ContactSubmission](),
	}
}

func (r *MemoryContentRepo[T]) Create(_ context.Context, item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.EntityID()] = item
	return nil
}

func (r *MemoryContentRepo[T]) Get(_ context.Context, id string) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (r *MemoryContentRepo[T]) List(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]T, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Created().After(items[j].Created())
	})
	return items, nil
}

func (r *MemoryContentRepo[T]) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}
