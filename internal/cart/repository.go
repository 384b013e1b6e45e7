package cart

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("cart slot not found")
)

// SlotRepository persists a whole cart as one serialized slot per owner.
// The slot is written on every mutation and deleted on clear, so a restart
// (or a new instance) restores exactly what the owner last saw.
type SlotRepository interface {
	Load(ctx context.Context, ownerID string) ([]Line, error)
	Save(ctx context.Context, ownerID string, lines []Line) error
	Delete(ctx context.Context, ownerID string) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	slots map[string][]Line
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{slots: make(map[string][]Line)}
}

func (r *InMemoryRepository) Load(ctx context.Context, ownerID string) ([]Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lines, ok := r.slots[ownerID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]Line, len(lines))
	copy(out, lines)
	return out, nil
}

func (r *InMemoryRepository) Save(ctx context.Context, ownerID string, lines []Line) error {
	cp := make([]Line, len(lines))
	copy(cp, lines)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[ownerID] = cp
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, ownerID)
	return nil
}
