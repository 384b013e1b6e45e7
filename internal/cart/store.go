package cart

import (
	"context"
	"log"
	"sync"

	"github.com/wichananm65/pharmacy-shop-backend/internal/product"
)

// Store owns all cart state. Carts live in memory keyed by owner and mirror
// into the slot repository on every change, so they survive restarts.
// Mutations are total: they clamp instead of failing, and a broken slot
// repository only costs durability, never the operation itself.
type Store struct {
	mu     sync.RWMutex
	carts  map[string][]Line
	loaded map[string]bool
	repo   SlotRepository
}

func NewStore(repo SlotRepository) *Store {
	return &Store{
		carts:  make(map[string][]Line),
		loaded: make(map[string]bool),
		repo:   repo,
	}
}

// Items returns the owner's cart lines in insertion order.
func (s *Store) Items(ctx context.Context, ownerID string) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.restore(ctx, ownerID))
}

// Add merges requested units of a product into the cart. The product's
// current quantity becomes the line's stock snapshot when a new line is
// created; an existing line keeps the snapshot it was created with.
func (s *Store) Add(ctx context.Context, ownerID string, p product.Product, requested int64) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := add(s.restore(ctx, ownerID), p, requested)
	s.carts[ownerID] = lines
	s.persist(ctx, ownerID, lines)
	return snapshot(lines)
}

// Increase bumps a line by one, capped at its stock snapshot. Unknown line
// ids are a no-op.
func (s *Store) Increase(ctx context.Context, ownerID, lineID string) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := increase(s.restore(ctx, ownerID), lineID)
	s.carts[ownerID] = lines
	s.persist(ctx, ownerID, lines)
	return snapshot(lines)
}

// Decrease drops a line by one; the last unit removes the line.
func (s *Store) Decrease(ctx context.Context, ownerID, lineID string) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := decrease(s.restore(ctx, ownerID), lineID)
	s.carts[ownerID] = lines
	s.persist(ctx, ownerID, lines)
	return snapshot(lines)
}

// Remove deletes a line regardless of quantity.
func (s *Store) Remove(ctx context.Context, ownerID, lineID string) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := remove(s.restore(ctx, ownerID), lineID)
	s.carts[ownerID] = lines
	s.persist(ctx, ownerID, lines)
	return snapshot(lines)
}

// Clear empties the cart and erases the persisted slot. Clearing an already
// empty cart is a no-op, not an error.
func (s *Store) Clear(ctx context.Context, ownerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[ownerID] = []Line{}
	s.loaded[ownerID] = true
	if err := s.repo.Delete(ctx, ownerID); err != nil {
		log.Printf("warning: could not delete cart slot for %s: %v", ownerID, err)
	}
}

// restore lazily loads the owner's persisted slot on first access. A load
// failure degrades to an empty in-memory cart for the session. Callers must
// hold s.mu.
func (s *Store) restore(ctx context.Context, ownerID string) []Line {
	if s.loaded[ownerID] {
		return s.carts[ownerID]
	}
	s.loaded[ownerID] = true

	lines, err := s.repo.Load(ctx, ownerID)
	if err != nil {
		if err != ErrNotFound {
			log.Printf("warning: could not restore cart slot for %s: %v", ownerID, err)
		}
		lines = []Line{}
	}
	s.carts[ownerID] = lines
	return lines
}

// persist mirrors the cart into the slot repository. Failure is logged and
// swallowed: the cart keeps working in memory without reload-durability.
func (s *Store) persist(ctx context.Context, ownerID string, lines []Line) {
	if err := s.repo.Save(ctx, ownerID, lines); err != nil {
		log.Printf("warning: could not persist cart slot for %s: %v", ownerID, err)
	}
}

func snapshot(lines []Line) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}
