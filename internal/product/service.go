package product

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ServiceInterface lets other packages depend on the product service without
// the concrete type.
type ServiceInterface interface {
	GetByID(ctx context.Context, id string) (Product, error)
	List(ctx context.Context) ([]Product, error)
}

// Service serves product reads with a short-lived snapshot cache. Concurrent
// lookups of the same id collapse into one store read via singleflight.
// The cache only feeds the cart's stock snapshots and listings; checkout
// always revalidates stock inside its transaction.
type Service struct {
	repo Repository
	sfg  singleflight.Group

	mu    sync.RWMutex
	cache map[string]cached
	ttl   time.Duration
}

type cached struct {
	p       Product
	expires time.Time
}

const defaultSnapshotTTL = 30 * time.Second

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		cache: make(map[string]cached),
		ttl:   defaultSnapshotTTL,
	}
}

func (s *Service) GetByID(ctx context.Context, id string) (Product, error) {
	if id == "" {
		return Product{}, ErrNotFound
	}

	s.mu.RLock()
	c, ok := s.cache[id]
	s.mu.RUnlock()
	if ok && time.Now().Before(c.expires) {
		return c.p, nil
	}

	v, err, _ := s.sfg.Do(id, func() (interface{}, error) {
		p, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return Product{}, err
		}
		s.mu.Lock()
		s.cache[id] = cached{p: p, expires: time.Now().Add(s.ttl)}
		s.mu.Unlock()
		return p, nil
	})
	if err != nil {
		return Product{}, err
	}
	return v.(Product), nil
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

// Invalidate drops a cached snapshot, e.g. right after a checkout changed the
// product's stock.
func (s *Service) Invalidate(id string) {
	s.mu.Lock()
	delete(s.cache, id)
	s.mu.Unlock()
}
