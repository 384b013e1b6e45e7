package product

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// countingRepository wraps the in-memory repository and counts store reads.
type countingRepository struct {
	*InMemoryRepository
	gets int64
}

func (r *countingRepository) GetByID(ctx context.Context, id string) (Product, error) {
	atomic.AddInt64(&r.gets, 1)
	return r.InMemoryRepository.GetByID(ctx, id)
}

func TestService_GetByID_CachesSnapshot(t *testing.T) {
	repo := &countingRepository{InMemoryRepository: NewInMemoryRepository([]Product{
		{ID: "p1", Name: "Paracetamol", Price: 4.50, Quantity: 10},
	})}
	s := NewService(repo)

	for i := 0; i < 5; i++ {
		p, err := s.GetByID(context.Background(), "p1")
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if p.Name != "Paracetamol" {
			t.Fatalf("unexpected product %q", p.Name)
		}
	}

	if got := atomic.LoadInt64(&repo.gets); got != 1 {
		t.Fatalf("expected one store read, got %d", got)
	}
}

func TestService_GetByID_ConcurrentMissesCollapse(t *testing.T) {
	repo := &countingRepository{InMemoryRepository: NewInMemoryRepository([]Product{
		{ID: "p1", Name: "Ibuprofen", Quantity: 3},
	})}
	s := NewService(repo)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.GetByID(context.Background(), "p1"); err != nil {
				t.Errorf("GetByID failed: %v", err)
			}
		}()
	}
	wg.Wait()

	// singleflight may let a couple of flights through, but nowhere near one
	// read per caller
	if got := atomic.LoadInt64(&repo.gets); got > 3 {
		t.Fatalf("expected collapsed reads, got %d", got)
	}
}

func TestService_Invalidate(t *testing.T) {
	repo := &countingRepository{InMemoryRepository: NewInMemoryRepository([]Product{
		{ID: "p1", Name: "Aspirin", Quantity: 5},
	})}
	s := NewService(repo)

	if _, err := s.GetByID(context.Background(), "p1"); err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	repo.Put(Product{ID: "p1", Name: "Aspirin", Quantity: 2})
	s.Invalidate("p1")

	p, err := s.GetByID(context.Background(), "p1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if p.Quantity != 2 {
		t.Fatalf("expected refreshed quantity 2, got %d", p.Quantity)
	}
	if got := atomic.LoadInt64(&repo.gets); got != 2 {
		t.Fatalf("expected two store reads after invalidation, got %d", got)
	}
}

func TestProduct_Expired(t *testing.T) {
	now := time.Now()
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	if (Product{ExpiryDate: nil}).Expired(now) {
		t.Error("product without expiry date must not be expired")
	}
	if !(Product{ExpiryDate: &past}).Expired(now) {
		t.Error("product past its expiry date must be expired")
	}
	if (Product{ExpiryDate: &future}).Expired(now) {
		t.Error("product before its expiry date must not be expired")
	}
}
