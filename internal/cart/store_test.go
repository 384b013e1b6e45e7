package cart

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestStore_RestoresPersistedSlot(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	store := NewStore(repo)
	store.Add(ctx, "u1", productA, 2)
	store.Add(ctx, "u1", productB, 1)
	before := store.Items(ctx, "u1")

	// a fresh store over the same repository simulates a reload
	reloaded := NewStore(repo)
	after := reloaded.Items(ctx, "u1")

	if !reflect.DeepEqual(before, after) {
		t.Fatalf("round-trip mismatch:\nbefore %+v\nafter  %+v", before, after)
	}
	if len(after) != 2 || after[0].ProductID != "A" || after[1].ProductID != "B" {
		t.Fatalf("restored cart lost insertion order: %+v", after)
	}
}

func TestStore_ClearErasesSlot(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()
	store := NewStore(repo)

	store.Add(ctx, "u1", productA, 1)
	store.Clear(ctx, "u1")

	if items := store.Items(ctx, "u1"); len(items) != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", items)
	}
	if _, err := repo.Load(ctx, "u1"); err != ErrNotFound {
		t.Fatalf("expected slot erased, got err=%v", err)
	}

	// clearing twice stays empty and does not panic or error
	store.Clear(ctx, "u1")
	if items := store.Items(ctx, "u1"); len(items) != 0 {
		t.Fatalf("expected empty cart after double clear, got %+v", items)
	}
}

func TestStore_IsolatesOwners(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewInMemoryRepository())

	store.Add(ctx, "u1", productA, 2)
	store.Add(ctx, "u2", productB, 1)

	if items := store.Items(ctx, "u1"); len(items) != 1 || items[0].ProductID != "A" {
		t.Fatalf("u1 cart polluted: %+v", items)
	}
	if items := store.Items(ctx, "u2"); len(items) != 1 || items[0].ProductID != "B" {
		t.Fatalf("u2 cart polluted: %+v", items)
	}
}

// brokenRepository fails every call, simulating unavailable durable storage.
type brokenRepository struct{}

func (brokenRepository) Load(ctx context.Context, ownerID string) ([]Line, error) {
	return nil, errors.New("storage unavailable")
}
func (brokenRepository) Save(ctx context.Context, ownerID string, lines []Line) error {
	return errors.New("storage unavailable")
}
func (brokenRepository) Delete(ctx context.Context, ownerID string) error {
	return errors.New("storage unavailable")
}

func TestStore_DegradesWithoutStorage(t *testing.T) {
	ctx := context.Background()
	store := NewStore(brokenRepository{})

	// the cart still works in memory for the session
	items := store.Add(ctx, "u1", productA, 2)
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("expected in-memory cart to work without storage, got %+v", items)
	}
	items = store.Increase(ctx, "u1", items[0].LineID)
	if items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", items[0].Quantity)
	}
	store.Clear(ctx, "u1")
	if items := store.Items(ctx, "u1"); len(items) != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", items)
	}
}

func TestStore_ItemsReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewInMemoryRepository())
	store.Add(ctx, "u1", productA, 2)

	items := store.Items(ctx, "u1")
	items[0].Quantity = 99

	if store.Items(ctx, "u1")[0].Quantity != 2 {
		t.Fatal("Items must hand out a copy, not the live state")
	}
}
