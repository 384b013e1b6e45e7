package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wichananm65/pharmacy-shop-backend/internal/order"
	"github.com/wichananm65/pharmacy-shop-backend/internal/product"
)

// InMemoryRepository mirrors the store's transaction semantics over an
// in-memory product repository: validate every line first, then apply all
// decrements and record the order under one lock. Used for tests and local
// scenarios. It also serves order listings, so local mode sees the orders it
// placed.
type InMemoryRepository struct {
	mu       sync.Mutex
	products *product.InMemoryRepository
	orders   []order.Order
}

func NewInMemoryRepository(products *product.InMemoryRepository) *InMemoryRepository {
	return &InMemoryRepository{products: products}
}

func (r *InMemoryRepository) Place(ctx context.Context, ord order.Order) (order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// validate everything before touching anything
	validated := make([]product.Product, 0, len(ord.Items))
	for _, item := range ord.Items {
		p, err := r.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return order.Order{}, &ProductGoneError{ProductName: item.ProductName}
		}
		if p.Quantity < item.Quantity {
			return order.Order{}, &InsufficientStockError{ProductName: item.ProductName}
		}
		validated = append(validated, p)
	}

	for i, item := range ord.Items {
		p := validated[i]
		p.Quantity -= item.Quantity
		r.products.Put(p)
	}

	ord.ID = uuid.NewString()
	ord.CreatedAt = time.Now().UTC()
	r.orders = append(r.orders, ord)
	return ord, nil
}

// ListByUser implements order.Repository, newest first.
func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]order.Order, 0)
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].UserID == userID {
			out = append(out, r.orders[i])
		}
	}
	return out, nil
}
