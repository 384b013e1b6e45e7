package checkout

import (
	"context"

	"github.com/wichananm65/pharmacy-shop-backend/internal/auth"
	"github.com/wichananm65/pharmacy-shop-backend/internal/cart"
	"github.com/wichananm65/pharmacy-shop-backend/internal/order"
)

// Repository runs the checkout transaction: validate every line's stock,
// decrement inventory, create the order — all or nothing. Implementations
// must not leave partial effects behind on failure.
type Repository interface {
	Place(ctx context.Context, ord order.Order) (order.Order, error)
}

// Coordinator converts the caller's cart into exactly one order. It reads a
// single cart snapshot at invocation and uses it throughout: a concurrent
// cart edit during the transaction cannot change what gets priced or placed.
// On success the cart is cleared; on any failure it is left untouched so the
// user can correct the cause and retry.
type Coordinator struct {
	carts *cart.Store
	repo  Repository
}

func NewCoordinator(carts *cart.Store, repo Repository) *Coordinator {
	return &Coordinator{carts: carts, repo: repo}
}

func (co *Coordinator) Checkout(ctx context.Context, ident auth.Identity) (order.Order, error) {
	if ident.UID == "" {
		return order.Order{}, ErrNotAuthenticated
	}

	lines := co.carts.Items(ctx, ident.UID)
	if len(lines) == 0 {
		return order.Order{}, ErrEmptyCart
	}

	items := make([]order.Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, order.Item{
			ProductID:    l.ProductID,
			ProductName:  l.ProductName,
			PharmacyName: l.PharmacyName,
			Quantity:     l.Quantity,
			Price:        l.UnitPrice,
		})
	}

	ord := order.Order{
		UserID:          ident.UID,
		UserDisplayName: ident.DisplayName,
		Status:          order.StatusPlaced,
		// priced from the cart-held snapshot, not re-derived from the
		// transaction reads
		TotalPrice: cart.Total(lines),
		Items:      items,
	}

	placed, err := co.repo.Place(ctx, ord)
	if err != nil {
		return order.Order{}, err
	}

	co.carts.Clear(ctx, ident.UID)
	return placed, nil
}
