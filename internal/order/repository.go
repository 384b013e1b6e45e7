package order

import (
	"context"
)

// Repository lists orders. Order creation happens inside the checkout
// transaction, not here.
type Repository interface {
	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]Order, error)
}
