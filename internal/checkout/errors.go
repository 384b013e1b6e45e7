package checkout

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated refuses checkout before any transaction begins.
	ErrNotAuthenticated = errors.New("checkout requires a signed-in user")
	// ErrEmptyCart refuses a zero-line checkout instead of creating an
	// empty order.
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")
)

// ProductGoneError aborts the whole transaction when a cart line's product
// was deleted server-side. The message names the product so the user can
// remove the stale line.
type ProductGoneError struct {
	ProductName string
}

func (e *ProductGoneError) Error() string {
	return fmt.Sprintf("Product %s no longer exists", e.ProductName)
}

// InsufficientStockError aborts the whole transaction when a cart line asks
// for more units than the store currently holds.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Not enough stock for %s", e.ProductName)
}
