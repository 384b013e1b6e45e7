package checkout

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/wichananm65/pharmacy-shop-backend/internal/order"
)

// FirestoreRepository runs the checkout protocol as one Firestore
// transaction. The store retries the transaction body itself on write
// conflict, so two checkouts racing for the last unit resolve to one success
// and one InsufficientStockError.
type FirestoreRepository struct {
	client *firestore.Client
}

func NewFirestoreRepository(client *firestore.Client) *FirestoreRepository {
	return &FirestoreRepository{client: client}
}

func (r *FirestoreRepository) Place(ctx context.Context, ord order.Order) (order.Order, error) {
	orderRef := r.client.Collection("orders").NewDoc()

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		type decrement struct {
			ref    *firestore.DocumentRef
			newQty int64
		}

		// read and validate every product before any write
		pending := make([]decrement, 0, len(ord.Items))
		for _, item := range ord.Items {
			ref := r.client.Collection("products").Doc(item.ProductID)
			snap, err := tx.Get(ref)
			if err != nil {
				if status.Code(err) == codes.NotFound {
					return &ProductGoneError{ProductName: item.ProductName}
				}
				return err
			}

			qty, err := stockQuantity(snap)
			if err != nil {
				return err
			}
			if qty < item.Quantity {
				return &InsufficientStockError{ProductName: item.ProductName}
			}
			pending = append(pending, decrement{ref: ref, newQty: qty - item.Quantity})
		}

		for _, d := range pending {
			if err := tx.Update(d.ref, []firestore.Update{
				{Path: "quantity", Value: d.newQty},
			}); err != nil {
				return err
			}
		}

		// zero CreatedAt lets the serverTimestamp tag take over
		return tx.Set(orderRef, ord)
	})
	if err != nil {
		return order.Order{}, err
	}

	ord.ID = orderRef.ID
	return ord, nil
}

func stockQuantity(snap *firestore.DocumentSnapshot) (int64, error) {
	v, err := snap.DataAt("quantity")
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	default:
		return 0, nil
	}
}
