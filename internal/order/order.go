package order

import "time"

// StatusPlaced is the only status this service ever writes. Orders are
// append-only here; later fulfilment states belong to other tooling.
const StatusPlaced = "PLACED"

// Item is an immutable snapshot of one cart line at checkout time.
type Item struct {
	ProductID    string  `json:"productId" firestore:"productId"`
	ProductName  string  `json:"productName" firestore:"productName"`
	PharmacyName string  `json:"pharmacyName" firestore:"pharmacyName"`
	Quantity     int64   `json:"quantity" firestore:"quantity"`
	Price        float64 `json:"price" firestore:"price"`
}

// Order mirrors a document in the `orders` collection. CreatedAt is assigned
// by the store, never the client clock. TotalPrice is fixed at checkout time
// and not recomputed later.
type Order struct {
	ID              string    `json:"id" firestore:"-"`
	UserID          string    `json:"userId" firestore:"userId"`
	UserDisplayName string    `json:"userDisplayName" firestore:"userDisplayName"`
	CreatedAt       time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	Status          string    `json:"status" firestore:"status"`
	TotalPrice      float64   `json:"totalPrice" firestore:"totalPrice"`
	Items           []Item    `json:"items" firestore:"items"`
}
