package product

import "time"

// Product mirrors a document in the `products` collection. The document id is
// the source of truth for ID and is never stored as a field. PharmacyID and
// PharmacyName are denormalized onto the product when it is created, so cart
// lines can snapshot them without an extra read.
type Product struct {
	ID           string     `json:"id" firestore:"-"`
	Name         string     `json:"productName" firestore:"productName"`
	Category     string     `json:"category" firestore:"category"`
	Price        float64    `json:"price" firestore:"price"`
	Quantity     int64      `json:"quantity" firestore:"quantity"`
	PharmacyID   string     `json:"pharmacyId" firestore:"pharmacyId"`
	PharmacyName string     `json:"pharmacyName" firestore:"pharmacyName"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty" firestore:"expiryDate,omitempty"`
}

// Expired reports whether the product is past its expiry date. A missing
// expiry date means "no expiry recorded" and never counts as expired.
func (p Product) Expired(now time.Time) bool {
	if p.ExpiryDate == nil {
		return false
	}
	return p.ExpiryDate.Before(now)
}
