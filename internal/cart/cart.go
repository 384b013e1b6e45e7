package cart

import (
	"github.com/google/uuid"

	"github.com/wichananm65/pharmacy-shop-backend/internal/product"
)

// Line is one product's entry in a cart. LineID identifies the line itself
// and never changes for the line's lifetime; all mutations key on it, not on
// the product id. Product fields are a snapshot taken at add time and are not
// live-updated. StockSnapshot is only a soft clamp for cart math — checkout
// revalidates stock against the store.
//
// JSON tags keep the persisted slot layout compatible with the web client's
// serialized cart.
type Line struct {
	LineID        string  `json:"cartItemId"`
	ProductID     string  `json:"productId"`
	ProductName   string  `json:"productName"`
	PharmacyID    string  `json:"pharmacyId"`
	PharmacyName  string  `json:"pharmacyName"`
	UnitPrice     float64 `json:"price"`
	StockSnapshot int64   `json:"stockQuantity"`
	Quantity      int64   `json:"cartQuantity"`
}

// add merges a product into the lines, clamping against the stock snapshot.
// At most one line exists per product: adding a product already present tops
// up that line in place, preserving its LineID and insertion position.
// A merge that lands at or below zero removes the line; a fresh add that
// clamps to zero or less inserts nothing.
func add(lines []Line, p product.Product, requested int64) []Line {
	for i, l := range lines {
		if l.ProductID != p.ID {
			continue
		}
		q := l.Quantity + requested
		if q > l.StockSnapshot {
			q = l.StockSnapshot
		}
		if q <= 0 {
			return removeAt(lines, i)
		}
		lines[i].Quantity = q
		return lines
	}

	q := requested
	if q > p.Quantity {
		q = p.Quantity
	}
	if q <= 0 {
		return lines
	}
	return append(lines, Line{
		LineID:        uuid.NewString(),
		ProductID:     p.ID,
		ProductName:   p.Name,
		PharmacyID:    p.PharmacyID,
		PharmacyName:  p.PharmacyName,
		UnitPrice:     p.Price,
		StockSnapshot: p.Quantity,
		Quantity:      q,
	})
}

// increase bumps a line by one, silently capped at the stock snapshot.
func increase(lines []Line, lineID string) []Line {
	for i, l := range lines {
		if l.LineID != lineID {
			continue
		}
		if l.Quantity+1 <= l.StockSnapshot {
			lines[i].Quantity = l.Quantity + 1
		}
		return lines
	}
	return lines
}

// decrease drops a line by one; decrementing the last unit removes the line
// entirely rather than leaving it at zero.
func decrease(lines []Line, lineID string) []Line {
	for i, l := range lines {
		if l.LineID != lineID {
			continue
		}
		if l.Quantity-1 <= 0 {
			return removeAt(lines, i)
		}
		lines[i].Quantity = l.Quantity - 1
		return lines
	}
	return lines
}

// remove deletes a line unconditionally, whatever its quantity.
func remove(lines []Line, lineID string) []Line {
	for i, l := range lines {
		if l.LineID == lineID {
			return removeAt(lines, i)
		}
	}
	return lines
}

func removeAt(lines []Line, i int) []Line {
	// preserve insertion order
	return append(lines[:i], lines[i+1:]...)
}

// Total prices the lines from their snapshot unit prices.
func Total(lines []Line) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.UnitPrice * float64(l.Quantity)
	}
	return sum
}
