package cart

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/wichananm65/pharmacy-shop-backend/internal/product"
)

func makeApp(t *testing.T, seed []product.Product) (*fiber.App, *Store) {
	t.Helper()
	app := fiber.New()
	// simulate the jwt middleware for callers that send X-User-ID
	app.Use(func(c *fiber.Ctx) error {
		if uid := c.Get("X-User-ID"); uid != "" {
			claims := jwt.MapClaims{"uid": uid, "email": uid + "@example.com"}
			c.Locals("user", &jwt.Token{Claims: claims})
		}
		return c.Next()
	})

	store := NewStore(NewInMemoryRepository())
	products := product.NewService(product.NewInMemoryRepository(seed))
	NewHandler(store, products).RegisterProtectedRoutes(app)
	return app, store
}

func TestCartRoutes_Basic(t *testing.T) {
	app, _ := makeApp(t, []product.Product{productA, productB})

	// unauthorized access is blocked
	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/cart", nil))
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthenticated GET, got %d", res.StatusCode)
	}

	// add product A with quantity 2
	req := httptest.NewRequest("POST", "/api/v1/cart", strings.NewReader(`{"productId":"A","quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "u1")
	res2, _ := app.Test(req)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 adding to cart, got %d", res2.StatusCode)
	}

	var body cartResponse
	b, _ := io.ReadAll(res2.Body)
	if err := json.Unmarshal(b, &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(body.Items) != 1 || body.Items[0].Quantity != 2 {
		t.Fatalf("unexpected cart %+v", body)
	}
	if body.TotalPrice != 20.00 {
		t.Fatalf("expected total 20.00, got %v", body.TotalPrice)
	}
	lineID := body.Items[0].LineID

	// increase caps later at snapshot, immediate bump works
	req3 := httptest.NewRequest("POST", "/api/v1/cart/"+lineID+"/increase", nil)
	req3.Header.Set("X-User-ID", "u1")
	res3, _ := app.Test(req3)
	b3, _ := io.ReadAll(res3.Body)
	if err := json.Unmarshal(b3, &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3 after increase, got %d", body.Items[0].Quantity)
	}

	// remove the line
	req4 := httptest.NewRequest("DELETE", "/api/v1/cart/"+lineID, nil)
	req4.Header.Set("X-User-ID", "u1")
	res4, _ := app.Test(req4)
	b4, _ := io.ReadAll(res4.Body)
	if err := json.Unmarshal(b4, &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(body.Items) != 0 {
		t.Fatalf("expected empty cart after remove, got %+v", body.Items)
	}
}

func TestCartRoutes_AddUnknownProduct(t *testing.T) {
	app, _ := makeApp(t, []product.Product{productA})

	req := httptest.NewRequest("POST", "/api/v1/cart", strings.NewReader(`{"productId":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "u1")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", res.StatusCode)
	}
}

func TestCartRoutes_Clear(t *testing.T) {
	app, store := makeApp(t, []product.Product{productA})

	req := httptest.NewRequest("POST", "/api/v1/cart", strings.NewReader(`{"productId":"A","quantity":1}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "u1")
	if _, err := app.Test(req); err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	req2 := httptest.NewRequest("DELETE", "/api/v1/cart", nil)
	req2.Header.Set("X-User-ID", "u1")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 clearing cart, got %d", res2.StatusCode)
	}
	if items := store.Items(context.Background(), "u1"); len(items) != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", items)
	}
}
