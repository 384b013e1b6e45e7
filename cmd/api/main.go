package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"

	"github.com/wichananm65/pharmacy-shop-backend/internal/cart"
	"github.com/wichananm65/pharmacy-shop-backend/internal/checkout"
	"github.com/wichananm65/pharmacy-shop-backend/internal/config"
	"github.com/wichananm65/pharmacy-shop-backend/internal/order"
	"github.com/wichananm65/pharmacy-shop-backend/internal/product"
)

// Local development server: everything in memory, no Firestore, no Postgres.
// Tokens come from /api/v1/dev-token instead of the hosted identity service.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	secret := cfg.JWTSecret
	if secret == "" {
		secret = "dev-secret"
	}

	products := product.NewInMemoryRepository(seedProducts())
	productService := product.NewService(products)

	cartStore := cart.NewStore(cart.NewInMemoryRepository())
	// the in-memory checkout repository doubles as the order listing source
	checkoutRepo := checkout.NewInMemoryRepository(products)
	coordinator := checkout.NewCoordinator(cartStore, checkoutRepo)

	app := fiber.New()
	app.Use(cors.New())

	product.NewHandler(productService).RegisterPublicRoutes(app)

	// mint a local token for any uid, development only
	app.Post("/api/v1/dev-token", func(c *fiber.Ctx) error {
		payload := struct {
			UID   string `json:"uid"`
			Name  string `json:"name"`
			Email string `json:"email"`
		}{}
		if err := c.BodyParser(&payload); err != nil || payload.UID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "uid is required"})
		}

		claims := jwt.MapClaims{
			"uid":   payload.UID,
			"name":  payload.Name,
			"email": payload.Email,
			"exp":   time.Now().Add(72 * time.Hour).Unix(),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
		}
		return c.JSON(fiber.Map{"token": signed})
	})

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(secret),
	}))

	cart.NewHandler(cartStore, productService).RegisterProtectedRoutes(app)
	checkout.NewHandler(coordinator).RegisterProtectedRoutes(app)
	order.NewHandler(order.NewService(checkoutRepo)).RegisterProtectedRoutes(app)

	addr := cfg.Addr
	if v := os.Getenv("PHARMACY_SHOP_DEV_ADDR"); v != "" {
		addr = v
	}
	log.Printf("starting dev server on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func seedProducts() []product.Product {
	expiry := time.Now().AddDate(1, 0, 0)
	return []product.Product{
		{ID: "p-paracetamol", Name: "Paracetamol 500mg", Category: "Pain relief", Price: 4.50, Quantity: 40, PharmacyID: "ph-central", PharmacyName: "Central Pharmacy", ExpiryDate: &expiry},
		{ID: "p-ibuprofen", Name: "Ibuprofen 200mg", Category: "Pain relief", Price: 5.90, Quantity: 25, PharmacyID: "ph-central", PharmacyName: "Central Pharmacy", ExpiryDate: &expiry},
		{ID: "p-vitamin-c", Name: "Vitamin C 1000mg", Category: "Vitamins", Price: 7.90, Quantity: 12, PharmacyID: "ph-riverside", PharmacyName: "Riverside Pharmacy"},
		{ID: "p-bandages", Name: "Elastic bandages", Category: "First aid", Price: 3.20, Quantity: 60, PharmacyID: "ph-riverside", PharmacyName: "Riverside Pharmacy"},
	}
}
