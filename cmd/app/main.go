package main

import (
	"context"
	"database/sql"
	"log"

	"cloud.google.com/go/firestore"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	"github.com/wichananm65/pharmacy-shop-backend/internal/auth"
	"github.com/wichananm65/pharmacy-shop-backend/internal/cart"
	"github.com/wichananm65/pharmacy-shop-backend/internal/checkout"
	"github.com/wichananm65/pharmacy-shop-backend/internal/config"
	"github.com/wichananm65/pharmacy-shop-backend/internal/order"
	"github.com/wichananm65/pharmacy-shop-backend/internal/product"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	fsClient := mustOpenFirestore(ctx, cfg)
	defer fsClient.Close()

	// Cart slots live in Postgres. If the database is unreachable carts
	// still work in memory for the process lifetime, just without
	// reload-durability.
	cartRepo := openCartRepository(ctx, cfg)
	cartStore := cart.NewStore(cartRepo)

	productService := product.NewService(product.NewFirestoreRepository(fsClient))
	productHandler := product.NewHandler(productService)

	orderService := order.NewService(order.NewFirestoreRepository(fsClient))
	orderHandler := order.NewHandler(orderService)

	coordinator := checkout.NewCoordinator(cartStore, checkout.NewFirestoreRepository(fsClient))
	checkoutHandler := checkout.NewHandler(coordinator)
	cartHandler := cart.NewHandler(cartStore, productService)

	app := fiber.New()
	app.Use(cors.New())

	// product reads stay public, everything below the auth middleware is
	// per-user
	productHandler.RegisterPublicRoutes(app)

	switch cfg.AuthMode {
	case "local":
		if cfg.JWTSecret == "" {
			log.Fatal("AUTH_MODE=local requires JWT_SECRET")
		}
		app.Use(jwtware.New(jwtware.Config{
			SigningKey: []byte(cfg.JWTSecret),
		}))
	default:
		verifier, err := auth.NewFirebaseVerifier(ctx, cfg.FirestoreProjectID, cfg.CredentialsFile)
		if err != nil {
			log.Fatalf("could not initialise firebase auth: %v", err)
		}
		app.Use(auth.Middleware(verifier))
	}

	cartHandler.RegisterProtectedRoutes(app)
	checkoutHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func mustOpenFirestore(ctx context.Context, cfg config.Config) *firestore.Client {
	if cfg.FirestoreProjectID == "" {
		log.Fatal("FIRESTORE_PROJECT_ID is required")
	}

	var (
		client *firestore.Client
		err    error
	)
	if cfg.CredentialsFile != "" {
		client, err = firestore.NewClient(ctx, cfg.FirestoreProjectID, option.WithCredentialsFile(cfg.CredentialsFile))
	} else {
		client, err = firestore.NewClient(ctx, cfg.FirestoreProjectID)
	}
	if err != nil {
		log.Fatalf("could not open firestore (project=%s): %v", cfg.FirestoreProjectID, err)
	}
	return client
}

func openCartRepository(ctx context.Context, cfg config.Config) cart.SlotRepository {
	if cfg.DatabaseURL == "" {
		log.Print("warning: DATABASE_URL not set, carts will not survive restarts")
		return cart.NewInMemoryRepository()
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err == nil {
		err = db.PingContext(ctx)
	}
	if err != nil {
		log.Printf("warning: cart database unavailable (%v), carts will not survive restarts", err)
		return cart.NewInMemoryRepository()
	}

	repo := cart.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Printf("warning: could not ensure carts table (%v), carts will not survive restarts", err)
		return cart.NewInMemoryRepository()
	}
	return repo
}
