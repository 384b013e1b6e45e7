package config

import "os"

type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string
	// DatabaseURL points at the Postgres instance holding cart slots.
	DatabaseURL string
	// FirestoreProjectID selects the hosted store project.
	FirestoreProjectID string
	// CredentialsFile optionally points at a service-account key; empty
	// means application default credentials.
	CredentialsFile string
	// AuthMode is "firebase" (verify hosted ID tokens) or "local"
	// (HS256 JWT signed with JWTSecret, for development).
	AuthMode string
	// JWTSecret verifies local-mode tokens.
	JWTSecret string
}

func Load() Config {
	cfg := Config{
		Addr:               os.Getenv("PHARMACY_SHOP_ADDR"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		FirestoreProjectID: os.Getenv("FIRESTORE_PROJECT_ID"),
		CredentialsFile:    os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		AuthMode:           os.Getenv("AUTH_MODE"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.AuthMode == "" {
		cfg.AuthMode = "firebase"
	}
	return cfg
}
