package auth

import (
	"context"
	"strings"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gofiber/fiber/v2"
	"google.golang.org/api/option"
)

// TokenVerifier turns a bearer token into an Identity. The production
// implementation talks to Firebase; tests plug in a fake.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (Identity, error)
}

// FirebaseVerifier verifies Firebase ID tokens issued by the hosted identity
// service.
type FirebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier initialises the Firebase app and its auth client.
// credentialsFile may be empty, in which case application default
// credentials are used.
func NewFirebaseVerifier(ctx context.Context, projectID, credentialsFile string) (*FirebaseVerifier, error) {
	cfg := &firebase.Config{ProjectID: projectID}

	var (
		app *firebase.App
		err error
	)
	if credentialsFile != "" {
		app, err = firebase.NewApp(ctx, cfg, option.WithCredentialsFile(credentialsFile))
	} else {
		app, err = firebase.NewApp(ctx, cfg)
	}
	if err != nil {
		return nil, err
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (Identity, error) {
	tok, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return Identity{}, err
	}
	return Identity{
		UID:         tok.UID,
		DisplayName: displayNameFromClaims(tok.Claims),
	}, nil
}

// Middleware authenticates requests with a verifier and stores the Identity
// in c.Locals for GetIdentityFromCtx.
func Middleware(v TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		idToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if idToken == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}

		ident, err := v.Verify(c.Context(), idToken)
		if err != nil || ident.UID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid token"})
		}

		c.Locals(identityLocal, ident)
		return c.Next()
	}
}
