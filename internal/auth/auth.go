package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Identity is the authenticated caller as reported by the identity service.
// DisplayName already has the email fallback applied.
type Identity struct {
	UID         string `json:"uid"`
	DisplayName string `json:"displayName"`
}

const identityLocal = "identity"

// GetIdentityFromCtx extracts the caller identity set by one of the auth
// middlewares. Two shapes are supported: the firebase middleware stores an
// Identity under "identity", while the local jwtware middleware stores the
// parsed *jwt.Token under "user" with uid/name/email claims.
func GetIdentityFromCtx(c *fiber.Ctx) (Identity, error) {
	if v := c.Locals(identityLocal); v != nil {
		if ident, ok := v.(Identity); ok && ident.UID != "" {
			return ident, nil
		}
	}

	u := c.Locals("user")
	if u == nil {
		return Identity{}, fiber.ErrUnauthorized
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return Identity{}, fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fiber.ErrUnauthorized
	}

	uid, _ := claims["uid"].(string)
	if strings.TrimSpace(uid) == "" {
		return Identity{}, fiber.ErrUnauthorized
	}

	return Identity{UID: uid, DisplayName: displayNameFromClaims(claims)}, nil
}

// displayNameFromClaims resolves a human readable name: the name claim wins,
// the email is the fallback (same resolution the web client applied to the
// firebase user object).
func displayNameFromClaims(claims map[string]interface{}) string {
	if s, ok := claims["name"].(string); ok && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s)
	}
	if s, ok := claims["email"].(string); ok && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s)
	}
	return ""
}
