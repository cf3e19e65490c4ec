// Package identity resolves the requester to a single Identity value:
// an authenticated user id from the JWT strategy, an anonymous capability
// token, both, or neither. The anonymous token is client-minted and trusted
// at face value; possession is the only access control for anonymous rows.
package identity

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rankmaker/rankmaker/internal/apperr"
)

// AnonymousHeader carries the anonymous token on read and list requests.
// Mutating endpoints may also supply it as the anonymousId body field,
// which takes precedence.
const AnonymousHeader = "X-Anonymous-Id"

type Identity struct {
	UserID      uuid.UUID // uuid.Nil when unauthenticated
	AnonymousID string    // "" when absent
}

func (id Identity) Authenticated() bool {
	return id.UserID != uuid.Nil
}

// FromContext extracts the request identity from JWT claims (set by the
// auth middleware) and the anonymous header.
func FromContext(c *fiber.Ctx) Identity {
	ident := Identity{AnonymousID: c.Get(AnonymousHeader)}

	if token, ok := c.Locals("user").(*jwt.Token); ok {
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, ok := claims["sub"].(string); ok {
				ident.UserID, _ = uuid.Parse(sub)
			}
		}
	}

	return ident
}

// WithBodyToken returns a copy of ident with the body-supplied anonymous
// token applied. The body field wins over the header when both are set.
func (id Identity) WithBodyToken(token string) Identity {
	if token != "" {
		id.AnonymousID = token
	}
	return id
}

// UserIDFromContext returns the authenticated user id, or an error when the
// request carries no valid JWT. Used by handlers behind JWTProtected.
func UserIDFromContext(c *fiber.Ctx) (uuid.UUID, error) {
	ident := FromContext(c)
	if !ident.Authenticated() {
		return uuid.Nil, apperr.New(apperr.Unauthorized, "authentication required")
	}
	return ident.UserID, nil
}
