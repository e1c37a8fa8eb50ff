package middleware

// identity.go derives the calling user's identity from the claim set that
// JWTAuth stored in the Echo context. The token signature has already been
// verified by the time this runs; if the required subject claim is missing
// anyway, the auth layer in front of us is misconfigured and the error is
// the server's fault, not the client's.

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Identity is the authenticated caller as seen by handlers: a stable user
// id (the token subject) and a human-readable display name.
type Identity struct {
	UserID      string
	DisplayName string
}

// ErrNoIdentity is returned when the context carries no usable claim set.
// Handlers should map this to a 500-class response since verified
// requests are contracted to carry a subject.
var ErrNoIdentity = errors.New("missing user identity in context")

// FromContext extracts the Identity from the claims stored by JWTAuth.
// The display name falls back to the name claim, then username, then the
// subject itself when the provider supplies nothing better.
func FromContext(c echo.Context) (Identity, error) {
	cl, ok := c.Get("claims").(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrNoIdentity
	}
	sub, _ := cl["sub"].(string)
	if sub == "" {
		return Identity{}, ErrNoIdentity
	}
	name, _ := cl["name"].(string)
	if name == "" {
		name, _ = cl["username"].(string)
	}
	if name == "" {
		name = sub
	}
	return Identity{UserID: sub, DisplayName: name}, nil
}
