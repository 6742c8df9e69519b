package token

import (
	"context"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Principal is the authenticated identity attached to a request.
type Principal struct {
	ID    int64
	Email string
	Admin bool
}

// PrincipalLoader resolves a token subject to a Principal, backed by the
// credential store.
type PrincipalLoader interface {
	LoadPrincipal(ctx context.Context, email string) (Principal, error)
}

const principalKey = "principal"

// NewResolver returns a Fiber middleware that extracts a Bearer token,
// validates it and attaches the resolved Principal to the request.
// It never aborts the chain: a missing header, an invalid token or a
// failed lookup all let the request proceed unauthenticated, and the
// guard on protected routes makes the final accept/reject decision.
func NewResolver(svc *Service, loader PrincipalLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if p, err := resolvePrincipal(c, svc, loader); err == nil {
			c.Locals(principalKey, p)
		}
		return c.Next()
	}
}

// resolvePrincipal is the fallible half of the filter; the middleware
// collapses its error to "absent principal" at the boundary.
func resolvePrincipal(c *fiber.Ctx, svc *Service, loader PrincipalLoader) (Principal, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return Principal{}, errNoCredentials
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return Principal{}, errNoCredentials
	}
	tok := strings.TrimSpace(parts[1])
	if !svc.Validate(tok) {
		return Principal{}, errInvalidToken
	}
	subject, err := svc.Subject(tok)
	if err != nil {
		return Principal{}, err
	}
	return loader.LoadPrincipal(c.Context(), subject)
}

// RequireAuth rejects requests that carry no resolved Principal.
func RequireAuth(c *fiber.Ctx) error {
	if _, ok := PrincipalFrom(c); !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}
	return c.Next()
}

// PrincipalFrom returns the Principal attached by NewResolver, if any.
func PrincipalFrom(c *fiber.Ctx) (Principal, bool) {
	p, ok := c.Locals(principalKey).(Principal)
	return p, ok
}

type resolveError string

func (e resolveError) Error() string { return string(e) }

const (
	errNoCredentials resolveError = "no bearer credentials"
	errInvalidToken  resolveError = "invalid or expired token"
)
