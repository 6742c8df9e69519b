package token

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoader struct {
	principals map[string]Principal
	err        error
}

func (l *fakeLoader) LoadPrincipal(_ context.Context, email string) (Principal, error) {
	if l.err != nil {
		return Principal{}, l.err
	}
	p, ok := l.principals[email]
	if !ok {
		return Principal{}, errors.New("unknown user")
	}
	return p, nil
}

func newTestApp(svc *Service, loader PrincipalLoader) *fiber.App {
	app := fiber.New()
	app.Use(NewResolver(svc, loader))
	app.Get("/open", func(c *fiber.Ctx) error {
		if p, ok := PrincipalFrom(c); ok {
			return c.JSON(fiber.Map{"email": p.Email, "admin": p.Admin})
		}
		return c.JSON(fiber.Map{"email": ""})
	})
	app.Get("/protected", RequireAuth, func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	return app
}

func TestResolverAttachesPrincipal(t *testing.T) {
	svc := newTestService(time.Hour)
	loader := &fakeLoader{principals: map[string]Principal{
		"a@b.com": {ID: 7, Email: "a@b.com", Admin: true},
	}}
	app := newTestApp(svc, loader)

	tok, err := svc.Issue("a@b.com", true)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestResolverPassesThroughWithoutHeader(t *testing.T) {
	app := newTestApp(newTestService(time.Hour), &fakeLoader{})

	// open route still reachable
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/open", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// protected route rejected by the guard, not the resolver
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestResolverSwallowsAuthFailures(t *testing.T) {
	svc := newTestService(time.Hour)
	valid, err := svc.Issue("a@b.com", false)
	require.NoError(t, err)

	expiredSvc := newTestService(-time.Minute)
	expired, err := expiredSvc.Issue("a@b.com", false)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		loader PrincipalLoader
	}{
		{"wrong scheme", "Basic " + valid, &fakeLoader{}},
		{"garbage token", "Bearer not.a.token", &fakeLoader{}},
		{"expired token", "Bearer " + expired, &fakeLoader{}},
		{"unknown subject", "Bearer " + valid, &fakeLoader{}},
		{"store failure", "Bearer " + valid, &fakeLoader{err: errors.New("db down")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(svc, tt.loader)

			// the request always proceeds; only the guard rejects
			req := httptest.NewRequest(http.MethodGet, "/open", nil)
			req.Header.Set("Authorization", tt.header)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			req = httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", tt.header)
			resp, err = app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}
