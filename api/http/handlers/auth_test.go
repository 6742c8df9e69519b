package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvailland/studio-booking/pkg/auth"
)

type stubAuthUseCase struct {
	registerErr error
	loginResult auth.AuthResult
	loginErr    error
}

func (s *stubAuthUseCase) Register(context.Context, auth.Registration) error {
	return s.registerErr
}

func (s *stubAuthUseCase) Login(context.Context, string, string) (auth.AuthResult, error) {
	return s.loginResult, s.loginErr
}

func newAuthApp(uc auth.UseCase) *fiber.App {
	app := fiber.New()
	h := NewAuthHandler(uc)
	g := app.Group("/api/auth")
	g.Post("/login", h.Login)
	g.Post("/register", h.Register)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLoginResponseShape(t *testing.T) {
	app := newAuthApp(&stubAuthUseCase{loginResult: auth.AuthResult{
		User: auth.User{
			ID:        1,
			Email:     "test@test.com",
			FirstName: "John",
			LastName:  "Doe",
			Admin:     true,
		},
		Token: "test.jwt.token",
	}})

	resp := postJSON(t, app, "/api/auth/login", `{"email":"test@test.com","password":"password123"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "test.jwt.token", body["token"])
	assert.Equal(t, "Bearer", body["type"])
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "test@test.com", body["username"])
	assert.Equal(t, "John", body["firstName"])
	assert.Equal(t, "Doe", body["lastName"])
	assert.Equal(t, true, body["admin"])
}

func TestLoginBadCredentials(t *testing.T) {
	app := newAuthApp(&stubAuthUseCase{loginErr: auth.ErrInvalidCredentials})

	resp := postJSON(t, app, "/api/auth/login", `{"email":"test@test.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginMissingFields(t *testing.T) {
	app := newAuthApp(&stubAuthUseCase{})

	for _, body := range []string{
		`{"email":"","password":"password123"}`,
		`{"email":"test@test.com","password":""}`,
		`not json`,
	} {
		resp := postJSON(t, app, "/api/auth/login", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %q", body)
	}
}

func TestRegisterSuccessMessage(t *testing.T) {
	app := newAuthApp(&stubAuthUseCase{})

	resp := postJSON(t, app, "/api/auth/register",
		`{"email":"test@test.com","firstName":"John","lastName":"Doe","password":"password123"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "User registered successfully!", body["message"])
}

func TestRegisterEmailTaken(t *testing.T) {
	app := newAuthApp(&stubAuthUseCase{registerErr: auth.ErrEmailTaken})

	resp := postJSON(t, app, "/api/auth/register",
		`{"email":"test@test.com","firstName":"John","lastName":"Doe","password":"password123"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Error: Email is already taken!", body["message"])
}
