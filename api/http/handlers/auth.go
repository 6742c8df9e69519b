package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mvailland/studio-booking/api/http/presenter"
	"github.com/mvailland/studio-booking/pkg/auth"
)

type AuthHandler struct {
	useCase auth.UseCase
}

func NewAuthHandler(useCase auth.UseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type jwtResponse struct {
	Token     string `json:"token"`
	Type      string `json:"type"`
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Admin     bool   `json:"admin"`
}

// Login handles credential verification and token issuance.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} jwtResponse
// @Failure 400 {object} presenter.MessageResponse
// @Failure 401 {object} presenter.MessageResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Message(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Message(c, http.StatusBadRequest, "email and password are required")
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if err == auth.ErrInvalidCredentials {
			return presenter.Message(c, http.StatusUnauthorized, "Bad credentials")
		}
		return presenter.Message(c, http.StatusInternalServerError, "failed to login")
	}

	return presenter.JSON(c, http.StatusOK, jwtResponse{
		Token:     result.Token,
		Type:      "Bearer",
		ID:        result.User.ID,
		Username:  result.User.Email,
		FirstName: result.User.FirstName,
		LastName:  result.User.LastName,
		Admin:     result.User.Admin,
	})
}

type registerRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// Register handles account creation.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 200 {object} presenter.MessageResponse
// @Failure 400 {object} presenter.MessageResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Message(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Message(c, http.StatusBadRequest, "email and password are required")
	}

	err := h.useCase.Register(c.Context(), auth.Registration{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		switch err {
		case auth.ErrEmailTaken:
			return presenter.Message(c, http.StatusBadRequest, "Error: Email is already taken!")
		case auth.ErrInvalidCredentials:
			return presenter.Message(c, http.StatusBadRequest, "email and password are required")
		default:
			return presenter.Message(c, http.StatusInternalServerError, "failed to register user")
		}
	}

	return presenter.Message(c, http.StatusOK, "User registered successfully!")
}
