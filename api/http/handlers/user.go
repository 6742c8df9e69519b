package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mvailland/studio-booking/api/http/presenter"
	"github.com/mvailland/studio-booking/pkg/security/token"
	"github.com/mvailland/studio-booking/pkg/user"
)

type UserHandler struct {
	uc user.UseCase
}

func NewUserHandler(uc user.UseCase) *UserHandler { return &UserHandler{uc: uc} }

// FindByID returns one user.
// @Summary Get user by id
// @Tags    user
// @Produce json
// @Param   id path int true "user id"
// @Security BearerAuth
// @Success 200 {object} auth.User
// @Failure 400 {object} presenter.MessageResponse
// @Failure 404 {object} presenter.MessageResponse
// @Router  /user/{id} [get]
func (h *UserHandler) FindByID(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.Message(c, http.StatusBadRequest, "invalid user id")
	}
	u, err := h.uc.FindByID(c.Context(), id)
	if err != nil {
		return presenter.Message(c, http.StatusInternalServerError, "failed to load user")
	}
	if u == nil {
		return presenter.Message(c, http.StatusNotFound, "user not found")
	}
	return presenter.JSON(c, http.StatusOK, u)
}

// Delete removes the authenticated user's own account. Deleting someone
// else's account is rejected with 401.
// @Summary Delete own account
// @Tags    user
// @Produce json
// @Param   id path int true "user id"
// @Security BearerAuth
// @Success 200 {object} nil
// @Failure 400 {object} presenter.MessageResponse
// @Failure 401 {object} presenter.MessageResponse
// @Failure 404 {object} presenter.MessageResponse
// @Router  /user/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.Message(c, http.StatusBadRequest, "invalid user id")
	}
	u, err := h.uc.FindByID(c.Context(), id)
	if err != nil {
		return presenter.Message(c, http.StatusInternalServerError, "failed to load user")
	}
	if u == nil {
		return presenter.Message(c, http.StatusNotFound, "user not found")
	}
	principal, ok := token.PrincipalFrom(c)
	if !ok || principal.Email != u.Email {
		return presenter.Message(c, http.StatusUnauthorized, "Unauthorized")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return presenter.Message(c, http.StatusInternalServerError, "failed to delete user")
	}
	return c.SendStatus(http.StatusOK)
}
