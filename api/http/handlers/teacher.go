package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mvailland/studio-booking/api/http/presenter"
	"github.com/mvailland/studio-booking/pkg/teacher"
)

type TeacherHandler struct {
	uc teacher.UseCase
}

func NewTeacherHandler(uc teacher.UseCase) *TeacherHandler { return &TeacherHandler{uc: uc} }

// FindAll lists every teacher.
// @Summary List teachers
// @Tags    teacher
// @Produce json
// @Security BearerAuth
// @Success 200 {array} teacher.Teacher
// @Router  /teacher [get]
func (h *TeacherHandler) FindAll(c *fiber.Ctx) error {
	teachers, err := h.uc.FindAll(c.Context())
	if err != nil {
		return presenter.Message(c, http.StatusInternalServerError, "failed to list teachers")
	}
	if teachers == nil {
		teachers = []teacher.Teacher{}
	}
	return presenter.JSON(c, http.StatusOK, teachers)
}

// FindByID returns one teacher.
// @Summary Get teacher by id
// @Tags    teacher
// @Produce json
// @Param   id path int true "teacher id"
// @Security BearerAuth
// @Success 200 {object} teacher.Teacher
// @Failure 400 {object} presenter.MessageResponse
// @Failure 404 {object} presenter.MessageResponse
// @Router  /teacher/{id} [get]
func (h *TeacherHandler) FindByID(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.Message(c, http.StatusBadRequest, "invalid teacher id")
	}
	t, err := h.uc.FindByID(c.Context(), id)
	if err != nil {
		return presenter.Message(c, http.StatusInternalServerError, "failed to load teacher")
	}
	if t == nil {
		return presenter.Message(c, http.StatusNotFound, "teacher not found")
	}
	return presenter.JSON(c, http.StatusOK, t)
}
