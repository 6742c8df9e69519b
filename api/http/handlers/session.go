package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mvailland/studio-booking/api/http/presenter"
	"github.com/mvailland/studio-booking/pkg/session"
)

type SessionHandler struct {
	uc session.UseCase
}

func NewSessionHandler(uc session.UseCase) *SessionHandler { return &SessionHandler{uc: uc} }

type sessionRequest struct {
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	TeacherID   int64     `json:"teacher_id"`
	Description string    `json:"description"`
	Users       []int64   `json:"users"`
}

// FindAll lists every session.
// @Summary List sessions
// @Tags    session
// @Produce json
// @Security BearerAuth
// @Success 200 {array} session.Session
// @Router  /session [get]
func (h *SessionHandler) FindAll(c *fiber.Ctx) error {
	sessions, err := h.uc.FindAll(c.Context())
	if err != nil {
		return presenter.Message(c, http.StatusInternalServerError, "failed to list sessions")
	}
	if sessions == nil {
		sessions = []session.Session{}
	}
	return presenter.JSON(c, http.StatusOK, sessions)
}

// FindByID returns one session.
// @Summary Get session by id
// @Tags    session
// @Produce json
// @Param   id path int true "session id"
// @Security BearerAuth
// @Success 200 {object} session.Session
// @Failure 400 {object} presenter.MessageResponse
// @Failure 404 {object} presenter.MessageResponse
// @Router  /session/{id} [get]
func (h *SessionHandler) FindByID(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.Message(c, http.StatusBadRequest, "invalid session id")
	}
	sess, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return presenter.Message(c, http.StatusInternalServerError, "failed to load session")
	}
	if sess == nil {
		return presenter.Message(c, http.StatusNotFound, "session not found")
	}
	return presenter.JSON(c, http.StatusOK, sess)
}

// Create stores a new session.
// @Summary Create session
// @Tags    session
// @Accept  json
// @Produce json
// @Param   input body sessionRequest true "session payload"
// @Security BearerAuth
// @Success 200 {object} session.Session
// @Failure 400 {object} presenter.MessageResponse
// @Router  /session [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	var req sessionRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Message(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Name == "" || req.TeacherID <= 0 {
		return presenter.Message(c, http.StatusBadRequest, "name and teacher_id are required")
	}
	sess, err := h.uc.Create(c.Context(), session.Session{
		Name:        req.Name,
		Date:        req.Date,
		TeacherID:   req.TeacherID,
		Description: req.Description,
		Users:       req.Users,
	})
	if err != nil {
		return presenter.Message(c, http.StatusInternalServerError, "failed to create session")
	}
	return presenter.JSON(c, http.StatusOK, sess)
}

// Update replaces a session's fields.
// @Summary Update session
// @Tags    session
// @Accept  json
// @Produce json
// @Param   id path int true "session id"
// @Param   input body sessionRequest true "session payload"
// @Security BearerAuth
// @Success 200 {object} session.Session
// @Failure 400 {object} presenter.MessageResponse
// @Failure 404 {object} presenter.MessageResponse
// @Router  /session/{id} [put]
func (h *SessionHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.Message(c, http.StatusBadRequest, "invalid session id")
	}
	var req sessionRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Message(c, http.StatusBadRequest, "invalid JSON payload")
	}
	sess, err := h.uc.Update(c.Context(), id, session.Session{
		Name:        req.Name,
		Date:        req.Date,
		TeacherID:   req.TeacherID,
		Description: req.Description,
		Users:       req.Users,
	})
	if err != nil {
		if err == session.ErrNotFound {
			return presenter.Message(c, http.StatusNotFound, "session not found")
		}
		return presenter.Message(c, http.StatusInternalServerError, "failed to update session")
	}
	return presenter.JSON(c, http.StatusOK, sess)
}

// Delete removes a session.
// @Summary Delete session
// @Tags    session
// @Produce json
// @Param   id path int true "session id"
// @Security BearerAuth
// @Success 200 {object} nil
// @Failure 400 {object} presenter.MessageResponse
// @Failure 404 {object} presenter.MessageResponse
// @Router  /session/{id} [delete]
func (h *SessionHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.Message(c, http.StatusBadRequest, "invalid session id")
	}
	sess, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return presenter.Message(c, http.StatusInternalServerError, "failed to load session")
	}
	if sess == nil {
		return presenter.Message(c, http.StatusNotFound, "session not found")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return presenter.Message(c, http.StatusInternalServerError, "failed to delete session")
	}
	return c.SendStatus(http.StatusOK)
}

// Participate registers the given user for the session.
// @Summary Join session
// @Tags    session
// @Produce json
// @Param   id path int true "session id"
// @Param   userId path int true "user id"
// @Security BearerAuth
// @Success 200 {object} nil
// @Failure 400 {object} presenter.MessageResponse
// @Failure 404 {object} presenter.MessageResponse
// @Router  /session/{id}/participate/{userId} [post]
func (h *SessionHandler) Participate(c *fiber.Ctx) error {
	sessionID, userID, err := participationIDs(c)
	if err != nil {
		return presenter.Message(c, http.StatusBadRequest, "invalid id")
	}
	return participationResult(c, h.uc.Participate(c.Context(), sessionID, userID))
}

// NoLongerParticipate removes the given user from the session.
// @Summary Leave session
// @Tags    session
// @Produce json
// @Param   id path int true "session id"
// @Param   userId path int true "user id"
// @Security BearerAuth
// @Success 200 {object} nil
// @Failure 400 {object} presenter.MessageResponse
// @Failure 404 {object} presenter.MessageResponse
// @Router  /session/{id}/participate/{userId} [delete]
func (h *SessionHandler) NoLongerParticipate(c *fiber.Ctx) error {
	sessionID, userID, err := participationIDs(c)
	if err != nil {
		return presenter.Message(c, http.StatusBadRequest, "invalid id")
	}
	return participationResult(c, h.uc.NoLongerParticipate(c.Context(), sessionID, userID))
}

func participationIDs(c *fiber.Ctx) (sessionID, userID int64, err error) {
	if sessionID, err = pathID(c, "id"); err != nil {
		return 0, 0, err
	}
	if userID, err = pathID(c, "userId"); err != nil {
		return 0, 0, err
	}
	return sessionID, userID, nil
}

func participationResult(c *fiber.Ctx, err error) error {
	switch err {
	case nil:
		return c.SendStatus(http.StatusOK)
	case session.ErrNotFound:
		return presenter.Message(c, http.StatusNotFound, "session or user not found")
	case session.ErrAlreadyParticipating, session.ErrNotParticipating:
		return presenter.Message(c, http.StatusBadRequest, err.Error())
	default:
		return presenter.Message(c, http.StatusInternalServerError, "failed to update participation")
	}
}
