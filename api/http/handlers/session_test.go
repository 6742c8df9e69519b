package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvailland/studio-booking/pkg/session"
)

// stubSessionUseCase records calls and returns canned results.
type stubSessionUseCase struct {
	sessions map[int64]session.Session
	joinErr  error
	leaveErr error
	calls    int
}

func (s *stubSessionUseCase) Create(_ context.Context, sess session.Session) (session.Session, error) {
	sess.ID = 1
	return sess, nil
}

func (s *stubSessionUseCase) Update(_ context.Context, id int64, sess session.Session) (session.Session, error) {
	if _, ok := s.sessions[id]; !ok {
		return session.Session{}, session.ErrNotFound
	}
	sess.ID = id
	return sess, nil
}

func (s *stubSessionUseCase) Delete(_ context.Context, id int64) error {
	if _, ok := s.sessions[id]; !ok {
		return session.ErrNotFound
	}
	return nil
}

func (s *stubSessionUseCase) GetByID(_ context.Context, id int64) (*session.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (s *stubSessionUseCase) FindAll(_ context.Context) ([]session.Session, error) {
	return nil, nil
}

func (s *stubSessionUseCase) Participate(_ context.Context, _, _ int64) error {
	s.calls++
	return s.joinErr
}

func (s *stubSessionUseCase) NoLongerParticipate(_ context.Context, _, _ int64) error {
	s.calls++
	return s.leaveErr
}

func newSessionApp(uc session.UseCase) *fiber.App {
	app := fiber.New()
	h := NewSessionHandler(uc)
	g := app.Group("/api/session")
	g.Get("/", h.FindAll)
	g.Get("/:id", h.FindByID)
	g.Post("/", h.Create)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
	g.Post("/:id/participate/:userId", h.Participate)
	g.Delete("/:id/participate/:userId", h.NoLongerParticipate)
	return app
}

func TestFindByIDBadID(t *testing.T) {
	stub := &stubSessionUseCase{}
	app := newSessionApp(stub)

	for _, id := range []string{"invalid-id", "-1", "0", "1.5"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/session/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "id %q", id)
	}
}

func TestFindByIDNotFound(t *testing.T) {
	app := newSessionApp(&stubSessionUseCase{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/session/999", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFindByIDFound(t *testing.T) {
	app := newSessionApp(&stubSessionUseCase{
		sessions: map[int64]session.Session{1: {ID: 1, Name: "Yoga Session"}},
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/session/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestParticipateStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, http.StatusOK},
		{"not found", session.ErrNotFound, http.StatusNotFound},
		{"duplicate join", session.ErrAlreadyParticipating, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newSessionApp(&stubSessionUseCase{joinErr: tt.err})

			req := httptest.NewRequest(http.MethodPost, "/api/session/1/participate/2", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestNoLongerParticipateStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, http.StatusOK},
		{"not found", session.ErrNotFound, http.StatusNotFound},
		{"not a participant", session.ErrNotParticipating, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newSessionApp(&stubSessionUseCase{leaveErr: tt.err})

			req := httptest.NewRequest(http.MethodDelete, "/api/session/1/participate/2", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestParticipateBadIDsSkipEngine(t *testing.T) {
	stub := &stubSessionUseCase{}
	app := newSessionApp(stub)

	for _, path := range []string{
		"/api/session/abc/participate/1",
		"/api/session/1/participate/abc",
		"/api/session/0/participate/1",
		"/api/session/1/participate/-2",
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "path %q", path)
	}
	assert.Zero(t, stub.calls, "engine must not be called with invalid ids")
}

func TestDeleteMissingSession(t *testing.T) {
	app := newSessionApp(&stubSessionUseCase{})

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/session/5", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
