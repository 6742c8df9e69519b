package session

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"
)

// UseCase covers session CRUD plus the participation state transitions.
type UseCase interface {
	Create(ctx context.Context, s Session) (Session, error)
	Update(ctx context.Context, id int64, s Session) (Session, error)
	Delete(ctx context.Context, id int64) error
	// GetByID returns (nil, nil) for a missing session; absence is not an
	// operation error, the caller decides its semantics.
	GetByID(ctx context.Context, id int64) (*Session, error)
	FindAll(ctx context.Context) ([]Session, error)
	Participate(ctx context.Context, sessionID, userID int64) error
	NoLongerParticipate(ctx context.Context, sessionID, userID int64) error
}

type service struct {
	repo  Repository
	users UserDirectory
}

func NewService(repo Repository, users UserDirectory) UseCase {
	return &service{repo: repo, users: users}
}

func (s *service) Create(ctx context.Context, sess Session) (Session, error) {
	sess.Name = strings.TrimSpace(sess.Name)
	now := time.Now().UTC()
	sess.CreatedAt = now
	sess.UpdatedAt = now
	return s.repo.Create(ctx, sess)
}

func (s *service) Update(ctx context.Context, id int64, sess Session) (Session, error) {
	sess.ID = id
	sess.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, sess)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Session, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *service) FindAll(ctx context.Context) ([]Session, error) {
	return s.repo.List(ctx)
}

// Participate registers userID for sessionID. Existence of both entities
// is checked before the duplicate guard.
func (s *service) Participate(ctx context.Context, sessionID, userID int64) error {
	sess, err := s.repo.GetByID(ctx, sessionID)
	sessionMissing := errors.Is(err, ErrNotFound)
	if err != nil && !sessionMissing {
		return err
	}
	exists, err := s.users.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if sessionMissing || !exists {
		return ErrNotFound
	}
	if slices.Contains(sess.Users, userID) {
		return ErrAlreadyParticipating
	}
	sess.Users = append(sess.Users, userID)
	sess.UpdatedAt = time.Now().UTC()
	_, err = s.repo.Update(ctx, sess)
	return err
}

// NoLongerParticipate removes userID from sessionID's participant set.
func (s *service) NoLongerParticipate(ctx context.Context, sessionID, userID int64) error {
	sess, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	idx := slices.Index(sess.Users, userID)
	if idx < 0 {
		return ErrNotParticipating
	}
	sess.Users = slices.Delete(sess.Users, idx, idx+1)
	sess.UpdatedAt = time.Now().UTC()
	_, err = s.repo.Update(ctx, sess)
	return err
}
