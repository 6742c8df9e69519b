// Package user exposes account lookup and removal on top of the
// credential store.
package user

import (
	"context"
	"errors"

	"github.com/mvailland/studio-booking/pkg/auth"
)

type UseCase interface {
	// FindByID returns (nil, nil) when the user does not exist.
	FindByID(ctx context.Context, id int64) (*auth.User, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo auth.UserRepository
}

func NewService(repo auth.UserRepository) UseCase { return &service{repo: repo} }

func (s *service) FindByID(ctx context.Context, id int64) (*auth.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, auth.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
