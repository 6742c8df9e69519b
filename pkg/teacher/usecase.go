package teacher

import (
	"context"
	"errors"
)

type UseCase interface {
	// FindByID returns (nil, nil) when the teacher does not exist.
	FindByID(ctx context.Context, id int64) (*Teacher, error)
	FindAll(ctx context.Context) ([]Teacher, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) FindByID(ctx context.Context, id int64) (*Teacher, error) {
	t, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *service) FindAll(ctx context.Context) ([]Teacher, error) {
	return s.repo.List(ctx)
}
