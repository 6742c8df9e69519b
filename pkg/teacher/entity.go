package teacher

import (
	"context"
	"errors"
	"time"
)

// Teacher is read-only from this service's perspective.
type Teacher struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var ErrNotFound = errors.New("not found")

type Repository interface {
	GetByID(ctx context.Context, id int64) (Teacher, error)
	List(ctx context.Context) ([]Teacher, error)
}
