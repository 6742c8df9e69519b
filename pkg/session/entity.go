package session

import (
	"context"
	"errors"
	"time"
)

// Session is a bookable class led by a teacher. Users holds the ids of
// registered participants; a user appears at most once.
type Session struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	TeacherID   int64     `json:"teacher_id"`
	Description string    `json:"description"`
	Users       []int64   `json:"users"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

var (
	ErrNotFound             = errors.New("not found")
	ErrAlreadyParticipating = errors.New("user already participates in session")
	ErrNotParticipating     = errors.New("user does not participate in session")
)

// Repository is the persistence port for sessions and their participant
// rows.
type Repository interface {
	Create(ctx context.Context, s Session) (Session, error)
	GetByID(ctx context.Context, id int64) (Session, error)
	List(ctx context.Context) ([]Session, error)
	Update(ctx context.Context, s Session) (Session, error)
	Delete(ctx context.Context, id int64) error
}

// UserDirectory reports user existence; backed by the credential store.
type UserDirectory interface {
	UserExists(ctx context.Context, id int64) (bool, error)
}
