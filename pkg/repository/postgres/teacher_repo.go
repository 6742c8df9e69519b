package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mvailland/studio-booking/pkg/teacher"
)

// TeacherRepository is a read-only store; teacher records are managed
// out of band.
type TeacherRepository struct {
	pool *pgxpool.Pool
}

func NewTeacherRepository(pool *pgxpool.Pool) (*TeacherRepository, error) {
	r := &TeacherRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *TeacherRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS teachers (
			id BIGSERIAL PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`)
	return err
}

func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (teacher.Teacher, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, created_at, updated_at
		FROM teachers WHERE id = $1
	`, id)
	var t teacher.Teacher
	err := row.Scan(&t.ID, &t.FirstName, &t.LastName, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return teacher.Teacher{}, teacher.ErrNotFound
		}
		return teacher.Teacher{}, err
	}
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}

func (r *TeacherRepository) List(ctx context.Context) ([]teacher.Teacher, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, first_name, last_name, created_at, updated_at
		FROM teachers ORDER BY last_name, first_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []teacher.Teacher
	for rows.Next() {
		var t teacher.Teacher
		if err := rows.Scan(&t.ID, &t.FirstName, &t.LastName, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		t.CreatedAt = t.CreatedAt.UTC()
		t.UpdatedAt = t.UpdatedAt.UTC()
		res = append(res, t)
	}
	return res, rows.Err()
}
