package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mvailland/studio-booking/pkg/session"
)

// SessionRepository stores sessions and their participant rows.
//
// Update rewrites the participant rows inside one transaction, so each
// save is internally consistent, but two concurrent saves of the same
// session are last-write-wins (see DESIGN.md).
type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) (*SessionRepository, error) {
	r := &SessionRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *SessionRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS sessions (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	date TIMESTAMPTZ NOT NULL,
	teacher_id BIGINT REFERENCES teachers(id),
	description TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS session_participants (
	session_id BIGINT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
	user_id BIGINT NOT NULL,
	PRIMARY KEY (session_id, user_id)
);
`)
	return err
}

func (r *SessionRepository) Create(ctx context.Context, s session.Session) (session.Session, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return session.Session{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
INSERT INTO sessions (name, date, teacher_id, description, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`, s.Name, s.Date, s.TeacherID, s.Description, s.CreatedAt, s.UpdatedAt)
	if err := row.Scan(&s.ID); err != nil {
		return session.Session{}, err
	}
	if err := insertParticipants(ctx, tx, s.ID, s.Users); err != nil {
		return session.Session{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return session.Session{}, err
	}
	return s, nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id int64) (session.Session, error) {
	row := r.pool.QueryRow(ctx, `
SELECT s.id, s.name, s.date, COALESCE(s.teacher_id, 0), s.description, s.created_at, s.updated_at,
	COALESCE(
		json_agg(sp.user_id ORDER BY sp.user_id) FILTER (WHERE sp.user_id IS NOT NULL),
		'[]'
	)
FROM sessions s
LEFT JOIN session_participants sp ON sp.session_id = s.id
WHERE s.id = $1
GROUP BY s.id
`, id)
	return scanSession(row)
}

func (r *SessionRepository) List(ctx context.Context) ([]session.Session, error) {
	rows, err := r.pool.Query(ctx, `
SELECT s.id, s.name, s.date, COALESCE(s.teacher_id, 0), s.description, s.created_at, s.updated_at,
	COALESCE(
		json_agg(sp.user_id ORDER BY sp.user_id) FILTER (WHERE sp.user_id IS NOT NULL),
		'[]'
	)
FROM sessions s
LEFT JOIN session_participants sp ON sp.session_id = s.id
GROUP BY s.id
ORDER BY s.date
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []session.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

func (r *SessionRepository) Update(ctx context.Context, s session.Session) (session.Session, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return session.Session{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd, err := tx.Exec(ctx, `
UPDATE sessions SET name = $2, date = $3, teacher_id = $4, description = $5, updated_at = $6
WHERE id = $1
`, s.ID, s.Name, s.Date, s.TeacherID, s.Description, s.UpdatedAt)
	if err != nil {
		return session.Session{}, err
	}
	if cmd.RowsAffected() == 0 {
		return session.Session{}, session.ErrNotFound
	}
	if _, err := tx.Exec(ctx, `DELETE FROM session_participants WHERE session_id = $1`, s.ID); err != nil {
		return session.Session{}, err
	}
	if err := insertParticipants(ctx, tx, s.ID, s.Users); err != nil {
		return session.Session{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return session.Session{}, err
	}
	return s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return session.ErrNotFound
	}
	return nil
}

func insertParticipants(ctx context.Context, tx pgx.Tx, sessionID int64, users []int64) error {
	for _, uid := range users {
		_, err := tx.Exec(ctx, `
INSERT INTO session_participants (session_id, user_id)
VALUES ($1, $2)
ON CONFLICT (session_id, user_id) DO NOTHING
`, sessionID, uid)
		if err != nil {
			return err
		}
	}
	return nil
}

func scanSession(row pgx.Row) (session.Session, error) {
	var s session.Session
	var date, created, updated time.Time
	var usersJSON []byte
	err := row.Scan(&s.ID, &s.Name, &date, &s.TeacherID, &s.Description, &created, &updated, &usersJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return session.Session{}, session.ErrNotFound
		}
		return session.Session{}, err
	}
	s.Date = date.UTC()
	s.CreatedAt = created.UTC()
	s.UpdatedAt = updated.UTC()
	if err := json.Unmarshal(usersJSON, &s.Users); err != nil {
		return session.Session{}, err
	}
	return s, nil
}
