package users

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, user User) (User, error) {
	const query = `
INSERT INTO users (id, auth_subject, email, created_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (auth_subject) DO NOTHING`
	if _, err := r.DB.ExecContext(ctx, query, user.ID, user.AuthSubject, user.Email); err != nil {
		return User{}, err
	}
	return r.GetBySubject(ctx, user.AuthSubject)
}

func (r *PGRepo) GetBySubject(ctx context.Context, authSubject string) (User, error) {
	const query = `
SELECT id, auth_subject, email, created_at
FROM users
WHERE auth_subject = $1
LIMIT 1`
	var user User
	err := r.DB.QueryRowContext(ctx, query, authSubject).Scan(
		&user.ID,
		&user.AuthSubject,
		&user.Email,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}
