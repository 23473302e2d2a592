package users

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

// Repo defines persistence operations for users.
type Repo interface {
	// Upsert inserts the user if no record with the same auth subject exists,
	// and returns the stored record either way.
	Upsert(ctx context.Context, user User) (User, error)
	GetBySubject(ctx context.Context, authSubject string) (User, error)
}
