package users

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo used in dev mode and tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{users: make(map[string]User)}
}

func (r *MemoryRepo) Upsert(ctx context.Context, user User) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.users[user.AuthSubject]; ok {
		return existing, nil
	}
	user.CreatedAt = time.Now().UTC()
	r.users[user.AuthSubject] = user
	return user, nil
}

func (r *MemoryRepo) GetBySubject(ctx context.Context, authSubject string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[authSubject]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}
