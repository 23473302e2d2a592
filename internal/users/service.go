package users

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Service contains business logic for users.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// EnsureUser creates the user record on first authenticated request and
// returns the existing one afterwards. The upsert is keyed by auth subject.
func (s *Service) EnsureUser(ctx context.Context, authSubject, email string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(authSubject) == "" || strings.TrimSpace(email) == "" {
		return User{}, errors.New("auth subject and email are required")
	}
	return s.Repo.Upsert(ctx, User{
		ID:          uuid.NewString(),
		AuthSubject: authSubject,
		Email:       email,
	})
}

// GetBySubject returns the user owning the given auth subject.
func (s *Service) GetBySubject(ctx context.Context, authSubject string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(authSubject) == "" {
		return User{}, errors.New("auth subject is required")
	}
	return s.Repo.GetBySubject(ctx, authSubject)
}
