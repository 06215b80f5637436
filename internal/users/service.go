package users

import (
	"context"
	"errors"
	"strings"

	"github.com/Ayuniiieee02/Resume/internal/shared/server/middleware"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Touch persists the caller identity so later lookups (applicant names,
// feedback authors) resolve to a stable profile.
func (s *Service) Touch(ctx context.Context, id middleware.Identity) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(id.UserID) == "" {
		return User{}, ErrInvalidInput
	}
	role := id.Role
	if role == "" {
		role = middleware.RoleUser
	}
	return s.Repo.Upsert(ctx, User{
		ID:       id.UserID,
		Email:    strings.TrimSpace(id.Email),
		FullName: strings.TrimSpace(id.FullName),
		Role:     role,
	})
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID)
}
