package service

import (
	"context"

	"github.com/eventdesk/eventdesk/internal/domain"
	"github.com/eventdesk/eventdesk/internal/repository"
)

var ErrUserNotFound = repository.ErrUserNotFound

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByName(ctx context.Context, name string) (domain.User, error)
	Delete(ctx context.Context, name string) error
	All(ctx context.Context) []domain.User
}

// UserService exposes the handle-only user directory.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) Get(ctx context.Context, name string) (domain.User, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *UserService) List(ctx context.Context) []domain.User {
	return s.repo.All(ctx)
}
