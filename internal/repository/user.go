package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventdesk/eventdesk/internal/domain"
	"github.com/eventdesk/eventdesk/internal/repository/dao"
)

var ErrUserNotFound = errors.New("user not found")

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) error
	FindByName(ctx context.Context, name string) (dao.User, error)
	Update(ctx context.Context, user dao.User) error
	Delete(ctx context.Context, name string) error
	All(ctx context.Context) []dao.User
}

// UserRepository is the handle-only user directory.
type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	if err := r.dao.Insert(ctx, dao.User{User: user.Name}); err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}
	return user, nil
}

func (r *UserRepository) FindByName(ctx context.Context, name string) (domain.User, error) {
	found, err := r.dao.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("r.dao.FindByName -> %w", err)
	}
	return domain.User{Name: found.User}, nil
}

func (r *UserRepository) Delete(ctx context.Context, name string) error {
	if err := r.dao.Delete(ctx, name); err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}
	return nil
}

func (r *UserRepository) All(ctx context.Context) []domain.User {
	stored := r.dao.All(ctx)
	return handlesToDomain(stored)
}
