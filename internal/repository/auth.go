package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventdesk/eventdesk/internal/domain"
	"github.com/eventdesk/eventdesk/internal/repository/dao"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrNoSession       = errors.New("no active session")
)

type AccountDAO interface {
	Insert(ctx context.Context, account dao.Account) error
	FindByIdentity(ctx context.Context, usernameOrEmail string) (dao.Account, error)
	Exists(ctx context.Context, username, email string) (usernameTaken, emailTaken bool)
	Delete(ctx context.Context, username string) error
	All(ctx context.Context) []dao.Account
}

type SessionDAO interface {
	Current(ctx context.Context) (string, bool, error)
	Set(ctx context.Context, username string) error
	Clear(ctx context.Context) error
}

// AuthRepository combines the credential collection with the single
// session slot.
type AuthRepository struct {
	accounts AccountDAO
	sessions SessionDAO
}

func NewAuthRepository(accounts AccountDAO, sessions SessionDAO) *AuthRepository {
	return &AuthRepository{
		accounts: accounts,
		sessions: sessions,
	}
}

func (r *AuthRepository) CreateAccount(ctx context.Context, account domain.Account) (domain.Account, error) {
	stored := dao.Account{
		Username:     account.Username,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
	}
	if err := r.accounts.Insert(ctx, stored); err != nil {
		return domain.Account{}, fmt.Errorf("r.accounts.Insert -> %w", err)
	}
	return account, nil
}

// FindByIdentity matches an account by exact username or email.
func (r *AuthRepository) FindByIdentity(ctx context.Context, usernameOrEmail string) (domain.Account, error) {
	found, err := r.accounts.FindByIdentity(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return domain.Account{}, ErrAccountNotFound
		}
		return domain.Account{}, fmt.Errorf("r.accounts.FindByIdentity -> %w", err)
	}
	return accountToDomain(found), nil
}

// Exists reports username and email collisions separately so registration
// can surface the exact reason.
func (r *AuthRepository) Exists(ctx context.Context, username, email string) (usernameTaken, emailTaken bool) {
	return r.accounts.Exists(ctx, username, email)
}

// CurrentSession resolves the session slot to its account. Returns
// ErrNoSession when the slot is empty, ErrAccountNotFound when the recorded
// account no longer exists.
func (r *AuthRepository) CurrentSession(ctx context.Context) (domain.Account, error) {
	username, ok, err := r.sessions.Current(ctx)
	if err != nil {
		return domain.Account{}, fmt.Errorf("r.sessions.Current -> %w", err)
	}
	if !ok {
		return domain.Account{}, ErrNoSession
	}
	return r.FindByIdentity(ctx, username)
}

func (r *AuthRepository) SetSession(ctx context.Context, username string) error {
	if err := r.sessions.Set(ctx, username); err != nil {
		return fmt.Errorf("r.sessions.Set -> %w", err)
	}
	return nil
}

func (r *AuthRepository) ClearSession(ctx context.Context) error {
	if err := r.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("r.sessions.Clear -> %w", err)
	}
	return nil
}

func accountToDomain(a dao.Account) domain.Account {
	return domain.Account{
		Username:     a.Username,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
	}
}
