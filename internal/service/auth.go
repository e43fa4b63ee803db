package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/eventdesk/eventdesk/internal/domain"
	"github.com/eventdesk/eventdesk/internal/repository"
)

var (
	ErrBlankCredentials = errors.New("username, email and password are required")
	ErrUsernameTaken    = errors.New("username already registered")
	ErrEmailTaken       = errors.New("email already registered")
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrNoSession        = repository.ErrNoSession
)

type AuthRepository interface {
	CreateAccount(ctx context.Context, account domain.Account) (domain.Account, error)
	FindByIdentity(ctx context.Context, usernameOrEmail string) (domain.Account, error)
	Exists(ctx context.Context, username, email string) (usernameTaken, emailTaken bool)
	CurrentSession(ctx context.Context) (domain.Account, error)
	SetSession(ctx context.Context, username string) error
	ClearSession(ctx context.Context) error
}

// UserDirectory is the write-through target for successful registrations.
type UserDirectory interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
}

type AuthService struct {
	repo  AuthRepository
	users UserDirectory
}

func NewAuthService(repo AuthRepository, users UserDirectory) *AuthService {
	return &AuthService{
		repo:  repo,
		users: users,
	}
}

// Register creates an account and writes a bare handle through to the user
// directory. Username and email collisions are exact-match and
// case-sensitive, reported separately.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (domain.Account, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return domain.Account{}, ErrBlankCredentials
	}

	usernameTaken, emailTaken := s.repo.Exists(ctx, username, email)
	if usernameTaken {
		return domain.Account{}, ErrUsernameTaken
	}
	if emailTaken {
		return domain.Account{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Account{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	account, err := s.repo.CreateAccount(ctx, domain.Account{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return domain.Account{}, fmt.Errorf("s.repo.CreateAccount -> %w", err)
	}

	if _, err = s.users.Create(ctx, domain.User{Name: username}); err != nil {
		return domain.Account{}, fmt.Errorf("s.users.Create -> %w", err)
	}

	return account, nil
}

// Login verifies the credentials and records the username in the session
// slot. A failed attempt leaves any existing session untouched.
func (s *AuthService) Login(ctx context.Context, usernameOrEmail, password string) (domain.Account, error) {
	account, err := s.repo.FindByIdentity(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domain.Account{}, ErrWrongCredentials
		}
		return domain.Account{}, fmt.Errorf("s.repo.FindByIdentity -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return domain.Account{}, ErrWrongCredentials
	}

	if err = s.repo.SetSession(ctx, account.Username); err != nil {
		return domain.Account{}, fmt.Errorf("s.repo.SetSession -> %w", err)
	}
	return account, nil
}

// Logout clears the session slot. Logging out with no session is a no-op.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.repo.ClearSession(ctx); err != nil {
		return fmt.Errorf("s.repo.ClearSession -> %w", err)
	}
	return nil
}

// CurrentUser resolves the session slot to its account. Both an empty slot
// and a slot naming a deleted account yield ErrNoSession.
func (s *AuthService) CurrentUser(ctx context.Context) (domain.Account, error) {
	account, err := s.repo.CurrentSession(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoSession) || errors.Is(err, repository.ErrAccountNotFound) {
			return domain.Account{}, ErrNoSession
		}
		return domain.Account{}, fmt.Errorf("s.repo.CurrentSession -> %w", err)
	}
	return account, nil
}
