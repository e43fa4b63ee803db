package dao

import (
	"context"
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/eventdesk/eventdesk/internal/storage"
)

// Account is the stored credential record.
type Account struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

type accountShadow struct {
	Username     *string `json:"username"`
	Email        *string `json:"email"`
	PasswordHash *string `json:"passwordHash"`
}

func decodeAccount(raw json.RawMessage) (Account, error) {
	var s accountShadow
	if err := json.Unmarshal(raw, &s); err != nil {
		return Account{}, err
	}
	err := validation.Errors{
		"username":     validation.Validate(s.Username, validation.NotNil),
		"email":        validation.Validate(s.Email, validation.NotNil),
		"passwordHash": validation.Validate(s.PasswordHash, validation.NotNil),
	}.Filter()
	if err != nil {
		return Account{}, err
	}

	return Account{
		Username:     *s.Username,
		Email:        *s.Email,
		PasswordHash: *s.PasswordHash,
	}, nil
}

// AccountDAO is the collection store for credential records. It is never
// seeded.
type AccountDAO struct {
	c *collection[Account]
}

func NewAccountDAO(store *storage.Store) *AccountDAO {
	return &AccountDAO{
		c: newCollection(store, slotAccounts, decodeAccount),
	}
}

func (d *AccountDAO) Insert(ctx context.Context, account Account) error {
	return d.c.add(account)
}

// FindByIdentity matches an account by exact username or email.
func (d *AccountDAO) FindByIdentity(ctx context.Context, usernameOrEmail string) (Account, error) {
	account, ok := d.c.find(func(a Account) bool {
		return a.Username == usernameOrEmail || a.Email == usernameOrEmail
	})
	if !ok {
		return Account{}, ErrNotFound
	}
	return account, nil
}

// Exists reports whether any account already uses the username or the email.
// Matching is exact and case-sensitive.
func (d *AccountDAO) Exists(ctx context.Context, username, email string) (usernameTaken, emailTaken bool) {
	for _, a := range d.c.all() {
		if a.Username == username {
			usernameTaken = true
		}
		if a.Email == email {
			emailTaken = true
		}
	}
	return usernameTaken, emailTaken
}

func (d *AccountDAO) Delete(ctx context.Context, username string) error {
	return d.c.remove(func(a Account) bool { return a.Username == username })
}

func (d *AccountDAO) All(ctx context.Context) []Account {
	return d.c.all()
}
