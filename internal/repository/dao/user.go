package dao

import (
	"context"
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/eventdesk/eventdesk/internal/storage"
)

func decodeUser(raw json.RawMessage) (User, error) {
	var s userShadow
	if err := json.Unmarshal(raw, &s); err != nil {
		return User{}, err
	}
	if err := validation.Validate(s.User, validation.NotNil); err != nil {
		return User{}, err
	}
	return User{User: *s.User}, nil
}

// UserDAO is the collection store for the handle-only user directory.
type UserDAO struct {
	c *collection[User]
}

// NewUserDAO loads the users slot and seeds the sample handle when the
// collection is empty.
func NewUserDAO(store *storage.Store) (*UserDAO, error) {
	d := &UserDAO{
		c: newCollection(store, slotUsers, decodeUser),
	}

	if d.c.empty() {
		if err := d.c.add(User{User: "john_doe"}); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func (d *UserDAO) Insert(ctx context.Context, user User) error {
	return d.c.add(user)
}

func (d *UserDAO) FindByName(ctx context.Context, name string) (User, error) {
	user, ok := d.c.find(func(u User) bool { return u.User == name })
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (d *UserDAO) Update(ctx context.Context, user User) error {
	return d.c.update(func(u User) bool { return u.User == user.User }, user)
}

func (d *UserDAO) Delete(ctx context.Context, name string) error {
	return d.c.remove(func(u User) bool { return u.User == name })
}

func (d *UserDAO) All(ctx context.Context) []User {
	return d.c.all()
}
