// Package repository maps stored records to domain types and translates
// store-level conditions into sentinel errors callers can test against.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventdesk/eventdesk/internal/domain"
	"github.com/eventdesk/eventdesk/internal/repository/dao"
)

var ErrEventNotFound = errors.New("event not found")

type EventDAO interface {
	NextID(ctx context.Context) (int, error)
	Insert(ctx context.Context, event dao.Event) error
	FindByID(ctx context.Context, id int) (dao.Event, error)
	Update(ctx context.Context, event dao.Event) error
	Delete(ctx context.Context, id int) error
	All(ctx context.Context) []dao.Event
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

// NextID returns a fresh event identifier from the monotonic sequence.
func (r *EventRepository) NextID(ctx context.Context) (int, error) {
	id, err := r.dao.NextID(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.NextID -> %w", err)
	}
	return id, nil
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	if err := r.dao.Insert(ctx, eventToDAO(event)); err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}
	return event, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id int) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return domain.Event{}, ErrEventNotFound
		}
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}
	return eventToDomain(found), nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) error {
	if err := r.dao.Update(ctx, eventToDAO(event)); err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("r.dao.Update -> %w", err)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id int) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}
	return nil
}

func (r *EventRepository) All(ctx context.Context) []domain.Event {
	stored := r.dao.All(ctx)
	events := make([]domain.Event, 0, len(stored))
	for _, e := range stored {
		events = append(events, eventToDomain(e))
	}
	return events
}

func handlesToDomain(users []dao.User) []domain.User {
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, domain.User{Name: u.User})
	}
	return out
}

func handlesToDAO(users []domain.User) []dao.User {
	out := make([]dao.User, 0, len(users))
	for _, u := range users {
		out = append(out, dao.User{User: u.Name})
	}
	return out
}

func eventToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:            e.ID,
		Owner:         domain.User{Name: e.Owner.User},
		Website:       e.Website,
		Organizers:    handlesToDomain(e.Organizers),
		Participants:  handlesToDomain(e.Participants),
		Name:          e.Name,
		Description:   e.Description,
		LocationName:  e.LocationName,
		City:          e.City,
		StreetAddress: e.StreetAddress,
		ZipCode:       e.ZipCode,
		Time:          e.Time,
		Date:          e.Date,
		GuestList:     e.GuestList,
		Paid:          e.Paid,
	}
}

func eventToDAO(e domain.Event) dao.Event {
	return dao.Event{
		ID:            e.ID,
		Owner:         dao.User{User: e.Owner.Name},
		Website:       e.Website,
		Organizers:    handlesToDAO(e.Organizers),
		Participants:  handlesToDAO(e.Participants),
		Name:          e.Name,
		Description:   e.Description,
		LocationName:  e.LocationName,
		City:          e.City,
		StreetAddress: e.StreetAddress,
		ZipCode:       e.ZipCode,
		Time:          e.Time,
		Date:          e.Date,
		GuestList:     e.GuestList,
		Paid:          e.Paid,
	}
}
