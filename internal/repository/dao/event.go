package dao

import (
	"context"
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/eventdesk/eventdesk/internal/storage"
)

// User is the stored handle record referenced from events and the user
// directory slot.
type User struct {
	User string `json:"User"`
}

// Event is the stored event record. Field names follow the persisted
// layout of the original application data.
type Event struct {
	ID            int    `json:"ID"`
	Owner         User   `json:"ID_Owner"`
	Website       string `json:"ID_Website"`
	Organizers    []User `json:"Organizers"`
	Participants  []User `json:"Participants"`
	Name          string `json:"Name"`
	Description   string `json:"Description"`
	LocationName  string `json:"LocationName"`
	City          string `json:"City"`
	StreetAddress string `json:"StreetAddress"`
	ZipCode       string `json:"ZipCode"`
	Time          string `json:"Time"`
	Date          string `json:"Date"`
	GuestList     bool   `json:"isGuestList"`
	Paid          bool   `json:"isPaid"`
}

// eventShadow distinguishes absent fields from zero values during load
// validation. Every field of the stored record is required.
type eventShadow struct {
	ID            *int          `json:"ID"`
	Owner         *userShadow   `json:"ID_Owner"`
	Website       *string       `json:"ID_Website"`
	Organizers    *[]userShadow `json:"Organizers"`
	Participants  *[]userShadow `json:"Participants"`
	Name          *string       `json:"Name"`
	Description   *string       `json:"Description"`
	LocationName  *string       `json:"LocationName"`
	City          *string       `json:"City"`
	StreetAddress *string       `json:"StreetAddress"`
	ZipCode       *string       `json:"ZipCode"`
	Time          *string       `json:"Time"`
	Date          *string       `json:"Date"`
	GuestList     *bool         `json:"isGuestList"`
	Paid          *bool         `json:"isPaid"`
}

type userShadow struct {
	User *string `json:"User"`
}

func (s *eventShadow) validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.ID, validation.NotNil),
		validation.Field(&s.Owner, validation.NotNil),
		validation.Field(&s.Website, validation.NotNil),
		validation.Field(&s.Organizers, validation.NotNil),
		validation.Field(&s.Participants, validation.NotNil),
		validation.Field(&s.Name, validation.NotNil),
		validation.Field(&s.Description, validation.NotNil),
		validation.Field(&s.LocationName, validation.NotNil),
		validation.Field(&s.City, validation.NotNil),
		validation.Field(&s.StreetAddress, validation.NotNil),
		validation.Field(&s.ZipCode, validation.NotNil),
		validation.Field(&s.Time, validation.NotNil),
		validation.Field(&s.Date, validation.NotNil),
		validation.Field(&s.GuestList, validation.NotNil),
		validation.Field(&s.Paid, validation.NotNil),
	)
}

func decodeHandles(shadows []userShadow) ([]User, error) {
	users := make([]User, 0, len(shadows))
	for _, s := range shadows {
		if err := validation.Validate(s.User, validation.NotNil); err != nil {
			return nil, err
		}
		users = append(users, User{User: *s.User})
	}
	return users, nil
}

func decodeEvent(raw json.RawMessage) (Event, error) {
	var s eventShadow
	if err := json.Unmarshal(raw, &s); err != nil {
		return Event{}, err
	}
	if err := s.validate(); err != nil {
		return Event{}, err
	}
	if err := validation.Validate(s.Owner.User, validation.NotNil); err != nil {
		return Event{}, err
	}
	organizers, err := decodeHandles(*s.Organizers)
	if err != nil {
		return Event{}, err
	}
	participants, err := decodeHandles(*s.Participants)
	if err != nil {
		return Event{}, err
	}

	return Event{
		ID:            *s.ID,
		Owner:         User{User: *s.Owner.User},
		Website:       *s.Website,
		Organizers:    organizers,
		Participants:  participants,
		Name:          *s.Name,
		Description:   *s.Description,
		LocationName:  *s.LocationName,
		City:          *s.City,
		StreetAddress: *s.StreetAddress,
		ZipCode:       *s.ZipCode,
		Time:          *s.Time,
		Date:          *s.Date,
		GuestList:     *s.GuestList,
		Paid:          *s.Paid,
	}, nil
}

// EventDAO is the collection store for event records.
type EventDAO struct {
	c     *collection[Event]
	store *storage.Store
}

// NewEventDAO loads the events slot and seeds the documented sample event
// when the collection is empty.
func NewEventDAO(store *storage.Store) (*EventDAO, error) {
	d := &EventDAO{
		c:     newCollection(store, slotEvents, decodeEvent),
		store: store,
	}

	if d.c.empty() {
		if err := d.c.add(sampleEvent()); err != nil {
			return nil, err
		}
		if err := store.Bump(slotEvents, uint64(sampleEvent().ID)); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func sampleEvent() Event {
	return Event{
		ID:            1,
		Owner:         User{User: "john_doe"},
		Website:       "eventplatform.com",
		Organizers:    []User{{User: "jane_smith"}},
		Participants:  []User{{User: "alice_johnson"}},
		Name:          "Tech Conference 2025",
		Description:   "A gathering of tech enthusiasts to explore innovations.",
		LocationName:  "Convention Center",
		City:          "Berlin",
		StreetAddress: "Mitte Str. 10",
		ZipCode:       "10115",
		Time:          "14:00",
		Date:          "2025-09-15",
		GuestList:     true,
		Paid:          true,
	}
}

// NextID advances the event identifier sequence. Identifiers are never
// reused after deletions.
func (d *EventDAO) NextID(ctx context.Context) (int, error) {
	n, err := d.store.NextSequence(slotEvents)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (d *EventDAO) Insert(ctx context.Context, event Event) error {
	return d.c.add(event)
}

func (d *EventDAO) FindByID(ctx context.Context, id int) (Event, error) {
	event, ok := d.c.find(func(e Event) bool { return e.ID == id })
	if !ok {
		return Event{}, ErrNotFound
	}
	return event, nil
}

func (d *EventDAO) Update(ctx context.Context, event Event) error {
	return d.c.update(func(e Event) bool { return e.ID == event.ID }, event)
}

func (d *EventDAO) Delete(ctx context.Context, id int) error {
	return d.c.remove(func(e Event) bool { return e.ID == id })
}

func (d *EventDAO) All(ctx context.Context) []Event {
	return d.c.all()
}
