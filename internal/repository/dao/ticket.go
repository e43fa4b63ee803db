package dao

import (
	"context"
	"encoding/json"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/eventdesk/eventdesk/internal/storage"
)

// Ticket is the stored ticket record.
type Ticket struct {
	ID           int     `json:"ID"`
	EventID      int     `json:"EventID"`
	UserID       string  `json:"UserID"`
	Type         string  `json:"Type"`
	Price        float64 `json:"Price"`
	Status       string  `json:"Status"`
	PurchaseDate string  `json:"PurchaseDate"`
}

type ticketShadow struct {
	ID           *int     `json:"ID"`
	EventID      *int     `json:"EventID"`
	UserID       *string  `json:"UserID"`
	Type         *string  `json:"Type"`
	Price        *float64 `json:"Price"`
	Status       *string  `json:"Status"`
	PurchaseDate *string  `json:"PurchaseDate"`
}

func (s *ticketShadow) validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.ID, validation.NotNil),
		validation.Field(&s.EventID, validation.NotNil),
		validation.Field(&s.UserID, validation.NotNil),
		validation.Field(&s.Type, validation.NotNil, validation.In("standard", "vip", "earlybird")),
		validation.Field(&s.Price, validation.NotNil),
		validation.Field(&s.Status, validation.NotNil, validation.In("active", "used", "cancelled")),
		validation.Field(&s.PurchaseDate, validation.NotNil),
	)
}

func decodeTicket(raw json.RawMessage) (Ticket, error) {
	var s ticketShadow
	if err := json.Unmarshal(raw, &s); err != nil {
		return Ticket{}, err
	}
	if err := s.validate(); err != nil {
		return Ticket{}, err
	}

	return Ticket{
		ID:           *s.ID,
		EventID:      *s.EventID,
		UserID:       *s.UserID,
		Type:         *s.Type,
		Price:        *s.Price,
		Status:       *s.Status,
		PurchaseDate: *s.PurchaseDate,
	}, nil
}

// TicketDAO is the collection store for ticket records.
type TicketDAO struct {
	c     *collection[Ticket]
	store *storage.Store
}

// NewTicketDAO loads the tickets slot and seeds one sample ticket when the
// collection is empty. The seed's purchase date comes from now.
func NewTicketDAO(store *storage.Store, now func() time.Time) (*TicketDAO, error) {
	d := &TicketDAO{
		c:     newCollection(store, slotTickets, decodeTicket),
		store: store,
	}

	if d.c.empty() {
		seed := Ticket{
			ID:           1,
			EventID:      1,
			UserID:       "alice_johnson",
			Type:         "standard",
			Price:        50.0,
			Status:       "active",
			PurchaseDate: now().Format("2006-01-02"),
		}
		if err := d.c.add(seed); err != nil {
			return nil, err
		}
		if err := store.Bump(slotTickets, uint64(seed.ID)); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// NextID advances the ticket identifier sequence.
func (d *TicketDAO) NextID(ctx context.Context) (int, error) {
	n, err := d.store.NextSequence(slotTickets)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (d *TicketDAO) Insert(ctx context.Context, ticket Ticket) error {
	return d.c.add(ticket)
}

func (d *TicketDAO) FindByID(ctx context.Context, id int) (Ticket, error) {
	ticket, ok := d.c.find(func(t Ticket) bool { return t.ID == id })
	if !ok {
		return Ticket{}, ErrNotFound
	}
	return ticket, nil
}

// FindByEventID returns all tickets for an event, in insertion order.
func (d *TicketDAO) FindByEventID(ctx context.Context, eventID int) []Ticket {
	out := make([]Ticket, 0)
	for _, t := range d.c.all() {
		if t.EventID == eventID {
			out = append(out, t)
		}
	}
	return out
}

func (d *TicketDAO) Update(ctx context.Context, ticket Ticket) error {
	return d.c.update(func(t Ticket) bool { return t.ID == ticket.ID }, ticket)
}

func (d *TicketDAO) Delete(ctx context.Context, id int) error {
	return d.c.remove(func(t Ticket) bool { return t.ID == id })
}

func (d *TicketDAO) All(ctx context.Context) []Ticket {
	return d.c.all()
}
