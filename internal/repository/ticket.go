package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventdesk/eventdesk/internal/domain"
	"github.com/eventdesk/eventdesk/internal/repository/dao"
)

var ErrTicketNotFound = errors.New("ticket not found")

type TicketDAO interface {
	NextID(ctx context.Context) (int, error)
	Insert(ctx context.Context, ticket dao.Ticket) error
	FindByID(ctx context.Context, id int) (dao.Ticket, error)
	FindByEventID(ctx context.Context, eventID int) []dao.Ticket
	Update(ctx context.Context, ticket dao.Ticket) error
	Delete(ctx context.Context, id int) error
	All(ctx context.Context) []dao.Ticket
}

type TicketRepository struct {
	dao TicketDAO
}

func NewTicketRepository(dao TicketDAO) *TicketRepository {
	return &TicketRepository{
		dao: dao,
	}
}

// NextID returns a fresh ticket identifier from the monotonic sequence.
func (r *TicketRepository) NextID(ctx context.Context) (int, error) {
	id, err := r.dao.NextID(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.NextID -> %w", err)
	}
	return id, nil
}

func (r *TicketRepository) Create(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	if err := r.dao.Insert(ctx, ticketToDAO(ticket)); err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}
	return ticket, nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id int) (domain.Ticket, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return domain.Ticket{}, ErrTicketNotFound
		}
		return domain.Ticket{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}
	return ticketToDomain(found), nil
}

func (r *TicketRepository) FindByEventID(ctx context.Context, eventID int) []domain.Ticket {
	stored := r.dao.FindByEventID(ctx, eventID)
	tickets := make([]domain.Ticket, 0, len(stored))
	for _, t := range stored {
		tickets = append(tickets, ticketToDomain(t))
	}
	return tickets
}

func (r *TicketRepository) Update(ctx context.Context, ticket domain.Ticket) error {
	if err := r.dao.Update(ctx, ticketToDAO(ticket)); err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return ErrTicketNotFound
		}
		return fmt.Errorf("r.dao.Update -> %w", err)
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id int) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return ErrTicketNotFound
		}
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}
	return nil
}

func (r *TicketRepository) All(ctx context.Context) []domain.Ticket {
	stored := r.dao.All(ctx)
	tickets := make([]domain.Ticket, 0, len(stored))
	for _, t := range stored {
		tickets = append(tickets, ticketToDomain(t))
	}
	return tickets
}

func ticketToDomain(t dao.Ticket) domain.Ticket {
	return domain.Ticket{
		ID:           t.ID,
		EventID:      t.EventID,
		UserID:       t.UserID,
		Type:         t.Type,
		Price:        t.Price,
		Status:       t.Status,
		PurchaseDate: t.PurchaseDate,
	}
}

func ticketToDAO(t domain.Ticket) dao.Ticket {
	return dao.Ticket{
		ID:           t.ID,
		EventID:      t.EventID,
		UserID:       t.UserID,
		Type:         t.Type,
		Price:        t.Price,
		Status:       t.Status,
		PurchaseDate: t.PurchaseDate,
	}
}
