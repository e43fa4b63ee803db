package service

import (
	"context"
	"fmt"
	"time"

	"github.com/eventdesk/eventdesk/internal/domain"
	"github.com/eventdesk/eventdesk/internal/repository"
)

var ErrTicketNotFound = repository.ErrTicketNotFound

type TicketRepository interface {
	NextID(ctx context.Context) (int, error)
	Create(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
	FindByID(ctx context.Context, id int) (domain.Ticket, error)
	FindByEventID(ctx context.Context, eventID int) []domain.Ticket
	Update(ctx context.Context, ticket domain.Ticket) error
	Delete(ctx context.Context, id int) error
	All(ctx context.Context) []domain.Ticket
}

type TicketService struct {
	repo TicketRepository
	now  func() time.Time
}

func NewTicketService(repo TicketRepository) *TicketService {
	return &TicketService{
		repo: repo,
		now:  time.Now,
	}
}

// Create stores a new ticket under a sequence-assigned identifier. A blank
// status defaults to active and a blank purchase date to today.
func (s *TicketService) Create(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	id, err := s.repo.NextID(ctx)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.repo.NextID -> %w", err)
	}
	ticket.ID = id
	if ticket.Status == "" {
		ticket.Status = domain.TicketActive
	}
	if ticket.PurchaseDate == "" {
		ticket.PurchaseDate = s.now().Format("2006-01-02")
	}

	created, err := s.repo.Create(ctx, ticket)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.repo.Create -> %w", err)
	}
	return created, nil
}

func (s *TicketService) Get(ctx context.Context, id int) (domain.Ticket, error) {
	return s.repo.FindByID(ctx, id)
}

// ListByEvent returns an event's tickets in insertion order. The event id
// is matched by value only; no existence check is made against the event
// store.
func (s *TicketService) ListByEvent(ctx context.Context, eventID int) []domain.Ticket {
	return s.repo.FindByEventID(ctx, eventID)
}

func (s *TicketService) Update(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	if err := s.repo.Update(ctx, ticket); err != nil {
		return domain.Ticket{}, err
	}
	return ticket, nil
}

func (s *TicketService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *TicketService) List(ctx context.Context) []domain.Ticket {
	return s.repo.All(ctx)
}
