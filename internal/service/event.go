package service

import (
	"context"
	"fmt"

	"github.com/eventdesk/eventdesk/internal/domain"
	"github.com/eventdesk/eventdesk/internal/repository"
)

var ErrEventNotFound = repository.ErrEventNotFound

type EventRepository interface {
	NextID(ctx context.Context) (int, error)
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id int) (domain.Event, error)
	Update(ctx context.Context, event domain.Event) error
	Delete(ctx context.Context, id int) error
	All(ctx context.Context) []domain.Event
}

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

// Create stores a new event under a sequence-assigned identifier. Any ID on
// the incoming event is ignored.
func (s *EventService) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	id, err := s.repo.NextID(ctx)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.NextID -> %w", err)
	}
	event.ID = id
	if event.Organizers == nil {
		event.Organizers = []domain.User{}
	}
	if event.Participants == nil {
		event.Participants = []domain.User{}
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}
	return created, nil
}

func (s *EventService) Get(ctx context.Context, id int) (domain.Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EventService) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	if err := s.repo.Update(ctx, event); err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *EventService) List(ctx context.Context) []domain.Event {
	return s.repo.All(ctx)
}
