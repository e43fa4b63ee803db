package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventdesk/eventdesk/internal/domain"
	"github.com/eventdesk/eventdesk/internal/repository"
)

var (
	ErrRosterNotFound    = repository.ErrRosterNotFound
	ErrParticipantExists = errors.New("participant already on roster")
	ErrOrganizerExists   = errors.New("organizer already on roster")

	// ErrEventSync marks a partial failure: the roster write succeeded but
	// the event's denormalized participant list could not be updated.
	ErrEventSync = errors.New("event participant list sync failed")
)

type RosterRepository interface {
	FindByEventID(ctx context.Context, eventID int) (domain.EventRoster, error)
	Save(ctx context.Context, roster domain.EventRoster) error
	All(ctx context.Context) []domain.EventRoster
}

// RosterService owns the authoritative participant/organizer lists and
// keeps the event store's denormalized participant handles in step with
// them.
type RosterService struct {
	rosters RosterRepository
	events  EventRepository
}

func NewRosterService(rosters RosterRepository, events EventRepository) *RosterService {
	return &RosterService{
		rosters: rosters,
		events:  events,
	}
}

// AddParticipant appends a participant to the event's roster, creating the
// roster when none exists, then mirrors the derived handle onto the event
// record. A sync failure after the roster write is reported as ErrEventSync
// so callers can tell partial success from full success.
func (s *RosterService) AddParticipant(ctx context.Context, eventID int, p domain.Participant) error {
	if p.Role == "" {
		p.Role = domain.RoleAttendee
	}
	if p.Status == "" {
		p.Status = domain.StatusPending
	}

	roster, err := s.rosters.FindByEventID(ctx, eventID)
	if err != nil {
		if !errors.Is(err, repository.ErrRosterNotFound) {
			return fmt.Errorf("s.rosters.FindByEventID -> %w", err)
		}
		roster = domain.EventRoster{EventID: eventID}
	}

	if roster.HasParticipant(p.FirstName, p.LastName) {
		return ErrParticipantExists
	}
	roster.Participants = append(roster.Participants, p)
	if err = s.rosters.Save(ctx, roster); err != nil {
		return fmt.Errorf("s.rosters.Save -> %w", err)
	}

	if err = s.mirrorAdd(ctx, eventID, p.Handle()); err != nil {
		return fmt.Errorf("%w -> %w", ErrEventSync, err)
	}
	return nil
}

// mirrorAdd appends the handle to the event's denormalized participant
// list when the event exists and lacks it. A missing event is not an
// error; rosters may be built before their event.
func (s *RosterService) mirrorAdd(ctx context.Context, eventID int, handle string) error {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil
		}
		return err
	}
	if event.HasParticipant(handle) {
		return nil
	}
	event.Participants = append(event.Participants, domain.User{Name: handle})
	return s.events.Update(ctx, event)
}

// RemoveParticipant drops the matching roster entry and the matching
// denormalized event entry, both keyed on the derived handle. Removing a
// participant that is not present is a no-op.
func (s *RosterService) RemoveParticipant(ctx context.Context, eventID int, firstName, lastName string) error {
	handle := domain.Handle(firstName, lastName)

	roster, err := s.rosters.FindByEventID(ctx, eventID)
	if err == nil {
		kept := make([]domain.Participant, 0, len(roster.Participants))
		for _, p := range roster.Participants {
			if p.Handle() == handle {
				continue
			}
			kept = append(kept, p)
		}
		if len(kept) != len(roster.Participants) {
			roster.Participants = kept
			if err = s.rosters.Save(ctx, roster); err != nil {
				return fmt.Errorf("s.rosters.Save -> %w", err)
			}
		}
	} else if !errors.Is(err, repository.ErrRosterNotFound) {
		return fmt.Errorf("s.rosters.FindByEventID -> %w", err)
	}

	if err = s.mirrorRemove(ctx, eventID, handle); err != nil {
		return fmt.Errorf("%w -> %w", ErrEventSync, err)
	}
	return nil
}

func (s *RosterService) mirrorRemove(ctx context.Context, eventID int, handle string) error {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil
		}
		return err
	}
	kept := make([]domain.User, 0, len(event.Participants))
	for _, p := range event.Participants {
		if p.Name == handle {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == len(event.Participants) {
		return nil
	}
	event.Participants = kept
	return s.events.Update(ctx, event)
}

// AddOrganizer appends an organizer to the event's roster. Organizers are
// not mirrored onto the event record. Nil permissions default to the
// standard organizer grant.
func (s *RosterService) AddOrganizer(ctx context.Context, eventID int, o domain.Organizer) error {
	if o.Permissions == nil {
		o.Permissions = []string{"manage_event", "invite_users"}
	}

	roster, err := s.rosters.FindByEventID(ctx, eventID)
	if err != nil {
		if !errors.Is(err, repository.ErrRosterNotFound) {
			return fmt.Errorf("s.rosters.FindByEventID -> %w", err)
		}
		roster = domain.EventRoster{EventID: eventID}
	}

	if roster.HasOrganizer(o.Name) {
		return ErrOrganizerExists
	}
	roster.Organizers = append(roster.Organizers, o)
	if err = s.rosters.Save(ctx, roster); err != nil {
		return fmt.Errorf("s.rosters.Save -> %w", err)
	}
	return nil
}

// RemoveOrganizer drops the named organizer from the event's roster.
// Removing an absent organizer is a no-op.
func (s *RosterService) RemoveOrganizer(ctx context.Context, eventID int, name string) error {
	roster, err := s.rosters.FindByEventID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrRosterNotFound) {
			return nil
		}
		return fmt.Errorf("s.rosters.FindByEventID -> %w", err)
	}

	kept := make([]domain.Organizer, 0, len(roster.Organizers))
	for _, o := range roster.Organizers {
		if o.Name == name {
			continue
		}
		kept = append(kept, o)
	}
	if len(kept) == len(roster.Organizers) {
		return nil
	}
	roster.Organizers = kept
	if err = s.rosters.Save(ctx, roster); err != nil {
		return fmt.Errorf("s.rosters.Save -> %w", err)
	}
	return nil
}

// Participants returns the event's roster participants, empty when no
// roster exists.
func (s *RosterService) Participants(ctx context.Context, eventID int) ([]domain.Participant, error) {
	roster, err := s.rosters.FindByEventID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrRosterNotFound) {
			return []domain.Participant{}, nil
		}
		return nil, fmt.Errorf("s.rosters.FindByEventID -> %w", err)
	}
	return roster.Participants, nil
}

// Organizers returns the event's roster organizers, empty when no roster
// exists.
func (s *RosterService) Organizers(ctx context.Context, eventID int) ([]domain.Organizer, error) {
	roster, err := s.rosters.FindByEventID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrRosterNotFound) {
			return []domain.Organizer{}, nil
		}
		return nil, fmt.Errorf("s.rosters.FindByEventID -> %w", err)
	}
	return roster.Organizers, nil
}

func (s *RosterService) Roster(ctx context.Context, eventID int) (domain.EventRoster, error) {
	return s.rosters.FindByEventID(ctx, eventID)
}

func (s *RosterService) All(ctx context.Context) []domain.EventRoster {
	return s.rosters.All(ctx)
}
