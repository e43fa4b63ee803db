package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventdesk/eventdesk/internal/domain"
	"github.com/eventdesk/eventdesk/internal/repository/dao"
)

var ErrRosterNotFound = errors.New("roster not found")

type RosterDAO interface {
	FindByEventID(ctx context.Context, eventID int) (dao.Roster, error)
	Upsert(ctx context.Context, roster dao.Roster) error
	Delete(ctx context.Context, eventID int) error
	All(ctx context.Context) []dao.Roster
}

// RosterRepository holds the authoritative per-event participant and
// organizer lists.
type RosterRepository struct {
	dao RosterDAO
}

func NewRosterRepository(dao RosterDAO) *RosterRepository {
	return &RosterRepository{
		dao: dao,
	}
}

func (r *RosterRepository) FindByEventID(ctx context.Context, eventID int) (domain.EventRoster, error) {
	found, err := r.dao.FindByEventID(ctx, eventID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return domain.EventRoster{}, ErrRosterNotFound
		}
		return domain.EventRoster{}, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}
	return rosterToDomain(found), nil
}

// Save replaces the roster for its event, creating the record when absent.
func (r *RosterRepository) Save(ctx context.Context, roster domain.EventRoster) error {
	if err := r.dao.Upsert(ctx, rosterToDAO(roster)); err != nil {
		return fmt.Errorf("r.dao.Upsert -> %w", err)
	}
	return nil
}

func (r *RosterRepository) Delete(ctx context.Context, eventID int) error {
	if err := r.dao.Delete(ctx, eventID); err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return ErrRosterNotFound
		}
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}
	return nil
}

func (r *RosterRepository) All(ctx context.Context) []domain.EventRoster {
	stored := r.dao.All(ctx)
	rosters := make([]domain.EventRoster, 0, len(stored))
	for _, roster := range stored {
		rosters = append(rosters, rosterToDomain(roster))
	}
	return rosters
}

func rosterToDomain(r dao.Roster) domain.EventRoster {
	roster := domain.EventRoster{
		EventID:      r.EventID,
		Participants: make([]domain.Participant, 0, len(r.Participants)),
		Organizers:   make([]domain.Organizer, 0, len(r.Organizers)),
	}
	for _, p := range r.Participants {
		roster.Participants = append(roster.Participants, domain.Participant{
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Email:       p.Email,
			Role:        p.Role,
			PhoneNumber: p.PhoneNumber,
			Status:      p.Status,
		})
	}
	for _, o := range r.Organizers {
		roster.Organizers = append(roster.Organizers, domain.Organizer{
			Name:        o.User,
			Email:       o.Email,
			Permissions: append([]string(nil), o.Permissions...),
		})
	}
	return roster
}

func rosterToDAO(r domain.EventRoster) dao.Roster {
	roster := dao.Roster{
		EventID:      r.EventID,
		Participants: make([]dao.RosterParticipant, 0, len(r.Participants)),
		Organizers:   make([]dao.RosterOrganizer, 0, len(r.Organizers)),
	}
	for _, p := range r.Participants {
		roster.Participants = append(roster.Participants, dao.RosterParticipant{
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Email:       p.Email,
			Role:        p.Role,
			PhoneNumber: p.PhoneNumber,
			Status:      p.Status,
		})
	}
	for _, o := range r.Organizers {
		roster.Organizers = append(roster.Organizers, dao.RosterOrganizer{
			User:        o.Name,
			Email:       o.Email,
			Permissions: append([]string(nil), o.Permissions...),
		})
	}
	return roster
}
