package dao

import (
	"context"
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/eventdesk/eventdesk/internal/storage"
)

// Defaults applied to roster entries whose optional fields are absent from
// stored data.
const (
	defaultRole   = "attendee"
	defaultStatus = "pending"
)

var defaultPermissions = []string{"manage_event"}

// Roster is the stored per-event participant/organizer list record.
type Roster struct {
	EventID      int                 `json:"eventId"`
	Participants []RosterParticipant `json:"participants"`
	Organizers   []RosterOrganizer   `json:"organizers"`
}

// RosterParticipant is the stored rich participant profile.
type RosterParticipant struct {
	FirstName   string `json:"FirstName"`
	LastName    string `json:"LastName"`
	Email       string `json:"Email"`
	Role        string `json:"Role"`
	PhoneNumber string `json:"PhoneNumber"`
	Status      string `json:"Status"`
}

// RosterOrganizer is the stored organizer entry.
type RosterOrganizer struct {
	User        string   `json:"User"`
	Email       string   `json:"Email"`
	Permissions []string `json:"Permissions"`
}

type rosterShadow struct {
	EventID      *int                       `json:"eventId"`
	Participants *[]rosterParticipantShadow `json:"participants"`
	Organizers   *[]rosterOrganizerShadow   `json:"organizers"`
}

type rosterParticipantShadow struct {
	FirstName   *string `json:"FirstName"`
	LastName    *string `json:"LastName"`
	Email       *string `json:"Email"`
	Role        *string `json:"Role"`
	PhoneNumber *string `json:"PhoneNumber"`
	Status      *string `json:"Status"`
}

type rosterOrganizerShadow struct {
	User        *string   `json:"User"`
	Email       *string   `json:"Email"`
	Permissions *[]string `json:"Permissions"`
}

func strOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

// decodeRoster validates the list structure and reconstructs entries,
// defaulting optional profile fields that older stored data may lack.
func decodeRoster(raw json.RawMessage) (Roster, error) {
	var s rosterShadow
	if err := json.Unmarshal(raw, &s); err != nil {
		return Roster{}, err
	}
	err := validation.Errors{
		"eventId":      validation.Validate(s.EventID, validation.NotNil),
		"participants": validation.Validate(s.Participants, validation.NotNil),
		"organizers":   validation.Validate(s.Organizers, validation.NotNil),
	}.Filter()
	if err != nil {
		return Roster{}, err
	}

	roster := Roster{
		EventID:      *s.EventID,
		Participants: make([]RosterParticipant, 0, len(*s.Participants)),
		Organizers:   make([]RosterOrganizer, 0, len(*s.Organizers)),
	}
	for _, p := range *s.Participants {
		roster.Participants = append(roster.Participants, RosterParticipant{
			FirstName:   strOr(p.FirstName, ""),
			LastName:    strOr(p.LastName, ""),
			Email:       strOr(p.Email, ""),
			Role:        strOr(p.Role, defaultRole),
			PhoneNumber: strOr(p.PhoneNumber, ""),
			Status:      strOr(p.Status, defaultStatus),
		})
	}
	for _, o := range *s.Organizers {
		entry := RosterOrganizer{
			User:  strOr(o.User, ""),
			Email: strOr(o.Email, ""),
		}
		if o.Permissions != nil {
			entry.Permissions = *o.Permissions
		} else {
			entry.Permissions = append([]string(nil), defaultPermissions...)
		}
		roster.Organizers = append(roster.Organizers, entry)
	}

	return roster, nil
}

// RosterDAO is the collection store for per-event rosters.
type RosterDAO struct {
	c *collection[Roster]
}

// NewRosterDAO loads the roster slot and seeds event 1's sample roster when
// the collection is empty.
func NewRosterDAO(store *storage.Store) (*RosterDAO, error) {
	d := &RosterDAO{
		c: newCollection(store, slotRosters, decodeRoster),
	}

	if d.c.empty() {
		seed := Roster{
			EventID: 1,
			Participants: []RosterParticipant{{
				FirstName:   "Alice",
				LastName:    "Johnson",
				Email:       "alice@example.com",
				Role:        "attendee",
				PhoneNumber: "+123456789",
				Status:      "confirmed",
			}},
			Organizers: []RosterOrganizer{{
				User:        "jane_smith",
				Email:       "jane@example.com",
				Permissions: []string{"manage_event", "invite_users"},
			}},
		}
		if err := d.c.add(seed); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func (d *RosterDAO) FindByEventID(ctx context.Context, eventID int) (Roster, error) {
	roster, ok := d.c.find(func(r Roster) bool { return r.EventID == eventID })
	if !ok {
		return Roster{}, ErrNotFound
	}
	return roster, nil
}

// Upsert replaces the roster for its event id, inserting a new record when
// none exists yet.
func (d *RosterDAO) Upsert(ctx context.Context, roster Roster) error {
	err := d.c.update(func(r Roster) bool { return r.EventID == roster.EventID }, roster)
	if err == ErrNotFound {
		return d.c.add(roster)
	}
	return err
}

func (d *RosterDAO) Delete(ctx context.Context, eventID int) error {
	return d.c.remove(func(r Roster) bool { return r.EventID == eventID })
}

func (d *RosterDAO) All(ctx context.Context) []Roster {
	return d.c.all()
}
