package domain

import "strings"

// User is a bare username handle. Events reference organizers and
// participants through these handles rather than full profiles.
type User struct {
	Name string `json:"username"`
}

// Participant is the rich roster profile behind a participant handle.
type Participant struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phone_number"`
	Status      string `json:"status"`
}

// Participant roles and statuses.
const (
	RoleAttendee  = "attendee"
	RoleSpeaker   = "speaker"
	RoleVolunteer = "volunteer"

	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

// Handle derives the username-like handle for a participant name pair.
// The roster and the event's denormalized participant list both key on this
// value, so it must be computed in exactly one place.
func Handle(firstName, lastName string) string {
	return strings.ToLower(firstName) + "_" + strings.ToLower(lastName)
}

// Handle returns the participant's derived handle.
func (p Participant) Handle() string {
	return Handle(p.FirstName, p.LastName)
}

// Organizer is a roster entry with a permission list.
type Organizer struct {
	Name        string   `json:"username"`
	Email       string   `json:"email"`
	Permissions []string `json:"permissions"`
}

// HasPermission reports whether the organizer carries the named permission.
func (o Organizer) HasPermission(permission string) bool {
	for _, p := range o.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
