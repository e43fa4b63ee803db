package domain

// EventRoster holds the participant and organizer lists for one event.
type EventRoster struct {
	EventID      int           `json:"event_id"`
	Participants []Participant `json:"participants"`
	Organizers   []Organizer   `json:"organizers"`
}

// HasParticipant reports whether a participant with the exact name pair is
// already on the roster.
func (r EventRoster) HasParticipant(firstName, lastName string) bool {
	for _, p := range r.Participants {
		if p.FirstName == firstName && p.LastName == lastName {
			return true
		}
	}
	return false
}

// HasOrganizer reports whether an organizer with the given handle is on the
// roster.
func (r EventRoster) HasOrganizer(name string) bool {
	for _, o := range r.Organizers {
		if o.Name == name {
			return true
		}
	}
	return false
}
