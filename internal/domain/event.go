package domain

// Event is a single managed event. Participants holds the denormalized
// handle list mirrored from the event's roster; the roster is the
// authoritative record.
type Event struct {
	ID            int    `json:"id"`
	Owner         User   `json:"owner"`
	Website       string `json:"website"`
	Organizers    []User `json:"organizers"`
	Participants  []User `json:"participants"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	LocationName  string `json:"location_name"`
	City          string `json:"city"`
	StreetAddress string `json:"street_address"`
	ZipCode       string `json:"zip_code"`
	Time          string `json:"time"`
	Date          string `json:"date"`
	GuestList     bool   `json:"guest_list"`
	Paid          bool   `json:"paid"`
}

// HasParticipant reports whether the denormalized participant list already
// carries the given handle.
func (e Event) HasParticipant(handle string) bool {
	for _, p := range e.Participants {
		if p.Name == handle {
			return true
		}
	}
	return false
}
