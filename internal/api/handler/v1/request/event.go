package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/eventdesk/eventdesk/internal/domain"
)

var timeOfDayExp = regexp.MustCompile(`^\d{2}:\d{2}$`)

type EventRequest struct {
	Owner         string   `json:"owner"`
	Website       string   `json:"website"`
	Organizers    []string `json:"organizers"`
	Participants  []string `json:"participants"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	LocationName  string   `json:"location_name"`
	City          string   `json:"city"`
	StreetAddress string   `json:"street_address"`
	ZipCode       string   `json:"zip_code"`
	Time          string   `json:"time"`
	Date          string   `json:"date"`
	GuestList     bool     `json:"guest_list"`
	Paid          bool     `json:"paid"`
}

func (req *EventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Owner, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.Time, validation.Required, validation.Match(timeOfDayExp)),
	)
}

// ToDomain builds the event record; the ID is left for the service to
// assign.
func (req *EventRequest) ToDomain() domain.Event {
	return domain.Event{
		Owner:         domain.User{Name: req.Owner},
		Website:       req.Website,
		Organizers:    toHandles(req.Organizers),
		Participants:  toHandles(req.Participants),
		Name:          req.Name,
		Description:   req.Description,
		LocationName:  req.LocationName,
		City:          req.City,
		StreetAddress: req.StreetAddress,
		ZipCode:       req.ZipCode,
		Time:          req.Time,
		Date:          req.Date,
		GuestList:     req.GuestList,
		Paid:          req.Paid,
	}
}

func toHandles(names []string) []domain.User {
	users := make([]domain.User, 0, len(names))
	for _, n := range names {
		users = append(users, domain.User{Name: n})
	}
	return users
}
