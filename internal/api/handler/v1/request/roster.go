package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/eventdesk/eventdesk/internal/domain"
)

var phoneExp = regexp.MustCompile(`^\+?[0-9]{6,15}$`)

type AddParticipantRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phone_number"`
	Status      string `json:"status"`
}

func (req *AddParticipantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Role, validation.In("attendee", "speaker", "volunteer")),
		validation.Field(&req.PhoneNumber, validation.Match(phoneExp)),
		validation.Field(&req.Status, validation.In("confirmed", "pending", "cancelled")),
	)
}

func (req *AddParticipantRequest) ToDomain() domain.Participant {
	return domain.Participant{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Role:        req.Role,
		PhoneNumber: req.PhoneNumber,
		Status:      req.Status,
	}
}

type AddOrganizerRequest struct {
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Permissions []string `json:"permissions"`
}

func (req *AddOrganizerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Email, is.Email),
	)
}

func (req *AddOrganizerRequest) ToDomain() domain.Organizer {
	return domain.Organizer{
		Name:        req.Username,
		Email:       req.Email,
		Permissions: req.Permissions,
	}
}
