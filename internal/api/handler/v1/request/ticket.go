package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/eventdesk/eventdesk/internal/domain"
)

type TicketRequest struct {
	EventID      int     `json:"event_id"`
	UserID       string  `json:"user_id"`
	Type         string  `json:"type"`
	Price        float64 `json:"price"`
	Status       string  `json:"status"`
	PurchaseDate string  `json:"purchase_date"`
}

func (req *TicketRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required, validation.Min(1)),
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Type, validation.Required, validation.In("standard", "vip", "earlybird")),
		validation.Field(&req.Price, validation.Min(0.0)),
		validation.Field(&req.Status, validation.In("active", "used", "cancelled")),
		validation.Field(&req.PurchaseDate, validation.Date("2006-01-02")),
	)
}

func (req *TicketRequest) ToDomain() domain.Ticket {
	return domain.Ticket{
		EventID:      req.EventID,
		UserID:       req.UserID,
		Type:         req.Type,
		Price:        req.Price,
		Status:       req.Status,
		PurchaseDate: req.PurchaseDate,
	}
}
