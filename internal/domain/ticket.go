package domain

// Ticket types and statuses.
const (
	TicketStandard  = "standard"
	TicketVIP       = "vip"
	TicketEarlybird = "earlybird"

	TicketActive    = "active"
	TicketUsed      = "used"
	TicketCancelled = "cancelled"
)

// Ticket is a purchased admission for an event. EventID relates to Event.ID
// by value only; UserID is the holder's handle.
type Ticket struct {
	ID           int     `json:"id"`
	EventID      int     `json:"event_id"`
	UserID       string  `json:"user_id"`
	Type         string  `json:"type"`
	Price        float64 `json:"price"`
	Status       string  `json:"status"`
	PurchaseDate string  `json:"purchase_date"`
}
