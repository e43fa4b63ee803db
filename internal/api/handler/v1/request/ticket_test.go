package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTicketRequest() TicketRequest {
	return TicketRequest{
		EventID:      1,
		UserID:       "alice_johnson",
		Type:         "standard",
		Price:        50,
		Status:       "active",
		PurchaseDate: "2025-06-01",
	}
}

func TestTicketRequest_Validate(t *testing.T) {
	req := validTicketRequest()
	assert.NoError(t, req.Validate())

	// Status and purchase date are optional.
	req.Status = ""
	req.PurchaseDate = ""
	assert.NoError(t, req.Validate())
}

func TestTicketRequest_Validate_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TicketRequest)
	}{
		{"missing event id", func(r *TicketRequest) { r.EventID = 0 }},
		{"missing user id", func(r *TicketRequest) { r.UserID = "" }},
		{"unknown type", func(r *TicketRequest) { r.Type = "platinum" }},
		{"unknown status", func(r *TicketRequest) { r.Status = "expired" }},
		{"negative price", func(r *TicketRequest) { r.Price = -1 }},
		{"bad purchase date", func(r *TicketRequest) { r.PurchaseDate = "01-06-2025" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validTicketRequest()
			tc.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}
