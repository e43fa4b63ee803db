package request

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventdesk/eventdesk/internal/domain"
)

func validEventRequest() EventRequest {
	return EventRequest{
		Owner:         "john_doe",
		Website:       "eventplatform.com",
		Organizers:    []string{"jane_smith"},
		Participants:  []string{"alice_johnson"},
		Name:          "Tech Conference 2025",
		Description:   "desc",
		LocationName:  "Convention Center",
		City:          "Berlin",
		StreetAddress: "Mitte Str. 10",
		ZipCode:       "10115",
		Time:          "14:00",
		Date:          "2025-09-15",
		GuestList:     true,
		Paid:          true,
	}
}

func TestEventRequest_Validate(t *testing.T) {
	req := validEventRequest()
	assert.NoError(t, req.Validate())
}

func TestEventRequest_Validate_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*EventRequest)
	}{
		{"missing owner", func(r *EventRequest) { r.Owner = "" }},
		{"missing name", func(r *EventRequest) { r.Name = "" }},
		{"bad date", func(r *EventRequest) { r.Date = "15-09-2025" }},
		{"bad time", func(r *EventRequest) { r.Time = "2pm" }},
		{"missing time", func(r *EventRequest) { r.Time = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validEventRequest()
			tc.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestEventRequest_ToDomain(t *testing.T) {
	req := validEventRequest()
	event := req.ToDomain()

	assert.Zero(t, event.ID)
	assert.Equal(t, domain.User{Name: "john_doe"}, event.Owner)
	assert.Equal(t, []domain.User{{Name: "jane_smith"}}, event.Organizers)
	assert.Equal(t, []domain.User{{Name: "alice_johnson"}}, event.Participants)
	assert.True(t, event.GuestList)
	assert.True(t, event.Paid)
}

func TestEventRequest_ToDomainEmptyListsAreNotNil(t *testing.T) {
	req := validEventRequest()
	req.Organizers = nil
	req.Participants = nil

	event := req.ToDomain()
	assert.NotNil(t, event.Organizers)
	assert.NotNil(t, event.Participants)
}
