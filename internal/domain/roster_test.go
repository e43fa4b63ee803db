package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventHasParticipant(t *testing.T) {
	e := Event{Participants: []User{{Name: "alice_johnson"}}}
	assert.True(t, e.HasParticipant("alice_johnson"))
	assert.False(t, e.HasParticipant("bob_brown"))
}

func TestEventRosterHasParticipant(t *testing.T) {
	r := EventRoster{Participants: []Participant{{FirstName: "Alice", LastName: "Johnson"}}}
	assert.True(t, r.HasParticipant("Alice", "Johnson"))
	// Name pair matching is exact; derived handles are compared elsewhere.
	assert.False(t, r.HasParticipant("alice", "johnson"))
	assert.False(t, r.HasParticipant("Bob", "Brown"))
}

func TestEventRosterHasOrganizer(t *testing.T) {
	r := EventRoster{Organizers: []Organizer{{Name: "jane_smith"}}}
	assert.True(t, r.HasOrganizer("jane_smith"))
	assert.False(t, r.HasOrganizer("bob_brown"))
}
