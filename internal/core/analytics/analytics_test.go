package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucyai/lucy-support-be/internal/models"
)

func TestSummarizeCountsAndBreakdowns(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	clients := []models.Client{
		{ID: "CLT001", Status: "active"},
		{ID: "CLT002", Status: "active"},
		{ID: "CLT003", Status: "inactive"},
	}
	appointments := []models.Appointment{
		{ID: "APT001", Status: "scheduled"},
		{ID: "APT002", Status: "completed"},
	}
	turns := []models.ConversationTurn{
		{Tokens: 10, Timestamp: "2025-06-10T08:00:00Z"},
		{Tokens: 20, Timestamp: "2025-06-09T08:00:00Z"},
		{Tokens: 5, Timestamp: "2025-06-01T08:00:00Z"}, // outside the 7-day window
	}

	s := Summarize(clients, appointments, turns, now)

	assert.Equal(t, 3, s.TotalClients)
	assert.Equal(t, map[string]int{"active": 2, "inactive": 1}, s.ClientStatus)
	assert.Equal(t, 2, s.TotalAppointments)
	assert.Equal(t, map[string]int{"scheduled": 1, "completed": 1}, s.AppointmentStatus)
	assert.Equal(t, 3, s.TotalConversations)
	assert.Equal(t, 35, s.TotalTokens, "token total covers every turn, not only the window")

	require.Len(t, s.ConversationsPerDay, 7)
	assert.Equal(t, 1, s.ConversationsPerDay["2025-06-10"])
	assert.Equal(t, 1, s.ConversationsPerDay["2025-06-09"])
	assert.Equal(t, 0, s.ConversationsPerDay["2025-06-04"])
	_, inWindow := s.ConversationsPerDay["2025-06-01"]
	assert.False(t, inWindow, "days older than 7 are not reported")
}

func TestSummarizeEmptySnapshots(t *testing.T) {
	s := Summarize(nil, nil, nil, time.Now())

	assert.Zero(t, s.TotalClients)
	assert.Zero(t, s.TotalTokens)
	assert.Len(t, s.ConversationsPerDay, 7)
}
