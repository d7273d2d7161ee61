package analytics

import (
	"time"

	"github.com/lucyai/lucy-support-be/internal/models"
)

// Summary aggregates the record collections for the admin dashboard.
type Summary struct {
	TotalClients        int            `json:"total_clients"`
	ClientStatus        map[string]int `json:"client_status"`
	TotalAppointments   int            `json:"total_appointments"`
	AppointmentStatus   map[string]int `json:"appointment_status"`
	TotalConversations  int            `json:"total_conversations"`
	TotalTokens         int            `json:"total_tokens"`
	ConversationsPerDay map[string]int `json:"conversations_per_day"`
}

// Summarize computes totals, status breakdowns and per-day conversation
// counts for the trailing 7 days (today included) from collection
// snapshots.
func Summarize(clients []models.Client, appointments []models.Appointment, turns []models.ConversationTurn, now time.Time) Summary {
	s := Summary{
		TotalClients:        len(clients),
		ClientStatus:        map[string]int{},
		TotalAppointments:   len(appointments),
		AppointmentStatus:   map[string]int{},
		TotalConversations:  len(turns),
		ConversationsPerDay: map[string]int{},
	}

	for _, c := range clients {
		if c.Status != "" {
			s.ClientStatus[c.Status]++
		}
	}
	for _, a := range appointments {
		if a.Status != "" {
			s.AppointmentStatus[a.Status]++
		}
	}

	window := map[string]bool{}
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		window[day] = true
		s.ConversationsPerDay[day] = 0
	}

	for _, t := range turns {
		s.TotalTokens += t.Tokens
		if len(t.Timestamp) >= 10 {
			day := t.Timestamp[:10]
			if window[day] {
				s.ConversationsPerDay[day]++
			}
		}
	}

	return s
}
