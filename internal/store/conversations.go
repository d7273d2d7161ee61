package store

import (
	"strings"

	"github.com/lucyai/lucy-support-be/internal/models"
)

func (s *Store) loadTurns() ([]models.ConversationTurn, LoadState) {
	var turns []models.ConversationTurn
	state := s.readDoc(turnsFile, &turns)
	if state != LoadOK {
		return nil, state
	}
	return turns, LoadOK
}

// Turns returns a snapshot of the conversation collection, oldest first.
func (s *Store) Turns() []models.ConversationTurn {
	s.turnMu.Lock()
	defer s.turnMu.Unlock()
	turns, _ := s.loadTurns()
	return turns
}

// TurnsState returns the snapshot together with its load state.
func (s *Store) TurnsState() ([]models.ConversationTurn, LoadState) {
	s.turnMu.Lock()
	defer s.turnMu.Unlock()
	return s.loadTurns()
}

// AppendTurn appends the turn and trims the collection to the most recent
// maxTurns entries before persisting. Turns are never mutated afterwards.
func (s *Store) AppendTurn(turn models.ConversationTurn) error {
	s.turnMu.Lock()
	defer s.turnMu.Unlock()

	turns, _ := s.loadTurns()
	turns = append(turns, turn)
	if len(turns) > maxTurns {
		turns = turns[len(turns)-maxTurns:]
	}
	return s.writeDoc(turnsFile, turns)
}

// SearchTurns returns turns whose query or reply contains q
// (case-insensitive), newest first, capped at limit. An empty q matches
// everything.
func (s *Store) SearchTurns(q string, limit int) []models.ConversationTurn {
	s.turnMu.Lock()
	turns, _ := s.loadTurns()
	s.turnMu.Unlock()

	q = strings.ToLower(q)
	matched := make([]models.ConversationTurn, 0, len(turns))
	for i := len(turns) - 1; i >= 0; i-- {
		t := turns[i]
		if q == "" ||
			strings.Contains(strings.ToLower(t.UserQuery), q) ||
			strings.Contains(strings.ToLower(t.BotReply), q) {
			matched = append(matched, t)
			if limit > 0 && len(matched) >= limit {
				break
			}
		}
	}
	return matched
}
