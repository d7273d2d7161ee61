package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lucyai/lucy-support-be/internal/core/llm"
	"github.com/lucyai/lucy-support-be/internal/core/prompt"
	"github.com/lucyai/lucy-support-be/internal/core/usage"
	"github.com/lucyai/lucy-support-be/internal/models"
	"github.com/lucyai/lucy-support-be/internal/shared/utils"
	"github.com/lucyai/lucy-support-be/internal/store"
)

// SupportService runs one support exchange end to end: snapshot the
// records, compose the prompt, call the model, log usage, persist the
// turn.
type SupportService struct {
	store    *store.Store
	gateway  *llm.Gateway
	activity *usage.Log
}

func NewSupportService(st *store.Store, gateway *llm.Gateway, activity *usage.Log) *SupportService {
	return &SupportService{store: st, gateway: gateway, activity: activity}
}

type SupportRequest struct {
	UserQuery string
	Language  string
	Context   string
	Sector    string
	SessionID string
	CallerKey string
}

// Handle always produces a Result; model failures come back as sentinel
// replies and turn persistence failures are logged, never surfaced.
func (s *SupportService) Handle(ctx context.Context, req SupportRequest) llm.Result {
	cfg := s.store.BotConfig()
	clients := s.store.Clients()
	appointments := s.store.Appointments()

	composed := prompt.Build(cfg, clients, appointments, req.Context, req.UserQuery, req.Sector)
	result := s.gateway.Ask(ctx, composed, req.Language, cfg.Model, cfg.Temperature)

	// Without a caller-supplied session id, continuity across turns is
	// entirely the caller's responsibility.
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	s.activity.Record(usage.Entry{
		Key:      req.CallerKey,
		Endpoint: "support",
		Payload: map[string]interface{}{
			"query":      req.UserQuery,
			"reply":      result.Reply,
			"tokens":     result.Usage.TotalTokens,
			"session_id": sessionID,
		},
	})

	turn := models.ConversationTurn{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		UserQuery: req.UserQuery,
		BotReply:  result.Reply,
		Language:  req.Language,
		Sector:    req.Sector,
		Tokens:    result.Usage.TotalTokens,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if err := s.store.AppendTurn(turn); err != nil {
		utils.LogError("failed to persist conversation turn", err, map[string]interface{}{
			"session_id": sessionID,
		})
	}

	return result
}
