package models

// ConversationTurn is one support exchange. Turns are append-only; the
// store keeps only the most recent 500.
type ConversationTurn struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`
	UserQuery string `json:"user_query"`
	BotReply  string `json:"bot_reply"`
	Language  string `json:"language"`
	Sector    string `json:"sector"`
	Tokens    int    `json:"tokens"`
	Timestamp string `json:"timestamp"`
}
