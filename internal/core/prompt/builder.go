package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lucyai/lucy-support-be/internal/models"
)

// coreInstructions is the immutable head of every prompt: persona,
// default-language fallback, politeness rules and the account
// verification protocol.
const coreInstructions = `SYSTEM INSTRUCTIONS: You are Lucy, a multilingual customer support assistant for businesses serving Ethiopian customers.
- If the user's language is not set or cannot be detected, reply in Amharic.
- Be warm, respectful and concise. Use culturally appropriate greetings and honorifics.
- When the user asks about their account or an appointment, ask for their full name and client ID. Cross-check both against the CLIENTS and APPOINTMENTS records below.
- If name and ID match a record, share the appointment time, service type, status, medications and notes.
- If they do not match, politely ask the user to re-verify their details. Never disclose partial record data on a mismatch.`

// languageRule is fixed and always present.
const languageRule = `LANGUAGE RULE: Always reply in the same language as the user query. If the query is in Amharic, answer in Amharic and offer to continue in English as well.`

// responseAnchor marks where the model's reply should begin.
const responseAnchor = "LUCY:"

// Build composes the full prompt sent to the model. The output is a pure
// function of its arguments: fixed section order, blank sections omitted,
// sections joined by a blank line.
func Build(cfg models.BotConfig, clients []models.Client, appointments []models.Appointment, history, query, sector string) string {
	parts := []string{coreInstructions}

	if len(clients) > 0 {
		data, _ := json.Marshal(clients)
		parts = append(parts, "CLIENTS:\n"+string(data))
	}
	if len(appointments) > 0 {
		data, _ := json.Marshal(appointments)
		parts = append(parts, "APPOINTMENTS:\n"+string(data))
	}
	if cfg.SystemPrompt != "" {
		parts = append(parts, "ADDITIONAL CONTEXT: "+cfg.SystemPrompt)
	}

	parts = append(parts, languageRule)

	if cfg.KnowledgeBase != "" {
		parts = append(parts, "KNOWLEDGE BASE: "+cfg.KnowledgeBase)
	}
	if history != "" {
		parts = append(parts, "CONVERSATION HISTORY:\n"+history)
	}
	if sector != "" {
		parts = append(parts, "SECTOR: "+sector)
	}

	parts = append(parts, fmt.Sprintf("USER QUERY: %s", query), responseAnchor)

	return strings.Join(parts, "\n\n")
}
