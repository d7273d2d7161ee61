package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucyai/lucy-support-be/internal/models"
)

func TestBuildAlwaysIncludesCoreAndAnchor(t *testing.T) {
	out := Build(models.BotConfig{}, nil, nil, "", "Hello", "general")

	assert.True(t, strings.HasPrefix(out, "SYSTEM INSTRUCTIONS:"), "core instructions must lead")
	assert.True(t, strings.HasSuffix(out, "LUCY:"), "response anchor must close the prompt")
	assert.Contains(t, out, "USER QUERY: Hello")
	assert.Contains(t, out, "LANGUAGE RULE:")
}

func TestBuildOmitsBlankSections(t *testing.T) {
	out := Build(models.BotConfig{}, nil, nil, "", "Hi", "general")

	assert.NotContains(t, out, "ADDITIONAL CONTEXT:")
	assert.NotContains(t, out, "KNOWLEDGE BASE:")
	assert.NotContains(t, out, "CONVERSATION HISTORY:")
	assert.NotContains(t, out, "CLIENTS:")
	assert.NotContains(t, out, "APPOINTMENTS:")
}

func TestBuildIncludesPopulatedSectionsInOrder(t *testing.T) {
	cfg := models.BotConfig{
		SystemPrompt:  "Be extra formal.",
		KnowledgeBase: "We open at 9am.",
	}
	clients := []models.Client{{ID: "CLT001", Name: "Abebe Balcha"}}
	appointments := []models.Appointment{{ID: "APT001", ClientID: "CLT001", Name: "Abebe Balcha", Medications: []string{"amoxicillin"}}}

	out := Build(cfg, clients, appointments, "user: hi\nassistant: selam", "Where is my appointment?", "health")

	require.Contains(t, out, "CLIENTS:")
	require.Contains(t, out, "APPOINTMENTS:")
	require.Contains(t, out, "ADDITIONAL CONTEXT: Be extra formal.")
	require.Contains(t, out, "KNOWLEDGE BASE: We open at 9am.")
	require.Contains(t, out, "CONVERSATION HISTORY:\nuser: hi")
	require.Contains(t, out, "SECTOR: health")
	require.Contains(t, out, "amoxicillin")

	// Fixed section order.
	idx := func(marker string) int { return strings.Index(out, marker) }
	assert.Less(t, idx("SYSTEM INSTRUCTIONS:"), idx("CLIENTS:"))
	assert.Less(t, idx("CLIENTS:"), idx("APPOINTMENTS:"))
	assert.Less(t, idx("APPOINTMENTS:"), idx("ADDITIONAL CONTEXT:"))
	assert.Less(t, idx("ADDITIONAL CONTEXT:"), idx("LANGUAGE RULE:"))
	assert.Less(t, idx("LANGUAGE RULE:"), idx("KNOWLEDGE BASE:"))
	assert.Less(t, idx("KNOWLEDGE BASE:"), idx("CONVERSATION HISTORY:"))
	assert.Less(t, idx("CONVERSATION HISTORY:"), idx("SECTOR:"))
	assert.Less(t, idx("SECTOR:"), idx("USER QUERY:"))
	assert.Less(t, idx("USER QUERY:"), idx("LUCY:"))
}

func TestBuildIsDeterministic(t *testing.T) {
	cfg := models.BotConfig{KnowledgeBase: "kb"}
	clients := []models.Client{{ID: "CLT001", Name: "A"}, {ID: "CLT002", Name: "B"}}

	first := Build(cfg, clients, nil, "history", "query", "general")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Build(cfg, clients, nil, "history", "query", "general"))
	}
}
