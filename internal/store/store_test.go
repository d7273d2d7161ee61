package store

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucyai/lucy-support-be/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := New(t.TempDir(), "")
	require.NoError(t, err)
	return st
}

func TestCreateClientGeneratesSequentialIDs(t *testing.T) {
	st := newTestStore(t)

	id1, err := st.CreateClient(models.Client{Name: "Abebe Balcha"})
	require.NoError(t, err)
	id2, err := st.CreateClient(models.Client{Name: "Sara Tesfaye"})
	require.NoError(t, err)

	assert.Equal(t, "CLT001", id1)
	assert.Equal(t, "CLT002", id2)
}

func TestCreateClientProbesPastManualInserts(t *testing.T) {
	st := newTestStore(t)

	_, err := st.CreateClient(models.Client{Name: "First"})
	require.NoError(t, err)

	// Insert CLT002 out of band, bypassing id generation.
	clients := st.Clients()
	clients = append(clients, models.Client{ID: "CLT002", Name: "Manual"})
	require.NoError(t, st.writeDoc(clientsFile, clients))

	id3, err := st.CreateClient(models.Client{Name: "Third"})
	require.NoError(t, err)
	id4, err := st.CreateClient(models.Client{Name: "Fourth"})
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, c := range st.Clients() {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
	assert.NotEqual(t, id3, id4)
	assert.NotEqual(t, "CLT002", id3)
	assert.NotEqual(t, "CLT002", id4)
}

func TestCreateClientSetsCreatedAt(t *testing.T) {
	st := newTestStore(t)

	_, err := st.CreateClient(models.Client{Name: "Abebe Balcha"})
	require.NoError(t, err)

	clients := st.Clients()
	require.Len(t, clients, 1)
	assert.Equal(t, time.Now().Format("2006-01-02"), clients[0].CreatedAt)
}

func TestUpdateClientMergesPartialFields(t *testing.T) {
	st := newTestStore(t)

	id, err := st.CreateClient(models.Client{Name: "Abebe", Email: "abebe@example.com", Status: "active"})
	require.NoError(t, err)

	status := "inactive"
	require.NoError(t, st.UpdateClient(id, models.ClientPatch{Status: &status}))

	clients := st.Clients()
	require.Len(t, clients, 1)
	assert.Equal(t, "inactive", clients[0].Status)
	assert.Equal(t, "Abebe", clients[0].Name, "untouched field must survive the merge")
	assert.Equal(t, "abebe@example.com", clients[0].Email)
}

func TestUpdateUnknownClientReturnsNotFound(t *testing.T) {
	st := newTestStore(t)
	name := "ghost"
	assert.ErrorIs(t, st.UpdateClient("CLT999", models.ClientPatch{Name: &name}), ErrNotFound)
}

func TestDeleteClientIsIdempotentFailing(t *testing.T) {
	st := newTestStore(t)

	id, err := st.CreateClient(models.Client{Name: "Abebe"})
	require.NoError(t, err)

	require.NoError(t, st.DeleteClient(id))
	assert.ErrorIs(t, st.DeleteClient(id), ErrNotFound, "second delete must fail, not succeed")
}

func TestCreateAppointmentHonorsCallerSuppliedID(t *testing.T) {
	st := newTestStore(t)

	id, err := st.CreateAppointment(models.Appointment{ID: "A101", Name: "Abebe Balcha"})
	require.NoError(t, err)
	assert.Equal(t, "A101", id)

	_, err = st.CreateAppointment(models.Appointment{ID: "A101", Name: "Duplicate"})
	assert.ErrorIs(t, err, ErrExists)

	generated, err := st.CreateAppointment(models.Appointment{Name: "Generated"})
	require.NoError(t, err)
	assert.Equal(t, "APT002", generated)
}

func TestAppointmentUpdateAndDeleteNotFound(t *testing.T) {
	st := newTestStore(t)
	status := "completed"
	assert.ErrorIs(t, st.UpdateAppointment("APT404", models.AppointmentPatch{Status: &status}), ErrNotFound)
	assert.ErrorIs(t, st.DeleteAppointment("APT404"), ErrNotFound)
}

func TestAppointmentClientIDNotValidated(t *testing.T) {
	st := newTestStore(t)

	// Dangling soft reference is allowed on purpose.
	id, err := st.CreateAppointment(models.Appointment{Name: "Checkup", ClientID: "CLT999"})
	require.NoError(t, err)

	appointments := st.Appointments()
	require.Len(t, appointments, 1)
	assert.Equal(t, id, appointments[0].ID)
	assert.Equal(t, "CLT999", appointments[0].ClientID)
}

func TestAppendTurnCapsCollectionAt500(t *testing.T) {
	st := newTestStore(t)

	for i := 0; i < 500; i++ {
		require.NoError(t, st.AppendTurn(models.ConversationTurn{
			ID:        fmt.Sprintf("turn-%d", i),
			UserQuery: fmt.Sprintf("q%d", i),
		}))
	}
	require.Len(t, st.Turns(), 500)

	require.NoError(t, st.AppendTurn(models.ConversationTurn{ID: "turn-500", UserQuery: "q500"}))

	turns := st.Turns()
	require.Len(t, turns, 500)
	assert.Equal(t, "turn-1", turns[0].ID, "exactly the oldest entry must be dropped")
	assert.Equal(t, "turn-500", turns[499].ID)
}

func TestSearchTurnsNewestFirstCaseInsensitive(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.AppendTurn(models.ConversationTurn{ID: "1", UserQuery: "Hello there"}))
	require.NoError(t, st.AppendTurn(models.ConversationTurn{ID: "2", BotReply: "hello from Lucy"}))
	require.NoError(t, st.AppendTurn(models.ConversationTurn{ID: "3", UserQuery: "unrelated"}))

	results := st.SearchTurns("HELLO", 100)
	require.Len(t, results, 2)
	assert.Equal(t, "2", results[0].ID, "newest match first")
	assert.Equal(t, "1", results[1].ID)

	capped := st.SearchTurns("", 2)
	assert.Len(t, capped, 2)
}

func TestMissingDocumentReadsAsEmpty(t *testing.T) {
	st := newTestStore(t)

	clients, state := st.ClientsState()
	assert.Empty(t, clients)
	assert.Equal(t, LoadMissing, state)
}

func TestCorruptDocumentReadsAsRecoveredEmpty(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(st.dir, clientsFile), []byte("{not json"), 0o644))

	clients, state := st.ClientsState()
	assert.Empty(t, clients)
	assert.Equal(t, LoadRecovered, state, "corrupt must be distinguishable from absent")
}

func TestBotConfigFallsBackToDefaults(t *testing.T) {
	st := newTestStore(t)

	cfg := st.BotConfig()
	assert.Equal(t, "Lucy AI", cfg.BotName)
	assert.Equal(t, "Hello!", cfg.WelcomeMessage)
	assert.Equal(t, "gemini-flash-latest", cfg.Model)
	assert.Equal(t, 0.7, cfg.Temperature)
	assert.Equal(t, "lucy-dev-12345", cfg.ClientAPIKey)

	// Corrupt config document also resolves to the default.
	require.NoError(t, os.WriteFile(filepath.Join(st.dir, configFile), []byte("!!"), 0o644))
	cfg, state := st.BotConfigState()
	assert.Equal(t, LoadRecovered, state)
	assert.Equal(t, "Lucy AI", cfg.BotName)
}

func TestClientKeyResolvesThroughProcessFallback(t *testing.T) {
	st, err := New(t.TempDir(), "env-key")
	require.NoError(t, err)

	// No stored key: the process-level CLIENT_API_KEY backs the config.
	assert.Equal(t, "env-key", st.BotConfig().ClientAPIKey)

	// A stored key always wins over the process-level one.
	key := "k1"
	cfg, err := st.MergeBotConfig(models.BotConfigPatch{ClientAPIKey: &key})
	require.NoError(t, err)
	assert.Equal(t, "k1", cfg.ClientAPIKey)
	assert.Equal(t, "k1", st.BotConfig().ClientAPIKey)

	// Merging unrelated fields must not bake the fallback into the doc.
	st2, err := New(t.TempDir(), "")
	require.NoError(t, err)
	name := "Selam Desk"
	_, err = st2.MergeBotConfig(models.BotConfigPatch{BotName: &name})
	require.NoError(t, err)
	st3, err := New(st2.dir, "late-key")
	require.NoError(t, err)
	assert.Equal(t, "late-key", st3.BotConfig().ClientAPIKey,
		"fallback is applied at read time, not persisted")
}

func TestMergeBotConfigKeepsUnpatchedFields(t *testing.T) {
	st := newTestStore(t)

	key := "k1"
	cfg, err := st.MergeBotConfig(models.BotConfigPatch{ClientAPIKey: &key})
	require.NoError(t, err)
	assert.Equal(t, "k1", cfg.ClientAPIKey)

	kb := "Opening hours: 9-5"
	cfg, err = st.MergeBotConfig(models.BotConfigPatch{KnowledgeBase: &kb})
	require.NoError(t, err)
	assert.Equal(t, "k1", cfg.ClientAPIKey, "earlier merge must survive")
	assert.Equal(t, "Opening hours: 9-5", cfg.KnowledgeBase)
	assert.Equal(t, "Lucy AI", cfg.BotName, "defaults fill unset fields")
}

func TestCreateUserConflict(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.CreateUser("admin@example.com", models.User{Password: "hash"}))
	assert.ErrorIs(t, st.CreateUser("admin@example.com", models.User{Password: "hash2"}), ErrExists)

	u, ok := st.GetUser("admin@example.com")
	require.True(t, ok)
	assert.Equal(t, "hash", u.Password)
}
