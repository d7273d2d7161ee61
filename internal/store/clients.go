package store

import (
	"time"

	"github.com/lucyai/lucy-support-be/internal/models"
)

const clientIDPrefix = "CLT"

func (s *Store) loadClients() ([]models.Client, LoadState) {
	var clients []models.Client
	state := s.readDoc(clientsFile, &clients)
	if state != LoadOK {
		return nil, state
	}
	return clients, LoadOK
}

// Clients returns a snapshot of the client collection.
func (s *Store) Clients() []models.Client {
	s.clientMu.Lock()
	defer s.clientMu.Unlock()
	clients, _ := s.loadClients()
	return clients
}

// ClientsState returns the snapshot together with its load state.
func (s *Store) ClientsState() ([]models.Client, LoadState) {
	s.clientMu.Lock()
	defer s.clientMu.Unlock()
	return s.loadClients()
}

// CreateClient stores the client under a freshly probed CLT id, sets
// created_at to today and returns the new id.
func (s *Store) CreateClient(c models.Client) (string, error) {
	s.clientMu.Lock()
	defer s.clientMu.Unlock()

	clients, _ := s.loadClients()
	taken := make(map[string]bool, len(clients))
	for _, existing := range clients {
		taken[existing.ID] = true
	}

	c.ID = nextID(clientIDPrefix, taken, len(clients))
	c.CreatedAt = time.Now().Format("2006-01-02")
	clients = append(clients, c)

	if err := s.writeDoc(clientsFile, clients); err != nil {
		return "", err
	}
	return c.ID, nil
}

// UpdateClient shallow-merges the patch into the stored record.
func (s *Store) UpdateClient(id string, patch models.ClientPatch) error {
	s.clientMu.Lock()
	defer s.clientMu.Unlock()

	clients, _ := s.loadClients()
	for i := range clients {
		if clients[i].ID == id {
			patch.Apply(&clients[i])
			return s.writeDoc(clientsFile, clients)
		}
	}
	return ErrNotFound
}

// DeleteClient removes the record permanently, no tombstone.
func (s *Store) DeleteClient(id string) error {
	s.clientMu.Lock()
	defer s.clientMu.Unlock()

	clients, _ := s.loadClients()
	for i := range clients {
		if clients[i].ID == id {
			clients = append(clients[:i], clients[i+1:]...)
			return s.writeDoc(clientsFile, clients)
		}
	}
	return ErrNotFound
}
