package store

import "github.com/lucyai/lucy-support-be/internal/models"

func (s *Store) loadUsers() (map[string]models.User, LoadState) {
	var users map[string]models.User
	state := s.readDoc(usersFile, &users)
	if state != LoadOK || users == nil {
		return map[string]models.User{}, state
	}
	return users, state
}

// GetUser looks up an operator account by email.
func (s *Store) GetUser(email string) (models.User, bool) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	users, _ := s.loadUsers()
	u, ok := users[email]
	return u, ok
}

// CreateUser stores a new operator account; ErrExists when the email is
// already registered.
func (s *Store) CreateUser(email string, user models.User) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	users, _ := s.loadUsers()
	if _, ok := users[email]; ok {
		return ErrExists
	}
	users[email] = user
	return s.writeDoc(usersFile, users)
}
