package store

import (
	"strings"

	"github.com/teamflow/pms/pkg/models"
)

// UserByEmail looks a user up by email, case-insensitively.
func (s *Store) UserByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.data.Users {
		if strings.EqualFold(u.Email, email) {
			return u.Clone(), nil
		}
	}
	return models.User{}, ErrNotFound
}

// User returns the user with the given id.
func (s *Store) User(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.data.Users {
		if u.ID == id {
			return u.Clone(), nil
		}
	}
	return models.User{}, ErrNotFound
}

// Users returns a copy of all users.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.data.Users))
	for _, u := range s.data.Users {
		out = append(out, u.Clone())
	}
	return out
}
