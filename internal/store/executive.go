package store

import "github.com/teamflow/pms/pkg/models"

// ExecutiveSnapshot returns the portfolio-wide dashboard payload.
func (s *Store) ExecutiveSnapshot() models.ExecutiveSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Executive.Clone()
}
