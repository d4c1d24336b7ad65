package store

import "github.com/teamflow/pms/pkg/models"

// Integrations returns a copy of all configured integrations.
func (s *Store) Integrations() []models.Integration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Integration, 0, len(s.data.Integrations))
	for _, i := range s.data.Integrations {
		out = append(out, i.Clone())
	}
	return out
}

// UpdateIntegration applies a partial update to one integration.
func (s *Store) UpdateIntegration(id string, patch models.IntegrationPatch) (models.Integration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Integrations {
		if s.data.Integrations[i].ID == id {
			patch.Apply(&s.data.Integrations[i])
			return s.data.Integrations[i].Clone(), nil
		}
	}
	return models.Integration{}, ErrNotFound
}

// IntegrationLogs returns sync logs, optionally filtered by
// integration id. An empty id means all logs.
func (s *Store) IntegrationLogs(integrationID string) []models.IntegrationLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.IntegrationLog, 0)
	for _, l := range s.data.IntegrationLogs {
		if integrationID != "" && l.IntegrationID != integrationID {
			continue
		}
		out = append(out, l.Clone())
	}
	return out
}
