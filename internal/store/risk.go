package store

import (
	"math/rand/v2"

	"github.com/teamflow/pms/pkg/models"
)

// RiskSnapshot returns the risk snapshot for one project.
func (s *Store) RiskSnapshot(projectID string) (models.RiskSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.data.Risk[projectID]
	if !ok {
		return models.RiskSnapshot{}, ErrNotFound
	}
	return snap, nil
}

// RiskInsights returns the generated findings for one project. Missing
// entries yield an empty list, not an error.
func (s *Store) RiskInsights(projectID string) []models.RiskInsight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	insights := s.data.RiskInsights[projectID]
	out := make([]models.RiskInsight, len(insights))
	copy(out, insights)
	return out
}

// RefreshRisk simulates a fresh model run by nudging the score with a
// small symmetric jitter. The risk score and completion probability
// move in opposite directions and both stay inside [0, 100]. The
// updated snapshot is stored.
func (s *Store) RefreshRisk(projectID string) (models.RiskSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.data.Risk[projectID]
	if !ok {
		return models.RiskSnapshot{}, ErrNotFound
	}
	jitter := rand.Float64()*4 - 2
	snap.OverallRiskScore = clamp(snap.OverallRiskScore+jitter, 0, 100)
	snap.CompletionProbability = clamp(snap.CompletionProbability-jitter, 0, 100)
	snap.RefreshedAt = s.timestamp()
	s.data.Risk[projectID] = snap
	return snap, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
