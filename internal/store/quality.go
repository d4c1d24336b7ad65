package store

import "github.com/teamflow/pms/pkg/models"

// QualityMetrics returns the current analysis snapshot for one project.
func (s *Store) QualityMetrics(projectID string) (models.QualityMetrics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.data.QualityMetrics[projectID]
	if !ok {
		return models.QualityMetrics{}, ErrNotFound
	}
	return m, nil
}

// QualityTrends returns the sampled metric history for one project.
func (s *Store) QualityTrends(projectID string) []models.QualityTrendPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	trend := s.data.QualityTrends[projectID]
	out := make([]models.QualityTrendPoint, len(trend))
	copy(out, trend)
	return out
}

// FileQuality returns the per-file analysis rows for one project.
func (s *Store) FileQuality(projectID string) []models.FileQuality {
	s.mu.RLock()
	defer s.mu.RUnlock()
	files := s.data.FileQuality[projectID]
	out := make([]models.FileQuality, len(files))
	copy(out, files)
	return out
}

// CodeAnalysis returns the last analysis run summary for one project.
func (s *Store) CodeAnalysis(projectID string) (models.CodeAnalysisSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.data.CodeAnalysis[projectID]
	if !ok {
		return models.CodeAnalysisSummary{}, ErrNotFound
	}
	return a, nil
}
