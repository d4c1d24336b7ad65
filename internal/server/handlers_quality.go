package server

import (
	"errors"
	"net/http"

	"github.com/teamflow/pms/internal/store"
	"github.com/teamflow/pms/pkg/models"
)

func (s *Service) handleGetQuality(w http.ResponseWriter, r *http.Request) {
	project, ok := s.projectFromPath(w, r)
	if !ok {
		return
	}

	metrics, err := s.store.QualityMetrics(project.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Quality metrics not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	analysis, err := s.store.CodeAnalysis(project.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Code analysis summary not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, models.QualityOverview{
		Metrics:  metrics,
		Trend:    s.store.QualityTrends(project.ID),
		Files:    s.store.FileQuality(project.ID),
		Analysis: analysis,
	})
}
