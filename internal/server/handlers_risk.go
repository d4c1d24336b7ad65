package server

import (
	"errors"
	"net/http"

	"github.com/teamflow/pms/internal/store"
	"github.com/teamflow/pms/pkg/models"
)

func (s *Service) handleGetRisk(w http.ResponseWriter, r *http.Request) {
	project, ok := s.projectFromPath(w, r)
	if !ok {
		return
	}
	snapshot, err := s.store.RiskSnapshot(project.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Risk snapshot not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, models.RiskOverview{
		Snapshot: snapshot,
		Insights: s.store.RiskInsights(project.ID),
	})
}

func (s *Service) handleRefreshRisk(w http.ResponseWriter, r *http.Request) {
	project, ok := s.projectFromPath(w, r)
	if !ok {
		return
	}
	snapshot, err := s.store.RefreshRisk(project.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Risk snapshot not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, models.RiskOverview{
		Snapshot: snapshot,
		Insights: s.store.RiskInsights(project.ID),
	})
}
