package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teamflow/pms/internal/store"
	"github.com/teamflow/pms/pkg/models"
)

func (s *Service) handleGetBudgets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.BudgetOverview())
}

func (s *Service) handleGetExecutive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ExecutiveSnapshot())
}

func (s *Service) handleListIntegrations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Integrations())
}

func (s *Service) handleUpdateIntegration(w http.ResponseWriter, r *http.Request) {
	var patch models.IntegrationPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	integration, err := s.store.UpdateIntegration(chi.URLParam(r, "integrationID"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Integration not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, integration)
}

func (s *Service) handleListIntegrationLogs(w http.ResponseWriter, r *http.Request) {
	integrationID := r.URL.Query().Get("integration_id")
	writeJSON(w, http.StatusOK, s.store.IntegrationLogs(integrationID))
}
