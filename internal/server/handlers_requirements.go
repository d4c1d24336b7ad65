package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teamflow/pms/internal/store"
	"github.com/teamflow/pms/pkg/models"
)

func (s *Service) handleListRequirements(w http.ResponseWriter, r *http.Request) {
	project, ok := s.projectFromPath(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.store.Requirements(project.ID))
}

func (s *Service) handleCreateRequirement(w http.ResponseWriter, r *http.Request) {
	project, ok := s.projectFromPath(w, r)
	if !ok {
		return
	}
	var req models.RequirementCreate
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}
	requirement := s.store.CreateRequirement(project.ID, req)
	writeJSON(w, http.StatusCreated, requirement)
}

func (s *Service) handleUpdateRequirement(w http.ResponseWriter, r *http.Request) {
	var patch models.RequirementPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	requirement, err := s.store.UpdateRequirement(chi.URLParam(r, "requirementID"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Requirement not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, requirement)
}
