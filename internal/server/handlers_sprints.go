package server

import (
	"net/http"

	"github.com/teamflow/pms/pkg/models"
)

func (s *Service) handleListSprints(w http.ResponseWriter, r *http.Request) {
	project, ok := s.projectFromPath(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.store.Sprints(project.ID))
}

func (s *Service) handleCreateSprint(w http.ResponseWriter, r *http.Request) {
	project, ok := s.projectFromPath(w, r)
	if !ok {
		return
	}
	var req models.SprintCreate
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}
	sprint := s.store.CreateSprint(project.ID, req)
	writeJSON(w, http.StatusCreated, sprint)
}

func (s *Service) handleListBacklogItems(w http.ResponseWriter, r *http.Request) {
	project, ok := s.projectFromPath(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.store.BacklogItems(project.ID))
}

func (s *Service) handleCreateBacklogItem(w http.ResponseWriter, r *http.Request) {
	project, ok := s.projectFromPath(w, r)
	if !ok {
		return
	}
	var req models.BacklogItemCreate
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}
	item := s.store.CreateBacklogItem(project.ID, req)
	writeJSON(w, http.StatusCreated, item)
}
