package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teamflow/pms/internal/store"
	"github.com/teamflow/pms/pkg/models"
)

type projectList struct {
	Items []models.Project `json:"items"`
}

// handleListProjects returns the projects visible to the caller.
func (s *Service) handleListProjects(w http.ResponseWriter, r *http.Request) {
	visible := store.VisibleProjects(s.store.Projects(), currentUser(r))
	writeJSON(w, http.StatusOK, projectList{Items: visible})
}

// handleGetProject returns one project. A project that exists but is
// outside the caller's visibility answers 403, not 404.
func (s *Service) handleGetProject(w http.ResponseWriter, r *http.Request) {
	project, ok := s.projectFromPath(w, r)
	if !ok {
		return
	}
	if !projectVisibleTo(project, currentUser(r)) {
		writeError(w, http.StatusForbidden, "Not enough permissions")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// projectFromPath loads the {projectID} path parameter, answering 404
// when the project does not exist.
func (s *Service) projectFromPath(w http.ResponseWriter, r *http.Request) (models.Project, bool) {
	project, err := s.store.Project(chi.URLParam(r, "projectID"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
		} else {
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return models.Project{}, false
	}
	return project, true
}

func projectVisibleTo(project models.Project, user models.User) bool {
	visible := store.VisibleProjects([]models.Project{project}, user)
	return len(visible) == 1
}
