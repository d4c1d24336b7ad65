package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teamflow/pms/internal/store"
	"github.com/teamflow/pms/pkg/models"
)

func (s *Service) handleListTasks(w http.ResponseWriter, r *http.Request) {
	project, ok := s.projectFromPath(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.store.Tasks(project.ID))
}

func (s *Service) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	project, ok := s.projectFromPath(w, r)
	if !ok {
		return
	}
	var req models.TaskCreate
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}
	task := s.store.CreateTask(project.ID, req)
	writeJSON(w, http.StatusCreated, task)
}

func (s *Service) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var patch models.TaskPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	task, err := s.store.UpdateTask(chi.URLParam(r, "taskID"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Task not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Service) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if !s.store.DeleteTask(chi.URLParam(r, "taskID")) {
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
