package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teamflow/pms/internal/store"
	"github.com/teamflow/pms/pkg/models"
)

type notificationList struct {
	Items []models.Notification `json:"items"`
}

func (s *Service) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	project, ok := s.projectFromPath(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, notificationList{Items: s.store.Notifications(project.ID)})
}

func (s *Service) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	project, ok := s.projectFromPath(w, r)
	if !ok {
		return
	}
	notification, err := s.store.MarkNotificationRead(project.ID, chi.URLParam(r, "notificationID"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Notification not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, notification)
}
