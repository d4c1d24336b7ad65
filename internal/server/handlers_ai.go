package server

import (
	"errors"
	"net/http"

	"github.com/teamflow/pms/internal/store"
)

type chatRequest struct {
	ProjectID string `json:"projectId"`
	Message   string `json:"message"`
}

type reportRequest struct {
	ProjectID  string `json:"projectId"`
	ReportType string `json:"reportType"`
	Audience   string `json:"audience"`
}

func (s *Service) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ProjectID == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "projectId and message are required")
		return
	}

	result, err := s.responder.Chat(req.ProjectID, req.Message)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Service) handleReport(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ProjectID == "" {
		writeError(w, http.StatusBadRequest, "projectId is required")
		return
	}

	report, err := s.responder.Report(req.ProjectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, report)
}
