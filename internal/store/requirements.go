package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/teamflow/pms/pkg/models"
)

// Requirements returns the requirements of one project.
func (s *Store) Requirements(projectID string) []models.Requirement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Requirement, 0)
	for _, r := range s.data.Requirements {
		if r.ProjectID == projectID {
			out = append(out, r)
		}
	}
	return out
}

// CreateRequirement appends a new requirement. The human-readable code
// comes from the store-wide sequence counter, never from collection
// length.
func (s *Store) CreateRequirement(projectID string, in models.RequirementCreate) models.Requirement {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reqSeq++
	now := s.timestamp()
	req := models.Requirement{
		ID:             uuid.NewString(),
		Code:           fmt.Sprintf("REQ-%03d", s.reqSeq),
		TrackingNumber: in.TrackingNumber,
		Title:          in.Title,
		Description:    in.Description,
		Status:         in.Status,
		ProjectID:      projectID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.Status == "" {
		req.Status = models.RequirementStatusDefined
	}
	s.data.Requirements = append(s.data.Requirements, req)
	return req
}

// UpdateRequirement applies a partial update and bumps updatedAt.
func (s *Store) UpdateRequirement(id string, patch models.RequirementPatch) (models.Requirement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Requirements {
		if s.data.Requirements[i].ID == id {
			patch.Apply(&s.data.Requirements[i])
			s.data.Requirements[i].UpdatedAt = s.timestamp()
			return s.data.Requirements[i], nil
		}
	}
	return models.Requirement{}, ErrNotFound
}
