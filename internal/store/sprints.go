package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/teamflow/pms/pkg/models"
)

// Sprints returns the sprints of one project, in creation order.
func (s *Store) Sprints(projectID string) []models.Sprint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Sprint, 0)
	for _, sp := range s.data.Sprints {
		if sp.ProjectID == projectID {
			out = append(out, sp)
		}
	}
	return out
}

// CreateSprint appends a new sprint.
func (s *Store) CreateSprint(projectID string, in models.SprintCreate) models.Sprint {
	s.mu.Lock()
	defer s.mu.Unlock()

	sprint := models.Sprint{
		ID:         uuid.NewString(),
		ProjectID:  projectID,
		Name:       in.Name,
		Goal:       in.Goal,
		Status:     in.Status,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Capacity:   in.Capacity,
		Commitment: in.Commitment,
		Completed:  in.Completed,
		CreatedAt:  s.timestamp(),
	}
	if sprint.Status == "" {
		sprint.Status = models.SprintStatusPlanning
	}
	s.data.Sprints = append(s.data.Sprints, sprint)
	return sprint
}

// BacklogItems returns the backlog of one project.
func (s *Store) BacklogItems(projectID string) []models.BacklogItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.BacklogItem, 0)
	for _, b := range s.data.BacklogItems {
		if b.ProjectID == projectID {
			out = append(out, b.Clone())
		}
	}
	return out
}

// CreateBacklogItem appends a new backlog item. Ids follow the "PB-"
// sequence owned by the store.
func (s *Store) CreateBacklogItem(projectID string, in models.BacklogItemCreate) models.BacklogItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.backlogSeq++
	item := models.BacklogItem{
		ID:                 fmt.Sprintf("PB-%d", 200+s.backlogSeq),
		ProjectID:          projectID,
		Title:              in.Title,
		Description:        in.Description,
		StoryPoints:        in.StoryPoints,
		Priority:           in.Priority,
		Status:             in.Status,
		Assignee:           in.Assignee,
		RequirementID:      in.RequirementID,
		SprintID:           in.SprintID,
		Type:               in.Type,
		AcceptanceCriteria: in.AcceptanceCriteria,
		CreatedAt:          s.timestamp(),
	}
	if item.Priority == "" {
		item.Priority = "medium"
	}
	if item.Status == "" {
		item.Status = "backlog"
	}
	if item.Type == "" {
		item.Type = "task"
	}
	if item.AcceptanceCriteria == nil {
		item.AcceptanceCriteria = []string{}
	}
	s.data.BacklogItems = append(s.data.BacklogItems, item)
	return item.Clone()
}
