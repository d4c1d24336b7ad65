package store

import (
	"github.com/google/uuid"

	"github.com/teamflow/pms/pkg/models"
)

// Tasks returns the tasks of one project.
func (s *Store) Tasks(projectID string) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Task, 0)
	for _, t := range s.data.Tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// Task returns the task with the given id.
func (s *Store) Task(id string) (models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.data.Tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, ErrNotFound
}

// CreateTask appends a new task, filling defaults for omitted fields.
func (s *Store) CreateTask(projectID string, in models.TaskCreate) models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{
		ID:            uuid.NewString(),
		ProjectID:     projectID,
		Title:         in.Title,
		Description:   in.Description,
		Status:        in.Status,
		Assignee:      in.Assignee,
		Priority:      in.Priority,
		CreatedAt:     in.CreatedAt,
		RequirementID: in.RequirementID,
		ParentTaskID:  in.ParentTaskID,
	}
	if task.Status == "" {
		task.Status = models.TaskStatusTodo
	}
	if task.Priority == "" {
		task.Priority = "medium"
	}
	if task.CreatedAt == "" {
		task.CreatedAt = s.timestamp()
	}
	s.data.Tasks = append(s.data.Tasks, task)
	return task
}

// UpdateTask applies a partial update to the task with the given id.
func (s *Store) UpdateTask(id string, patch models.TaskPatch) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Tasks {
		if s.data.Tasks[i].ID == id {
			patch.Apply(&s.data.Tasks[i])
			return s.data.Tasks[i], nil
		}
	}
	return models.Task{}, ErrNotFound
}

// DeleteTask removes the task and, one level deep, any task whose
// parentTaskId points at it. Reports whether anything was removed.
func (s *Store) DeleteTask(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.data.Tasks[:0]
	removed := false
	for _, t := range s.data.Tasks {
		if t.ID == id || t.ParentTaskID == id {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	s.data.Tasks = kept
	return removed
}
