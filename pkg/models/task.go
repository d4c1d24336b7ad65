package models

// TaskStatus represents where a task sits on the board.
type TaskStatus string

const (
	TaskStatusBacklog    TaskStatus = "backlog"
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

// Task is a unit of work inside a project. A task may link back to the
// requirement it implements and to a parent task when it is a subtask.
type Task struct {
	ID            string     `json:"id"`
	ProjectID     string     `json:"projectId"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        TaskStatus `json:"status"`
	Assignee      string     `json:"assignee,omitempty"`
	Priority      string     `json:"priority"`
	CreatedAt     string     `json:"createdAt"`
	RequirementID string     `json:"requirementId,omitempty"`
	ParentTaskID  string     `json:"parentTaskId,omitempty"`
}

// TaskCreate carries the caller-supplied fields for a new task.
// Zero values fall back to the store defaults.
type TaskCreate struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        TaskStatus `json:"status"`
	Assignee      string     `json:"assignee"`
	Priority      string     `json:"priority"`
	RequirementID string     `json:"requirementId"`
	ParentTaskID  string     `json:"parentTaskId"`
	CreatedAt     string     `json:"createdAt"`
}

// TaskPatch is a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title         *string     `json:"title"`
	Description   *string     `json:"description"`
	Status        *TaskStatus `json:"status"`
	Assignee      *string     `json:"assignee"`
	Priority      *string     `json:"priority"`
	RequirementID *string     `json:"requirementId"`
	ParentTaskID  *string     `json:"parentTaskId"`
}

// Apply writes the non-nil patch fields onto the task.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Assignee != nil {
		t.Assignee = *p.Assignee
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.RequirementID != nil {
		t.RequirementID = *p.RequirementID
	}
	if p.ParentTaskID != nil {
		t.ParentTaskID = *p.ParentTaskID
	}
}
