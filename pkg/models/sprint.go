package models

// SprintStatus represents the lifecycle state of a sprint.
type SprintStatus string

const (
	SprintStatusPlanning  SprintStatus = "planning"
	SprintStatusActive    SprintStatus = "active"
	SprintStatusCompleted SprintStatus = "completed"
)

// Sprint is a fixed time box of work inside a project. Capacity,
// commitment and completed are story points.
type Sprint struct {
	ID         string       `json:"id"`
	ProjectID  string       `json:"projectId"`
	Name       string       `json:"name"`
	Goal       string       `json:"goal"`
	Status     SprintStatus `json:"status"`
	StartDate  string       `json:"startDate"`
	EndDate    string       `json:"endDate"`
	Capacity   int          `json:"capacity"`
	Commitment int          `json:"commitment"`
	Completed  int          `json:"completed"`
	CreatedAt  string       `json:"createdAt"`
}

// SprintCreate carries the caller-supplied fields for a new sprint.
type SprintCreate struct {
	Name       string       `json:"name"`
	Goal       string       `json:"goal"`
	Status     SprintStatus `json:"status"`
	StartDate  string       `json:"startDate"`
	EndDate    string       `json:"endDate"`
	Capacity   int          `json:"capacity"`
	Commitment int          `json:"commitment"`
	Completed  int          `json:"completed"`
}
