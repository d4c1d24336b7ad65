// Package models contains the domain records served by the TeamFlow API.
package models

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	// ProjectStatusPlanning means the project has been approved but work has not started.
	ProjectStatusPlanning ProjectStatus = "planning"
	// ProjectStatusActive means the project is being worked on.
	ProjectStatusActive ProjectStatus = "active"
	// ProjectStatusOnHold means the project has been temporarily paused.
	ProjectStatusOnHold ProjectStatus = "on-hold"
	// ProjectStatusCompleted means all project work has finished.
	ProjectStatusCompleted ProjectStatus = "completed"
)

// ProjectBudget is the planned/actual budget pair attached to a project.
type ProjectBudget struct {
	Planned  float64 `json:"planned"`
	Actual   float64 `json:"actual"`
	Currency string  `json:"currency"`
}

// ProjectKPI carries the headline delivery indicators for a project.
type ProjectKPI struct {
	OnTimeDelivery   float64 `json:"onTimeDelivery"`
	BudgetAdherence  float64 `json:"budgetAdherence"`
	QualityScore     float64 `json:"qualityScore"`
	TeamSatisfaction float64 `json:"teamSatisfaction"`
}

// Project is a managed project with its team and headline metrics.
type Project struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	OwnerID     string         `json:"ownerId"`
	ManagerID   string         `json:"managerId"`
	TeamMembers []string       `json:"teamMembers"`
	Department  string         `json:"department"`
	Status      ProjectStatus  `json:"status"`
	Priority    string         `json:"priority"`
	CreatedAt   string         `json:"createdAt"`
	Deadline    string         `json:"deadline,omitempty"`
	TaskCount   int            `json:"taskCount"`
	Budget      *ProjectBudget `json:"budget,omitempty"`
	KPIs        *ProjectKPI    `json:"kpis,omitempty"`
}

// Clone returns a deep copy of the project.
func (p Project) Clone() Project {
	out := p
	out.TeamMembers = cloneStrings(p.TeamMembers)
	if p.Budget != nil {
		b := *p.Budget
		out.Budget = &b
	}
	if p.KPIs != nil {
		k := *p.KPIs
		out.KPIs = &k
	}
	return out
}
