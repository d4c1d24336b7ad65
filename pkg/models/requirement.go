package models

// RequirementStatus represents the refinement state of a requirement.
type RequirementStatus string

const (
	RequirementStatusDefined    RequirementStatus = "defined"
	RequirementStatusInProgress RequirementStatus = "in-progress"
	RequirementStatusDone       RequirementStatus = "done"
)

// Requirement is a product requirement tracked per project. Code is the
// human-facing identifier ("REQ-001") that tasks and backlog items refer to.
type Requirement struct {
	ID             string            `json:"id"`
	Code           string            `json:"reqIdString"`
	TrackingNumber string            `json:"trackingNumber,omitempty"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Status         RequirementStatus `json:"status"`
	ProjectID      string            `json:"projectId"`
	CreatedAt      string            `json:"createdAt"`
	UpdatedAt      string            `json:"updatedAt"`
}

// RequirementCreate carries the caller-supplied fields for a new requirement.
type RequirementCreate struct {
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Status         RequirementStatus `json:"status"`
	TrackingNumber string            `json:"trackingNumber"`
}

// RequirementPatch is a partial update. Nil fields are left untouched.
type RequirementPatch struct {
	Title          *string            `json:"title"`
	Description    *string            `json:"description"`
	Status         *RequirementStatus `json:"status"`
	TrackingNumber *string            `json:"trackingNumber"`
}

// Apply writes the non-nil patch fields onto the requirement.
func (p RequirementPatch) Apply(r *Requirement) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.TrackingNumber != nil {
		r.TrackingNumber = *p.TrackingNumber
	}
}
