package models

// BacklogItem is a product backlog entry. Items keep the "PB-" prefixed
// identifier from the planning tool they were imported from.
type BacklogItem struct {
	ID                 string   `json:"id"`
	ProjectID          string   `json:"projectId"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	StoryPoints        int      `json:"storyPoints"`
	Priority           string   `json:"priority"`
	Status             string   `json:"status"`
	Assignee           string   `json:"assignee,omitempty"`
	RequirementID      string   `json:"requirementId,omitempty"`
	SprintID           string   `json:"sprintId,omitempty"`
	Type               string   `json:"type"`
	AcceptanceCriteria []string `json:"acceptance_criteria"`
	CreatedAt          string   `json:"createdAt"`
}

// Clone returns a deep copy of the backlog item.
func (b BacklogItem) Clone() BacklogItem {
	out := b
	out.AcceptanceCriteria = cloneStrings(b.AcceptanceCriteria)
	return out
}

// BacklogItemCreate carries the caller-supplied fields for a new backlog item.
type BacklogItemCreate struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	StoryPoints        int      `json:"storyPoints"`
	Priority           string   `json:"priority"`
	Status             string   `json:"status"`
	Assignee           string   `json:"assignee"`
	RequirementID      string   `json:"requirementId"`
	SprintID           string   `json:"sprintId"`
	Type               string   `json:"type"`
	AcceptanceCriteria []string `json:"acceptance_criteria"`
}
