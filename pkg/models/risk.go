package models

// RiskSnapshot is the current delivery-risk assessment for a project.
// Scores and probabilities are percentages in [0, 100].
type RiskSnapshot struct {
	PredictedCompletionDate string  `json:"predictedCompletionDate"`
	DelayDays               int     `json:"delayDays"`
	OverallRiskScore        float64 `json:"overallRiskScore"`
	CompletionProbability   float64 `json:"completionProbability"`
	TotalTasks              int     `json:"totalTasks"`
	CompletedTasks          int     `json:"completedTasks"`
	HighRiskTasks           int     `json:"highRiskTasks"`
	TeamUtilization         float64 `json:"teamUtilization"`
	RefreshedAt             string  `json:"refreshedAt,omitempty"`
}

// RiskInsight is one generated finding attached to a risk snapshot.
type RiskInsight struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Actionable  bool   `json:"actionable"`
}

// RiskOverview is the snapshot plus its insights, as served to clients.
type RiskOverview struct {
	Snapshot RiskSnapshot  `json:"snapshot"`
	Insights []RiskInsight `json:"insights"`
}
