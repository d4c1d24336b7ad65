package models

// BudgetItem is a single budget line for a project and department.
type BudgetItem struct {
	ID              string  `json:"id"`
	ProjectID       string  `json:"projectId"`
	ProjectName     string  `json:"projectName"`
	Department      string  `json:"department"`
	Category        string  `json:"category"`
	PlannedAmount   float64 `json:"plannedAmount"`
	ActualAmount    float64 `json:"actualAmount"`
	ApprovedAmount  float64 `json:"approvedAmount"`
	RemainingAmount float64 `json:"remainingAmount"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	Status          string  `json:"status"`
	Description     string  `json:"description"`
	ManMonths       float64 `json:"manMonths"`
	HourlyRate      float64 `json:"hourlyRate"`
	ActualHours     float64 `json:"actualHours"`
}

// BudgetSummary aggregates all budget items into portfolio totals.
type BudgetSummary struct {
	TotalPlanned       float64 `json:"totalPlanned"`
	TotalActual        float64 `json:"totalActual"`
	TotalApproved      float64 `json:"totalApproved"`
	TotalRemaining     float64 `json:"totalRemaining"`
	UtilizationRate    float64 `json:"utilizationRate"`
	VariancePercentage float64 `json:"variancePercentage"`
	ProjectCount       int     `json:"projectCount"`
}

// BudgetTrendPoint is one month of planned versus actual spend.
type BudgetTrendPoint struct {
	Month   string  `json:"month"`
	Planned float64 `json:"planned"`
	Actual  float64 `json:"actual"`
}

// BudgetOverview is the full budget dashboard payload.
type BudgetOverview struct {
	Summary BudgetSummary      `json:"summary"`
	Items   []BudgetItem       `json:"items"`
	Trend   []BudgetTrendPoint `json:"trend"`
}
