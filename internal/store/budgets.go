package store

import "github.com/teamflow/pms/pkg/models"

// BudgetItems returns a copy of all budget lines.
func (s *Store) BudgetItems() []models.BudgetItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.BudgetItem, len(s.data.BudgetItems))
	copy(out, s.data.BudgetItems)
	return out
}

// BudgetTrend returns the monthly planned/actual series.
func (s *Store) BudgetTrend() []models.BudgetTrendPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.BudgetTrendPoint, len(s.data.BudgetTrend))
	copy(out, s.data.BudgetTrend)
	return out
}

// BudgetOverview aggregates all budget lines into the dashboard payload.
func (s *Store) BudgetOverview() models.BudgetOverview {
	items := s.BudgetItems()

	var summary models.BudgetSummary
	projects := make(map[string]bool)
	for _, item := range items {
		summary.TotalPlanned += item.PlannedAmount
		summary.TotalActual += item.ActualAmount
		summary.TotalApproved += item.ApprovedAmount
		summary.TotalRemaining += item.RemainingAmount
		projects[item.ProjectID] = true
	}
	summary.ProjectCount = len(projects)
	if summary.TotalApproved > 0 {
		summary.UtilizationRate = summary.TotalActual / summary.TotalApproved * 100
	}
	if summary.TotalPlanned > 0 {
		summary.VariancePercentage = (summary.TotalActual - summary.TotalPlanned) / summary.TotalPlanned * 100
	}

	return models.BudgetOverview{
		Summary: summary,
		Items:   items,
		Trend:   s.BudgetTrend(),
	}
}
