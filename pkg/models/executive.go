package models

// KPI is a single executive-level indicator with its target.
type KPI struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Value       float64 `json:"value"`
	Target      float64 `json:"target"`
	Unit        string  `json:"unit"`
	Trend       string  `json:"trend"`
	TrendValue  float64 `json:"trendValue"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// PortfolioEntry is one project's row in the executive portfolio view.
type PortfolioEntry struct {
	ProjectID   string  `json:"projectId"`
	ProjectName string  `json:"projectName"`
	Department  string  `json:"department"`
	Budget      float64 `json:"budget"`
	Spent       float64 `json:"spent"`
	Completion  float64 `json:"completion"`
	Status      string  `json:"status"`
	ROI         float64 `json:"roi"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
}

// TrendPoint is one month of portfolio-wide revenue and cost.
type TrendPoint struct {
	Month      string  `json:"month"`
	Revenue    float64 `json:"revenue"`
	Cost       float64 `json:"cost"`
	Projects   int     `json:"projects"`
	Completion float64 `json:"completion"`
}

// ExecutiveSnapshot is the whole executive dashboard payload.
type ExecutiveSnapshot struct {
	KPIs      []KPI            `json:"kpis"`
	Portfolio []PortfolioEntry `json:"portfolio"`
	Trend     []TrendPoint     `json:"trend"`
}

// Clone returns a deep copy of the snapshot.
func (s ExecutiveSnapshot) Clone() ExecutiveSnapshot {
	out := ExecutiveSnapshot{}
	if s.KPIs != nil {
		out.KPIs = make([]KPI, len(s.KPIs))
		copy(out.KPIs, s.KPIs)
	}
	if s.Portfolio != nil {
		out.Portfolio = make([]PortfolioEntry, len(s.Portfolio))
		copy(out.Portfolio, s.Portfolio)
	}
	if s.Trend != nil {
		out.Trend = make([]TrendPoint, len(s.Trend))
		copy(out.Trend, s.Trend)
	}
	return out
}
