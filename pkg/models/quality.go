package models

// QualityMetrics is the current static-analysis snapshot for a project.
type QualityMetrics struct {
	CodeComplexity       float64 `json:"codeComplexity"`
	TestCoverage         float64 `json:"testCoverage"`
	BugDensity           float64 `json:"bugDensity"`
	DuplicateCodeRate    float64 `json:"duplicateCodeRate"`
	CodeSmells           int     `json:"codeSmells"`
	TechnicalDebt        float64 `json:"technicalDebt"`
	PerformanceScore     float64 `json:"performanceScore"`
	SecurityScore        float64 `json:"securityScore"`
	MaintainabilityIndex float64 `json:"maintainabilityIndex"`
}

// QualityTrendPoint is one sampled day of quality metrics.
type QualityTrendPoint struct {
	Date        string  `json:"date"`
	Complexity  float64 `json:"complexity"`
	Coverage    float64 `json:"coverage"`
	Bugs        float64 `json:"bugs"`
	Performance float64 `json:"performance"`
}

// FileQuality is the per-file analysis row.
type FileQuality struct {
	File       string  `json:"file"`
	Complexity float64 `json:"complexity"`
	Coverage   float64 `json:"coverage"`
	Issues     int     `json:"issues"`
	Size       int     `json:"size"`
	Risk       string  `json:"risk"`
}

// CodeAnalysisSummary describes the scope of the last analysis run.
type CodeAnalysisSummary struct {
	TotalLines      int    `json:"totalLines"`
	ProductionLines int    `json:"productionLines"`
	TestLines       int    `json:"testLines"`
	CommentLines    int    `json:"commentLines"`
	FilesAnalyzed   int    `json:"filesAnalyzed"`
	LastAnalysis    string `json:"lastAnalysis"`
}

// QualityOverview is the full quality dashboard payload for a project.
type QualityOverview struct {
	Metrics  QualityMetrics      `json:"metrics"`
	Trend    []QualityTrendPoint `json:"trend"`
	Files    []FileQuality       `json:"files"`
	Analysis CodeAnalysisSummary `json:"analysis"`
}
