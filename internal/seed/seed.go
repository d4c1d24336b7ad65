// Package seed provides the demo dataset the in-memory store starts from.
package seed

import (
	_ "embed"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/teamflow/pms/pkg/models"
)

//go:embed seed.json
var seedJSON []byte

// Snapshot is a complete dataset for the store: every collection, the
// per-project mappings and the executive dashboard.
type Snapshot struct {
	Users           []models.User
	Projects        []models.Project
	Tasks           []models.Task
	Requirements    []models.Requirement
	Sprints         []models.Sprint
	BacklogItems    []models.BacklogItem
	BudgetItems     []models.BudgetItem
	BudgetTrend     []models.BudgetTrendPoint
	Integrations    []models.Integration
	IntegrationLogs []models.IntegrationLog

	Risk           map[string]models.RiskSnapshot
	RiskInsights   map[string][]models.RiskInsight
	QualityMetrics map[string]models.QualityMetrics
	QualityTrends  map[string][]models.QualityTrendPoint
	FileQuality    map[string][]models.FileQuality
	CodeAnalysis   map[string]models.CodeAnalysisSummary
	Notifications  map[string][]models.Notification

	Executive models.ExecutiveSnapshot
}

// Loader produces a fresh Snapshot. The store calls it once at startup
// and again on every reset, so each call must return data the caller
// owns outright.
type Loader func() (Snapshot, error)

// fileUser mirrors models.User but exposes the bcrypt hash, which the
// API type deliberately never serializes.
type fileUser struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Department   string   `json:"department"`
	Projects     []string `json:"projects"`
	IsActive     bool     `json:"is_active"`
	PasswordHash string   `json:"passwordHash"`
}

type fileSnapshot struct {
	Users           []fileUser                              `json:"users"`
	Projects        []models.Project                        `json:"projects"`
	Tasks           []models.Task                           `json:"tasks"`
	Requirements    []models.Requirement                    `json:"requirements"`
	Sprints         []models.Sprint                         `json:"sprints"`
	BacklogItems    []models.BacklogItem                    `json:"backlogItems"`
	BudgetItems     []models.BudgetItem                     `json:"budgetItems"`
	BudgetTrend     []models.BudgetTrendPoint               `json:"budgetTrend"`
	Integrations    []models.Integration                    `json:"integrations"`
	IntegrationLogs []models.IntegrationLog                 `json:"integrationLogs"`
	Risk            map[string]models.RiskSnapshot          `json:"risk"`
	RiskInsights    map[string][]models.RiskInsight         `json:"riskInsights"`
	QualityMetrics  map[string]models.QualityMetrics        `json:"qualityMetrics"`
	QualityTrends   map[string][]models.QualityTrendPoint   `json:"qualityTrends"`
	FileQuality     map[string][]models.FileQuality         `json:"fileQuality"`
	CodeAnalysis    map[string]models.CodeAnalysisSummary   `json:"codeAnalysis"`
	Notifications   map[string][]models.Notification        `json:"notifications"`
	Executive       models.ExecutiveSnapshot                `json:"executive"`
}

// Default decodes the embedded dataset. Decoding on every call keeps
// reset semantics simple: the returned snapshot shares nothing with
// previous calls.
func Default() (Snapshot, error) {
	return FromJSON(seedJSON)
}

// FromJSON decodes a snapshot from raw JSON. Tests use it to build
// small purpose-built datasets.
func FromJSON(data []byte) (Snapshot, error) {
	var fs fileSnapshot
	if err := json.Unmarshal(data, &fs); err != nil {
		return Snapshot{}, fmt.Errorf("decode seed data: %w", err)
	}

	snap := Snapshot{
		Projects:        fs.Projects,
		Tasks:           fs.Tasks,
		Requirements:    fs.Requirements,
		Sprints:         fs.Sprints,
		BacklogItems:    fs.BacklogItems,
		BudgetItems:     fs.BudgetItems,
		BudgetTrend:     fs.BudgetTrend,
		Integrations:    fs.Integrations,
		IntegrationLogs: fs.IntegrationLogs,
		Risk:            fs.Risk,
		RiskInsights:    fs.RiskInsights,
		QualityMetrics:  fs.QualityMetrics,
		QualityTrends:   fs.QualityTrends,
		FileQuality:     fs.FileQuality,
		CodeAnalysis:    fs.CodeAnalysis,
		Notifications:   fs.Notifications,
		Executive:       fs.Executive,
	}

	snap.Users = make([]models.User, 0, len(fs.Users))
	for _, u := range fs.Users {
		snap.Users = append(snap.Users, models.User{
			ID:           u.ID,
			Email:        u.Email,
			Name:         u.Name,
			Role:         models.Role(u.Role),
			Department:   u.Department,
			Projects:     u.Projects,
			IsActive:     u.IsActive,
			PasswordHash: u.PasswordHash,
		})
	}
	return snap, nil
}
