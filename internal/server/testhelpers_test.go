package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/teamflow/pms/internal/auth"
	"github.com/teamflow/pms/internal/config"
	"github.com/teamflow/pms/internal/seed"
	"github.com/teamflow/pms/internal/store"
	"github.com/teamflow/pms/pkg/models"
)

// testPassword is the plaintext behind every fixture account. Hashes
// are generated per run so the fixtures never depend on static vectors.
const testPassword = "correct-horse"

func fixtureLoader(t *testing.T) seed.Loader {
	t.Helper()
	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)

	return func() (seed.Snapshot, error) {
		return seed.Snapshot{
			Users: []models.User{
				{ID: "u-admin", Email: "admin@example.com", Name: "Admin", Role: models.RoleSystemAdmin, IsActive: true, PasswordHash: hash},
				{ID: "u-pm", Email: "pm@example.com", Name: "Manager", Role: models.RoleProjectManager, IsActive: true, PasswordHash: hash},
				{ID: "u-dev", Email: "dev@example.com", Name: "Dev", Role: models.RoleDeveloper, IsActive: true, PasswordHash: hash},
				{ID: "u-gone", Email: "gone@example.com", Name: "Gone", Role: models.RoleDeveloper, IsActive: false, PasswordHash: hash},
			},
			Projects: []models.Project{
				{ID: "p1", Name: "Alpha", ManagerID: "u-pm", TeamMembers: []string{"u-dev"}},
				{ID: "p2", Name: "Beta", ManagerID: "u-other", TeamMembers: []string{"u-dev"}},
				{ID: "p3", Name: "Gamma", ManagerID: "u-other", TeamMembers: []string{"u-x"}},
			},
			Tasks: []models.Task{
				{ID: "t1", ProjectID: "p1", Title: "parent", Status: models.TaskStatusInProgress, Assignee: "김AI개발"},
				{ID: "t2", ProjectID: "p1", Title: "child", Status: models.TaskStatusTodo, ParentTaskID: "t1"},
				{ID: "t3", ProjectID: "p1", Title: "done", Status: models.TaskStatusDone},
				{ID: "t4", ProjectID: "p1", Title: "also done", Status: models.TaskStatusDone},
			},
			Requirements: []models.Requirement{
				{ID: "r1", Code: "REQ-001", ProjectID: "p1", Title: "카카오 로그인", Status: models.RequirementStatusInProgress, UpdatedAt: "2025-05-01T00:00:00Z"},
				{ID: "r2", Code: "REQ-002", ProjectID: "p1", Title: "검색", Status: models.RequirementStatusDefined, UpdatedAt: "2025-05-02T00:00:00Z"},
			},
			Sprints: []models.Sprint{
				{ID: "s1", ProjectID: "p1", Name: "Sprint 1", Capacity: 10, Completed: 5, StartDate: "2025-05-01", EndDate: "2025-05-14", Goal: "half"},
			},
			BacklogItems: []models.BacklogItem{
				{ID: "PB-201", ProjectID: "p1", Title: "seeded", AcceptanceCriteria: []string{"one"}},
			},
			BudgetItems: []models.BudgetItem{
				{ID: "b1", ProjectID: "p1", PlannedAmount: 100, ActualAmount: 80, ApprovedAmount: 100, RemainingAmount: 20},
				{ID: "b2", ProjectID: "p2", PlannedAmount: 50, ActualAmount: 60, ApprovedAmount: 50, RemainingAmount: -10},
			},
			BudgetTrend: []models.BudgetTrendPoint{{Month: "2025-05", Planned: 150, Actual: 140}},
			Integrations: []models.Integration{
				{ID: "int-slack", Name: "Slack", IsEnabled: true, Features: []string{"alerts"}, Config: map[string]any{"channel": "#general"}},
			},
			IntegrationLogs: []models.IntegrationLog{
				{ID: "l1", IntegrationID: "int-slack", Message: "ok"},
				{ID: "l2", IntegrationID: "int-other", Message: "other"},
			},
			Risk: map[string]models.RiskSnapshot{
				"p1": {OverallRiskScore: 62, CompletionProbability: 71, HighRiskTasks: 2},
			},
			QualityMetrics: map[string]models.QualityMetrics{
				"p1": {TestCoverage: 74.2},
			},
			CodeAnalysis: map[string]models.CodeAnalysisSummary{
				"p1": {TotalLines: 1000},
			},
			Notifications: map[string][]models.Notification{
				"p1": {{ID: "n1", Title: "hello"}},
			},
			Executive: models.ExecutiveSnapshot{
				KPIs: []models.KPI{{ID: "kpi-1", Title: "ROI", Value: 14.2}},
			},
		}, nil
	}
}

func testService(t *testing.T) *Service {
	t.Helper()
	st, err := store.New(fixtureLoader(t))
	require.NoError(t, err)

	cfg := config.Default()
	cfg.TokenSecret = "test-secret"
	cfg.TokenTTL = time.Hour
	return NewService("test", cfg, st)
}

// doRequest runs a request through the full router and decodes the
// JSON response body into out when out is non-nil.
func doRequest(t *testing.T, svc *Service, method, path, token string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	svc.router.ServeHTTP(rec, req)

	if out != nil && rec.Code < http.StatusMultipleChoices {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

// login authenticates a fixture account and returns its bearer token.
func login(t *testing.T, svc *Service, email string) string {
	t.Helper()
	var resp loginResponse
	rec := doRequest(t, svc, http.MethodPost, "/api/v1/auth/login", "",
		loginRequest{Email: email, Password: testPassword}, &resp)
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())
	require.NotEmpty(t, resp.Token.AccessToken)
	return resp.Token.AccessToken
}
