package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamflow/pms/pkg/models"
)

func TestHealthIsOpen(t *testing.T) {
	svc := testService(t)

	var body map[string]any
	rec := doRequest(t, svc, http.MethodGet, "/api/v1/health", "", nil, &body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestLogin(t *testing.T) {
	svc := testService(t)

	var resp loginResponse
	rec := doRequest(t, svc, http.MethodPost, "/api/v1/auth/login", "",
		loginRequest{Email: "admin@example.com", Password: testPassword}, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bearer", resp.Token.TokenType)
	assert.Positive(t, resp.Token.ExpiresIn)
	assert.Equal(t, "u-admin", resp.User.ID)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestLoginRejections(t *testing.T) {
	svc := testService(t)

	tests := []struct {
		name     string
		email    string
		password string
		want     int
	}{
		{"wrong password", "admin@example.com", "nope", http.StatusUnauthorized},
		{"unknown email", "nobody@example.com", testPassword, http.StatusUnauthorized},
		{"inactive account", "gone@example.com", testPassword, http.StatusUnauthorized},
		{"missing password", "admin@example.com", "", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, svc, http.MethodPost, "/api/v1/auth/login", "",
				loginRequest{Email: tt.email, Password: tt.password}, nil)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestAuthRequired(t *testing.T) {
	svc := testService(t)

	rec := doRequest(t, svc, http.MethodGet, "/api/v1/projects/", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, svc, http.MethodGet, "/api/v1/projects/", "garbage-token", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe(t *testing.T) {
	svc := testService(t)
	token := login(t, svc, "dev@example.com")

	var user models.User
	rec := doRequest(t, svc, http.MethodGet, "/api/v1/auth/me", token, nil, &user)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-dev", user.ID)
}

func TestListProjectsVisibility(t *testing.T) {
	svc := testService(t)

	tests := []struct {
		email string
		want  []string
	}{
		{"admin@example.com", []string{"p1", "p2", "p3"}},
		{"pm@example.com", []string{"p1"}},
		{"dev@example.com", []string{"p1", "p2"}},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			token := login(t, svc, tt.email)
			var resp projectList
			rec := doRequest(t, svc, http.MethodGet, "/api/v1/projects/", token, nil, &resp)
			require.Equal(t, http.StatusOK, rec.Code)
			ids := make([]string, 0, len(resp.Items))
			for _, p := range resp.Items {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestGetProject(t *testing.T) {
	svc := testService(t)
	token := login(t, svc, "pm@example.com")

	var project models.Project
	rec := doRequest(t, svc, http.MethodGet, "/api/v1/projects/p1/", token, nil, &project)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Alpha", project.Name)

	rec = doRequest(t, svc, http.MethodGet, "/api/v1/projects/p3/", token, nil, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code, "visible projects only")

	rec = doRequest(t, svc, http.MethodGet, "/api/v1/projects/missing/", token, nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTaskLifecycle(t *testing.T) {
	svc := testService(t)
	token := login(t, svc, "admin@example.com")

	var created models.Task
	rec := doRequest(t, svc, http.MethodPost, "/api/v1/projects/p1/tasks", token,
		models.TaskCreate{Title: "new work"}, &created)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.TaskStatusTodo, created.Status)
	assert.Equal(t, "medium", created.Priority)

	status := models.TaskStatusDone
	var updated models.Task
	rec = doRequest(t, svc, http.MethodPut, "/api/v1/projects/p1/tasks/"+created.ID, token,
		map[string]any{"status": status}, &updated)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.TaskStatusDone, updated.Status)
	assert.Equal(t, "new work", updated.Title)

	rec = doRequest(t, svc, http.MethodDelete, "/api/v1/projects/p1/tasks/"+created.ID, token, nil, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, svc, http.MethodDelete, "/api/v1/projects/p1/tasks/"+created.ID, token, nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTaskCascades(t *testing.T) {
	svc := testService(t)
	token := login(t, svc, "admin@example.com")

	rec := doRequest(t, svc, http.MethodDelete, "/api/v1/projects/p1/tasks/t1", token, nil, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	var tasks []models.Task
	doRequest(t, svc, http.MethodGet, "/api/v1/projects/p1/tasks", token, nil, &tasks)
	for _, task := range tasks {
		assert.NotEqual(t, "t1", task.ID)
		assert.NotEqual(t, "t2", task.ID, "child removed with parent")
	}
}

func TestCreateTaskValidation(t *testing.T) {
	svc := testService(t)
	token := login(t, svc, "admin@example.com")

	rec := doRequest(t, svc, http.MethodPost, "/api/v1/projects/p1/tasks", token,
		map[string]any{"description": "no title"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, svc, http.MethodPost, "/api/v1/projects/missing/tasks", token,
		models.TaskCreate{Title: "x"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequirementLifecycle(t *testing.T) {
	svc := testService(t)
	token := login(t, svc, "admin@example.com")

	var created models.Requirement
	rec := doRequest(t, svc, http.MethodPost, "/api/v1/projects/p1/requirements", token,
		models.RequirementCreate{Title: "신규 요구사항"}, &created)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "REQ-003", created.Code)
	assert.Equal(t, models.RequirementStatusDefined, created.Status)

	title := "갱신된 요구사항"
	var updated models.Requirement
	rec = doRequest(t, svc, http.MethodPut, "/api/v1/projects/p1/requirements/"+created.ID, token,
		map[string]any{"title": title}, &updated)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, title, updated.Title)

	rec = doRequest(t, svc, http.MethodPut, "/api/v1/projects/p1/requirements/missing", token,
		map[string]any{"title": "x"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSprintAndBacklogCreation(t *testing.T) {
	svc := testService(t)
	token := login(t, svc, "admin@example.com")

	var sprint models.Sprint
	rec := doRequest(t, svc, http.MethodPost, "/api/v1/projects/p1/sprints", token,
		models.SprintCreate{Name: "Sprint 2", Capacity: 30}, &sprint)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, models.SprintStatusPlanning, sprint.Status)

	var item models.BacklogItem
	rec = doRequest(t, svc, http.MethodPost, "/api/v1/projects/p1/backlog-items", token,
		models.BacklogItemCreate{Title: "new item"}, &item)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "PB-202", item.ID)
	assert.Equal(t, "backlog", item.Status)
}

func TestRiskEndpoints(t *testing.T) {
	svc := testService(t)
	token := login(t, svc, "admin@example.com")

	var overview models.RiskOverview
	rec := doRequest(t, svc, http.MethodGet, "/api/v1/projects/p1/risk", token, nil, &overview)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 62.0, overview.Snapshot.OverallRiskScore)

	rec = doRequest(t, svc, http.MethodPost, "/api/v1/projects/p1/risk/refresh", token, nil, &overview)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.GreaterOrEqual(t, overview.Snapshot.OverallRiskScore, 0.0)
	assert.LessOrEqual(t, overview.Snapshot.OverallRiskScore, 100.0)
	assert.NotEmpty(t, overview.Snapshot.RefreshedAt)

	rec = doRequest(t, svc, http.MethodGet, "/api/v1/projects/p2/risk", token, nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, "no snapshot for p2")
}

func TestQualityEndpoint(t *testing.T) {
	svc := testService(t)
	token := login(t, svc, "admin@example.com")

	var overview models.QualityOverview
	rec := doRequest(t, svc, http.MethodGet, "/api/v1/projects/p1/quality", token, nil, &overview)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 74.2, overview.Metrics.TestCoverage)
	assert.Equal(t, 1000, overview.Analysis.TotalLines)

	rec = doRequest(t, svc, http.MethodGet, "/api/v1/projects/p2/quality", token, nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotifications(t *testing.T) {
	svc := testService(t)
	token := login(t, svc, "admin@example.com")

	var list notificationList
	rec := doRequest(t, svc, http.MethodGet, "/api/v1/projects/p1/notifications", token, nil, &list)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, list.Items, 1)
	assert.False(t, list.Items[0].Read)

	var updated models.Notification
	rec = doRequest(t, svc, http.MethodPost, "/api/v1/projects/p1/notifications/n1/read", token, nil, &updated)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, updated.Read)

	rec = doRequest(t, svc, http.MethodPost, "/api/v1/projects/p1/notifications/missing/read", token, nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBudgetOverview(t *testing.T) {
	svc := testService(t)
	token := login(t, svc, "admin@example.com")

	var overview models.BudgetOverview
	rec := doRequest(t, svc, http.MethodGet, "/api/v1/budgets", token, nil, &overview)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 150.0, overview.Summary.TotalPlanned)
	assert.Equal(t, 140.0, overview.Summary.TotalActual)
	assert.Equal(t, 2, overview.Summary.ProjectCount)
	assert.Len(t, overview.Trend, 1)
}

func TestExecutiveSnapshot(t *testing.T) {
	svc := testService(t)
	token := login(t, svc, "admin@example.com")

	var snap models.ExecutiveSnapshot
	rec := doRequest(t, svc, http.MethodGet, "/api/v1/executive", token, nil, &snap)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, snap.KPIs, 1)
	assert.Equal(t, "ROI", snap.KPIs[0].Title)
}

func TestIntegrations(t *testing.T) {
	svc := testService(t)
	token := login(t, svc, "admin@example.com")

	var integrations []models.Integration
	rec := doRequest(t, svc, http.MethodGet, "/api/v1/integrations/", token, nil, &integrations)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, integrations, 1)

	enabled := false
	var updated models.Integration
	rec = doRequest(t, svc, http.MethodPatch, "/api/v1/integrations/int-slack", token,
		map[string]any{"isEnabled": enabled}, &updated)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, updated.IsEnabled)

	var logs []models.IntegrationLog
	rec = doRequest(t, svc, http.MethodGet, "/api/v1/integrations/logs?integration_id=int-slack", token, nil, &logs)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, logs, 1)
	assert.Equal(t, "l1", logs[0].ID)
}

func TestChatEndpoint(t *testing.T) {
	svc := testService(t)
	token := login(t, svc, "admin@example.com")

	var result struct {
		Messages []struct {
			Type    string `json:"type"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	rec := doRequest(t, svc, http.MethodPost, "/api/v1/ai/chat", token,
		chatRequest{ProjectID: "p1", Message: "이번 스프린트 진행률은?"}, &result)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, result.Messages, 2)
	assert.Equal(t, "user", result.Messages[0].Type)
	assert.Contains(t, result.Messages[1].Content, "50%")

	rec = doRequest(t, svc, http.MethodPost, "/api/v1/ai/chat", token,
		chatRequest{ProjectID: "missing", Message: "hi"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportEndpoint(t *testing.T) {
	svc := testService(t)
	token := login(t, svc, "admin@example.com")

	var report struct {
		Summary  string `json:"summary"`
		Sections []struct {
			Title string `json:"title"`
		} `json:"sections"`
	}
	rec := doRequest(t, svc, http.MethodPost, "/api/v1/ai/reports", token,
		reportRequest{ProjectID: "p1", ReportType: "status"}, &report)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, report.Summary, "50%")
	require.NotEmpty(t, report.Sections)
	assert.Equal(t, "Progress Overview", report.Sections[0].Title)
}

func TestRequestBodyTooLarge(t *testing.T) {
	svc := testService(t)
	token := login(t, svc, "admin@example.com")

	huge := fmt.Sprintf(`{"title": %q}`, string(make([]byte, 2<<20)))
	rec := doRequest(t, svc, http.MethodPost, "/api/v1/projects/p1/tasks", token, huge, nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
