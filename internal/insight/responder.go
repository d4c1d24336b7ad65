// Package insight implements the rule-based assistant behind the chat
// and report endpoints. Intent classification is a fixed, ordered list
// of keyword rules; the first matching rule produces the reply.
package insight

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/teamflow/pms/internal/store"
	"github.com/teamflow/pms/pkg/models"
)

// Message is one chat bubble. Type is "user" for the echoed question
// and "assistant" for generated replies.
type Message struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Content     string   `json:"content"`
	Timestamp   string   `json:"timestamp"`
	Suggestions []string `json:"suggestions,omitempty"`
	Data        any      `json:"data,omitempty"`
}

// ChatResult is the ordered message list returned for one question:
// the user echo first, then the assistant reply.
type ChatResult struct {
	Messages []Message `json:"messages"`
}

// Responder answers free-text questions about a project from its live
// store aggregates.
type Responder struct {
	store *store.Store
	now   func() time.Time
}

// NewResponder builds a responder reading from the given store.
func NewResponder(s *store.Store) *Responder {
	return &Responder{store: s, now: time.Now}
}

// projectContext carries the aggregates a rule handler may need.
type projectContext struct {
	project      models.Project
	tasks        []models.Task
	requirements []models.Requirement
	sprints      []models.Sprint
	risk         models.RiskSnapshot
	hasRisk      bool
	message      string
	lower        string
}

// rule pairs a keyword predicate with its reply builder. Handlers may
// decline (second return false), in which case evaluation falls through
// to the default reply instead of failing the request.
type rule struct {
	match  func(lower string) bool
	answer func(r *Responder, ctx projectContext) (Message, bool)
}

var chatRules = []rule{
	{matchAny("요구사항", "requirement"), (*Responder).latestRequirements},
	{matchAny("req-", "카카오"), (*Responder).requirementDetail},
	{matchAny("스프린트", "sprint", "진행"), (*Responder).sprintProgress},
	{matchAny("팀", "멤버", "담당자"), (*Responder).teamWorkload},
	{matchAny("리스크", "위험"), (*Responder).riskStatus},
}

func matchAny(keywords ...string) func(string) bool {
	return func(lower string) bool {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return false
	}
}

// Chat classifies the message against the rule table and returns the
// user echo plus the winning reply.
func (r *Responder) Chat(projectID, message string) (ChatResult, error) {
	ctx, err := r.loadContext(projectID)
	if err != nil {
		return ChatResult{}, err
	}
	ctx.message = message
	ctx.lower = strings.ToLower(message)

	reply, answered := Message{}, false
	for _, rl := range chatRules {
		if !rl.match(ctx.lower) {
			continue
		}
		if reply, answered = rl.answer(r, ctx); answered {
			break
		}
		// A matched rule that cannot resolve its subject degrades
		// to the default summary rather than answering nothing.
		break
	}
	if !answered {
		reply = r.taskSummary(ctx)
	}

	echo := Message{
		ID:        uuid.NewString(),
		Type:      "user",
		Content:   message,
		Timestamp: r.timestamp(),
	}
	return ChatResult{Messages: []Message{echo, reply}}, nil
}

func (r *Responder) loadContext(projectID string) (projectContext, error) {
	project, err := r.store.Project(projectID)
	if err != nil {
		return projectContext{}, err
	}
	ctx := projectContext{
		project:      project,
		tasks:        r.store.Tasks(projectID),
		requirements: r.store.Requirements(projectID),
		sprints:      r.store.Sprints(projectID),
	}
	if snap, err := r.store.RiskSnapshot(projectID); err == nil {
		ctx.risk = snap
		ctx.hasRisk = true
	}
	return ctx, nil
}

func (r *Responder) reply(content string, suggestions []string, data any) Message {
	return Message{
		ID:          uuid.NewString(),
		Type:        "assistant",
		Content:     content,
		Timestamp:   r.timestamp(),
		Suggestions: suggestions,
		Data:        data,
	}
}

func (r *Responder) timestamp() string {
	return r.now().UTC().Format(time.RFC3339)
}

// latestRequirements lists the three most recently updated
// requirements. The sort is stable so equal timestamps keep collection
// order.
func (r *Responder) latestRequirements(ctx projectContext) (Message, bool) {
	latest := make([]models.Requirement, len(ctx.requirements))
	copy(latest, ctx.requirements)
	sort.SliceStable(latest, func(i, j int) bool {
		return latest[i].UpdatedAt > latest[j].UpdatedAt
	})
	if len(latest) > 3 {
		latest = latest[:3]
	}

	lines := []string{fmt.Sprintf("최근 업데이트된 요구사항은 총 %d건입니다:", len(latest))}
	for _, req := range latest {
		lines = append(lines, fmt.Sprintf("• %s - %s (상태: %s)", req.Code, req.Title, req.Status))
	}
	return r.reply(
		strings.Join(lines, "\n"),
		[]string{"이번 스프린트 진행률은?", "고위험 작업 알려줘", "팀원별 작업 현황"},
		map[string]any{"requirements": latest},
	), true
}

// requirementDetail resolves a single requirement mentioned in the
// message, first by code substring, then by the 카카오 title fallback.
// Unresolved references decline so the default summary answers.
func (r *Responder) requirementDetail(ctx projectContext) (Message, bool) {
	var target *models.Requirement
	for i := range ctx.requirements {
		if strings.Contains(ctx.lower, strings.ToLower(ctx.requirements[i].Code)) {
			target = &ctx.requirements[i]
			break
		}
	}
	if target == nil {
		for i := range ctx.requirements {
			if strings.Contains(ctx.requirements[i].Title, "카카오") {
				target = &ctx.requirements[i]
				break
			}
		}
	}
	if target == nil {
		return Message{}, false
	}

	related := make([]models.Task, 0)
	completed := 0
	for _, task := range ctx.tasks {
		if task.RequirementID != target.ID && task.RequirementID != target.Code {
			continue
		}
		related = append(related, task)
		if task.Status == models.TaskStatusDone {
			completed++
		}
	}
	content := fmt.Sprintf(
		"%s (%s) 상태는 %s입니다.\n관련 작업 %d건 중 %d건이 완료되었습니다.",
		target.Code, target.Title, target.Status, len(related), completed,
	)
	return r.reply(
		content,
		[]string{"다른 요구사항 상태는?", "김AI개발님 업무 부하 확인", "테스트 일정 알려줘"},
		map[string]any{"tasks": related},
	), true
}

// sprintProgress reports the latest sprint's completion percentage. A
// sprint with zero capacity reports 0% rather than dividing by zero.
func (r *Responder) sprintProgress(ctx projectContext) (Message, bool) {
	if len(ctx.sprints) == 0 {
		return r.reply("이 프로젝트에는 아직 등록된 스프린트가 없습니다.",
			[]string{"팀원별 작업 현황", "위험 요소는?", "이번 주 마감 작업"}, nil), true
	}
	current := ctx.sprints[len(ctx.sprints)-1]
	progress := 0.0
	if current.Capacity > 0 {
		progress = float64(current.Completed) / float64(current.Capacity) * 100
	}
	content := fmt.Sprintf(
		"**%s** 진행 현황:\n- 진행률: %.0f%%\n- 시작일: %s / 종료일: %s\n- 목표: %s",
		current.Name, progress, current.StartDate, current.EndDate, current.Goal,
	)
	return r.reply(content, []string{"팀원별 작업 현황", "위험 요소는?", "이번 주 마감 작업"}, nil), true
}

// workloadTable is the fixed utilization series cycled over the sorted
// assignee list.
var workloadTable = []int{82, 65, 58, 55, 45, 72, 48}

func (r *Responder) teamWorkload(ctx projectContext) (Message, bool) {
	members := assignees(ctx.tasks)
	if len(members) == 0 {
		return r.reply("현재 할당된 팀원 정보를 찾을 수 없습니다.", nil, nil), true
	}

	lines := []string{"현재 팀 구성 및 업무 분배입니다:"}
	for i, member := range members {
		workload := workloadTable[i%len(workloadTable)]
		marker := "🟢"
		switch {
		case workload > 80:
			marker = "🔥"
		case workload > 60:
			marker = "🟡"
		}
		lines = append(lines, fmt.Sprintf("• %s: %d%% %s", member, workload, marker))
	}
	return r.reply(
		strings.Join(lines, "\n"),
		[]string{"업무 재분배 제안", "김AI개발님 작업 상세", "팀 생산성 분석"},
		nil,
	), true
}

func assignees(tasks []models.Task) []string {
	set := make(map[string]bool)
	for _, t := range tasks {
		if t.Assignee != "" {
			set[t.Assignee] = true
		}
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (r *Responder) riskStatus(ctx projectContext) (Message, bool) {
	if !ctx.hasRisk {
		return r.reply("현재 리스크 데이터가 준비되지 않았습니다.", nil, nil), true
	}
	content := fmt.Sprintf(
		"현재 종합 리스크 점수는 %s이며, 완료 확률은 %s%% 입니다.",
		formatScore(ctx.risk.OverallRiskScore), formatScore(ctx.risk.CompletionProbability),
	)
	return r.reply(content,
		[]string{"고위험 작업 목록", "리스크 완화 전략", "예상 완료일"},
		ctx.risk,
	), true
}

// taskSummary is the default reply when no rule claims the message.
func (r *Responder) taskSummary(ctx projectContext) Message {
	total, completed, inProgress, pending := taskCounts(ctx.tasks)
	content := fmt.Sprintf(
		"%s 프로젝트는 총 %d개의 작업 중 %d개 완료, 진행 중 %d개, 대기 %d개입니다. 필요한 내용을 질문해 주세요!",
		ctx.project.Name, total, completed, inProgress, pending,
	)
	return r.reply(content,
		[]string{"요구사항 현황 알려줘", "스프린트 진행률은?", "위험 요소 요약"},
		map[string]any{"completed": completed, "inProgress": inProgress, "pending": pending},
	)
}

func taskCounts(tasks []models.Task) (total, completed, inProgress, pending int) {
	total = len(tasks)
	for _, t := range tasks {
		switch t.Status {
		case models.TaskStatusDone:
			completed++
		case models.TaskStatusInProgress:
			inProgress++
		case models.TaskStatusTodo, models.TaskStatusBacklog:
			pending++
		}
	}
	return total, completed, inProgress, pending
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
