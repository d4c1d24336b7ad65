package insight

import (
	"fmt"
	"strings"

	"github.com/teamflow/pms/pkg/models"
)

// ReportSection is one titled block of a generated report.
type ReportSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Report is the deterministic progress report for one project.
type Report struct {
	ProjectID   string          `json:"projectId"`
	Summary     string          `json:"summary"`
	Sections    []ReportSection `json:"sections"`
	GeneratedAt string          `json:"generatedAt"`
}

// Report builds the progress report: the overview section always, risk
// only when a snapshot exists, and up to five upcoming requirements.
func (r *Responder) Report(projectID string) (Report, error) {
	ctx, err := r.loadContext(projectID)
	if err != nil {
		return Report{}, err
	}

	total, completed, _, _ := taskCounts(ctx.tasks)
	rate := 0.0
	if total > 0 {
		rate = float64(completed) / float64(total) * 100
	}
	active := 0
	for _, req := range ctx.requirements {
		if req.Status != models.RequirementStatusDone {
			active++
		}
	}

	report := Report{
		ProjectID: ctx.project.ID,
		Summary: fmt.Sprintf(
			"%s 프로젝트는 현재 %.0f%% 진행 중이며 총 %d개의 작업 중 %d개가 완료되었습니다.",
			ctx.project.Name, rate, total, completed,
		),
		Sections: []ReportSection{{
			Title: "Progress Overview",
			Content: fmt.Sprintf(
				"- 총 작업 수: %d\n- 완료된 작업: %d\n- 진행 중인 요구사항: %d건",
				total, completed, active,
			),
		}},
		GeneratedAt: r.timestamp(),
	}

	if ctx.hasRisk {
		report.Sections = append(report.Sections, ReportSection{
			Title: "Risk & Mitigation",
			Content: fmt.Sprintf(
				"- 종합 리스크 점수: %s\n- 완료 확률: %s%%\n- 고위험 작업: %d건",
				formatScore(ctx.risk.OverallRiskScore),
				formatScore(ctx.risk.CompletionProbability),
				ctx.risk.HighRiskTasks,
			),
		})
	}

	upcoming := make([]string, 0, 5)
	for _, req := range ctx.requirements {
		if req.Status != models.RequirementStatusDefined && req.Status != models.RequirementStatusInProgress {
			continue
		}
		upcoming = append(upcoming, fmt.Sprintf("• %s: %s (%s)", req.Code, req.Title, req.Status))
		if len(upcoming) == 5 {
			break
		}
	}
	if len(upcoming) > 0 {
		report.Sections = append(report.Sections, ReportSection{
			Title:   "Next Focus Items",
			Content: strings.Join(upcoming, "\n"),
		})
	}
	return report, nil
}
