package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/luminus-backend/internal/clients/huggingface"
	"github.com/yungbote/luminus-backend/internal/derive"
	"github.com/yungbote/luminus-backend/internal/pkg/logger"
	"github.com/yungbote/luminus-backend/internal/repos"
	"github.com/yungbote/luminus-backend/internal/types"
)

type Recommendation struct {
	ID           string `json:"id"`
	Type         string `json:"type"` // warning | recognition | growth | support
	Priority     string `json:"priority"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	EmployeeID   string `json:"employeeId,omitempty"`
	EmployeeName string `json:"employeeName,omitempty"`
	ActionURL    string `json:"actionUrl"`
}

type AtRiskEmployee struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Role           string   `json:"role"`
	Avatar         string   `json:"avatar,omitempty"`
	BurnoutScore   int      `json:"burnoutScore"`
	RiskFactors    []string `json:"riskFactors"`
	Recommendation string   `json:"recommendation"`
	ChatSentiment  string   `json:"chatSentiment,omitempty"`
}

type InsightsReport struct {
	Recommendations []Recommendation  `json:"recommendations"`
	AtRiskEmployees []AtRiskEmployee  `json:"atRiskEmployees"`
	HiddenGems      []EmployeeSummary `json:"hiddenGems"`
}

type InsightsService interface {
	Report(ctx context.Context, ownerID uuid.UUID) (*InsightsReport, error)
}

type insightsService struct {
	employeeRepo repos.EmployeeRepo
	oracle       huggingface.Client
	log          *logger.Logger
}

// NewInsightsService takes an optional classification oracle; a nil oracle
// means every enrichment uses the deterministic fallback.
func NewInsightsService(employeeRepo repos.EmployeeRepo, oracle huggingface.Client, baseLog *logger.Logger) InsightsService {
	serviceLog := baseLog.With("service", "InsightsService")
	return &insightsService{employeeRepo: employeeRepo, oracle: oracle, log: serviceLog}
}

func (s *insightsService) Report(ctx context.Context, ownerID uuid.UUID) (*InsightsReport, error) {
	records, err := s.employeeRepo.GetByOwner(ctx, nil, ownerID, repos.EmployeeFilter{})
	if err != nil {
		return nil, err
	}

	report := BuildInsightsReport(records)
	s.enrichSentiment(ctx, records, report.AtRiskEmployees)
	return report, nil
}

// BuildInsightsReport derives recommendations, at-risk entries, and hidden
// gems from one owner's roster. Pure so it can be tested without a store.
func BuildInsightsReport(records []*types.Employee) *InsightsReport {
	report := &InsightsReport{
		Recommendations: []Recommendation{},
		AtRiskEmployees: []AtRiskEmployee{},
		HiddenGems:      []EmployeeSummary{},
	}

	highBurnout := 0
	for _, e := range records {
		id := e.ID.String()
		chats := e.DecodeChatLogs()
		commits := e.DecodeCommitLogs()
		burnout := derive.AdjustedBurnoutScore(e.BurnoutCategory, commits, chats)

		if e.BurnoutCategory == types.BurnoutHigh {
			highBurnout++
		}
		if e.BurnoutCategory == types.BurnoutHigh && e.ImpactScore >= 80 {
			report.HiddenGems = append(report.HiddenGems, summaryFromRecord(e))
		}

		if e.BurnoutCategory == types.BurnoutHigh || burnout >= 70 {
			report.Recommendations = append(report.Recommendations, Recommendation{
				ID:           "rec-burnout-" + id,
				Type:         "warning",
				Priority:     "high",
				Title:        fmt.Sprintf("Burnout Risk Alert: %s", e.Name),
				Description:  fmt.Sprintf("%s shows signs of burnout with %d late night commits and %d unused vacation days. Consider workload redistribution.", e.Name, e.LateNightCommits, e.VacationDaysUnused),
				EmployeeID:   id,
				EmployeeName: e.Name,
				ActionURL:    "/personnel/" + id,
			})
		}

		if e.ImpactScore >= 85 && e.PeerReviewScore >= 4.5 {
			report.Recommendations = append(report.Recommendations, Recommendation{
				ID:           "rec-recognition-" + id,
				Type:         "recognition",
				Priority:     "medium",
				Title:        fmt.Sprintf("Recognize %s's Contributions", e.Name),
				Description:  fmt.Sprintf("%s has an impact score of %d%% and peer review score of %.1f. Consider public recognition or promotion discussion.", e.Name, e.ImpactScore, e.PeerReviewScore),
				EmployeeID:   id,
				EmployeeName: e.Name,
				ActionURL:    "/personnel/" + id,
			})
		}

		if e.ImpactScore < 50 && e.AvgTaskComplexity < 2.5 {
			report.Recommendations = append(report.Recommendations, Recommendation{
				ID:           "rec-growth-" + id,
				Type:         "growth",
				Priority:     "medium",
				Title:        fmt.Sprintf("Growth Opportunity: %s", e.Name),
				Description:  fmt.Sprintf("%s primarily handles low-complexity tasks. Consider assigning mentorship or stretch assignments to accelerate growth.", e.Name),
				EmployeeID:   id,
				EmployeeName: e.Name,
				ActionURL:    "/personnel/" + id,
			})
		}

		if e.BurnoutCategory == types.BurnoutHigh || burnout >= 60 {
			var factors []string
			if e.LateNightCommits > 5 {
				factors = append(factors, fmt.Sprintf("%d late night commits", e.LateNightCommits))
			}
			if e.WeekendActivityLog > 3 {
				factors = append(factors, fmt.Sprintf("%d weekend activities", e.WeekendActivityLog))
			}
			if e.VacationDaysUnused > 8 {
				factors = append(factors, fmt.Sprintf("%d unused vacation days", e.VacationDaysUnused))
			}
			if e.SentimentTrend < 0 {
				factors = append(factors, "Declining sentiment trend")
			}
			recommendation := "Monitor closely and offer support"
			if len(factors) > 2 {
				recommendation = "Immediate intervention recommended"
			}
			report.AtRiskEmployees = append(report.AtRiskEmployees, AtRiskEmployee{
				ID:             id,
				Name:           e.Name,
				Role:           e.Role,
				Avatar:         e.Avatar,
				BurnoutScore:   burnout,
				RiskFactors:    factors,
				Recommendation: recommendation,
			})
		}
	}

	if highBurnout >= 2 {
		report.Recommendations = append(report.Recommendations, Recommendation{
			ID:          "rec-team-burnout",
			Type:        "support",
			Priority:    "high",
			Title:       "Team-Wide Burnout Concern",
			Description: fmt.Sprintf("%d team members show high burnout risk. Consider team wellness initiatives, workload review, or hiring additional resources.", highBurnout),
			ActionURL:   "/analytics",
		})
	}

	priorityOrder := map[string]int{"high": 0, "medium": 1, "low": 2}
	sort.SliceStable(report.Recommendations, func(i, j int) bool {
		return priorityOrder[report.Recommendations[i].Priority] < priorityOrder[report.Recommendations[j].Priority]
	})
	sort.SliceStable(report.AtRiskEmployees, func(i, j int) bool {
		return report.AtRiskEmployees[i].BurnoutScore > report.AtRiskEmployees[j].BurnoutScore
	})
	return report
}

// enrichSentiment classifies each at-risk employee's recent chat text through
// the oracle, fanning out with a bounded group. Oracle failures degrade to
// the neutral fallback and never fail the report.
func (s *insightsService) enrichSentiment(ctx context.Context, records []*types.Employee, atRisk []AtRiskEmployee) {
	if len(atRisk) == 0 {
		return
	}

	chatsByID := make(map[string]string, len(records))
	for _, e := range records {
		var messages []string
		for _, c := range e.DecodeChatLogs() {
			messages = append(messages, c.Message)
		}
		chatsByID[e.ID.String()] = strings.Join(messages, " ")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i := range atRisk {
		i := i
		g.Go(func() error {
			text := chatsByID[atRisk[i].ID]
			if text == "" {
				return nil
			}
			sentiment := huggingface.NeutralSentiment()
			if s.oracle != nil {
				if got, err := s.oracle.AnalyzeSentiment(gctx, text); err != nil {
					s.log.Warn("Sentiment oracle failed, using neutral fallback", "employee_id", atRisk[i].ID, "error", err)
				} else {
					sentiment = got
				}
			}
			atRisk[i].ChatSentiment = strings.ToLower(sentiment.Label)
			return nil
		})
	}
	_ = g.Wait()
}
