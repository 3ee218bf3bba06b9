package services

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/yungbote/luminus-backend/internal/derive"
	"github.com/yungbote/luminus-backend/internal/pkg/logger"
	"github.com/yungbote/luminus-backend/internal/repos"
	"github.com/yungbote/luminus-backend/internal/types"
)

type LeaderboardEntry struct {
	Rank            int     `json:"rank"`
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Role            string  `json:"role"`
	Avatar          string  `json:"avatar,omitempty"`
	ImpactScore     int     `json:"impactScore"`
	TasksCompleted  int     `json:"tasksCompleted"`
	PeerReviewScore float64 `json:"peerReviewScore"`
}

type DepartmentRanking struct {
	Department    string `json:"department"`
	AvgScore      int    `json:"avgScore"`
	TopPerformer  string `json:"topPerformer"`
	EmployeeCount int    `json:"employeeCount"`
}

type PerformanceReport struct {
	Leaderboard        []LeaderboardEntry  `json:"leaderboard"`
	DepartmentRankings []DepartmentRanking `json:"departmentRankings"`
}

type PerformanceService interface {
	Report(ctx context.Context, ownerID uuid.UUID) (*PerformanceReport, error)
}

type performanceService struct {
	employeeRepo repos.EmployeeRepo
	log          *logger.Logger
}

func NewPerformanceService(employeeRepo repos.EmployeeRepo, baseLog *logger.Logger) PerformanceService {
	serviceLog := baseLog.With("service", "PerformanceService")
	return &performanceService{employeeRepo: employeeRepo, log: serviceLog}
}

func (s *performanceService) Report(ctx context.Context, ownerID uuid.UUID) (*PerformanceReport, error) {
	records, err := s.employeeRepo.GetByOwner(ctx, nil, ownerID, repos.EmployeeFilter{})
	if err != nil {
		return nil, err
	}
	return BuildPerformanceReport(records), nil
}

// BuildPerformanceReport ranks the roster by activity-adjusted impact and
// aggregates per-department standings.
func BuildPerformanceReport(records []*types.Employee) *PerformanceReport {
	report := &PerformanceReport{
		Leaderboard:        []LeaderboardEntry{},
		DepartmentRankings: []DepartmentRanking{},
	}

	for _, e := range records {
		impact := derive.AdjustedImpactScore(e.ImpactScore, e.DecodeJiraTickets(), e.DecodeCommitLogs(), e.DecodeChatLogs())
		report.Leaderboard = append(report.Leaderboard, LeaderboardEntry{
			ID:              e.ID.String(),
			Name:            e.Name,
			Role:            e.Role,
			Avatar:          e.Avatar,
			ImpactScore:     impact,
			TasksCompleted:  e.TasksCompletedCount,
			PeerReviewScore: e.PeerReviewScore,
		})
	}
	sort.SliceStable(report.Leaderboard, func(i, j int) bool {
		return report.Leaderboard[i].ImpactScore > report.Leaderboard[j].ImpactScore
	})
	for i := range report.Leaderboard {
		report.Leaderboard[i].Rank = i + 1
	}

	byDept := map[string][]*types.Employee{}
	deptOrder := []string{}
	for _, e := range records {
		if _, ok := byDept[e.Department]; !ok {
			deptOrder = append(deptOrder, e.Department)
		}
		byDept[e.Department] = append(byDept[e.Department], e)
	}
	for _, dept := range deptOrder {
		emps := byDept[dept]
		sum := 0
		top := emps[0]
		for _, e := range emps {
			sum += e.ImpactScore
			if e.ImpactScore > top.ImpactScore {
				top = e
			}
		}
		report.DepartmentRankings = append(report.DepartmentRankings, DepartmentRanking{
			Department:    dept,
			AvgScore:      roundDiv(sum, len(emps)),
			TopPerformer:  top.Name,
			EmployeeCount: len(emps),
		})
	}
	sort.SliceStable(report.DepartmentRankings, func(i, j int) bool {
		return report.DepartmentRankings[i].AvgScore > report.DepartmentRankings[j].AvgScore
	})
	return report
}
