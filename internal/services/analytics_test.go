package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/luminus-backend/internal/types"
)

func analyticsFixture() []*types.Employee {
	return []*types.Employee{
		{
			ID: uuid.New(), Name: "Dana Wright", Role: "Tech Lead", Level: "L5",
			Department: "Engineering", ImpactScore: 90, BurnoutCategory: types.BurnoutHigh,
			TenureMonths: 24, TasksCompletedCount: 20, PeerReviewScore: 4.6,
			LateNightCommits: 8, VacationDaysUnused: 10, SentimentTrend: -0.5,
		},
		{
			ID: uuid.New(), Name: "Sam Ortiz", Role: "Backend Developer", Level: "L3",
			Department: "Engineering", ImpactScore: 70, BurnoutCategory: types.BurnoutLow,
			TenureMonths: 12, TasksCompletedCount: 10, PeerReviewScore: 3.5,
		},
		{
			ID: uuid.New(), Name: "Jo Park", Role: "UX Designer", Level: "L2",
			Department: "Design", ImpactScore: 40, BurnoutCategory: types.BurnoutHigh,
			TenureMonths: 6, TasksCompletedCount: 5, AvgTaskComplexity: 2.0,
		},
	}
}

func TestBuildAnalyticsReport(t *testing.T) {
	report := BuildAnalyticsReport(analyticsFixture())

	ov := report.Overview
	if ov.TotalEmployees != 3 || ov.AvgImpactScore != 67 || ov.HighPerformers != 1 {
		t.Errorf("overview = %+v", ov)
	}
	if ov.BurnoutAlerts != 2 || ov.AvgTenure != 14 || ov.TotalTasksCompleted != 35 {
		t.Errorf("overview = %+v", ov)
	}

	if len(report.Departments) != 2 {
		t.Fatalf("got %d departments, want 2", len(report.Departments))
	}
	eng := report.Departments[0]
	if eng.Department != "Engineering" || eng.Count != 2 || eng.AvgImpact != 80 || eng.AvgBurnout != 50 {
		t.Errorf("engineering stats = %+v", eng)
	}

	if len(report.BurnoutDistribution) != 3 {
		t.Fatalf("got %d burnout bands", len(report.BurnoutDistribution))
	}
	high := report.BurnoutDistribution[2]
	if high.Level != "High" || high.Count != 2 || high.Percentage != 67 {
		t.Errorf("high band = %+v", high)
	}

	wantLevels := []string{"L2", "L3", "L5"}
	for i, lc := range report.LevelDistribution {
		if lc.Level != wantLevels[i] || lc.Count != 1 {
			t.Errorf("level distribution[%d] = %+v", i, lc)
		}
	}

	if len(report.Trends) != 4 {
		t.Fatalf("got %d trend points", len(report.Trends))
	}
	if report.Trends[0].Headcount != 1 || report.Trends[3].AvgPerformance != 67 {
		t.Errorf("trends = %+v", report.Trends)
	}
}

func TestBuildAnalyticsReportEmpty(t *testing.T) {
	report := BuildAnalyticsReport(nil)
	if report.Overview.TotalEmployees != 0 || report.Overview.AvgImpactScore != 0 {
		t.Errorf("empty roster overview = %+v", report.Overview)
	}
	if len(report.Departments) != 0 || len(report.BurnoutDistribution) != 0 {
		t.Error("empty roster must not emit aggregates")
	}
}

func TestBuildInsightsReport(t *testing.T) {
	report := BuildInsightsReport(analyticsFixture())

	if len(report.HiddenGems) != 1 || report.HiddenGems[0].Name != "Dana Wright" {
		t.Fatalf("hiddenGems = %+v", report.HiddenGems)
	}

	byID := map[string]Recommendation{}
	for _, rec := range report.Recommendations {
		byID[rec.ID] = rec
	}
	var haveTypes []string
	for _, rec := range report.Recommendations {
		haveTypes = append(haveTypes, rec.Type)
	}
	if _, ok := byID["rec-team-burnout"]; !ok {
		t.Errorf("missing team-wide burnout recommendation, have %v", haveTypes)
	}

	// priorities must be grouped high before medium
	lastPriority := 0
	order := map[string]int{"high": 0, "medium": 1, "low": 2}
	for _, rec := range report.Recommendations {
		if order[rec.Priority] < lastPriority {
			t.Fatalf("recommendations not sorted by priority: %v", haveTypes)
		}
		lastPriority = order[rec.Priority]
	}

	if len(report.AtRiskEmployees) != 2 {
		t.Fatalf("atRisk = %+v", report.AtRiskEmployees)
	}
	danaRisk := report.AtRiskEmployees[0]
	if danaRisk.Name == "Jo Park" {
		danaRisk = report.AtRiskEmployees[1]
	}
	if len(danaRisk.RiskFactors) != 3 {
		t.Errorf("risk factors = %v, want late-night + vacation + sentiment", danaRisk.RiskFactors)
	}
	if danaRisk.Recommendation != "Immediate intervention recommended" {
		t.Errorf("recommendation = %q", danaRisk.Recommendation)
	}
}

func TestBuildPerformanceReport(t *testing.T) {
	report := BuildPerformanceReport(analyticsFixture())

	if len(report.Leaderboard) != 3 {
		t.Fatalf("leaderboard = %+v", report.Leaderboard)
	}
	for i, want := range []string{"Dana Wright", "Sam Ortiz", "Jo Park"} {
		entry := report.Leaderboard[i]
		if entry.Name != want || entry.Rank != i+1 {
			t.Errorf("leaderboard[%d] = %+v, want %s at rank %d", i, entry, want, i+1)
		}
	}

	if len(report.DepartmentRankings) != 2 {
		t.Fatalf("rankings = %+v", report.DepartmentRankings)
	}
	top := report.DepartmentRankings[0]
	if top.Department != "Engineering" || top.AvgScore != 80 || top.TopPerformer != "Dana Wright" {
		t.Errorf("top department = %+v", top)
	}
}
