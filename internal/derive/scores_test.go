package derive

import (
	"testing"

	"github.com/yungbote/luminus-backend/internal/tabular"
	"github.com/yungbote/luminus-backend/internal/types"
)

func TestImpactScore(t *testing.T) {
	w := DefaultWeights()
	tests := []struct {
		name string
		row  tabular.Row
		want int
	}{
		{
			name: "clamps at 100",
			row: tabular.Row{
				ColUnassignedTasksPicked:     "5",
				ColHelpRequestReplies:        "30",
				ColCrossTeamCollaborations:   "12",
				ColCriticalIncidentOwnership: "2",
				ColPeerReviewScore:           "4.5",
				ColArchitecturalChanges:      "3",
				ColAvgTaskComplexity:         "4.0",
				ColTasksCompletedCount:       "9",
			},
			want: 100,
		},
		{
			name: "mid-range rounds",
			row: tabular.Row{
				ColUnassignedTasksPicked:   "1",
				ColHelpRequestReplies:      "2",
				ColCrossTeamCollaborations: "1",
				ColPeerReviewScore:         "3.0",
				ColArchitecturalChanges:    "1",
				ColAvgTaskComplexity:       "2.0",
				ColTasksCompletedCount:     "5",
			},
			want: 52,
		},
		{
			name: "empty row scores zero",
			row:  tabular.Row{},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ImpactScore(tt.row, w); got != tt.want {
				t.Errorf("ImpactScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBurnoutScore(t *testing.T) {
	w := DefaultWeights()
	tests := []struct {
		name         string
		row          tabular.Row
		want         int
		wantCategory string
	}{
		{
			name: "medium band",
			row: tabular.Row{
				ColLateNightCommits:   "5",
				ColWeekendActivityLog: "3",
				ColVacationDaysUnused: "4",
				ColSentimentTrend:     "0.2",
			},
			want:         47,
			wantCategory: types.BurnoutMedium,
		},
		{
			name: "negative sentiment contributes",
			row: tabular.Row{
				ColSentimentTrend: "-0.5",
			},
			want:         25,
			wantCategory: types.BurnoutLow,
		},
		{
			name: "high band",
			row: tabular.Row{
				ColLateNightCommits:   "10",
				ColWeekendActivityLog: "5",
				ColVacationDaysUnused: "2",
				ColSentimentTrend:     "-0.1",
			},
			want:         76,
			wantCategory: types.BurnoutHigh,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BurnoutScore(tt.row, w)
			if got != tt.want {
				t.Errorf("BurnoutScore = %d, want %d", got, tt.want)
			}
			if cat := types.BurnoutCategoryForScore(got); cat != tt.wantCategory {
				t.Errorf("category = %q, want %q", cat, tt.wantCategory)
			}
		})
	}
}

func TestSkillStatsFor(t *testing.T) {
	row := tabular.Row{
		ColAvgTaskComplexity:       "2.5",
		ColArchitecturalChanges:    "4",
		ColCrossTeamCollaborations: "6",
		ColHelpRequestReplies:      "10",
		ColSentimentTrend:          "0.5",
		ColPeerReviewScore:         "4.0",
		ColTasksCompletedCount:     "10",
	}
	got := SkillStatsFor(row)
	want := types.SkillStats{
		Technical:   58,
		Leadership:  40,
		Empathy:     100,
		Velocity:    40,
		Creativity:  50,
		Reliability: 72,
	}
	if got != want {
		t.Errorf("SkillStatsFor = %+v, want %+v", got, want)
	}
}

func TestSkillStatsClamp(t *testing.T) {
	row := tabular.Row{
		ColAvgTaskComplexity:       "9.0",
		ColArchitecturalChanges:    "40",
		ColCrossTeamCollaborations: "50",
		ColHelpRequestReplies:      "90",
		ColSentimentTrend:          "1.0",
		ColPeerReviewScore:         "6.0",
		ColTasksCompletedCount:     "99",
	}
	got := SkillStatsFor(row)
	for _, v := range []int{got.Technical, got.Leadership, got.Empathy, got.Velocity, got.Creativity, got.Reliability} {
		if v != 100 {
			t.Errorf("axis = %d, want clamped 100 (stats %+v)", v, got)
		}
	}
}

func TestWeightsOverlayDefaults(t *testing.T) {
	w, err := LoadWeights("")
	if err != nil {
		t.Fatalf("LoadWeights: %v", err)
	}
	if w != DefaultWeights() {
		t.Errorf("empty path must yield defaults, got %+v", w)
	}
}
