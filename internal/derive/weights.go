package derive

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ImpactWeights are the per-column multipliers of the impact formula.
type ImpactWeights struct {
	UnassignedTasksPicked     float64 `yaml:"unassigned_tasks_picked"`
	HelpRequestReplies        float64 `yaml:"help_request_replies"`
	CrossTeamCollaborations   float64 `yaml:"cross_team_collaborations"`
	CriticalIncidentOwnership float64 `yaml:"critical_incident_ownership"`
	PeerReviewScore           float64 `yaml:"peer_review_score"`
	ArchitecturalChanges      float64 `yaml:"architectural_changes"`
	AvgTaskComplexity         float64 `yaml:"avg_task_complexity"`
	TasksCompletedCount       float64 `yaml:"tasks_completed_count"`
}

// BurnoutWeights are the per-column multipliers of the burnout formula. The
// negative sentiment weight applies to abs(Sentiment_Trend) only when the
// trend is below zero.
type BurnoutWeights struct {
	LateNightCommits   float64 `yaml:"late_night_commits"`
	WeekendActivityLog float64 `yaml:"weekend_activity_log"`
	VacationDaysUnused float64 `yaml:"vacation_days_unused"`
	NegativeSentiment  float64 `yaml:"negative_sentiment"`
}

type Weights struct {
	Impact  ImpactWeights  `yaml:"impact"`
	Burnout BurnoutWeights `yaml:"burnout"`
}

func DefaultWeights() Weights {
	return Weights{
		Impact: ImpactWeights{
			UnassignedTasksPicked:     2,
			HelpRequestReplies:        1.5,
			CrossTeamCollaborations:   3,
			CriticalIncidentOwnership: 5,
			PeerReviewScore:           10,
			ArchitecturalChanges:      2.5,
			AvgTaskComplexity:         3,
			TasksCompletedCount:       1,
		},
		Burnout: BurnoutWeights{
			LateNightCommits:   4,
			WeekendActivityLog: 5,
			VacationDaysUnused: 3,
			NegativeSentiment:  50,
		},
	}
}

// LoadWeights reads a YAML overlay on top of the defaults. Fields absent from
// the file keep their default value because the defaults are the decode
// target.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()
	if path == "" {
		return w, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read scoring weights: %w", err)
	}
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return w, fmt.Errorf("parse scoring weights: %w", err)
	}
	return w, nil
}
