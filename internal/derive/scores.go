package derive

import (
	"math"

	"github.com/yungbote/luminus-backend/internal/tabular"
	"github.com/yungbote/luminus-backend/internal/types"
)

func clampRound(v float64, lo, hi int) int {
	n := int(math.Round(v))
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// ImpactScore derives the 0..100 impact score from a raw roster row.
func ImpactScore(row tabular.Row, w Weights) int {
	total := float64(row.Int(ColUnassignedTasksPicked))*w.Impact.UnassignedTasksPicked +
		float64(row.Int(ColHelpRequestReplies))*w.Impact.HelpRequestReplies +
		float64(row.Int(ColCrossTeamCollaborations))*w.Impact.CrossTeamCollaborations +
		float64(row.Int(ColCriticalIncidentOwnership))*w.Impact.CriticalIncidentOwnership +
		row.Float(ColPeerReviewScore)*w.Impact.PeerReviewScore +
		float64(row.Int(ColArchitecturalChanges))*w.Impact.ArchitecturalChanges +
		row.Float(ColAvgTaskComplexity)*w.Impact.AvgTaskComplexity +
		float64(row.Int(ColTasksCompletedCount))*w.Impact.TasksCompletedCount
	return clampRound(total, 0, 100)
}

// BurnoutScore derives the 0..100 burnout score from a raw roster row. Only a
// negative sentiment trend contributes to the score.
func BurnoutScore(row tabular.Row, w Weights) int {
	total := float64(row.Int(ColLateNightCommits))*w.Burnout.LateNightCommits +
		float64(row.Int(ColWeekendActivityLog))*w.Burnout.WeekendActivityLog +
		float64(row.Int(ColVacationDaysUnused))*w.Burnout.VacationDaysUnused
	if trend := row.Float(ColSentimentTrend); trend < 0 {
		total += math.Abs(trend) * w.Burnout.NegativeSentiment
	}
	return clampRound(total, 0, 100)
}

// SkillStatsFor derives the six-axis skill breakdown from a raw roster row.
func SkillStatsFor(row tabular.Row) types.SkillStats {
	complexity := row.Float(ColAvgTaskComplexity)
	arch := float64(row.Int(ColArchitecturalChanges))
	cross := float64(row.Int(ColCrossTeamCollaborations))
	helpReplies := float64(row.Int(ColHelpRequestReplies))
	sentiment := row.Float(ColSentimentTrend)
	peer := row.Float(ColPeerReviewScore)
	tasks := float64(row.Int(ColTasksCompletedCount))

	return types.SkillStats{
		Technical:   clampRound(complexity*20+arch*2, 0, 100),
		Leadership:  clampRound(cross*5+helpReplies, 0, 100),
		Empathy:     clampRound((sentiment+1)*40+peer*10, 0, 100),
		Velocity:    clampRound(tasks*4, 0, 100),
		Creativity:  clampRound(arch*3+complexity*15, 0, 100),
		Reliability: clampRound(peer*18, 0, 100),
	}
}
