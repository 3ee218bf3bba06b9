package derive

import (
	"math"
	"time"

	"github.com/yungbote/luminus-backend/internal/types"
)

// The adjusted strategies below rescore an already-persisted employee from
// their activity history. They are deliberately separate from the raw-row
// formulas in scores.go: the inputs differ and the two strategies evolved
// independently, so they must not be merged.

func lateNightCommitCount(commits []types.CommitLog) int {
	n := 0
	for _, c := range commits {
		ts, err := time.Parse(time.RFC3339, c.Timestamp)
		if err != nil {
			continue
		}
		hour := ts.UTC().Hour()
		if hour >= 22 || hour <= 3 {
			n++
		}
	}
	return n
}

// AdjustedBurnoutScore rescores burnout from the stored category plus
// activity signals: late-night commit timestamps, negative chat sentiment,
// and overall commit volume.
func AdjustedBurnoutScore(category string, commits []types.CommitLog, chats []types.ChatLog) int {
	var score int
	switch types.NormalizeBurnoutCategory(category) {
	case types.BurnoutHigh:
		score = 40
	case types.BurnoutMedium:
		score = 25
	default:
		score = 10
	}

	lateNight := lateNightCommitCount(commits)
	score += minInt(lateNight*8, 30)

	for _, chat := range chats {
		if chat.Sentiment == "negative" {
			score += 5
		}
	}

	if len(commits) > 10 {
		score += 10
	}

	return minInt(score, 100)
}

// AdjustedImpactScore layers activity-derived bonuses over the base impact
// score: completed high-complexity tickets, code volume thresholds, positive
// chat sentiment, and ticket completion rate.
func AdjustedImpactScore(baseImpact int, tickets []types.JiraTicket, commits []types.CommitLog, chats []types.ChatLog) int {
	score := float64(baseImpact)

	for _, t := range tickets {
		if t.Complexity == "high" && t.Status == "done" {
			score += 5
		}
	}

	var linesAdded, filesChanged int
	for _, c := range commits {
		linesAdded += c.LinesAdded
		filesChanged += c.FilesChanged
	}
	if linesAdded > 1000 {
		score += 5
	}
	if filesChanged > 20 {
		score += 5
	}

	positiveChats := 0
	for _, chat := range chats {
		if chat.Sentiment == "positive" {
			positiveChats++
		}
	}
	score += float64(minInt(positiveChats*2, 10))

	done := 0
	for _, t := range tickets {
		if t.Status == "done" {
			done++
		}
	}
	if len(tickets) > 0 {
		completionRate := float64(done) / float64(len(tickets)) * 100
		score += math.Round(completionRate * 0.1)
	}

	return minInt(int(math.Round(score)), 100)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
