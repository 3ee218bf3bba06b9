package derive

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
	"time"

	"github.com/yungbote/luminus-backend/internal/tabular"
	"github.com/yungbote/luminus-backend/internal/types"
)

// All activity below is synthesized with seeded pseudo-randomness, not
// crypto/rand: the point is reproducible demo data, so identical input rows
// produce identical collections across runs.

const (
	maxCommitLogs  = 4
	maxJiraTickets = 3
)

// activityEpoch anchors every synthesized timestamp so batches do not drift
// with wall-clock time.
var activityEpoch = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

// NewRand seeds a generator from the row position and employee code, so each
// row gets its own reproducible stream.
func NewRand(index int, key string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(key))
	seed := int64(index+1)*1000003 + int64(h.Sum64()&0x7fffffffffff)
	return rand.New(rand.NewSource(seed))
}

func splitAchievements(raw string) []string {
	var out []string
	for _, seg := range strings.Split(raw, "|") {
		if s := strings.TrimSpace(seg); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// CommitLogs expands the achievement log into commit records, one per segment
// capped at four. The first Late_Night_Commits entries land in the 22:00-04:00
// band, the rest in business hours, and entries inside the first
// Architectural_Changes segments carry scaled-up change magnitudes.
func CommitLogs(row tabular.Row, rng *rand.Rand) []types.CommitLog {
	segments := splitAchievements(row.Get(ColRawAchievementLog))
	if len(segments) > maxCommitLogs {
		segments = segments[:maxCommitLogs]
	}
	lateNight := row.Int(ColLateNightCommits)
	arch := row.Int(ColArchitecturalChanges)

	commits := make([]types.CommitLog, 0, len(segments))
	for i, seg := range segments {
		day := activityEpoch.AddDate(0, 0, i*2)
		var hour int
		if i < lateNight {
			hour = (22 + rng.Intn(7)) % 24
		} else {
			hour = 9 + rng.Intn(10)
		}
		ts := time.Date(day.Year(), day.Month(), day.Day(), hour, rng.Intn(60), 0, 0, time.UTC)

		files := 1 + rng.Intn(5)
		added := 20 + rng.Intn(180)
		deleted := 5 + rng.Intn(60)
		if i < arch {
			files = 12 + rng.Intn(20)
			added = 400 + rng.Intn(1200)
			deleted = 80 + rng.Intn(300)
		}

		commits = append(commits, types.CommitLog{
			Hash:         fmt.Sprintf("%08x", rng.Uint32()),
			Message:      seg,
			Timestamp:    ts.Format(time.RFC3339),
			FilesChanged: files,
			LinesAdded:   added,
			LinesDeleted: deleted,
		})
	}
	return commits
}

func complexityBucket(avg float64) string {
	switch {
	case avg >= 3.5:
		return "high"
	case avg >= 2.0:
		return "medium"
	default:
		return "low"
	}
}

// JiraTickets expands the achievement log into completed tickets, one per
// segment capped at three, plus one in-progress ticket when the completed
// task count is low or on a coin flip otherwise.
func JiraTickets(row tabular.Row, rng *rand.Rand) []types.JiraTicket {
	segments := splitAchievements(row.Get(ColRawAchievementLog))
	if len(segments) > maxJiraTickets {
		segments = segments[:maxJiraTickets]
	}
	complexity := complexityBucket(row.Float(ColAvgTaskComplexity))

	completionDays := 2
	switch complexity {
	case "high":
		completionDays = 7
	case "medium":
		completionDays = 4
	}

	tickets := make([]types.JiraTicket, 0, len(segments)+1)
	for i, seg := range segments {
		created := activityEpoch.AddDate(0, 0, i*3)
		completed := created.AddDate(0, 0, completionDays)
		tickets = append(tickets, types.JiraTicket{
			ID:          fmt.Sprintf("LUM-%d", 100+rng.Intn(900)),
			Title:       seg,
			Complexity:  complexity,
			Status:      "done",
			CreatedAt:   created.Format(time.RFC3339),
			CompletedAt: completed.Format(time.RFC3339),
		})
	}

	if row.Int(ColTasksCompletedCount) < 5 || rng.Intn(2) == 0 {
		created := activityEpoch.AddDate(0, 0, len(segments)*3)
		tickets = append(tickets, types.JiraTicket{
			ID:         fmt.Sprintf("LUM-%d", 100+rng.Intn(900)),
			Title:      "Current sprint work",
			Complexity: complexity,
			Status:     "in_progress",
			CreatedAt:  created.Format(time.RFC3339),
		})
	}
	return tickets
}

// ChatLogs emits conditional chat messages from the row's behavioral signals.
func ChatLogs(row tabular.Row, rng *rand.Rand) []types.ChatLog {
	var chats []types.ChatLog
	at := func(day, hour int) string {
		return time.Date(activityEpoch.Year(), activityEpoch.Month(), activityEpoch.Day()+day, hour, rng.Intn(60), 0, 0, time.UTC).Format(time.RFC3339)
	}

	if row.Int(ColLateNightCommits) > 5 {
		chats = append(chats, types.ChatLog{
			Timestamp: at(0, 21),
			Message:   "I'll handle it tonight",
			Sentiment: "neutral",
		})
	}

	if row.Float(ColSentimentTrend) > 0 {
		chats = append(chats, types.ChatLog{
			Timestamp: at(1, 10),
			Message:   "Really enjoying the direction this project is taking!",
			Sentiment: "positive",
		})
	} else {
		chats = append(chats, types.ChatLog{
			Timestamp: at(1, 10),
			Message:   "Posted the status update in the channel.",
			Sentiment: "neutral",
		})
	}

	if row.Int(ColHelpRequestReplies) > 20 {
		chats = append(chats, types.ChatLog{
			Timestamp: at(2, 14),
			Message:   "Happy to help with that, ping me anytime.",
			Sentiment: "positive",
		})
	}
	return chats
}
