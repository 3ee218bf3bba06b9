package derive

import (
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/yungbote/luminus-backend/internal/tabular"
)

var hexHash = regexp.MustCompile(`^[0-9a-f]{8}$`)

func activityRow() tabular.Row {
	return tabular.Row{
		ColRawAchievementLog:    "Shipped billing revamp|Fixed auth outage|Migrated CI|Led API redesign|Wrote onboarding docs",
		ColLateNightCommits:     "2",
		ColArchitecturalChanges: "1",
		ColAvgTaskComplexity:    "3.6",
		ColTasksCompletedCount:  "10",
		ColHelpRequestReplies:   "25",
		ColSentimentTrend:       "0.5",
	}
}

func TestCommitLogs(t *testing.T) {
	row := activityRow()
	commits := CommitLogs(row, NewRand(0, "EMP-001"))

	if len(commits) != 4 {
		t.Fatalf("got %d commits, want cap of 4", len(commits))
	}
	for i, c := range commits {
		if !hexHash.MatchString(c.Hash) {
			t.Errorf("commit %d hash %q is not 8 hex chars", i, c.Hash)
		}
		ts, err := time.Parse(time.RFC3339, c.Timestamp)
		if err != nil {
			t.Fatalf("commit %d timestamp: %v", i, err)
		}
		hour := ts.Hour()
		if i < 2 {
			if hour < 22 && hour > 4 {
				t.Errorf("commit %d hour %d outside late-night band", i, hour)
			}
		} else {
			if hour < 9 || hour > 18 {
				t.Errorf("commit %d hour %d outside business hours", i, hour)
			}
		}
	}
	if commits[0].Message != "Shipped billing revamp" {
		t.Errorf("commit message = %q, want first achievement", commits[0].Message)
	}
	// first entry falls inside the architectural window
	if commits[0].FilesChanged < 12 || commits[0].LinesAdded < 400 {
		t.Errorf("architectural commit not scaled up: %+v", commits[0])
	}
	if commits[1].FilesChanged >= 12 {
		t.Errorf("ordinary commit got architectural magnitude: %+v", commits[1])
	}
}

func TestActivityDeterminism(t *testing.T) {
	row := activityRow()
	a := CommitLogs(row, NewRand(3, "EMP-004"))
	b := CommitLogs(row, NewRand(3, "EMP-004"))
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed must reproduce identical commits")
	}
	c := CommitLogs(row, NewRand(4, "EMP-005"))
	if reflect.DeepEqual(a, c) {
		t.Error("different rows should draw different streams")
	}
}

func TestJiraTickets(t *testing.T) {
	row := activityRow()
	row[ColTasksCompletedCount] = "2" // guarantees the in-progress extra
	tickets := JiraTickets(row, NewRand(0, "EMP-001"))

	if len(tickets) != 4 {
		t.Fatalf("got %d tickets, want 3 done + 1 in progress", len(tickets))
	}
	for i := 0; i < 3; i++ {
		tk := tickets[i]
		if tk.Status != "done" {
			t.Errorf("ticket %d status = %q, want done", i, tk.Status)
		}
		if tk.Complexity != "high" {
			t.Errorf("ticket %d complexity = %q, want high for avg 3.6", i, tk.Complexity)
		}
		created, _ := time.Parse(time.RFC3339, tk.CreatedAt)
		completed, err := time.Parse(time.RFC3339, tk.CompletedAt)
		if err != nil {
			t.Fatalf("ticket %d completed_at: %v", i, err)
		}
		if got := completed.Sub(created); got != 7*24*time.Hour {
			t.Errorf("ticket %d completion offset = %v, want 7 days for high complexity", i, got)
		}
	}
	last := tickets[3]
	if last.Status != "in_progress" || last.CompletedAt != "" {
		t.Errorf("extra ticket = %+v, want open in_progress", last)
	}
}

func TestComplexityBucket(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{3.5, "high"},
		{3.4, "medium"},
		{2.0, "medium"},
		{1.9, "low"},
		{0, "low"},
	}
	for _, tt := range tests {
		if got := complexityBucket(tt.avg); got != tt.want {
			t.Errorf("complexityBucket(%v) = %q, want %q", tt.avg, got, tt.want)
		}
	}
}

func TestChatLogs(t *testing.T) {
	chats := ChatLogs(activityRow(), NewRand(0, "EMP-001"))
	if len(chats) != 2 {
		t.Fatalf("got %d chats, want 2", len(chats))
	}
	for _, c := range chats {
		if c.Sentiment != "positive" {
			t.Errorf("chat %+v, want positive sentiment", c)
		}
	}

	row := tabular.Row{
		ColLateNightCommits:   "6",
		ColSentimentTrend:     "-0.3",
		ColHelpRequestReplies: "3",
	}
	chats = ChatLogs(row, NewRand(1, "EMP-002"))
	if len(chats) != 2 {
		t.Fatalf("got %d chats, want 2", len(chats))
	}
	if chats[0].Message != "I'll handle it tonight" || chats[0].Sentiment != "neutral" {
		t.Errorf("late-night chat = %+v", chats[0])
	}
	if chats[1].Sentiment != "neutral" {
		t.Errorf("negative trend chat = %+v, want neutral", chats[1])
	}
}
