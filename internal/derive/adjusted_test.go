package derive

import (
	"testing"

	"github.com/yungbote/luminus-backend/internal/types"
)

func TestAdjustedBurnoutScore(t *testing.T) {
	commits := []types.CommitLog{
		{Timestamp: "2025-03-03T23:15:00Z"},
		{Timestamp: "2025-03-04T02:30:00Z"},
		{Timestamp: "2025-03-05T10:00:00Z"},
	}
	chats := []types.ChatLog{
		{Sentiment: "negative"},
		{Sentiment: "positive"},
	}
	// base 40 (high) + min(2*8,30)=16 + one negative chat 5
	if got := AdjustedBurnoutScore(types.BurnoutHigh, commits, chats); got != 61 {
		t.Errorf("AdjustedBurnoutScore = %d, want 61", got)
	}
	if got := AdjustedBurnoutScore(types.BurnoutLow, nil, nil); got != 10 {
		t.Errorf("quiet low-risk employee = %d, want base 10", got)
	}
}

func TestAdjustedBurnoutScoreCaps(t *testing.T) {
	var commits []types.CommitLog
	for i := 0; i < 12; i++ {
		commits = append(commits, types.CommitLog{Timestamp: "2025-03-03T23:00:00Z"})
	}
	var chats []types.ChatLog
	for i := 0; i < 20; i++ {
		chats = append(chats, types.ChatLog{Sentiment: "negative"})
	}
	// 40 + 30 (late-night capped) + 100 (chats) + 10 (volume) caps at 100
	if got := AdjustedBurnoutScore(types.BurnoutHigh, commits, chats); got != 100 {
		t.Errorf("AdjustedBurnoutScore = %d, want capped 100", got)
	}
}

func TestAdjustedImpactScore(t *testing.T) {
	tickets := []types.JiraTicket{
		{Complexity: "high", Status: "done"},
		{Complexity: "low", Status: "done"},
		{Complexity: "high", Status: "in_progress"},
	}
	commits := []types.CommitLog{
		{LinesAdded: 900, FilesChanged: 15},
		{LinesAdded: 200, FilesChanged: 10},
	}
	chats := []types.ChatLog{
		{Sentiment: "positive"},
		{Sentiment: "positive"},
	}
	// 50 + 5 (one done high ticket) + 5 (1100 lines) + 5 (25 files)
	// + 4 (positive chats) + round(66.67*0.1)=7
	if got := AdjustedImpactScore(50, tickets, commits, chats); got != 76 {
		t.Errorf("AdjustedImpactScore = %d, want 76", got)
	}
	if got := AdjustedImpactScore(98, tickets, commits, chats); got != 100 {
		t.Errorf("AdjustedImpactScore = %d, want capped 100", got)
	}
	if got := AdjustedImpactScore(30, nil, nil, nil); got != 30 {
		t.Errorf("no activity must keep base, got %d", got)
	}
}
