package services

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/yungbote/luminus-backend/internal/derive"
	"github.com/yungbote/luminus-backend/internal/tabular"
)

func testProfiles(t *testing.T) ([]derive.Profile, []derive.Edge) {
	t.Helper()
	data := []byte(strings.Join([]string{
		"Employee_ID,name,Current_Role,Level,Tenure_Months,Cross_Team_Collaborations,Help_Request_Replies,Peer_Review_Score,Tasks_Completed_Count,Raw_Achievement_Log",
		"EMP-001,Dana Wright,Tech Lead,L6,48,12,30,4.8,20,Led platform migration|Mentored juniors",
		",Sam Ortiz,Backend Developer,L3,10,2,1,3.5,8,Fixed flaky deploys",
		",Ana Lima,QA Engineer,L4,6,1,0,3.0,4,",
		"",
	}, "\n"))
	rows, err := tabular.Decode(data)
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	profiles := derive.BuildRoster(rows, derive.DefaultWeights(), now)
	return profiles, derive.Relationships(profiles)
}

func TestBuildPromotionRoster(t *testing.T) {
	profiles, edges := testProfiles(t)
	roster := BuildPromotionRoster(profiles, edges)

	if len(roster.Employees) != 3 {
		t.Fatalf("got %d employees, want 3", len(roster.Employees))
	}
	first := roster.Employees[0]
	if first.ID != "1" || first.EmployeeID != "EMP-001" {
		t.Errorf("first employee ids = %q/%q", first.ID, first.EmployeeID)
	}
	if first.CurrentRole != "Tech Lead" || first.TenureMonths != 48 {
		t.Errorf("CSV fields not echoed: %+v", first)
	}
	if len(roster.Relationships) != len(edges) {
		t.Errorf("got %d relationships, want %d", len(roster.Relationships), len(edges))
	}

	raw, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := decoded["burnout_risk"].(string); !ok {
		t.Errorf("promotion shape must carry categorical burnout_risk, got %T", decoded["burnout_risk"])
	}
	for _, key := range []string{"Employee_ID", "Raw_Achievement_Log", "chat_logs", "jira_tickets", "commit_logs"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("promotion employee missing %q field", key)
		}
	}
}

func TestBuildDetailRoster(t *testing.T) {
	profiles, edges := testProfiles(t)
	roster := BuildDetailRoster(profiles, edges)

	if len(roster.Employees) != 3 || len(roster.EmployeeDetails) != 3 {
		t.Fatalf("got %d employees / %d details, want 3 each", len(roster.Employees), len(roster.EmployeeDetails))
	}

	detail, ok := roster.EmployeeDetails["1"]
	if !ok {
		t.Fatal("details must be keyed by batch id")
	}
	if detail.Projects != maxOf(1, detail.ImpactScore/10) {
		t.Errorf("projects = %d for impact %d", detail.Projects, detail.ImpactScore)
	}
	if detail.Tenure != "4 yrs" {
		t.Errorf("tenure = %q, want 4 yrs", detail.Tenure)
	}
	if detail.RecentAchievement != "Led platform migration" {
		t.Errorf("recentAchievement = %q", detail.RecentAchievement)
	}

	raw, err := json.Marshal(roster.Employees[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := decoded["burnoutRisk"].(float64); !ok {
		t.Errorf("detail shape must carry numeric burnoutRisk, got %T", decoded["burnoutRisk"])
	}
}

func TestBuildDetailRosterCollaborators(t *testing.T) {
	profiles, edges := testProfiles(t)
	roster := BuildDetailRoster(profiles, edges)

	// Dana has cross=12, so she emits collaboration edges
	detail := roster.EmployeeDetails["1"]
	if len(detail.Collaborators) == 0 {
		t.Fatal("high-collaboration employee must list collaborators")
	}
	for _, id := range detail.Collaborators {
		if id == "1" {
			t.Error("employee listed as their own collaborator")
		}
		if _, ok := roster.EmployeeDetails[id]; !ok {
			t.Errorf("collaborator %q not in batch", id)
		}
	}
}
