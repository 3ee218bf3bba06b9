package derive

import (
	"strings"
	"testing"
	"time"

	"github.com/yungbote/luminus-backend/internal/tabular"
	"github.com/yungbote/luminus-backend/internal/types"
)

func rosterRows() []tabular.Row {
	return []tabular.Row{
		{
			ColEmployeeID:              "EMP-001",
			ColName:                    "Dana Wright",
			ColCurrentRole:             "Tech Lead",
			ColLevel:                   "L6",
			ColTenureMonths:            "48",
			ColCrossTeamCollaborations: "12",
			ColHelpRequestReplies:      "30",
			ColPeerReviewScore:         "4.8",
			ColTasksCompletedCount:     "20",
			ColRawAchievementLog:       "Led platform migration|Mentored two juniors",
		},
		{
			ColName:            "Sam Ortiz",
			ColCurrentRole:     "Backend Developer",
			ColLevel:           "L3",
			ColTenureMonths:    "10",
			ColPeerReviewScore: "3.5",
		},
		{
			ColName:        "Ana Lima",
			ColCurrentRole: "QA Engineer",
			ColLevel:       "L4",
			ColTenureMonths: "6",
		},
		{
			ColName:        "Jo Park",
			ColCurrentRole: "UX Designer",
			ColLevel:       "L2",
			ColTenureMonths: "3",
		},
	}
}

func TestBuildRoster(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	profiles := BuildRoster(rosterRows(), DefaultWeights(), now)
	if len(profiles) != 4 {
		t.Fatalf("got %d profiles, want 4", len(profiles))
	}

	lead := profiles[0]
	if lead.ID != "1" || lead.EmployeeCode != "EMP-001" {
		t.Errorf("lead identity = %q/%q", lead.ID, lead.EmployeeCode)
	}
	if lead.ManagerID != nil {
		t.Errorf("L6 got manager %v", *lead.ManagerID)
	}
	if lead.Tenure != "4 yrs" {
		t.Errorf("tenure = %q, want 4 yrs", lead.Tenure)
	}
	if lead.RecentAchievement != "Led platform migration" {
		t.Errorf("recentAchievement = %q", lead.RecentAchievement)
	}
	if lead.Projects != maxInt(1, lead.ImpactScore/10) {
		t.Errorf("projects = %d for impact %d", lead.Projects, lead.ImpactScore)
	}

	junior := profiles[1]
	if junior.EmployeeCode != "EMP-002" {
		t.Errorf("synthesized code = %q, want EMP-002", junior.EmployeeCode)
	}
	if junior.ManagerID == nil {
		t.Fatal("L3 at row 2 must report to row 1")
	}
	if *junior.ManagerID != "1" {
		t.Errorf("junior manager = %q, want 1", *junior.ManagerID)
	}
	if junior.ManagerName != "Dana Wright" {
		t.Errorf("managerName = %q", junior.ManagerName)
	}

	mid := profiles[2]
	if mid.ManagerID == nil || *mid.ManagerID != "1" {
		t.Error("L4 in a roster of 4 must report to the first row")
	}
	if mid.Department != "Engineering" || mid.Team != "Quality Assurance" {
		t.Errorf("QA mapping = %q/%q", mid.Department, mid.Team)
	}

	for i, p := range profiles {
		if p.Location != LocationFor(i) {
			t.Errorf("profile %d location %q out of rotation", i, p.Location)
		}
		if p.BurnoutCategory != types.BurnoutCategoryForScore(p.BurnoutScore) {
			t.Errorf("profile %d category %q disagrees with score %d", i, p.BurnoutCategory, p.BurnoutScore)
		}
	}
}

// The roster export mixes casings: metric columns are Title_Snake while the
// identity columns are lowercase. Decoding a literal export guards the lookup
// keys against drifting from the file format.
func TestBuildRosterFromExportHeader(t *testing.T) {
	data := []byte("Employee_ID,name,Current_Role,Level,Tenure_Months,Peer_Review_Score,Raw_Achievement_Log,skills,avatar\n" +
		"EMP-001,Dana Wright,Tech Lead,L6,48,4.8,Led platform migration,Go|Kubernetes,https://cdn.example.com/dw.png\n")
	rows, err := tabular.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	profiles := BuildRoster(rows, DefaultWeights(), now)
	if len(profiles) != 1 {
		t.Fatalf("got %d profiles, want 1", len(profiles))
	}

	p := profiles[0]
	if p.Name != "Dana Wright" {
		t.Errorf("name = %q, want Dana Wright", p.Name)
	}
	if p.Email != "dana.w@luminus.ai" {
		t.Errorf("email = %q, want dana.w@luminus.ai", p.Email)
	}
	if len(p.Skills) != 2 || p.Skills[0] != "Go" || p.Skills[1] != "Kubernetes" {
		t.Errorf("skills = %v, want [Go Kubernetes]", p.Skills)
	}
	if p.Avatar != "https://cdn.example.com/dw.png" {
		t.Errorf("avatar = %q, want the ingested URL", p.Avatar)
	}
}

func TestBuildRosterDeterminism(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	a := BuildRoster(rosterRows(), DefaultWeights(), now)
	b := BuildRoster(rosterRows(), DefaultWeights(), now)
	for i := range a {
		if a[i].ImpactScore != b[i].ImpactScore || len(a[i].CommitLogs) != len(b[i].CommitLogs) {
			t.Fatalf("profile %d differs across identical runs", i)
		}
		if a[i].ManagerID != nil && b[i].ManagerID != nil && *a[i].ManagerID != *b[i].ManagerID {
			t.Fatalf("profile %d manager differs across identical runs", i)
		}
	}
}

func TestSummaryBranches(t *testing.T) {
	p := Profile{
		Name:         "Dana Wright",
		Role:         "Tech Lead",
		Skills:       []string{"Go", "Postgres", "Kafka", "Terraform"},
		ImpactScore:  88,
		BurnoutScore: 75,
	}
	s := Summary(p)
	if !strings.Contains(s, "Go, Postgres, Kafka") {
		t.Errorf("summary must name the top three skills: %q", s)
	}
	if !strings.Contains(s, "exceptional impact (88%)") {
		t.Errorf("high-impact branch missing: %q", s)
	}
	if !strings.Contains(s, "High burnout risk (75%)") {
		t.Errorf("high-burnout branch missing: %q", s)
	}

	low := Summary(Profile{Name: "Sam", Role: "Backend Developer", ImpactScore: 40, BurnoutScore: 10})
	if !strings.Contains(low, "their field") {
		t.Errorf("empty skills fallback missing: %q", low)
	}
	if !strings.Contains(low, "could benefit from more challenging assignments") {
		t.Errorf("low-impact branch missing: %q", low)
	}
	if !strings.Contains(low, "good work-life balance") {
		t.Errorf("low-burnout branch missing: %q", low)
	}
}
