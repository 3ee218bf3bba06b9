package derive

import (
	"math/rand"
	"testing"
	"time"
)

func TestEmailFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Alice Johnson", "alice.j@luminus.ai"},
		{"Prince", "prince@luminus.ai"},
		{"Mary Jane Watson", "mary.w@luminus.ai"},
		{"  Bob   Smith  ", "bob.s@luminus.ai"},
		{"", "unknown@luminus.ai"},
	}
	for _, tt := range tests {
		if got := EmailFor(tt.name); got != tt.want {
			t.Errorf("EmailFor(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDepartmentAndTeam(t *testing.T) {
	tests := []struct {
		role     string
		wantDept string
		wantTeam string
	}{
		{"Senior Backend Developer", "Engineering", "Platform"},
		{"Frontend Engineer", "Engineering", "Frontend"},
		{"DevOps Engineer", "Operations", "Infrastructure"},
		{"UX Designer", "Design", "Product Design"},
		{"Product Manager", "Product", "Core Product"},
		{"QA Engineer", "Engineering", "Quality Assurance"},
		{"Tech Lead", "Engineering", "Platform"},
		{"Astronaut", "Engineering", "General"},
	}
	for _, tt := range tests {
		dept, team := DepartmentAndTeam(tt.role)
		if dept != tt.wantDept || team != tt.wantTeam {
			t.Errorf("DepartmentAndTeam(%q) = %q/%q, want %q/%q", tt.role, dept, team, tt.wantDept, tt.wantTeam)
		}
	}
}

func TestLocationRoundRobin(t *testing.T) {
	if got := LocationFor(0); got != "San Francisco" {
		t.Errorf("LocationFor(0) = %q", got)
	}
	if got := LocationFor(5); got != "San Francisco" {
		t.Errorf("LocationFor(5) = %q, want wrap to San Francisco", got)
	}
	if got := LocationFor(7); got != "Austin" {
		t.Errorf("LocationFor(7) = %q, want Austin", got)
	}
}

func TestJoinDate(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	if got := JoinDate(now, 14); got != "2025-07-01" {
		t.Errorf("JoinDate = %q, want 2025-07-01", got)
	}
	if got := JoinDate(now, 0); got != "2026-09-01" {
		t.Errorf("JoinDate with zero tenure = %q, want today", got)
	}
}

func TestFormatTenure(t *testing.T) {
	tests := []struct {
		months int
		want   string
	}{
		{8, "8 mos"},
		{11, "11 mos"},
		{12, "1 yrs"},
		{30, "2 yrs"},
	}
	for _, tt := range tests {
		if got := FormatTenure(tt.months); got != tt.want {
			t.Errorf("FormatTenure(%d) = %q, want %q", tt.months, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  int
	}{
		{"L5", 5},
		{"l2", 2},
		{"7", 7},
		{"", 3},
		{"Senior", 3},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.level); got != tt.want {
			t.Errorf("ParseLevel(%q) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestManagerSeq(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if _, ok := ManagerSeq(4, 6, 10, rng); ok {
		t.Error("level 6 must have no manager")
	}
	if _, ok := ManagerSeq(1, 2, 10, rng); ok {
		t.Error("first row juniors have nobody earlier to report to")
	}
	for i := 0; i < 50; i++ {
		mgr, ok := ManagerSeq(5, 3, 10, rng)
		if !ok {
			t.Fatal("junior with earlier rows must get a manager")
		}
		if mgr < 1 || mgr >= 5 {
			t.Fatalf("junior manager seq %d out of range [1,4]", mgr)
		}
	}
	if mgr, ok := ManagerSeq(2, 4, 10, rng); !ok || mgr != 1 {
		t.Errorf("mid-level manager = %d,%v, want 1,true", mgr, ok)
	}
	if _, ok := ManagerSeq(2, 4, 3, rng); ok {
		t.Error("mid-level in tiny roster must have no manager")
	}
}
