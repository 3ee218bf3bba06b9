package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Employee is a persisted roster row together with everything derived from
// it: scores, identity fields, skill stats, and the synthesized activity
// collections. One upload replaces an owner's whole roster, so BatchSeq keeps
// the 1..N position a row held inside its upload.
type Employee struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID  uuid.UUID `gorm:"type:uuid;index;not null;column:owner_id" json:"-"`
	BatchSeq int       `gorm:"not null;column:batch_seq" json:"-"`

	EmployeeCode string     `gorm:"not null;column:employee_code" json:"employeeCode"`
	Name         string     `gorm:"not null;column:name" json:"name"`
	Email        string     `gorm:"column:email" json:"email"`
	Role         string     `gorm:"column:role" json:"role"`
	Level        string     `gorm:"column:level" json:"level"`
	Department   string     `gorm:"column:department" json:"department"`
	Team         string     `gorm:"column:team" json:"team"`
	ManagerID    *uuid.UUID `gorm:"type:uuid;column:manager_id" json:"managerId"`
	ManagerName  string     `gorm:"column:manager_name" json:"managerName,omitempty"`
	JoinDate     string     `gorm:"column:join_date" json:"joinDate"`
	Location     string     `gorm:"column:location" json:"location"`
	Avatar       string     `gorm:"column:avatar" json:"avatar,omitempty"`

	ImpactScore     int    `gorm:"not null;column:impact_score" json:"impactScore"`
	BurnoutScore    int    `gorm:"not null;column:burnout_score" json:"burnoutScore"`
	BurnoutCategory string `gorm:"not null;column:burnout_category" json:"burnoutCategory"`
	TenureMonths    int    `gorm:"not null;column:tenure_months" json:"tenureMonths"`
	Projects        int    `gorm:"not null;column:projects" json:"projects"`

	UnassignedTasksPicked     int     `gorm:"column:unassigned_tasks_picked" json:"-"`
	HelpRequestReplies        int     `gorm:"column:help_request_replies" json:"-"`
	CrossTeamCollaborations   int     `gorm:"column:cross_team_collaborations" json:"-"`
	CriticalIncidentOwnership int     `gorm:"column:critical_incident_ownership" json:"-"`
	PeerReviewScore           float64 `gorm:"column:peer_review_score" json:"-"`
	ArchitecturalChanges      int     `gorm:"column:architectural_changes" json:"-"`
	AvgTaskComplexity         float64 `gorm:"column:avg_task_complexity" json:"-"`
	TasksCompletedCount       int     `gorm:"column:tasks_completed_count" json:"-"`
	LateNightCommits          int     `gorm:"column:late_night_commits" json:"-"`
	WeekendActivityLog        int     `gorm:"column:weekend_activity_log" json:"-"`
	VacationDaysUnused        int     `gorm:"column:vacation_days_unused" json:"-"`
	SentimentTrend            float64 `gorm:"column:sentiment_trend" json:"-"`
	RawAchievementLog         string  `gorm:"column:raw_achievement_log" json:"-"`

	Skills        datatypes.JSON `gorm:"type:jsonb;column:skills" json:"skills"`
	Stats         datatypes.JSON `gorm:"type:jsonb;column:stats" json:"stats"`
	Collaborators datatypes.JSON `gorm:"type:jsonb;column:collaborators" json:"collaborators"`
	ChatLogs      datatypes.JSON `gorm:"type:jsonb;column:chat_logs" json:"chat_logs"`
	JiraTickets   datatypes.JSON `gorm:"type:jsonb;column:jira_tickets" json:"jira_tickets"`
	CommitLogs    datatypes.JSON `gorm:"type:jsonb;column:commit_logs" json:"commit_logs"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Employee) TableName() string {
	return "employee"
}

func (e *Employee) DecodeSkills() []string {
	var out []string
	if len(e.Skills) > 0 {
		_ = json.Unmarshal(e.Skills, &out)
	}
	return out
}

func (e *Employee) DecodeStats() SkillStats {
	var out SkillStats
	if len(e.Stats) > 0 {
		_ = json.Unmarshal(e.Stats, &out)
	}
	return out
}

func (e *Employee) DecodeCollaborators() []string {
	var out []string
	if len(e.Collaborators) > 0 {
		_ = json.Unmarshal(e.Collaborators, &out)
	}
	return out
}

func (e *Employee) DecodeChatLogs() []ChatLog {
	var out []ChatLog
	if len(e.ChatLogs) > 0 {
		_ = json.Unmarshal(e.ChatLogs, &out)
	}
	return out
}

func (e *Employee) DecodeJiraTickets() []JiraTicket {
	var out []JiraTicket
	if len(e.JiraTickets) > 0 {
		_ = json.Unmarshal(e.JiraTickets, &out)
	}
	return out
}

func (e *Employee) DecodeCommitLogs() []CommitLog {
	var out []CommitLog
	if len(e.CommitLogs) > 0 {
		_ = json.Unmarshal(e.CommitLogs, &out)
	}
	return out
}
