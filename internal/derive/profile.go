package derive

import (
	"fmt"
	"strconv"
	"time"

	"github.com/yungbote/luminus-backend/internal/tabular"
	"github.com/yungbote/luminus-backend/internal/types"
)

// Counters are the raw numeric columns carried through for persistence and
// for the shape that echoes CSV fields verbatim.
type Counters struct {
	UnassignedTasksPicked     int
	HelpRequestReplies        int
	CrossTeamCollaborations   int
	CriticalIncidentOwnership int
	PeerReviewScore           float64
	ArchitecturalChanges      int
	AvgTaskComplexity         float64
	TasksCompletedCount       int
	LateNightCommits          int
	WeekendActivityLog        int
	VacationDaysUnused        int
	SentimentTrend            float64
}

// Profile is the canonical derived entity for one roster row within one
// upload. IDs are the 1-based row position as a string and are only
// meaningful inside the batch; re-upload renumbers everything.
type Profile struct {
	Seq               int
	ID                string
	EmployeeCode      string
	Name              string
	Role              string
	Level             string
	LevelNum          int
	Email             string
	Department        string
	Team              string
	Location          string
	JoinDate          string
	ManagerID         *string
	ManagerName       string
	Avatar            string
	Skills            []string
	ImpactScore       int
	BurnoutScore      int
	BurnoutCategory   string
	Stats             types.SkillStats
	TenureMonths      int
	Tenure            string
	Projects          int
	RecentAchievement string
	RawAchievementLog string
	Counters          Counters
	ChatLogs          []types.ChatLog
	JiraTickets       []types.JiraTicket
	CommitLogs        []types.CommitLog
}

// BuildProfile derives one profile from a raw row at the given 0-based index.
func BuildProfile(row tabular.Row, index, total int, w Weights, now time.Time) Profile {
	seq := index + 1

	code := row.Get(ColEmployeeID)
	if code == "" {
		code = fmt.Sprintf("EMP-%03d", seq)
	}
	rng := NewRand(index, code)

	name := row.Get(ColName)
	role := row.Get(ColCurrentRole)
	level := row.Get(ColLevel)
	levelNum := ParseLevel(level)
	department, team := DepartmentAndTeam(role)
	tenureMonths := row.Int(ColTenureMonths)

	impact := ImpactScore(row, w)
	burnout := BurnoutScore(row, w)

	raw := row.Get(ColRawAchievementLog)
	segments := splitAchievements(raw)
	recent := ""
	if len(segments) > 0 {
		recent = segments[0]
	}

	p := Profile{
		Seq:               seq,
		ID:                strconv.Itoa(seq),
		EmployeeCode:      code,
		Name:              name,
		Role:              role,
		Level:             level,
		LevelNum:          levelNum,
		Email:             EmailFor(name),
		Department:        department,
		Team:              team,
		Location:          LocationFor(index),
		JoinDate:          JoinDate(now, tenureMonths),
		Avatar:            row.Get(ColAvatar),
		Skills:            splitAchievements(row.Get(ColSkills)),
		ImpactScore:       impact,
		BurnoutScore:      burnout,
		BurnoutCategory:   types.BurnoutCategoryForScore(burnout),
		Stats:             SkillStatsFor(row),
		TenureMonths:      tenureMonths,
		Tenure:            FormatTenure(tenureMonths),
		Projects:          maxInt(1, impact/10),
		RecentAchievement: recent,
		RawAchievementLog: raw,
		Counters: Counters{
			UnassignedTasksPicked:     row.Int(ColUnassignedTasksPicked),
			HelpRequestReplies:        row.Int(ColHelpRequestReplies),
			CrossTeamCollaborations:   row.Int(ColCrossTeamCollaborations),
			CriticalIncidentOwnership: row.Int(ColCriticalIncidentOwnership),
			PeerReviewScore:           row.Float(ColPeerReviewScore),
			ArchitecturalChanges:      row.Int(ColArchitecturalChanges),
			AvgTaskComplexity:         row.Float(ColAvgTaskComplexity),
			TasksCompletedCount:       row.Int(ColTasksCompletedCount),
			LateNightCommits:          row.Int(ColLateNightCommits),
			WeekendActivityLog:        row.Int(ColWeekendActivityLog),
			VacationDaysUnused:        row.Int(ColVacationDaysUnused),
			SentimentTrend:            row.Float(ColSentimentTrend),
		},
		ChatLogs:    ChatLogs(row, rng),
		JiraTickets: JiraTickets(row, rng),
		CommitLogs:  CommitLogs(row, rng),
	}

	if mgr, ok := ManagerSeq(seq, levelNum, total, rng); ok {
		id := strconv.Itoa(mgr)
		p.ManagerID = &id
	}
	return p
}

// BuildRoster derives the whole batch and resolves manager names from the
// assigned reporting lines.
func BuildRoster(rows []tabular.Row, w Weights, now time.Time) []Profile {
	profiles := make([]Profile, 0, len(rows))
	for i, row := range rows {
		profiles = append(profiles, BuildProfile(row, i, len(rows), w, now))
	}
	for i := range profiles {
		if profiles[i].ManagerID == nil {
			continue
		}
		mgr, err := strconv.Atoi(*profiles[i].ManagerID)
		if err != nil || mgr < 1 || mgr > len(profiles) || mgr == profiles[i].Seq {
			profiles[i].ManagerID = nil
			continue
		}
		profiles[i].ManagerName = profiles[mgr-1].Name
	}
	return profiles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
