package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/luminus-backend/internal/clients/neo4jdb"
	"github.com/yungbote/luminus-backend/internal/derive"
	"github.com/yungbote/luminus-backend/internal/pkg/logger"
	"github.com/yungbote/luminus-backend/internal/repos"
	"github.com/yungbote/luminus-backend/internal/tabular"
	"github.com/yungbote/luminus-backend/internal/types"
)

// OutputMode selects which of the two historical response shapes an upload
// returns.
type OutputMode string

const (
	// ModePromotion echoes CSV-named fields verbatim plus the synthesized
	// activity collections and the relationship edge list.
	ModePromotion OutputMode = "promotion"
	// ModeDetail returns a compact employee list plus an id-keyed detail map.
	ModeDetail OutputMode = "detail"
)

// PromotionEmployee mirrors one roster row in the promotion shape. The
// capitalized fields carry the source CSV column names on the wire.
type PromotionEmployee struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Role        string            `json:"role"`
	Avatar      string            `json:"avatar,omitempty"`
	Skills      []string          `json:"skills"`
	ImpactScore int               `json:"impact_score"`
	BurnoutRisk types.BurnoutRisk `json:"burnout_risk"`

	EmployeeID                string  `json:"Employee_ID"`
	CurrentRole               string  `json:"Current_Role"`
	Level                     string  `json:"Level"`
	TenureMonths              int     `json:"Tenure_Months"`
	UnassignedTasksPicked     int     `json:"Unassigned_Tasks_Picked"`
	HelpRequestReplies        int     `json:"Help_Request_Replies"`
	CrossTeamCollaborations   int     `json:"Cross_Team_Collaborations"`
	CriticalIncidentOwnership int     `json:"Critical_Incident_Ownership"`
	PeerReviewScore           float64 `json:"Peer_Review_Score"`
	ArchitecturalChanges      int     `json:"Architectural_Changes"`
	AvgTaskComplexity         float64 `json:"Avg_Task_Complexity"`
	TasksCompletedCount       int     `json:"Tasks_Completed_Count"`
	LateNightCommits          int     `json:"Late_Night_Commits"`
	WeekendActivityLog        int     `json:"Weekend_Activity_Log"`
	VacationDaysUnused        int     `json:"Vacation_Days_Unused"`
	SentimentTrend            float64 `json:"Sentiment_Trend"`
	RawAchievementLog         string  `json:"Raw_Achievement_Log"`

	ChatLogs    []types.ChatLog    `json:"chat_logs"`
	JiraTickets []types.JiraTicket `json:"jira_tickets"`
	CommitLogs  []types.CommitLog  `json:"commit_logs"`
}

type RelationshipEdge struct {
	SourceID string `json:"source_id"`
	TargetID string `json:"target_id"`
	Strength int    `json:"strength"`
	Type     string `json:"type"`
}

type PromotionRoster struct {
	Employees     []PromotionEmployee `json:"employees"`
	Relationships []RelationshipEdge  `json:"relationships"`
}

type EmployeeSummary struct {
	ID           string            `json:"id"`
	EmployeeCode string            `json:"employeeCode"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Role         string            `json:"role"`
	Level        string            `json:"level"`
	Department   string            `json:"department"`
	Team         string            `json:"team"`
	ManagerID    *string           `json:"managerId"`
	JoinDate     string            `json:"joinDate"`
	Location     string            `json:"location"`
	Avatar       string            `json:"avatar,omitempty"`
	ImpactScore  int               `json:"impactScore"`
	BurnoutRisk  types.BurnoutRisk `json:"burnoutRisk"`
}

type EmployeeDetail struct {
	EmployeeSummary
	ManagerName       string           `json:"managerName,omitempty"`
	Stats             types.SkillStats `json:"stats"`
	Skills            []string         `json:"skills"`
	Projects          int              `json:"projects"`
	Collaborators     []string         `json:"collaborators"`
	Tenure            string           `json:"tenure"`
	RecentAchievement string           `json:"recentAchievement"`
}

type DetailRoster struct {
	Employees       []EmployeeSummary         `json:"employees"`
	EmployeeDetails map[string]EmployeeDetail `json:"employeeDetails"`
}

// IngestResult carries exactly one of the two shapes, tagged by Mode.
type IngestResult struct {
	Mode      OutputMode
	Promotion *PromotionRoster
	Detail    *DetailRoster
}

type RosterService interface {
	Ingest(ctx context.Context, ownerID uuid.UUID, data []byte, mode OutputMode) (*IngestResult, error)
}

type rosterService struct {
	db               *gorm.DB
	employeeRepo     repos.EmployeeRepo
	relationshipRepo repos.RelationshipRepo
	graph            *neo4jdb.Client
	weights          derive.Weights
	log              *logger.Logger
}

func NewRosterService(db *gorm.DB, employeeRepo repos.EmployeeRepo, relationshipRepo repos.RelationshipRepo, graph *neo4jdb.Client, weights derive.Weights, baseLog *logger.Logger) RosterService {
	serviceLog := baseLog.With("service", "RosterService")
	return &rosterService{
		db:               db,
		employeeRepo:     employeeRepo,
		relationshipRepo: relationshipRepo,
		graph:            graph,
		weights:          weights,
		log:              serviceLog,
	}
}

// Ingest decodes one CSV upload, derives the full roster, replaces the
// owner's persisted batch inside one transaction, and shapes the response.
// A decode failure surfaces as malformed input; everything past decoding is a
// server-side failure.
func (s *rosterService) Ingest(ctx context.Context, ownerID uuid.UUID, data []byte, mode OutputMode) (*IngestResult, error) {
	rows, err := tabular.Decode(data)
	if err != nil {
		return nil, err
	}

	profiles := derive.BuildRoster(rows, s.weights, time.Now().UTC())
	edges := derive.Relationships(profiles)

	employees, relationships, err := s.persistBatch(ctx, ownerID, profiles, edges)
	if err != nil {
		return nil, err
	}

	if s.graph != nil {
		if err := s.graph.MirrorRoster(ctx, ownerID, employees, relationships); err != nil {
			s.log.Warn("Graph mirror failed, relational batch is still committed", "error", err)
		}
	}

	s.log.Info("Roster ingested", "owner_id", ownerID, "employees", len(profiles), "relationships", len(edges))

	result := &IngestResult{Mode: mode}
	switch mode {
	case ModeDetail:
		result.Detail = BuildDetailRoster(profiles, edges)
	default:
		result.Mode = ModePromotion
		result.Promotion = BuildPromotionRoster(profiles, edges)
	}
	return result, nil
}

// persistBatch replaces the owner's roster with delete-then-insert semantics
// inside one transaction. Batch-scoped ids are remapped to fresh UUIDs, and
// duplicate (source, target, type) edges collapse keeping the strongest.
func (s *rosterService) persistBatch(ctx context.Context, ownerID uuid.UUID, profiles []derive.Profile, edges []derive.Edge) ([]*types.Employee, []*types.Relationship, error) {
	ids := make(map[string]uuid.UUID, len(profiles))
	for _, p := range profiles {
		ids[p.ID] = uuid.New()
	}

	collaborators := collaboratorsBySource(edges)

	employees := make([]*types.Employee, 0, len(profiles))
	for _, p := range profiles {
		record, err := employeeRecord(ownerID, p, ids, collaborators[p.ID])
		if err != nil {
			return nil, nil, fmt.Errorf("encode employee %s: %w", p.EmployeeCode, err)
		}
		employees = append(employees, record)
	}

	type edgeKey struct {
		source, target, typ string
	}
	strongest := make(map[edgeKey]derive.Edge)
	order := make([]edgeKey, 0, len(edges))
	for _, e := range edges {
		key := edgeKey{e.SourceID, e.TargetID, e.Type}
		prev, seen := strongest[key]
		if !seen {
			order = append(order, key)
		}
		if !seen || e.Strength > prev.Strength {
			strongest[key] = e
		}
	}

	relationships := make([]*types.Relationship, 0, len(order))
	for _, key := range order {
		e := strongest[key]
		relationships = append(relationships, &types.Relationship{
			ID:       uuid.New(),
			OwnerID:  ownerID,
			SourceID: ids[e.SourceID],
			TargetID: ids[e.TargetID],
			Strength: e.Strength,
			Type:     e.Type,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.relationshipRepo.DeleteByOwner(ctx, tx, ownerID); err != nil {
			return err
		}
		if err := s.employeeRepo.DeleteByOwner(ctx, tx, ownerID); err != nil {
			return err
		}
		if _, err := s.employeeRepo.Create(ctx, tx, employees); err != nil {
			return err
		}
		if _, err := s.relationshipRepo.Create(ctx, tx, relationships); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("persist roster batch: %w", err)
	}
	return employees, relationships, nil
}

func collaboratorsBySource(edges []derive.Edge) map[string][]string {
	out := make(map[string][]string)
	for _, e := range edges {
		if e.Type == types.RelCollaboration {
			out[e.SourceID] = append(out[e.SourceID], e.TargetID)
		}
	}
	return out
}

func employeeRecord(ownerID uuid.UUID, p derive.Profile, ids map[string]uuid.UUID, collaborators []string) (*types.Employee, error) {
	var managerID *uuid.UUID
	managerName := ""
	if p.ManagerID != nil {
		if mid, ok := ids[*p.ManagerID]; ok {
			managerID = &mid
			managerName = p.ManagerName
		}
	}

	collabIDs := make([]string, 0, len(collaborators))
	for _, c := range collaborators {
		if cid, ok := ids[c]; ok {
			collabIDs = append(collabIDs, cid.String())
		}
	}

	skills, err := toJSON(emptyIfNil(p.Skills))
	if err != nil {
		return nil, err
	}
	stats, err := toJSON(p.Stats)
	if err != nil {
		return nil, err
	}
	collabs, err := toJSON(collabIDs)
	if err != nil {
		return nil, err
	}
	chats, err := toJSON(emptyIfNil(p.ChatLogs))
	if err != nil {
		return nil, err
	}
	tickets, err := toJSON(emptyIfNil(p.JiraTickets))
	if err != nil {
		return nil, err
	}
	commits, err := toJSON(emptyIfNil(p.CommitLogs))
	if err != nil {
		return nil, err
	}

	return &types.Employee{
		ID:              ids[p.ID],
		OwnerID:         ownerID,
		BatchSeq:        p.Seq,
		EmployeeCode:    p.EmployeeCode,
		Name:            p.Name,
		Email:           p.Email,
		Role:            p.Role,
		Level:           p.Level,
		Department:      p.Department,
		Team:            p.Team,
		ManagerID:       managerID,
		ManagerName:     managerName,
		JoinDate:        p.JoinDate,
		Location:        p.Location,
		Avatar:          p.Avatar,
		ImpactScore:     p.ImpactScore,
		BurnoutScore:    p.BurnoutScore,
		BurnoutCategory: p.BurnoutCategory,
		TenureMonths:    p.TenureMonths,
		Projects:        p.Projects,

		UnassignedTasksPicked:     p.Counters.UnassignedTasksPicked,
		HelpRequestReplies:        p.Counters.HelpRequestReplies,
		CrossTeamCollaborations:   p.Counters.CrossTeamCollaborations,
		CriticalIncidentOwnership: p.Counters.CriticalIncidentOwnership,
		PeerReviewScore:           p.Counters.PeerReviewScore,
		ArchitecturalChanges:      p.Counters.ArchitecturalChanges,
		AvgTaskComplexity:         p.Counters.AvgTaskComplexity,
		TasksCompletedCount:       p.Counters.TasksCompletedCount,
		LateNightCommits:          p.Counters.LateNightCommits,
		WeekendActivityLog:        p.Counters.WeekendActivityLog,
		VacationDaysUnused:        p.Counters.VacationDaysUnused,
		SentimentTrend:            p.Counters.SentimentTrend,
		RawAchievementLog:         p.RawAchievementLog,

		Skills:        skills,
		Stats:         stats,
		Collaborators: collabs,
		ChatLogs:      chats,
		JiraTickets:   tickets,
		CommitLogs:    commits,
	}, nil
}

// BuildPromotionRoster shapes the promotion response over batch-scoped ids.
func BuildPromotionRoster(profiles []derive.Profile, edges []derive.Edge) *PromotionRoster {
	employees := make([]PromotionEmployee, 0, len(profiles))
	for _, p := range profiles {
		employees = append(employees, PromotionEmployee{
			ID:          p.ID,
			Name:        p.Name,
			Role:        p.Role,
			Avatar:      p.Avatar,
			Skills:      emptyIfNil(p.Skills),
			ImpactScore: p.ImpactScore,
			BurnoutRisk: types.CategoricalBurnout(p.BurnoutCategory),

			EmployeeID:                p.EmployeeCode,
			CurrentRole:               p.Role,
			Level:                     p.Level,
			TenureMonths:              p.TenureMonths,
			UnassignedTasksPicked:     p.Counters.UnassignedTasksPicked,
			HelpRequestReplies:        p.Counters.HelpRequestReplies,
			CrossTeamCollaborations:   p.Counters.CrossTeamCollaborations,
			CriticalIncidentOwnership: p.Counters.CriticalIncidentOwnership,
			PeerReviewScore:           p.Counters.PeerReviewScore,
			ArchitecturalChanges:      p.Counters.ArchitecturalChanges,
			AvgTaskComplexity:         p.Counters.AvgTaskComplexity,
			TasksCompletedCount:       p.Counters.TasksCompletedCount,
			LateNightCommits:          p.Counters.LateNightCommits,
			WeekendActivityLog:        p.Counters.WeekendActivityLog,
			VacationDaysUnused:        p.Counters.VacationDaysUnused,
			SentimentTrend:            p.Counters.SentimentTrend,
			RawAchievementLog:         p.RawAchievementLog,

			ChatLogs:    emptyIfNil(p.ChatLogs),
			JiraTickets: emptyIfNil(p.JiraTickets),
			CommitLogs:  emptyIfNil(p.CommitLogs),
		})
	}

	relationships := make([]RelationshipEdge, 0, len(edges))
	for _, e := range edges {
		relationships = append(relationships, RelationshipEdge{
			SourceID: e.SourceID,
			TargetID: e.TargetID,
			Strength: e.Strength,
			Type:     e.Type,
		})
	}

	return &PromotionRoster{Employees: employees, Relationships: relationships}
}

// BuildDetailRoster shapes the detail-map response over batch-scoped ids.
func BuildDetailRoster(profiles []derive.Profile, edges []derive.Edge) *DetailRoster {
	collaborators := collaboratorsBySource(edges)

	employees := make([]EmployeeSummary, 0, len(profiles))
	details := make(map[string]EmployeeDetail, len(profiles))
	for _, p := range profiles {
		summary := EmployeeSummary{
			ID:           p.ID,
			EmployeeCode: p.EmployeeCode,
			Name:         p.Name,
			Email:        p.Email,
			Role:         p.Role,
			Level:        p.Level,
			Department:   p.Department,
			Team:         p.Team,
			ManagerID:    p.ManagerID,
			JoinDate:     p.JoinDate,
			Location:     p.Location,
			Avatar:       p.Avatar,
			ImpactScore:  p.ImpactScore,
			BurnoutRisk:  types.NumericBurnout(p.BurnoutScore),
		}
		employees = append(employees, summary)
		details[p.ID] = EmployeeDetail{
			EmployeeSummary:   summary,
			ManagerName:       p.ManagerName,
			Stats:             p.Stats,
			Skills:            emptyIfNil(p.Skills),
			Projects:          p.Projects,
			Collaborators:     emptyIfNil(collaborators[p.ID]),
			Tenure:            p.Tenure,
			RecentAchievement: p.RecentAchievement,
		}
	}
	return &DetailRoster{Employees: employees, EmployeeDetails: details}
}

func toJSON(v interface{}) (datatypes.JSON, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
