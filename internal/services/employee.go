package services

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/luminus-backend/internal/derive"
	"github.com/yungbote/luminus-backend/internal/pkg/logger"
	"github.com/yungbote/luminus-backend/internal/repos"
	"github.com/yungbote/luminus-backend/internal/types"
)

// ListOptions extends the repo filter with service-side narrowing and
// ordering.
type ListOptions struct {
	Search      string
	Department  string
	BurnoutRisk string
	SortBy      string
	SortOrder   string
}

// EmployeeInsight is the single-employee view: the stored detail enriched
// with activity-adjusted scores and a generated narrative.
type EmployeeInsight struct {
	EmployeeDetail
	BurnoutScore int                `json:"burnoutScore"`
	AISummary    string             `json:"ai_summary"`
	ChatLogs     []types.ChatLog    `json:"chat_logs"`
	JiraTickets  []types.JiraTicket `json:"jira_tickets"`
	CommitLogs   []types.CommitLog  `json:"commit_logs"`
}

// NetworkGraph is the persisted collaboration graph for one owner.
type NetworkGraph struct {
	Employees     []EmployeeSummary  `json:"employees"`
	Relationships []RelationshipEdge `json:"relationships"`
}

type EmployeeService interface {
	List(ctx context.Context, ownerID uuid.UUID, opts ListOptions) ([]EmployeeSummary, error)
	Get(ctx context.Context, ownerID, employeeID uuid.UUID) (*EmployeeInsight, error)
	Delete(ctx context.Context, ownerID, employeeID uuid.UUID) error
	Graph(ctx context.Context, ownerID uuid.UUID) (*NetworkGraph, error)
	Dashboard(ctx context.Context, ownerID uuid.UUID) (*DetailRoster, error)
}

type employeeService struct {
	db               *gorm.DB
	employeeRepo     repos.EmployeeRepo
	relationshipRepo repos.RelationshipRepo
	log              *logger.Logger
}

func NewEmployeeService(db *gorm.DB, employeeRepo repos.EmployeeRepo, relationshipRepo repos.RelationshipRepo, baseLog *logger.Logger) EmployeeService {
	serviceLog := baseLog.With("service", "EmployeeService")
	return &employeeService{
		db:               db,
		employeeRepo:     employeeRepo,
		relationshipRepo: relationshipRepo,
		log:              serviceLog,
	}
}

func (s *employeeService) List(ctx context.Context, ownerID uuid.UUID, opts ListOptions) ([]EmployeeSummary, error) {
	records, err := s.employeeRepo.GetByOwner(ctx, nil, ownerID, repos.EmployeeFilter{
		Search:     opts.Search,
		Department: opts.Department,
	})
	if err != nil {
		return nil, err
	}

	if risk := types.NormalizeBurnoutCategory(opts.BurnoutRisk); opts.BurnoutRisk != "" && opts.BurnoutRisk != "all" {
		filtered := records[:0]
		for _, r := range records {
			if r.BurnoutCategory == risk {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	sortRecords(records, opts.SortBy, opts.SortOrder)

	summaries := make([]EmployeeSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, summaryFromRecord(r))
	}
	return summaries, nil
}

func (s *employeeService) Get(ctx context.Context, ownerID, employeeID uuid.UUID) (*EmployeeInsight, error) {
	record, err := s.employeeRepo.GetByID(ctx, nil, ownerID, employeeID)
	if err != nil {
		return nil, err
	}

	chats := record.DecodeChatLogs()
	tickets := record.DecodeJiraTickets()
	commits := record.DecodeCommitLogs()

	burnout := derive.AdjustedBurnoutScore(record.BurnoutCategory, commits, chats)
	impact := derive.AdjustedImpactScore(record.ImpactScore, tickets, commits, chats)

	detail := detailFromRecord(record)
	detail.ImpactScore = impact
	detail.BurnoutRisk = types.NumericBurnout(burnout)

	summary := derive.Summary(derive.Profile{
		Name:         record.Name,
		Role:         record.Role,
		Skills:       record.DecodeSkills(),
		ImpactScore:  impact,
		BurnoutScore: burnout,
	})

	return &EmployeeInsight{
		EmployeeDetail: detail,
		BurnoutScore:   burnout,
		AISummary:      summary,
		ChatLogs:       chats,
		JiraTickets:    tickets,
		CommitLogs:     commits,
	}, nil
}

// Delete removes one employee and every edge touching them, in one
// transaction.
func (s *employeeService) Delete(ctx context.Context, ownerID, employeeID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.relationshipRepo.DeleteByEmployee(ctx, tx, ownerID, employeeID); err != nil {
			return err
		}
		return s.employeeRepo.DeleteByID(ctx, tx, ownerID, employeeID)
	})
}

func (s *employeeService) Graph(ctx context.Context, ownerID uuid.UUID) (*NetworkGraph, error) {
	records, err := s.employeeRepo.GetByOwner(ctx, nil, ownerID, repos.EmployeeFilter{})
	if err != nil {
		return nil, err
	}
	relationships, err := s.relationshipRepo.GetByOwner(ctx, nil, ownerID)
	if err != nil {
		return nil, err
	}

	graph := &NetworkGraph{
		Employees:     make([]EmployeeSummary, 0, len(records)),
		Relationships: make([]RelationshipEdge, 0, len(relationships)),
	}
	for _, r := range records {
		graph.Employees = append(graph.Employees, summaryFromRecord(r))
	}
	for _, rel := range relationships {
		graph.Relationships = append(graph.Relationships, RelationshipEdge{
			SourceID: rel.SourceID.String(),
			TargetID: rel.TargetID.String(),
			Strength: rel.Strength,
			Type:     rel.Type,
		})
	}
	return graph, nil
}

// Dashboard rebuilds the detail-map shape from the persisted roster, keyed
// by stored ids instead of batch positions.
func (s *employeeService) Dashboard(ctx context.Context, ownerID uuid.UUID) (*DetailRoster, error) {
	records, err := s.employeeRepo.GetByOwner(ctx, nil, ownerID, repos.EmployeeFilter{})
	if err != nil {
		return nil, err
	}

	roster := &DetailRoster{
		Employees:       make([]EmployeeSummary, 0, len(records)),
		EmployeeDetails: make(map[string]EmployeeDetail, len(records)),
	}
	for _, r := range records {
		summary := summaryFromRecord(r)
		roster.Employees = append(roster.Employees, summary)
		roster.EmployeeDetails[summary.ID] = detailFromRecord(r)
	}
	return roster, nil
}

func sortRecords(records []*types.Employee, sortBy, order string) {
	if sortBy == "" {
		return
	}
	desc := strings.EqualFold(order, "desc")
	riskOrder := map[string]int{types.BurnoutLow: 1, types.BurnoutMedium: 2, types.BurnoutHigh: 3}

	less := func(a, b *types.Employee) bool { return a.BatchSeq < b.BatchSeq }
	switch sortBy {
	case "name":
		less = func(a, b *types.Employee) bool { return a.Name < b.Name }
	case "impact", "impactScore":
		less = func(a, b *types.Employee) bool { return a.ImpactScore < b.ImpactScore }
	case "burnout":
		less = func(a, b *types.Employee) bool { return riskOrder[a.BurnoutCategory] < riskOrder[b.BurnoutCategory] }
	case "tenure":
		less = func(a, b *types.Employee) bool { return a.TenureMonths < b.TenureMonths }
	}

	sort.SliceStable(records, func(i, j int) bool {
		if desc {
			return less(records[j], records[i])
		}
		return less(records[i], records[j])
	})
}

func summaryFromRecord(e *types.Employee) EmployeeSummary {
	var managerID *string
	if e.ManagerID != nil {
		id := e.ManagerID.String()
		managerID = &id
	}
	avatar := e.Avatar
	if avatar == "" {
		avatar = "/api/employee/" + e.ID.String() + "/avatar"
	}
	return EmployeeSummary{
		ID:           e.ID.String(),
		EmployeeCode: e.EmployeeCode,
		Name:         e.Name,
		Email:        e.Email,
		Role:         e.Role,
		Level:        e.Level,
		Department:   e.Department,
		Team:         e.Team,
		ManagerID:    managerID,
		JoinDate:     e.JoinDate,
		Location:     e.Location,
		Avatar:       avatar,
		ImpactScore:  e.ImpactScore,
		BurnoutRisk:  types.NumericBurnout(e.BurnoutScore),
	}
}

func detailFromRecord(e *types.Employee) EmployeeDetail {
	return EmployeeDetail{
		EmployeeSummary:   summaryFromRecord(e),
		ManagerName:       e.ManagerName,
		Stats:             e.DecodeStats(),
		Skills:            e.DecodeSkills(),
		Projects:          e.Projects,
		Collaborators:     e.DecodeCollaborators(),
		Tenure:            derive.FormatTenure(e.TenureMonths),
		RecentAchievement: firstAchievement(e.RawAchievementLog),
	}
}

func firstAchievement(raw string) string {
	for _, seg := range strings.Split(raw, "|") {
		if s := strings.TrimSpace(seg); s != "" {
			return s
		}
	}
	return ""
}
