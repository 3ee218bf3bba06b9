package neo4jdb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/yungbote/luminus-backend/internal/pkg/logger"
	"github.com/yungbote/luminus-backend/internal/types"
	"github.com/yungbote/luminus-backend/internal/utils"
)

// Client mirrors the relationship graph into Neo4j so the org network can be
// explored with Cypher. The relational store stays the source of truth; every
// mirror write is best-effort.
type Client struct {
	driver   neo4j.DriverWithContext
	database string
	log      *logger.Logger
}

// NewClientFromEnv connects using NEO4J_URI, or returns nil when the mirror
// is not configured. Callers must tolerate a nil client.
func NewClientFromEnv(log *logger.Logger) (*Client, error) {
	uri := utils.GetEnv("NEO4J_URI", "", log)
	if uri == "" {
		log.Info("NEO4J_URI not set, graph mirror disabled")
		return nil, nil
	}
	clientLog := log.With("client", "Neo4j")
	username := utils.GetEnv("NEO4J_USERNAME", "neo4j", log)
	password := utils.GetEnv("NEO4J_PASSWORD", "", log)
	database := utils.GetEnv("NEO4J_DATABASE", "neo4j", log)

	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("verify neo4j connectivity: %w", err)
	}
	clientLog.Info("Connected to Neo4j", "uri", uri, "database", database)

	return &Client{driver: driver, database: database, log: clientLog}, nil
}

func (c *Client) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

// MirrorRoster replaces one owner's subgraph with the freshly ingested batch.
func (c *Client) MirrorRoster(ctx context.Context, ownerID uuid.UUID, employees []*types.Employee, relationships []*types.Relationship) error {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.database,
		AccessMode:   neo4j.AccessModeWrite,
	})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		if _, err := tx.Run(ctx,
			`MATCH (e:Employee {ownerId: $ownerId}) DETACH DELETE e`,
			map[string]interface{}{"ownerId": ownerID.String()},
		); err != nil {
			return nil, err
		}

		for _, emp := range employees {
			if _, err := tx.Run(ctx,
				`MERGE (e:Employee {id: $id})
				 SET e.ownerId = $ownerId,
				     e.name = $name,
				     e.role = $role,
				     e.department = $department,
				     e.team = $team,
				     e.impactScore = $impactScore,
				     e.burnoutCategory = $burnoutCategory`,
				map[string]interface{}{
					"id":              emp.ID.String(),
					"ownerId":         ownerID.String(),
					"name":            emp.Name,
					"role":            emp.Role,
					"department":      emp.Department,
					"team":            emp.Team,
					"impactScore":     emp.ImpactScore,
					"burnoutCategory": emp.BurnoutCategory,
				},
			); err != nil {
				return nil, err
			}
		}

		for _, rel := range relationships {
			if _, err := tx.Run(ctx,
				`MATCH (s:Employee {id: $sourceId}), (t:Employee {id: $targetId})
				 MERGE (s)-[r:RELATES {type: $type}]->(t)
				 SET r.strength = $strength`,
				map[string]interface{}{
					"sourceId": rel.SourceID.String(),
					"targetId": rel.TargetID.String(),
					"type":     rel.Type,
					"strength": rel.Strength,
				},
			); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("mirror roster: %w", err)
	}
	c.log.Debug("Mirrored roster to Neo4j", "employees", len(employees), "relationships", len(relationships))
	return nil
}
