package app

import (
	"github.com/yungbote/luminus-backend/internal/clients/huggingface"
	"github.com/yungbote/luminus-backend/internal/clients/neo4jdb"
	redisclient "github.com/yungbote/luminus-backend/internal/clients/redis"
	"github.com/yungbote/luminus-backend/internal/pkg/logger"
)

type Clients struct {
	Sessions redisclient.SessionStore
	Oracle   huggingface.Client
	Graph    *neo4jdb.Client
}

// wireClients builds the optional backing services. Redis falls back to the
// in-memory session store, the sentiment oracle and graph mirror stay nil
// when unconfigured.
func wireClients(log *logger.Logger) Clients {
	sessions, err := redisclient.NewSessionStore(log)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory sessions", "error", err)
		sessions = redisclient.NewMemorySessionStore()
	}

	oracle := huggingface.NewClientFromEnv(log)

	graph, err := neo4jdb.NewClientFromEnv(log)
	if err != nil {
		log.Warn("Neo4j unavailable, graph mirroring disabled", "error", err)
		graph = nil
	}

	return Clients{Sessions: sessions, Oracle: oracle, Graph: graph}
}
