package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	apperrors "github.com/yungbote/luminus-backend/internal/pkg/errors"
	"github.com/yungbote/luminus-backend/internal/pkg/logger"
	"github.com/yungbote/luminus-backend/internal/utils"
)

// SessionStore holds refresh tokens. Tokens are opaque handles; everything
// about the session lives server-side so revocation is immediate.
type SessionStore interface {
	Issue(ctx context.Context, userID uuid.UUID, ttl time.Duration) (string, error)
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
	Revoke(ctx context.Context, token string) error
	Close() error
}

type sessionStore struct {
	rdb    *goredis.Client
	prefix string
	log    *logger.Logger
}

// NewSessionStore connects to Redis from REDIS_ADDR and pings it once so a
// bad address fails at startup, not at first login.
func NewSessionStore(log *logger.Logger) (SessionStore, error) {
	storeLog := log.With("client", "SessionStore")
	addr := utils.GetEnv("REDIS_ADDR", "localhost:6379", log)
	password := utils.GetEnv("REDIS_PASSWORD", "", log)
	db := utils.GetEnvAsInt("REDIS_DB", 0, log)

	rdb := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	storeLog.Info("Connected to Redis", "addr", addr)

	return &sessionStore{rdb: rdb, prefix: "session:", log: storeLog}, nil
}

func (s *sessionStore) Issue(ctx context.Context, userID uuid.UUID, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, s.prefix+token, userID.String(), ttl).Err(); err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}
	return token, nil
}

func (s *sessionStore) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.rdb.Get(ctx, s.prefix+token).Result()
	if err == goredis.Nil {
		return uuid.Nil, apperrors.ErrUnauthorized
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolve session: %w", err)
	}
	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, apperrors.ErrUnauthorized
	}
	return userID, nil
}

func (s *sessionStore) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, s.prefix+token).Err()
}

func (s *sessionStore) Close() error {
	return s.rdb.Close()
}

type memorySession struct {
	userID    uuid.UUID
	expiresAt time.Time
}

type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]memorySession
}

// NewMemorySessionStore is the in-process fallback used when Redis is not
// configured. Sessions do not survive a restart.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{sessions: make(map[string]memorySession)}
}

func (s *memorySessionStore) Issue(_ context.Context, userID uuid.UUID, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memorySession{userID: userID, expiresAt: time.Now().Add(ttl)}
	return token, nil
}

func (s *memorySessionStore) Resolve(_ context.Context, token string) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok || time.Now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return uuid.Nil, apperrors.ErrUnauthorized
	}
	return sess.userID, nil
}

func (s *memorySessionStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *memorySessionStore) Close() error {
	return nil
}
