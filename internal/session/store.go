package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

const keyPrefix = "session:"

type Session struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Store keeps login sessions in redis under session:<id> with a fixed TTL.
type Store struct {
	rdb RedisClient
	ttl time.Duration
}

func NewStore(rdb RedisClient, ttl time.Duration) *Store {
	return &Store{
		rdb: rdb,
		ttl: ttl,
	}
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create starts a session for userID and returns its id.
func (s *Store) Create(ctx context.Context, userID string) (string, error) {
	id := uuid.NewString()

	b, err := json.Marshal(Session{UserID: userID, CreatedAt: time.Now().UTC()})
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	if err := s.rdb.Set(ctx, keyPrefix+id, b, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return id, nil
}

func (s *Store) Get(ctx context.Context, id string) (Session, error) {
	val, err := s.rdb.Get(ctx, keyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, fmt.Errorf("load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return Session{}, fmt.Errorf("decode session: %w", err)
	}

	return sess, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
