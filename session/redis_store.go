// session/redis_store.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	logger "github.com/swarnapay/api/logging"
	"github.com/swarnapay/api/model"
)

// RedisStore keeps session entries in Redis as JSON under "session_<userID>".
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

var _ Store = (*RedisStore)(nil)

func sessionKey(userID string) string {
	return fmt.Sprintf("session_%s", userID)
}

func (s *RedisStore) Get(ctx context.Context, userID string) (*model.AuthUser, error) {
	payload, err := s.client.Get(ctx, sessionKey(userID)).Result()
	if err == redis.Nil {
		logger.Debug("Session not found in cache", zap.String("userID", userID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get session from cache: %w", err)
	}

	var user model.AuthUser
	if err := json.Unmarshal([]byte(payload), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	logger.Debug("Session retrieved from cache", zap.String("userID", userID))
	return &user, nil
}

func (s *RedisStore) Put(ctx context.Context, userID string, user *model.AuthUser) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(userID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache session: %w", err)
	}

	logger.Debug("Session cached successfully", zap.String("userID", userID))
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session from cache: %w", err)
	}
	logger.Debug("Session deleted from cache", zap.String("userID", userID))
	return nil
}
