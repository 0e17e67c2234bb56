package gateway

import (
	"context"
	"errors"
	"fmt"

	"prescripto-patient-client/internal/domain/gateway"

	"github.com/redis/go-redis/v9"
)

// sessionTokenKey is the fixed storage key; one client instance holds at
// most one session.
const sessionTokenKey = "patient_client:session_token"

// RedisTokenStorage persists the session token in redis, for deployments
// where the client should survive host restarts or run on shared
// infrastructure.
type RedisTokenStorage struct {
	client *redis.Client
}

func NewRedisTokenStorage(client *redis.Client) *RedisTokenStorage {
	return &RedisTokenStorage{client: client}
}

var _ gateway.TokenStorage = (*RedisTokenStorage)(nil)

func (s *RedisTokenStorage) Load(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, sessionTokenKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", gateway.ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("load token from redis: %w", err)
	}
	if token == "" {
		return "", gateway.ErrNoToken
	}
	return token, nil
}

func (s *RedisTokenStorage) Save(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, sessionTokenKey, token, 0).Err(); err != nil {
		return fmt.Errorf("save token to redis: %w", err)
	}
	return nil
}

func (s *RedisTokenStorage) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionTokenKey).Err(); err != nil {
		return fmt.Errorf("clear token from redis: %w", err)
	}
	return nil
}
