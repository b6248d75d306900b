// File: services/assistant/contextStore.go
package assistant

import (
	"context"
	"encoding/json"
	"time"

	"roomly/models"

	"github.com/go-redis/redis/v8"
)

const assistantContextPrefix = "assistant:ctx:"

// ContextStore persists partially extracted booking details between prompts.
type ContextStore interface {
	Get(ctx context.Context, employeeID string) (*models.AssistantContext, error)
	Set(ctx context.Context, employeeID string, aCtx *models.AssistantContext) error
	Clear(ctx context.Context, employeeID string) error
}

// RedisContextStore keeps partially extracted booking details per employee so
// follow-up prompts can fill in what earlier ones omitted.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, employeeID string) (*models.AssistantContext, error) {
	key := assistantContextPrefix + employeeID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.AssistantContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var aCtx models.AssistantContext
	if err := json.Unmarshal([]byte(data), &aCtx); err != nil {
		return nil, err
	}
	return &aCtx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, employeeID string, aCtx *models.AssistantContext) error {
	key := assistantContextPrefix + employeeID
	b, err := json.Marshal(aCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, employeeID string) error {
	key := assistantContextPrefix + employeeID
	return s.client.Del(ctx, key).Err()
}
