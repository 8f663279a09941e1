// File: services/intelligence/predictionStore.go
package ai

import (
	"context"
	"encoding/json"
	"time"

	"snapvroom/models"

	"github.com/go-redis/redis/v8"
)

const predictionPrefix = "ai:prediction:"

// RedisPredictionStore caches the latest prediction per session id. It is an
// advisory side-channel only; the canonical booking never reads from it.
type RedisPredictionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPredictionStore(client *redis.Client, ttl time.Duration) *RedisPredictionStore {
	return &RedisPredictionStore{client: client, ttl: ttl}
}

func (s *RedisPredictionStore) Get(ctx context.Context, sessionID string) (*models.CarPreferencePrediction, error) {
	key := predictionPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var prediction models.CarPreferencePrediction
	if err := json.Unmarshal([]byte(data), &prediction); err != nil {
		return nil, err
	}
	return &prediction, nil
}

func (s *RedisPredictionStore) Set(ctx context.Context, sessionID string, prediction *models.CarPreferencePrediction) error {
	key := predictionPrefix + sessionID
	b, err := json.Marshal(prediction)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisPredictionStore) Clear(ctx context.Context, sessionID string) error {
	key := predictionPrefix + sessionID
	return s.client.Del(ctx, key).Err()
}
