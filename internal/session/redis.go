package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Nandhini-35/travel-planner-AI/internal/models"
)

// RedisStore keeps transcripts in Redis so sessions survive restarts
// and can be shared across replicas. Each transcript lives under its
// own key with a TTL refreshed on every save.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (models.Transcript, error) {
	data, err := s.client.Get(ctx, transcriptKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Transcript{}, nil
	}
	if err != nil {
		return models.Transcript{}, fmt.Errorf("failed to load transcript: %w", err)
	}

	var transcript models.Transcript
	if err := json.Unmarshal(data, &transcript); err != nil {
		return models.Transcript{}, fmt.Errorf("failed to decode transcript: %w", err)
	}
	return transcript, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, transcript models.Transcript) error {
	data, err := json.Marshal(transcript)
	if err != nil {
		return fmt.Errorf("failed to encode transcript: %w", err)
	}

	if err := s.client.Set(ctx, transcriptKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save transcript: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, transcriptKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear transcript: %w", err)
	}
	return nil
}

func transcriptKey(sessionID string) string {
	return fmt.Sprintf("chat_history:%s", sessionID)
}
