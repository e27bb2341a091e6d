// Package redis stores per-session "topic already viewed" flags.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/itchan-dev/boards/internal/config"
	"github.com/itchan-dev/boards/internal/domain"
	"github.com/itchan-dev/boards/internal/logger"
	"github.com/redis/go-redis/v9"
)

const viewKeyPrefix = "view_topic"

type ViewStore struct {
	client *redis.Client
	ttl    time.Duration
}

func New(ctx context.Context, cfg *config.Config) (*ViewStore, error) {
	logger.Log.Info("connecting to redis", "addr", cfg.Public.Redis.Addr)
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Public.Redis.Addr,
		Password: cfg.Private.RedisPassword,
		DB:       cfg.Public.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return NewWithClient(client, cfg.SessionTTL()), nil
}

// NewWithClient wraps an existing client. Flags expire after ttl, which should
// match the session cookie lifetime.
func NewWithClient(client *redis.Client, ttl time.Duration) *ViewStore {
	return &ViewStore{client: client, ttl: ttl}
}

func viewKey(session domain.SessionId, topic domain.TopicId) string {
	return fmt.Sprintf("%s:%s:%d", viewKeyPrefix, session, topic)
}

// MarkViewed atomically sets the flag for (session, topic). It reports true
// only for the single caller that set it first.
func (s *ViewStore) MarkViewed(ctx context.Context, session domain.SessionId, topic domain.TopicId) (bool, error) {
	first, err := s.client.SetNX(ctx, viewKey(session, topic), 1, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to set view flag: %w", err)
	}
	return first, nil
}

// Forget clears the flag so the next view counts again.
func (s *ViewStore) Forget(ctx context.Context, session domain.SessionId, topic domain.TopicId) error {
	if err := s.client.Del(ctx, viewKey(session, topic)).Err(); err != nil {
		return fmt.Errorf("failed to clear view flag: %w", err)
	}
	return nil
}

func (s *ViewStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *ViewStore) Close() error {
	return s.client.Close()
}
