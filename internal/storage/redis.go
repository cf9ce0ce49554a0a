package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ahmadeq/test-clinic-demo/config"
	"github.com/ahmadeq/test-clinic-demo/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logrus.Info("Successfully connected to Redis")

	return client, nil
}

// RedisStore persists the snapshot as a JSON blob under a single key
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (r *RedisStore) Load(ctx context.Context) (*entity.ClinicState, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to read snapshot from redis: %w", err)
	}

	var state entity.ClinicState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot from redis: %w", err)
	}
	return &state, nil
}

func (r *RedisStore) Save(ctx context.Context, state *entity.ClinicState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot to redis: %w", err)
	}
	return nil
}
