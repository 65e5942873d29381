package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jonie-n/valodash-backend/internal/logic"
	"github.com/jonie-n/valodash-backend/internal/models"
)

// RedisKeyPrefix namespaces document keys
const RedisKeyPrefix = "valodash:matches:"

// RedisClient defines the subset of the Redis client used by RedisStore
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// RedisStore keeps each document as a JSON string under RedisKeyPrefix+uid.
// SETNX makes creation atomic across API replicas.
type RedisStore struct {
	client    RedisClient
	generator logic.MatchGenerator
}

func NewRedisStore(client RedisClient, generator logic.MatchGenerator) *RedisStore {
	return &RedisStore{client: client, generator: generator}
}

// NewRedisClient parses url, connects and pings the server.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (s *RedisStore) GetOrCreate(ctx context.Context, uid string) (*models.UserMatchDocument, bool, error) {
	if uid == "" {
		return nil, false, ErrEmptyUID
	}

	key := RedisKeyPrefix + uid
	doc, err := s.get(ctx, key, uid)
	if err == nil {
		return doc, false, nil
	}
	if !errors.Is(err, redis.Nil) {
		return nil, false, err
	}

	doc = s.generator.Generate(uid)
	data, err := encodeDocument(doc)
	if err != nil {
		return nil, false, err
	}

	ok, err := s.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, false, fmt.Errorf("redis setnx %s: %w", key, err)
	}
	if ok {
		return doc, true, nil
	}

	// Another writer created it between GET and SETNX
	doc, err = s.get(ctx, key, uid)
	if err != nil {
		return nil, false, err
	}
	return doc, false, nil
}

func (s *RedisStore) Create(ctx context.Context, uid string) (*models.UserMatchDocument, bool, error) {
	return s.GetOrCreate(ctx, uid)
}

// get returns redis.Nil unwrapped on a miss
func (s *RedisStore) get(ctx context.Context, key, uid string) (*models.UserMatchDocument, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return decodeDocument(uid, data)
}
