package store

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestRedisStore_GetOrCreate(t *testing.T) {
	ctx := context.Background()
	client := NewMockRedisClient()
	gen := newCountingGenerator()
	s := NewRedisStore(client, gen)

	first, created, err := s.GetOrCreate(ctx, "alice")
	if err != nil || !created {
		t.Fatalf("expected document to be created, created=%v err=%v", created, err)
	}
	if _, ok := client.Data[RedisKeyPrefix+"alice"]; !ok {
		t.Fatal("expected document under prefixed key")
	}

	second, created, err := s.Create(ctx, "alice")
	if err != nil || created {
		t.Fatalf("expected stored document, created=%v err=%v", created, err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical documents")
	}
	if gen.calls.Load() != 1 {
		t.Errorf("expected 1 generation, got %d", gen.calls.Load())
	}
}

func TestRedisStore_LostSetNXRace(t *testing.T) {
	ctx := context.Background()
	winner := NewMockRedisClient()
	s := NewRedisStore(winner, newCountingGenerator())
	stored, _, err := s.GetOrCreate(ctx, "bob")
	if err != nil {
		t.Fatal(err)
	}

	// First GET misses, SETNX loses, second GET sees the winner's document
	gets := 0
	client := &MockRedisClient{
		GetFunc: func(ctx context.Context, key string) *redis.StringCmd {
			gets++
			if gets == 1 {
				return redis.NewStringResult("", redis.Nil)
			}
			return redis.NewStringResult(winner.Data[key], nil)
		},
		SetNXFunc: func(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
			return redis.NewBoolResult(false, nil)
		},
	}

	doc, created, err := NewRedisStore(client, newCountingGenerator()).GetOrCreate(ctx, "bob")
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if created {
		t.Error("expected the losing writer not to report creation")
	}
	if !reflect.DeepEqual(stored, doc) {
		t.Error("expected the winner's document")
	}
}

func TestRedisStore_Errors(t *testing.T) {
	boom := errors.New("connection refused")

	tests := []struct {
		name   string
		client *MockRedisClient
	}{
		{
			name: "Get fails",
			client: &MockRedisClient{
				GetFunc: func(ctx context.Context, key string) *redis.StringCmd {
					return redis.NewStringResult("", boom)
				},
			},
		},
		{
			name: "SetNX fails",
			client: &MockRedisClient{
				GetFunc: func(ctx context.Context, key string) *redis.StringCmd {
					return redis.NewStringResult("", redis.Nil)
				},
				SetNXFunc: func(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
					return redis.NewBoolResult(false, boom)
				},
			},
		},
		{
			name: "Malformed document",
			client: &MockRedisClient{
				GetFunc: func(ctx context.Context, key string) *redis.StringCmd {
					return redis.NewStringResult("{", nil)
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewRedisStore(tt.client, newCountingGenerator()).GetOrCreate(context.Background(), "carol")
			if err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
