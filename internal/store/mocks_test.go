package store

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/jonie-n/valodash-backend/internal/logic"
	"github.com/jonie-n/valodash-backend/internal/models"
)

// countingGenerator counts Generate calls
type countingGenerator struct {
	next  logic.MatchGenerator
	calls atomic.Int32
}

func newCountingGenerator() *countingGenerator {
	return &countingGenerator{next: logic.DefaultGenerator()}
}

func (g *countingGenerator) Generate(uid string) *models.UserMatchDocument {
	g.calls.Add(1)
	return g.next.Generate(uid)
}

// MockRedisClient implements RedisClient on top of a map
type MockRedisClient struct {
	mu   sync.Mutex
	Data map[string]string

	GetFunc   func(ctx context.Context, key string) *redis.StringCmd
	SetNXFunc func(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{Data: make(map[string]string)}
}

func (m *MockRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (m *MockRedisClient) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	if m.SetNXFunc != nil {
		return m.SetNXFunc(ctx, key, value, expiration)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Data[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	m.Data[key] = string(value.([]byte))
	return redis.NewBoolResult(true, nil)
}

// MockDBQuerier implements PgPool on top of a map keyed by uid
type MockDBQuerier struct {
	mu   sync.Mutex
	Rows map[string][]byte

	QueryRowFunc func(ctx context.Context, sql string, args ...any) pgx.Row
	ExecFunc     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	ExecCalls    []string
}

func NewMockDBQuerier() *MockDBQuerier {
	return &MockDBQuerier{Rows: make(map[string][]byte)}
}

func (m *MockDBQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if m.QueryRowFunc != nil {
		return m.QueryRowFunc(ctx, sql, args...)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.Rows[args[0].(string)]
	return &MockRow{
		ScanFunc: func(dest ...any) error {
			if !ok {
				return pgx.ErrNoRows
			}
			*dest[0].(*[]byte) = append([]byte(nil), data...)
			return nil
		},
	}
}

func (m *MockDBQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	m.mu.Lock()
	m.ExecCalls = append(m.ExecCalls, sql)
	m.mu.Unlock()

	if m.ExecFunc != nil {
		return m.ExecFunc(ctx, sql, args...)
	}
	if len(args) < 2 {
		return pgconn.NewCommandTag("CREATE TABLE"), nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	uid := args[0].(string)
	if _, ok := m.Rows[uid]; ok {
		return pgconn.NewCommandTag("INSERT 0 0"), nil
	}
	m.Rows[uid] = args[1].([]byte)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

type MockRow struct {
	ScanFunc func(dest ...any) error
}

func (m *MockRow) Scan(dest ...any) error {
	if m.ScanFunc != nil {
		return m.ScanFunc(dest...)
	}
	return nil
}
