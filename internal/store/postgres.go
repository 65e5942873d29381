package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonie-n/valodash-backend/internal/logic"
	"github.com/jonie-n/valodash-backend/internal/models"
)

const (
	createTableSQL = `
		CREATE TABLE IF NOT EXISTS match_documents (
			uid        TEXT PRIMARY KEY,
			document   JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	selectDocumentSQL = `SELECT document FROM match_documents WHERE uid = $1`
	insertDocumentSQL = `INSERT INTO match_documents (uid, document) VALUES ($1, $2) ON CONFLICT (uid) DO NOTHING`
)

// PgPool defines the interface for the PostgreSQL connection pool
type PgPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresStore keeps documents in the match_documents table.
// ON CONFLICT DO NOTHING makes creation atomic; the loser re-reads the winner's row.
type PostgresStore struct {
	db        PgPool
	generator logic.MatchGenerator
}

func NewPostgresStore(db PgPool, generator logic.MatchGenerator) *PostgresStore {
	return &PostgresStore{db: db, generator: generator}
}

// NewPostgresPool connects to url and pings the database.
func NewPostgresPool(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// EnsureSchema creates the match_documents table if it does not exist
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("create match_documents: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetOrCreate(ctx context.Context, uid string) (*models.UserMatchDocument, bool, error) {
	if uid == "" {
		return nil, false, ErrEmptyUID
	}

	doc, err := s.get(ctx, uid)
	if err == nil {
		return doc, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	doc = s.generator.Generate(uid)
	data, err := encodeDocument(doc)
	if err != nil {
		return nil, false, err
	}

	tag, err := s.db.Exec(ctx, insertDocumentSQL, uid, data)
	if err != nil {
		return nil, false, fmt.Errorf("insert document for %q: %w", uid, err)
	}
	if tag.RowsAffected() == 1 {
		return doc, true, nil
	}

	doc, err = s.get(ctx, uid)
	if err != nil {
		return nil, false, err
	}
	return doc, false, nil
}

func (s *PostgresStore) Create(ctx context.Context, uid string) (*models.UserMatchDocument, bool, error) {
	return s.GetOrCreate(ctx, uid)
}

// get returns pgx.ErrNoRows unwrapped on a miss
func (s *PostgresStore) get(ctx context.Context, uid string) (*models.UserMatchDocument, error) {
	var data []byte
	err := s.db.QueryRow(ctx, selectDocumentSQL, uid).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("select document for %q: %w", uid, err)
	}
	return decodeDocument(uid, data)
}
