package store

import (
	"context"
	"sync"

	"github.com/jonie-n/valodash-backend/internal/logic"
	"github.com/jonie-n/valodash-backend/internal/models"
)

// MemoryStore keeps encoded documents in a map. Every read decodes a fresh copy.
type MemoryStore struct {
	mu        sync.Mutex
	docs      map[string][]byte
	generator logic.MatchGenerator
}

func NewMemoryStore(generator logic.MatchGenerator) *MemoryStore {
	return &MemoryStore{
		docs:      make(map[string][]byte),
		generator: generator,
	}
}

func (s *MemoryStore) GetOrCreate(ctx context.Context, uid string) (*models.UserMatchDocument, bool, error) {
	if uid == "" {
		return nil, false, ErrEmptyUID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if data, ok := s.docs[uid]; ok {
		doc, err := decodeDocument(uid, data)
		return doc, false, err
	}

	doc := s.generator.Generate(uid)
	data, err := encodeDocument(doc)
	if err != nil {
		return nil, false, err
	}
	s.docs[uid] = data
	return doc, true, nil
}

func (s *MemoryStore) Create(ctx context.Context, uid string) (*models.UserMatchDocument, bool, error) {
	return s.GetOrCreate(ctx, uid)
}

// Len returns the number of stored documents
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}
