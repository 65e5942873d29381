package handlers

import (
	"context"

	"github.com/jonie-n/valodash-backend/internal/models"
)

// MockStore implements store.Store for testing
type MockStore struct {
	GetOrCreateFunc func(ctx context.Context, uid string) (*models.UserMatchDocument, bool, error)
	Calls           []string
}

func (m *MockStore) GetOrCreate(ctx context.Context, uid string) (*models.UserMatchDocument, bool, error) {
	m.Calls = append(m.Calls, uid)
	if m.GetOrCreateFunc != nil {
		return m.GetOrCreateFunc(ctx, uid)
	}
	return &models.UserMatchDocument{UID: uid}, true, nil
}

func (m *MockStore) Create(ctx context.Context, uid string) (*models.UserMatchDocument, bool, error) {
	return m.GetOrCreate(ctx, uid)
}
