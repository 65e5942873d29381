// Package store persists one match-history document per uid.
//
// Every backend has get-or-create semantics: the first request for a uid generates
// and persists a document, later requests return the stored one unchanged.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonie-n/valodash-backend/internal/models"
)

// ErrEmptyUID is returned when a store is asked for the empty uid.
var ErrEmptyUID = errors.New("store: empty uid")

// Store defines the per-user record store
type Store interface {
	// GetOrCreate returns the document for uid, generating and persisting it on a miss.
	// created reports whether this call produced the document.
	GetOrCreate(ctx context.Context, uid string) (doc *models.UserMatchDocument, created bool, err error)
	// Create seeds uid. It behaves exactly like GetOrCreate.
	Create(ctx context.Context, uid string) (doc *models.UserMatchDocument, created bool, err error)
}

func encodeDocument(doc *models.UserMatchDocument) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document for %q: %w", doc.UID, err)
	}
	return data, nil
}

func decodeDocument(uid string, data []byte) (*models.UserMatchDocument, error) {
	var doc models.UserMatchDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document for %q: %w", uid, err)
	}
	return &doc, nil
}
