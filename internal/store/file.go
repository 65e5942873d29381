package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/singleflight"

	"github.com/jonie-n/valodash-backend/internal/logic"
	"github.com/jonie-n/valodash-backend/internal/models"
)

// FileStore keeps each document in <dir>/<uid>.json.
//
// The uid is used verbatim as the file name, so a uid containing path separators
// escapes dir. Writes are not atomic: a crash mid-write leaves a corrupt file which
// fails every later read for that uid until it is removed.
type FileStore struct {
	dir       string
	generator logic.MatchGenerator
	group     singleflight.Group
}

type fileResult struct {
	doc     *models.UserMatchDocument
	created bool
}

func NewFileStore(dir string, generator logic.MatchGenerator) *FileStore {
	return &FileStore{dir: dir, generator: generator}
}

// Dir returns the data directory
func (s *FileStore) Dir() string {
	return s.dir
}

// GetOrCreate serializes concurrent callers for the same uid so a missing
// document is generated and written once.
func (s *FileStore) GetOrCreate(ctx context.Context, uid string) (*models.UserMatchDocument, bool, error) {
	if uid == "" {
		return nil, false, ErrEmptyUID
	}

	// Only the caller whose function ran reports the creation
	ran := false
	v, err, _ := s.group.Do(uid, func() (interface{}, error) {
		ran = true
		return s.getOrCreate(uid)
	})
	if err != nil {
		return nil, false, err
	}
	res := v.(*fileResult)
	return res.doc, res.created && ran, nil
}

func (s *FileStore) Create(ctx context.Context, uid string) (*models.UserMatchDocument, bool, error) {
	return s.GetOrCreate(ctx, uid)
}

func (s *FileStore) getOrCreate(uid string) (*fileResult, error) {
	if err := s.ensureDir(); err != nil {
		return nil, err
	}

	path := s.fileFor(uid)
	data, err := os.ReadFile(path)
	if err == nil {
		doc, err := decodeDocument(uid, data)
		if err != nil {
			return nil, err
		}
		return &fileResult{doc: doc}, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc := s.generator.Generate(uid)
	data, err = encodeDocument(doc)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return &fileResult{doc: doc, created: true}, nil
}

func (s *FileStore) ensureDir() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create data dir %s: %w", s.dir, err)
	}
	return nil
}

func (s *FileStore) fileFor(uid string) string {
	return filepath.Join(s.dir, uid+".json")
}
