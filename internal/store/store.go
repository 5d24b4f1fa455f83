package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("store: key not found")

// Store is a key-value blob store. Values are opaque serialized record sets;
// one key per logical collection. The engine never touches a Store directly.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// FileStore keeps one JSON file per key under a directory. It is the local
// fallback when the sqlite store cannot be opened.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (fs *FileStore) path(key string) string {
	// keys are internal identifiers, but keep the filename safe anyway
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		}
		return '_'
	}, key)
	return filepath.Join(fs.dir, name+".json")
}

func (fs *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(fs.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return data, nil
}

func (fs *FileStore) Put(_ context.Context, key string, value []byte) error {
	if err := os.WriteFile(fs.path(key), value, 0644); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (fs *FileStore) Delete(_ context.Context, key string) error {
	err := os.Remove(fs.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (fs *FileStore) Close() error { return nil }

// OpenWithFallback opens the sqlite store under dataDir, degrading to the
// JSON file store when the database cannot be opened. The caller is agnostic
// to which store it got.
func OpenWithFallback(dataDir string, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dbPath := filepath.Join(dataDir, "takehome.db")
	s, err := OpenSQLiteStore(dbPath)
	if err == nil {
		return s, nil
	}
	logger.Warn("sqlite store unavailable, falling back to file store",
		zap.String("path", dbPath), zap.Error(err))

	fs, ferr := NewFileStore(filepath.Join(dataDir, "records"))
	if ferr != nil {
		return nil, fmt.Errorf("both stores unavailable: sqlite: %v; file: %w", err, ferr)
	}
	return fs, nil
}
