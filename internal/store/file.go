package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// fileStore implements Store with one JSON document per key in a data
// directory. Writes go to a temp file and are renamed into place, so a
// crash mid-write leaves the previous value intact.
type fileStore struct {
	dir    string
	logger zerolog.Logger
}

// NewFileStore creates a file-backed store rooted at dir, creating the
// directory if needed.
func NewFileStore(dir string, logger zerolog.Logger) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}
	return &fileStore{
		dir:    dir,
		logger: logger.With().Str("store", "file").Logger(),
	}, nil
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get returns the stored value for key, or ErrKeyNotFound.
func (s *fileStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to read key")
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return data, nil
}

// Set replaces the value for key atomically via temp file + rename.
func (s *fileStore) Set(ctx context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to create temp file")
		return fmt.Errorf("failed to create temp file for key %s: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		s.logger.Error().Err(err).Str("key", key).Msg("failed to write temp file")
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for key %s: %w", key, err)
	}

	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		s.logger.Error().Err(err).Str("key", key).Msg("failed to replace key file")
		return fmt.Errorf("failed to replace key %s: %w", key, err)
	}

	s.logger.Debug().Str("key", key).Int("bytes", len(value)).Msg("key written")
	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *fileStore) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to delete key")
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}
