// Package catalog loads the bundled default product catalogue that backs
// the store when no persisted override exists.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"game-shop/internal/model"

	"github.com/rs/zerolog"
)

// Loader fetches the default product catalogue from some source. A load
// failure blocks the entire browsing flow, so callers surface it as a
// visible, retryable error rather than swallowing it.
type Loader interface {
	Load(ctx context.Context) ([]model.Product, error)
}

// fileLoader implements Loader for a bundled products.json file.
type fileLoader struct {
	path   string
	logger zerolog.Logger
}

// NewFileLoader creates a loader that reads the default catalogue from a
// local JSON file.
func NewFileLoader(path string, logger zerolog.Logger) Loader {
	return &fileLoader{
		path:   path,
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads and parses the catalogue file.
func (l *fileLoader) Load(ctx context.Context) ([]model.Product, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", l.path).Msg("failed to read catalog file")
		return nil, fmt.Errorf("failed to read catalog file %s: %w", l.path, err)
	}

	products, err := Parse(data)
	if err != nil {
		l.logger.Error().Err(err).Str("file", l.path).Msg("failed to parse catalog file")
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", l.path, err)
	}

	l.logger.Info().
		Str("file", l.path).
		Int("products", len(products)).
		Msg("default catalog loaded")

	return products, nil
}

// Parse decodes a JSON array of products. Used by loaders and by the admin
// import surface, which rejects the whole document on any parse failure.
func Parse(data []byte) ([]model.Product, error) {
	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("invalid product list: %w", err)
	}
	return products, nil
}
