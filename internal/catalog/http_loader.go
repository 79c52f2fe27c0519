package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"game-shop/internal/model"

	"github.com/rs/zerolog"
)

// httpLoader implements Loader by fetching the catalogue JSON over HTTP.
type httpLoader struct {
	url    string
	client *http.Client
	logger zerolog.Logger
}

// NewHTTPLoader creates a loader that fetches the default catalogue from a
// URL with a bounded timeout.
func NewHTTPLoader(url string, timeout time.Duration, logger zerolog.Logger) Loader {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpLoader{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger.With().Str("component", "http-catalog-loader").Logger(),
	}
}

// Load fetches and parses the catalogue.
func (l *httpLoader) Load(ctx context.Context) ([]model.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		l.logger.Error().Err(err).Str("url", l.url).Msg("failed to fetch catalog")
		return nil, fmt.Errorf("failed to fetch catalog from %s: %w", l.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		l.logger.Error().
			Int("status", resp.StatusCode).
			Str("url", l.url).
			Msg("unexpected catalog fetch status")
		return nil, fmt.Errorf("failed to fetch catalog from %s: status %d", l.url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}

	products, err := Parse(data)
	if err != nil {
		l.logger.Error().Err(err).Str("url", l.url).Msg("failed to parse fetched catalog")
		return nil, fmt.Errorf("failed to parse catalog from %s: %w", l.url, err)
	}

	l.logger.Info().
		Str("url", l.url).
		Int("products", len(products)).
		Msg("default catalog fetched")

	return products, nil
}
