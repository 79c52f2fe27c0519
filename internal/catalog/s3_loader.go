package catalog

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"game-shop/internal/model"
)

// s3Loader implements Loader for a catalogue JSON object hosted in AWS S3.
type s3Loader struct {
	client *s3.Client
	bucket string
	key    string
	logger zerolog.Logger
}

// NewS3Loader creates a new S3-based catalogue loader.
func NewS3Loader(ctx context.Context, bucket, region, key string, logger zerolog.Logger) (Loader, error) {
	logger = logger.With().Str("component", "s3-catalog-loader").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Str("key", key).
		Msg("S3 catalog loader initialised")

	return &s3Loader{
		client: client,
		bucket: bucket,
		key:    key,
		logger: logger,
	}, nil
}

// Load reads the catalogue object from S3 and parses it.
func (l *s3Loader) Load(ctx context.Context) ([]model.Product, error) {
	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", l.key).
		Msg("loading catalog from S3")

	result, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(l.key),
	})
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", l.key).
			Msg("failed to get catalog object from S3")
		return nil, fmt.Errorf("failed to get catalog object from S3 (bucket=%s, key=%s): %w", l.bucket, l.key, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog object body: %w", err)
	}

	products, err := Parse(data)
	if err != nil {
		l.logger.Error().Err(err).Str("key", l.key).Msg("failed to parse S3 catalog object")
		return nil, fmt.Errorf("failed to parse catalog from S3 key %s: %w", l.key, err)
	}

	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", l.key).
		Int("products", len(products)).
		Msg("default catalog loaded from S3")

	return products, nil
}
