package service

import (
	"context"
	"fmt"
	"strings"

	"game-shop/internal/catalog"
	"game-shop/internal/model"
	"game-shop/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	repo   repository.CatalogRepository
	loader catalog.Loader
	logger zerolog.Logger
}

// NewCatalogService creates a new catalogue service backed by the persisted
// override with a default-catalogue fallback.
func NewCatalogService(
	repo repository.CatalogRepository,
	loader catalog.Loader,
	logger zerolog.Logger,
) CatalogService {
	return &catalogService{
		repo:   repo,
		loader: loader,
		logger: logger.With().Str("service", "catalog").Logger(),
	}
}

// List returns the persisted catalogue override when present, otherwise
// the bundled default. A malformed override falls through to the default.
func (s *catalogService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if products != nil {
		return products, nil
	}

	products, err = s.loader.Load(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("default catalog load failed")
		return nil, fmt.Errorf("failed to load default catalog: %w", err)
	}
	return products, nil
}

// Search returns the catalogue narrowed by the filter.
func (s *catalogService) Search(ctx context.Context, filter CatalogFilter) ([]model.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	matched := make([]model.Product, 0, len(products))
	for _, p := range products {
		if query != "" {
			haystack := strings.ToLower(p.Title + " " + p.Description + " " + strings.Join(p.Tags, " "))
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		if filter.Game != "" && p.Game != filter.Game {
			continue
		}
		if p.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
			continue
		}
		matched = append(matched, p)
	}
	return matched, nil
}

// GetByID returns a single product, or model.ErrProductNotFound.
func (s *catalogService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	s.logger.Debug().Str("product_id", id).Msg("product not found")
	return nil, model.ErrProductNotFound
}

// Replace overwrites the persisted catalogue wholesale. No validation
// beyond structural shape.
func (s *catalogService) Replace(ctx context.Context, products []model.Product) error {
	if err := s.repo.Replace(ctx, products); err != nil {
		return err
	}
	s.logger.Info().Int("products", len(products)).Msg("catalog replaced")
	return nil
}

// Upsert updates the product with a matching id, or prepends it as a new
// product. A missing id is generated from the title.
func (s *catalogService) Upsert(ctx context.Context, product model.Product) (*model.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	if product.ID == "" {
		product.ID = generateProductID(product.Title)
	}

	updated := false
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			updated = true
			break
		}
	}
	if !updated {
		products = append([]model.Product{product}, products...)
	}

	if err := s.repo.Replace(ctx, products); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("product_id", product.ID).
		Bool("created", !updated).
		Msg("product upserted")

	return &product, nil
}

// Delete removes the product with the given id. An unknown id is a no-op
// surfaced as model.ErrProductNotFound.
func (s *catalogService) Delete(ctx context.Context, id string) error {
	products, err := s.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]model.Product, 0, len(products))
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		s.logger.Warn().Str("product_id", id).Msg("delete of unknown product, no-op")
		return model.ErrProductNotFound
	}

	if err := s.repo.Replace(ctx, kept); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// Export returns the persisted catalogue document verbatim.
func (s *catalogService) Export(ctx context.Context) ([]byte, error) {
	return s.repo.Raw(ctx)
}

// Import parses an uploaded catalogue document and wholesale-replaces the
// persisted catalogue. The whole document is rejected on parse failure.
func (s *catalogService) Import(ctx context.Context, data []byte) ([]model.Product, error) {
	products, err := catalog.Parse(data)
	if err != nil {
		s.logger.Warn().Err(err).Msg("rejected catalog import")
		return nil, model.ErrInvalidImport
	}

	if err := s.repo.Replace(ctx, products); err != nil {
		return nil, err
	}

	s.logger.Info().Int("products", len(products)).Msg("catalog imported")
	return products, nil
}

// generateProductID derives a slug-like unique id from a product title.
func generateProductID(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.Join(strings.Fields(slug), "-")
	if slug == "" {
		slug = "new"
	}
	return slug + "-" + uuid.NewString()[:5]
}
