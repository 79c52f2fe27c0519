package service

import (
	"context"

	"game-shop/internal/model"
	"game-shop/internal/repository"

	"github.com/rs/zerolog"
)

// cartService implements CartService. The cart has exactly one writer at a
// time by construction; every mutation is a whole-cart replace persisted
// before the call returns.
type cartService struct {
	repo    repository.CartRepository
	catalog CatalogService
	logger  zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	repo repository.CartRepository,
	catalog CatalogService,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		repo:    repo,
		catalog: catalog,
		logger:  logger.With().Str("service", "cart").Logger(),
	}
}

// Get returns the current cart lines.
func (s *cartService) Get(ctx context.Context) ([]model.CartLine, error) {
	return s.repo.Load(ctx)
}

// Add puts one unit of the product in the cart. The line keeps at most one
// entry per product id; title and price are copied from the catalogue at
// this instant and never re-fetched.
func (s *cartService) Add(ctx context.Context, productID string) ([]model.CartLine, error) {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		s.logger.Warn().Str("product_id", productID).Err(err).Msg("add to cart of unknown product")
		return nil, err
	}

	lines, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Qty++
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, model.CartLine{
			ProductID: product.ID,
			Title:     product.Title,
			Price:     product.Price,
			Qty:       1,
		})
	}

	if err := s.repo.Save(ctx, lines); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("product_id", productID).
		Int("lines", len(lines)).
		Msg("product added to cart")

	return lines, nil
}

// AdjustQty applies delta to the line's quantity with a floor of 1. A
// decrement never removes the line; only Remove does.
func (s *cartService) AdjustQty(ctx context.Context, productID string, delta int) ([]model.CartLine, error) {
	lines, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range lines {
		if lines[i].ProductID == productID {
			qty := lines[i].Qty + delta
			if qty < 1 {
				qty = 1
			}
			lines[i].Qty = qty
			found = true
			break
		}
	}
	if !found {
		s.logger.Warn().Str("product_id", productID).Msg("adjust of unknown cart line, no-op")
		return nil, model.ErrLineNotFound
	}

	if err := s.repo.Save(ctx, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Remove deletes the line for the product. An unknown line is a no-op
// surfaced as model.ErrLineNotFound.
func (s *cartService) Remove(ctx context.Context, productID string) ([]model.CartLine, error) {
	lines, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	kept := make([]model.CartLine, 0, len(lines))
	found := false
	for _, l := range lines {
		if l.ProductID == productID {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		s.logger.Warn().Str("product_id", productID).Msg("remove of unknown cart line, no-op")
		return nil, model.ErrLineNotFound
	}

	if err := s.repo.Save(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Total returns sum(price*qty) over all lines.
func (s *cartService) Total(ctx context.Context) (int64, error) {
	lines, err := s.repo.Load(ctx)
	if err != nil {
		return 0, err
	}
	return model.CartTotal(lines), nil
}

// Clear empties the cart.
func (s *cartService) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
