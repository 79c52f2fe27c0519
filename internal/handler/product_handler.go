package handler

import (
	"net/http"
	"strconv"
	"strings"

	"game-shop/internal/model"
	"game-shop/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles catalogue HTTP requests.
type ProductHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.CatalogService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products requests with optional q, game and price
// (min-max) filters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := service.CatalogFilter{
		Query: r.URL.Query().Get("q"),
		Game:  r.URL.Query().Get("game"),
	}

	if priceRange := r.URL.Query().Get("price"); priceRange != "" {
		min, max, ok := parsePriceRange(priceRange)
		if !ok {
			writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid price filter, expected min-max", h.logger)
			return
		}
		filter.MinPrice = min
		filter.MaxPrice = max
	}

	products, err := h.service.Search(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")
	if productID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "product ID is required", h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), productID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// parsePriceRange parses a "min-max" price filter.
func parsePriceRange(s string) (min, max int64, ok bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	min, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	max, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return min, max, true
}
