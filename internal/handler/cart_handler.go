package handler

import (
	"encoding/json"
	"net/http"

	"game-shop/internal/model"
	"game-shop/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// cartView is the cart response payload: the lines plus the running total.
type cartView struct {
	Items []model.CartLine `json:"items"`
	Total int64            `json:"total"`
}

func toCartView(lines []model.CartLine) cartView {
	if lines == nil {
		lines = []model.CartLine{}
	}
	return cartView{Items: lines, Total: model.CartTotal(lines)}
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	lines, err := h.service.Get(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, toCartView(lines))
}

// addRequest is the payload for adding a product to the cart.
type addRequest struct {
	ProductID string `json:"productId"`
}

// Add handles POST /api/cart/items requests.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "productId is required", h.logger)
		return
	}

	lines, err := h.service.Add(r.Context(), req.ProductID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, toCartView(lines))
}

// adjustRequest is the payload for adjusting a cart line's quantity.
type adjustRequest struct {
	Delta int `json:"delta"`
}

// AdjustQty handles PATCH /api/cart/items/{id} requests.
func (h *CartHandler) AdjustQty(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")

	var req adjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	lines, err := h.service.AdjustQty(r.Context(), productID, req.Delta)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, toCartView(lines))
}

// Remove handles DELETE /api/cart/items/{id} requests.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")

	lines, err := h.service.Remove(r.Context(), productID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, toCartView(lines))
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context()); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, toCartView(nil))
}
