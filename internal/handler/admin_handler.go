package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"game-shop/internal/model"
	"game-shop/internal/service"

	"github.com/rs/zerolog"
)

// AdminHandler handles admin catalogue CRUD, import/export and PIN
// management.
type AdminHandler struct {
	catalog service.CatalogService
	orders  service.OrderService
	admin   service.AdminService
	logger  zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(
	catalog service.CatalogService,
	orders service.OrderService,
	admin service.AdminService,
	logger zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		catalog: catalog,
		orders:  orders,
		admin:   admin,
		logger:  logger.With().Str("handler", "admin").Logger(),
	}
}

// ReplaceProducts handles PUT /api/admin/products requests: a wholesale
// catalogue replacement.
func (h *AdminHandler) ReplaceProducts(w http.ResponseWriter, r *http.Request) {
	var products []model.Product
	if err := json.NewDecoder(r.Body).Decode(&products); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.catalog.Replace(r.Context(), products); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// UpsertProduct handles POST /api/admin/products requests.
func (h *AdminHandler) UpsertProduct(w http.ResponseWriter, r *http.Request) {
	var product model.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	saved, err := h.catalog.Upsert(r.Context(), product)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// DeleteProduct handles DELETE /api/admin/products/{id} requests.
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExportProducts handles GET /api/admin/export/products requests. The
// stored document is served verbatim.
func (h *AdminHandler) ExportProducts(w http.ResponseWriter, r *http.Request) {
	data, err := h.catalog.Export(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	serveExport(w, "products.json", data)
}

// ExportOrders handles GET /api/admin/export/orders requests.
func (h *AdminHandler) ExportOrders(w http.ResponseWriter, r *http.Request) {
	data, err := h.orders.Export(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	serveExport(w, "orders.json", data)
}

// ImportProducts handles POST /api/admin/import/products requests. The
// uploaded document wholesale-replaces the catalogue; an unparsable
// document is rejected with no write.
func (h *AdminHandler) ImportProducts(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "failed to read request body", h.logger)
		return
	}

	products, err := h.catalog.Import(r.Context(), data)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// pinRequest is the payload for updating the admin PIN.
type pinRequest struct {
	PIN string `json:"pin"`
}

// SetPIN handles PUT /api/admin/pin requests.
func (h *AdminHandler) SetPIN(w http.ResponseWriter, r *http.Request) {
	var req pinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.admin.SetPIN(r.Context(), req.PIN); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// serveExport writes a stored JSON document verbatim as a download.
func serveExport(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
