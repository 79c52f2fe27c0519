package router

import (
	"net/http"

	"game-shop/internal/handler"
	"game-shop/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// Admin routes are additionally gated behind the PIN middleware.
func New(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	adminHandler *handler.AdminHandler,
	verifier middleware.PINVerifier,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Storefront routes
	mux.HandleFunc("GET /api/products", productHandler.List)
	mux.HandleFunc("GET /api/products/{id}", productHandler.GetByID)

	mux.HandleFunc("GET /api/cart", cartHandler.Get)
	mux.HandleFunc("POST /api/cart/items", cartHandler.Add)
	mux.HandleFunc("PATCH /api/cart/items/{id}", cartHandler.AdjustQty)
	mux.HandleFunc("DELETE /api/cart/items/{id}", cartHandler.Remove)
	mux.HandleFunc("DELETE /api/cart", cartHandler.Clear)

	mux.HandleFunc("POST /api/checkout", orderHandler.Checkout)

	// Admin routes, PIN-gated
	admin := http.NewServeMux()
	admin.HandleFunc("GET /api/admin/orders", orderHandler.List)
	admin.HandleFunc("GET /api/admin/orders/{id}", orderHandler.GetByID)
	admin.HandleFunc("PATCH /api/admin/orders/{id}/status", orderHandler.SetStatus)
	admin.HandleFunc("DELETE /api/admin/orders/{id}", orderHandler.Delete)
	admin.HandleFunc("PUT /api/admin/products", adminHandler.ReplaceProducts)
	admin.HandleFunc("POST /api/admin/products", adminHandler.UpsertProduct)
	admin.HandleFunc("DELETE /api/admin/products/{id}", adminHandler.DeleteProduct)
	admin.HandleFunc("GET /api/admin/export/products", adminHandler.ExportProducts)
	admin.HandleFunc("GET /api/admin/export/orders", adminHandler.ExportOrders)
	admin.HandleFunc("POST /api/admin/import/products", adminHandler.ImportProducts)
	admin.HandleFunc("PUT /api/admin/pin", adminHandler.SetPIN)

	mux.Handle("/api/admin/", middleware.AdminAuth(verifier, logger)(admin))

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
