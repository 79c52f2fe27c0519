package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"game-shop/internal/catalog"
	"game-shop/internal/handler"
	"game-shop/internal/middleware"
	"game-shop/internal/model"
	"game-shop/internal/notify"
	"game-shop/internal/repository"
	"game-shop/internal/router"
	"game-shop/internal/service"
	"game-shop/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPIN = "4321"

const defaultCatalogJSON = `[
	{"id": "lq-01", "title": "Acc Liên Quân Rank Cao", "price": 150000, "game": "Liên Quân", "tags": ["rank"]},
	{"id": "ff-01", "title": "Acc Free Fire Full Skin", "price": 90000, "game": "Free Fire"}
]`

// testStack wires the full application over a real store, the way
// cmd/api does it.
type testStack struct {
	server   *httptest.Server
	notified *atomic.Int32
}

func newTestStack(t *testing.T, kv store.Store) *testStack {
	t.Helper()

	logger := zerolog.Nop()
	ctx := context.Background()

	catalogPath := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(catalogPath, []byte(defaultCatalogJSON), 0o644))

	notified := &atomic.Int32{}
	notifyServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notified.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(notifyServer.Close)

	catalogRepo := repository.NewCatalogRepository(kv, logger)
	cartRepo := repository.NewCartRepository(kv, logger)
	orderRepo := repository.NewOrderRepository(kv, logger)
	pinRepo := repository.NewPINRepository(kv, logger)

	loader := catalog.NewFileLoader(catalogPath, logger)
	notifier := notify.NewTelegram(notifyServer.URL, "test-token", "-100123", 2*time.Second, logger)

	catalogService := service.NewCatalogService(catalogRepo, loader, logger)
	cartService := service.NewCartService(cartRepo, catalogService, logger)
	orderService := service.NewOrderService(orderRepo, cartRepo, notifier, logger)
	adminService := service.NewAdminService(pinRepo, logger)
	require.NoError(t, adminService.EnsurePIN(ctx, testPIN))

	productHandler := handler.NewProductHandler(catalogService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	adminHandler := handler.NewAdminHandler(catalogService, orderService, adminService, logger)

	var verifier middleware.PINVerifier = adminService
	server := httptest.NewServer(router.New(productHandler, cartHandler, orderHandler, adminHandler, verifier, logger))
	t.Cleanup(server.Close)

	return &testStack{server: server, notified: notified}
}

func (s *testStack) request(t *testing.T, method, path string, body interface{}, pin string) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if pin != "" {
		req.Header.Set("X-Admin-Pin", pin)
	}

	resp, err := s.server.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestAPI_StorefrontFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	kv, err := store.NewPostgresStore(context.Background(), testDB.Pool, zerolog.Nop())
	require.NoError(t, err)
	stack := newTestStack(t, kv)

	// Browse the default catalogue.
	resp := stack.request(t, http.MethodGet, "/api/products", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var products []model.Product
	decodeBody(t, resp, &products)
	require.Len(t, products, 2)

	// Filter by game.
	resp = stack.request(t, http.MethodGet, "/api/products?game=Free+Fire", nil, "")
	decodeBody(t, resp, &products)
	require.Len(t, products, 1)
	assert.Equal(t, "ff-01", products[0].ID)

	// Add the same product twice: one line, qty 2.
	resp = stack.request(t, http.MethodPost, "/api/cart/items", map[string]string{"productId": "lq-01"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp = stack.request(t, http.MethodPost, "/api/cart/items", map[string]string{"productId": "lq-01"}, "")

	var cart struct {
		Items []model.CartLine `json:"items"`
		Total int64            `json:"total"`
	}
	decodeBody(t, resp, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Qty)
	assert.Equal(t, int64(300000), cart.Total)

	// Decrement below 1 clamps instead of removing the line.
	resp = stack.request(t, http.MethodPatch, "/api/cart/items/lq-01", map[string]int{"delta": -5}, "")
	decodeBody(t, resp, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Qty)

	// Checkout snapshots the cart and clears it.
	checkout := model.CheckoutRequest{
		Customer: model.Customer{Name: "Nguyễn Văn A", Email: "a@example.com", Phone: "0901234567"},
		Payment:  model.Payment{Method: model.PaymentCash},
	}
	resp = stack.request(t, http.MethodPost, "/api/checkout", checkout, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var order model.Order
	decodeBody(t, resp, &order)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, model.StatusPending, order.Status)
	assert.Equal(t, int64(150000), order.Total)
	require.Len(t, order.History, 1)

	resp = stack.request(t, http.MethodGet, "/api/cart", nil, "")
	decodeBody(t, resp, &cart)
	assert.Empty(t, cart.Items)

	// The order notification reached the webhook.
	assert.Eventually(t, func() bool {
		return stack.notified.Load() == 1
	}, 2*time.Second, 50*time.Millisecond)

	// The admin surface rejects requests without the PIN.
	resp = stack.request(t, http.MethodGet, "/api/admin/orders", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = stack.request(t, http.MethodGet, "/api/admin/orders", nil, "9999")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// With the PIN the order shows up, newest first.
	resp = stack.request(t, http.MethodGet, "/api/admin/orders", nil, testPIN)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var orders []model.Order
	decodeBody(t, resp, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)

	// Walk the status workflow; each change lands in the history.
	resp = stack.request(t, http.MethodPatch, "/api/admin/orders/"+order.ID+"/status", map[string]string{"status": "paid"}, testPIN)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated model.Order
	decodeBody(t, resp, &updated)
	assert.Equal(t, model.StatusPaid, updated.Status)
	assert.Len(t, updated.History, 2)

	resp = stack.request(t, http.MethodPatch, "/api/admin/orders/"+order.ID+"/status", map[string]string{"status": "delivered"}, testPIN)
	decodeBody(t, resp, &updated)
	assert.Equal(t, model.StatusDelivered, updated.Status)
	assert.Len(t, updated.History, 3)
}

func TestAPI_AdminCatalogFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	kv, err := store.NewPostgresStore(context.Background(), testDB.Pool, zerolog.Nop())
	require.NoError(t, err)
	stack := newTestStack(t, kv)

	// Upsert a new product: the persisted override now wins over the
	// bundled default.
	newProduct := model.Product{Title: "Acc PUBG Đồ Hiếm", Price: 250000, Game: "PUBG"}
	resp := stack.request(t, http.MethodPost, "/api/admin/products", newProduct, testPIN)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var saved model.Product
	decodeBody(t, resp, &saved)
	assert.NotEmpty(t, saved.ID)

	resp = stack.request(t, http.MethodGet, "/api/products", nil, "")
	var products []model.Product
	decodeBody(t, resp, &products)
	require.Len(t, products, 3)
	assert.Equal(t, saved.ID, products[0].ID)

	// Export then re-import round-trips the catalogue.
	resp = stack.request(t, http.MethodGet, "/api/admin/export/products", nil, testPIN)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var exported bytes.Buffer
	_, err = exported.ReadFrom(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	resp = stack.request(t, http.MethodDelete, "/api/admin/products/"+saved.ID, nil, testPIN)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	req, err := http.NewRequest(http.MethodPost, stack.server.URL+"/api/admin/import/products", &exported)
	require.NoError(t, err)
	req.Header.Set("X-Admin-Pin", testPIN)
	resp, err = stack.server.Client().Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = stack.request(t, http.MethodGet, "/api/products", nil, "")
	decodeBody(t, resp, &products)
	assert.Len(t, products, 3)

	// Rotating the PIN invalidates the old one.
	resp = stack.request(t, http.MethodPut, "/api/admin/pin", map[string]string{"pin": "8765"}, testPIN)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = stack.request(t, http.MethodGet, "/api/admin/orders", nil, testPIN)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = stack.request(t, http.MethodGet, "/api/admin/orders", nil, "8765")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_HealthCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	kv, err := store.NewPostgresStore(context.Background(), testDB.Pool, zerolog.Nop())
	require.NoError(t, err)
	stack := newTestStack(t, kv)

	resp := stack.request(t, http.MethodGet, "/health", nil, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
