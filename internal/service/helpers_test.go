package service

import (
	"context"
	"errors"

	"game-shop/internal/model"

	"github.com/stretchr/testify/mock"
)

// fakeCatalogRepo is a stateful in-memory CatalogRepository.
type fakeCatalogRepo struct {
	products []model.Product // nil means no persisted override
	raw      []byte
	failSave bool
}

func (f *fakeCatalogRepo) Load(ctx context.Context) ([]model.Product, error) {
	return f.products, nil
}

func (f *fakeCatalogRepo) Replace(ctx context.Context, products []model.Product) error {
	if f.failSave {
		return errors.New("store unavailable")
	}
	f.products = products
	return nil
}

func (f *fakeCatalogRepo) Raw(ctx context.Context) ([]byte, error) {
	if f.raw != nil {
		return f.raw, nil
	}
	return []byte("[]"), nil
}

// fakeCartRepo is a stateful in-memory CartRepository.
type fakeCartRepo struct {
	lines    []model.CartLine
	failSave bool
}

func (f *fakeCartRepo) Load(ctx context.Context) ([]model.CartLine, error) {
	if f.lines == nil {
		return []model.CartLine{}, nil
	}
	return f.lines, nil
}

func (f *fakeCartRepo) Save(ctx context.Context, lines []model.CartLine) error {
	if f.failSave {
		return errors.New("store unavailable")
	}
	f.lines = lines
	return nil
}

func (f *fakeCartRepo) Clear(ctx context.Context) error {
	return f.Save(ctx, []model.CartLine{})
}

// fakeOrderRepo is a stateful in-memory OrderRepository.
type fakeOrderRepo struct {
	orders   []model.Order
	raw      []byte
	failSave bool
}

func (f *fakeOrderRepo) Load(ctx context.Context) ([]model.Order, error) {
	if f.orders == nil {
		return []model.Order{}, nil
	}
	return f.orders, nil
}

func (f *fakeOrderRepo) Save(ctx context.Context, orders []model.Order) error {
	if f.failSave {
		return errors.New("store unavailable")
	}
	f.orders = orders
	return nil
}

func (f *fakeOrderRepo) Raw(ctx context.Context) ([]byte, error) {
	if f.raw != nil {
		return f.raw, nil
	}
	return []byte("[]"), nil
}

// fakePINRepo is a stateful in-memory PINRepository.
type fakePINRepo struct {
	hash string
}

func (f *fakePINRepo) LoadHash(ctx context.Context) (string, error) {
	return f.hash, nil
}

func (f *fakePINRepo) SaveHash(ctx context.Context, hash string) error {
	f.hash = hash
	return nil
}

// fakeLoader returns a fixed default catalogue.
type fakeLoader struct {
	products []model.Product
	err      error
}

func (f *fakeLoader) Load(ctx context.Context) ([]model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

// MockNotifier is a mock implementation of notify.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) OrderCreated(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

var defaultCatalog = []model.Product{
	{ID: "a", Title: "Acc A", Price: 100, Game: "Liên Quân", Tags: []string{"rank"}},
	{ID: "b", Title: "Acc B", Price: 50, Game: "Free Fire"},
}
