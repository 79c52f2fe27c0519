package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"game-shop/internal/model"
	"game-shop/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testProducts = []model.Product{
	{ID: "lq-01", Title: "Acc Liên Quân", Price: 150000, Game: "Liên Quân"},
	{ID: "ff-01", Title: "Acc Free Fire", Price: 90000, Game: "Free Fire"},
}

func TestProductHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		queryParams    string
		expectedFilter service.CatalogFilter
		mockReturn     []model.Product
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success without filters",
			queryParams:    "",
			expectedFilter: service.CatalogFilter{},
			mockReturn:     testProducts,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Success with query and game filters",
			queryParams:    "?q=acc&game=Free+Fire",
			expectedFilter: service.CatalogFilter{Query: "acc", Game: "Free Fire"},
			mockReturn:     testProducts[1:],
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Success with price range",
			queryParams:    "?price=50000-200000",
			expectedFilter: service.CatalogFilter{MinPrice: 50000, MaxPrice: 200000},
			mockReturn:     testProducts,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Invalid price range",
			queryParams:    "?price=cheap",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Service error",
			queryParams:    "",
			expectedFilter: service.CatalogFilter{},
			mockError:      errors.New("store unavailable"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			if tt.expectService {
				mockService.On("Search", mock.Anything, tt.expectedFilter).Return(tt.mockReturn, tt.mockError)
			}

			h := NewProductHandler(mockService, logger)
			req := httptest.NewRequest(http.MethodGet, "/api/products"+tt.queryParams, nil)
			rec := httptest.NewRecorder()

			h.List(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var got []model.Product
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, tt.mockReturn, got)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		productID      string
		mockReturn     *model.Product
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			productID:      "lq-01",
			mockReturn:     &testProducts[0],
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Product not found",
			productID:      "nope",
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Missing ID",
			productID:      "",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			if tt.expectService {
				mockService.On("GetByID", mock.Anything, tt.productID).Return(tt.mockReturn, tt.mockError)
			}

			h := NewProductHandler(mockService, logger)
			req := httptest.NewRequest(http.MethodGet, "/api/products/"+tt.productID, nil)
			req.SetPathValue("id", tt.productID)
			rec := httptest.NewRecorder()

			h.GetByID(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var got model.Product
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, *tt.mockReturn, got)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestParsePriceRange(t *testing.T) {
	tests := []struct {
		input string
		min   int64
		max   int64
		ok    bool
	}{
		{"0-100", 0, 100, true},
		{"50000-200000", 50000, 200000, true},
		{"100", 0, 0, false},
		{"a-b", 0, 0, false},
		{"-100", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			min, max, ok := parsePriceRange(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.min, min)
				assert.Equal(t, tt.max, max)
			}
		})
	}
}
