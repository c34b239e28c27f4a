package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"product-catalog/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const widgetJSON = `[{"SKU":"A1","product_name":"Widget","Category":"Tools","Brand":"Acme","Currency":"USD","Price":"9.99","date_of_load":"2024-01-01","reference_link":"http://x","Image":"http://y"}]`

func TestProductRepository_FetchAll(t *testing.T) {
	widget := model.Product{
		SKU:           "A1",
		ProductName:   "Widget",
		Category:      "Tools",
		Brand:         "Acme",
		Currency:      "USD",
		Price:         "9.99",
		DateOfLoad:    "2024-01-01",
		ReferenceLink: "http://x",
		Image:         "http://y",
	}

	tests := []struct {
		name        string
		status      int
		body        string
		expected    []model.Product
		expectError bool
		errorMsg    string
	}{
		{
			name:     "Success with single product",
			status:   http.StatusOK,
			body:     widgetJSON,
			expected: []model.Product{widget},
		},
		{
			name:     "Success with empty array",
			status:   http.StatusOK,
			body:     `[]`,
			expected: []model.Product{},
		},
		{
			name:     "Null body is an empty list",
			status:   http.StatusOK,
			body:     `null`,
			expected: []model.Product{},
		},
		{
			name:     "Missing fields are left empty",
			status:   http.StatusOK,
			body:     `[{"SKU":"B2"}]`,
			expected: []model.Product{{SKU: "B2"}},
		},
		{
			name:     "Non-200 success status",
			status:   http.StatusNonAuthoritativeInfo,
			body:     widgetJSON,
			expected: []model.Product{widget},
		},
		{
			name:        "Server error",
			status:      http.StatusInternalServerError,
			body:        `{"detail":"boom"}`,
			expectError: true,
			errorMsg:    "unexpected status code: 500",
		},
		{
			name:        "Not found",
			status:      http.StatusNotFound,
			body:        ``,
			expectError: true,
			errorMsg:    "unexpected status code: 404",
		},
		{
			name:        "Malformed JSON",
			status:      http.StatusOK,
			body:        `[{"SKU":`,
			expectError: true,
			errorMsg:    "failed to decode products",
		},
		{
			name:        "Object instead of array",
			status:      http.StatusOK,
			body:        `{"SKU":"A1"}`,
			expectError: true,
			errorMsg:    "failed to decode products",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/products", r.URL.Path)
				assert.Empty(t, r.URL.RawQuery)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			repo := NewProductRepository(server.Client(), server.URL+"/products", zerolog.Nop())

			products, err := repo.FetchAll(context.Background())

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, products)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, products)
			}
		})
	}
}

func TestProductRepository_FetchAll_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL + "/products"
	server.Close()

	repo := NewProductRepository(nil, url, zerolog.Nop())

	products, err := repo.FetchAll(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to request products")
	assert.Nil(t, products)
}

func TestProductRepository_FetchAll_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	repo := NewProductRepository(server.Client(), server.URL+"/products", zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FetchAll(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
