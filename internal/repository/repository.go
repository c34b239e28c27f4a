package repository

import (
	"context"

	"product-catalog/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// FetchAll retrieves the whole catalogue in a single request.
	FetchAll(ctx context.Context) ([]model.Product, error)
}
