package service

import (
	"context"

	"product-catalog/internal/model"
)

// ProductService defines operations over the in-memory product catalogue.
type ProductService interface {
	// FetchAllProducts loads the full catalogue from upstream and replaces the product store.
	FetchAllProducts(ctx context.Context) ([]model.Product, error)

	// Page returns one page of the held products.
	Page(pageSize, currentPage int) model.ProductPage

	// CurrentPage returns the page selected by the page configuration.
	CurrentPage() model.ProductPage

	// PageConfig returns the current page configuration.
	PageConfig() model.PageConfig

	// SetPageConfig replaces the page configuration.
	SetPageConfig(cfg model.PageConfig)
}
