package store

import "product-catalog/internal/model"

// NewProductStore creates the container for the full product list, initially empty.
func NewProductStore() *Store[[]model.Product] {
	return New([]model.Product{})
}

// NewPageConfigStore creates the page configuration container with its default value.
func NewPageConfigStore() *Store[model.PageConfig] {
	return New(model.DefaultPageConfig())
}
