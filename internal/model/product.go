package model

// Product represents a catalogue entry as served by the upstream products endpoint.
// Fields are mirrored verbatim; nothing is parsed or defaulted.
type Product struct {
	SKU           string `json:"SKU"`
	ProductName   string `json:"product_name"`
	Category      string `json:"Category"`
	Brand         string `json:"Brand"`
	Currency      string `json:"Currency"`
	Price         string `json:"Price"`
	DateOfLoad    string `json:"date_of_load"`
	ReferenceLink string `json:"reference_link"`
	Image         string `json:"Image"`
}

// PageConfig holds the page size and the 1-indexed current page.
type PageConfig struct {
	PageSize    int `json:"pageSize"`
	CurrentPage int `json:"currentPage"`
}

// DefaultPageConfig returns the initial page configuration.
func DefaultPageConfig() PageConfig {
	return PageConfig{
		PageSize:    50,
		CurrentPage: 1,
	}
}

// ProductPage is a single page of products with the counts needed to render pagination.
type ProductPage struct {
	Items      []Product `json:"items"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalItems int       `json:"totalItems"`
	TotalPages int       `json:"totalPages"`
}
