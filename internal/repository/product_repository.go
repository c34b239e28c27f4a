package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"product-catalog/internal/model"

	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface against the upstream REST endpoint.
type productRepository struct {
	client      *http.Client
	productsURL string
	logger      zerolog.Logger
}

// NewProductRepository creates a new HTTP-backed product repository.
// A nil client means http.DefaultClient.
func NewProductRepository(client *http.Client, productsURL string, logger zerolog.Logger) ProductRepository {
	if client == nil {
		client = http.DefaultClient
	}
	return &productRepository{
		client:      client,
		productsURL: productsURL,
		logger:      logger.With().Str("repository", "product").Logger(),
	}
}

// FetchAll issues a GET against the products endpoint and decodes the JSON array body.
func (r *productRepository) FetchAll(ctx context.Context) ([]model.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.productsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build products request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Debug().Err(err).Str("url", r.productsURL).Msg("products request failed")
		return nil, fmt.Errorf("failed to request products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.logger.Debug().
			Int("status", resp.StatusCode).
			Str("url", r.productsURL).
			Msg("unexpected products response status")
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var products []model.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		r.logger.Debug().Err(err).Msg("failed to decode products response")
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	if products == nil {
		products = []model.Product{}
	}

	r.logger.Debug().Int("count", len(products)).Msg("fetched products")

	return products, nil
}
