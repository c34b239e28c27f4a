package service

import (
	"context"
	"fmt"
	"time"

	"product-catalog/internal/metrics"
	"product-catalog/internal/model"
	"product-catalog/internal/pagination"
	"product-catalog/internal/repository"
	"product-catalog/internal/store"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	products    *store.Store[[]model.Product]
	pageConfig  *store.Store[model.PageConfig]
	logger      zerolog.Logger
}

// NewProductService creates a new product service bound to the given stores.
func NewProductService(
	productRepo repository.ProductRepository,
	products *store.Store[[]model.Product],
	pageConfig *store.Store[model.PageConfig],
	logger zerolog.Logger,
) ProductService {
	return &productService{
		productRepo: productRepo,
		products:    products,
		pageConfig:  pageConfig,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// FetchAllProducts performs one upstream round trip. On success the product
// store is replaced wholesale; on failure it is left untouched.
// Concurrent calls are not coalesced, the last response to arrive wins.
func (s *productService) FetchAllProducts(ctx context.Context) ([]model.Product, error) {
	start := time.Now()
	products, err := s.productRepo.FetchAll(ctx)
	metrics.ProductFetchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ProductFetches.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Msg("Error fetching products:")
		return nil, fmt.Errorf("%w: %w", model.ErrFetchFailed, err)
	}

	metrics.ProductFetches.WithLabelValues("success").Inc()
	s.products.Set(products)

	s.logger.Debug().Int("count", len(products)).Msg("product store replaced")

	return products, nil
}

// Page returns one page of the held products. Items are copied out of the
// store so callers may modify them freely.
func (s *productService) Page(pageSize, currentPage int) model.ProductPage {
	products := s.products.Get()

	return model.ProductPage{
		Items:      pagination.Paginate(products, pageSize, currentPage),
		Page:       currentPage,
		PageSize:   pageSize,
		TotalItems: len(products),
		TotalPages: pagination.TotalPages(len(products), pageSize),
	}
}

// CurrentPage returns the page selected by the page configuration.
func (s *productService) CurrentPage() model.ProductPage {
	cfg := s.pageConfig.Get()
	return s.Page(cfg.PageSize, cfg.CurrentPage)
}

func (s *productService) PageConfig() model.PageConfig {
	return s.pageConfig.Get()
}

func (s *productService) SetPageConfig(cfg model.PageConfig) {
	s.pageConfig.Set(cfg)
	s.logger.Debug().
		Int("page_size", cfg.PageSize).
		Int("current_page", cfg.CurrentPage).
		Msg("page configuration updated")
}
