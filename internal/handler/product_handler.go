package handler

import (
	"net/http"
	"strconv"

	"product-catalog/internal/model"
	"product-catalog/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// RefreshResponse reports how many products the last refresh loaded.
type RefreshResponse struct {
	Count int `json:"count"`
}

// List handles GET /api/products requests. The page and pageSize query
// parameters override the stored page configuration when present.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeNotAllowed, "method not allowed", h.logger)
		return
	}

	query := r.URL.Query()
	if query.Get("page") == "" && query.Get("pageSize") == "" {
		writeJSON(w, http.StatusOK, h.service.CurrentPage())
		return
	}

	cfg := h.service.PageConfig()

	pageSize, ok := h.intParam(w, r, "pageSize", cfg.PageSize)
	if !ok {
		return
	}
	page, ok := h.intParam(w, r, "page", cfg.CurrentPage)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, h.service.Page(pageSize, page))
}

// Refresh handles POST /api/products/refresh by reloading the catalogue from upstream.
func (h *ProductHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeNotAllowed, "method not allowed", h.logger)
		return
	}

	products, err := h.service.FetchAllProducts(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, model.ErrCodeFetchFailed, model.ErrFetchFailed.Message, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, RefreshResponse{Count: len(products)})
}

// intParam reads a positive integer query parameter, falling back to def when absent.
func (h *ProductHandler) intParam(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidParam, "invalid "+name+" parameter", h.logger)
		return 0, false
	}

	return value, true
}
