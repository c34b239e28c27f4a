package handler

import (
	"encoding/json"
	"net/http"

	"product-catalog/internal/model"
	"product-catalog/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// PageConfigRequest is the body accepted by PUT /api/page-config.
type PageConfigRequest struct {
	PageSize    int `json:"pageSize" validate:"required,min=1"`
	CurrentPage int `json:"currentPage" validate:"required,min=1"`
}

// PageConfigHandler exposes the page configuration store.
type PageConfigHandler struct {
	service  service.ProductService
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewPageConfigHandler creates a new page configuration handler.
func NewPageConfigHandler(service service.ProductService, logger zerolog.Logger) *PageConfigHandler {
	return &PageConfigHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With().Str("handler", "page_config").Logger(),
	}
}

// Handle routes /api/page-config by method.
func (h *PageConfigHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.service.PageConfig())
	case http.MethodPut:
		h.update(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeNotAllowed, "method not allowed", h.logger)
	}
}

func (h *PageConfigHandler) update(w http.ResponseWriter, r *http.Request) {
	var req PageConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid JSON payload", h.logger)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidParam, err.Error(), h.logger)
		return
	}

	cfg := model.PageConfig{
		PageSize:    req.PageSize,
		CurrentPage: req.CurrentPage,
	}
	h.service.SetPageConfig(cfg)

	writeJSON(w, http.StatusOK, cfg)
}
