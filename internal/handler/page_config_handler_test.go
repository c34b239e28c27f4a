package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"product-catalog/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageConfigHandler_Get(t *testing.T) {
	mockService := new(MockProductService)
	handler := NewPageConfigHandler(mockService, zerolog.Nop())

	mockService.On("PageConfig").Return(model.DefaultPageConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/page-config", nil)
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"pageSize":50,"currentPage":1}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestPageConfigHandler_Put(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		body           string
		expectedStatus int
		expectService  bool
		expectedConfig model.PageConfig
		expectedCode   string
	}{
		{
			name:           "Success",
			method:         http.MethodPut,
			body:           `{"pageSize":20,"currentPage":4}`,
			expectedStatus: http.StatusOK,
			expectService:  true,
			expectedConfig: model.PageConfig{PageSize: 20, CurrentPage: 4},
		},
		{
			name:           "Invalid JSON",
			method:         http.MethodPut,
			body:           `{"pageSize":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidJSON,
		},
		{
			name:           "Missing current page",
			method:         http.MethodPut,
			body:           `{"pageSize":20}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidParam,
		},
		{
			name:           "Negative page size",
			method:         http.MethodPut,
			body:           `{"pageSize":-1,"currentPage":1}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidParam,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodDelete,
			body:           ``,
			expectedStatus: http.StatusMethodNotAllowed,
			expectedCode:   model.ErrCodeNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewPageConfigHandler(mockService, zerolog.Nop())

			if tt.expectService {
				mockService.On("SetPageConfig", tt.expectedConfig).Return()
			}

			req := httptest.NewRequest(tt.method, "/api/page-config", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Handle(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				var got model.PageConfig
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, tt.expectedConfig, got)
			} else {
				var got model.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, tt.expectedCode, got.Error)
			}

			mockService.AssertExpectations(t)
		})
	}
}
