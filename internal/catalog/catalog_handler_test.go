package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-storefront/internal/catalog"
	mock "go-storefront/internal/mock/catalog"
	"go-storefront/internal/pkg/response"
	"go-storefront/internal/session"
	"go-storefront/internal/storeapi"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupRouter(svc catalog.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	catalog.RegisterRoutes(r.Group("/api/v1"), catalog.NewHandler(svc))
	return r
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	svc.EXPECT().List(gomock.Any(), session.Session{}, "women").Return(catalog.ProductListResponse{
		Category: "women",
		Products: []storeapi.Product{products[1]},
		Count:    1,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?category=women", nil)
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var res response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
}

func TestHandler_Detail(t *testing.T) {
	t.Run("upstream_rejection_keeps_status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Detail(gomock.Any(), gomock.Any(), "9").Return(nil, &storeapi.ServerRejection{Op: "get product", Status: 404, Message: "Product not found"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/9", nil)
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_Categories(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	svc.EXPECT().Categories(gomock.Any(), gomock.Any()).Return([]storeapi.Category{{ID: "1", Name: "Men"}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
