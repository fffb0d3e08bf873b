package checkout_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-storefront/internal/checkout"
	"go-storefront/internal/middleware"
	mock "go-storefront/internal/mock/checkout"
	"go-storefront/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupRouter(svc checkout.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetSession(c, testSess)
	})
	checkout.RegisterRoutes(r.Group("/api/v1"), checkout.NewHandler(svc))
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.APIResponse {
	t.Helper()
	var res response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestHandler_Begin(t *testing.T) {
	t.Run("success_redirects_to_provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		summary := checkout.Summary{Items: nil}
		svc.EXPECT().Prepare(gomock.Any(), testSess).Return(summary, nil)
		svc.EXPECT().Begin(gomock.Any(), testSess, summary).Return(checkout.BeginResponse{
			PaymentSessionID: "cs_1",
			RedirectURL:      "https://pay.example/cs_1",
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "https://pay.example/cs_1", w.Header().Get("Location"))
	})

	t.Run("empty_selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Prepare(gomock.Any(), testSess).Return(checkout.Summary{}, nil)
		svc.EXPECT().Begin(gomock.Any(), testSess, checkout.Summary{}).Return(checkout.BeginResponse{}, checkout.ErrNothingSelected)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		res := decode(t, w)
		assert.False(t, res.Success)
	})
}

func TestHandler_Complete(t *testing.T) {
	t.Run("success_navigates_to_orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Complete(gomock.Any(), testSess, "cs_1").Return(checkout.CompleteResponse{
			Navigate:     "/orders",
			DeletedItems: []string{"1", "2"},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/checkout/complete?session_id=cs_1", nil)
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "/orders", w.Header().Get("Location"))
	})

	t.Run("not_paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Complete(gomock.Any(), testSess, "cs_1").Return(checkout.CompleteResponse{}, checkout.ErrPaymentNotCompleted)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/checkout/complete?session_id=cs_1", nil)
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
