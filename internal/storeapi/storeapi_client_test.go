package storeapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"go-storefront/internal/pkg/apperror"
	"go-storefront/internal/storeapi"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T, h http.HandlerFunc) *storeapi.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return storeapi.NewClient(srv.URL, 2*time.Second)
}

func TestClient_FetchCart(t *testing.T) {
	ctx := context.Background()

	t.Run("success_with_bearer", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/cart", r.URL.Path)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			w.Write([]byte(`[{"id":1,"product_id":7,"quantity":2,"Product":{"name":"Tee","price":100}},{"id":"2","product_id":8,"quantity":1,"price":50}]`))
		})

		items, err := client.FetchCart(ctx, "tok")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, storeapi.ID("1"), items[0].ID)
		assert.True(t, decimal.NewFromInt(100).Equal(items[0].UnitPrice()))
		assert.True(t, decimal.NewFromInt(50).Equal(items[1].UnitPrice()))
		assert.JSONEq(t, `{"id":1,"product_id":7,"quantity":2,"Product":{"name":"Tee","price":100}}`, string(items[0].Raw()))
	})

	t.Run("no_token_no_header", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Not authorized"}`))
		})

		_, err := client.FetchCart(ctx, "")
		require.Error(t, err)
		assert.True(t, storeapi.IsUnauthorized(err))

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
		assert.Equal(t, apperror.CodeUnauthorized, httpErr.Code)
		assert.Equal(t, "Not authorized", httpErr.Message)
	})

	t.Run("error_malformed_payload", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items":[]}`))
		})

		_, err := client.FetchCart(ctx, "tok")
		var decErr *storeapi.DecodeError
		require.ErrorAs(t, err, &decErr)
		assert.Equal(t, http.StatusBadGateway, apperror.ToHTTP(err).Status)
	})

	t.Run("error_invalid_quantity", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":1,"quantity":0,"price":10}]`))
		})

		_, err := client.FetchCart(ctx, "tok")
		var decErr *storeapi.DecodeError
		assert.ErrorAs(t, err, &decErr)
	})

	t.Run("error_missing_price", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":1,"quantity":1}]`))
		})

		_, err := client.FetchCart(ctx, "tok")
		var decErr *storeapi.DecodeError
		assert.ErrorAs(t, err, &decErr)
	})

	t.Run("error_network", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		client := storeapi.NewClient(srv.URL, time.Second)

		_, err := client.FetchCart(ctx, "tok")
		var netErr *storeapi.NetworkError
		require.ErrorAs(t, err, &netErr)
		assert.Equal(t, http.StatusBadGateway, apperror.ToHTTP(err).Status)
	})
}

func TestClient_ServerRejectionMessage(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"message_field", http.StatusBadRequest, `{"message":"Out of stock"}`, http.StatusBadRequest, "Out of stock"},
		{"error_string", http.StatusNotFound, `{"error":"Cart item not found"}`, http.StatusNotFound, "Cart item not found"},
		{"error_object", http.StatusConflict, `{"error":{"message":"Already there"}}`, http.StatusConflict, "Already there"},
		{"server_error", http.StatusInternalServerError, `oops`, http.StatusBadGateway, "Store service rejected the request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			err := client.DeleteCartItem(context.Background(), "tok", "5")
			var rej *storeapi.ServerRejection
			require.ErrorAs(t, err, &rej)
			assert.Equal(t, tt.status, rej.Status)

			httpErr := apperror.ToHTTP(err)
			assert.Equal(t, tt.wantStatus, httpErr.Status)
			assert.Equal(t, tt.wantMsg, httpErr.Message)
		})
	}
}

func TestClient_ServerRejectionMessageTruncated(t *testing.T) {
	tests := []struct {
		name    string
		message string
		wantLen int
	}{
		{"ascii", strings.Repeat("a", 400), 300},
		{"rune_straddles_limit", strings.Repeat("a", 299) + strings.Repeat("é", 10), 299},
		{"multibyte_only", strings.Repeat("日", 200), 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"message": tt.message})
			})

			err := client.DeleteCartItem(context.Background(), "tok", "5")
			var rej *storeapi.ServerRejection
			require.ErrorAs(t, err, &rej)
			assert.True(t, utf8.ValidString(rej.Message))
			assert.Len(t, rej.Message, tt.wantLen)
			assert.True(t, strings.HasPrefix(tt.message, rej.Message))
		})
	}
}

func TestClient_UpdateCartQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("success_uses_response_quantity", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/cart/9", r.URL.Path)
			var body map[string]int
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, 3, body["quantity"])
			w.Write([]byte(`{"message":"ok","cartItem":{"id":9,"quantity":3}}`))
		})

		q, err := client.UpdateCartQuantity(ctx, "tok", "9", 3)
		require.NoError(t, err)
		assert.Equal(t, 3, q)
	})

	t.Run("success_without_cart_item", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"message":"ok"}`))
		})

		q, err := client.UpdateCartQuantity(ctx, "tok", "9", 4)
		require.NoError(t, err)
		assert.Equal(t, 4, q)
	})
}

func TestClient_AddToWishlist(t *testing.T) {
	ctx := context.Background()

	t.Run("success_wrapped_item", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"item":{"id":31,"product_id":7,"product_name":"Tee"}}`))
		})

		item, err := client.AddToWishlist(ctx, "tok", "7")
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, storeapi.ID("31"), item.ID)
	})

	t.Run("success_top_level_row", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":31,"user_id":2,"product_id":7}`))
		})

		item, err := client.AddToWishlist(ctx, "tok", "7")
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, storeapi.ID("7"), item.ProductID)
	})

	t.Run("success_message_only", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"message":"Added to wishlist"}`))
		})

		item, err := client.AddToWishlist(ctx, "tok", "7")
		require.NoError(t, err)
		assert.Nil(t, item)
	})

	t.Run("success_empty_body", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		})

		item, err := client.AddToWishlist(ctx, "tok", "7")
		require.NoError(t, err)
		assert.Nil(t, item)
	})
}

func TestClient_CreateProductMultipart(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Tee", r.FormValue("name"))
		assert.Equal(t, "19.99", r.FormValue("price"))
		assert.Equal(t, "5", r.FormValue("stock"))
		assert.Equal(t, "https://img/tee.png", r.FormValue("image_url"))
		w.Write([]byte(`{"id":3,"name":"Tee","price":19.99,"stock":5}`))
	})

	p, err := client.CreateProduct(context.Background(), "tok", storeapi.ProductInput{
		Name:     "Tee",
		Price:    decimal.RequireFromString("19.99"),
		Stock:    5,
		ImageURL: "https://img/tee.png",
	})
	require.NoError(t, err)
	assert.Equal(t, storeapi.ID("3"), p.ID)
}

func TestClient_CreateOrder(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"cart_items":[{"id":1,"quantity":2}],"total_price":250,"shipping_address":{"address":"Jl. 1","city":"","state":"","postalCode":"","country":""}}`, string(b))
		w.Write([]byte(`{"sessionId":"cs_1"}`))
	})

	sess, err := client.CreateOrder(context.Background(), "tok", storeapi.OrderRequest{
		CartItems:       []json.RawMessage{json.RawMessage(`{"id":1,"quantity":2}`)},
		TotalPrice:      json.Number("250"),
		ShippingAddress: &storeapi.Address{Address: "Jl. 1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_1", sess.SessionID)

	t.Run("error_missing_session_id", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		})
		_, err := client.CreateOrder(context.Background(), "tok", storeapi.OrderRequest{})
		var decErr *storeapi.DecodeError
		assert.True(t, errors.As(err, &decErr))
	})
}

func TestID_JSON(t *testing.T) {
	var ids []storeapi.ID
	require.NoError(t, json.Unmarshal([]byte(`[1,"abc",null]`), &ids))
	assert.Equal(t, []storeapi.ID{"1", "abc", ""}, ids)

	b, err := json.Marshal([]storeapi.ID{"12", "x1"})
	require.NoError(t, err)
	assert.JSONEq(t, `[12,"x1"]`, string(b))
}
