package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-storefront/internal/middleware"
	mwmock "go-storefront/internal/mock/middleware"
	sessionMock "go-storefront/internal/mock/session"
	"go-storefront/internal/session"
	"go-storefront/internal/storeapi"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const cookieName = "sf_session"

func echoSession(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	c.JSON(http.StatusOK, gin.H{"id": sess.ID, "user": sess.User.ID})
}

func TestSessionMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	newRouter := func(store session.Store) *gin.Engine {
		r := gin.New()
		r.Use(middleware.SessionMiddleware(store, cookieName, nil))
		r.GET("/", echoSession)
		return r
	}

	t.Run("success_loads_session", func(t *testing.T) {
		store := session.NewMemoryStore(time.Hour)
		_ = store.Save(ctx, session.Session{ID: "s1", Token: "tok", User: session.User{ID: "u1"}})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: "s1"})
		newRouter(store).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"s1","user":"u1"}`, w.Body.String())
	})

	t.Run("no_cookie_is_anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(session.NewMemoryStore(time.Hour)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"","user":""}`, w.Body.String())
	})

	t.Run("unknown_session_is_anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: "gone"})
		newRouter(session.NewMemoryStore(time.Hour)).ServeHTTP(w, req)

		assert.JSONEq(t, `{"id":"","user":""}`, w.Body.String())
	})

	t.Run("expired_token_deletes_session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sessionMock.NewMockStore(ctrl)
		store.EXPECT().Get(gomock.Any(), "s1").Return(session.Session{
			ID: "s1", Token: "tok", TokenExpiresAt: time.Now().Add(-time.Minute),
		}, nil)
		store.EXPECT().Delete(gomock.Any(), "s1").Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: "s1"})
		newRouter(store).ServeHTTP(w, req)

		assert.JSONEq(t, `{"id":"","user":""}`, w.Body.String())
	})

	t.Run("store_error_aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sessionMock.NewMockStore(ctrl)
		store.EXPECT().Get(gomock.Any(), "s1").Return(session.Session{}, session.ErrSessionStore)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: "s1"})
		newRouter(store).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		sess session.Session
		want int
	}{
		{"success", session.Session{ID: "s1", Token: "tok"}, http.StatusOK},
		{"anonymous", session.Session{}, http.StatusUnauthorized},
		{"no_token", session.Session{ID: "s1"}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(func(c *gin.Context) { middleware.SetSession(c, tt.sess) })
			r.GET("/", middleware.RequireSession(), echoSession)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sess := session.Session{ID: "s1", Token: "tok", User: session.User{ID: "u1"}}

	tests := []struct {
		name string
		role *storeapi.RoleResponse
		err  error
		want int
	}{
		{"success_admin", &storeapi.RoleResponse{IsAdmin: true}, nil, http.StatusOK},
		{"not_admin", &storeapi.RoleResponse{IsAdmin: false}, nil, http.StatusForbidden},
		{"backend_error", nil, errors.New("down"), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			roles := mwmock.NewMockRoleChecker(ctrl)
			roles.EXPECT().FetchRole(gomock.Any(), "tok").Return(tt.role, tt.err)

			r := gin.New()
			r.Use(func(c *gin.Context) { middleware.SetSession(c, sess) })
			r.GET("/", middleware.AdminOnly(roles, nil), echoSession)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
