package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go-storefront/internal/pkg/apperror"
	"go-storefront/internal/pkg/response"
	"go-storefront/internal/session"
	"go-storefront/internal/storeapi"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionKey = "session"

var (
	ErrUnauthorized = apperror.New(apperror.CodeUnauthorized, "Please sign in to continue", http.StatusUnauthorized)
	ErrForbidden    = apperror.New(apperror.CodeForbidden, "You do not have access to this resource", http.StatusForbidden)
)

// SessionMiddleware loads the browser session named by the cookie. Requests
// without one continue anonymously with an empty session.
func SessionMiddleware(store session.Store, cookieName string, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		sess := session.Session{}

		id, err := c.Cookie(cookieName)
		if err == nil && id != "" {
			loaded, err := store.Get(c.Request.Context(), id)
			switch {
			case err == nil:
				if loaded.Expired(time.Now()) {
					if delErr := store.Delete(c.Request.Context(), id); delErr != nil {
						log.Warn("failed to delete expired session", zap.Error(delErr))
					}
				} else {
					sess = loaded
				}
			case errors.Is(err, session.ErrSessionNotFound):
			default:
				log.Error("failed to load session", zap.Error(err))
				httpErr := apperror.ToHTTP(err)
				response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
				c.Abort()
				return
			}
		}

		c.Set(sessionKey, sess)
		if sess.User.ID != "" {
			c.Set("user_id", sess.User.ID)
		}
		c.Next()
	}
}

// SessionFrom returns the session loaded by SessionMiddleware, or an empty
// anonymous one.
func SessionFrom(c *gin.Context) session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(session.Session); ok {
			return sess
		}
	}
	return session.Session{}
}

// SetSession replaces the session seen by the rest of the chain.
func SetSession(c *gin.Context, sess session.Session) {
	c.Set(sessionKey, sess)
}

func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFrom(c)
		if sess.ID == "" || !sess.Authenticated() {
			response.Error(c, ErrUnauthorized.HTTPStatus, ErrUnauthorized.Code, ErrUnauthorized.Message, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

//go:generate mockgen -source=auth_middleware.go -destination=../mock/middleware/role_checker_mock.go -package=mock
type RoleChecker interface {
	FetchRole(ctx context.Context, token string) (*storeapi.RoleResponse, error)
}

// AdminOnly asks the backend whether the session's user is an admin. Any
// failure counts as "not an admin".
func AdminOnly(roles RoleChecker, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		sess := SessionFrom(c)
		if !sess.Authenticated() {
			response.Error(c, ErrUnauthorized.HTTPStatus, ErrUnauthorized.Code, ErrUnauthorized.Message, nil)
			c.Abort()
			return
		}

		role, err := roles.FetchRole(c.Request.Context(), sess.Token)
		if err != nil {
			log.Warn("role check failed", zap.String("user_id", sess.User.ID), zap.Error(err))
		}
		if err != nil || role == nil || !role.IsAdmin {
			response.Error(c, ErrForbidden.HTTPStatus, ErrForbidden.Code, ErrForbidden.Message, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
