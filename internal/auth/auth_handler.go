package auth

import (
	"net/http"

	"go-storefront/internal/middleware"
	"go-storefront/internal/pkg/apperror"
	"go-storefront/internal/pkg/response"
	"go-storefront/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CookieConfig struct {
	Name   string
	MaxAge int
	Secure bool
}

type Handler struct {
	service Service
	cookie  CookieConfig
	logger  *zap.Logger
}

func NewHandler(s Service, cookie CookieConfig, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, cookie: cookie, logger: l}
}

func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http signup validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid input", err.Error())
		return
	}

	sess, err := h.service.SignUp(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	h.setCookie(c, sess.ID, h.cookie.MaxAge)
	me, _ := h.service.Me(sess)
	response.Success(c, http.StatusCreated, gin.H{"user": me}, nil)
}

func (h *Handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid input", err.Error())
		return
	}

	sess, err := h.service.SignIn(c.Request.Context(), middleware.SessionFrom(c), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	h.setCookie(c, sess.ID, h.cookie.MaxAge)
	me, _ := h.service.Me(sess)
	response.Success(c, http.StatusOK, gin.H{"user": me}, nil)
}

func (h *Handler) SignOut(c *gin.Context) {
	if err := h.service.SignOut(c.Request.Context(), middleware.SessionFrom(c)); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	h.setCookie(c, "", -1)
	middleware.SetSession(c, session.Session{})
	response.Success(c, http.StatusOK, "Signed out", nil)
}

func (h *Handler) Me(c *gin.Context) {
	me, err := h.service.Me(middleware.SessionFrom(c))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, me, nil)
}

func (h *Handler) setCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
