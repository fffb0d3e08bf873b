package checkout

import (
	"net/http"

	"go-storefront/internal/middleware"
	"go-storefront/internal/pkg/apperror"
	"go-storefront/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GET /checkout
func (h *Handler) Summary(c *gin.Context) {
	res, err := h.service.Prepare(c.Request.Context(), middleware.SessionFrom(c))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// POST /checkout
func (h *Handler) Begin(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.SessionFrom(c)

	summary, err := h.service.Prepare(ctx, sess)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	res, err := h.service.Begin(ctx, sess, summary)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Redirect(c, http.StatusCreated, res.RedirectURL, res)
}

// GET /checkout/complete?session_id=
func (h *Handler) Complete(c *gin.Context) {
	res, err := h.service.Complete(c.Request.Context(), middleware.SessionFrom(c), c.Query("session_id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Redirect(c, http.StatusOK, res.Navigate, res)
}
