package cart

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

func (h *Handler) Detail(ctx *gin.Context) {
	sess := middleware.SessionFrom(ctx)
	refresh := ctx.Query("refresh") == "true"

	res, err := h.service.Detail(ctx.Request.Context(), sess, refresh)
	if err != nil {
		writeError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res, nil)
}

func (h *Handler) Total(ctx *gin.Context) {
	res, err := h.service.Total(ctx.Request.Context(), middleware.SessionFrom(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res, nil)
}

func (h *Handler) AddItem(ctx *gin.Context) {
	var req AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid input", err.Error())
		return
	}

	res, err := h.service.AddItem(ctx.Request.Context(), middleware.SessionFrom(ctx), req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusCreated, res, nil)
}

func (h *Handler) UpdateQty(ctx *gin.Context) {
	var req UpdateQtyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid input", err.Error())
		return
	}

	res, err := h.service.UpdateQty(ctx.Request.Context(), middleware.SessionFrom(ctx), ctx.Param("id"), req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res, nil)
}

func (h *Handler) DeleteItem(ctx *gin.Context) {
	res, err := h.service.DeleteItem(ctx.Request.Context(), middleware.SessionFrom(ctx), ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res, nil)
}

func writeError(ctx *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}
