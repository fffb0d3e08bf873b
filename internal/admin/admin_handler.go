package admin

import (
	"net/http"

	"go-storefront/internal/middleware"
	"go-storefront/internal/pkg/apperror"
	"go-storefront/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const maxFormSize = 10 << 20

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateProduct(c *gin.Context) {
	form, img, ok := h.bindProduct(c)
	if !ok {
		return
	}
	if img != nil {
		defer img.close()
	}

	res, err := h.service.CreateProduct(c.Request.Context(), middleware.SessionFrom(c), form, img.image())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	form, img, ok := h.bindProduct(c)
	if !ok {
		return
	}
	if img != nil {
		defer img.close()
	}

	res, err := h.service.UpdateProduct(c.Request.Context(), middleware.SessionFrom(c), c.Param("id"), form, img.image())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.service.DeleteProduct(c.Request.Context(), middleware.SessionFrom(c), c.Param("id")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": c.Param("id")}, nil)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	res, err := h.service.CreateCategory(c.Request.Context(), middleware.SessionFrom(c), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) bindProduct(c *gin.Context) (ProductForm, *upload, bool) {
	var form ProductForm
	if err := c.Request.ParseMultipartForm(maxFormSize); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid multipart form", err.Error())
		return form, nil, false
	}
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid product form", err.Error())
		return form, nil, false
	}

	fh, err := c.FormFile("image")
	if err != nil || fh == nil {
		return form, nil, true
	}
	f, err := fh.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Failed to open file", err.Error())
		return form, nil, false
	}
	return form, &upload{file: f, filename: fh.Filename}, true
}
