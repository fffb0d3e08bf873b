package admin

import (
	"io"
	"strings"

	"go-storefront/internal/storeapi"

	"github.com/shopspring/decimal"
)

// ProductForm is the admin panel's multipart form.
type ProductForm struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
	Price       string `form:"price" binding:"required"`
	Color       string `form:"color"`
	Category    string `form:"category" binding:"required"`
	Stock       int    `form:"stock" binding:"gte=0"`
	ImageURL    string `form:"image_url"`
}

// Image is an optional upload attached to a product form.
type Image struct {
	File     io.Reader
	Filename string
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (f ProductForm) toInput() (storeapi.ProductInput, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(f.Price))
	if err != nil || price.IsNegative() {
		return storeapi.ProductInput{}, ErrInvalidPrice
	}
	return storeapi.ProductInput{
		Name:        strings.TrimSpace(f.Name),
		Description: f.Description,
		Price:       price,
		Color:       f.Color,
		Category:    strings.TrimSpace(f.Category),
		Stock:       f.Stock,
		ImageURL:    f.ImageURL,
	}, nil
}
