package storeapi

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ListProducts(ctx context.Context, token string) ([]Product, error) {
	var products []Product
	if err := c.doJSON(ctx, "list products", http.MethodGet, "/api/products", token, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, token string, id ID) (*Product, error) {
	var p Product
	path := "/api/products/" + url.PathEscape(id.String())
	if err := c.doJSON(ctx, "get product", http.MethodGet, path, token, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) ListCategories(ctx context.Context, token string) ([]Category, error) {
	var cats []Category
	if err := c.doJSON(ctx, "list categories", http.MethodGet, "/api/categories", token, nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (c *Client) CreateCategory(ctx context.Context, token string, in CategoryInput) (*Category, error) {
	var cat Category
	if err := c.doJSON(ctx, "create category", http.MethodPost, "/api/categories", token, in, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, in ProductInput) (*Product, error) {
	var p Product
	if err := c.doMultipart(ctx, "create product", http.MethodPost, "/api/products", token, in.form(), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProduct(ctx context.Context, token string, id ID, in ProductInput) (*Product, error) {
	var p Product
	path := "/api/products/" + url.PathEscape(id.String())
	if err := c.doMultipart(ctx, "update product", http.MethodPut, path, token, in.form(), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token string, id ID) error {
	path := "/api/products/" + url.PathEscape(id.String())
	return c.doJSON(ctx, "delete product", http.MethodDelete, path, token, nil, nil)
}
