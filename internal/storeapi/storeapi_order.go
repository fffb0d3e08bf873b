package storeapi

import (
	"context"
	"net/http"
)

func (c *Client) CreateOrder(ctx context.Context, token string, req OrderRequest) (*OrderSession, error) {
	var sess OrderSession
	if err := c.doJSON(ctx, "create order", http.MethodPost, "/api/orders", token, req, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}
