package storeapi

import (
	"context"
	"net/http"
)

func (c *Client) FetchAddress(ctx context.Context, token string) (*Address, error) {
	var addr Address
	if err := c.doJSON(ctx, "fetch address", http.MethodGet, "/api/user/address", token, nil, &addr); err != nil {
		return nil, err
	}
	return &addr, nil
}

func (c *Client) FetchRole(ctx context.Context, token string) (*RoleResponse, error) {
	var role RoleResponse
	if err := c.doJSON(ctx, "fetch role", http.MethodGet, "/api/users/role", token, nil, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	var res AuthResult
	if err := c.doJSON(ctx, "register", http.MethodPost, "/api/users/register", "", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
