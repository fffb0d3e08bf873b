package storeapi

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) FetchCart(ctx context.Context, token string) ([]CartItem, error) {
	var items []CartItem
	if err := c.doJSON(ctx, "fetch cart", http.MethodGet, "/api/cart", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) FetchSelectedCart(ctx context.Context, token string) ([]CartItem, error) {
	var items []CartItem
	if err := c.doJSON(ctx, "fetch selected cart", http.MethodGet, "/api/cart/selected", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) AddToCart(ctx context.Context, token string, productID ID, quantity int) (string, error) {
	var msg Message
	req := AddToCartRequest{ProductID: productID, Quantity: quantity}
	if err := c.doJSON(ctx, "add to cart", http.MethodPost, "/api/cart", token, req, &msg); err != nil {
		return "", err
	}
	return msg.Message, nil
}

// UpdateCartQuantity returns the quantity the backend reports, or q when the
// response carries no cartItem.
func (c *Client) UpdateCartQuantity(ctx context.Context, token string, itemID ID, q int) (int, error) {
	var patch QuantityPatch
	path := "/api/cart/" + url.PathEscape(itemID.String())
	if err := c.doJSON(ctx, "update cart quantity", http.MethodPut, path, token, UpdateQuantityRequest{Quantity: q}, &patch); err != nil {
		return 0, err
	}
	if patch.CartItem == nil {
		return q, nil
	}
	return patch.CartItem.Quantity, nil
}

func (c *Client) DeleteCartItem(ctx context.Context, token string, itemID ID) error {
	path := "/api/cart/" + url.PathEscape(itemID.String())
	return c.doJSON(ctx, "delete cart item", http.MethodDelete, path, token, nil, nil)
}
