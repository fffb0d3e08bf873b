package storeapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

func (c *Client) FetchWishlist(ctx context.Context, token string) ([]WishlistItem, error) {
	var items []WishlistItem
	if err := c.doJSON(ctx, "fetch wishlist", http.MethodGet, "/api/wishlist", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToWishlist returns the created item when the backend echoes it, nil
// otherwise.
func (c *Client) AddToWishlist(ctx context.Context, token string, productID ID) (*WishlistItem, error) {
	const op = "add to wishlist"
	var raw json.RawMessage
	if err := c.doJSON(ctx, op, http.MethodPost, "/api/wishlist", token, AddToWishlistRequest{ProductID: productID}, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var resp addToWishlistResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		// plain message bodies are fine, the caller refetches
		return nil, nil
	}
	item := resp.Item
	if item == nil && resp.ID != "" {
		item = &WishlistItem{ID: resp.ID, ProductID: resp.ProductID, ProductName: resp.ProductName}
	}
	if item == nil {
		return nil, nil
	}
	if item.ProductID == "" {
		item.ProductID = productID
	}
	if err := c.validate.Struct(item); err != nil {
		return nil, &DecodeError{Op: op, Err: err}
	}
	return item, nil
}

func (c *Client) RemoveFromWishlist(ctx context.Context, token string, productID ID) error {
	path := "/api/wishlist/" + url.PathEscape(productID.String())
	return c.doJSON(ctx, "remove from wishlist", http.MethodDelete, path, token, nil, nil)
}
