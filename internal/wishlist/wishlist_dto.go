package wishlist

import "go-storefront/internal/storeapi"

type ToggleRequest struct {
	ProductID   storeapi.ID `json:"product_id" binding:"required"`
	ProductName string      `json:"product_name"`
}

type ItemResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	State       string `json:"state"`
}

type WishlistResponse struct {
	Items []ItemResponse `json:"items"`
	Count int            `json:"count"`
}

type ToggleResponse struct {
	ProductID  string           `json:"product_id"`
	InWishlist bool             `json:"in_wishlist"`
	Wishlist   WishlistResponse `json:"wishlist"`
}

func toWishlistResponse(items []Item) WishlistResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ItemResponse{
			ID:          it.ID.String(),
			ProductID:   it.ProductID.String(),
			ProductName: it.ProductName,
			State:       it.State.String(),
		})
	}
	return WishlistResponse{Items: out, Count: len(out)}
}
