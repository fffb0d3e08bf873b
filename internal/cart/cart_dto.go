package cart

import (
	"go-storefront/internal/storeapi"

	"github.com/shopspring/decimal"
)

type AddItemRequest struct {
	ProductID storeapi.ID `json:"product_id" binding:"required"`
	Quantity  int         `json:"quantity"`
}

type UpdateQtyRequest struct {
	Quantity int `json:"quantity"`
}

type CartItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name,omitempty"`
	ImageURL  string          `json:"image_url,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Selected  bool            `json:"is_selected"`
}

type CartResponse struct {
	Items   []CartItemResponse `json:"items"`
	Count   int                `json:"count"`
	Total   decimal.Decimal    `json:"total"`
	Message string             `json:"message,omitempty"`
}

type TotalResponse struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

func toItemResponse(it storeapi.CartItem) CartItemResponse {
	res := CartItemResponse{
		ID:        it.ID.String(),
		ProductID: it.ProductID.String(),
		Quantity:  it.Quantity,
		UnitPrice: it.UnitPrice(),
		Subtotal:  it.UnitPrice().Mul(decimal.NewFromInt(int64(it.Quantity))),
		Selected:  it.IsSelected,
	}
	if it.Product != nil {
		res.Name = it.Product.Name
		res.ImageURL = it.Product.ImageURL
		if res.ProductID == "" {
			res.ProductID = it.Product.ID.String()
		}
	}
	return res
}

func toCartResponse(s *Sync) CartResponse {
	items := s.Items()
	out := make([]CartItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return CartResponse{
		Items: out,
		Count: len(items),
		Total: Total(items),
	}
}
