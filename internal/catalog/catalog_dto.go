package catalog

import "go-storefront/internal/storeapi"

type ListQuery struct {
	Category string `form:"category"`
}

type ProductListResponse struct {
	Category string             `json:"category"`
	Products []storeapi.Product `json:"products"`
	Count    int                `json:"count"`
}
