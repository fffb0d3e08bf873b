package storeapi

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
)

// ==================== CART ====================

type CartProduct struct {
	ID       ID              `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
}

type CartItem struct {
	ID         ID               `json:"id" validate:"required"`
	ProductID  ID               `json:"product_id"`
	Quantity   int              `json:"quantity" validate:"gte=1"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	Product    *CartProduct     `json:"Product,omitempty"`
	IsSelected bool             `json:"isSelected"`

	raw json.RawMessage
}

func (i *CartItem) UnmarshalJSON(b []byte) error {
	type alias CartItem
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*i = CartItem(a)
	i.raw = append(json.RawMessage(nil), b...)
	return nil
}

// Raw is the item exactly as the backend sent it. Checkout echoes it back.
func (i CartItem) Raw() json.RawMessage {
	if len(i.raw) > 0 {
		return i.raw
	}
	type alias CartItem
	b, _ := json.Marshal(alias(i))
	return b
}

// UnitPrice is the price captured at fetch time: the line price when the
// backend sends one, otherwise the embedded product's price.
func (i CartItem) UnitPrice() decimal.Decimal {
	if i.Price != nil {
		return *i.Price
	}
	if i.Product != nil {
		return i.Product.Price
	}
	return decimal.Zero
}

func (i CartItem) Validate() error {
	if i.Price == nil && i.Product == nil {
		return errors.New("cart item has neither price nor product")
	}
	if i.UnitPrice().IsNegative() {
		return errors.New("cart item price is negative")
	}
	return nil
}

type AddToCartRequest struct {
	ProductID ID  `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// QuantityPatch is the PUT /api/cart/{id} answer.
type QuantityPatch struct {
	CartItem *struct {
		Quantity int `json:"quantity" validate:"gte=1"`
	} `json:"cartItem"`
}

type Message struct {
	Message string `json:"message"`
}

// ==================== WISHLIST ====================

type WishlistProduct struct {
	ID       ID              `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
	ImageURL string          `json:"image_url"`
}

type WishlistItem struct {
	ID          ID               `json:"id" validate:"required"`
	ProductID   ID               `json:"product_id" validate:"required"`
	ProductName string           `json:"product_name,omitempty"`
	Product     *WishlistProduct `json:"Product,omitempty"`
}

func (w WishlistItem) Name() string {
	if w.ProductName != "" {
		return w.ProductName
	}
	if w.Product != nil {
		return w.Product.Name
	}
	return ""
}

type AddToWishlistRequest struct {
	ProductID ID `json:"product_id"`
}

// addToWishlistResponse covers both shapes seen from the backend: the
// created row at top level or wrapped in "item".
type addToWishlistResponse struct {
	ID          ID            `json:"id"`
	ProductID   ID            `json:"product_id"`
	ProductName string        `json:"product_name"`
	Item        *WishlistItem `json:"item"`
}

// ==================== CATALOG ====================

type Product struct {
	ID          ID              `json:"id" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Size        []string        `json:"size"`
	Color       string          `json:"color"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock" validate:"gte=0"`
	ImageURL    string          `json:"image_url"`
}

type Category struct {
	ID          ID     `json:"id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProductInput is sent as a multipart form, like the admin panel does.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Color       string
	Category    string
	Stock       int
	ImageURL    string
}

func (in ProductInput) form() map[string]string {
	f := map[string]string{
		"name":        in.Name,
		"description": in.Description,
		"price":       in.Price.String(),
		"color":       in.Color,
		"category":    in.Category,
		"stock":       strconv.Itoa(in.Stock),
	}
	if in.ImageURL != "" {
		f["image_url"] = in.ImageURL
	}
	return f
}

// ==================== USER ====================

type Address struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type RoleResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

type RegisterRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	UserName     string `json:"userName"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Password     string `json:"password"`
}

type User struct {
	ID           ID     `json:"id" validate:"required"`
	UserName     string `json:"userName"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Role         string `json:"role"`
}

type AuthResult struct {
	Token string `json:"token" validate:"required"`
	User  User   `json:"user"`
}

// ==================== ORDER ====================

type OrderRequest struct {
	CartItems       []json.RawMessage `json:"cart_items"`
	TotalPrice      json.Number       `json:"total_price"`
	ShippingAddress *Address          `json:"shipping_address"`
}

// OrderSession identifies the payment session the backend opened.
type OrderSession struct {
	SessionID   string `json:"sessionId" validate:"required"`
	RedirectURL string `json:"redirectUrl,omitempty"`
	SnapToken   string `json:"snapToken,omitempty"`
}
