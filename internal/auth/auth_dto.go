package auth

import "time"

type SignUpRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	UserName     string `json:"userName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	MobileNumber string `json:"mobileNumber"`
	Password     string `json:"password" binding:"required,min=6"`
}

// SignInRequest carries a token issued by the identity provider.
type SignInRequest struct {
	Token string `json:"token" binding:"required"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type AuthResponse struct {
	ID        string     `json:"id"`
	UserName  string     `json:"userName,omitempty"`
	Name      string     `json:"name,omitempty"`
	Email     string     `json:"email,omitempty"`
	Role      string     `json:"role,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}
