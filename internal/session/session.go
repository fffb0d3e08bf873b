package session

import (
	"context"
	"time"
)

// User is the profile the storefront keeps next to the token. It is display
// data only; the backend stays authoritative for who the user is.
type User struct {
	ID           string `json:"id"`
	UserName     string `json:"userName,omitempty"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Email        string `json:"email,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
	Role         string `json:"role,omitempty"`
}

// Session is passed explicitly to everything that talks to the backend.
type Session struct {
	ID             string    `json:"id"`
	Token          string    `json:"token"`
	User           User      `json:"user"`
	TokenExpiresAt time.Time `json:"tokenExpiresAt,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Expired reports whether the token carries an expiry that already passed.
func (s Session) Expired(now time.Time) bool {
	return !s.TokenExpiresAt.IsZero() && now.After(s.TokenExpiresAt)
}

//go:generate mockgen -source=session.go -destination=../mock/session/session_store_mock.go -package=mock
type Store interface {
	Get(ctx context.Context, id string) (Session, error)
	Save(ctx context.Context, sess Session) error
	Delete(ctx context.Context, id string) error
}
