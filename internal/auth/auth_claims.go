package auth

import (
	"fmt"
	"time"

	autherrors "go-storefront/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
)

type tokenClaims struct {
	UserID    string
	Role      string
	Email     string
	Name      string
	ExpiresAt time.Time
}

// parseClaims reads the token's payload without checking the signature. The
// claims only label the session; the backend verifies the token on every call.
func parseClaims(token string) (tokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return tokenClaims{}, autherrors.ErrInvalidToken
	}

	out := tokenClaims{
		UserID: firstString(claims, "user_id", "id", "sub"),
		Role:   firstString(claims, "role"),
		Email:  firstString(claims, "email"),
		Name:   firstString(claims, "name"),
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

func firstString(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		switch v := claims[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}
	return ""
}
