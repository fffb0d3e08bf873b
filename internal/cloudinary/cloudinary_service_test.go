package cloudinary_test

import (
	"testing"

	"go-storefront/internal/cloudinary"

	"github.com/stretchr/testify/assert"
)

func TestExtractPublicID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		folder string
		want   string
	}{
		{"versioned", "https://res.cloudinary.com/demo/image/upload/v1234567890/products/shirt.jpg", "products", "products/shirt"},
		{"no_version", "https://res.cloudinary.com/demo/image/upload/products/shirt.png", "products", "products/shirt"},
		{"query_string", "https://res.cloudinary.com/demo/image/upload/v1/products/a.webp?x=1", "products", "products/a"},
		{"other_folder", "https://res.cloudinary.com/demo/image/upload/v1/avatars/me.jpg", "products", ""},
		{"no_folder_filter", "https://res.cloudinary.com/demo/image/upload/v1/avatars/me.jpg", "", "avatars/me"},
		{"not_cloudinary", "https://cdn.example.com/shirt.jpg", "products", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cloudinary.ExtractPublicID(tt.url, tt.folder))
		})
	}
}

func TestNewService(t *testing.T) {
	svc, err := cloudinary.NewService("demo", "key", "secret", "products")
	assert.NoError(t, err)
	assert.NotNil(t, svc)
}
