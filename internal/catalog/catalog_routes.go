package catalog

import (
	"go-storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	products := r.Group("/products")
	{
		// loose enough for browsing, tight enough against scraping
		products.GET("",
			middleware.RateLimitByIP(10, 20),
			handler.List,
		)
		products.GET("/:id",
			middleware.RateLimitByIP(5, 10),
			handler.Detail,
		)
	}

	r.GET("/categories",
		middleware.RateLimitByIP(10, 20),
		handler.Categories,
	)
}
