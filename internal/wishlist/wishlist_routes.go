package wishlist

import (
	"go-storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	wishlists := r.Group("/wishlist")
	{
		wishlists.GET("",
			middleware.RateLimitByUser(5, 10),
			handler.List,
		)

		// toggles are cheap to spam from a product grid
		itemActionLimit := middleware.RateLimitByUser(2, 5)

		wishlists.POST("/toggle", itemActionLimit, handler.Toggle)
		wishlists.DELETE("/:productId", itemActionLimit, handler.Remove)
	}
}
