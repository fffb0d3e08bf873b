package checkout

import (
	"go-storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	checkout := r.Group("/checkout")
	checkout.Use(middleware.RateLimitByUser(5, 10))
	{
		checkout.GET("", handler.Summary)

		// opening an order creates a payment session upstream
		checkout.POST("",
			middleware.RateLimitByUser(0.2, 2),
			handler.Begin,
		)
		checkout.GET("/complete",
			middleware.RateLimitByUser(0.5, 3),
			handler.Complete,
		)
	}
}
