package cart

import (
	"go-storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	carts.Use(middleware.RateLimitByUser(10, 20))
	{
		carts.GET("", handler.Detail)
		carts.GET("/total", handler.Total)

		// mutations hit the backend and then refetch
		mutationLimit := middleware.RateLimitByUser(3, 6)
		carts.POST("/items", mutationLimit, handler.AddItem)
		carts.PUT("/items/:id", mutationLimit, handler.UpdateQty)
		carts.DELETE("/items/:id", mutationLimit, handler.DeleteItem)
	}
}
