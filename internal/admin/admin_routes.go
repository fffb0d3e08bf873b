package admin

import (
	"go-storefront/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, roles middleware.RoleChecker, log *zap.Logger) {
	admin := r.Group("/admin")
	admin.Use(
		middleware.RequireSession(),
		middleware.AdminOnly(roles, log),
	)
	{
		// stops double submits from the admin panel
		mutationLimit := middleware.RateLimitByUser(1, 3)

		admin.POST("/products", mutationLimit, handler.CreateProduct)
		admin.PUT("/products/:id", mutationLimit, handler.UpdateProduct)
		admin.DELETE("/products/:id", mutationLimit, handler.DeleteProduct)
		admin.POST("/categories", mutationLimit, handler.CreateCategory)
	}
}
