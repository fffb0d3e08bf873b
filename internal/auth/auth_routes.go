package auth

import (
	"go-storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		// one account per 20 seconds per IP
		auth.POST("/signup",
			middleware.RateLimitByIP(0.05, 1),
			handler.SignUp,
		)

		auth.POST("/signin",
			middleware.RateLimitByIP(0.1, 3),
			handler.SignIn,
		)

		authenticated := auth.Group("")
		authenticated.Use(middleware.RequireSession())
		{
			// called on every app start
			authenticated.GET("/me",
				middleware.RateLimitByUser(5, 10),
				handler.Me,
			)
			authenticated.POST("/signout",
				middleware.RateLimitByUser(1, 2),
				handler.SignOut,
			)
		}
	}
}
