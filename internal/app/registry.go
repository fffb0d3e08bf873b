package app

import (
	"go-storefront/internal/admin"
	"go-storefront/internal/auth"
	"go-storefront/internal/cart"
	"go-storefront/internal/catalog"
	"go-storefront/internal/checkout"
	"go-storefront/internal/cloudinary"
	"go-storefront/internal/config"
	"go-storefront/internal/middleware"
	"go-storefront/internal/outbox"
	"go-storefront/internal/payment"
	"go-storefront/internal/session"
	"go-storefront/internal/storeapi"
	"go-storefront/internal/wishlist"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type moduleDeps struct {
	cfg      config.Config
	log      *zap.Logger
	client   *storeapi.Client
	store    session.Store
	gateway  payment.Gateway
	uploader cloudinary.Service
	outbox   outbox.Recorder
}

type modules struct {
	client *storeapi.Client

	carts     cart.Service
	wishlists wishlist.Service

	authHandler     *auth.Handler
	catalogHandler  *catalog.Handler
	cartHandler     *cart.Handler
	wishlistHandler *wishlist.Handler
	checkoutHandler *checkout.Handler
	adminHandler    *admin.Handler
}

func buildModules(d moduleDeps) *modules {
	// --- Services ---
	cartService := cart.NewService(cart.Deps{
		Repo:       d.client,
		Logger:     d.log.Named("cart"),
		SessionTTL: d.cfg.SessionTTL,
	})
	wishlistService := wishlist.NewService(wishlist.Deps{
		Repo:       d.client,
		Logger:     d.log.Named("wishlist"),
		SessionTTL: d.cfg.SessionTTL,
	})
	checkoutService := checkout.NewService(checkout.Deps{
		Repo:       d.client,
		CartSvc:    cartService,
		Gateway:    d.gateway,
		Outbox:     d.outbox,
		Logger:     d.log.Named("checkout"),
		OrdersPath: d.cfg.OrdersPath,
	})
	authService := auth.NewService(auth.Deps{
		Repo:      d.client,
		Store:     d.store,
		Logger:    d.log,
		Resetters: []auth.Resetter{cartService, wishlistService},
	})
	catalogService := catalog.NewService(d.client, d.log.Named("catalog"))
	adminService := admin.NewService(admin.Deps{
		Repo:     d.client,
		Uploader: d.uploader,
		Logger:   d.log.Named("admin"),
	})

	// --- Handlers ---
	return &modules{
		client:    d.client,
		carts:     cartService,
		wishlists: wishlistService,

		authHandler: auth.NewHandler(authService, auth.CookieConfig{
			Name:   d.cfg.SessionCookie,
			MaxAge: int(d.cfg.SessionTTL.Seconds()),
			Secure: d.cfg.CookieSecure || d.cfg.IsProduction(),
		}, d.log),
		catalogHandler:  catalog.NewHandler(catalogService),
		cartHandler:     cart.NewHandler(cartService),
		wishlistHandler: wishlist.NewHandler(wishlistService),
		checkoutHandler: checkout.NewHandler(checkoutService),
		adminHandler:    admin.NewHandler(adminService),
	}
}

func registerModules(router *gin.Engine, m *modules, store session.Store, cfg config.Config, log *zap.Logger) {
	api := router.Group("/api/v1")
	api.Use(middleware.SessionMiddleware(store, cfg.SessionCookie, log))
	{
		auth.RegisterRoutes(api, m.authHandler)
		catalog.RegisterRoutes(api, m.catalogHandler)
		cart.RegisterRoutes(api, m.cartHandler)
		wishlist.RegisterRoutes(api, m.wishlistHandler)
		checkout.RegisterRoutes(api, m.checkoutHandler)
		admin.RegisterRoutes(api, m.adminHandler, m.client, log)
	}
}
