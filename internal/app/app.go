package app

import (
	"context"
	"database/sql"
	"io"
	"time"

	"go-storefront/internal/cloudinary"
	"go-storefront/internal/config"
	"go-storefront/internal/logger"
	"go-storefront/internal/outbox"
	"go-storefront/internal/payment"
	"go-storefront/internal/session"
	"go-storefront/internal/shared/connection"
	"go-storefront/internal/shared/database"
	"go-storefront/internal/storeapi"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const connectRetries = 5

// App is the assembled storefront server.
type App struct {
	Router *gin.Engine

	cfg     config.Config
	log     *zap.Logger
	modules *modules
	closers []io.Closer
}

// BuildApp connects the optional infrastructure (redis, postgres, kafka),
// builds every module and registers the routes. Anything left unconfigured
// falls back to in-process behaviour.
func BuildApp(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log}

	// 1. Infrastructure
	store, err := a.sessionStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	db, err := a.database(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	// 2. Third party services
	gateway, err := payment.NewGateway(payment.Config{
		Provider:             cfg.PaymentProvider,
		StripeSecretKey:      cfg.StripeSecretKey,
		MidtransServerKey:    cfg.MidtransServerKey,
		MidtransIsProduction: cfg.MidtransIsProduction,
	}, log)
	if err != nil {
		a.Close()
		return nil, err
	}

	var uploader cloudinary.Service
	if cfg.CloudinaryCloudName != "" {
		uploader, err = cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
		if err != nil {
			a.Close()
			return nil, err
		}
	} else {
		log.Warn("cloudinary not configured, product image uploads disabled")
	}

	var outboxRepo outbox.Repository
	if db != nil {
		outboxRepo = outbox.NewRepository(db)
	}

	client := storeapi.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout, storeapi.WithLogger(log.Named("storeapi")))

	// 3. Modules and routes
	a.modules = buildModules(moduleDeps{
		cfg:      cfg,
		log:      log,
		client:   client,
		store:    store,
		gateway:  gateway,
		uploader: uploader,
		outbox:   outbox.NewService(outbox.Deps{Repo: outboxRepo, Logger: log.Named("outbox")}),
	})

	a.Router = gin.New()
	a.Router.Use(gin.Recovery(), logger.RequestLogger(log))
	registerModules(a.Router, a.modules, store, cfg, log)

	return a, nil
}

// Start launches the background loops. They stop when ctx is cancelled.
func (a *App) Start(ctx context.Context) {
	go runSweeper(ctx, a.modules, a.cfg.SessionTTL, a.log)

	if a.cfg.KafkaBroker != "" {
		reader := newCartReader(a.cfg)
		a.closers = append(a.closers, reader)
		go runCartConsumer(ctx, reader, a.modules.carts, a.log)
	} else {
		a.log.Warn("kafka not configured, cart invalidation disabled")
	}
}

// Close releases connections in reverse order of opening.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.log.Warn("close failed", zap.Error(err))
		}
	}
	a.closers = nil
}

func (a *App) sessionStore(ctx context.Context) (session.Store, error) {
	if a.cfg.RedisAddr == "" {
		a.log.Warn("redis not configured, sessions kept in memory")
		return session.NewMemoryStore(a.cfg.SessionTTL), nil
	}

	rdb, err := connection.ConnectRedisWithRetry(ctx, a.cfg.RedisAddr, connectRetries, a.log)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, rdb)
	return session.NewRedisStore(rdb, a.cfg.SessionTTL, a.log.Named("session")), nil
}

func (a *App) database(ctx context.Context) (*sql.DB, error) {
	if a.cfg.DBURL == "" {
		a.log.Warn("database not configured, storefront events are only logged")
		return nil, nil
	}

	db, err := connection.ConnectDBWithRetry(ctx, a.cfg.DBURL, connectRetries, a.log)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, db)

	if err := database.RunMigrations(db, a.log); err != nil {
		return nil, err
	}
	return db, nil
}

func runSweeper(ctx context.Context, m *modules, ttl time.Duration, log *zap.Logger) {
	interval := ttl / 4
	if interval <= 0 || interval > 5*time.Minute {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			carts := m.carts.Sweep()
			wishlists := m.wishlists.Sweep()
			if carts+wishlists > 0 {
				log.Debug("idle session state evicted", zap.Int("carts", carts), zap.Int("wishlists", wishlists))
			}
		}
	}
}
