package main

import (
	"context"
	"log"
	"time"

	"go-storefront/internal/app"
	"go-storefront/internal/bootstrap"
	"go-storefront/internal/config"
	"go-storefront/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// build dependency + routes
	a, err := app.BuildApp(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatal("build app", zap.Error(err))
	}
	a.Start(ctx)

	err = bootstrap.StartHTTPServer(ctx, a.Router, bootstrap.ServerConfig{
		Port:         cfg.Port,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 2*cfg.BackendTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}, zlog, func(context.Context) {
		cancel()
		a.Close()
	})
	if err != nil {
		zlog.Fatal("http server", zap.Error(err))
	}
}
