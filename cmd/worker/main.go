package main

import (
	"log"

	"go-storefront/internal/app"
	"go-storefront/internal/config"
	"go-storefront/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	if err := app.RunWorker(cfg, zlog); err != nil {
		zlog.Fatal("worker", zap.Error(err))
	}
}
