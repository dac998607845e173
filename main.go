package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/22Vinith/Hospital-Management/configuration"
	"github.com/22Vinith/Hospital-Management/routes"
)

func main() {
	cfg, err := configuration.Load()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	logger, err := configuration.NewLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	db, err := configuration.ConfigDB(cfg)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	rdb, err := configuration.InitRedis(cfg)
	if err != nil {
		// Cache is advisory; the server runs without it.
		logger.Warn("redis unavailable, doctor cache disabled", zap.Error(err))
		rdb = nil
	}

	r := routes.Setup(cfg, db, rdb, logger)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
