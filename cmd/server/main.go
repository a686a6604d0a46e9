package main

import (
	"github.com/blues/ets/internal/config"
	"github.com/blues/ets/internal/database"
	"github.com/blues/ets/internal/logger"
	"github.com/blues/ets/internal/router"
	"github.com/blues/ets/internal/scheduler"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	if err := logger.Setup(cfg.Log); err != nil {
		logger.Fatal("Failed to configure logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	if err := database.Prepare(db, cfg); err != nil {
		logger.Fatal("Failed to prepare database: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.Setup(db, cfg)

	manager := scheduler.Start(db, cfg)
	defer manager.Stop()

	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
