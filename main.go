package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/ARQAP/AppArchivo-Backend/src/config"
	"github.com/ARQAP/AppArchivo-Backend/src/controllers"
	"github.com/ARQAP/AppArchivo-Backend/src/middleware"
	"github.com/ARQAP/AppArchivo-Backend/src/routes"
	"github.com/ARQAP/AppArchivo-Backend/src/services"
	"github.com/ARQAP/AppArchivo-Backend/src/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {

	// Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v\n", err)
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error creating logger: %v\n", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional Google Drive import
	var downloader controllers.FileDownloader
	if cfg.DriveEnabled() {
		client, err := utils.NewDriveClient(ctx, cfg.DriveCredentialsPath, cfg.DriveCredentialsJSON, logger)
		if err != nil {
			logger.Warn("Google Drive deshabilitado", zap.Error(err))
		} else {
			downloader = client
		}
	}

	// Gin router setup
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger), middleware.SetupCORS(cfg.CORSOrigins))

	// Services setup
	importService := services.NewImportService(logger)
	placementService := services.NewPlacementService(logger)
	layoutService := services.NewLayoutService(importService, placementService, logger)
	lookupService := services.NewLookupService(logger)
	sessionService := services.NewSessionService(ctx, cfg.SessionTTL, logger)

	// Routes setup
	routes.SetupLayoutRoutes(router, layoutService, sessionService, downloader, cfg.DefaultPolicy, cfg.Layout)
	routes.SetupLookupRoutes(router, lookupService, sessionService)
	routes.SetupCapacityRoutes(router, cfg.Layout)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "AppArchivo – Sistema de Archivo")
	})

	logger.Info("Server starting",
		zap.String("host", cfg.ServerHost),
		zap.String("policy", string(cfg.DefaultPolicy)),
		zap.Int("boxCapacity", cfg.Layout.BoxCapacity))

	// Server run
	if err := router.Run(cfg.ServerHost); err != nil {
		logger.Fatal("Error starting server", zap.String("host", cfg.ServerHost), zap.Error(err))
	}
}
