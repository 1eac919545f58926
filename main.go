package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"folio-hand/config"
	"folio-hand/services"
	"folio-hand/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	contactMessagesCounter prometheus.Counter
	sweptFilesCounter      prometheus.Counter
)

func init() {
	contactMessagesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_messages_received_total",
			Help: "Total number of contact messages received through the public form.",
		},
	)
	sweptFilesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "upload_files_swept_total",
			Help: "Total number of orphaned upload files removed by the sweep job.",
		},
	)
	prometheus.MustRegister(contactMessagesCounter, sweptFilesCounter)
}

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		logging.Fatal("Failed to connect to database", zap.Error(err))
	}
	logging.Info("Successfully connected to database.")

	store := storage.New(db, logging)
	logging.Info("Running database auto-migration...")
	if err := store.AutoMigrate(); err != nil {
		logging.Fatal("Auto-migration failed", zap.Error(err))
	}

	auth := services.NewAuthService(cfg, store, logging)
	if err := auth.EnsureAdminUser(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logging.Fatal("Failed to seed admin user", zap.Error(err))
	}

	if cfg.SeedDemoData {
		seedDemoContent(store, logging)
	}

	uploads, err := services.NewUploadService(cfg.UploadDir, logging)
	if err != nil {
		logging.Fatal("Failed to prepare upload directory", zap.Error(err))
	}

	router := gin.Default()
	router.Use(gin.Recovery())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.Static("/uploads", cfg.UploadDir)

	setupRoutes(router, store, auth, uploads, logging)

	cronScheduler := cron.New()
	cronScheduler.AddFunc(cfg.SweepSchedule, func() {
		logging.Info("Running scheduled upload sweep...")
		refs, err := store.ImageRefs()
		if err != nil {
			logging.Error("Upload sweep failed to collect image refs", zap.Error(err))
			return
		}
		count, err := uploads.SweepOrphans(context.Background(), refs, 24*time.Hour)
		if err != nil {
			logging.Error("Upload sweep failed", zap.Error(err))
		} else {
			logging.Info("Upload sweep completed", zap.Int("removed", count))
			sweptFilesCounter.Add(float64(count))
		}
	})
	cronScheduler.Start()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	logging.Info("Starting server", zap.String("port", cfg.HTTPPort))
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           corsHandler.Handler(router),
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logging.Fatal("Failed to run server", zap.Error(err))
	}
}
