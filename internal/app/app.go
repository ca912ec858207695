package app

import (
	"fmt"
	"strings"

	"portfolio_backend/internal/config"
	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/managedfile"
	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/routes"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run wires the whole application and blocks serving HTTP.
func Run() error {
	// Absent .env is fine in production, config comes from the yaml file.
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	if err := seedFirstAdmin(db, cfg); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	store, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	files := managedfile.NewManager(store)
	serviceContainer := services.NewServiceContainer(db, files, cfg)
	appHandlers := handlers.NewAppHandlers(serviceContainer)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Local storage serves its own files; s3 URLs point at the bucket.
	if cfg.Storage.Type == "local" && strings.HasPrefix(cfg.Storage.BaseURL, "/") {
		router.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)
	}

	routes.RegisterRoutes(router, appHandlers)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env, "storage", cfg.Storage.Type)
	return router.Run(addr)
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Experience{},
		&models.Resume{},
		&models.Certificate{},
		&models.Setting{},
		&models.Education{},
		&models.Achievement{},
		&models.SkillCategory{},
		&models.SocialLink{},
		&models.Message{},
	)
}
