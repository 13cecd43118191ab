package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"renovatrack/internal/backend"
	"renovatrack/internal/catalog"
	"renovatrack/internal/config"
	"renovatrack/internal/database"
	"renovatrack/internal/handlers"
	"renovatrack/internal/routes"
	"renovatrack/internal/store"
	"renovatrack/internal/utils"
)

func New(log *zap.Logger) (*http.Server, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cfg.AccessTokenSecret != "" {
		utils.AccessTokenSecret = []byte(cfg.AccessTokenSecret)
	}

	pool, err := database.Connect(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Redis only backs the durable fallback buffer, so a missing instance
	// degrades save recovery rather than blocking startup.
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, local fallback disabled", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		} else {
			log.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
		}
		cancel()
	}

	var alt store.Backend
	if cfg.BackendEnabled {
		alt = backend.New(cfg.BackendBaseURL, log)
		log.Info("alternate backend enabled", zap.String("url", cfg.BackendBaseURL))
	}

	cat, err := catalog.Load(cfg.TemplateCatalogPath)
	if err != nil {
		return nil, fmt.Errorf("loading template catalog: %w", err)
	}

	entityStore := store.New(
		store.NewPostgresRemote(pool),
		store.NewRedisLocal(rdb, log),
		alt,
		log,
	)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	routes.RegisterRoutes(router, routes.Handlers{
		Projects:    handlers.NewProjectHandler(entityStore, cat),
		Tasks:       handlers.NewTaskHandler(entityStore),
		Expenses:    handlers.NewExpenseHandler(entityStore),
		Photos:      handlers.NewPhotoHandler(entityStore),
		Materials:   handlers.NewMaterialHandler(entityStore),
		Contractors: handlers.NewContractorHandler(entityStore),
		Permits:     handlers.NewPermitHandler(entityStore),
		Inventory:   handlers.NewInventoryHandler(entityStore),
		Maintenance: handlers.NewMaintenanceHandler(entityStore),
		Dashboard:   handlers.NewDashboardHandler(entityStore),
	})

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}, nil
}
