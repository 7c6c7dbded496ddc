package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/coincoast/memesboost-backend/docs"
	cacheredis "github.com/coincoast/memesboost-backend/internal/cache/redis"
	"github.com/coincoast/memesboost-backend/internal/common/config"
	"github.com/coincoast/memesboost-backend/internal/common/logger"
	"github.com/coincoast/memesboost-backend/internal/common/middleware"
	cataloghttp "github.com/coincoast/memesboost-backend/internal/features/catalog/delivery/http"
	catalogrepo "github.com/coincoast/memesboost-backend/internal/features/catalog/repository"
	catalogsql "github.com/coincoast/memesboost-backend/internal/features/catalog/repository/sqlstore"
	catalogsupabase "github.com/coincoast/memesboost-backend/internal/features/catalog/repository/supabase"
	catalogservice "github.com/coincoast/memesboost-backend/internal/features/catalog/service"
	taskhttp "github.com/coincoast/memesboost-backend/internal/features/task/delivery/http"
	taskrepo "github.com/coincoast/memesboost-backend/internal/features/task/repository"
	tasksql "github.com/coincoast/memesboost-backend/internal/features/task/repository/sqlstore"
	tasksupabase "github.com/coincoast/memesboost-backend/internal/features/task/repository/supabase"
	taskservice "github.com/coincoast/memesboost-backend/internal/features/task/service"
	userhttp "github.com/coincoast/memesboost-backend/internal/features/user/delivery/http"
	userrepo "github.com/coincoast/memesboost-backend/internal/features/user/repository"
	usersql "github.com/coincoast/memesboost-backend/internal/features/user/repository/sqlstore"
	usersupabase "github.com/coincoast/memesboost-backend/internal/features/user/repository/supabase"
	userservice "github.com/coincoast/memesboost-backend/internal/features/user/service"
	"github.com/coincoast/memesboost-backend/internal/platform/db"
	"github.com/coincoast/memesboost-backend/internal/platform/dexscreener"
	"github.com/coincoast/memesboost-backend/internal/platform/redis"
	"github.com/coincoast/memesboost-backend/internal/platform/supabase"
)

// @title           Memes Boost API
// @version         1.0
// @description     Backend for the Memes Boost promo site: wallet registration, daily boosts, social tasks and promoted token listings.

// @host      localhost:5000
// @BasePath  /api

// @securityDefinitions.apikey AdminToken
// @in header
// @name X-Admin-Token
// @description Shared secret for administrative endpoints

// @tag.name users
// @tag.description Wallet registration and boosts

// @tag.name tasks
// @tag.description Social tasks and completions

// @tag.name listings
// @tag.description Promoted token, community and airdrop listings

func main() {
	cfg := config.MustLoad()
	logger.Init("memesboost-backend", cfg.Debug)

	logger.Info().
		Str("storage", cfg.Storage.Driver).
		Bool("debug", cfg.Debug).
		Msg("Starting Memes Boost backend")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var (
		database *sqlx.DB
		users    userrepo.UserRepository
		tasks    taskrepo.TaskRepository
		listings catalogrepo.ListingRepository
	)

	if cfg.Storage.Driver == config.DriverSupabase {
		if cfg.Storage.SupabaseURL == "" || cfg.Storage.SupabaseKey == "" {
			logger.Fatal().Msg("SUPABASE_URL and SUPABASE_KEY are required for the supabase driver")
		}
		client := supabase.New(cfg.Storage.SupabaseURL, cfg.Storage.SupabaseKey)
		users = usersupabase.New(client)
		tasks = tasksupabase.New(client)
		listings = catalogsupabase.New(client)
		logger.Info().Msg("Supabase storage initialized")
	} else {
		var err error
		database, err = db.Open(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to open database")
		}
		defer database.Close()
		users = usersql.New(database)
		tasks = tasksql.New(database)
		listings = catalogsql.New(database)
		logger.Info().Str("driver", cfg.Storage.Driver).Msg("SQL storage initialized")
	}

	var (
		redisClient  *redis.Client
		taskCache    taskservice.ActiveTaskCache
		listingCache catalogservice.SectionCache
	)
	if cfg.Redis.Enabled {
		var err error
		redisClient, err = redis.Open(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer redisClient.Close()
		taskCache = cacheredis.NewTaskCache(redisClient, cfg.Redis.CacheTTL)
		listingCache = cacheredis.NewListingCache(redisClient, cfg.Redis.CacheTTL)
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("Redis cache initialized")
	}

	tokenFeed := dexscreener.New(cfg.Dexscreener.BaseURL, cfg.Dexscreener.Timeout)

	userSvc := userservice.NewUserService(users, tasks, cfg.UserCap, cfg.Boost.Cooldown)
	taskSvc := taskservice.NewTaskService(tasks, users, taskCache)
	catalogSvc := catalogservice.NewCatalogService(listings, tokenFeed, listingCache)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Accept", middleware.AdminTokenHeader}
	router.Use(cors.New(corsConfig))

	if cfg.AdminToken == "" {
		logger.Warn().Msg("ADMIN_TOKEN is empty; administrative endpoints are disabled")
	}
	requireAdmin := middleware.RequireAdmin(cfg.AdminToken)

	api := router.Group("/api")
	userhttp.NewUserHandler(userSvc).RegisterRoutes(api, requireAdmin)
	taskhttp.NewTaskHandler(taskSvc).RegisterRoutes(api, requireAdmin)
	cataloghttp.NewCatalogHandler(catalogSvc).RegisterRoutes(api, requireAdmin)

	registerProbes(router, database, redisClient)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

func registerProbes(router *gin.Engine, database *sqlx.DB, redisClient *redis.Client) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "memesboost-backend",
		})
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if database != nil {
			if err := database.PingContext(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unready", "error": "database unavailable"})
				return
			}
		}
		if redisClient != nil {
			if err := redisClient.Ping(ctx).Err(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unready", "error": "redis unavailable"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"timestamp": time.Now().UTC(),
		})
	})
}
