package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ovenly/costbook/backend/config"
	"github.com/ovenly/costbook/backend/internal/api"
	"github.com/ovenly/costbook/backend/internal/database"
	"github.com/ovenly/costbook/backend/internal/datasource"
	"github.com/ovenly/costbook/backend/internal/middleware"
	"github.com/ovenly/costbook/backend/internal/router"
	"github.com/ovenly/costbook/backend/internal/server"
	"github.com/ovenly/costbook/backend/internal/service"
	"github.com/ovenly/costbook/backend/pkg/logger"
)

func main() {
	log := logger.New("api")
	defer func() { _ = log.Sync() }()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalw("failed to run migrations", "error", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalw("failed to connect to redis", "error", err)
	}

	s3cfg, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		log.Fatalw("failed to initialize receipt storage", "error", err)
	}
	var receiptStore service.ReceiptStore
	if s3cfg != nil {
		receiptStore = s3cfg
	}

	notifier := datasource.NewRedisNotifier(redisClient)
	source := datasource.New(db, notifier)

	authService := service.NewAuthService(db, cfg.JWTSecret)
	ingredientService := service.NewIngredientService(db, notifier, log)
	recipeService := service.NewRecipeService(db, notifier, log)
	ticketService := service.NewTicketService(receiptStore, cfg.CurrencyCode, log)

	rateLimiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
		Window:    time.Minute,
		Limit:     60,
		KeyPrefix: "costbook:ratelimit",
	})

	engine := router.SetupRouter(router.Deps{
		Config:            cfg,
		AuthHandler:       api.NewAuthHandler(authService),
		IngredientHandler: api.NewIngredientHandler(ingredientService),
		RecipeHandler:     api.NewRecipeHandler(recipeService, ticketService),
		StreamHandler:     api.NewStreamHandler(source),
		AuthService:       authService,
		RateLimiter:       rateLimiter,
		HealthCheck: func(c *gin.Context) {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := database.HealthCheck(ctx, db); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": err.Error()})
				return
			}
			if err := redisClient.Ping(ctx).Err(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "redis": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		},
	})

	srv := server.New(cfg, engine, log)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalw("server error", "error", err)
		}
	case sig := <-quit:
		log.Infow("received signal", "signal", sig.String())
	}

	log.Infow("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server shutdown error", "error", err)
	}
	log.Infow("server stopped")
}
