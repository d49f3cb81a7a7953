package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ovenly/costbook/backend/config"
	"github.com/ovenly/costbook/backend/internal/api"
	"github.com/ovenly/costbook/backend/internal/middleware"
	"github.com/ovenly/costbook/backend/internal/service"
)

// Deps bundles everything the router wires together.
type Deps struct {
	Config            *config.Config
	AuthHandler       *api.AuthHandler
	IngredientHandler *api.IngredientHandler
	RecipeHandler     *api.RecipeHandler
	StreamHandler     *api.StreamHandler
	AuthService       service.IAuthService
	RateLimiter       *middleware.RateLimiter
	HealthCheck       gin.HandlerFunc
}

// SetupRouter configures the application routes
func SetupRouter(deps Deps) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(deps.Config.CORSOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if deps.HealthCheck != nil {
		router.GET("/health", deps.HealthCheck)
	} else {
		router.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", deps.AuthHandler.Register)
		auth.POST("/login", deps.AuthHandler.Login)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.AuthService))
	{
		ingredients := protected.Group("/ingredients")
		{
			ingredients.GET("", deps.IngredientHandler.ListIngredients)
			ingredients.GET("/:id", deps.IngredientHandler.GetIngredient)
			ingredients.POST("", deps.IngredientHandler.CreateIngredient)
			ingredients.PUT("/:id", deps.IngredientHandler.UpdateIngredient)
			ingredients.DELETE("/:id", deps.IngredientHandler.DeleteIngredient)
		}

		recipes := protected.Group("/recipes")
		{
			recipes.GET("", deps.RecipeHandler.ListRecipes)
			recipes.GET("/:id", deps.RecipeHandler.GetRecipe)
			recipes.POST("", deps.RecipeHandler.CreateRecipe)
			recipes.PUT("/:id", deps.RecipeHandler.UpdateRecipe)
			recipes.DELETE("/:id", deps.RecipeHandler.DeleteRecipe)

			priced := recipes.Group("")
			if deps.RateLimiter != nil {
				priced.Use(deps.RateLimiter.Middleware())
			}
			priced.POST("/:id/price", deps.RecipeHandler.PriceRecipe)
			priced.POST("/:id/ticket", deps.RecipeHandler.TicketRecipe)
		}

		if deps.StreamHandler != nil {
			protected.GET("/stream", deps.StreamHandler.Stream)
		}
	}

	return router
}
